package api

import (
	"net/http"

	"github.com/fincomply/vigil/pkg/models"
	"github.com/fincomply/vigil/pkg/services"
	"github.com/gin-gonic/gin"
)

// createRepoRequest is the body of POST /api/v1/repos.
type createRepoRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	GithubID       int64  `json:"github_id"`
	InstallationID int64  `json:"installation_id"`
	DefaultBranch  string `json:"default_branch"`
}

// createRepoHandler handles POST /api/v1/repos: register a repository and
// kick off its first full index pass.
func (s *Server) createRepoHandler(c *gin.Context) {
	var req createRepoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	repo, job, err := s.repos.CreateRepo(c.Request.Context(), services.CreateRepoInput{
		FullName:       req.FullName,
		GithubID:       req.GithubID,
		InstallationID: req.InstallationID,
		DefaultBranch:  req.DefaultBranch,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := gin.H{"repo": repo}
	if job != nil {
		resp["job_id"] = job.ID
	}
	c.JSON(http.StatusCreated, resp)
}

// getRepoHandler handles GET /api/v1/repos/:id.
func (s *Server) getRepoHandler(c *gin.Context) {
	repo, err := s.repos.GetRepo(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, repo)
}

// indexRepoRequest is the body of POST /api/v1/repos/:id/index.
type indexRepoRequest struct {
	CommitSHA    string   `json:"commit_sha"`
	ChangedFiles []string `json:"changed_files"`
}

// indexRepoHandler handles POST /api/v1/repos/:id/index: request a full or
// delta index pass.
func (s *Server) indexRepoHandler(c *gin.Context) {
	var req indexRepoRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := s.repos.RequestIndex(c.Request.Context(), models.IndexRequest{
		RepoID:       c.Param("id"),
		CommitSHA:    req.CommitSHA,
		ChangedFiles: req.ChangedFiles,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"job_id": job.ID})
}

// pushWebhookRequest is the relevant subset of a push event.
type pushWebhookRequest struct {
	FullName     string   `json:"full_name" binding:"required"`
	CommitSHA    string   `json:"commit_sha" binding:"required"`
	ChangedFiles []string `json:"changed_files"`
}

// pushWebhookHandler handles POST /api/v1/webhooks/push: a push event
// triggers a delta index over the changed paths, or a full pass when the
// event does not carry them.
func (s *Server) pushWebhookHandler(c *gin.Context) {
	var req pushWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := s.repos.RequestIndex(c.Request.Context(), models.IndexRequest{
		FullName:     req.FullName,
		CommitSHA:    req.CommitSHA,
		ChangedFiles: req.ChangedFiles,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"job_id": job.ID})
}
