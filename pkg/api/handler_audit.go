package api

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/fincomply/vigil/pkg/events"
	"github.com/fincomply/vigil/pkg/models"
	"github.com/fincomply/vigil/pkg/services"
	"github.com/gin-gonic/gin"
)

// createAuditHandler handles POST /api/v1/audits.
func (s *Server) createAuditHandler(c *gin.Context) {
	var req models.CreateAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	auditCase, job, err := s.cases.CreateAudit(c.Request.Context(), services.CreateAuditInput{
		RepoID:           req.RepoID,
		RegulationIDs:    req.RegulationIDs,
		RequiresApproval: req.RequiresApproval,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := gin.H{"case": auditCase}
	if job != nil {
		resp["job_id"] = job.ID
	}
	c.JSON(http.StatusCreated, resp)
}

// getAuditHandler handles GET /api/v1/audits/:id: full case state with
// findings.
func (s *Server) getAuditHandler(c *gin.Context) {
	resp, err := s.cases.GetCase(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// resumeAuditHandler handles POST /api/v1/audits/:id/resume: resolve the
// approval gate. Repeating an approval is a no-op and returns the same
// ticket ids.
func (s *Server) resumeAuditHandler(c *gin.Context) {
	var req models.ResumeAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Decision != models.DecisionApprove && req.Decision != models.DecisionDecline {
		c.JSON(http.StatusBadRequest, gin.H{"error": "decision must be 'approve' or 'decline'"})
		return
	}

	auditCase, err := s.orchestrator.Resume(c.Request.Context(), c.Param("id"), string(req.Decision), req.EditedTasks)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, auditCase)
}

// cancelAuditHandler handles POST /api/v1/audits/:id/cancel.
func (s *Server) cancelAuditHandler(c *gin.Context) {
	auditCase, err := s.orchestrator.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, auditCase)
}

// auditLogsHandler handles GET /api/v1/audits/:id/logs?from=N: the durable
// log page used for initial load and for re-syncing after a dropped stream.
func (s *Server) auditLogsHandler(c *gin.Context) {
	caseID := c.Param("id")

	fromSeq := 0
	if v := c.Query("from"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be a non-negative integer"})
			return
		}
		fromSeq = n
	}

	if _, err := s.cases.GetCase(c.Request.Context(), caseID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	entries, err := s.logs.Read(c.Request.Context(), caseID, fromSeq)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := models.CaseLogsResponse{CaseID: caseID, Entries: []models.CaseLogEntry{}, Next: fromSeq}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, models.CaseLogEntry{
			Agent:     e.Agent,
			Message:   e.Message,
			Sequence:  e.Sequence,
			Timestamp: e.CreatedAt.UTC().Format(time.RFC3339),
		})
		resp.Next = e.Sequence
	}
	c.JSON(http.StatusOK, resp)
}

// auditStreamHandler handles GET /api/v1/audits/:id/stream: a server-sent
// event stream of the case's log and status events. Events are advisory; a
// client that misses some re-syncs via the logs endpoint.
func (s *Server) auditStreamHandler(c *gin.Context) {
	caseID := c.Param("id")
	if _, err := s.cases.GetCase(c.Request.Context(), caseID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	ch, cancel := s.broker.Subscribe(c.Request.Context(), events.CaseChannel(caseID))
	defer cancel()

	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case payload, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("message", string(payload))
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
