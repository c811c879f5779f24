package api

import (
	"net/http"

	"github.com/fincomply/vigil/ent"
	"github.com/gin-gonic/gin"
)

// getJobHandler handles GET /api/v1/jobs/:id.
func (s *Server) getJobHandler(c *gin.Context) {
	j, err := s.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}
