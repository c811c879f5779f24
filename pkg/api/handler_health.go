package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fincomply/vigil/pkg/database"
	"github.com/gin-gonic/gin"
)

// healthzHandler reports liveness.
func (s *Server) healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// readyzHandler reports readiness: database reachability plus worker pool
// state.
func (s *Server) readyzHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	resp := gin.H{
		"status":   "healthy",
		"database": dbHealth,
	}
	if s.pool != nil {
		resp["workers"] = s.pool.Health()
	}
	c.JSON(http.StatusOK, resp)
}
