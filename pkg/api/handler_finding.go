package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// reviewFindingRequest is the body of POST /api/v1/findings/:id/review.
type reviewFindingRequest struct {
	Status     string `json:"status" binding:"required"`
	ReviewedBy string `json:"reviewed_by" binding:"required"`
}

// reviewFindingHandler records a human decision on one finding.
func (s *Server) reviewFindingHandler(c *gin.Context) {
	var req reviewFindingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := s.findings.Review(c.Request.Context(), c.Param("id"), req.Status, req.ReviewedBy)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}
