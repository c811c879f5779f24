package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fincomply/vigil/pkg/audit"
	"github.com/fincomply/vigil/pkg/services"
	"github.com/gin-gonic/gin"
)

// abortWithServiceError maps service-layer errors to HTTP error responses.
func abortWithServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, audit.ErrNotAwaitingApproval):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "case is not awaiting approval"})
	case errors.Is(err, audit.ErrCaseTerminal):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "case is in a terminal state"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
