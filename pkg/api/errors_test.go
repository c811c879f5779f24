package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fincomply/vigil/pkg/audit"
	"github.com/fincomply/vigil/pkg/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func statusFor(t *testing.T, err error) int {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	abortWithServiceError(c, err)
	return w.Code
}

func TestAbortWithServiceErrorMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(t, services.NewValidationError("repo_id", "required")))
	assert.Equal(t, http.StatusNotFound, statusFor(t, fmt.Errorf("%w: case x", services.ErrNotFound)))
	assert.Equal(t, http.StatusConflict, statusFor(t, fmt.Errorf("%w: repo y", services.ErrAlreadyExists)))
	assert.Equal(t, http.StatusConflict, statusFor(t, fmt.Errorf("%w: case z", audit.ErrNotAwaitingApproval)))
	assert.Equal(t, http.StatusConflict, statusFor(t, fmt.Errorf("%w: case z", audit.ErrCaseTerminal)))
	assert.Equal(t, http.StatusInternalServerError, statusFor(t, errors.New("boom")))
}
