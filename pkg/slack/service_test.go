package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("NotifyCaseAwaitingApproval is no-op", func(_ *testing.T) {
		// Should not panic
		s.NotifyCaseAwaitingApproval(context.Background(), CaseApprovalInput{
			CaseID: "case-1",
		})
	})

	t.Run("NotifyCaseClosed is no-op", func(_ *testing.T) {
		s.NotifyCaseClosed(context.Background(), CaseClosedInput{
			CaseID: "case-1",
			Status: "completed",
		})
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://example.com",
		})
		assert.NotNil(t, svc)
	})
}

func TestService_NotifyCaseClosed_PostsMessage(t *testing.T) {
	var posted atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat.postMessage", r.URL.Path)
		posted.Store(true)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"ok": true, "channel": "C123", "ts": "1234.5678",
		}))
	}))
	defer server.Close()

	client := NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/")
	svc := NewServiceWithClient(client, "https://dash.example.com")

	svc.NotifyCaseClosed(context.Background(), CaseClosedInput{
		CaseID:     "case-1",
		Status:     "completed",
		Decision:   "approved",
		TicketKeys: []string{"COMP-1"},
	})
	assert.True(t, posted.Load())
}
