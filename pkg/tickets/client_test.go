package tickets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/fincomply/vigil/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientDisabledWithoutBaseURL(t *testing.T) {
	c, err := NewClient(&config.TicketsConfig{Project: "COMP"})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestNewClientRequiresToken(t *testing.T) {
	t.Setenv("TICKET_TOKEN_TEST", "")
	_, err := NewClient(&config.TicketsConfig{
		BaseURL:  "https://jira.example.com",
		Project:  "COMP",
		TokenEnv: "TICKET_TOKEN_TEST",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TICKET_TOKEN_TEST")
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	t.Setenv("TICKET_TOKEN_TEST", "secret")
	c, err := NewClient(&config.TicketsConfig{
		BaseURL:  ts.URL,
		Project:  "COMP",
		TokenEnv: "TICKET_TOKEN_TEST",
	})
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func TestCreateIssue(t *testing.T) {
	var gotReq issueRequest
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/2/issue", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(issueResponse{Key: "COMP-17"})
	}))

	key, err := c.CreateIssue(context.Background(), "Fix retention", "details", "high", []string{"compliance-audit", "GDPR-5"})
	require.NoError(t, err)
	assert.Equal(t, "COMP-17", key)

	assert.Equal(t, "COMP", gotReq.Fields.Project.Key)
	assert.Equal(t, "Fix retention", gotReq.Fields.Summary)
	require.NotNil(t, gotReq.Fields.Priority)
	assert.Equal(t, "High", gotReq.Fields.Priority.Name)
	assert.Equal(t, []string{"compliance-audit", "GDPR-5"}, gotReq.Fields.Labels)
}

func TestCreateIssueRetriesServerErrors(t *testing.T) {
	var calls atomic.Int64
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(issueResponse{Key: "COMP-18"})
	}))

	key, err := c.CreateIssue(context.Background(), "s", "d", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "COMP-18", key)
	assert.Equal(t, int64(2), calls.Load())
}

func TestCreateIssueDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int64
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))

	_, err := c.CreateIssue(context.Background(), "s", "d", "", nil)
	require.Error(t, err)
	assert.Equal(t, int64(1), calls.Load())
}

func TestPriorityName(t *testing.T) {
	assert.Equal(t, "High", priorityName("high"))
	assert.Equal(t, "Medium", priorityName("medium"))
	assert.Equal(t, "Low", priorityName("low"))
	assert.Equal(t, "Medium", priorityName("whatever"))
}
