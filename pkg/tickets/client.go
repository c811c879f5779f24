// Package tickets files remediation tickets with an external Jira-style
// tracker once a human approves an audit case.
package tickets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fincomply/vigil/pkg/config"
)

// Client is a minimal issue-creation client for a Jira-compatible REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	project    string
	token      string
}

// NewClient builds a ticketing client from configuration. Returns nil when
// no base URL is configured; callers treat a nil client as "ticketing
// disabled".
func NewClient(cfg *config.TicketsConfig) (*Client, error) {
	if cfg == nil || cfg.BaseURL == "" {
		return nil, nil
	}
	token := os.Getenv(cfg.TokenEnv)
	if token == "" {
		return nil, fmt.Errorf("ticketing configured but %s is not set", cfg.TokenEnv)
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		project:    cfg.Project,
		token:      token,
	}, nil
}

type issueRequest struct {
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Project     issueProject `json:"project"`
	Summary     string       `json:"summary"`
	Description string       `json:"description"`
	IssueType   issueType    `json:"issuetype"`
	Priority    *issueName   `json:"priority,omitempty"`
	Labels      []string     `json:"labels,omitempty"`
}

type issueProject struct {
	Key string `json:"key"`
}

type issueType struct {
	Name string `json:"name"`
}

type issueName struct {
	Name string `json:"name"`
}

type issueResponse struct {
	Key string `json:"key"`
}

// CreateIssue files one issue and returns its key. Transient failures are
// retried with exponential backoff; 4xx responses are terminal.
func (c *Client) CreateIssue(ctx context.Context, summary, description, priority string, labels []string) (string, error) {
	req := issueRequest{
		Fields: issueFields{
			Project:     issueProject{Key: c.project},
			Summary:     summary,
			Description: description,
			IssueType:   issueType{Name: "Task"},
			Labels:      labels,
		},
	}
	if priority != "" {
		req.Fields.Priority = &issueName{Name: priorityName(priority)}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal issue request: %w", err)
	}

	operation := func() (string, error) {
		return c.post(ctx, body)
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	key, err := backoff.RetryWithData(operation, bo)
	if err != nil {
		return "", fmt.Errorf("failed to create ticket: %w", err)
	}
	return key, nil
}

func (c *Client) post(ctx context.Context, body []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/rest/api/2/issue", bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	if resp.StatusCode >= 400 {
		err := fmt.Errorf("ticket API returned %d: %s", resp.StatusCode, truncate(string(respBody), 200))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return "", err
		}
		return "", backoff.Permanent(err)
	}

	var issue issueResponse
	if err := json.Unmarshal(respBody, &issue); err != nil {
		return "", backoff.Permanent(fmt.Errorf("failed to decode ticket response: %w", err))
	}
	if issue.Key == "" {
		return "", backoff.Permanent(fmt.Errorf("ticket response missing issue key"))
	}
	return issue.Key, nil
}

// priorityName maps finding priorities onto the tracker's priority scheme.
func priorityName(priority string) string {
	switch strings.ToLower(priority) {
	case "high":
		return "High"
	case "medium":
		return "Medium"
	case "low":
		return "Low"
	default:
		return "Medium"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
