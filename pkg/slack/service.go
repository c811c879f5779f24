package slack

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// CaseApprovalInput contains data for an approval-gate notification.
type CaseApprovalInput struct {
	CaseID       string
	RepoName     string
	RuleIDs      []string
	FindingCount int
	TaskCount    int
}

// CaseClosedInput contains data for a terminal case notification.
type CaseClosedInput struct {
	CaseID       string
	Status       string // completed, failed
	Decision     string // approved, declined (completed cases only)
	TicketKeys   []string
	ErrorMessage string
}

// Service handles Slack notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifyCaseAwaitingApproval announces a case paused at the approval gate.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyCaseAwaitingApproval(ctx context.Context, input CaseApprovalInput) {
	if s == nil {
		return
	}

	blocks := BuildApprovalMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		s.logger.Error("Failed to send Slack approval notification",
			"case_id", input.CaseID,
			"error", err)
	}
}

// NotifyCaseClosed announces a terminal case status.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyCaseClosed(ctx context.Context, input CaseClosedInput) {
	if s == nil {
		return
	}

	blocks := BuildClosedMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack notification",
			"case_id", input.CaseID,
			"status", input.Status,
			"error", err)
	}
}
