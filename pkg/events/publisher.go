package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Publisher broadcasts case events via pg_notify. Events are transient;
// the case_logs table is the durable record, so nothing is persisted here.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a publisher on the shared database handle.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishCaseLog broadcasts a log entry to the case channel. Best-effort:
// errors are logged, never propagated into the orchestrator.
func (p *Publisher) PublishCaseLog(ctx context.Context, payload CaseLogPayload) {
	payload.Type = EventTypeCaseLog
	if err := p.notify(ctx, CaseChannel(payload.CaseID), payload); err != nil {
		slog.Warn("Failed to publish case log event", "case_id", payload.CaseID, "error", err)
	}
}

// PublishCaseStatus broadcasts a status transition to the case channel and
// a copy to the global cases channel.
func (p *Publisher) PublishCaseStatus(ctx context.Context, payload CaseStatusPayload) {
	payload.Type = EventTypeCaseStatus
	if err := p.notify(ctx, CaseChannel(payload.CaseID), payload); err != nil {
		slog.Warn("Failed to publish case status event", "case_id", payload.CaseID, "error", err)
	}
	if err := p.notify(ctx, GlobalCasesChannel, payload); err != nil {
		slog.Warn("Failed to publish global case status event", "case_id", payload.CaseID, "error", err)
	}
}

func (p *Publisher) notify(ctx context.Context, channel string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	notifyPayload, err := truncateIfNeeded(payloadJSON)
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncateIfNeeded returns the payload as-is when it fits PostgreSQL's
// 8000-byte NOTIFY limit, otherwise a minimal envelope with routing fields
// only; the client re-reads the full entry from the log endpoint.
func truncateIfNeeded(payloadJSON []byte) (string, error) {
	if len(payloadJSON) <= 7900 {
		return string(payloadJSON), nil
	}

	var routing struct {
		Type     string `json:"type"`
		CaseID   string `json:"case_id"`
		Sequence int    `json:"sequence"`
	}
	if err := json.Unmarshal(payloadJSON, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated, err := json.Marshal(map[string]any{
		"type":      routing.Type,
		"case_id":   routing.CaseID,
		"sequence":  routing.Sequence,
		"truncated": true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncated), nil
}
