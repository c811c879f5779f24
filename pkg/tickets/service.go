package tickets

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/pkg/models"
)

// IssueCreator files one issue and returns its key.
type IssueCreator interface {
	CreateIssue(ctx context.Context, summary, description, priority string, labels []string) (string, error)
}

// Service files remediation tickets, at most one per finding. A finding's
// ticket_id column is the idempotency record: re-running an approval never
// files a duplicate.
type Service struct {
	client  *ent.Client
	creator IssueCreator
}

// NewService creates a ticket service. A nil creator disables ticketing;
// CreateForCase then returns no ticket IDs and no error.
func NewService(client *ent.Client, creator IssueCreator) *Service {
	return &Service{client: client, creator: creator}
}

// Enabled reports whether a ticketing backend is configured.
func (s *Service) Enabled() bool {
	return s.creator != nil
}

// CreateForCase files one ticket per remediation task and returns all
// ticket keys for the case, including ones filed by an earlier attempt.
// Returns the keys collected so far alongside any error so a partial run
// can be persisted and safely retried.
func (s *Service) CreateForCase(ctx context.Context, caseID string, tasks []models.RemediationTask) ([]string, error) {
	if s.creator == nil {
		return nil, nil
	}

	var keys []string
	for _, task := range tasks {
		finding, err := s.client.Finding.Get(ctx, task.FindingID)
		if err != nil {
			return keys, fmt.Errorf("failed to load finding %s: %w", task.FindingID, err)
		}
		if finding.CaseID != caseID {
			return keys, fmt.Errorf("finding %s does not belong to case %s", task.FindingID, caseID)
		}
		if finding.TicketID != nil && *finding.TicketID != "" {
			keys = append(keys, *finding.TicketID)
			continue
		}

		key, err := s.creator.CreateIssue(ctx, task.Title, task.Body, task.Priority,
			[]string{"compliance-audit", task.RuleID})
		if err != nil {
			return keys, fmt.Errorf("failed to file ticket for finding %s: %w", task.FindingID, err)
		}

		if err := s.client.Finding.UpdateOneID(task.FindingID).
			SetTicketID(key).
			Exec(ctx); err != nil {
			// The ticket exists but the mapping write failed; a retry would
			// file a duplicate. Surface loudly.
			return keys, fmt.Errorf("ticket %s filed but not recorded on finding %s: %w", key, task.FindingID, err)
		}

		slog.Info("Remediation ticket filed", "case_id", caseID, "finding_id", task.FindingID, "ticket", key)
		keys = append(keys, key)
	}
	return keys, nil
}
