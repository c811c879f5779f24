package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/finding"
)

// FindingService handles per-finding human review.
type FindingService struct {
	client *ent.Client
}

// NewFindingService creates a new FindingService.
func NewFindingService(client *ent.Client) *FindingService {
	if client == nil {
		panic("NewFindingService: client must not be nil")
	}
	return &FindingService{client: client}
}

// Review records a reviewer's decision on one finding.
func (s *FindingService) Review(ctx context.Context, findingID, status, reviewer string) (*ent.Finding, error) {
	switch finding.Status(status) {
	case finding.StatusApproved, finding.StatusRejected, finding.StatusIgnored:
	default:
		return nil, NewValidationError("status", fmt.Sprintf("invalid review status %q", status))
	}
	if reviewer == "" {
		return nil, NewValidationError("reviewed_by", "reviewer is required")
	}

	f, err := s.client.Finding.UpdateOneID(findingID).
		SetStatus(finding.Status(status)).
		SetReviewedBy(reviewer).
		SetReviewedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: finding %s", ErrNotFound, findingID)
		}
		return nil, fmt.Errorf("failed to review finding: %w", err)
	}
	return f, nil
}

// ListByCase returns a case's findings in creation order.
func (s *FindingService) ListByCase(ctx context.Context, caseID string) ([]*ent.Finding, error) {
	findings, err := s.client.Finding.Query().
		Where(finding.CaseIDEQ(caseID)).
		Order(ent.Asc(finding.FieldCreatedAt), ent.Asc(finding.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load findings for case %s: %w", caseID, err)
	}
	return findings, nil
}
