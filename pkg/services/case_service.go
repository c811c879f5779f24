package services

import (
	"context"
	"fmt"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/finding"
	"github.com/fincomply/vigil/ent/job"
	"github.com/fincomply/vigil/pkg/codemap"
	"github.com/fincomply/vigil/pkg/models"
	"github.com/fincomply/vigil/pkg/queue"
	"github.com/google/uuid"
)

// CreateAuditInput contains the domain-level data needed to open a case.
type CreateAuditInput struct {
	RepoID           string
	RegulationIDs    []string
	RequiresApproval *bool
}

// CaseService opens audit cases and reads their state. Resuming and
// cancelling go through the orchestrator, which owns case transitions.
type CaseService struct {
	client      *ent.Client
	queue       *queue.Service
	regulations *codemap.RegulationStore
}

// NewCaseService creates a new CaseService.
func NewCaseService(client *ent.Client, q *queue.Service, regulations *codemap.RegulationStore) *CaseService {
	if client == nil {
		panic("NewCaseService: client must not be nil")
	}
	if q == nil {
		panic("NewCaseService: queue must not be nil")
	}
	if regulations == nil {
		panic("NewCaseService: regulations must not be nil")
	}
	return &CaseService{client: client, queue: q, regulations: regulations}
}

// CreateAudit validates the request, creates a pending case and enqueues
// its audit job.
func (s *CaseService) CreateAudit(ctx context.Context, input CreateAuditInput) (*ent.AuditCase, *ent.Job, error) {
	if input.RepoID == "" {
		return nil, nil, NewValidationError("repo_id", "repo_id is required")
	}
	if len(input.RegulationIDs) == 0 {
		return nil, nil, NewValidationError("regulation_ids", "at least one regulation rule is required")
	}

	if _, err := s.client.Repository.Get(ctx, input.RepoID); err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, fmt.Errorf("%w: repository %s", ErrNotFound, input.RepoID)
		}
		return nil, nil, fmt.Errorf("failed to load repository: %w", err)
	}

	known, err := s.regulations.KnownRuleIDs(ctx, input.RegulationIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to validate regulation rules: %w", err)
	}
	if len(known) != len(input.RegulationIDs) {
		missing := missingRules(input.RegulationIDs, known)
		return nil, nil, NewValidationError("regulation_ids",
			fmt.Sprintf("unknown regulation rule(s): %v", missing))
	}

	builder := s.client.AuditCase.Create().
		SetID(uuid.NewString()).
		SetRepoID(input.RepoID).
		SetRegulationIds(input.RegulationIDs)
	if input.RequiresApproval != nil {
		builder.SetRequiresApproval(*input.RequiresApproval)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create case: %w", err)
	}

	m, err := models.PayloadToMap(models.AuditJobPayload{CaseID: c.ID})
	if err != nil {
		return c, nil, err
	}
	j, err := s.queue.Enqueue(ctx, job.TypeAudit, m)
	if err != nil {
		return c, nil, fmt.Errorf("failed to enqueue audit job: %w", err)
	}
	return c, j, nil
}

// GetCase returns the full case state with its findings.
func (s *CaseService) GetCase(ctx context.Context, caseID string) (*models.CaseResponse, error) {
	c, err := s.client.AuditCase.Get(ctx, caseID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: case %s", ErrNotFound, caseID)
		}
		return nil, fmt.Errorf("failed to load case: %w", err)
	}

	findings, err := s.client.Finding.Query().
		Where(finding.CaseIDEQ(caseID)).
		Order(ent.Asc(finding.FieldCreatedAt), ent.Asc(finding.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load findings: %w", err)
	}

	return &models.CaseResponse{AuditCase: c, Findings: findings}, nil
}

func missingRules(requested, known []string) []string {
	knownSet := make(map[string]bool, len(known))
	for _, id := range known {
		knownSet[id] = true
	}
	var missing []string
	for _, id := range requested {
		if !knownSet[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
