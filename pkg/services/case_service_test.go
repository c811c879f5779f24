package services

import (
	"context"
	"testing"

	"github.com/fincomply/vigil/ent/auditcase"
	"github.com/fincomply/vigil/ent/job"
	"github.com/fincomply/vigil/pkg/codemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAudit(t *testing.T) {
	client, db, q := setupServiceTest(t)
	svc := NewCaseService(client, q, codemap.NewRegulationStore(db))
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/payments-api")
	seedRegulation(t, db, "pci-3.4", "PAN must be rendered unreadable wherever stored.")
	seedRegulation(t, db, "pci-10.1", "Audit trails must link access to individual users.")

	c, j, err := svc.CreateAudit(ctx, CreateAuditInput{
		RepoID:        repo.ID,
		RegulationIDs: []string{"pci-3.4", "pci-10.1"},
	})
	require.NoError(t, err)

	assert.Equal(t, auditcase.StatusPending, c.Status)
	assert.Equal(t, repo.ID, c.RepoID)
	assert.Equal(t, []string{"pci-3.4", "pci-10.1"}, c.RegulationIds)
	assert.True(t, c.RequiresApproval, "approval gate defaults on")

	require.NotNil(t, j)
	assert.Equal(t, job.TypeAudit, j.Type)
	assert.Equal(t, c.ID, j.Payload["case_id"])
}

func TestCreateAuditApprovalBypass(t *testing.T) {
	client, db, q := setupServiceTest(t)
	svc := NewCaseService(client, q, codemap.NewRegulationStore(db))
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/payments-api")
	seedRegulation(t, db, "pci-3.4", "PAN must be rendered unreadable wherever stored.")

	bypass := false
	c, _, err := svc.CreateAudit(ctx, CreateAuditInput{
		RepoID:           repo.ID,
		RegulationIDs:    []string{"pci-3.4"},
		RequiresApproval: &bypass,
	})
	require.NoError(t, err)
	assert.False(t, c.RequiresApproval)
}

func TestCreateAuditUnknownRule(t *testing.T) {
	client, db, q := setupServiceTest(t)
	svc := NewCaseService(client, q, codemap.NewRegulationStore(db))
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/payments-api")
	seedRegulation(t, db, "pci-3.4", "PAN must be rendered unreadable wherever stored.")

	_, _, err := svc.CreateAudit(ctx, CreateAuditInput{
		RepoID:        repo.ID,
		RegulationIDs: []string{"pci-3.4", "pci-99.9"},
	})
	require.True(t, IsValidationError(err), "expected validation error, got %v", err)
	assert.ErrorContains(t, err, "pci-99.9")
}

func TestCreateAuditUnknownRepo(t *testing.T) {
	client, db, q := setupServiceTest(t)
	svc := NewCaseService(client, q, codemap.NewRegulationStore(db))

	_, _, err := svc.CreateAudit(context.Background(), CreateAuditInput{
		RepoID:        "missing-id",
		RegulationIDs: []string{"pci-3.4"},
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAuditValidation(t *testing.T) {
	client, db, q := setupServiceTest(t)
	svc := NewCaseService(client, q, codemap.NewRegulationStore(db))
	ctx := context.Background()

	_, _, err := svc.CreateAudit(ctx, CreateAuditInput{RegulationIDs: []string{"pci-3.4"}})
	assert.True(t, IsValidationError(err), "missing repo_id: got %v", err)

	repo := seedRepo(t, client, "acme/payments-api")
	_, _, err = svc.CreateAudit(ctx, CreateAuditInput{RepoID: repo.ID})
	assert.True(t, IsValidationError(err), "missing regulation_ids: got %v", err)
}

func TestGetCase(t *testing.T) {
	client, db, q := setupServiceTest(t)
	svc := NewCaseService(client, q, codemap.NewRegulationStore(db))
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/payments-api")
	c := seedCase(t, client, repo.ID, "pci-3.4")
	first := seedFinding(t, client, c.ID, "pci-3.4", "internal/log/audit.go")
	second := seedFinding(t, client, c.ID, "pci-3.4", "internal/store/card.go")

	resp, err := svc.GetCase(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, resp.AuditCase.ID)
	require.Len(t, resp.Findings, 2)
	assert.ElementsMatch(t,
		[]string{first.ID, second.ID},
		[]string{resp.Findings[0].ID, resp.Findings[1].ID})
}

func TestGetCaseNotFound(t *testing.T) {
	client, db, q := setupServiceTest(t)
	svc := NewCaseService(client, q, codemap.NewRegulationStore(db))

	_, err := svc.GetCase(context.Background(), "missing-id")
	require.ErrorIs(t, err, ErrNotFound)
}
