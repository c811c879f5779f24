package services

import (
	"context"
	"testing"

	"github.com/fincomply/vigil/ent/finding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewFinding(t *testing.T) {
	client, _, _ := setupServiceTest(t)
	svc := NewFindingService(client)
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/payments-api")
	c := seedCase(t, client, repo.ID, "pci-3.4")
	f := seedFinding(t, client, c.ID, "pci-3.4", "internal/store/card.go")

	reviewed, err := svc.Review(ctx, f.ID, "approved", "compliance-officer")
	require.NoError(t, err)
	assert.Equal(t, finding.StatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, "compliance-officer", *reviewed.ReviewedBy)
	assert.NotNil(t, reviewed.ReviewedAt)
}

func TestReviewFindingValidation(t *testing.T) {
	client, _, _ := setupServiceTest(t)
	svc := NewFindingService(client)
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/payments-api")
	c := seedCase(t, client, repo.ID, "pci-3.4")
	f := seedFinding(t, client, c.ID, "pci-3.4", "internal/store/card.go")

	// pending is the initial state, not a review outcome.
	_, err := svc.Review(ctx, f.ID, "pending", "compliance-officer")
	assert.True(t, IsValidationError(err), "expected validation error, got %v", err)

	_, err = svc.Review(ctx, f.ID, "escalated", "compliance-officer")
	assert.True(t, IsValidationError(err), "expected validation error, got %v", err)

	_, err = svc.Review(ctx, f.ID, "approved", "")
	assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
}

func TestReviewFindingNotFound(t *testing.T) {
	client, _, _ := setupServiceTest(t)
	svc := NewFindingService(client)

	_, err := svc.Review(context.Background(), "missing-id", "rejected", "compliance-officer")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListFindingsByCase(t *testing.T) {
	client, _, _ := setupServiceTest(t)
	svc := NewFindingService(client)
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/payments-api")
	c := seedCase(t, client, repo.ID, "pci-3.4")
	other := seedCase(t, client, repo.ID, "pci-10.1")
	f1 := seedFinding(t, client, c.ID, "pci-3.4", "a.go")
	f2 := seedFinding(t, client, c.ID, "pci-3.4", "b.go")
	seedFinding(t, client, other.ID, "pci-10.1", "c.go")

	findings, err := svc.ListByCase(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, findings, 2, "other case's findings excluded")
	assert.ElementsMatch(t,
		[]string{f1.ID, f2.ID},
		[]string{findings[0].ID, findings[1].ID})

	empty, err := svc.ListByCase(ctx, "missing-id")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
