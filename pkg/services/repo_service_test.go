package services

import (
	"context"
	"testing"

	"github.com/fincomply/vigil/ent/job"
	"github.com/fincomply/vigil/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRepo(t *testing.T) {
	client, _, q := setupServiceTest(t)
	svc := NewRepoService(client, q)
	ctx := context.Background()

	repo, j, err := svc.CreateRepo(ctx, CreateRepoInput{
		FullName: "acme/payments-api",
		GithubID: 4242,
	})
	require.NoError(t, err)

	assert.Equal(t, "acme/payments-api", repo.FullName)
	assert.Equal(t, "main", repo.DefaultBranch, "default branch defaults to main")
	assert.Equal(t, int64(4242), repo.GithubID)

	// Registration enqueues the first full index pass.
	require.NotNil(t, j)
	assert.Equal(t, job.TypeIndex, j.Type)
	assert.Equal(t, job.StatusQueued, j.Status)
	assert.Equal(t, repo.ID, j.Payload["repo_id"])
	assert.NotContains(t, j.Payload, "changed_files")
}

func TestCreateRepoDuplicateName(t *testing.T) {
	client, _, q := setupServiceTest(t)
	svc := NewRepoService(client, q)
	ctx := context.Background()

	seedRepo(t, client, "acme/ledger")

	_, _, err := svc.CreateRepo(ctx, CreateRepoInput{FullName: "acme/ledger"})
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateRepoValidation(t *testing.T) {
	client, _, q := setupServiceTest(t)
	svc := NewRepoService(client, q)
	ctx := context.Background()

	tests := []struct {
		name     string
		fullName string
	}{
		{"empty name", ""},
		{"missing owner", "payments-api"},
		{"too many segments", "acme/payments/api"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.CreateRepo(ctx, CreateRepoInput{FullName: tt.fullName})
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestGetRepoNotFound(t *testing.T) {
	client, _, q := setupServiceTest(t)
	svc := NewRepoService(client, q)

	_, err := svc.GetRepo(context.Background(), "missing-id")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetByFullName(t *testing.T) {
	client, _, q := setupServiceTest(t)
	svc := NewRepoService(client, q)
	ctx := context.Background()

	seeded := seedRepo(t, client, "acme/billing")

	repo, err := svc.GetByFullName(ctx, "acme/billing")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, repo.ID)

	_, err = svc.GetByFullName(ctx, "acme/unknown")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRequestIndexDelta(t *testing.T) {
	client, _, q := setupServiceTest(t)
	svc := NewRepoService(client, q)
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/gateway")

	j, err := svc.RequestIndex(ctx, models.IndexRequest{
		RepoID:       repo.ID,
		CommitSHA:    "abc123",
		ChangedFiles: []string{"internal/auth/token.go"},
	})
	require.NoError(t, err)
	assert.Equal(t, job.TypeIndex, j.Type)

	var payload models.IndexJobPayload
	require.NoError(t, models.PayloadFromMap(j.Payload, &payload))
	assert.Equal(t, repo.ID, payload.RepoID)
	assert.Equal(t, "abc123", payload.CommitSHA)
	assert.True(t, payload.Delta())
}

func TestRequestIndexByFullName(t *testing.T) {
	client, _, q := setupServiceTest(t)
	svc := NewRepoService(client, q)
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/reports")

	j, err := svc.RequestIndex(ctx, models.IndexRequest{FullName: "acme/reports"})
	require.NoError(t, err)
	assert.Equal(t, repo.ID, j.Payload["repo_id"])
}

func TestRequestIndexValidation(t *testing.T) {
	client, _, q := setupServiceTest(t)
	svc := NewRepoService(client, q)
	ctx := context.Background()

	repo := seedRepo(t, client, "acme/archive")

	// Delta pass without the pushed commit is rejected.
	_, err := svc.RequestIndex(ctx, models.IndexRequest{
		RepoID:       repo.ID,
		ChangedFiles: []string{"main.go"},
	})
	assert.True(t, IsValidationError(err), "expected validation error, got %v", err)

	// Neither identifier given.
	_, err = svc.RequestIndex(ctx, models.IndexRequest{})
	assert.True(t, IsValidationError(err), "expected validation error, got %v", err)

	// Unknown repository.
	_, err = svc.RequestIndex(ctx, models.IndexRequest{RepoID: "missing-id"})
	require.ErrorIs(t, err, ErrNotFound)
}
