package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/job"
	"github.com/fincomply/vigil/ent/repository"
	"github.com/fincomply/vigil/pkg/models"
	"github.com/fincomply/vigil/pkg/queue"
	"github.com/google/uuid"
)

// CreateRepoInput contains the domain-level data needed to register a
// repository. Transformed from the HTTP request or webhook by the handler.
type CreateRepoInput struct {
	FullName       string
	GithubID       int64
	InstallationID int64
	DefaultBranch  string
}

// RepoService registers repositories and requests index passes.
type RepoService struct {
	client *ent.Client
	queue  *queue.Service
}

// NewRepoService creates a new RepoService.
func NewRepoService(client *ent.Client, q *queue.Service) *RepoService {
	if client == nil {
		panic("NewRepoService: client must not be nil")
	}
	if q == nil {
		panic("NewRepoService: queue must not be nil")
	}
	return &RepoService{client: client, queue: q}
}

// CreateRepo registers a repository and enqueues its first full index pass.
func (s *RepoService) CreateRepo(ctx context.Context, input CreateRepoInput) (*ent.Repository, *ent.Job, error) {
	if input.FullName == "" {
		return nil, nil, NewValidationError("full_name", "repository full name is required")
	}
	if strings.Count(input.FullName, "/") != 1 {
		return nil, nil, NewValidationError("full_name", "expected 'owner/name' form")
	}

	branch := input.DefaultBranch
	if branch == "" {
		branch = "main"
	}

	builder := s.client.Repository.Create().
		SetID(uuid.NewString()).
		SetFullName(input.FullName).
		SetDefaultBranch(branch).
		SetInstallationID(input.InstallationID)
	if input.GithubID != 0 {
		builder.SetGithubID(input.GithubID)
	}

	repo, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, nil, fmt.Errorf("%w: repository %s", ErrAlreadyExists, input.FullName)
		}
		return nil, nil, fmt.Errorf("failed to create repository: %w", err)
	}

	j, err := s.enqueueIndex(ctx, models.IndexJobPayload{RepoID: repo.ID})
	if err != nil {
		return repo, nil, err
	}
	return repo, j, nil
}

// GetRepo returns a repository by ID.
func (s *RepoService) GetRepo(ctx context.Context, repoID string) (*ent.Repository, error) {
	repo, err := s.client.Repository.Get(ctx, repoID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: repository %s", ErrNotFound, repoID)
		}
		return nil, fmt.Errorf("failed to load repository: %w", err)
	}
	return repo, nil
}

// GetByFullName returns a repository by its external name.
func (s *RepoService) GetByFullName(ctx context.Context, fullName string) (*ent.Repository, error) {
	repo, err := s.client.Repository.Query().
		Where(repository.FullNameEQ(fullName)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: repository %s", ErrNotFound, fullName)
		}
		return nil, fmt.Errorf("failed to load repository: %w", err)
	}
	return repo, nil
}

// RequestIndex enqueues an index pass. ChangedFiles non-empty requests a
// delta pass restricted to those paths; otherwise the default branch is
// re-indexed in full.
func (s *RepoService) RequestIndex(ctx context.Context, req models.IndexRequest) (*ent.Job, error) {
	repoID := req.RepoID
	if repoID == "" && req.FullName != "" {
		repo, err := s.GetByFullName(ctx, req.FullName)
		if err != nil {
			return nil, err
		}
		repoID = repo.ID
	}
	if repoID == "" {
		return nil, NewValidationError("repo_id", "repo_id or full_name is required")
	}
	if _, err := s.GetRepo(ctx, repoID); err != nil {
		return nil, err
	}
	if len(req.ChangedFiles) > 0 && req.CommitSHA == "" {
		return nil, NewValidationError("commit_sha", "delta index requires the pushed commit sha")
	}

	return s.enqueueIndex(ctx, models.IndexJobPayload{
		RepoID:       repoID,
		CommitSHA:    req.CommitSHA,
		ChangedFiles: req.ChangedFiles,
	})
}

func (s *RepoService) enqueueIndex(ctx context.Context, payload models.IndexJobPayload) (*ent.Job, error) {
	m, err := models.PayloadToMap(payload)
	if err != nil {
		return nil, err
	}
	j, err := s.queue.Enqueue(ctx, job.TypeIndex, m)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue index job: %w", err)
	}
	return j, nil
}
