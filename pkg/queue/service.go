package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/job"
	"github.com/fincomply/vigil/pkg/config"
	"github.com/google/uuid"
)

// Service is the enqueue/status side of the queue, used by the API layer
// and the orchestrator. Workers lease and complete jobs separately.
type Service struct {
	client *ent.Client
	config *config.QueueConfig
}

// NewService creates a queue service.
func NewService(client *ent.Client, cfg *config.QueueConfig) *Service {
	return &Service{client: client, config: cfg}
}

// Enqueue inserts a queued job with the configured retry budget and lease
// duration.
func (s *Service) Enqueue(ctx context.Context, jobType job.Type, payload map[string]any) (*ent.Job, error) {
	j, err := s.client.Job.Create().
		SetID(uuid.NewString()).
		SetType(jobType).
		SetPayload(payload).
		SetStatus(job.StatusQueued).
		SetMaxRetries(s.config.MaxRetries).
		SetTimeoutSeconds(int(s.config.JobTimeout.Seconds())).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue %s job: %w", jobType, err)
	}
	return j, nil
}

// Get returns a job by ID.
func (s *Service) Get(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job %s: %w", jobID, err)
	}
	return j, nil
}

// QueueDepth returns the number of leasable jobs.
func (s *Service) QueueDepth(ctx context.Context) (int, error) {
	n, err := s.client.Job.Query().
		Where(job.StatusEQ(job.StatusQueued)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count queued jobs: %w", err)
	}
	return n, nil
}
