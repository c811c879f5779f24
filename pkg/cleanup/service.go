// Package cleanup runs the data retention sweeps: expired case logs,
// completed job rows past the result TTL, and failed job rows past the
// failure TTL.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/job"
	"github.com/fincomply/vigil/pkg/caselog"
	"github.com/fincomply/vigil/pkg/config"
)

// Service periodically deletes data past its retention window.
type Service struct {
	client  *ent.Client
	logs    *caselog.Service
	cfg     *config.RetentionConfig
	stopCh  chan struct{}
	doneCh  chan struct{}
	logger  *slog.Logger
	stopped bool
}

// NewService creates a cleanup service.
func NewService(client *ent.Client, logs *caselog.Service, cfg *config.RetentionConfig) *Service {
	return &Service{
		client: client,
		logs:   logs,
		cfg:    cfg,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
		logger: slog.With("component", "cleanup"),
	}
}

// Start launches the periodic sweep loop.
func (s *Service) Start(ctx context.Context) {
	go s.run(ctx)
	s.logger.Info("Cleanup service started", "interval", s.cfg.CleanupInterval)
}

// Stop halts the loop and waits for an in-flight sweep to finish.
func (s *Service) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	close(s.stopCh)
	<-s.doneCh
	s.logger.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs every retention pass once. Each pass is independent; a
// failing one is logged and the others still run.
func (s *Service) Sweep(ctx context.Context) {
	now := time.Now()

	if n, err := s.logs.DeleteExpired(ctx, now); err != nil {
		s.logger.Error("Case log sweep failed", "error", err)
	} else if n > 0 {
		s.logger.Info("Expired case logs deleted", "count", n)
	}

	if n, err := s.deleteJobs(ctx, job.StatusCompleted, now.Add(-s.cfg.JobResultTTL)); err != nil {
		s.logger.Error("Completed job sweep failed", "error", err)
	} else if n > 0 {
		s.logger.Info("Old completed jobs deleted", "count", n)
	}

	if n, err := s.deleteJobs(ctx, job.StatusFailed, now.Add(-s.cfg.JobFailureTTL)); err != nil {
		s.logger.Error("Failed job sweep failed", "error", err)
	} else if n > 0 {
		s.logger.Info("Old failed jobs deleted", "count", n)
	}
}

func (s *Service) deleteJobs(ctx context.Context, status job.Status, cutoff time.Time) (int, error) {
	n, err := s.client.Job.Delete().
		Where(
			job.StatusEQ(status),
			job.CompletedAtNotNil(),
			job.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s jobs: %w", status, err)
	}
	return n, nil
}
