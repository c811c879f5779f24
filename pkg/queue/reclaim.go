package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fincomply/vigil/ent/job"
)

// reclaimState tracks lease reclaim metrics (thread-safe).
type reclaimState struct {
	mu            sync.Mutex
	lastScan      time.Time
	jobsReclaimed int
}

// runReclaim periodically scans for running jobs whose lease has expired.
// All pods run this independently; the operation is idempotent.
func (p *WorkerPool) runReclaim(ctx context.Context) {
	ticker := time.NewTicker(p.config.ReclaimInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.reclaimExpiredLeases(ctx); err != nil {
				slog.Error("Lease reclaim failed", "error", err)
			}
		}
	}
}

// reclaimExpiredLeases returns expired running jobs to the queue (or marks
// them failed once the retry budget is spent). The holder may have crashed
// or stalled past its lease; either way the job is fair game again.
func (p *WorkerPool) reclaimExpiredLeases(ctx context.Context) error {
	now := time.Now()
	expired, err := p.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.LeaseExpiresAtNotNil(),
			job.LeaseExpiresAtLT(now),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query expired leases: %w", err)
	}

	reclaimed := 0
	for _, j := range expired {
		holder := "unknown"
		if j.WorkerID != nil {
			holder = *j.WorkerID
		}
		reason := fmt.Errorf("lease expired; worker %s did not complete within %ds", holder, j.TimeoutSeconds)

		var updateErr error
		attempt := j.Retries + 1
		if attempt <= j.MaxRetries {
			updateErr = p.client.Job.UpdateOneID(j.ID).
				SetStatus(job.StatusQueued).
				SetRetries(attempt).
				SetError(reason.Error()).
				SetNextAttemptAt(now.Add(p.config.RetryDelay(attempt))).
				ClearWorkerID().
				ClearLeaseExpiresAt().
				Exec(ctx)
		} else {
			updateErr = p.client.Job.UpdateOneID(j.ID).
				SetStatus(job.StatusFailed).
				SetError(reason.Error()).
				SetCompletedAt(now).
				ClearLeaseExpiresAt().
				Exec(ctx)
		}
		if updateErr != nil {
			slog.Error("Failed to reclaim job", "job_id", j.ID, "error", updateErr)
			continue
		}

		slog.Warn("Reclaimed expired job lease", "job_id", j.ID, "holder", holder, "attempt", attempt)
		reclaimed++
	}

	p.reclaims.mu.Lock()
	p.reclaims.lastScan = now
	p.reclaims.jobsReclaimed += reclaimed
	p.reclaims.mu.Unlock()
	return nil
}
