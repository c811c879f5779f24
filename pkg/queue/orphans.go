package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/job"
)

// CleanupStartupOrphans requeues running jobs still claimed by a previous
// incarnation of this pod. Worker IDs are "{podID}-worker-{n}", so after a
// crash-and-restart with the same pod identity those jobs would otherwise
// sit until their lease expires. Other pods' jobs are left alone; the
// reclaim loop handles them.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.WorkerIDHasPrefix(podID+"-worker-"),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	now := time.Now()
	requeued := 0
	for _, j := range orphans {
		attempt := j.Retries + 1
		var updateErr error
		if attempt <= j.MaxRetries {
			updateErr = client.Job.UpdateOneID(j.ID).
				SetStatus(job.StatusQueued).
				SetRetries(attempt).
				SetError("pod restarted while job was running").
				SetNextAttemptAt(now).
				ClearWorkerID().
				ClearLeaseExpiresAt().
				Exec(ctx)
		} else {
			updateErr = client.Job.UpdateOneID(j.ID).
				SetStatus(job.StatusFailed).
				SetError("pod restarted while job was running").
				SetCompletedAt(now).
				ClearLeaseExpiresAt().
				Exec(ctx)
		}
		if updateErr != nil {
			slog.Error("Failed to requeue orphaned job", "job_id", j.ID, "error", updateErr)
			continue
		}
		requeued++
	}

	slog.Info("Startup orphan cleanup finished", "pod_id", podID, "found", len(orphans), "requeued", requeued)
	return nil
}
