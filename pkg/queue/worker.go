package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/job"
	"github.com/fincomply/vigil/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that leases and processes jobs.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executors map[job.Type]Executor
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a queue worker dispatching on job type.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executors map[job.Type]Executor) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executors:    executors,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// job. It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, leases a job, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check; best-effort and racy across workers, but
	// bounded by WorkerCount and mitigated by poll jitter.
	runningCount, err := w.client.Job.Query().
		Where(job.StatusEQ(job.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking running jobs: %w", err)
	}
	if runningCount >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	j, err := w.leaseNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", j.ID, "job_type", j.Type, "worker_id", w.id)
	log.Info("Job leased")

	w.setStatus(WorkerStatusWorking, j.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	result, execErr := w.execute(ctx, j)

	// Terminal updates use a background context; the job context may have
	// been cancelled or timed out.
	if execErr != nil {
		if err := w.failJob(context.Background(), j, execErr); err != nil {
			log.Error("Failed to record job failure", "error", err)
			return err
		}
		log.Warn("Job failed", "error", execErr)
	} else {
		if err := w.completeJob(context.Background(), j, result); err != nil {
			log.Error("Failed to record job completion", "error", err)
			return err
		}
		log.Info("Job complete")
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()
	return nil
}

// execute dispatches to the registered executor under the job's lease
// timeout.
func (w *Worker) execute(ctx context.Context, j *ent.Job) (map[string]any, error) {
	executor, ok := w.executors[j.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJobType, j.Type)
	}

	timeout := time.Duration(j.TimeoutSeconds) * time.Second
	jobCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := executor.Execute(jobCtx, j)
	if err == nil && errors.Is(jobCtx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("job timed out after %v", timeout)
	}
	return result, err
}

// leaseNextJob atomically leases the oldest leasable job using
// FOR UPDATE SKIP LOCKED. A job under retry backoff (next_attempt_at in
// the future) is not leasable.
func (w *Worker) leaseNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	j, err := tx.Job.Query().
		Where(
			job.StatusEQ(job.StatusQueued),
			job.Or(
				job.NextAttemptAtIsNil(),
				job.NextAttemptAtLTE(now),
			),
		).
		Order(ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query queued jobs: %w", err)
	}

	lease := now.Add(time.Duration(j.TimeoutSeconds) * time.Second)
	j, err = j.Update().
		SetStatus(job.StatusRunning).
		SetWorkerID(w.id).
		SetStartedAt(now).
		SetLeaseExpiresAt(lease).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lease job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lease: %w", err)
	}
	return j, nil
}

// completeJob records the terminal completed status with its result.
func (w *Worker) completeJob(ctx context.Context, j *ent.Job, result map[string]any) error {
	update := w.client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusCompleted).
		SetCompletedAt(time.Now()).
		ClearLeaseExpiresAt()
	if result != nil {
		update = update.SetResult(result)
	}
	return update.Exec(ctx)
}

// failJob either requeues the job under its retry budget with exponential
// backoff, or marks it failed terminally.
func (w *Worker) failJob(ctx context.Context, j *ent.Job, execErr error) error {
	attempt := j.Retries + 1
	if attempt <= j.MaxRetries {
		delay := w.config.RetryDelay(attempt)
		return w.client.Job.UpdateOneID(j.ID).
			SetStatus(job.StatusQueued).
			SetRetries(attempt).
			SetError(execErr.Error()).
			SetNextAttemptAt(time.Now().Add(delay)).
			ClearWorkerID().
			ClearLeaseExpiresAt().
			Exec(ctx)
	}
	return w.client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusFailed).
		SetError(execErr.Error()).
		SetCompletedAt(time.Now()).
		ClearLeaseExpiresAt().
		Exec(ctx)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
