// Package queue provides the database-backed job queue and its worker
// pool. Delivery is at-least-once: a running job whose lease expired is
// retried by any pod, so executors must be idempotent on their natural
// keys (chunk_hash, case_id, finding_id).
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/fincomply/vigil/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no leasable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been
	// reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrUnknownJobType indicates no executor is registered for the job's
	// type.
	ErrUnknownJobType = errors.New("unknown job type")
)

// Executor processes one job and returns its result payload. Intermediate
// state is written to the database by the executor as it runs; the worker
// only handles leasing, the terminal status update, and retry scheduling.
type Executor interface {
	Execute(ctx context.Context, j *ent.Job) (map[string]any, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, j *ent.Job) (map[string]any, error)

func (f ExecutorFunc) Execute(ctx context.Context, j *ent.Job) (map[string]any, error) {
	return f(ctx, j)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	RunningJobs   int            `json:"running_jobs"`
	MaxConcurrent int            `json:"max_concurrent"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
	LastReclaim   time.Time      `json:"last_reclaim_scan"`
	JobsReclaimed int            `json:"jobs_reclaimed"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
