package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fincomply/vigil/ent"
	"github.com/fincomply/vigil/ent/job"
	"github.com/fincomply/vigil/pkg/config"
)

// WorkerPool manages a pool of queue workers plus the shared lease reclaim
// loop.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executors map[job.Type]Executor
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	started   bool

	reclaims reclaimState
}

// NewWorkerPool creates a worker pool dispatching jobs by type.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executors map[job.Type]Executor) *WorkerPool {
	return &WorkerPool{
		podID:     podID,
		client:    client,
		config:    cfg,
		executors: executors,
		workers:   make([]*Worker, 0, cfg.WorkerCount),
		stopCh:    make(chan struct{}),
	}
}

// Start spawns worker goroutines and the lease reclaim background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executors)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runReclaim(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits up to the graceful shutdown
// timeout for them to finish their current jobs. Jobs still running after
// that are abandoned; their leases expire and another pod reclaims them.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	done := make(chan struct{})
	go func() {
		for _, worker := range p.workers {
			worker.Stop()
		}
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-time.After(p.config.GracefulShutdownTimeout):
		slog.Warn("Graceful shutdown timeout reached, abandoning running jobs",
			"timeout", p.config.GracefulShutdownTimeout)
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Job.Query().
		Where(job.StatusEQ(job.StatusQueued)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check", "pod_id", p.podID, "error", errQ)
	}

	runningJobs, errR := p.client.Job.Query().
		Where(job.StatusEQ(job.StatusRunning)).
		Count(ctx)
	if errR != nil {
		slog.Error("Failed to query running jobs for health check", "pod_id", p.podID, "error", errR)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errR == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.reclaims.mu.Lock()
	lastReclaim := p.reclaims.lastScan
	jobsReclaimed := p.reclaims.jobsReclaimed
	p.reclaims.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else {
			dbError = fmt.Sprintf("running jobs query failed: %v", errR)
		}
	}

	return &PoolHealth{
		IsHealthy:     isHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		PodID:         p.podID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		RunningJobs:   runningJobs,
		MaxConcurrent: p.config.MaxConcurrentJobs,
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
		LastReclaim:   lastReclaim,
		JobsReclaimed: jobsReclaimed,
	}
}
