package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how jobs are polled, leased, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes jobs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentJobs is the global limit of concurrent running jobs
	// across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs"`

	// PollInterval is the base interval for checking queued jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// JobTimeout is the lease duration. A running job whose lease has
	// expired is reclaimable by any worker.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// MaxRetries is the default retry budget for failed jobs.
	MaxRetries int `yaml:"max_retries"`

	// RetryBackoffBase is the delay before the first retry; it doubles
	// per attempt up to RetryBackoffCap.
	RetryBackoffBase time.Duration `yaml:"retry_backoff_base"`

	// RetryBackoffCap bounds the retry delay.
	RetryBackoffCap time.Duration `yaml:"retry_backoff_cap"`

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// ReclaimInterval is how often to scan for expired leases.
	ReclaimInterval time.Duration `yaml:"reclaim_interval"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentJobs:       5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              1 * time.Hour,
		MaxRetries:              3,
		RetryBackoffBase:        2 * time.Second,
		RetryBackoffCap:         10 * time.Second,
		GracefulShutdownTimeout: 1 * time.Hour,
		ReclaimInterval:         1 * time.Minute,
	}
}

// RetryDelay returns the backoff before retry attempt n (1-based):
// exponential with factor 2, base RetryBackoffBase, capped at
// RetryBackoffCap.
func (q *QueueConfig) RetryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := q.RetryBackoffBase
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= q.RetryBackoffCap {
			return q.RetryBackoffCap
		}
	}
	if d > q.RetryBackoffCap {
		return q.RetryBackoffCap
	}
	return d
}
