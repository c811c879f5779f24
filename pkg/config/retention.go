package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// CaseLogTTL is how long case logs live after the case reaches a
	// terminal state.
	CaseLogTTL time.Duration `yaml:"case_log_ttl"`

	// JobResultTTL is how long completed job rows are kept.
	JobResultTTL time.Duration `yaml:"job_result_ttl"`

	// JobFailureTTL is how long terminally failed job rows are kept.
	JobFailureTTL time.Duration `yaml:"job_failure_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		CaseLogTTL:      1 * time.Hour,
		JobResultTTL:    24 * time.Hour,
		JobFailureTTL:   7 * 24 * time.Hour,
		CleanupInterval: 15 * time.Minute,
	}
}
