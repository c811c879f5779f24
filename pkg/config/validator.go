package config

import (
	"errors"
	"fmt"
)

// Validator performs validation on a loaded Config.
type Validator struct {
	cfg  *Config
	errs []error
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll validates every configuration section and returns all
// collected errors joined together, or nil if the configuration is valid.
func (v *Validator) ValidateAll() error {
	v.validateIndexing()
	v.validateRetrieval()
	v.validateProviders()
	v.validateCache()
	v.validateGit()
	v.validateQueue()
	v.validateRetention()
	v.validateRedaction()
	v.validateNotifications()

	if len(v.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(v.errs...))
}

func (v *Validator) addError(section, field string, err error) {
	v.errs = append(v.errs, NewValidationError(section, field, err))
}

func (v *Validator) validateIndexing() {
	c := v.cfg.Indexing
	if c.MinChunkTokens < 0 {
		v.addError("indexing", "min_chunk_tokens", fmt.Errorf("%w: must be >= 0", ErrInvalidValue))
	}
	if c.MaxChunkTokens <= 0 {
		v.addError("indexing", "max_chunk_tokens", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.MaxChunkTokens <= c.MinChunkTokens {
		v.addError("indexing", "max_chunk_tokens", fmt.Errorf("%w: must be greater than min_chunk_tokens", ErrInvalidValue))
	}
	if c.MaxFileSizeMB <= 0 {
		v.addError("indexing", "max_file_size_mb", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.FallbackWindowLines <= 0 {
		v.addError("indexing", "fallback_window_lines", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.EnrichmentConcurrency <= 0 {
		v.addError("indexing", "enrichment_concurrency", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.UpsertBatchSize <= 0 {
		v.addError("indexing", "upsert_batch_size", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
}

func (v *Validator) validateRetrieval() {
	c := v.cfg.Retrieval
	if c.EmbeddingDimension <= 0 {
		v.addError("retrieval", "embedding_dimension", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		v.addError("retrieval", "similarity_threshold", fmt.Errorf("%w: must be in [0,1]", ErrInvalidValue))
	}
	if c.TopK < 0 {
		v.addError("retrieval", "top_k", fmt.Errorf("%w: must be >= 0", ErrInvalidValue))
	}
	if c.MaxHitsPerTask <= 0 {
		v.addError("retrieval", "max_hits_per_task", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.SnippetLength <= 0 {
		v.addError("retrieval", "snippet_length", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
}

func (v *Validator) validateProviders() {
	c := v.cfg.Providers
	if c.EmbeddingBaseURL == "" {
		v.addError("providers", "embedding_base_url", ErrMissingRequiredField)
	}
	if c.LLMBaseURL == "" {
		v.addError("providers", "llm_base_url", ErrMissingRequiredField)
	}
	if c.CallTimeout <= 0 {
		v.addError("providers", "call_timeout", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.MaxAttempts <= 0 {
		v.addError("providers", "max_attempts", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.RateLimitEmbeddings <= 0 {
		v.addError("providers", "rate_limit_embeddings", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.RateLimitLLM <= 0 {
		v.addError("providers", "rate_limit_llm", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
}

func (v *Validator) validateCache() {
	c := v.cfg.Cache
	if c.LocalSize <= 0 {
		v.addError("cache", "local_size", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.EmbeddingTTL <= 0 {
		v.addError("cache", "embedding_ttl", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.SummaryTTL <= 0 {
		v.addError("cache", "summary_ttl", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
}

func (v *Validator) validateGit() {
	c := v.cfg.Git
	if c.CloneDepth <= 0 {
		v.addError("git", "clone_depth", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.DeltaCloneDepth < c.CloneDepth {
		v.addError("git", "delta_clone_depth", fmt.Errorf("%w: must be >= clone_depth", ErrInvalidValue))
	}
	if c.CloneTimeout <= 0 {
		v.addError("git", "clone_timeout", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
}

func (v *Validator) validateQueue() {
	c := v.cfg.Queue
	if c.WorkerCount <= 0 {
		v.addError("queue", "worker_count", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.MaxConcurrentJobs <= 0 {
		v.addError("queue", "max_concurrent_jobs", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.PollInterval <= 0 {
		v.addError("queue", "poll_interval", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.JobTimeout <= 0 {
		v.addError("queue", "job_timeout", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.MaxRetries < 0 {
		v.addError("queue", "max_retries", fmt.Errorf("%w: must be >= 0", ErrInvalidValue))
	}
	if c.RetryBackoffBase <= 0 {
		v.addError("queue", "retry_backoff_base", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.RetryBackoffCap < c.RetryBackoffBase {
		v.addError("queue", "retry_backoff_cap", fmt.Errorf("%w: must be >= retry_backoff_base", ErrInvalidValue))
	}
}

func (v *Validator) validateRetention() {
	c := v.cfg.Retention
	if c.CaseLogTTL <= 0 {
		v.addError("retention", "case_log_ttl", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.JobResultTTL <= 0 {
		v.addError("retention", "job_result_ttl", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	if c.JobFailureTTL < c.JobResultTTL {
		v.addError("retention", "job_failure_ttl", fmt.Errorf("%w: must be >= job_result_ttl", ErrInvalidValue))
	}
	if c.CleanupInterval <= 0 {
		v.addError("retention", "cleanup_interval", fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
}

func (v *Validator) validateRedaction() {
	c := v.cfg.Redaction
	for i, p := range c.CustomPatterns {
		if p.Pattern == "" {
			v.addError("redaction", fmt.Sprintf("custom_patterns[%d].pattern", i), ErrMissingRequiredField)
		}
	}
}

func (v *Validator) validateNotifications() {
	c := v.cfg.Notifications
	if c.SlackChannel != "" && c.DashboardURL == "" {
		v.addError("notifications", "dashboard_url", fmt.Errorf("%w: required when slack_channel is set", ErrMissingRequiredField))
	}
}
