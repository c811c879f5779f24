package config

import "time"

// IndexingConfig controls the chunker and the indexer worker.
type IndexingConfig struct {
	// MaxChunkTokens is the split threshold; chunks above it are divided
	// into line-aligned sub-chunks of at most this many tokens.
	MaxChunkTokens int `yaml:"max_chunk_tokens"`

	// MinChunkTokens is the drop threshold; smaller chunks are discarded.
	MinChunkTokens int `yaml:"min_chunk_tokens"`

	// MaxFileSizeMB is the per-file size cap; larger files are skipped.
	MaxFileSizeMB int `yaml:"max_file_size_mb"`

	// FallbackWindowLines is the window size used when no function or
	// class spans are found in a file.
	FallbackWindowLines int `yaml:"fallback_window_lines"`

	// EnrichmentConcurrency is the number of chunks enriched in parallel
	// per batch (embedding + summary per chunk).
	EnrichmentConcurrency int `yaml:"enrichment_concurrency"`

	// UpsertBatchSize is how many chunks are persisted per transaction.
	UpsertBatchSize int `yaml:"upsert_batch_size"`
}

// RetrievalConfig controls rule-to-code nearest-neighbor search.
type RetrievalConfig struct {
	// EmbeddingDimension is fixed across the deployment; every stored
	// vector and every query vector must have exactly this length.
	EmbeddingDimension int `yaml:"embedding_dimension"`

	// SimilarityThreshold gates retrieval hits (similarity = 1 - distance).
	SimilarityThreshold float64 `yaml:"similarity_threshold"`

	// TopK is the default number of nearest neighbors returned.
	TopK int `yaml:"top_k"`

	// MaxHitsPerTask caps how many retrieval hits the investigator
	// adjudicates per navigator task.
	MaxHitsPerTask int `yaml:"max_hits_per_task"`

	// SnippetLength is how many characters of matched code the navigator
	// attaches to each hit.
	SnippetLength int `yaml:"snippet_length"`
}

// ProvidersConfig holds external provider endpoints and budgets.
type ProvidersConfig struct {
	// EmbeddingBaseURL is the OpenAI-compatible embeddings endpoint base.
	EmbeddingBaseURL string `yaml:"embedding_base_url"`

	// EmbeddingModel names the embedding model to request.
	EmbeddingModel string `yaml:"embedding_model"`

	// LLMBaseURL is the OpenAI-compatible chat completions endpoint base.
	LLMBaseURL string `yaml:"llm_base_url"`

	// LLMModel names the completion model to request.
	LLMModel string `yaml:"llm_model"`

	// APIKeyEnv names the environment variable holding the provider key.
	APIKeyEnv string `yaml:"api_key_env"`

	// CallTimeout bounds a single embedding or completion call.
	CallTimeout time.Duration `yaml:"call_timeout"`

	// MaxAttempts is the per-call retry budget for transient failures.
	MaxAttempts int `yaml:"max_attempts"`

	// RateLimitEmbeddings is the embeddings quota in calls per minute.
	RateLimitEmbeddings int `yaml:"rate_limit_embeddings"`

	// RateLimitLLM is the completion quota in calls per minute.
	RateLimitLLM int `yaml:"rate_limit_llm"`
}

// CacheConfig holds embedding/summary cache settings.
type CacheConfig struct {
	// RedisAddr is the host:port of the Redis backend. Empty disables the
	// L2 tier; the in-process LRU still serves hot keys.
	RedisAddr string `yaml:"redis_addr"`

	// RedisPasswordEnv names the environment variable with the password.
	RedisPasswordEnv string `yaml:"redis_password_env"`

	// LocalSize is the entry capacity of the in-process LRU tier.
	LocalSize int `yaml:"local_size"`

	// EmbeddingTTL is the lifetime of cached embedding vectors.
	EmbeddingTTL time.Duration `yaml:"embedding_ttl"`

	// SummaryTTL is the lifetime of cached chunk summaries.
	SummaryTTL time.Duration `yaml:"summary_ttl"`
}

// GitConfig holds repository access settings.
type GitConfig struct {
	// TokenEnv names the environment variable with the read credential.
	TokenEnv string `yaml:"token_env"`

	// CloneDepth is used for full-branch indexing.
	CloneDepth int `yaml:"clone_depth"`

	// DeltaCloneDepth is used when a specific commit SHA must be checked
	// out; shallow history must be deep enough to contain it.
	DeltaCloneDepth int `yaml:"delta_clone_depth"`

	// CloneTimeout bounds a single clone operation.
	CloneTimeout time.Duration `yaml:"clone_timeout"`
}

// TicketsConfig holds ticketing collaborator settings.
type TicketsConfig struct {
	// Project is the ticketing project key remediation tickets go to.
	Project string `yaml:"project"`

	// BaseURL is the ticketing system API base. Empty disables ticket
	// creation; approvals then complete with no tickets.
	BaseURL string `yaml:"base_url"`

	// TokenEnv names the environment variable with the API token.
	TokenEnv string `yaml:"token_env"`
}

// RedactionPattern is a deployment-specific secret shape to mask before
// chunk text reaches an external provider.
type RedactionPattern struct {
	// Name identifies the pattern in logs.
	Name string `yaml:"name"`

	// Pattern is the regular expression to match.
	Pattern string `yaml:"pattern"`

	// Replacement substitutes matches; empty means "[MASKED]".
	Replacement string `yaml:"replacement"`
}

// RedactionConfig controls masking of credential material in code sent to
// external embedding and completion providers.
type RedactionConfig struct {
	// Enabled turns redaction on. Built-in patterns always apply when on.
	Enabled bool `yaml:"enabled"`

	// CustomPatterns extend the built-in set.
	CustomPatterns []RedactionPattern `yaml:"custom_patterns"`
}

// NotificationsConfig holds Slack notification settings. An empty channel
// disables notifications entirely.
type NotificationsConfig struct {
	// SlackTokenEnv names the environment variable with the bot token.
	SlackTokenEnv string `yaml:"slack_token_env"`

	// SlackChannel is the channel ID case notifications go to.
	SlackChannel string `yaml:"slack_channel"`

	// DashboardURL is the base URL linked from notification buttons.
	DashboardURL string `yaml:"dashboard_url"`
}

// DefaultIndexingConfig returns the built-in indexing defaults.
func DefaultIndexingConfig() *IndexingConfig {
	return &IndexingConfig{
		MaxChunkTokens:        1500,
		MinChunkTokens:        50,
		MaxFileSizeMB:         2,
		FallbackWindowLines:   50,
		EnrichmentConcurrency: 10,
		UpsertBatchSize:       50,
	}
}

// DefaultRetrievalConfig returns the built-in retrieval defaults.
func DefaultRetrievalConfig() *RetrievalConfig {
	return &RetrievalConfig{
		EmbeddingDimension:  1536,
		SimilarityThreshold: 0.7,
		TopK:                10,
		MaxHitsPerTask:      10,
		SnippetLength:       200,
	}
}

// DefaultProvidersConfig returns the built-in provider defaults.
func DefaultProvidersConfig() *ProvidersConfig {
	return &ProvidersConfig{
		EmbeddingBaseURL:    "https://api.openai.com/v1",
		EmbeddingModel:      "text-embedding-3-small",
		LLMBaseURL:          "https://api.openai.com/v1",
		LLMModel:            "gpt-4o-mini",
		APIKeyEnv:           "OPENAI_API_KEY",
		CallTimeout:         30 * time.Second,
		MaxAttempts:         3,
		RateLimitEmbeddings: 3500,
		RateLimitLLM:        500,
	}
}

// DefaultCacheConfig returns the built-in cache defaults.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		RedisAddr:        "localhost:6379",
		RedisPasswordEnv: "REDIS_PASSWORD",
		LocalSize:        4096,
		EmbeddingTTL:     24 * time.Hour,
		SummaryTTL:       24 * time.Hour,
	}
}

// DefaultGitConfig returns the built-in repository access defaults.
func DefaultGitConfig() *GitConfig {
	return &GitConfig{
		TokenEnv:        "GITHUB_TOKEN",
		CloneDepth:      1,
		DeltaCloneDepth: 50,
		CloneTimeout:    300 * time.Second,
	}
}

// DefaultTicketsConfig returns the built-in ticketing defaults.
func DefaultTicketsConfig() *TicketsConfig {
	return &TicketsConfig{
		Project:  "COMP",
		TokenEnv: "JIRA_API_TOKEN",
	}
}

// DefaultRedactionConfig returns the built-in redaction defaults.
// Redaction stays off until enabled; section merging treats false as unset,
// so an on-by-default toggle could not be turned off from vigil.yaml.
func DefaultRedactionConfig() *RedactionConfig {
	return &RedactionConfig{}
}

// DefaultNotificationsConfig returns the built-in notification defaults.
// Notifications stay off until a channel is configured.
func DefaultNotificationsConfig() *NotificationsConfig {
	return &NotificationsConfig{
		SlackTokenEnv: "SLACK_BOT_TOKEN",
	}
}
