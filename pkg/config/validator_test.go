package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Indexing:  DefaultIndexingConfig(),
		Retrieval: DefaultRetrievalConfig(),
		Providers: DefaultProvidersConfig(),
		Cache:     DefaultCacheConfig(),
		Git:       DefaultGitConfig(),
		Tickets:   DefaultTicketsConfig(),
		Queue:     DefaultQueueConfig(),
		Retention: DefaultRetentionConfig(),

		Redaction:     DefaultRedactionConfig(),
		Notifications: DefaultNotificationsConfig(),
	}
}

func TestValidateAllDefaults(t *testing.T) {
	require.NoError(t, NewValidator(validConfig()).ValidateAll())
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "min tokens above max",
			mutate:  func(c *Config) { c.Indexing.MinChunkTokens = 2000 },
			wantErr: "max_chunk_tokens",
		},
		{
			name:    "threshold above one",
			mutate:  func(c *Config) { c.Retrieval.SimilarityThreshold = 1.2 },
			wantErr: "similarity_threshold",
		},
		{
			name:    "negative top_k",
			mutate:  func(c *Config) { c.Retrieval.TopK = -1 },
			wantErr: "top_k",
		},
		{
			name:    "missing embedding endpoint",
			mutate:  func(c *Config) { c.Providers.EmbeddingBaseURL = "" },
			wantErr: "embedding_base_url",
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Queue.WorkerCount = 0 },
			wantErr: "worker_count",
		},
		{
			name:    "backoff cap below base",
			mutate:  func(c *Config) { c.Queue.RetryBackoffCap = c.Queue.RetryBackoffBase / 2 },
			wantErr: "retry_backoff_cap",
		},
		{
			name:    "delta depth below full depth",
			mutate:  func(c *Config) { c.Git.DeltaCloneDepth = 0 },
			wantErr: "delta_clone_depth",
		},
		{
			name:    "failure retention below result retention",
			mutate:  func(c *Config) { c.Retention.JobFailureTTL = c.Retention.JobResultTTL / 2 },
			wantErr: "job_failure_ttl",
		},
		{
			name: "custom redaction pattern without regex",
			mutate: func(c *Config) {
				c.Redaction.CustomPatterns = []RedactionPattern{{Name: "broken"}}
			},
			wantErr: "custom_patterns[0].pattern",
		},
		{
			name: "slack channel without dashboard url",
			mutate: func(c *Config) {
				c.Notifications.SlackChannel = "C0123456789"
			},
			wantErr: "dashboard_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateAllCollectsMultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Queue.WorkerCount = 0
	cfg.Retrieval.TopK = -5

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorContains(t, err, "worker_count")
	assert.ErrorContains(t, err, "top_k")
}
