package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vigil.yaml"), []byte(content), 0o644))
}

func TestInitializeDefaults(t *testing.T) {
	// No vigil.yaml at all: built-in defaults apply.
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 1500, cfg.Indexing.MaxChunkTokens)
	assert.Equal(t, 50, cfg.Indexing.MinChunkTokens)
	assert.Equal(t, 10, cfg.Indexing.EnrichmentConcurrency)
	assert.Equal(t, 1536, cfg.Retrieval.EmbeddingDimension)
	assert.Equal(t, 0.7, cfg.Retrieval.SimilarityThreshold)
	assert.Equal(t, 10, cfg.Retrieval.TopK)
	assert.Equal(t, 3500, cfg.Providers.RateLimitEmbeddings)
	assert.Equal(t, 500, cfg.Providers.RateLimitLLM)
	assert.Equal(t, 24*time.Hour, cfg.Cache.EmbeddingTTL)
	assert.Equal(t, 1*time.Hour, cfg.Queue.JobTimeout)
	assert.Equal(t, 3, cfg.Queue.MaxRetries)
	assert.Equal(t, 1*time.Hour, cfg.Retention.CaseLogTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Retention.JobFailureTTL)
}

func TestInitializeUserOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
indexing:
  max_chunk_tokens: 2000
retrieval:
  similarity_threshold: 0.8
  top_k: 5
queue:
  worker_count: 2
  job_timeout: 30m
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2000, cfg.Indexing.MaxChunkTokens)
	// Unset values keep defaults.
	assert.Equal(t, 50, cfg.Indexing.MinChunkTokens)
	assert.Equal(t, 0.8, cfg.Retrieval.SimilarityThreshold)
	assert.Equal(t, 5, cfg.Retrieval.TopK)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 30*time.Minute, cfg.Queue.JobTimeout)
	assert.Equal(t, 5, cfg.Queue.MaxConcurrentJobs)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("TEST_REDIS_ADDR", "redis.internal:6380")

	dir := t.TempDir()
	writeConfigFile(t, dir, `
cache:
  redis_addr: "${TEST_REDIS_ADDR}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6380", cfg.Cache.RedisAddr)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "indexing: [not: a: mapping")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "vigil.yaml")
}

func TestInitializeValidationFailure(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
retrieval:
  similarity_threshold: 1.5
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}
