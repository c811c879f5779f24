package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincomply/vigil/pkg/config"
)

// EnrichmentCache caches the two provider calls made per chunk during
// enrichment. Keys are content-derived: identical input always maps to the
// same key, so a hit is byte-identical to a cold call.
type EnrichmentCache struct {
	cache        *MultiLevel
	embeddingTTL time.Duration
	summaryTTL   time.Duration
	logger       *slog.Logger
}

// NewEnrichmentCache builds the enrichment cache from config. A nil l2
// runs LRU-only.
func NewEnrichmentCache(cfg *config.CacheConfig, l2 Cache) (*EnrichmentCache, error) {
	ml, err := NewMultiLevel(cfg.LocalSize, l2)
	if err != nil {
		return nil, err
	}
	return &EnrichmentCache{
		cache:        ml,
		embeddingTTL: cfg.EmbeddingTTL,
		summaryTTL:   cfg.SummaryTTL,
		logger:       slog.With("component", "enrichment_cache"),
	}, nil
}

// EmbeddingKey derives the cache key for an embedding of text.
func EmbeddingKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "emb:" + hex.EncodeToString(sum[:])
}

// SummaryKey derives the cache key for a chunk summary.
func SummaryKey(chunkHash string) string {
	return "sum:" + chunkHash
}

// GetEmbedding returns the cached embedding for text, or found=false on a
// miss. Backend errors are treated as misses; the cache never fails a
// pipeline.
func (c *EnrichmentCache) GetEmbedding(ctx context.Context, text string) ([]float32, bool) {
	var vec []float32
	err := c.cache.Get(ctx, EmbeddingKey(text), &vec)
	if err != nil {
		if !IsNotFound(err) {
			c.logger.Warn("Embedding cache read failed", "error", err)
		}
		return nil, false
	}
	return vec, true
}

// SetEmbedding stores an embedding under its content key.
func (c *EnrichmentCache) SetEmbedding(ctx context.Context, text string, vec []float32) {
	if err := c.cache.Set(ctx, EmbeddingKey(text), vec, c.embeddingTTL); err != nil {
		c.logger.Warn("Embedding cache write failed", "error", err)
	}
}

// GetSummary returns the cached summary for a chunk hash.
func (c *EnrichmentCache) GetSummary(ctx context.Context, chunkHash string) (string, bool) {
	var summary string
	err := c.cache.Get(ctx, SummaryKey(chunkHash), &summary)
	if err != nil {
		if !IsNotFound(err) {
			c.logger.Warn("Summary cache read failed", "error", err)
		}
		return "", false
	}
	return summary, true
}

// SetSummary stores a summary under the chunk hash key.
func (c *EnrichmentCache) SetSummary(ctx context.Context, chunkHash, summary string) {
	if err := c.cache.Set(ctx, SummaryKey(chunkHash), summary, c.summaryTTL); err != nil {
		c.logger.Warn("Summary cache write failed", "error", err)
	}
}

// Close releases cache resources.
func (c *EnrichmentCache) Close() error {
	if err := c.cache.Close(); err != nil {
		return fmt.Errorf("failed to close cache: %w", err)
	}
	return nil
}
