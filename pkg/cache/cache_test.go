package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/fincomply/vigil/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisBackend(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc, err := NewRedisCache(context.Background(), mr.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rc.Close() })
	return mr, rc
}

func TestRedisCacheRoundTrip(t *testing.T) {
	_, rc := newRedisBackend(t)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "k", []float32{0.1, 0.2}, time.Hour))

	var got []float32
	require.NoError(t, rc.Get(ctx, "k", &got))
	assert.Equal(t, []float32{0.1, 0.2}, got)
}

func TestRedisCacheMiss(t *testing.T) {
	_, rc := newRedisBackend(t)

	var got string
	err := rc.Get(context.Background(), "absent", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisCacheTTLExpiry(t *testing.T) {
	mr, rc := newRedisBackend(t)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "k", "v", time.Minute))
	mr.FastForward(2 * time.Minute)

	var got string
	assert.ErrorIs(t, rc.Get(ctx, "k", &got), ErrNotFound)
}

func TestMultiLevelPromotesBackendHits(t *testing.T) {
	mr, rc := newRedisBackend(t)
	ctx := context.Background()

	ml, err := NewMultiLevel(16, rc)
	require.NoError(t, err)

	require.NoError(t, rc.Set(ctx, "k", "direct", time.Hour))

	var got string
	require.NoError(t, ml.Get(ctx, "k", &got))
	assert.Equal(t, "direct", got)

	// Served from L1 even after the backend loses the key.
	mr.FlushAll()
	var again string
	require.NoError(t, ml.Get(ctx, "k", &again))
	assert.Equal(t, "direct", again)
}

func TestMultiLevelWithoutBackend(t *testing.T) {
	ml, err := NewMultiLevel(16, nil)
	require.NoError(t, err)
	ctx := context.Background()

	var got int
	assert.ErrorIs(t, ml.Get(ctx, "k", &got), ErrNotFound)

	require.NoError(t, ml.Set(ctx, "k", 42, time.Hour))
	require.NoError(t, ml.Get(ctx, "k", &got))
	assert.Equal(t, 42, got)
}

func TestEnrichmentCacheKeys(t *testing.T) {
	k1 := EmbeddingKey("some chunk text")
	k2 := EmbeddingKey("some chunk text")
	k3 := EmbeddingKey("different text")

	assert.Equal(t, k1, k2, "identical text maps to the same key")
	assert.NotEqual(t, k1, k3)
	assert.True(t, strings.HasPrefix(k1, "emb:"))
	assert.Equal(t, "sum:abc123", SummaryKey("abc123"))
}

func TestEnrichmentCacheRoundTrip(t *testing.T) {
	_, rc := newRedisBackend(t)
	ec, err := NewEnrichmentCache(config.DefaultCacheConfig(), rc)
	require.NoError(t, err)
	ctx := context.Background()

	_, found := ec.GetEmbedding(ctx, "text")
	assert.False(t, found)

	ec.SetEmbedding(ctx, "text", []float32{1, 2, 3})
	vec, found := ec.GetEmbedding(ctx, "text")
	require.True(t, found)
	assert.Equal(t, []float32{1, 2, 3}, vec)

	ec.SetSummary(ctx, "hash1", "stores audit logs for five years")
	sum, found := ec.GetSummary(ctx, "hash1")
	require.True(t, found)
	assert.Equal(t, "stores audit logs for five years", sum)
}
