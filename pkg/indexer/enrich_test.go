package indexer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/fincomply/vigil/pkg/cache"
	"github.com/fincomply/vigil/pkg/config"
	"github.com/fincomply/vigil/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmbedder struct {
	calls atomic.Int64
	fail  bool
}

func (f *fakeEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls.Add(1)
	if f.fail {
		return nil, errors.New("embedding provider down")
	}
	vecs := make([][]float32, len(texts))
	for i := range texts {
		vecs[i] = []float32{float32(len(texts[i])), 1, 0}
	}
	return vecs, nil
}

type fakeLLM struct {
	calls atomic.Int64
	fail  bool
	reply string
}

func (f *fakeLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.calls.Add(1)
	if f.fail {
		return "", errors.New("llm provider down")
	}
	if f.reply != "" {
		return f.reply, nil
	}
	return "stores customer records", nil
}

func newTestEnricher(t *testing.T, embedder *fakeEmbedder, llm *fakeLLM) *Enricher {
	t.Helper()
	ec, err := cache.NewEnrichmentCache(config.DefaultCacheConfig(), nil)
	require.NoError(t, err)
	return NewEnricher(embedder, llm, ec, 4)
}

func TestEnrichChunksFillsEmbeddingAndSummary(t *testing.T) {
	embedder := &fakeEmbedder{}
	llm := &fakeLLM{}
	e := newTestEnricher(t, embedder, llm)

	chunks := []models.CodeChunk{
		{ChunkText: "def save(): pass", ChunkHash: "h1", DeltaType: models.DeltaAdded},
	}
	out := e.EnrichChunks(context.Background(), chunks)

	require.NotEmpty(t, out[0].Embedding)
	require.NotNil(t, out[0].NLSummary)
	assert.Equal(t, "stores customer records", *out[0].NLSummary)
}

func TestEnrichChunksSkipsUnchanged(t *testing.T) {
	embedder := &fakeEmbedder{}
	llm := &fakeLLM{}
	e := newTestEnricher(t, embedder, llm)

	chunks := []models.CodeChunk{
		{ChunkText: "x", ChunkHash: "h1", DeltaType: models.DeltaUnchanged},
	}
	out := e.EnrichChunks(context.Background(), chunks)

	assert.Nil(t, out[0].Embedding)
	assert.Nil(t, out[0].NLSummary)
	assert.Zero(t, embedder.calls.Load())
	assert.Zero(t, llm.calls.Load())
}

func TestEnrichChunksProviderFailureLeavesChunkBare(t *testing.T) {
	embedder := &fakeEmbedder{fail: true}
	llm := &fakeLLM{fail: true}
	e := newTestEnricher(t, embedder, llm)

	chunks := []models.CodeChunk{
		{ChunkText: "x", ChunkHash: "h1", DeltaType: models.DeltaAdded},
		{ChunkText: "y", ChunkHash: "h2", DeltaType: models.DeltaAdded},
	}
	out := e.EnrichChunks(context.Background(), chunks)

	// The batch completes; failed chunks are simply stored without
	// enrichment.
	require.Len(t, out, 2)
	assert.Nil(t, out[0].Embedding)
	assert.Nil(t, out[0].NLSummary)
	assert.Nil(t, out[1].Embedding)
}

func TestEnrichChunksSecondRunHitsCache(t *testing.T) {
	embedder := &fakeEmbedder{}
	llm := &fakeLLM{}
	e := newTestEnricher(t, embedder, llm)

	chunks := []models.CodeChunk{
		{ChunkText: "def save(): pass", ChunkHash: "h1", DeltaType: models.DeltaAdded},
	}
	e.EnrichChunks(context.Background(), chunks)
	require.Equal(t, int64(1), embedder.calls.Load())
	require.Equal(t, int64(1), llm.calls.Load())

	again := []models.CodeChunk{
		{ChunkText: "def save(): pass", ChunkHash: "h1", DeltaType: models.DeltaAdded},
	}
	out := e.EnrichChunks(context.Background(), again)

	assert.Equal(t, int64(1), embedder.calls.Load(), "embedding served from cache")
	assert.Equal(t, int64(1), llm.calls.Load(), "summary served from cache")
	assert.NotEmpty(t, out[0].Embedding)
	assert.NotNil(t, out[0].NLSummary)
}
