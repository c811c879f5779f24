package retriever

import (
	"context"
	"testing"

	"github.com/fincomply/vigil/pkg/cache"
	"github.com/fincomply/vigil/pkg/config"
	"github.com/fincomply/vigil/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearchStore struct {
	hits     []models.RetrievalHit
	lastK    int
	lastRepo string
}

func (f *fakeSearchStore) SearchSimilar(ctx context.Context, queryEmbedding []float32, repoID string, k int) ([]models.RetrievalHit, error) {
	f.lastK = k
	f.lastRepo = repoID
	if k > len(f.hits) {
		k = len(f.hits)
	}
	return f.hits[:k], nil
}

type fixedEmbedder struct {
	dim   int
	calls int
}

func (f *fixedEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	vecs := make([][]float32, len(texts))
	for i := range texts {
		vecs[i] = make([]float32, f.dim)
		vecs[i][0] = 1
	}
	return vecs, nil
}

func hit(path string, similarity float64) models.RetrievalHit {
	return models.RetrievalHit{
		Chunk:      models.CodeChunk{FilePath: path},
		Distance:   1 - similarity,
		Similarity: similarity,
	}
}

func newTestRetriever(t *testing.T, store SearchStore) (*Retriever, *fixedEmbedder) {
	t.Helper()
	cfg := config.DefaultRetrievalConfig()
	cfg.EmbeddingDimension = 8

	ec, err := cache.NewEnrichmentCache(config.DefaultCacheConfig(), nil)
	require.NoError(t, err)

	embedder := &fixedEmbedder{dim: cfg.EmbeddingDimension}
	return NewRetriever(store, embedder, ec, cfg), embedder
}

func TestRetrieveGatesOnSimilarityThreshold(t *testing.T) {
	store := &fakeSearchStore{hits: []models.RetrievalHit{
		hit("kyc/verify.py", 0.92),
		hit("storage/records.py", 0.71),
		hit("util/strings.py", 0.42),
	}}
	r, _ := newTestRetriever(t, store)

	hits, err := r.Retrieve(context.Background(), "customer identity verification", "r1", 10)
	require.NoError(t, err)

	require.Len(t, hits, 2)
	assert.Equal(t, "kyc/verify.py", hits[0].Chunk.FilePath)
	assert.Equal(t, "storage/records.py", hits[1].Chunk.FilePath)
	assert.Equal(t, 10, store.lastK)
	assert.Equal(t, "r1", store.lastRepo)
}

func TestRetrieveFewerRowsThanK(t *testing.T) {
	store := &fakeSearchStore{hits: []models.RetrievalHit{hit("a.py", 0.9)}}
	r, _ := newTestRetriever(t, store)

	hits, err := r.Retrieve(context.Background(), "q", "r1", 10)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestRetrieveZeroTopKRetrievesNothing(t *testing.T) {
	store := &fakeSearchStore{hits: []models.RetrievalHit{
		hit("kyc/verify.py", 0.92),
		hit("storage/records.py", 0.71),
	}}
	r, embedder := newTestRetriever(t, store)

	for _, k := range []int{0, -1} {
		hits, err := r.Retrieve(context.Background(), "q", "r1", k)
		require.NoError(t, err)
		assert.Empty(t, hits)

		hits, err = r.RetrieveByEmbedding(context.Background(), make([]float32, 8), "r1", k)
		require.NoError(t, err)
		assert.Empty(t, hits)
	}

	// The short-circuit happens before the embedding and the store query.
	assert.Equal(t, 0, embedder.calls)
	assert.Equal(t, 0, store.lastK)
}

func TestRetrieveCachesQueryEmbedding(t *testing.T) {
	store := &fakeSearchStore{}
	r, embedder := newTestRetriever(t, store)
	ctx := context.Background()

	_, err := r.Retrieve(ctx, "same query", "r1", 5)
	require.NoError(t, err)
	_, err = r.Retrieve(ctx, "same query", "r1", 5)
	require.NoError(t, err)

	assert.Equal(t, 1, embedder.calls)
}

func TestRetrieveByEmbeddingRejectsWrongDimension(t *testing.T) {
	r, _ := newTestRetriever(t, &fakeSearchStore{})

	_, err := r.RetrieveByEmbedding(context.Background(), []float32{1, 2, 3}, "r1", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension")
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "abc", Snippet("abc", 10))
	assert.Equal(t, "abcde", Snippet("abcdefgh", 5))
	assert.Equal(t, "abc", Snippet("abc", 0))
}
