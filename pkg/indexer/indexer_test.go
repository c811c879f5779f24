package indexer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fincomply/vigil/pkg/codemap"
	"github.com/fincomply/vigil/pkg/config"
	"github.com/fincomply/vigil/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory ChunkStore mirroring the upsert semantics of
// the real one: rows keyed by (repo_id, chunk_hash), existing rows keep
// their chunk_id, and a nil incoming embedding never clears a stored one.
type fakeStore struct {
	rows    map[string]models.CodeChunk
	nextID  int
	upserts int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[string]models.CodeChunk)}
}

func (s *fakeStore) key(repoID, hash string) string { return repoID + "|" + hash }

func (s *fakeStore) UpsertBatch(ctx context.Context, chunks []models.CodeChunk) error {
	s.upserts++
	for _, ch := range chunks {
		k := s.key(ch.RepoID, ch.ChunkHash)
		if old, ok := s.rows[k]; ok {
			ch.ChunkID = old.ChunkID
			if ch.Embedding == nil {
				ch.Embedding = old.Embedding
			}
			if ch.NLSummary == nil {
				ch.NLSummary = old.NLSummary
			}
		} else {
			s.nextID++
			ch.ChunkID = fmt.Sprintf("chunk-%d", s.nextID)
		}
		s.rows[k] = ch
	}
	return nil
}

func (s *fakeStore) FileChunks(ctx context.Context, repoID, filePath string) ([]codemap.PriorChunk, error) {
	var prior []codemap.PriorChunk
	for _, ch := range s.rows {
		if ch.RepoID == repoID && ch.FilePath == filePath {
			prior = append(prior, codemap.PriorChunk{
				ChunkID:     ch.ChunkID,
				ChunkHash:   ch.ChunkHash,
				ASTNodeType: ch.ASTNodeType,
			})
		}
	}
	return prior, nil
}

func (s *fakeStore) DeleteFileChunks(ctx context.Context, repoID, filePath string, retained []string) (int64, error) {
	keep := make(map[string]bool, len(retained))
	for _, h := range retained {
		keep[h] = true
	}
	var removed int64
	for k, ch := range s.rows {
		if ch.RepoID == repoID && ch.FilePath == filePath && !keep[ch.ChunkHash] {
			delete(s.rows, k)
			removed++
		}
	}
	return removed, nil
}

func (s *fakeStore) PruneRemoved(ctx context.Context, repoID string, retained []string) (int64, error) {
	keep := make(map[string]bool, len(retained))
	for _, h := range retained {
		keep[h] = true
	}
	var pruned int64
	for k, ch := range s.rows {
		if ch.RepoID == repoID && !keep[ch.ChunkHash] {
			delete(s.rows, k)
			pruned++
		}
	}
	return pruned, nil
}

func (s *fakeStore) RepoCounts(ctx context.Context, repoID string) (int, int, error) {
	files := make(map[string]bool)
	chunks := 0
	for _, ch := range s.rows {
		if ch.RepoID == repoID {
			chunks++
			files[ch.FilePath] = true
		}
	}
	return chunks, len(files), nil
}

func pyFunc(name string, bodyLines int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "def %s(request):\n", name)
	for i := 0; i < bodyLines; i++ {
		fmt.Fprintf(&b, "    balance = balance + account_%s_total\n", name)
	}
	return b.String()
}

func writeRepoTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func newTestIndexer(t *testing.T, store ChunkStore, embedder *fakeEmbedder, llm *fakeLLM) *Indexer {
	t.Helper()
	cfg := config.DefaultIndexingConfig()
	return NewIndexer(nil, store, nil, newTestEnricher(t, embedder, llm), cfg)
}

func TestFullPassIndexesSupportedFilesOnly(t *testing.T) {
	dir := writeRepoTree(t, map[string]string{
		"a.py":      pyFunc("handler", 8),
		"README.md": "# docs\n\nnothing to index here\n",
	})
	store := newFakeStore()
	ix := newTestIndexer(t, store, &fakeEmbedder{}, &fakeLLM{})

	stats, err := ix.fullPass(context.Background(), "r1", dir)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.files)
	assert.Equal(t, 1, stats.added)
	assert.Zero(t, stats.unchanged)
	require.Len(t, store.rows, 1)
	for _, ch := range store.rows {
		assert.Equal(t, "a.py", ch.FilePath)
		assert.NotEmpty(t, ch.Embedding)
		assert.NotNil(t, ch.NLSummary)
	}
}

func TestFullPassSecondRunIsAllUnchanged(t *testing.T) {
	dir := writeRepoTree(t, map[string]string{"a.py": pyFunc("handler", 8)})
	store := newFakeStore()
	embedder := &fakeEmbedder{}
	llm := &fakeLLM{}
	ix := newTestIndexer(t, store, embedder, llm)

	_, err := ix.fullPass(context.Background(), "r1", dir)
	require.NoError(t, err)
	firstEmbedCalls := embedder.calls.Load()

	var firstIDs []string
	for _, ch := range store.rows {
		firstIDs = append(firstIDs, ch.ChunkID)
	}

	stats, err := ix.fullPass(context.Background(), "r1", dir)
	require.NoError(t, err)

	assert.Zero(t, stats.added)
	assert.Zero(t, stats.removed)
	assert.Equal(t, 1, stats.unchanged)
	assert.Equal(t, firstEmbedCalls, embedder.calls.Load(), "unchanged chunks make no provider calls")

	var secondIDs []string
	for _, ch := range store.rows {
		secondIDs = append(secondIDs, ch.ChunkID)
		assert.NotEmpty(t, ch.Embedding, "unchanged rows keep their embedding")
	}
	assert.ElementsMatch(t, firstIDs, secondIDs)
}

func TestDeltaPassAddsNewFunctionOnly(t *testing.T) {
	original := pyFunc("handler", 8)
	dir := writeRepoTree(t, map[string]string{"a.py": original})
	store := newFakeStore()
	ix := newTestIndexer(t, store, &fakeEmbedder{}, &fakeLLM{})

	_, err := ix.fullPass(context.Background(), "r1", dir)
	require.NoError(t, err)

	// Push adds a second function to a.py.
	updated := original + "\n" + pyFunc("validate", 8)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.py"), []byte(updated), 0o644))

	stats, err := ix.deltaPass(context.Background(), "r1", dir, []string{"a.py"})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.added)
	assert.Equal(t, 1, stats.unchanged)
	assert.Zero(t, stats.removed)
	assert.Len(t, store.rows, 2)
}

func TestDeltaPassDeletedFileDropsItsChunks(t *testing.T) {
	dir := writeRepoTree(t, map[string]string{
		"a.py": pyFunc("handler", 8),
		"b.py": pyFunc("validate", 8),
	})
	store := newFakeStore()
	ix := newTestIndexer(t, store, &fakeEmbedder{}, &fakeLLM{})

	_, err := ix.fullPass(context.Background(), "r1", dir)
	require.NoError(t, err)
	require.Len(t, store.rows, 2)

	require.NoError(t, os.Remove(filepath.Join(dir, "a.py")))
	stats, err := ix.deltaPass(context.Background(), "r1", dir, []string{"a.py"})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.removed)
	require.Len(t, store.rows, 1)
	for _, ch := range store.rows {
		assert.Equal(t, "b.py", ch.FilePath, "untouched files keep their chunks")
	}
}

func TestFullPassPrunesVanishedFiles(t *testing.T) {
	dir := writeRepoTree(t, map[string]string{
		"a.py": pyFunc("handler", 8),
		"b.py": pyFunc("validate", 8),
	})
	store := newFakeStore()
	ix := newTestIndexer(t, store, &fakeEmbedder{}, &fakeLLM{})

	_, err := ix.fullPass(context.Background(), "r1", dir)
	require.NoError(t, err)
	require.Len(t, store.rows, 2)

	require.NoError(t, os.Remove(filepath.Join(dir, "b.py")))
	stats, err := ix.fullPass(context.Background(), "r1", dir)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.removed)
	assert.Len(t, store.rows, 1)
}

func TestUpsertBatcherFlushesInFixedSizes(t *testing.T) {
	store := newFakeStore()
	b := newUpsertBatcher(store, 2)
	ctx := context.Background()

	chunks := make([]models.CodeChunk, 5)
	for i := range chunks {
		chunks[i] = models.CodeChunk{RepoID: "r1", ChunkHash: fmt.Sprintf("h%d", i)}
	}

	require.NoError(t, b.add(ctx, chunks))
	assert.Equal(t, 2, store.upserts, "two full batches persisted eagerly")

	require.NoError(t, b.flush(ctx))
	assert.Equal(t, 3, store.upserts)
	assert.Len(t, store.rows, 5)
}
