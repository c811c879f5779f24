package integration

import (
	"context"
	"testing"

	"github.com/fincomply/vigil/pkg/codemap"
	"github.com/fincomply/vigil/pkg/models"
	"github.com/fincomply/vigil/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dim = 1536

func chunk(repoID, filePath, hash string, hot int, text string) models.CodeChunk {
	return models.CodeChunk{
		RepoID:    repoID,
		FilePath:  filePath,
		Language:  "go",
		StartLine: 1,
		EndLine:   10,
		ChunkText: text,
		FileHash:  "fh-" + filePath,
		ChunkHash: hash,
		Embedding: unitVector(dim, hot),
		DeltaType: models.DeltaAdded,
	}
}

func TestCodeMapUpsertAndSearch(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	store := codemap.NewStore(db)

	require.NoError(t, store.UpsertBatch(ctx, []models.CodeChunk{
		chunk("r1", "auth/login.go", "h1", 0, "func Login() {}"),
		chunk("r1", "auth/mfa.go", "h2", 1, "func VerifyTOTP() {}"),
		chunk("r2", "other/main.go", "h3", 0, "func main() {}"),
	}))

	// Nearest to axis 0, scoped to r1: the login chunk wins, the other
	// repository's identical embedding is excluded.
	hits, err := store.SearchSimilar(ctx, unitVector(dim, 0), "r1", 10)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "auth/login.go", hits[0].Chunk.FilePath)
	assert.InDelta(t, 1.0, hits[0].Similarity, 1e-6)
	assert.Equal(t, "auth/mfa.go", hits[1].Chunk.FilePath)
	assert.InDelta(t, 0.0, hits[1].Similarity, 1e-6)

	// Unscoped search sees both repositories.
	hits, err = store.SearchSimilar(ctx, unitVector(dim, 0), "", 10)
	require.NoError(t, err)
	assert.Len(t, hits, 3)

	// k <= 0 returns nothing.
	hits, err = store.SearchSimilar(ctx, unitVector(dim, 0), "r1", 0)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestCodeMapUpsertKeepsEnrichmentOnConflict(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	store := codemap.NewStore(db)

	summary := "validates one-time passwords"
	first := chunk("r1", "auth/mfa.go", "h1", 0, "func VerifyTOTP() {}")
	first.NLSummary = &summary
	require.NoError(t, store.UpsertBatch(ctx, []models.CodeChunk{first}))

	// Re-upsert of the same (repo_id, chunk_hash) without enrichment must
	// not clear the stored embedding or summary.
	again := chunk("r1", "auth/mfa.go", "h1", 0, "func VerifyTOTP() {}")
	again.Embedding = nil
	again.NLSummary = nil
	again.DeltaType = models.DeltaUnchanged
	require.NoError(t, store.UpsertBatch(ctx, []models.CodeChunk{again}))

	hits, err := store.SearchSimilar(ctx, unitVector(dim, 0), "r1", 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.NotNil(t, hits[0].Chunk.NLSummary)
	assert.Equal(t, summary, *hits[0].Chunk.NLSummary)
	assert.Equal(t, models.DeltaUnchanged, hits[0].Chunk.DeltaType)

	chunks, files, err := store.RepoCounts(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 1, chunks)
	assert.Equal(t, 1, files)
}

func TestCodeMapPruneAndFileDeletes(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	store := codemap.NewStore(db)

	require.NoError(t, store.UpsertBatch(ctx, []models.CodeChunk{
		chunk("r1", "a.go", "h1", 0, "a"),
		chunk("r1", "a.go", "h2", 1, "b"),
		chunk("r1", "b.go", "h3", 2, "c"),
	}))

	// Delta pass on a.go: h2 disappeared from the re-chunked file.
	removed, err := store.DeleteFileChunks(ctx, "r1", "a.go", []string{"h1"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	prior, err := store.FileChunks(ctx, "r1", "a.go")
	require.NoError(t, err)
	require.Len(t, prior, 1)
	assert.Equal(t, "h1", prior[0].ChunkHash)

	// Full pass retained only h3; everything else goes.
	pruned, err := store.PruneRemoved(ctx, "r1", []string{"h3"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, pruned)

	hashes, err := store.RepoChunkHashes(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"h3"}, hashes)

	// Empty retained set wipes the repository.
	pruned, err = store.PruneRemoved(ctx, "r1", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pruned)
}

func TestRegulationStoreReadsChunksInOrder(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	store := codemap.NewRegulationStore(db)

	seedRegulation(t, db, "GDPR-32", "Part one of the rule.", "Part two of the rule.")
	seedRegulation(t, db, "PCI-8.4", "MFA is required for all access.")

	chunks, err := store.ChunksByRules(ctx, []string{"PCI-8.4", "GDPR-32"})
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	// Ordered by rule then chunk index regardless of request order.
	assert.Equal(t, "GDPR-32", chunks[0].RuleID)
	assert.Equal(t, 0, chunks[0].ChunkIndex)
	assert.Equal(t, "GDPR-32", chunks[1].RuleID)
	assert.Equal(t, 1, chunks[1].ChunkIndex)
	assert.Equal(t, "PCI-8.4", chunks[2].RuleID)

	known, err := store.KnownRuleIDs(ctx, []string{"PCI-8.4", "NOPE-1", "GDPR-32"})
	require.NoError(t, err)
	assert.Equal(t, []string{"PCI-8.4", "GDPR-32"}, known)
}

func TestSchemaCreatesEmbeddingIndexes(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	for _, table := range []string{"code_map", "regulation_chunks"} {
		var indexdef string
		err := db.QueryRowContext(ctx,
			`SELECT indexdef FROM pg_indexes
			 WHERE schemaname = current_schema() AND tablename = $1 AND indexname = $2`,
			table, table+"_embedding").Scan(&indexdef)
		require.NoError(t, err, "embedding index missing on %s", table)
		assert.Contains(t, indexdef, "ivfflat")
		assert.Contains(t, indexdef, "vector_cosine_ops")
	}
}
