// Package codemap owns the code_map table: durable upserts and kNN vector
// retrieval over pgvector. It works on raw SQL through sqlx because Ent
// has no vector column support.
package codemap

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/fincomply/vigil/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
)

// Store provides code-map persistence and retrieval.
type Store struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore wraps the shared database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:     sqlx.NewDb(db, "pgx"),
		logger: slog.With("component", "codemap"),
	}
}

const upsertChunkSQL = `
INSERT INTO code_map (
	chunk_id, repo_id, file_path, language, start_line, end_line,
	chunk_text, ast_node_type, file_hash, chunk_hash, embedding, nl_summary,
	call_links, variables, config_keys, semantic_tags, previous_hash, delta_type,
	created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::vector, $12,
	$13, $14, $15, $16, $17, $18, now(), now()
)
ON CONFLICT (repo_id, chunk_hash) DO UPDATE SET
	file_path     = EXCLUDED.file_path,
	language      = EXCLUDED.language,
	start_line    = EXCLUDED.start_line,
	end_line      = EXCLUDED.end_line,
	ast_node_type = EXCLUDED.ast_node_type,
	file_hash     = EXCLUDED.file_hash,
	embedding     = COALESCE(EXCLUDED.embedding, code_map.embedding),
	nl_summary    = COALESCE(EXCLUDED.nl_summary, code_map.nl_summary),
	call_links    = EXCLUDED.call_links,
	variables     = EXCLUDED.variables,
	config_keys   = EXCLUDED.config_keys,
	semantic_tags = EXCLUDED.semantic_tags,
	previous_hash = EXCLUDED.previous_hash,
	delta_type    = EXCLUDED.delta_type,
	updated_at    = now()`

// UpsertBatch inserts or updates chunks by their (repo_id, chunk_hash)
// natural key in one transaction. Existing rows keep their chunk_id, and a
// nil embedding or summary on the incoming chunk never clears a stored one
// (unchanged rows retain prior enrichment).
func (s *Store) UpsertBatch(ctx context.Context, chunks []models.CodeChunk) error {
	if len(chunks) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin upsert transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, ch := range chunks {
		chunkID := ch.ChunkID
		if chunkID == "" {
			chunkID = uuid.NewString()
		}

		var embedding *string
		if len(ch.Embedding) > 0 {
			lit := vectorLiteral(ch.Embedding)
			embedding = &lit
		}

		callLinks, err := marshalList(ch.CallLinks)
		if err != nil {
			return err
		}
		variables, err := marshalList(ch.Variables)
		if err != nil {
			return err
		}
		configKeys, err := marshalList(ch.ConfigKeys)
		if err != nil {
			return err
		}
		semanticTags, err := marshalList(ch.SemanticTags)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, upsertChunkSQL,
			chunkID, ch.RepoID, ch.FilePath, ch.Language, ch.StartLine, ch.EndLine,
			ch.ChunkText, ch.ASTNodeType, ch.FileHash, ch.ChunkHash, embedding, ch.NLSummary,
			callLinks, variables, configKeys, semanticTags, ch.PreviousHash, string(ch.DeltaType),
		); err != nil {
			return fmt.Errorf("failed to upsert chunk %s: %w", ch.ChunkHash, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit upsert transaction: %w", err)
	}
	return nil
}

// chunkRow is the scan target for code_map reads.
type chunkRow struct {
	ChunkID      string         `db:"chunk_id"`
	RepoID       string         `db:"repo_id"`
	FilePath     string         `db:"file_path"`
	Language     string         `db:"language"`
	StartLine    int            `db:"start_line"`
	EndLine      int            `db:"end_line"`
	ChunkText    string         `db:"chunk_text"`
	ASTNodeType  *string        `db:"ast_node_type"`
	FileHash     string         `db:"file_hash"`
	ChunkHash    string         `db:"chunk_hash"`
	Embedding    sql.NullString `db:"embedding"`
	NLSummary    *string        `db:"nl_summary"`
	CallLinks    types.JSONText `db:"call_links"`
	Variables    types.JSONText `db:"variables"`
	ConfigKeys   types.JSONText `db:"config_keys"`
	SemanticTags types.JSONText `db:"semantic_tags"`
	PreviousHash *string        `db:"previous_hash"`
	DeltaType    string         `db:"delta_type"`
	Distance     float64        `db:"distance"`
}

func (r chunkRow) toChunk() (models.CodeChunk, error) {
	ch := models.CodeChunk{
		ChunkID:      r.ChunkID,
		RepoID:       r.RepoID,
		FilePath:     r.FilePath,
		Language:     r.Language,
		StartLine:    r.StartLine,
		EndLine:      r.EndLine,
		ChunkText:    r.ChunkText,
		ASTNodeType:  r.ASTNodeType,
		FileHash:     r.FileHash,
		ChunkHash:    r.ChunkHash,
		NLSummary:    r.NLSummary,
		PreviousHash: r.PreviousHash,
		DeltaType:    models.DeltaType(r.DeltaType),
	}

	if r.Embedding.Valid {
		vec, err := parseVector(r.Embedding.String)
		if err != nil {
			return ch, fmt.Errorf("chunk %s: %w", r.ChunkHash, err)
		}
		ch.Embedding = vec
	}
	for _, pair := range []struct {
		raw    types.JSONText
		target *[]string
	}{
		{r.CallLinks, &ch.CallLinks},
		{r.Variables, &ch.Variables},
		{r.ConfigKeys, &ch.ConfigKeys},
		{r.SemanticTags, &ch.SemanticTags},
	} {
		if len(pair.raw) > 0 {
			if err := json.Unmarshal(pair.raw, pair.target); err != nil {
				return ch, fmt.Errorf("chunk %s enrichment: %w", r.ChunkHash, err)
			}
		}
	}
	return ch, nil
}

const searchSimilarSQL = `
SELECT chunk_id, repo_id, file_path, language, start_line, end_line,
	chunk_text, ast_node_type, file_hash, chunk_hash, embedding::text AS embedding,
	nl_summary, call_links, variables, config_keys, semantic_tags,
	previous_hash, delta_type,
	(embedding <=> $1::vector) AS distance
FROM code_map
WHERE embedding IS NOT NULL AND ($2 = '' OR repo_id = $2)
ORDER BY distance ASC, file_path ASC, start_line ASC
LIMIT $3`

// SearchSimilar returns the k nearest chunks to the query embedding under
// cosine distance, with similarity = 1 - distance. Ties break on file path
// then start line, so results are deterministic. An empty repoID searches
// all repositories; k <= 0 returns no rows.
func (s *Store) SearchSimilar(ctx context.Context, queryEmbedding []float32, repoID string, k int) ([]models.RetrievalHit, error) {
	if k <= 0 {
		return nil, nil
	}

	var rows []chunkRow
	err := s.db.SelectContext(ctx, &rows, searchSimilarSQL, vectorLiteral(queryEmbedding), repoID, k)
	if err != nil {
		return nil, fmt.Errorf("failed to search code map: %w", err)
	}

	hits := make([]models.RetrievalHit, 0, len(rows))
	for _, r := range rows {
		ch, err := r.toChunk()
		if err != nil {
			return nil, err
		}
		hits = append(hits, models.RetrievalHit{
			Chunk:      ch,
			Distance:   r.Distance,
			Similarity: 1 - r.Distance,
		})
	}
	return hits, nil
}

// PruneRemoved deletes chunks of the repository whose hash is not in
// retainedHashes. Called only after a full successful index pass.
func (s *Store) PruneRemoved(ctx context.Context, repoID string, retainedHashes []string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if len(retainedHashes) == 0 {
		res, err = s.db.ExecContext(ctx, `DELETE FROM code_map WHERE repo_id = $1`, repoID)
	} else {
		var query string
		var args []any
		query, args, err = sqlx.In(
			`DELETE FROM code_map WHERE repo_id = ? AND chunk_hash NOT IN (?)`,
			repoID, retainedHashes)
		if err != nil {
			return 0, fmt.Errorf("failed to build prune query: %w", err)
		}
		res, err = s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to prune removed chunks: %w", err)
	}

	pruned, _ := res.RowsAffected()
	if pruned > 0 {
		s.logger.Info("Pruned removed chunks", "repo_id", repoID, "count", pruned)
	}
	return pruned, nil
}

// PriorChunk is the minimal view of a stored chunk used for delta
// classification.
type PriorChunk struct {
	ChunkID     string  `db:"chunk_id"`
	ChunkHash   string  `db:"chunk_hash"`
	ASTNodeType *string `db:"ast_node_type"`
}

// FileChunks returns every stored chunk of one file; the indexer
// classifies re-chunked output against this set.
func (s *Store) FileChunks(ctx context.Context, repoID, filePath string) ([]PriorChunk, error) {
	var rows []PriorChunk
	err := s.db.SelectContext(ctx, &rows,
		`SELECT chunk_id, chunk_hash, ast_node_type FROM code_map WHERE repo_id = $1 AND file_path = $2`,
		repoID, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load file chunks: %w", err)
	}
	return rows, nil
}

// DeleteFileChunks removes chunks of one file that are not in
// retainedHashes; a delta pass uses it to drop chunks that disappeared
// from a re-chunked file.
func (s *Store) DeleteFileChunks(ctx context.Context, repoID, filePath string, retainedHashes []string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if len(retainedHashes) == 0 {
		res, err = s.db.ExecContext(ctx,
			`DELETE FROM code_map WHERE repo_id = $1 AND file_path = $2`, repoID, filePath)
	} else {
		var query string
		var args []any
		query, args, err = sqlx.In(
			`DELETE FROM code_map WHERE repo_id = ? AND file_path = ? AND chunk_hash NOT IN (?)`,
			repoID, filePath, retainedHashes)
		if err != nil {
			return 0, fmt.Errorf("failed to build delete query: %w", err)
		}
		res, err = s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to delete file chunks: %w", err)
	}

	removed, _ := res.RowsAffected()
	return removed, nil
}

// RepoCounts returns the live chunk count and distinct file count for a
// repository, used to refresh the repo record after an index pass.
func (s *Store) RepoCounts(ctx context.Context, repoID string) (chunks int, files int, err error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT count(*), count(DISTINCT file_path) FROM code_map WHERE repo_id = $1`, repoID)
	if err := row.Scan(&chunks, &files); err != nil {
		return 0, 0, fmt.Errorf("failed to count repo chunks: %w", err)
	}
	return chunks, files, nil
}

// RepoChunkHashes returns every chunk hash stored for a repository.
func (s *Store) RepoChunkHashes(ctx context.Context, repoID string) ([]string, error) {
	var hashes []string
	err := s.db.SelectContext(ctx, &hashes,
		`SELECT chunk_hash FROM code_map WHERE repo_id = $1`, repoID)
	if err != nil {
		return nil, fmt.Errorf("failed to load repo chunk hashes: %w", err)
	}
	return hashes, nil
}

func marshalList(list []string) (types.JSONText, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal enrichment list: %w", err)
	}
	return types.JSONText(data), nil
}
