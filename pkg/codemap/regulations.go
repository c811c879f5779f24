package codemap

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/fincomply/vigil/pkg/models"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
)

// RegulationStore reads pre-chunked regulation text. The table is populated
// by the regulation ingestion service; this side never writes it.
type RegulationStore struct {
	db *sqlx.DB
}

// NewRegulationStore wraps the shared database handle.
func NewRegulationStore(db *sql.DB) *RegulationStore {
	return &RegulationStore{db: sqlx.NewDb(db, "pgx")}
}

type regulationRow struct {
	ChunkID     string         `db:"chunk_id"`
	RuleID      string         `db:"rule_id"`
	RuleSection *string        `db:"rule_section"`
	ChunkText   string         `db:"chunk_text"`
	ChunkIndex  int            `db:"chunk_index"`
	ChunkHash   string         `db:"chunk_hash"`
	Embedding   sql.NullString `db:"embedding"`
	Metadata    types.JSONText `db:"metadata"`
}

// ChunksByRules returns every chunk of the given rules, ordered by rule and
// chunk index so a rule's text reassembles in document order. Unknown rule
// IDs simply contribute no rows; the caller decides whether that is fatal.
func (s *RegulationStore) ChunksByRules(ctx context.Context, ruleIDs []string) ([]models.RegulationChunk, error) {
	if len(ruleIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT chunk_id, rule_id, rule_section, chunk_text, chunk_index,
			chunk_hash, embedding::text AS embedding, metadata
		FROM regulation_chunks
		WHERE rule_id IN (?)
		ORDER BY rule_id ASC, chunk_index ASC`, ruleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build regulation query: %w", err)
	}

	var rows []regulationRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to load regulation chunks: %w", err)
	}

	chunks := make([]models.RegulationChunk, 0, len(rows))
	for _, r := range rows {
		ch := models.RegulationChunk{
			ChunkID:     r.ChunkID,
			RuleID:      r.RuleID,
			RuleSection: r.RuleSection,
			ChunkText:   r.ChunkText,
			ChunkIndex:  r.ChunkIndex,
			ChunkHash:   r.ChunkHash,
		}
		if r.Embedding.Valid {
			vec, err := parseVector(r.Embedding.String)
			if err != nil {
				return nil, fmt.Errorf("regulation chunk %s: %w", r.ChunkID, err)
			}
			ch.Embedding = vec
		}
		if len(r.Metadata) > 0 {
			if err := json.Unmarshal(r.Metadata, &ch.Metadata); err != nil {
				return nil, fmt.Errorf("regulation chunk %s metadata: %w", r.ChunkID, err)
			}
		}
		chunks = append(chunks, ch)
	}
	return chunks, nil
}

// KnownRuleIDs returns the subset of ruleIDs present in the table,
// preserving input order. Used to validate audit requests up front.
func (s *RegulationStore) KnownRuleIDs(ctx context.Context, ruleIDs []string) ([]string, error) {
	if len(ruleIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		`SELECT DISTINCT rule_id FROM regulation_chunks WHERE rule_id IN (?)`, ruleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build rule lookup: %w", err)
	}

	var found []string
	if err := s.db.SelectContext(ctx, &found, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to look up rules: %w", err)
	}

	present := make(map[string]bool, len(found))
	for _, id := range found {
		present[id] = true
	}
	known := make([]string, 0, len(found))
	for _, id := range ruleIDs {
		if present[id] {
			known = append(known, id)
		}
	}
	return known, nil
}
