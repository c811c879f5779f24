package models

// RegulationChunk is one pre-chunked fragment of regulation text. Rows are
// written by the ingestion collaborator; this service only reads them.
type RegulationChunk struct {
	ChunkID     string         `db:"chunk_id" json:"chunk_id"`
	RuleID      string         `db:"rule_id" json:"rule_id"`
	RuleSection *string        `db:"rule_section" json:"rule_section,omitempty"`
	ChunkText   string         `db:"chunk_text" json:"chunk_text"`
	ChunkIndex  int            `db:"chunk_index" json:"chunk_index"`
	ChunkHash   string         `db:"chunk_hash" json:"chunk_hash"`
	Embedding   []float32      `db:"-" json:"-"`
	Metadata    map[string]any `db:"-" json:"metadata,omitempty"`
}
