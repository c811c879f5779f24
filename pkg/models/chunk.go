// Package models contains request/response models and business domain types.
package models

// DeltaType classifies a chunk relative to the previous index pass.
type DeltaType string

const (
	DeltaAdded     DeltaType = "added"
	DeltaModified  DeltaType = "modified"
	DeltaUnchanged DeltaType = "unchanged"
	DeltaRemoved   DeltaType = "removed"
)

// CodeChunk is one row of the code map: a contiguous source span with its
// hashes, embedding and enrichment metadata.
type CodeChunk struct {
	ChunkID     string    `db:"chunk_id" json:"chunk_id"`
	RepoID      string    `db:"repo_id" json:"repo_id"`
	FilePath    string    `db:"file_path" json:"file_path"`
	Language    string    `db:"language" json:"language"`
	StartLine   int       `db:"start_line" json:"start_line"`
	EndLine     int       `db:"end_line" json:"end_line"`
	ChunkText   string    `db:"chunk_text" json:"chunk_text"`
	ASTNodeType *string   `db:"ast_node_type" json:"ast_node_type,omitempty"`
	FileHash    string    `db:"file_hash" json:"file_hash"`
	ChunkHash   string    `db:"chunk_hash" json:"chunk_hash"`
	Embedding   []float32 `db:"-" json:"-"`
	NLSummary   *string   `db:"nl_summary" json:"nl_summary,omitempty"`

	// Enrichment metadata, best effort; empty slices are valid.
	CallLinks    []string `db:"-" json:"call_links,omitempty"`
	Variables    []string `db:"-" json:"variables,omitempty"`
	ConfigKeys   []string `db:"-" json:"config_keys,omitempty"`
	SemanticTags []string `db:"-" json:"semantic_tags,omitempty"`

	PreviousHash *string   `db:"previous_hash" json:"previous_hash,omitempty"`
	DeltaType    DeltaType `db:"delta_type" json:"delta_type"`
}

// RetrievalHit is one nearest-neighbor result from the code map.
type RetrievalHit struct {
	Chunk      CodeChunk `json:"chunk"`
	Distance   float64   `json:"distance"`
	Similarity float64   `json:"similarity"`

	// Snippet is the leading fragment of the matched code, attached by the
	// navigator for display and prompting.
	Snippet string `json:"snippet,omitempty"`
}
