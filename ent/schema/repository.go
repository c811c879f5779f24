package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Repository holds the schema definition for an indexed source repository.
// Chunk rows in the code_map table reference repositories by repo_id only;
// the vector side of the code map is managed outside Ent (see pkg/codemap).
type Repository struct {
	ent.Schema
}

// Fields of the Repository.
func (Repository) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("repo_id").
			Unique().
			Immutable(),
		field.String("full_name").
			Comment("External name, e.g. 'acme/payments-api'"),
		field.Int64("github_id").
			Optional().
			Comment("Externally assigned repository ID"),
		field.Int64("installation_id").
			Default(0).
			Comment("GitHub App installation; 0 means OAuth token flow"),
		field.String("default_branch").
			Default("main"),
		field.String("last_commit_sha").
			Optional().
			Nillable().
			Comment("HEAD of the last successful index pass"),
		field.Int("indexed_file_count").
			Default(0),
		field.Int("total_chunks").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("last_indexed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Repository.
func (Repository) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("full_name").Unique(),
		index.Fields("installation_id"),
	}
}

// Annotations of the Repository.
func (Repository) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "repos"},
	}
}
