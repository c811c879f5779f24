package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Finding holds the schema definition for a per-chunk compliance verdict
// produced by the judge step. Line numbers are copied verbatim from the
// code chunk the verdict was issued against.
type Finding struct {
	ent.Schema
}

// Fields of the Finding.
func (Finding) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("finding_id").
			Unique().
			Immutable(),
		field.String("case_id"),
		field.String("rule_id"),
		field.String("file_path"),
		field.Int("start_line"),
		field.Int("end_line"),
		field.Enum("verdict").
			Values("compliant", "non_compliant", "partial", "unclear"),
		field.Enum("severity").
			Values("low", "medium", "high", "critical"),
		field.Float("severity_score").
			Comment("Must fall in the band implied by severity"),
		field.Float("confidence").
			Default(0),
		field.Text("evidence").
			Optional().
			Comment("Required non-empty for non_compliant and partial verdicts"),
		field.Text("reasoning").
			Optional(),
		field.Text("remediation").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "approved", "rejected", "ignored").
			Default("pending"),
		field.String("ticket_id").
			Optional().
			Nillable().
			Comment("At most one ticket per (case_id, finding_id)"),
		field.String("reviewed_by").
			Optional().
			Nillable(),
		field.Time("reviewed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Finding.
func (Finding) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id", "created_at"),
		index.Fields("case_id", "verdict"),
		index.Fields("rule_id"),
	}
}

// Annotations of the Finding.
func (Finding) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "findings"},
	}
}
