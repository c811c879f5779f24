package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CaseLog holds the schema definition for one entry of a case's append-only
// agent log. Entries are advisory; losing them never affects case state.
type CaseLog struct {
	ent.Schema
}

// Fields of the CaseLog.
func (CaseLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("case_id"),
		field.String("agent").
			Comment("PLANNER, NAVIGATOR, INVESTIGATOR, JUDGE or REMEDIATOR"),
		field.Text("message"),
		field.Int("sequence").
			Comment("Per-case append counter; read order equals append order"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("Set when the case reaches a terminal state; swept by cleanup"),
	}
}

// Indexes of the CaseLog.
func (CaseLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id", "sequence").Unique(),
		index.Fields("expires_at"),
	}
}

// Annotations of the CaseLog.
func (CaseLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "case_logs"},
	}
}
