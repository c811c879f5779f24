package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditCase holds the schema definition for one audit run of a repository
// against a set of regulations. Findings and case logs reference a case by
// case_id only; no edges, joins happen at query time.
type AuditCase struct {
	ent.Schema
}

// Fields of the AuditCase.
func (AuditCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("case_id").
			Unique().
			Immutable(),
		field.String("repo_id"),
		field.JSON("regulation_ids", []string{}),
		field.Enum("status").
			Values("pending", "running", "waiting_approval", "completed", "failed", "paused").
			Default("pending"),
		field.String("current_step").
			Optional().
			Nillable().
			Comment("Step in flight; nil between steps and in terminal states"),
		field.JSON("steps_completed", []string{}).
			Optional(),
		field.JSON("steps_pending", []string{}).
			Optional(),
		field.JSON("plan_result", map[string]interface{}{}).
			Optional(),
		field.JSON("navigation_result", map[string]interface{}{}).
			Optional(),
		field.JSON("investigation_result", map[string]interface{}{}).
			Optional(),
		field.JSON("judge_result", map[string]interface{}{}).
			Optional(),
		field.JSON("remediation_result", map[string]interface{}{}).
			Optional(),
		field.Bool("requires_approval").
			Default(true),
		field.String("user_decision").
			Optional().
			Nillable().
			Comment("'approved' or 'declined' once the HITL gate resolves"),
		field.JSON("jira_ticket_ids", []string{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Bool("cancel_requested").
			Default(false).
			Comment("Observed at step boundaries only"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_activity_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Indexes of the AuditCase.
func (AuditCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("repo_id", "created_at"),
		index.Fields("status"),
		index.Fields("status", "completed_at"),
	}
}

// Annotations of the AuditCase.
func (AuditCase) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "cases"},
	}
}
