package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for a queued unit of background work.
// The queue delivers at-least-once: a running job whose lease has expired is
// reclaimable by any worker, so executors must be idempotent on their
// natural keys (chunk_hash, case_id, finding_id).
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values("index", "audit"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Type-specific parameters (repo_id, case_id, changed_files, ...)"),
		field.Enum("status").
			Values("queued", "running", "completed", "failed").
			Default("queued"),
		field.Int("retries").
			Default(0),
		field.Int("max_retries").
			Default(3),
		field.Int("timeout_seconds").
			Default(3600).
			Comment("Lease duration; a stale lease makes the job reclaimable"),
		field.String("worker_id").
			Optional().
			Nillable().
			Comment("Holder of the current lease"),
		field.Time("lease_expires_at").
			Optional().
			Nillable(),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("next_attempt_at").
			Optional().
			Nillable().
			Comment("Retry backoff gate; queued jobs are not leased before this"),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("status", "lease_expires_at"),
		index.Fields("type", "status"),
		// Completed/failed retention sweeps
		index.Fields("status", "completed_at"),
	}
}

// Annotations of the Job.
func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}
