package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for a narrative production job.
// One row per submitted Production Brief; the queue claims pending rows
// and the orchestrator drives them through the ten-stage pipeline.
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
		field.JSON("brief", map[string]interface{}{}).
			Comment("Immutable Production Brief as submitted"),
		field.String("production_type").
			Comment("short_story, novella, novel, epic_saga — denormalised for listing"),
		field.String("genre"),
		field.String("content_language").
			Default("en").
			Comment("Carried through verbatim; the core never interprets it"),
		field.Enum("status").
			Values("pending", "running", "cancelling", "completed", "failed", "cancelled").
			Default("pending"),
		field.Int("current_stage").
			Optional().
			Nillable().
			Comment("1-based stage currently executing"),
		field.Float("cumulative_cost_usd").
			Default(0),
		field.Int("cumulative_prompt_tokens").
			Default(0),
		field.Int("cumulative_completion_tokens").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("error_kind").
			Optional().
			Nillable().
			Comment("Classified failure kind — gates whether resume is permitted"),
		field.Int("error_stage").
			Optional().
			Nillable(),
		field.String("owner").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the brief was submitted"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("world", World.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("model_calls", ModelCall.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("production_type"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
