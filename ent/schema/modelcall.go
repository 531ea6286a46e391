package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModelCall holds one row of the cost ledger: every model invocation,
// successful or not, with its token usage and computed USD cost.
type ModelCall struct {
	ent.Schema
}

// Fields of the ModelCall.
func (ModelCall) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("model_call_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.Int("stage").
			Immutable(),
		field.Int("attempt").
			Immutable().
			Comment("1-based attempt number within the stage"),
		field.String("provider").
			Immutable(),
		field.String("model_id").
			Immutable(),
		field.String("tier").
			Immutable().
			Comment("mini or advanced, as dispatched"),
		field.Int("prompt_tokens").
			Default(0),
		field.Int("completion_tokens").
			Default(0),
		field.Float("usd_cost").
			Default(0),
		field.Int("duration_ms").
			Default(0),
		field.String("error_class").
			Optional().
			Nillable().
			Comment("transient, rate_limited, permanent; empty on success"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ModelCall.
func (ModelCall) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("model_calls").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ModelCall.
func (ModelCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "stage"),
		index.Fields("provider", "created_at"),
	}
}
