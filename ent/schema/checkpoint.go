package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds a Pipeline Context snapshot taken at a stage boundary.
// Immutable once written; addressable by (job_id, stage).
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.Int("stage").
			Immutable().
			Comment("1-based stage just completed"),
		field.JSON("context_snapshot", map[string]interface{}{}).
			Immutable().
			Comment("Serialised Pipeline Context as of this boundary"),
		field.Float("cost_usd").
			Immutable().
			Comment("Cumulative job cost at this boundary"),
		field.Int("prompt_tokens").
			Immutable(),
		field.Int("completion_tokens").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("checkpoints").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "stage").
			Unique(),
	}
}
