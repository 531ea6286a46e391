package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Character holds a structural-memory character record.
// Contradictions and cognitive limits are non-empty by the time a row
// lands here; evolution_capacity stays in [0,1], checked at the store
// boundary.
type Character struct {
	ent.Schema
}

// Fields of the Character.
func (Character) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("character_id").
			Unique().
			Immutable(),
		field.String("world_id").
			Immutable(),
		field.String("name"),
		field.Text("trajectory").
			Comment("Internal arc independent of plot"),
		field.JSON("contradictions", []string{}),
		field.JSON("cognitive_limits", []string{}),
		field.Float("evolution_capacity"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Character.
func (Character) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("world", World.Type).
			Ref("characters").
			Field("world_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Character.
func (Character) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("world_id", "name").
			Unique(),
	}
}
