package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Relationship holds a directed, typed, weighted edge between two
// characters in semantic memory.
type Relationship struct {
	ent.Schema
}

// Fields of the Relationship.
func (Relationship) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("relationship_id").
			Unique().
			Immutable(),
		field.String("world_id").
			Immutable(),
		field.String("from_character_id"),
		field.String("to_character_id"),
		field.String("kind").
			Comment("ally, rival, mentor, ..."),
		field.Float("weight"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Relationship.
func (Relationship) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("world", World.Type).
			Ref("relationships").
			Field("world_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Relationship.
func (Relationship) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("world_id"),
		index.Fields("from_character_id"),
		index.Fields("to_character_id"),
	}
}
