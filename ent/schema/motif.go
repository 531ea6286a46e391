package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Motif holds a recurring symbolic element tracked in semantic memory.
type Motif struct {
	ent.Schema
}

// Fields of the Motif.
func (Motif) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("motif_id").
			Unique().
			Immutable(),
		field.String("world_id").
			Immutable(),
		field.String("name"),
		field.Text("description"),
		field.JSON("occurrences", []string{}).
			Comment("Where the motif has appeared so far"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Motif.
func (Motif) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("world", World.Type).
			Ref("motifs").
			Field("world_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Motif.
func (Motif) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("world_id", "name").
			Unique(),
	}
}
