package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvolutionEntry holds one record of the evolutionary audit log: an
// entity changed state because a story event happened. Append-only;
// referential checks run at the store boundary before insert.
type EvolutionEntry struct {
	ent.Schema
}

// Fields of the EvolutionEntry.
func (EvolutionEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("evolution_entry_id").
			Unique().
			Immutable(),
		field.String("world_id").
			Immutable(),
		field.String("entity_id").
			Comment("World or character id whose state changed"),
		field.Enum("entity_type").
			Values("world", "character"),
		field.String("change_type"),
		field.JSON("before_state", map[string]interface{}{}),
		field.JSON("after_state", map[string]interface{}{}),
		field.String("trigger_event_id").
			Comment("StoryEvent id that caused the change"),
		field.Float("significance"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EvolutionEntry.
func (EvolutionEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("world", World.Type).
			Ref("evolution_entries").
			Field("world_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EvolutionEntry.
func (EvolutionEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("world_id", "created_at"),
		index.Fields("entity_id"),
	}
}
