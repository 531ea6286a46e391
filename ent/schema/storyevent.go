package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StoryEvent holds a semantic-memory event record. Rows are append-only;
// story_time orders them on the in-story timeline.
type StoryEvent struct {
	ent.Schema
}

// Fields of the StoryEvent.
func (StoryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("story_event_id").
			Unique().
			Immutable(),
		field.String("world_id").
			Immutable(),
		field.JSON("participant_ids", []string{}).
			Comment("Character ids present at the event"),
		field.String("location"),
		field.Text("description"),
		field.JSON("consequences", []string{}),
		field.Int("story_time").
			Comment("Ordinal position on the in-story timeline"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the StoryEvent.
func (StoryEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("world", World.Type).
			Ref("story_events").
			Field("world_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StoryEvent.
func (StoryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("world_id", "story_time"),
	}
}
