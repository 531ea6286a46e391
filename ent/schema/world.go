package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// World holds the structural-memory record for a job's story world.
// Exactly one world exists per job; read-only after stage 2 except
// through explicit evolution entries.
type World struct {
	ent.Schema
}

// Fields of the World.
func (World) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("world_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.JSON("rules", []string{}).
			Comment("Rules of reality"),
		field.JSON("boundaries", []string{}),
		field.JSON("anomalies", []string{}),
		field.Text("core_conflict"),
		field.Text("theme").
			Comment("Existential theme"),
		field.Enum("scale").
			Values("intimate", "regional", "global", "cosmic").
			Default("regional"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the World.
func (World) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("world").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
		edge.To("characters", Character.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("story_events", StoryEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("relationships", Relationship.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("motifs", Motif.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evolution_entries", EvolutionEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the World.
func (World) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
	}
}
