// Code generated by ent, DO NOT EDIT.

package world

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the world type in the database.
	Label = "world"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "world_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRules holds the string denoting the rules field in the database.
	FieldRules = "rules"
	// FieldBoundaries holds the string denoting the boundaries field in the database.
	FieldBoundaries = "boundaries"
	// FieldAnomalies holds the string denoting the anomalies field in the database.
	FieldAnomalies = "anomalies"
	// FieldCoreConflict holds the string denoting the core_conflict field in the database.
	FieldCoreConflict = "core_conflict"
	// FieldTheme holds the string denoting the theme field in the database.
	FieldTheme = "theme"
	// FieldScale holds the string denoting the scale field in the database.
	FieldScale = "scale"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeCharacters holds the string denoting the characters edge name in mutations.
	EdgeCharacters = "characters"
	// EdgeStoryEvents holds the string denoting the story_events edge name in mutations.
	EdgeStoryEvents = "story_events"
	// EdgeRelationships holds the string denoting the relationships edge name in mutations.
	EdgeRelationships = "relationships"
	// EdgeMotifs holds the string denoting the motifs edge name in mutations.
	EdgeMotifs = "motifs"
	// EdgeEvolutionEntries holds the string denoting the evolution_entries edge name in mutations.
	EdgeEvolutionEntries = "evolution_entries"
	// JobFieldID holds the string denoting the ID field of the Job.
	JobFieldID = "job_id"
	// CharacterFieldID holds the string denoting the ID field of the Character.
	CharacterFieldID = "character_id"
	// StoryEventFieldID holds the string denoting the ID field of the StoryEvent.
	StoryEventFieldID = "story_event_id"
	// RelationshipFieldID holds the string denoting the ID field of the Relationship.
	RelationshipFieldID = "relationship_id"
	// MotifFieldID holds the string denoting the ID field of the Motif.
	MotifFieldID = "motif_id"
	// EvolutionEntryFieldID holds the string denoting the ID field of the EvolutionEntry.
	EvolutionEntryFieldID = "evolution_entry_id"
	// Table holds the table name of the world in the database.
	Table = "worlds"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "worlds"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// CharactersTable is the table that holds the characters relation/edge.
	CharactersTable = "characters"
	// CharactersInverseTable is the table name for the Character entity.
	// It exists in this package in order to avoid circular dependency with the "character" package.
	CharactersInverseTable = "characters"
	// CharactersColumn is the table column denoting the characters relation/edge.
	CharactersColumn = "world_id"
	// StoryEventsTable is the table that holds the story_events relation/edge.
	StoryEventsTable = "story_events"
	// StoryEventsInverseTable is the table name for the StoryEvent entity.
	// It exists in this package in order to avoid circular dependency with the "storyevent" package.
	StoryEventsInverseTable = "story_events"
	// StoryEventsColumn is the table column denoting the story_events relation/edge.
	StoryEventsColumn = "world_id"
	// RelationshipsTable is the table that holds the relationships relation/edge.
	RelationshipsTable = "relationships"
	// RelationshipsInverseTable is the table name for the Relationship entity.
	// It exists in this package in order to avoid circular dependency with the "relationship" package.
	RelationshipsInverseTable = "relationships"
	// RelationshipsColumn is the table column denoting the relationships relation/edge.
	RelationshipsColumn = "world_id"
	// MotifsTable is the table that holds the motifs relation/edge.
	MotifsTable = "motifs"
	// MotifsInverseTable is the table name for the Motif entity.
	// It exists in this package in order to avoid circular dependency with the "motif" package.
	MotifsInverseTable = "motifs"
	// MotifsColumn is the table column denoting the motifs relation/edge.
	MotifsColumn = "world_id"
	// EvolutionEntriesTable is the table that holds the evolution_entries relation/edge.
	EvolutionEntriesTable = "evolution_entries"
	// EvolutionEntriesInverseTable is the table name for the EvolutionEntry entity.
	// It exists in this package in order to avoid circular dependency with the "evolutionentry" package.
	EvolutionEntriesInverseTable = "evolution_entries"
	// EvolutionEntriesColumn is the table column denoting the evolution_entries relation/edge.
	EvolutionEntriesColumn = "world_id"
)

// Columns holds all SQL columns for world fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldName,
	FieldRules,
	FieldBoundaries,
	FieldAnomalies,
	FieldCoreConflict,
	FieldTheme,
	FieldScale,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Scale defines the type for the "scale" enum field.
type Scale string

// ScaleRegional is the default value of the Scale enum.
const DefaultScale = ScaleRegional

// Scale values.
const (
	ScaleIntimate Scale = "intimate"
	ScaleRegional Scale = "regional"
	ScaleGlobal   Scale = "global"
	ScaleCosmic   Scale = "cosmic"
)

func (s Scale) String() string {
	return string(s)
}

// ScaleValidator is a validator for the "scale" field enum values. It is called by the builders before save.
func ScaleValidator(s Scale) error {
	switch s {
	case ScaleIntimate, ScaleRegional, ScaleGlobal, ScaleCosmic:
		return nil
	default:
		return fmt.Errorf("world: invalid enum value for scale field: %q", s)
	}
}

// OrderOption defines the ordering options for the World queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCoreConflict orders the results by the core_conflict field.
func ByCoreConflict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoreConflict, opts...).ToFunc()
}

// ByTheme orders the results by the theme field.
func ByTheme(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheme, opts...).ToFunc()
}

// ByScale orders the results by the scale field.
func ByScale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScale, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// ByCharactersCount orders the results by characters count.
func ByCharactersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCharactersStep(), opts...)
	}
}

// ByCharacters orders the results by characters terms.
func ByCharacters(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCharactersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStoryEventsCount orders the results by story_events count.
func ByStoryEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStoryEventsStep(), opts...)
	}
}

// ByStoryEvents orders the results by story_events terms.
func ByStoryEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStoryEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRelationshipsCount orders the results by relationships count.
func ByRelationshipsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRelationshipsStep(), opts...)
	}
}

// ByRelationships orders the results by relationships terms.
func ByRelationships(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRelationshipsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMotifsCount orders the results by motifs count.
func ByMotifsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMotifsStep(), opts...)
	}
}

// ByMotifs orders the results by motifs terms.
func ByMotifs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMotifsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEvolutionEntriesCount orders the results by evolution_entries count.
func ByEvolutionEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvolutionEntriesStep(), opts...)
	}
}

// ByEvolutionEntries orders the results by evolution_entries terms.
func ByEvolutionEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvolutionEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, JobFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, JobTable, JobColumn),
	)
}
func newCharactersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CharactersInverseTable, CharacterFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CharactersTable, CharactersColumn),
	)
}
func newStoryEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StoryEventsInverseTable, StoryEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StoryEventsTable, StoryEventsColumn),
	)
}
func newRelationshipsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RelationshipsInverseTable, RelationshipFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RelationshipsTable, RelationshipsColumn),
	)
}
func newMotifsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MotifsInverseTable, MotifFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MotifsTable, MotifsColumn),
	)
}
func newEvolutionEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvolutionEntriesInverseTable, EvolutionEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvolutionEntriesTable, EvolutionEntriesColumn),
	)
}
