// Code generated by ent, DO NOT EDIT.

package evolutionentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the evolutionentry type in the database.
	Label = "evolution_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "evolution_entry_id"
	// FieldWorldID holds the string denoting the world_id field in the database.
	FieldWorldID = "world_id"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldChangeType holds the string denoting the change_type field in the database.
	FieldChangeType = "change_type"
	// FieldBeforeState holds the string denoting the before_state field in the database.
	FieldBeforeState = "before_state"
	// FieldAfterState holds the string denoting the after_state field in the database.
	FieldAfterState = "after_state"
	// FieldTriggerEventID holds the string denoting the trigger_event_id field in the database.
	FieldTriggerEventID = "trigger_event_id"
	// FieldSignificance holds the string denoting the significance field in the database.
	FieldSignificance = "significance"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWorld holds the string denoting the world edge name in mutations.
	EdgeWorld = "world"
	// WorldFieldID holds the string denoting the ID field of the World.
	WorldFieldID = "world_id"
	// Table holds the table name of the evolutionentry in the database.
	Table = "evolution_entries"
	// WorldTable is the table that holds the world relation/edge.
	WorldTable = "evolution_entries"
	// WorldInverseTable is the table name for the World entity.
	// It exists in this package in order to avoid circular dependency with the "world" package.
	WorldInverseTable = "worlds"
	// WorldColumn is the table column denoting the world relation/edge.
	WorldColumn = "world_id"
)

// Columns holds all SQL columns for evolutionentry fields.
var Columns = []string{
	FieldID,
	FieldWorldID,
	FieldEntityID,
	FieldEntityType,
	FieldChangeType,
	FieldBeforeState,
	FieldAfterState,
	FieldTriggerEventID,
	FieldSignificance,
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

// EntityType defines the type for the "entity_type" enum field.
type EntityType string

// EntityType values.
const (
	EntityTypeWorld     EntityType = "world"
	EntityTypeCharacter EntityType = "character"
)

func (et EntityType) String() string {
	return string(et)
}

// EntityTypeValidator is a validator for the "entity_type" field enum values. It is called by the builders before save.
func EntityTypeValidator(et EntityType) error {
	switch et {
	case EntityTypeWorld, EntityTypeCharacter:
		return nil
	default:
		return fmt.Errorf("evolutionentry: invalid enum value for entity_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the EvolutionEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorldID orders the results by the world_id field.
func ByWorldID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorldID, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByChangeType orders the results by the change_type field.
func ByChangeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangeType, opts...).ToFunc()
}

// ByTriggerEventID orders the results by the trigger_event_id field.
func ByTriggerEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerEventID, opts...).ToFunc()
}

// BySignificance orders the results by the significance field.
func BySignificance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignificance, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByWorldField orders the results by world field.
func ByWorldField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorldStep(), sql.OrderByField(field, opts...))
	}
}
func newWorldStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorldInverseTable, WorldFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorldTable, WorldColumn),
	)
}
