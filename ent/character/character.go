// Code generated by ent, DO NOT EDIT.

package character

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the character type in the database.
	Label = "character"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "character_id"
	// FieldWorldID holds the string denoting the world_id field in the database.
	FieldWorldID = "world_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTrajectory holds the string denoting the trajectory field in the database.
	FieldTrajectory = "trajectory"
	// FieldContradictions holds the string denoting the contradictions field in the database.
	FieldContradictions = "contradictions"
	// FieldCognitiveLimits holds the string denoting the cognitive_limits field in the database.
	FieldCognitiveLimits = "cognitive_limits"
	// FieldEvolutionCapacity holds the string denoting the evolution_capacity field in the database.
	FieldEvolutionCapacity = "evolution_capacity"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWorld holds the string denoting the world edge name in mutations.
	EdgeWorld = "world"
	// WorldFieldID holds the string denoting the ID field of the World.
	WorldFieldID = "world_id"
	// Table holds the table name of the character in the database.
	Table = "characters"
	// WorldTable is the table that holds the world relation/edge.
	WorldTable = "characters"
	// WorldInverseTable is the table name for the World entity.
	// It exists in this package in order to avoid circular dependency with the "world" package.
	WorldInverseTable = "worlds"
	// WorldColumn is the table column denoting the world relation/edge.
	WorldColumn = "world_id"
)

// Columns holds all SQL columns for character fields.
var Columns = []string{
	FieldID,
	FieldWorldID,
	FieldName,
	FieldTrajectory,
	FieldContradictions,
	FieldCognitiveLimits,
	FieldEvolutionCapacity,
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

// OrderOption defines the ordering options for the Character queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorldID orders the results by the world_id field.
func ByWorldID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTrajectory orders the results by the trajectory field.
func ByTrajectory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrajectory, opts...).ToFunc()
}

// ByEvolutionCapacity orders the results by the evolution_capacity field.
func ByEvolutionCapacity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvolutionCapacity, opts...).ToFunc()
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
