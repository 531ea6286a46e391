// Code generated by ent, DO NOT EDIT.

package relationship

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the relationship type in the database.
	Label = "relationship"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "relationship_id"
	// FieldWorldID holds the string denoting the world_id field in the database.
	FieldWorldID = "world_id"
	// FieldFromCharacterID holds the string denoting the from_character_id field in the database.
	FieldFromCharacterID = "from_character_id"
	// FieldToCharacterID holds the string denoting the to_character_id field in the database.
	FieldToCharacterID = "to_character_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWorld holds the string denoting the world edge name in mutations.
	EdgeWorld = "world"
	// WorldFieldID holds the string denoting the ID field of the World.
	WorldFieldID = "world_id"
	// Table holds the table name of the relationship in the database.
	Table = "relationships"
	// WorldTable is the table that holds the world relation/edge.
	WorldTable = "relationships"
	// WorldInverseTable is the table name for the World entity.
	// It exists in this package in order to avoid circular dependency with the "world" package.
	WorldInverseTable = "worlds"
	// WorldColumn is the table column denoting the world relation/edge.
	WorldColumn = "world_id"
)

// Columns holds all SQL columns for relationship fields.
var Columns = []string{
	FieldID,
	FieldWorldID,
	FieldFromCharacterID,
	FieldToCharacterID,
	FieldKind,
	FieldWeight,
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

// OrderOption defines the ordering options for the Relationship queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorldID orders the results by the world_id field.
func ByWorldID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorldID, opts...).ToFunc()
}

// ByFromCharacterID orders the results by the from_character_id field.
func ByFromCharacterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromCharacterID, opts...).ToFunc()
}

// ByToCharacterID orders the results by the to_character_id field.
func ByToCharacterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToCharacterID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
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
