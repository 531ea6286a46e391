// Code generated by ent, DO NOT EDIT.

package motif

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the motif type in the database.
	Label = "motif"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "motif_id"
	// FieldWorldID holds the string denoting the world_id field in the database.
	FieldWorldID = "world_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldOccurrences holds the string denoting the occurrences field in the database.
	FieldOccurrences = "occurrences"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWorld holds the string denoting the world edge name in mutations.
	EdgeWorld = "world"
	// WorldFieldID holds the string denoting the ID field of the World.
	WorldFieldID = "world_id"
	// Table holds the table name of the motif in the database.
	Table = "motifs"
	// WorldTable is the table that holds the world relation/edge.
	WorldTable = "motifs"
	// WorldInverseTable is the table name for the World entity.
	// It exists in this package in order to avoid circular dependency with the "world" package.
	WorldInverseTable = "worlds"
	// WorldColumn is the table column denoting the world relation/edge.
	WorldColumn = "world_id"
)

// Columns holds all SQL columns for motif fields.
var Columns = []string{
	FieldID,
	FieldWorldID,
	FieldName,
	FieldDescription,
	FieldOccurrences,
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

// OrderOption defines the ordering options for the Motif queries.
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

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
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
