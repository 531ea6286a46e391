// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/narraforge/narraforge/ent/motif"
	"github.com/narraforge/narraforge/ent/world"
)

// Motif is the model entity for the Motif schema.
type Motif struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorldID holds the value of the "world_id" field.
	WorldID string `json:"world_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Where the motif has appeared so far
	Occurrences []string `json:"occurrences,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MotifQuery when eager-loading is set.
	Edges        MotifEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MotifEdges holds the relations/edges for other nodes in the graph.
type MotifEdges struct {
	// World holds the value of the world edge.
	World *World `json:"world,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorldOrErr returns the World value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MotifEdges) WorldOrErr() (*World, error) {
	if e.World != nil {
		return e.World, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: world.Label}
	}
	return nil, &NotLoadedError{edge: "world"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Motif) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case motif.FieldOccurrences:
			values[i] = new([]byte)
		case motif.FieldID, motif.FieldWorldID, motif.FieldName, motif.FieldDescription:
			values[i] = new(sql.NullString)
		case motif.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Motif fields.
func (_m *Motif) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case motif.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case motif.FieldWorldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field world_id", values[i])
			} else if value.Valid {
				_m.WorldID = value.String
			}
		case motif.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case motif.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case motif.FieldOccurrences:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field occurrences", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Occurrences); err != nil {
					return fmt.Errorf("unmarshal field occurrences: %w", err)
				}
			}
		case motif.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Motif.
// This includes values selected through modifiers, order, etc.
func (_m *Motif) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorld queries the "world" edge of the Motif entity.
func (_m *Motif) QueryWorld() *WorldQuery {
	return NewMotifClient(_m.config).QueryWorld(_m)
}

// Update returns a builder for updating this Motif.
// Note that you need to call Motif.Unwrap() before calling this method if this Motif
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Motif) Update() *MotifUpdateOne {
	return NewMotifClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Motif entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Motif) Unwrap() *Motif {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Motif is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Motif) String() string {
	var builder strings.Builder
	builder.WriteString("Motif(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("world_id=")
	builder.WriteString(_m.WorldID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("occurrences=")
	builder.WriteString(fmt.Sprintf("%v", _m.Occurrences))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Motifs is a parsable slice of Motif.
type Motifs []*Motif
