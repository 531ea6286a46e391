// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/narraforge/narraforge/ent/character"
	"github.com/narraforge/narraforge/ent/world"
)

// Character is the model entity for the Character schema.
type Character struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorldID holds the value of the "world_id" field.
	WorldID string `json:"world_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Internal arc independent of plot
	Trajectory string `json:"trajectory,omitempty"`
	// Contradictions holds the value of the "contradictions" field.
	Contradictions []string `json:"contradictions,omitempty"`
	// CognitiveLimits holds the value of the "cognitive_limits" field.
	CognitiveLimits []string `json:"cognitive_limits,omitempty"`
	// EvolutionCapacity holds the value of the "evolution_capacity" field.
	EvolutionCapacity float64 `json:"evolution_capacity,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CharacterQuery when eager-loading is set.
	Edges        CharacterEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CharacterEdges holds the relations/edges for other nodes in the graph.
type CharacterEdges struct {
	// World holds the value of the world edge.
	World *World `json:"world,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorldOrErr returns the World value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CharacterEdges) WorldOrErr() (*World, error) {
	if e.World != nil {
		return e.World, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: world.Label}
	}
	return nil, &NotLoadedError{edge: "world"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Character) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case character.FieldContradictions, character.FieldCognitiveLimits:
			values[i] = new([]byte)
		case character.FieldEvolutionCapacity:
			values[i] = new(sql.NullFloat64)
		case character.FieldID, character.FieldWorldID, character.FieldName, character.FieldTrajectory:
			values[i] = new(sql.NullString)
		case character.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Character fields.
func (_m *Character) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case character.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case character.FieldWorldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field world_id", values[i])
			} else if value.Valid {
				_m.WorldID = value.String
			}
		case character.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case character.FieldTrajectory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trajectory", values[i])
			} else if value.Valid {
				_m.Trajectory = value.String
			}
		case character.FieldContradictions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field contradictions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Contradictions); err != nil {
					return fmt.Errorf("unmarshal field contradictions: %w", err)
				}
			}
		case character.FieldCognitiveLimits:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cognitive_limits", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CognitiveLimits); err != nil {
					return fmt.Errorf("unmarshal field cognitive_limits: %w", err)
				}
			}
		case character.FieldEvolutionCapacity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field evolution_capacity", values[i])
			} else if value.Valid {
				_m.EvolutionCapacity = value.Float64
			}
		case character.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Character.
// This includes values selected through modifiers, order, etc.
func (_m *Character) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorld queries the "world" edge of the Character entity.
func (_m *Character) QueryWorld() *WorldQuery {
	return NewCharacterClient(_m.config).QueryWorld(_m)
}

// Update returns a builder for updating this Character.
// Note that you need to call Character.Unwrap() before calling this method if this Character
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Character) Update() *CharacterUpdateOne {
	return NewCharacterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Character entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Character) Unwrap() *Character {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Character is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Character) String() string {
	var builder strings.Builder
	builder.WriteString("Character(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("world_id=")
	builder.WriteString(_m.WorldID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("trajectory=")
	builder.WriteString(_m.Trajectory)
	builder.WriteString(", ")
	builder.WriteString("contradictions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Contradictions))
	builder.WriteString(", ")
	builder.WriteString("cognitive_limits=")
	builder.WriteString(fmt.Sprintf("%v", _m.CognitiveLimits))
	builder.WriteString(", ")
	builder.WriteString("evolution_capacity=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvolutionCapacity))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Characters is a parsable slice of Character.
type Characters []*Character
