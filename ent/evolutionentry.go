// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/narraforge/narraforge/ent/evolutionentry"
	"github.com/narraforge/narraforge/ent/world"
)

// EvolutionEntry is the model entity for the EvolutionEntry schema.
type EvolutionEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorldID holds the value of the "world_id" field.
	WorldID string `json:"world_id,omitempty"`
	// World or character id whose state changed
	EntityID string `json:"entity_id,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType evolutionentry.EntityType `json:"entity_type,omitempty"`
	// ChangeType holds the value of the "change_type" field.
	ChangeType string `json:"change_type,omitempty"`
	// BeforeState holds the value of the "before_state" field.
	BeforeState map[string]interface{} `json:"before_state,omitempty"`
	// AfterState holds the value of the "after_state" field.
	AfterState map[string]interface{} `json:"after_state,omitempty"`
	// StoryEvent id that caused the change
	TriggerEventID string `json:"trigger_event_id,omitempty"`
	// Significance holds the value of the "significance" field.
	Significance float64 `json:"significance,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvolutionEntryQuery when eager-loading is set.
	Edges        EvolutionEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvolutionEntryEdges holds the relations/edges for other nodes in the graph.
type EvolutionEntryEdges struct {
	// World holds the value of the world edge.
	World *World `json:"world,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorldOrErr returns the World value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvolutionEntryEdges) WorldOrErr() (*World, error) {
	if e.World != nil {
		return e.World, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: world.Label}
	}
	return nil, &NotLoadedError{edge: "world"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvolutionEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evolutionentry.FieldBeforeState, evolutionentry.FieldAfterState:
			values[i] = new([]byte)
		case evolutionentry.FieldSignificance:
			values[i] = new(sql.NullFloat64)
		case evolutionentry.FieldID, evolutionentry.FieldWorldID, evolutionentry.FieldEntityID, evolutionentry.FieldEntityType, evolutionentry.FieldChangeType, evolutionentry.FieldTriggerEventID:
			values[i] = new(sql.NullString)
		case evolutionentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvolutionEntry fields.
func (_m *EvolutionEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evolutionentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evolutionentry.FieldWorldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field world_id", values[i])
			} else if value.Valid {
				_m.WorldID = value.String
			}
		case evolutionentry.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = value.String
			}
		case evolutionentry.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = evolutionentry.EntityType(value.String)
			}
		case evolutionentry.FieldChangeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_type", values[i])
			} else if value.Valid {
				_m.ChangeType = value.String
			}
		case evolutionentry.FieldBeforeState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field before_state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BeforeState); err != nil {
					return fmt.Errorf("unmarshal field before_state: %w", err)
				}
			}
		case evolutionentry.FieldAfterState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field after_state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AfterState); err != nil {
					return fmt.Errorf("unmarshal field after_state: %w", err)
				}
			}
		case evolutionentry.FieldTriggerEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_event_id", values[i])
			} else if value.Valid {
				_m.TriggerEventID = value.String
			}
		case evolutionentry.FieldSignificance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field significance", values[i])
			} else if value.Valid {
				_m.Significance = value.Float64
			}
		case evolutionentry.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EvolutionEntry.
// This includes values selected through modifiers, order, etc.
func (_m *EvolutionEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorld queries the "world" edge of the EvolutionEntry entity.
func (_m *EvolutionEntry) QueryWorld() *WorldQuery {
	return NewEvolutionEntryClient(_m.config).QueryWorld(_m)
}

// Update returns a builder for updating this EvolutionEntry.
// Note that you need to call EvolutionEntry.Unwrap() before calling this method if this EvolutionEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvolutionEntry) Update() *EvolutionEntryUpdateOne {
	return NewEvolutionEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvolutionEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvolutionEntry) Unwrap() *EvolutionEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvolutionEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvolutionEntry) String() string {
	var builder strings.Builder
	builder.WriteString("EvolutionEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("world_id=")
	builder.WriteString(_m.WorldID)
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(_m.EntityID)
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityType))
	builder.WriteString(", ")
	builder.WriteString("change_type=")
	builder.WriteString(_m.ChangeType)
	builder.WriteString(", ")
	builder.WriteString("before_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.BeforeState))
	builder.WriteString(", ")
	builder.WriteString("after_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.AfterState))
	builder.WriteString(", ")
	builder.WriteString("trigger_event_id=")
	builder.WriteString(_m.TriggerEventID)
	builder.WriteString(", ")
	builder.WriteString("significance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Significance))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvolutionEntries is a parsable slice of EvolutionEntry.
type EvolutionEntries []*EvolutionEntry
