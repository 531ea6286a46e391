// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/narraforge/narraforge/ent/storyevent"
	"github.com/narraforge/narraforge/ent/world"
)

// StoryEvent is the model entity for the StoryEvent schema.
type StoryEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorldID holds the value of the "world_id" field.
	WorldID string `json:"world_id,omitempty"`
	// Character ids present at the event
	ParticipantIds []string `json:"participant_ids,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Consequences holds the value of the "consequences" field.
	Consequences []string `json:"consequences,omitempty"`
	// Ordinal position on the in-story timeline
	StoryTime int `json:"story_time,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StoryEventQuery when eager-loading is set.
	Edges        StoryEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StoryEventEdges holds the relations/edges for other nodes in the graph.
type StoryEventEdges struct {
	// World holds the value of the world edge.
	World *World `json:"world,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorldOrErr returns the World value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StoryEventEdges) WorldOrErr() (*World, error) {
	if e.World != nil {
		return e.World, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: world.Label}
	}
	return nil, &NotLoadedError{edge: "world"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StoryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case storyevent.FieldParticipantIds, storyevent.FieldConsequences:
			values[i] = new([]byte)
		case storyevent.FieldStoryTime:
			values[i] = new(sql.NullInt64)
		case storyevent.FieldID, storyevent.FieldWorldID, storyevent.FieldLocation, storyevent.FieldDescription:
			values[i] = new(sql.NullString)
		case storyevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StoryEvent fields.
func (_m *StoryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case storyevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case storyevent.FieldWorldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field world_id", values[i])
			} else if value.Valid {
				_m.WorldID = value.String
			}
		case storyevent.FieldParticipantIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field participant_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ParticipantIds); err != nil {
					return fmt.Errorf("unmarshal field participant_ids: %w", err)
				}
			}
		case storyevent.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case storyevent.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case storyevent.FieldConsequences:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field consequences", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Consequences); err != nil {
					return fmt.Errorf("unmarshal field consequences: %w", err)
				}
			}
		case storyevent.FieldStoryTime:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field story_time", values[i])
			} else if value.Valid {
				_m.StoryTime = int(value.Int64)
			}
		case storyevent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StoryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StoryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorld queries the "world" edge of the StoryEvent entity.
func (_m *StoryEvent) QueryWorld() *WorldQuery {
	return NewStoryEventClient(_m.config).QueryWorld(_m)
}

// Update returns a builder for updating this StoryEvent.
// Note that you need to call StoryEvent.Unwrap() before calling this method if this StoryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StoryEvent) Update() *StoryEventUpdateOne {
	return NewStoryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StoryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StoryEvent) Unwrap() *StoryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StoryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StoryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StoryEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("world_id=")
	builder.WriteString(_m.WorldID)
	builder.WriteString(", ")
	builder.WriteString("participant_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParticipantIds))
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("consequences=")
	builder.WriteString(fmt.Sprintf("%v", _m.Consequences))
	builder.WriteString(", ")
	builder.WriteString("story_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.StoryTime))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StoryEvents is a parsable slice of StoryEvent.
type StoryEvents []*StoryEvent
