// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/ent/world"
)

// World is the model entity for the World schema.
type World struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Rules of reality
	Rules []string `json:"rules,omitempty"`
	// Boundaries holds the value of the "boundaries" field.
	Boundaries []string `json:"boundaries,omitempty"`
	// Anomalies holds the value of the "anomalies" field.
	Anomalies []string `json:"anomalies,omitempty"`
	// CoreConflict holds the value of the "core_conflict" field.
	CoreConflict string `json:"core_conflict,omitempty"`
	// Existential theme
	Theme string `json:"theme,omitempty"`
	// Scale holds the value of the "scale" field.
	Scale world.Scale `json:"scale,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorldQuery when eager-loading is set.
	Edges        WorldEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorldEdges holds the relations/edges for other nodes in the graph.
type WorldEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// Characters holds the value of the characters edge.
	Characters []*Character `json:"characters,omitempty"`
	// StoryEvents holds the value of the story_events edge.
	StoryEvents []*StoryEvent `json:"story_events,omitempty"`
	// Relationships holds the value of the relationships edge.
	Relationships []*Relationship `json:"relationships,omitempty"`
	// Motifs holds the value of the motifs edge.
	Motifs []*Motif `json:"motifs,omitempty"`
	// EvolutionEntries holds the value of the evolution_entries edge.
	EvolutionEntries []*EvolutionEntry `json:"evolution_entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorldEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// CharactersOrErr returns the Characters value or an error if the edge
// was not loaded in eager-loading.
func (e WorldEdges) CharactersOrErr() ([]*Character, error) {
	if e.loadedTypes[1] {
		return e.Characters, nil
	}
	return nil, &NotLoadedError{edge: "characters"}
}

// StoryEventsOrErr returns the StoryEvents value or an error if the edge
// was not loaded in eager-loading.
func (e WorldEdges) StoryEventsOrErr() ([]*StoryEvent, error) {
	if e.loadedTypes[2] {
		return e.StoryEvents, nil
	}
	return nil, &NotLoadedError{edge: "story_events"}
}

// RelationshipsOrErr returns the Relationships value or an error if the edge
// was not loaded in eager-loading.
func (e WorldEdges) RelationshipsOrErr() ([]*Relationship, error) {
	if e.loadedTypes[3] {
		return e.Relationships, nil
	}
	return nil, &NotLoadedError{edge: "relationships"}
}

// MotifsOrErr returns the Motifs value or an error if the edge
// was not loaded in eager-loading.
func (e WorldEdges) MotifsOrErr() ([]*Motif, error) {
	if e.loadedTypes[4] {
		return e.Motifs, nil
	}
	return nil, &NotLoadedError{edge: "motifs"}
}

// EvolutionEntriesOrErr returns the EvolutionEntries value or an error if the edge
// was not loaded in eager-loading.
func (e WorldEdges) EvolutionEntriesOrErr() ([]*EvolutionEntry, error) {
	if e.loadedTypes[5] {
		return e.EvolutionEntries, nil
	}
	return nil, &NotLoadedError{edge: "evolution_entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*World) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case world.FieldRules, world.FieldBoundaries, world.FieldAnomalies:
			values[i] = new([]byte)
		case world.FieldID, world.FieldJobID, world.FieldName, world.FieldCoreConflict, world.FieldTheme, world.FieldScale:
			values[i] = new(sql.NullString)
		case world.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the World fields.
func (_m *World) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case world.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case world.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case world.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case world.FieldRules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Rules); err != nil {
					return fmt.Errorf("unmarshal field rules: %w", err)
				}
			}
		case world.FieldBoundaries:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field boundaries", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Boundaries); err != nil {
					return fmt.Errorf("unmarshal field boundaries: %w", err)
				}
			}
		case world.FieldAnomalies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field anomalies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Anomalies); err != nil {
					return fmt.Errorf("unmarshal field anomalies: %w", err)
				}
			}
		case world.FieldCoreConflict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field core_conflict", values[i])
			} else if value.Valid {
				_m.CoreConflict = value.String
			}
		case world.FieldTheme:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field theme", values[i])
			} else if value.Valid {
				_m.Theme = value.String
			}
		case world.FieldScale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scale", values[i])
			} else if value.Valid {
				_m.Scale = world.Scale(value.String)
			}
		case world.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the World.
// This includes values selected through modifiers, order, etc.
func (_m *World) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the World entity.
func (_m *World) QueryJob() *JobQuery {
	return NewWorldClient(_m.config).QueryJob(_m)
}

// QueryCharacters queries the "characters" edge of the World entity.
func (_m *World) QueryCharacters() *CharacterQuery {
	return NewWorldClient(_m.config).QueryCharacters(_m)
}

// QueryStoryEvents queries the "story_events" edge of the World entity.
func (_m *World) QueryStoryEvents() *StoryEventQuery {
	return NewWorldClient(_m.config).QueryStoryEvents(_m)
}

// QueryRelationships queries the "relationships" edge of the World entity.
func (_m *World) QueryRelationships() *RelationshipQuery {
	return NewWorldClient(_m.config).QueryRelationships(_m)
}

// QueryMotifs queries the "motifs" edge of the World entity.
func (_m *World) QueryMotifs() *MotifQuery {
	return NewWorldClient(_m.config).QueryMotifs(_m)
}

// QueryEvolutionEntries queries the "evolution_entries" edge of the World entity.
func (_m *World) QueryEvolutionEntries() *EvolutionEntryQuery {
	return NewWorldClient(_m.config).QueryEvolutionEntries(_m)
}

// Update returns a builder for updating this World.
// Note that you need to call World.Unwrap() before calling this method if this World
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *World) Update() *WorldUpdateOne {
	return NewWorldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the World entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *World) Unwrap() *World {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: World is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *World) String() string {
	var builder strings.Builder
	builder.WriteString("World(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("rules=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rules))
	builder.WriteString(", ")
	builder.WriteString("boundaries=")
	builder.WriteString(fmt.Sprintf("%v", _m.Boundaries))
	builder.WriteString(", ")
	builder.WriteString("anomalies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Anomalies))
	builder.WriteString(", ")
	builder.WriteString("core_conflict=")
	builder.WriteString(_m.CoreConflict)
	builder.WriteString(", ")
	builder.WriteString("theme=")
	builder.WriteString(_m.Theme)
	builder.WriteString(", ")
	builder.WriteString("scale=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scale))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Worlds is a parsable slice of World.
type Worlds []*World
