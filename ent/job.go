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

// Job is the model entity for the Job schema.
type Job struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Immutable Production Brief as submitted
	Brief map[string]interface{} `json:"brief,omitempty"`
	// short_story, novella, novel, epic_saga — denormalised for listing
	ProductionType string `json:"production_type,omitempty"`
	// Genre holds the value of the "genre" field.
	Genre string `json:"genre,omitempty"`
	// Carried through verbatim; the core never interprets it
	ContentLanguage string `json:"content_language,omitempty"`
	// Status holds the value of the "status" field.
	Status job.Status `json:"status,omitempty"`
	// 1-based stage currently executing
	CurrentStage *int `json:"current_stage,omitempty"`
	// CumulativeCostUsd holds the value of the "cumulative_cost_usd" field.
	CumulativeCostUsd float64 `json:"cumulative_cost_usd,omitempty"`
	// CumulativePromptTokens holds the value of the "cumulative_prompt_tokens" field.
	CumulativePromptTokens int `json:"cumulative_prompt_tokens,omitempty"`
	// CumulativeCompletionTokens holds the value of the "cumulative_completion_tokens" field.
	CumulativeCompletionTokens int `json:"cumulative_completion_tokens,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Classified failure kind — gates whether resume is permitted
	ErrorKind *string `json:"error_kind,omitempty"`
	// ErrorStage holds the value of the "error_stage" field.
	ErrorStage *int `json:"error_stage,omitempty"`
	// Owner holds the value of the "owner" field.
	Owner *string `json:"owner,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// When the brief was submitted
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobQuery when eager-loading is set.
	Edges        JobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobEdges holds the relations/edges for other nodes in the graph.
type JobEdges struct {
	// World holds the value of the world edge.
	World *World `json:"world,omitempty"`
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*Checkpoint `json:"checkpoints,omitempty"`
	// ModelCalls holds the value of the model_calls edge.
	ModelCalls []*ModelCall `json:"model_calls,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// WorldOrErr returns the World value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobEdges) WorldOrErr() (*World, error) {
	if e.World != nil {
		return e.World, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: world.Label}
	}
	return nil, &NotLoadedError{edge: "world"}
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) CheckpointsOrErr() ([]*Checkpoint, error) {
	if e.loadedTypes[1] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// ModelCallsOrErr returns the ModelCalls value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) ModelCallsOrErr() ([]*ModelCall, error) {
	if e.loadedTypes[2] {
		return e.ModelCalls, nil
	}
	return nil, &NotLoadedError{edge: "model_calls"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[3] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Job) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case job.FieldBrief:
			values[i] = new([]byte)
		case job.FieldCumulativeCostUsd:
			values[i] = new(sql.NullFloat64)
		case job.FieldCurrentStage, job.FieldCumulativePromptTokens, job.FieldCumulativeCompletionTokens, job.FieldErrorStage:
			values[i] = new(sql.NullInt64)
		case job.FieldID, job.FieldProductionType, job.FieldGenre, job.FieldContentLanguage, job.FieldStatus, job.FieldErrorMessage, job.FieldErrorKind, job.FieldOwner, job.FieldPodID:
			values[i] = new(sql.NullString)
		case job.FieldLastHeartbeatAt, job.FieldCreatedAt, job.FieldStartedAt, job.FieldCompletedAt, job.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Job fields.
func (_m *Job) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case job.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case job.FieldBrief:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field brief", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Brief); err != nil {
					return fmt.Errorf("unmarshal field brief: %w", err)
				}
			}
		case job.FieldProductionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field production_type", values[i])
			} else if value.Valid {
				_m.ProductionType = value.String
			}
		case job.FieldGenre:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field genre", values[i])
			} else if value.Valid {
				_m.Genre = value.String
			}
		case job.FieldContentLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_language", values[i])
			} else if value.Valid {
				_m.ContentLanguage = value.String
			}
		case job.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = job.Status(value.String)
			}
		case job.FieldCurrentStage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage", values[i])
			} else if value.Valid {
				_m.CurrentStage = new(int)
				*_m.CurrentStage = int(value.Int64)
			}
		case job.FieldCumulativeCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cumulative_cost_usd", values[i])
			} else if value.Valid {
				_m.CumulativeCostUsd = value.Float64
			}
		case job.FieldCumulativePromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cumulative_prompt_tokens", values[i])
			} else if value.Valid {
				_m.CumulativePromptTokens = int(value.Int64)
			}
		case job.FieldCumulativeCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cumulative_completion_tokens", values[i])
			} else if value.Valid {
				_m.CumulativeCompletionTokens = int(value.Int64)
			}
		case job.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case job.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = new(string)
				*_m.ErrorKind = value.String
			}
		case job.FieldErrorStage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_stage", values[i])
			} else if value.Valid {
				_m.ErrorStage = new(int)
				*_m.ErrorStage = int(value.Int64)
			}
		case job.FieldOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner", values[i])
			} else if value.Valid {
				_m.Owner = new(string)
				*_m.Owner = value.String
			}
		case job.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case job.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case job.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case job.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case job.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case job.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Job.
// This includes values selected through modifiers, order, etc.
func (_m *Job) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorld queries the "world" edge of the Job entity.
func (_m *Job) QueryWorld() *WorldQuery {
	return NewJobClient(_m.config).QueryWorld(_m)
}

// QueryCheckpoints queries the "checkpoints" edge of the Job entity.
func (_m *Job) QueryCheckpoints() *CheckpointQuery {
	return NewJobClient(_m.config).QueryCheckpoints(_m)
}

// QueryModelCalls queries the "model_calls" edge of the Job entity.
func (_m *Job) QueryModelCalls() *ModelCallQuery {
	return NewJobClient(_m.config).QueryModelCalls(_m)
}

// QueryEvents queries the "events" edge of the Job entity.
func (_m *Job) QueryEvents() *EventQuery {
	return NewJobClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Job.
// Note that you need to call Job.Unwrap() before calling this method if this Job
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Job) Update() *JobUpdateOne {
	return NewJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Job entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Job) Unwrap() *Job {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Job is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Job) String() string {
	var builder strings.Builder
	builder.WriteString("Job(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("brief=")
	builder.WriteString(fmt.Sprintf("%v", _m.Brief))
	builder.WriteString(", ")
	builder.WriteString("production_type=")
	builder.WriteString(_m.ProductionType)
	builder.WriteString(", ")
	builder.WriteString("genre=")
	builder.WriteString(_m.Genre)
	builder.WriteString(", ")
	builder.WriteString("content_language=")
	builder.WriteString(_m.ContentLanguage)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CurrentStage; v != nil {
		builder.WriteString("current_stage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("cumulative_cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.CumulativeCostUsd))
	builder.WriteString(", ")
	builder.WriteString("cumulative_prompt_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.CumulativePromptTokens))
	builder.WriteString(", ")
	builder.WriteString("cumulative_completion_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.CumulativeCompletionTokens))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorKind; v != nil {
		builder.WriteString("error_kind=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorStage; v != nil {
		builder.WriteString("error_stage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Owner; v != nil {
		builder.WriteString("owner=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Jobs is a parsable slice of Job.
type Jobs []*Job
