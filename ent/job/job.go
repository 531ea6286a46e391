// Code generated by ent, DO NOT EDIT.

package job

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldBrief holds the string denoting the brief field in the database.
	FieldBrief = "brief"
	// FieldProductionType holds the string denoting the production_type field in the database.
	FieldProductionType = "production_type"
	// FieldGenre holds the string denoting the genre field in the database.
	FieldGenre = "genre"
	// FieldContentLanguage holds the string denoting the content_language field in the database.
	FieldContentLanguage = "content_language"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentStage holds the string denoting the current_stage field in the database.
	FieldCurrentStage = "current_stage"
	// FieldCumulativeCostUsd holds the string denoting the cumulative_cost_usd field in the database.
	FieldCumulativeCostUsd = "cumulative_cost_usd"
	// FieldCumulativePromptTokens holds the string denoting the cumulative_prompt_tokens field in the database.
	FieldCumulativePromptTokens = "cumulative_prompt_tokens"
	// FieldCumulativeCompletionTokens holds the string denoting the cumulative_completion_tokens field in the database.
	FieldCumulativeCompletionTokens = "cumulative_completion_tokens"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// FieldErrorStage holds the string denoting the error_stage field in the database.
	FieldErrorStage = "error_stage"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeWorld holds the string denoting the world edge name in mutations.
	EdgeWorld = "world"
	// EdgeCheckpoints holds the string denoting the checkpoints edge name in mutations.
	EdgeCheckpoints = "checkpoints"
	// EdgeModelCalls holds the string denoting the model_calls edge name in mutations.
	EdgeModelCalls = "model_calls"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// WorldFieldID holds the string denoting the ID field of the World.
	WorldFieldID = "world_id"
	// CheckpointFieldID holds the string denoting the ID field of the Checkpoint.
	CheckpointFieldID = "checkpoint_id"
	// ModelCallFieldID holds the string denoting the ID field of the ModelCall.
	ModelCallFieldID = "model_call_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "id"
	// Table holds the table name of the job in the database.
	Table = "jobs"
	// WorldTable is the table that holds the world relation/edge.
	WorldTable = "worlds"
	// WorldInverseTable is the table name for the World entity.
	// It exists in this package in order to avoid circular dependency with the "world" package.
	WorldInverseTable = "worlds"
	// WorldColumn is the table column denoting the world relation/edge.
	WorldColumn = "job_id"
	// CheckpointsTable is the table that holds the checkpoints relation/edge.
	CheckpointsTable = "checkpoints"
	// CheckpointsInverseTable is the table name for the Checkpoint entity.
	// It exists in this package in order to avoid circular dependency with the "checkpoint" package.
	CheckpointsInverseTable = "checkpoints"
	// CheckpointsColumn is the table column denoting the checkpoints relation/edge.
	CheckpointsColumn = "job_id"
	// ModelCallsTable is the table that holds the model_calls relation/edge.
	ModelCallsTable = "model_calls"
	// ModelCallsInverseTable is the table name for the ModelCall entity.
	// It exists in this package in order to avoid circular dependency with the "modelcall" package.
	ModelCallsInverseTable = "model_calls"
	// ModelCallsColumn is the table column denoting the model_calls relation/edge.
	ModelCallsColumn = "job_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "job_id"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldBrief,
	FieldProductionType,
	FieldGenre,
	FieldContentLanguage,
	FieldStatus,
	FieldCurrentStage,
	FieldCumulativeCostUsd,
	FieldCumulativePromptTokens,
	FieldCumulativeCompletionTokens,
	FieldErrorMessage,
	FieldErrorKind,
	FieldErrorStage,
	FieldOwner,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDeletedAt,
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
	// DefaultContentLanguage holds the default value on creation for the "content_language" field.
	DefaultContentLanguage string
	// DefaultCumulativeCostUsd holds the default value on creation for the "cumulative_cost_usd" field.
	DefaultCumulativeCostUsd float64
	// DefaultCumulativePromptTokens holds the default value on creation for the "cumulative_prompt_tokens" field.
	DefaultCumulativePromptTokens int
	// DefaultCumulativeCompletionTokens holds the default value on creation for the "cumulative_completion_tokens" field.
	DefaultCumulativeCompletionTokens int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusRunning    Status = "running"
	StatusCancelling Status = "cancelling"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCancelling, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProductionType orders the results by the production_type field.
func ByProductionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductionType, opts...).ToFunc()
}

// ByGenre orders the results by the genre field.
func ByGenre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenre, opts...).ToFunc()
}

// ByContentLanguage orders the results by the content_language field.
func ByContentLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentLanguage, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentStage orders the results by the current_stage field.
func ByCurrentStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStage, opts...).ToFunc()
}

// ByCumulativeCostUsd orders the results by the cumulative_cost_usd field.
func ByCumulativeCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCumulativeCostUsd, opts...).ToFunc()
}

// ByCumulativePromptTokens orders the results by the cumulative_prompt_tokens field.
func ByCumulativePromptTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCumulativePromptTokens, opts...).ToFunc()
}

// ByCumulativeCompletionTokens orders the results by the cumulative_completion_tokens field.
func ByCumulativeCompletionTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCumulativeCompletionTokens, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByErrorStage orders the results by the error_stage field.
func ByErrorStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorStage, opts...).ToFunc()
}

// ByOwner orders the results by the owner field.
func ByOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwner, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByWorldField orders the results by world field.
func ByWorldField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorldStep(), sql.OrderByField(field, opts...))
	}
}

// ByCheckpointsCount orders the results by checkpoints count.
func ByCheckpointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCheckpointsStep(), opts...)
	}
}

// ByCheckpoints orders the results by checkpoints terms.
func ByCheckpoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckpointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByModelCallsCount orders the results by model_calls count.
func ByModelCallsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newModelCallsStep(), opts...)
	}
}

// ByModelCalls orders the results by model_calls terms.
func ByModelCalls(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newModelCallsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newWorldStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorldInverseTable, WorldFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, WorldTable, WorldColumn),
	)
}
func newCheckpointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckpointsInverseTable, CheckpointFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
	)
}
func newModelCallsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ModelCallsInverseTable, ModelCallFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ModelCallsTable, ModelCallsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
