// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/narraforge/narraforge/ent/checkpoint"
	"github.com/narraforge/narraforge/ent/event"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/ent/modelcall"
	"github.com/narraforge/narraforge/ent/predicate"
	"github.com/narraforge/narraforge/ent/world"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBrief sets the "brief" field.
func (_u *JobUpdate) SetBrief(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetBrief(v)
	return _u
}

// SetProductionType sets the "production_type" field.
func (_u *JobUpdate) SetProductionType(v string) *JobUpdate {
	_u.mutation.SetProductionType(v)
	return _u
}

// SetNillableProductionType sets the "production_type" field if the given value is not nil.
func (_u *JobUpdate) SetNillableProductionType(v *string) *JobUpdate {
	if v != nil {
		_u.SetProductionType(*v)
	}
	return _u
}

// SetGenre sets the "genre" field.
func (_u *JobUpdate) SetGenre(v string) *JobUpdate {
	_u.mutation.SetGenre(v)
	return _u
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (_u *JobUpdate) SetNillableGenre(v *string) *JobUpdate {
	if v != nil {
		_u.SetGenre(*v)
	}
	return _u
}

// SetContentLanguage sets the "content_language" field.
func (_u *JobUpdate) SetContentLanguage(v string) *JobUpdate {
	_u.mutation.SetContentLanguage(v)
	return _u
}

// SetNillableContentLanguage sets the "content_language" field if the given value is not nil.
func (_u *JobUpdate) SetNillableContentLanguage(v *string) *JobUpdate {
	if v != nil {
		_u.SetContentLanguage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *JobUpdate) SetCurrentStage(v int) *JobUpdate {
	_u.mutation.ResetCurrentStage()
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCurrentStage(v *int) *JobUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// AddCurrentStage adds value to the "current_stage" field.
func (_u *JobUpdate) AddCurrentStage(v int) *JobUpdate {
	_u.mutation.AddCurrentStage(v)
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *JobUpdate) ClearCurrentStage() *JobUpdate {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetCumulativeCostUsd sets the "cumulative_cost_usd" field.
func (_u *JobUpdate) SetCumulativeCostUsd(v float64) *JobUpdate {
	_u.mutation.ResetCumulativeCostUsd()
	_u.mutation.SetCumulativeCostUsd(v)
	return _u
}

// SetNillableCumulativeCostUsd sets the "cumulative_cost_usd" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCumulativeCostUsd(v *float64) *JobUpdate {
	if v != nil {
		_u.SetCumulativeCostUsd(*v)
	}
	return _u
}

// AddCumulativeCostUsd adds value to the "cumulative_cost_usd" field.
func (_u *JobUpdate) AddCumulativeCostUsd(v float64) *JobUpdate {
	_u.mutation.AddCumulativeCostUsd(v)
	return _u
}

// SetCumulativePromptTokens sets the "cumulative_prompt_tokens" field.
func (_u *JobUpdate) SetCumulativePromptTokens(v int) *JobUpdate {
	_u.mutation.ResetCumulativePromptTokens()
	_u.mutation.SetCumulativePromptTokens(v)
	return _u
}

// SetNillableCumulativePromptTokens sets the "cumulative_prompt_tokens" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCumulativePromptTokens(v *int) *JobUpdate {
	if v != nil {
		_u.SetCumulativePromptTokens(*v)
	}
	return _u
}

// AddCumulativePromptTokens adds value to the "cumulative_prompt_tokens" field.
func (_u *JobUpdate) AddCumulativePromptTokens(v int) *JobUpdate {
	_u.mutation.AddCumulativePromptTokens(v)
	return _u
}

// SetCumulativeCompletionTokens sets the "cumulative_completion_tokens" field.
func (_u *JobUpdate) SetCumulativeCompletionTokens(v int) *JobUpdate {
	_u.mutation.ResetCumulativeCompletionTokens()
	_u.mutation.SetCumulativeCompletionTokens(v)
	return _u
}

// SetNillableCumulativeCompletionTokens sets the "cumulative_completion_tokens" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCumulativeCompletionTokens(v *int) *JobUpdate {
	if v != nil {
		_u.SetCumulativeCompletionTokens(*v)
	}
	return _u
}

// AddCumulativeCompletionTokens adds value to the "cumulative_completion_tokens" field.
func (_u *JobUpdate) AddCumulativeCompletionTokens(v int) *JobUpdate {
	_u.mutation.AddCumulativeCompletionTokens(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdate) SetErrorMessage(v string) *JobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorMessage(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdate) ClearErrorMessage() *JobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *JobUpdate) SetErrorKind(v string) *JobUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorKind(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *JobUpdate) ClearErrorKind() *JobUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorStage sets the "error_stage" field.
func (_u *JobUpdate) SetErrorStage(v int) *JobUpdate {
	_u.mutation.ResetErrorStage()
	_u.mutation.SetErrorStage(v)
	return _u
}

// SetNillableErrorStage sets the "error_stage" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorStage(v *int) *JobUpdate {
	if v != nil {
		_u.SetErrorStage(*v)
	}
	return _u
}

// AddErrorStage adds value to the "error_stage" field.
func (_u *JobUpdate) AddErrorStage(v int) *JobUpdate {
	_u.mutation.AddErrorStage(v)
	return _u
}

// ClearErrorStage clears the value of the "error_stage" field.
func (_u *JobUpdate) ClearErrorStage() *JobUpdate {
	_u.mutation.ClearErrorStage()
	return _u
}

// SetOwner sets the "owner" field.
func (_u *JobUpdate) SetOwner(v string) *JobUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *JobUpdate) SetNillableOwner(v *string) *JobUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *JobUpdate) ClearOwner() *JobUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *JobUpdate) SetPodID(v string) *JobUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePodID(v *string) *JobUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *JobUpdate) ClearPodID() *JobUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *JobUpdate) SetLastHeartbeatAt(v time.Time) *JobUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastHeartbeatAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *JobUpdate) ClearLastHeartbeatAt() *JobUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdate) SetCreatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCreatedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdate) SetStartedAt(v time.Time) *JobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdate) ClearStartedAt() *JobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdate) SetCompletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdate) ClearCompletedAt() *JobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *JobUpdate) SetDeletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDeletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *JobUpdate) ClearDeletedAt() *JobUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetWorldID sets the "world" edge to the World entity by ID.
func (_u *JobUpdate) SetWorldID(id string) *JobUpdate {
	_u.mutation.SetWorldID(id)
	return _u
}

// SetNillableWorldID sets the "world" edge to the World entity by ID if the given value is not nil.
func (_u *JobUpdate) SetNillableWorldID(id *string) *JobUpdate {
	if id != nil {
		_u = _u.SetWorldID(*id)
	}
	return _u
}

// SetWorld sets the "world" edge to the World entity.
func (_u *JobUpdate) SetWorld(v *World) *JobUpdate {
	return _u.SetWorldID(v.ID)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *JobUpdate) AddCheckpointIDs(ids ...string) *JobUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *JobUpdate) AddCheckpoints(v ...*Checkpoint) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddModelCallIDs adds the "model_calls" edge to the ModelCall entity by IDs.
func (_u *JobUpdate) AddModelCallIDs(ids ...string) *JobUpdate {
	_u.mutation.AddModelCallIDs(ids...)
	return _u
}

// AddModelCalls adds the "model_calls" edges to the ModelCall entity.
func (_u *JobUpdate) AddModelCalls(v ...*ModelCall) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddModelCallIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *JobUpdate) AddEventIDs(ids ...int64) *JobUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *JobUpdate) AddEvents(v ...*Event) *JobUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearWorld clears the "world" edge to the World entity.
func (_u *JobUpdate) ClearWorld() *JobUpdate {
	_u.mutation.ClearWorld()
	return _u
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *JobUpdate) ClearCheckpoints() *JobUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *JobUpdate) RemoveCheckpointIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *JobUpdate) RemoveCheckpoints(v ...*Checkpoint) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearModelCalls clears all "model_calls" edges to the ModelCall entity.
func (_u *JobUpdate) ClearModelCalls() *JobUpdate {
	_u.mutation.ClearModelCalls()
	return _u
}

// RemoveModelCallIDs removes the "model_calls" edge to ModelCall entities by IDs.
func (_u *JobUpdate) RemoveModelCallIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveModelCallIDs(ids...)
	return _u
}

// RemoveModelCalls removes "model_calls" edges to ModelCall entities.
func (_u *JobUpdate) RemoveModelCalls(v ...*ModelCall) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveModelCallIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *JobUpdate) ClearEvents() *JobUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *JobUpdate) RemoveEventIDs(ids ...int64) *JobUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *JobUpdate) RemoveEvents(v ...*Event) *JobUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Brief(); ok {
		_spec.SetField(job.FieldBrief, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ProductionType(); ok {
		_spec.SetField(job.FieldProductionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Genre(); ok {
		_spec.SetField(job.FieldGenre, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentLanguage(); ok {
		_spec.SetField(job.FieldContentLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(job.FieldCurrentStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStage(); ok {
		_spec.AddField(job.FieldCurrentStage, field.TypeInt, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(job.FieldCurrentStage, field.TypeInt)
	}
	if value, ok := _u.mutation.CumulativeCostUsd(); ok {
		_spec.SetField(job.FieldCumulativeCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCumulativeCostUsd(); ok {
		_spec.AddField(job.FieldCumulativeCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CumulativePromptTokens(); ok {
		_spec.SetField(job.FieldCumulativePromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCumulativePromptTokens(); ok {
		_spec.AddField(job.FieldCumulativePromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CumulativeCompletionTokens(); ok {
		_spec.SetField(job.FieldCumulativeCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCumulativeCompletionTokens(); ok {
		_spec.AddField(job.FieldCumulativeCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(job.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(job.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorStage(); ok {
		_spec.SetField(job.FieldErrorStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorStage(); ok {
		_spec.AddField(job.FieldErrorStage, field.TypeInt, value)
	}
	if _u.mutation.ErrorStageCleared() {
		_spec.ClearField(job.FieldErrorStage, field.TypeInt)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(job.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(job.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(job.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(job.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(job.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(job.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(job.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.WorldCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   job.WorldTable,
			Columns: []string{job.WorldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(world.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   job.WorldTable,
			Columns: []string{job.WorldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(world.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CheckpointsTable,
			Columns: []string{job.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CheckpointsTable,
			Columns: []string{job.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CheckpointsTable,
			Columns: []string{job.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ModelCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ModelCallsTable,
			Columns: []string{job.ModelCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedModelCallsIDs(); len(nodes) > 0 && !_u.mutation.ModelCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ModelCallsTable,
			Columns: []string{job.ModelCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModelCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ModelCallsTable,
			Columns: []string{job.ModelCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetBrief sets the "brief" field.
func (_u *JobUpdateOne) SetBrief(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetBrief(v)
	return _u
}

// SetProductionType sets the "production_type" field.
func (_u *JobUpdateOne) SetProductionType(v string) *JobUpdateOne {
	_u.mutation.SetProductionType(v)
	return _u
}

// SetNillableProductionType sets the "production_type" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableProductionType(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetProductionType(*v)
	}
	return _u
}

// SetGenre sets the "genre" field.
func (_u *JobUpdateOne) SetGenre(v string) *JobUpdateOne {
	_u.mutation.SetGenre(v)
	return _u
}

// SetNillableGenre sets the "genre" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableGenre(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetGenre(*v)
	}
	return _u
}

// SetContentLanguage sets the "content_language" field.
func (_u *JobUpdateOne) SetContentLanguage(v string) *JobUpdateOne {
	_u.mutation.SetContentLanguage(v)
	return _u
}

// SetNillableContentLanguage sets the "content_language" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableContentLanguage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetContentLanguage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *JobUpdateOne) SetCurrentStage(v int) *JobUpdateOne {
	_u.mutation.ResetCurrentStage()
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCurrentStage(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// AddCurrentStage adds value to the "current_stage" field.
func (_u *JobUpdateOne) AddCurrentStage(v int) *JobUpdateOne {
	_u.mutation.AddCurrentStage(v)
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *JobUpdateOne) ClearCurrentStage() *JobUpdateOne {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetCumulativeCostUsd sets the "cumulative_cost_usd" field.
func (_u *JobUpdateOne) SetCumulativeCostUsd(v float64) *JobUpdateOne {
	_u.mutation.ResetCumulativeCostUsd()
	_u.mutation.SetCumulativeCostUsd(v)
	return _u
}

// SetNillableCumulativeCostUsd sets the "cumulative_cost_usd" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCumulativeCostUsd(v *float64) *JobUpdateOne {
	if v != nil {
		_u.SetCumulativeCostUsd(*v)
	}
	return _u
}

// AddCumulativeCostUsd adds value to the "cumulative_cost_usd" field.
func (_u *JobUpdateOne) AddCumulativeCostUsd(v float64) *JobUpdateOne {
	_u.mutation.AddCumulativeCostUsd(v)
	return _u
}

// SetCumulativePromptTokens sets the "cumulative_prompt_tokens" field.
func (_u *JobUpdateOne) SetCumulativePromptTokens(v int) *JobUpdateOne {
	_u.mutation.ResetCumulativePromptTokens()
	_u.mutation.SetCumulativePromptTokens(v)
	return _u
}

// SetNillableCumulativePromptTokens sets the "cumulative_prompt_tokens" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCumulativePromptTokens(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetCumulativePromptTokens(*v)
	}
	return _u
}

// AddCumulativePromptTokens adds value to the "cumulative_prompt_tokens" field.
func (_u *JobUpdateOne) AddCumulativePromptTokens(v int) *JobUpdateOne {
	_u.mutation.AddCumulativePromptTokens(v)
	return _u
}

// SetCumulativeCompletionTokens sets the "cumulative_completion_tokens" field.
func (_u *JobUpdateOne) SetCumulativeCompletionTokens(v int) *JobUpdateOne {
	_u.mutation.ResetCumulativeCompletionTokens()
	_u.mutation.SetCumulativeCompletionTokens(v)
	return _u
}

// SetNillableCumulativeCompletionTokens sets the "cumulative_completion_tokens" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCumulativeCompletionTokens(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetCumulativeCompletionTokens(*v)
	}
	return _u
}

// AddCumulativeCompletionTokens adds value to the "cumulative_completion_tokens" field.
func (_u *JobUpdateOne) AddCumulativeCompletionTokens(v int) *JobUpdateOne {
	_u.mutation.AddCumulativeCompletionTokens(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdateOne) SetErrorMessage(v string) *JobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorMessage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdateOne) ClearErrorMessage() *JobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *JobUpdateOne) SetErrorKind(v string) *JobUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorKind(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *JobUpdateOne) ClearErrorKind() *JobUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorStage sets the "error_stage" field.
func (_u *JobUpdateOne) SetErrorStage(v int) *JobUpdateOne {
	_u.mutation.ResetErrorStage()
	_u.mutation.SetErrorStage(v)
	return _u
}

// SetNillableErrorStage sets the "error_stage" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorStage(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetErrorStage(*v)
	}
	return _u
}

// AddErrorStage adds value to the "error_stage" field.
func (_u *JobUpdateOne) AddErrorStage(v int) *JobUpdateOne {
	_u.mutation.AddErrorStage(v)
	return _u
}

// ClearErrorStage clears the value of the "error_stage" field.
func (_u *JobUpdateOne) ClearErrorStage() *JobUpdateOne {
	_u.mutation.ClearErrorStage()
	return _u
}

// SetOwner sets the "owner" field.
func (_u *JobUpdateOne) SetOwner(v string) *JobUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableOwner(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *JobUpdateOne) ClearOwner() *JobUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *JobUpdateOne) SetPodID(v string) *JobUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePodID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *JobUpdateOne) ClearPodID() *JobUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *JobUpdateOne) SetLastHeartbeatAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *JobUpdateOne) ClearLastHeartbeatAt() *JobUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdateOne) SetCreatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCreatedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdateOne) SetStartedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdateOne) ClearStartedAt() *JobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdateOne) SetCompletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *JobUpdateOne) SetDeletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDeletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *JobUpdateOne) ClearDeletedAt() *JobUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetWorldID sets the "world" edge to the World entity by ID.
func (_u *JobUpdateOne) SetWorldID(id string) *JobUpdateOne {
	_u.mutation.SetWorldID(id)
	return _u
}

// SetNillableWorldID sets the "world" edge to the World entity by ID if the given value is not nil.
func (_u *JobUpdateOne) SetNillableWorldID(id *string) *JobUpdateOne {
	if id != nil {
		_u = _u.SetWorldID(*id)
	}
	return _u
}

// SetWorld sets the "world" edge to the World entity.
func (_u *JobUpdateOne) SetWorld(v *World) *JobUpdateOne {
	return _u.SetWorldID(v.ID)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *JobUpdateOne) AddCheckpointIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *JobUpdateOne) AddCheckpoints(v ...*Checkpoint) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddModelCallIDs adds the "model_calls" edge to the ModelCall entity by IDs.
func (_u *JobUpdateOne) AddModelCallIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddModelCallIDs(ids...)
	return _u
}

// AddModelCalls adds the "model_calls" edges to the ModelCall entity.
func (_u *JobUpdateOne) AddModelCalls(v ...*ModelCall) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddModelCallIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *JobUpdateOne) AddEventIDs(ids ...int64) *JobUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *JobUpdateOne) AddEvents(v ...*Event) *JobUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearWorld clears the "world" edge to the World entity.
func (_u *JobUpdateOne) ClearWorld() *JobUpdateOne {
	_u.mutation.ClearWorld()
	return _u
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *JobUpdateOne) ClearCheckpoints() *JobUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *JobUpdateOne) RemoveCheckpointIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *JobUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearModelCalls clears all "model_calls" edges to the ModelCall entity.
func (_u *JobUpdateOne) ClearModelCalls() *JobUpdateOne {
	_u.mutation.ClearModelCalls()
	return _u
}

// RemoveModelCallIDs removes the "model_calls" edge to ModelCall entities by IDs.
func (_u *JobUpdateOne) RemoveModelCallIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveModelCallIDs(ids...)
	return _u
}

// RemoveModelCalls removes "model_calls" edges to ModelCall entities.
func (_u *JobUpdateOne) RemoveModelCalls(v ...*ModelCall) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveModelCallIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *JobUpdateOne) ClearEvents() *JobUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *JobUpdateOne) RemoveEventIDs(ids ...int64) *JobUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *JobUpdateOne) RemoveEvents(v ...*Event) *JobUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Brief(); ok {
		_spec.SetField(job.FieldBrief, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ProductionType(); ok {
		_spec.SetField(job.FieldProductionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Genre(); ok {
		_spec.SetField(job.FieldGenre, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentLanguage(); ok {
		_spec.SetField(job.FieldContentLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(job.FieldCurrentStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStage(); ok {
		_spec.AddField(job.FieldCurrentStage, field.TypeInt, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(job.FieldCurrentStage, field.TypeInt)
	}
	if value, ok := _u.mutation.CumulativeCostUsd(); ok {
		_spec.SetField(job.FieldCumulativeCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCumulativeCostUsd(); ok {
		_spec.AddField(job.FieldCumulativeCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CumulativePromptTokens(); ok {
		_spec.SetField(job.FieldCumulativePromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCumulativePromptTokens(); ok {
		_spec.AddField(job.FieldCumulativePromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CumulativeCompletionTokens(); ok {
		_spec.SetField(job.FieldCumulativeCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCumulativeCompletionTokens(); ok {
		_spec.AddField(job.FieldCumulativeCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(job.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(job.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorStage(); ok {
		_spec.SetField(job.FieldErrorStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorStage(); ok {
		_spec.AddField(job.FieldErrorStage, field.TypeInt, value)
	}
	if _u.mutation.ErrorStageCleared() {
		_spec.ClearField(job.FieldErrorStage, field.TypeInt)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(job.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(job.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(job.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(job.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(job.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(job.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(job.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.WorldCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   job.WorldTable,
			Columns: []string{job.WorldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(world.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   job.WorldTable,
			Columns: []string{job.WorldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(world.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CheckpointsTable,
			Columns: []string{job.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CheckpointsTable,
			Columns: []string{job.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.CheckpointsTable,
			Columns: []string{job.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ModelCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ModelCallsTable,
			Columns: []string{job.ModelCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedModelCallsIDs(); len(nodes) > 0 && !_u.mutation.ModelCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ModelCallsTable,
			Columns: []string{job.ModelCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModelCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ModelCallsTable,
			Columns: []string{job.ModelCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
