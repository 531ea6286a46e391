// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/narraforge/narraforge/ent/checkpoint"
	"github.com/narraforge/narraforge/ent/event"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/ent/modelcall"
	"github.com/narraforge/narraforge/ent/world"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetBrief sets the "brief" field.
func (_c *JobCreate) SetBrief(v map[string]interface{}) *JobCreate {
	_c.mutation.SetBrief(v)
	return _c
}

// SetProductionType sets the "production_type" field.
func (_c *JobCreate) SetProductionType(v string) *JobCreate {
	_c.mutation.SetProductionType(v)
	return _c
}

// SetGenre sets the "genre" field.
func (_c *JobCreate) SetGenre(v string) *JobCreate {
	_c.mutation.SetGenre(v)
	return _c
}

// SetContentLanguage sets the "content_language" field.
func (_c *JobCreate) SetContentLanguage(v string) *JobCreate {
	_c.mutation.SetContentLanguage(v)
	return _c
}

// SetNillableContentLanguage sets the "content_language" field if the given value is not nil.
func (_c *JobCreate) SetNillableContentLanguage(v *string) *JobCreate {
	if v != nil {
		_c.SetContentLanguage(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v job.Status) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *job.Status) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentStage sets the "current_stage" field.
func (_c *JobCreate) SetCurrentStage(v int) *JobCreate {
	_c.mutation.SetCurrentStage(v)
	return _c
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_c *JobCreate) SetNillableCurrentStage(v *int) *JobCreate {
	if v != nil {
		_c.SetCurrentStage(*v)
	}
	return _c
}

// SetCumulativeCostUsd sets the "cumulative_cost_usd" field.
func (_c *JobCreate) SetCumulativeCostUsd(v float64) *JobCreate {
	_c.mutation.SetCumulativeCostUsd(v)
	return _c
}

// SetNillableCumulativeCostUsd sets the "cumulative_cost_usd" field if the given value is not nil.
func (_c *JobCreate) SetNillableCumulativeCostUsd(v *float64) *JobCreate {
	if v != nil {
		_c.SetCumulativeCostUsd(*v)
	}
	return _c
}

// SetCumulativePromptTokens sets the "cumulative_prompt_tokens" field.
func (_c *JobCreate) SetCumulativePromptTokens(v int) *JobCreate {
	_c.mutation.SetCumulativePromptTokens(v)
	return _c
}

// SetNillableCumulativePromptTokens sets the "cumulative_prompt_tokens" field if the given value is not nil.
func (_c *JobCreate) SetNillableCumulativePromptTokens(v *int) *JobCreate {
	if v != nil {
		_c.SetCumulativePromptTokens(*v)
	}
	return _c
}

// SetCumulativeCompletionTokens sets the "cumulative_completion_tokens" field.
func (_c *JobCreate) SetCumulativeCompletionTokens(v int) *JobCreate {
	_c.mutation.SetCumulativeCompletionTokens(v)
	return _c
}

// SetNillableCumulativeCompletionTokens sets the "cumulative_completion_tokens" field if the given value is not nil.
func (_c *JobCreate) SetNillableCumulativeCompletionTokens(v *int) *JobCreate {
	if v != nil {
		_c.SetCumulativeCompletionTokens(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *JobCreate) SetErrorMessage(v string) *JobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *JobCreate) SetNillableErrorMessage(v *string) *JobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *JobCreate) SetErrorKind(v string) *JobCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *JobCreate) SetNillableErrorKind(v *string) *JobCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorStage sets the "error_stage" field.
func (_c *JobCreate) SetErrorStage(v int) *JobCreate {
	_c.mutation.SetErrorStage(v)
	return _c
}

// SetNillableErrorStage sets the "error_stage" field if the given value is not nil.
func (_c *JobCreate) SetNillableErrorStage(v *int) *JobCreate {
	if v != nil {
		_c.SetErrorStage(*v)
	}
	return _c
}

// SetOwner sets the "owner" field.
func (_c *JobCreate) SetOwner(v string) *JobCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_c *JobCreate) SetNillableOwner(v *string) *JobCreate {
	if v != nil {
		_c.SetOwner(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *JobCreate) SetPodID(v string) *JobCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *JobCreate) SetNillablePodID(v *string) *JobCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *JobCreate) SetLastHeartbeatAt(v time.Time) *JobCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastHeartbeatAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JobCreate) SetStartedAt(v time.Time) *JobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableStartedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobCreate) SetCompletedAt(v time.Time) *JobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCompletedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *JobCreate) SetDeletedAt(v time.Time) *JobCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableDeletedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorldID sets the "world" edge to the World entity by ID.
func (_c *JobCreate) SetWorldID(id string) *JobCreate {
	_c.mutation.SetWorldID(id)
	return _c
}

// SetNillableWorldID sets the "world" edge to the World entity by ID if the given value is not nil.
func (_c *JobCreate) SetNillableWorldID(id *string) *JobCreate {
	if id != nil {
		_c = _c.SetWorldID(*id)
	}
	return _c
}

// SetWorld sets the "world" edge to the World entity.
func (_c *JobCreate) SetWorld(v *World) *JobCreate {
	return _c.SetWorldID(v.ID)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_c *JobCreate) AddCheckpointIDs(ids ...string) *JobCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_c *JobCreate) AddCheckpoints(v ...*Checkpoint) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// AddModelCallIDs adds the "model_calls" edge to the ModelCall entity by IDs.
func (_c *JobCreate) AddModelCallIDs(ids ...string) *JobCreate {
	_c.mutation.AddModelCallIDs(ids...)
	return _c
}

// AddModelCalls adds the "model_calls" edges to the ModelCall entity.
func (_c *JobCreate) AddModelCalls(v ...*ModelCall) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddModelCallIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *JobCreate) AddEventIDs(ids ...int64) *JobCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *JobCreate) AddEvents(v ...*Event) *JobCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.ContentLanguage(); !ok {
		v := job.DefaultContentLanguage
		_c.mutation.SetContentLanguage(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CumulativeCostUsd(); !ok {
		v := job.DefaultCumulativeCostUsd
		_c.mutation.SetCumulativeCostUsd(v)
	}
	if _, ok := _c.mutation.CumulativePromptTokens(); !ok {
		v := job.DefaultCumulativePromptTokens
		_c.mutation.SetCumulativePromptTokens(v)
	}
	if _, ok := _c.mutation.CumulativeCompletionTokens(); !ok {
		v := job.DefaultCumulativeCompletionTokens
		_c.mutation.SetCumulativeCompletionTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.Brief(); !ok {
		return &ValidationError{Name: "brief", err: errors.New(`ent: missing required field "Job.brief"`)}
	}
	if _, ok := _c.mutation.ProductionType(); !ok {
		return &ValidationError{Name: "production_type", err: errors.New(`ent: missing required field "Job.production_type"`)}
	}
	if _, ok := _c.mutation.Genre(); !ok {
		return &ValidationError{Name: "genre", err: errors.New(`ent: missing required field "Job.genre"`)}
	}
	if _, ok := _c.mutation.ContentLanguage(); !ok {
		return &ValidationError{Name: "content_language", err: errors.New(`ent: missing required field "Job.content_language"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CumulativeCostUsd(); !ok {
		return &ValidationError{Name: "cumulative_cost_usd", err: errors.New(`ent: missing required field "Job.cumulative_cost_usd"`)}
	}
	if _, ok := _c.mutation.CumulativePromptTokens(); !ok {
		return &ValidationError{Name: "cumulative_prompt_tokens", err: errors.New(`ent: missing required field "Job.cumulative_prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CumulativeCompletionTokens(); !ok {
		return &ValidationError{Name: "cumulative_completion_tokens", err: errors.New(`ent: missing required field "Job.cumulative_completion_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Brief(); ok {
		_spec.SetField(job.FieldBrief, field.TypeJSON, value)
		_node.Brief = value
	}
	if value, ok := _c.mutation.ProductionType(); ok {
		_spec.SetField(job.FieldProductionType, field.TypeString, value)
		_node.ProductionType = value
	}
	if value, ok := _c.mutation.Genre(); ok {
		_spec.SetField(job.FieldGenre, field.TypeString, value)
		_node.Genre = value
	}
	if value, ok := _c.mutation.ContentLanguage(); ok {
		_spec.SetField(job.FieldContentLanguage, field.TypeString, value)
		_node.ContentLanguage = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentStage(); ok {
		_spec.SetField(job.FieldCurrentStage, field.TypeInt, value)
		_node.CurrentStage = &value
	}
	if value, ok := _c.mutation.CumulativeCostUsd(); ok {
		_spec.SetField(job.FieldCumulativeCostUsd, field.TypeFloat64, value)
		_node.CumulativeCostUsd = value
	}
	if value, ok := _c.mutation.CumulativePromptTokens(); ok {
		_spec.SetField(job.FieldCumulativePromptTokens, field.TypeInt, value)
		_node.CumulativePromptTokens = value
	}
	if value, ok := _c.mutation.CumulativeCompletionTokens(); ok {
		_spec.SetField(job.FieldCumulativeCompletionTokens, field.TypeInt, value)
		_node.CumulativeCompletionTokens = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(job.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ErrorStage(); ok {
		_spec.SetField(job.FieldErrorStage, field.TypeInt, value)
		_node.ErrorStage = &value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(job.FieldOwner, field.TypeString, value)
		_node.Owner = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(job.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(job.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.WorldIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ModelCallsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
