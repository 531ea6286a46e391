// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/ent/modelcall"
)

// ModelCallCreate is the builder for creating a ModelCall entity.
type ModelCallCreate struct {
	config
	mutation *ModelCallMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *ModelCallCreate) SetJobID(v string) *ModelCallCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *ModelCallCreate) SetStage(v int) *ModelCallCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *ModelCallCreate) SetAttempt(v int) *ModelCallCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ModelCallCreate) SetProvider(v string) *ModelCallCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *ModelCallCreate) SetModelID(v string) *ModelCallCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *ModelCallCreate) SetTier(v string) *ModelCallCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *ModelCallCreate) SetPromptTokens(v int) *ModelCallCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *ModelCallCreate) SetNillablePromptTokens(v *int) *ModelCallCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *ModelCallCreate) SetCompletionTokens(v int) *ModelCallCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *ModelCallCreate) SetNillableCompletionTokens(v *int) *ModelCallCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetUsdCost sets the "usd_cost" field.
func (_c *ModelCallCreate) SetUsdCost(v float64) *ModelCallCreate {
	_c.mutation.SetUsdCost(v)
	return _c
}

// SetNillableUsdCost sets the "usd_cost" field if the given value is not nil.
func (_c *ModelCallCreate) SetNillableUsdCost(v *float64) *ModelCallCreate {
	if v != nil {
		_c.SetUsdCost(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ModelCallCreate) SetDurationMs(v int) *ModelCallCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ModelCallCreate) SetNillableDurationMs(v *int) *ModelCallCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetErrorClass sets the "error_class" field.
func (_c *ModelCallCreate) SetErrorClass(v string) *ModelCallCreate {
	_c.mutation.SetErrorClass(v)
	return _c
}

// SetNillableErrorClass sets the "error_class" field if the given value is not nil.
func (_c *ModelCallCreate) SetNillableErrorClass(v *string) *ModelCallCreate {
	if v != nil {
		_c.SetErrorClass(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelCallCreate) SetCreatedAt(v time.Time) *ModelCallCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelCallCreate) SetNillableCreatedAt(v *time.Time) *ModelCallCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelCallCreate) SetID(v string) *ModelCallCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *ModelCallCreate) SetJob(v *Job) *ModelCallCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the ModelCallMutation object of the builder.
func (_c *ModelCallCreate) Mutation() *ModelCallMutation {
	return _c.mutation
}

// Save creates the ModelCall in the database.
func (_c *ModelCallCreate) Save(ctx context.Context) (*ModelCall, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelCallCreate) SaveX(ctx context.Context) *ModelCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelCallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelCallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelCallCreate) defaults() {
	if _, ok := _c.mutation.PromptTokens(); !ok {
		v := modelcall.DefaultPromptTokens
		_c.mutation.SetPromptTokens(v)
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		v := modelcall.DefaultCompletionTokens
		_c.mutation.SetCompletionTokens(v)
	}
	if _, ok := _c.mutation.UsdCost(); !ok {
		v := modelcall.DefaultUsdCost
		_c.mutation.SetUsdCost(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := modelcall.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := modelcall.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelCallCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ModelCall.job_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "ModelCall.stage"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "ModelCall.attempt"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ModelCall.provider"`)}
	}
	if _, ok := _c.mutation.ModelID(); !ok {
		return &ValidationError{Name: "model_id", err: errors.New(`ent: missing required field "ModelCall.model_id"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "ModelCall.tier"`)}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "ModelCall.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "ModelCall.completion_tokens"`)}
	}
	if _, ok := _c.mutation.UsdCost(); !ok {
		return &ValidationError{Name: "usd_cost", err: errors.New(`ent: missing required field "ModelCall.usd_cost"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ModelCall.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModelCall.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "ModelCall.job"`)}
	}
	return nil
}

func (_c *ModelCallCreate) sqlSave(ctx context.Context) (*ModelCall, error) {
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
			return nil, fmt.Errorf("unexpected ModelCall.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModelCallCreate) createSpec() (*ModelCall, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelCall{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelcall.Table, sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(modelcall.FieldStage, field.TypeInt, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(modelcall.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(modelcall.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(modelcall.FieldModelID, field.TypeString, value)
		_node.ModelID = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(modelcall.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(modelcall.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(modelcall.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.UsdCost(); ok {
		_spec.SetField(modelcall.FieldUsdCost, field.TypeFloat64, value)
		_node.UsdCost = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(modelcall.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.ErrorClass(); ok {
		_spec.SetField(modelcall.FieldErrorClass, field.TypeString, value)
		_node.ErrorClass = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(modelcall.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   modelcall.JobTable,
			Columns: []string{modelcall.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ModelCallCreateBulk is the builder for creating many ModelCall entities in bulk.
type ModelCallCreateBulk struct {
	config
	err      error
	builders []*ModelCallCreate
}

// Save creates the ModelCall entities in the database.
func (_c *ModelCallCreateBulk) Save(ctx context.Context) ([]*ModelCall, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelCall, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelCallMutation)
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
func (_c *ModelCallCreateBulk) SaveX(ctx context.Context) []*ModelCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelCallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelCallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
