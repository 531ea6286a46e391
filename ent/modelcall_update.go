// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/narraforge/narraforge/ent/modelcall"
	"github.com/narraforge/narraforge/ent/predicate"
)

// ModelCallUpdate is the builder for updating ModelCall entities.
type ModelCallUpdate struct {
	config
	hooks    []Hook
	mutation *ModelCallMutation
}

// Where appends a list predicates to the ModelCallUpdate builder.
func (_u *ModelCallUpdate) Where(ps ...predicate.ModelCall) *ModelCallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *ModelCallUpdate) SetPromptTokens(v int) *ModelCallUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *ModelCallUpdate) SetNillablePromptTokens(v *int) *ModelCallUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *ModelCallUpdate) AddPromptTokens(v int) *ModelCallUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *ModelCallUpdate) SetCompletionTokens(v int) *ModelCallUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *ModelCallUpdate) SetNillableCompletionTokens(v *int) *ModelCallUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *ModelCallUpdate) AddCompletionTokens(v int) *ModelCallUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetUsdCost sets the "usd_cost" field.
func (_u *ModelCallUpdate) SetUsdCost(v float64) *ModelCallUpdate {
	_u.mutation.ResetUsdCost()
	_u.mutation.SetUsdCost(v)
	return _u
}

// SetNillableUsdCost sets the "usd_cost" field if the given value is not nil.
func (_u *ModelCallUpdate) SetNillableUsdCost(v *float64) *ModelCallUpdate {
	if v != nil {
		_u.SetUsdCost(*v)
	}
	return _u
}

// AddUsdCost adds value to the "usd_cost" field.
func (_u *ModelCallUpdate) AddUsdCost(v float64) *ModelCallUpdate {
	_u.mutation.AddUsdCost(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ModelCallUpdate) SetDurationMs(v int) *ModelCallUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ModelCallUpdate) SetNillableDurationMs(v *int) *ModelCallUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ModelCallUpdate) AddDurationMs(v int) *ModelCallUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetErrorClass sets the "error_class" field.
func (_u *ModelCallUpdate) SetErrorClass(v string) *ModelCallUpdate {
	_u.mutation.SetErrorClass(v)
	return _u
}

// SetNillableErrorClass sets the "error_class" field if the given value is not nil.
func (_u *ModelCallUpdate) SetNillableErrorClass(v *string) *ModelCallUpdate {
	if v != nil {
		_u.SetErrorClass(*v)
	}
	return _u
}

// ClearErrorClass clears the value of the "error_class" field.
func (_u *ModelCallUpdate) ClearErrorClass() *ModelCallUpdate {
	_u.mutation.ClearErrorClass()
	return _u
}

// Mutation returns the ModelCallMutation object of the builder.
func (_u *ModelCallUpdate) Mutation() *ModelCallMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelCallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelCallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelCallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelCallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelCallUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ModelCall.job"`)
	}
	return nil
}

func (_u *ModelCallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelcall.Table, modelcall.Columns, sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(modelcall.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(modelcall.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(modelcall.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(modelcall.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsdCost(); ok {
		_spec.SetField(modelcall.FieldUsdCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUsdCost(); ok {
		_spec.AddField(modelcall.FieldUsdCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(modelcall.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(modelcall.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorClass(); ok {
		_spec.SetField(modelcall.FieldErrorClass, field.TypeString, value)
	}
	if _u.mutation.ErrorClassCleared() {
		_spec.ClearField(modelcall.FieldErrorClass, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelCallUpdateOne is the builder for updating a single ModelCall entity.
type ModelCallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelCallMutation
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *ModelCallUpdateOne) SetPromptTokens(v int) *ModelCallUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *ModelCallUpdateOne) SetNillablePromptTokens(v *int) *ModelCallUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *ModelCallUpdateOne) AddPromptTokens(v int) *ModelCallUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *ModelCallUpdateOne) SetCompletionTokens(v int) *ModelCallUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *ModelCallUpdateOne) SetNillableCompletionTokens(v *int) *ModelCallUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *ModelCallUpdateOne) AddCompletionTokens(v int) *ModelCallUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetUsdCost sets the "usd_cost" field.
func (_u *ModelCallUpdateOne) SetUsdCost(v float64) *ModelCallUpdateOne {
	_u.mutation.ResetUsdCost()
	_u.mutation.SetUsdCost(v)
	return _u
}

// SetNillableUsdCost sets the "usd_cost" field if the given value is not nil.
func (_u *ModelCallUpdateOne) SetNillableUsdCost(v *float64) *ModelCallUpdateOne {
	if v != nil {
		_u.SetUsdCost(*v)
	}
	return _u
}

// AddUsdCost adds value to the "usd_cost" field.
func (_u *ModelCallUpdateOne) AddUsdCost(v float64) *ModelCallUpdateOne {
	_u.mutation.AddUsdCost(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ModelCallUpdateOne) SetDurationMs(v int) *ModelCallUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ModelCallUpdateOne) SetNillableDurationMs(v *int) *ModelCallUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ModelCallUpdateOne) AddDurationMs(v int) *ModelCallUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetErrorClass sets the "error_class" field.
func (_u *ModelCallUpdateOne) SetErrorClass(v string) *ModelCallUpdateOne {
	_u.mutation.SetErrorClass(v)
	return _u
}

// SetNillableErrorClass sets the "error_class" field if the given value is not nil.
func (_u *ModelCallUpdateOne) SetNillableErrorClass(v *string) *ModelCallUpdateOne {
	if v != nil {
		_u.SetErrorClass(*v)
	}
	return _u
}

// ClearErrorClass clears the value of the "error_class" field.
func (_u *ModelCallUpdateOne) ClearErrorClass() *ModelCallUpdateOne {
	_u.mutation.ClearErrorClass()
	return _u
}

// Mutation returns the ModelCallMutation object of the builder.
func (_u *ModelCallUpdateOne) Mutation() *ModelCallMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelCallUpdate builder.
func (_u *ModelCallUpdateOne) Where(ps ...predicate.ModelCall) *ModelCallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelCallUpdateOne) Select(field string, fields ...string) *ModelCallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelCall entity.
func (_u *ModelCallUpdateOne) Save(ctx context.Context) (*ModelCall, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelCallUpdateOne) SaveX(ctx context.Context) *ModelCall {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelCallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelCallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelCallUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ModelCall.job"`)
	}
	return nil
}

func (_u *ModelCallUpdateOne) sqlSave(ctx context.Context) (_node *ModelCall, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelcall.Table, modelcall.Columns, sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelCall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelcall.FieldID)
		for _, f := range fields {
			if !modelcall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelcall.FieldID {
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
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(modelcall.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(modelcall.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(modelcall.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(modelcall.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsdCost(); ok {
		_spec.SetField(modelcall.FieldUsdCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUsdCost(); ok {
		_spec.AddField(modelcall.FieldUsdCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(modelcall.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(modelcall.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorClass(); ok {
		_spec.SetField(modelcall.FieldErrorClass, field.TypeString, value)
	}
	if _u.mutation.ErrorClassCleared() {
		_spec.ClearField(modelcall.FieldErrorClass, field.TypeString)
	}
	_node = &ModelCall{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
