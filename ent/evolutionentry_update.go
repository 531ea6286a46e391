// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/narraforge/narraforge/ent/evolutionentry"
	"github.com/narraforge/narraforge/ent/predicate"
)

// EvolutionEntryUpdate is the builder for updating EvolutionEntry entities.
type EvolutionEntryUpdate struct {
	config
	hooks    []Hook
	mutation *EvolutionEntryMutation
}

// Where appends a list predicates to the EvolutionEntryUpdate builder.
func (_u *EvolutionEntryUpdate) Where(ps ...predicate.EvolutionEntry) *EvolutionEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *EvolutionEntryUpdate) SetEntityID(v string) *EvolutionEntryUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EvolutionEntryUpdate) SetNillableEntityID(v *string) *EvolutionEntryUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *EvolutionEntryUpdate) SetEntityType(v evolutionentry.EntityType) *EvolutionEntryUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EvolutionEntryUpdate) SetNillableEntityType(v *evolutionentry.EntityType) *EvolutionEntryUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetChangeType sets the "change_type" field.
func (_u *EvolutionEntryUpdate) SetChangeType(v string) *EvolutionEntryUpdate {
	_u.mutation.SetChangeType(v)
	return _u
}

// SetNillableChangeType sets the "change_type" field if the given value is not nil.
func (_u *EvolutionEntryUpdate) SetNillableChangeType(v *string) *EvolutionEntryUpdate {
	if v != nil {
		_u.SetChangeType(*v)
	}
	return _u
}

// SetBeforeState sets the "before_state" field.
func (_u *EvolutionEntryUpdate) SetBeforeState(v map[string]interface{}) *EvolutionEntryUpdate {
	_u.mutation.SetBeforeState(v)
	return _u
}

// SetAfterState sets the "after_state" field.
func (_u *EvolutionEntryUpdate) SetAfterState(v map[string]interface{}) *EvolutionEntryUpdate {
	_u.mutation.SetAfterState(v)
	return _u
}

// SetTriggerEventID sets the "trigger_event_id" field.
func (_u *EvolutionEntryUpdate) SetTriggerEventID(v string) *EvolutionEntryUpdate {
	_u.mutation.SetTriggerEventID(v)
	return _u
}

// SetNillableTriggerEventID sets the "trigger_event_id" field if the given value is not nil.
func (_u *EvolutionEntryUpdate) SetNillableTriggerEventID(v *string) *EvolutionEntryUpdate {
	if v != nil {
		_u.SetTriggerEventID(*v)
	}
	return _u
}

// SetSignificance sets the "significance" field.
func (_u *EvolutionEntryUpdate) SetSignificance(v float64) *EvolutionEntryUpdate {
	_u.mutation.ResetSignificance()
	_u.mutation.SetSignificance(v)
	return _u
}

// SetNillableSignificance sets the "significance" field if the given value is not nil.
func (_u *EvolutionEntryUpdate) SetNillableSignificance(v *float64) *EvolutionEntryUpdate {
	if v != nil {
		_u.SetSignificance(*v)
	}
	return _u
}

// AddSignificance adds value to the "significance" field.
func (_u *EvolutionEntryUpdate) AddSignificance(v float64) *EvolutionEntryUpdate {
	_u.mutation.AddSignificance(v)
	return _u
}

// Mutation returns the EvolutionEntryMutation object of the builder.
func (_u *EvolutionEntryUpdate) Mutation() *EvolutionEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvolutionEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvolutionEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvolutionEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvolutionEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvolutionEntryUpdate) check() error {
	if v, ok := _u.mutation.EntityType(); ok {
		if err := evolutionentry.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "EvolutionEntry.entity_type": %w`, err)}
		}
	}
	if _u.mutation.WorldCleared() && len(_u.mutation.WorldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvolutionEntry.world"`)
	}
	return nil
}

func (_u *EvolutionEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evolutionentry.Table, evolutionentry.Columns, sqlgraph.NewFieldSpec(evolutionentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(evolutionentry.FieldEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(evolutionentry.FieldEntityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChangeType(); ok {
		_spec.SetField(evolutionentry.FieldChangeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BeforeState(); ok {
		_spec.SetField(evolutionentry.FieldBeforeState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AfterState(); ok {
		_spec.SetField(evolutionentry.FieldAfterState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TriggerEventID(); ok {
		_spec.SetField(evolutionentry.FieldTriggerEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Significance(); ok {
		_spec.SetField(evolutionentry.FieldSignificance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSignificance(); ok {
		_spec.AddField(evolutionentry.FieldSignificance, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evolutionentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvolutionEntryUpdateOne is the builder for updating a single EvolutionEntry entity.
type EvolutionEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvolutionEntryMutation
}

// SetEntityID sets the "entity_id" field.
func (_u *EvolutionEntryUpdateOne) SetEntityID(v string) *EvolutionEntryUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EvolutionEntryUpdateOne) SetNillableEntityID(v *string) *EvolutionEntryUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *EvolutionEntryUpdateOne) SetEntityType(v evolutionentry.EntityType) *EvolutionEntryUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EvolutionEntryUpdateOne) SetNillableEntityType(v *evolutionentry.EntityType) *EvolutionEntryUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetChangeType sets the "change_type" field.
func (_u *EvolutionEntryUpdateOne) SetChangeType(v string) *EvolutionEntryUpdateOne {
	_u.mutation.SetChangeType(v)
	return _u
}

// SetNillableChangeType sets the "change_type" field if the given value is not nil.
func (_u *EvolutionEntryUpdateOne) SetNillableChangeType(v *string) *EvolutionEntryUpdateOne {
	if v != nil {
		_u.SetChangeType(*v)
	}
	return _u
}

// SetBeforeState sets the "before_state" field.
func (_u *EvolutionEntryUpdateOne) SetBeforeState(v map[string]interface{}) *EvolutionEntryUpdateOne {
	_u.mutation.SetBeforeState(v)
	return _u
}

// SetAfterState sets the "after_state" field.
func (_u *EvolutionEntryUpdateOne) SetAfterState(v map[string]interface{}) *EvolutionEntryUpdateOne {
	_u.mutation.SetAfterState(v)
	return _u
}

// SetTriggerEventID sets the "trigger_event_id" field.
func (_u *EvolutionEntryUpdateOne) SetTriggerEventID(v string) *EvolutionEntryUpdateOne {
	_u.mutation.SetTriggerEventID(v)
	return _u
}

// SetNillableTriggerEventID sets the "trigger_event_id" field if the given value is not nil.
func (_u *EvolutionEntryUpdateOne) SetNillableTriggerEventID(v *string) *EvolutionEntryUpdateOne {
	if v != nil {
		_u.SetTriggerEventID(*v)
	}
	return _u
}

// SetSignificance sets the "significance" field.
func (_u *EvolutionEntryUpdateOne) SetSignificance(v float64) *EvolutionEntryUpdateOne {
	_u.mutation.ResetSignificance()
	_u.mutation.SetSignificance(v)
	return _u
}

// SetNillableSignificance sets the "significance" field if the given value is not nil.
func (_u *EvolutionEntryUpdateOne) SetNillableSignificance(v *float64) *EvolutionEntryUpdateOne {
	if v != nil {
		_u.SetSignificance(*v)
	}
	return _u
}

// AddSignificance adds value to the "significance" field.
func (_u *EvolutionEntryUpdateOne) AddSignificance(v float64) *EvolutionEntryUpdateOne {
	_u.mutation.AddSignificance(v)
	return _u
}

// Mutation returns the EvolutionEntryMutation object of the builder.
func (_u *EvolutionEntryUpdateOne) Mutation() *EvolutionEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvolutionEntryUpdate builder.
func (_u *EvolutionEntryUpdateOne) Where(ps ...predicate.EvolutionEntry) *EvolutionEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvolutionEntryUpdateOne) Select(field string, fields ...string) *EvolutionEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvolutionEntry entity.
func (_u *EvolutionEntryUpdateOne) Save(ctx context.Context) (*EvolutionEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvolutionEntryUpdateOne) SaveX(ctx context.Context) *EvolutionEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvolutionEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvolutionEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvolutionEntryUpdateOne) check() error {
	if v, ok := _u.mutation.EntityType(); ok {
		if err := evolutionentry.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "EvolutionEntry.entity_type": %w`, err)}
		}
	}
	if _u.mutation.WorldCleared() && len(_u.mutation.WorldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvolutionEntry.world"`)
	}
	return nil
}

func (_u *EvolutionEntryUpdateOne) sqlSave(ctx context.Context) (_node *EvolutionEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evolutionentry.Table, evolutionentry.Columns, sqlgraph.NewFieldSpec(evolutionentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvolutionEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evolutionentry.FieldID)
		for _, f := range fields {
			if !evolutionentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evolutionentry.FieldID {
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
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(evolutionentry.FieldEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(evolutionentry.FieldEntityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChangeType(); ok {
		_spec.SetField(evolutionentry.FieldChangeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BeforeState(); ok {
		_spec.SetField(evolutionentry.FieldBeforeState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AfterState(); ok {
		_spec.SetField(evolutionentry.FieldAfterState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TriggerEventID(); ok {
		_spec.SetField(evolutionentry.FieldTriggerEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Significance(); ok {
		_spec.SetField(evolutionentry.FieldSignificance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSignificance(); ok {
		_spec.AddField(evolutionentry.FieldSignificance, field.TypeFloat64, value)
	}
	_node = &EvolutionEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evolutionentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
