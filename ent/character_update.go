// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/narraforge/narraforge/ent/character"
	"github.com/narraforge/narraforge/ent/predicate"
)

// CharacterUpdate is the builder for updating Character entities.
type CharacterUpdate struct {
	config
	hooks    []Hook
	mutation *CharacterMutation
}

// Where appends a list predicates to the CharacterUpdate builder.
func (_u *CharacterUpdate) Where(ps ...predicate.Character) *CharacterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CharacterUpdate) SetName(v string) *CharacterUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableName(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTrajectory sets the "trajectory" field.
func (_u *CharacterUpdate) SetTrajectory(v string) *CharacterUpdate {
	_u.mutation.SetTrajectory(v)
	return _u
}

// SetNillableTrajectory sets the "trajectory" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableTrajectory(v *string) *CharacterUpdate {
	if v != nil {
		_u.SetTrajectory(*v)
	}
	return _u
}

// SetContradictions sets the "contradictions" field.
func (_u *CharacterUpdate) SetContradictions(v []string) *CharacterUpdate {
	_u.mutation.SetContradictions(v)
	return _u
}

// AppendContradictions appends value to the "contradictions" field.
func (_u *CharacterUpdate) AppendContradictions(v []string) *CharacterUpdate {
	_u.mutation.AppendContradictions(v)
	return _u
}

// SetCognitiveLimits sets the "cognitive_limits" field.
func (_u *CharacterUpdate) SetCognitiveLimits(v []string) *CharacterUpdate {
	_u.mutation.SetCognitiveLimits(v)
	return _u
}

// AppendCognitiveLimits appends value to the "cognitive_limits" field.
func (_u *CharacterUpdate) AppendCognitiveLimits(v []string) *CharacterUpdate {
	_u.mutation.AppendCognitiveLimits(v)
	return _u
}

// SetEvolutionCapacity sets the "evolution_capacity" field.
func (_u *CharacterUpdate) SetEvolutionCapacity(v float64) *CharacterUpdate {
	_u.mutation.ResetEvolutionCapacity()
	_u.mutation.SetEvolutionCapacity(v)
	return _u
}

// SetNillableEvolutionCapacity sets the "evolution_capacity" field if the given value is not nil.
func (_u *CharacterUpdate) SetNillableEvolutionCapacity(v *float64) *CharacterUpdate {
	if v != nil {
		_u.SetEvolutionCapacity(*v)
	}
	return _u
}

// AddEvolutionCapacity adds value to the "evolution_capacity" field.
func (_u *CharacterUpdate) AddEvolutionCapacity(v float64) *CharacterUpdate {
	_u.mutation.AddEvolutionCapacity(v)
	return _u
}

// Mutation returns the CharacterMutation object of the builder.
func (_u *CharacterUpdate) Mutation() *CharacterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CharacterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CharacterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CharacterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CharacterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CharacterUpdate) check() error {
	if _u.mutation.WorldCleared() && len(_u.mutation.WorldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Character.world"`)
	}
	return nil
}

func (_u *CharacterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(character.Table, character.Columns, sqlgraph.NewFieldSpec(character.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(character.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trajectory(); ok {
		_spec.SetField(character.FieldTrajectory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Contradictions(); ok {
		_spec.SetField(character.FieldContradictions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContradictions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, character.FieldContradictions, value)
		})
	}
	if value, ok := _u.mutation.CognitiveLimits(); ok {
		_spec.SetField(character.FieldCognitiveLimits, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCognitiveLimits(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, character.FieldCognitiveLimits, value)
		})
	}
	if value, ok := _u.mutation.EvolutionCapacity(); ok {
		_spec.SetField(character.FieldEvolutionCapacity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEvolutionCapacity(); ok {
		_spec.AddField(character.FieldEvolutionCapacity, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{character.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CharacterUpdateOne is the builder for updating a single Character entity.
type CharacterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CharacterMutation
}

// SetName sets the "name" field.
func (_u *CharacterUpdateOne) SetName(v string) *CharacterUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableName(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTrajectory sets the "trajectory" field.
func (_u *CharacterUpdateOne) SetTrajectory(v string) *CharacterUpdateOne {
	_u.mutation.SetTrajectory(v)
	return _u
}

// SetNillableTrajectory sets the "trajectory" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableTrajectory(v *string) *CharacterUpdateOne {
	if v != nil {
		_u.SetTrajectory(*v)
	}
	return _u
}

// SetContradictions sets the "contradictions" field.
func (_u *CharacterUpdateOne) SetContradictions(v []string) *CharacterUpdateOne {
	_u.mutation.SetContradictions(v)
	return _u
}

// AppendContradictions appends value to the "contradictions" field.
func (_u *CharacterUpdateOne) AppendContradictions(v []string) *CharacterUpdateOne {
	_u.mutation.AppendContradictions(v)
	return _u
}

// SetCognitiveLimits sets the "cognitive_limits" field.
func (_u *CharacterUpdateOne) SetCognitiveLimits(v []string) *CharacterUpdateOne {
	_u.mutation.SetCognitiveLimits(v)
	return _u
}

// AppendCognitiveLimits appends value to the "cognitive_limits" field.
func (_u *CharacterUpdateOne) AppendCognitiveLimits(v []string) *CharacterUpdateOne {
	_u.mutation.AppendCognitiveLimits(v)
	return _u
}

// SetEvolutionCapacity sets the "evolution_capacity" field.
func (_u *CharacterUpdateOne) SetEvolutionCapacity(v float64) *CharacterUpdateOne {
	_u.mutation.ResetEvolutionCapacity()
	_u.mutation.SetEvolutionCapacity(v)
	return _u
}

// SetNillableEvolutionCapacity sets the "evolution_capacity" field if the given value is not nil.
func (_u *CharacterUpdateOne) SetNillableEvolutionCapacity(v *float64) *CharacterUpdateOne {
	if v != nil {
		_u.SetEvolutionCapacity(*v)
	}
	return _u
}

// AddEvolutionCapacity adds value to the "evolution_capacity" field.
func (_u *CharacterUpdateOne) AddEvolutionCapacity(v float64) *CharacterUpdateOne {
	_u.mutation.AddEvolutionCapacity(v)
	return _u
}

// Mutation returns the CharacterMutation object of the builder.
func (_u *CharacterUpdateOne) Mutation() *CharacterMutation {
	return _u.mutation
}

// Where appends a list predicates to the CharacterUpdate builder.
func (_u *CharacterUpdateOne) Where(ps ...predicate.Character) *CharacterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CharacterUpdateOne) Select(field string, fields ...string) *CharacterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Character entity.
func (_u *CharacterUpdateOne) Save(ctx context.Context) (*Character, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CharacterUpdateOne) SaveX(ctx context.Context) *Character {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CharacterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CharacterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CharacterUpdateOne) check() error {
	if _u.mutation.WorldCleared() && len(_u.mutation.WorldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Character.world"`)
	}
	return nil
}

func (_u *CharacterUpdateOne) sqlSave(ctx context.Context) (_node *Character, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(character.Table, character.Columns, sqlgraph.NewFieldSpec(character.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Character.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, character.FieldID)
		for _, f := range fields {
			if !character.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != character.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(character.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trajectory(); ok {
		_spec.SetField(character.FieldTrajectory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Contradictions(); ok {
		_spec.SetField(character.FieldContradictions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContradictions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, character.FieldContradictions, value)
		})
	}
	if value, ok := _u.mutation.CognitiveLimits(); ok {
		_spec.SetField(character.FieldCognitiveLimits, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCognitiveLimits(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, character.FieldCognitiveLimits, value)
		})
	}
	if value, ok := _u.mutation.EvolutionCapacity(); ok {
		_spec.SetField(character.FieldEvolutionCapacity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEvolutionCapacity(); ok {
		_spec.AddField(character.FieldEvolutionCapacity, field.TypeFloat64, value)
	}
	_node = &Character{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{character.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
