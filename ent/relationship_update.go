// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/narraforge/narraforge/ent/predicate"
	"github.com/narraforge/narraforge/ent/relationship"
)

// RelationshipUpdate is the builder for updating Relationship entities.
type RelationshipUpdate struct {
	config
	hooks    []Hook
	mutation *RelationshipMutation
}

// Where appends a list predicates to the RelationshipUpdate builder.
func (_u *RelationshipUpdate) Where(ps ...predicate.Relationship) *RelationshipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFromCharacterID sets the "from_character_id" field.
func (_u *RelationshipUpdate) SetFromCharacterID(v string) *RelationshipUpdate {
	_u.mutation.SetFromCharacterID(v)
	return _u
}

// SetNillableFromCharacterID sets the "from_character_id" field if the given value is not nil.
func (_u *RelationshipUpdate) SetNillableFromCharacterID(v *string) *RelationshipUpdate {
	if v != nil {
		_u.SetFromCharacterID(*v)
	}
	return _u
}

// SetToCharacterID sets the "to_character_id" field.
func (_u *RelationshipUpdate) SetToCharacterID(v string) *RelationshipUpdate {
	_u.mutation.SetToCharacterID(v)
	return _u
}

// SetNillableToCharacterID sets the "to_character_id" field if the given value is not nil.
func (_u *RelationshipUpdate) SetNillableToCharacterID(v *string) *RelationshipUpdate {
	if v != nil {
		_u.SetToCharacterID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *RelationshipUpdate) SetKind(v string) *RelationshipUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RelationshipUpdate) SetNillableKind(v *string) *RelationshipUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *RelationshipUpdate) SetWeight(v float64) *RelationshipUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *RelationshipUpdate) SetNillableWeight(v *float64) *RelationshipUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *RelationshipUpdate) AddWeight(v float64) *RelationshipUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// Mutation returns the RelationshipMutation object of the builder.
func (_u *RelationshipUpdate) Mutation() *RelationshipMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RelationshipUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RelationshipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RelationshipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RelationshipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RelationshipUpdate) check() error {
	if _u.mutation.WorldCleared() && len(_u.mutation.WorldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Relationship.world"`)
	}
	return nil
}

func (_u *RelationshipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(relationship.Table, relationship.Columns, sqlgraph.NewFieldSpec(relationship.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromCharacterID(); ok {
		_spec.SetField(relationship.FieldFromCharacterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToCharacterID(); ok {
		_spec.SetField(relationship.FieldToCharacterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(relationship.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(relationship.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(relationship.FieldWeight, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{relationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RelationshipUpdateOne is the builder for updating a single Relationship entity.
type RelationshipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RelationshipMutation
}

// SetFromCharacterID sets the "from_character_id" field.
func (_u *RelationshipUpdateOne) SetFromCharacterID(v string) *RelationshipUpdateOne {
	_u.mutation.SetFromCharacterID(v)
	return _u
}

// SetNillableFromCharacterID sets the "from_character_id" field if the given value is not nil.
func (_u *RelationshipUpdateOne) SetNillableFromCharacterID(v *string) *RelationshipUpdateOne {
	if v != nil {
		_u.SetFromCharacterID(*v)
	}
	return _u
}

// SetToCharacterID sets the "to_character_id" field.
func (_u *RelationshipUpdateOne) SetToCharacterID(v string) *RelationshipUpdateOne {
	_u.mutation.SetToCharacterID(v)
	return _u
}

// SetNillableToCharacterID sets the "to_character_id" field if the given value is not nil.
func (_u *RelationshipUpdateOne) SetNillableToCharacterID(v *string) *RelationshipUpdateOne {
	if v != nil {
		_u.SetToCharacterID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *RelationshipUpdateOne) SetKind(v string) *RelationshipUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RelationshipUpdateOne) SetNillableKind(v *string) *RelationshipUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *RelationshipUpdateOne) SetWeight(v float64) *RelationshipUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *RelationshipUpdateOne) SetNillableWeight(v *float64) *RelationshipUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *RelationshipUpdateOne) AddWeight(v float64) *RelationshipUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// Mutation returns the RelationshipMutation object of the builder.
func (_u *RelationshipUpdateOne) Mutation() *RelationshipMutation {
	return _u.mutation
}

// Where appends a list predicates to the RelationshipUpdate builder.
func (_u *RelationshipUpdateOne) Where(ps ...predicate.Relationship) *RelationshipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RelationshipUpdateOne) Select(field string, fields ...string) *RelationshipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Relationship entity.
func (_u *RelationshipUpdateOne) Save(ctx context.Context) (*Relationship, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RelationshipUpdateOne) SaveX(ctx context.Context) *Relationship {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RelationshipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RelationshipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RelationshipUpdateOne) check() error {
	if _u.mutation.WorldCleared() && len(_u.mutation.WorldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Relationship.world"`)
	}
	return nil
}

func (_u *RelationshipUpdateOne) sqlSave(ctx context.Context) (_node *Relationship, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(relationship.Table, relationship.Columns, sqlgraph.NewFieldSpec(relationship.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Relationship.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, relationship.FieldID)
		for _, f := range fields {
			if !relationship.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != relationship.FieldID {
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
	if value, ok := _u.mutation.FromCharacterID(); ok {
		_spec.SetField(relationship.FieldFromCharacterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToCharacterID(); ok {
		_spec.SetField(relationship.FieldToCharacterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(relationship.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(relationship.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(relationship.FieldWeight, field.TypeFloat64, value)
	}
	_node = &Relationship{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{relationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
