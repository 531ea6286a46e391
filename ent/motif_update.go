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
	"github.com/narraforge/narraforge/ent/motif"
	"github.com/narraforge/narraforge/ent/predicate"
)

// MotifUpdate is the builder for updating Motif entities.
type MotifUpdate struct {
	config
	hooks    []Hook
	mutation *MotifMutation
}

// Where appends a list predicates to the MotifUpdate builder.
func (_u *MotifUpdate) Where(ps ...predicate.Motif) *MotifUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *MotifUpdate) SetName(v string) *MotifUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MotifUpdate) SetNillableName(v *string) *MotifUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MotifUpdate) SetDescription(v string) *MotifUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MotifUpdate) SetNillableDescription(v *string) *MotifUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetOccurrences sets the "occurrences" field.
func (_u *MotifUpdate) SetOccurrences(v []string) *MotifUpdate {
	_u.mutation.SetOccurrences(v)
	return _u
}

// AppendOccurrences appends value to the "occurrences" field.
func (_u *MotifUpdate) AppendOccurrences(v []string) *MotifUpdate {
	_u.mutation.AppendOccurrences(v)
	return _u
}

// Mutation returns the MotifMutation object of the builder.
func (_u *MotifUpdate) Mutation() *MotifMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MotifUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MotifUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MotifUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MotifUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MotifUpdate) check() error {
	if _u.mutation.WorldCleared() && len(_u.mutation.WorldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Motif.world"`)
	}
	return nil
}

func (_u *MotifUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(motif.Table, motif.Columns, sqlgraph.NewFieldSpec(motif.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(motif.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(motif.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Occurrences(); ok {
		_spec.SetField(motif.FieldOccurrences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOccurrences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, motif.FieldOccurrences, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{motif.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MotifUpdateOne is the builder for updating a single Motif entity.
type MotifUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MotifMutation
}

// SetName sets the "name" field.
func (_u *MotifUpdateOne) SetName(v string) *MotifUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MotifUpdateOne) SetNillableName(v *string) *MotifUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MotifUpdateOne) SetDescription(v string) *MotifUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MotifUpdateOne) SetNillableDescription(v *string) *MotifUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetOccurrences sets the "occurrences" field.
func (_u *MotifUpdateOne) SetOccurrences(v []string) *MotifUpdateOne {
	_u.mutation.SetOccurrences(v)
	return _u
}

// AppendOccurrences appends value to the "occurrences" field.
func (_u *MotifUpdateOne) AppendOccurrences(v []string) *MotifUpdateOne {
	_u.mutation.AppendOccurrences(v)
	return _u
}

// Mutation returns the MotifMutation object of the builder.
func (_u *MotifUpdateOne) Mutation() *MotifMutation {
	return _u.mutation
}

// Where appends a list predicates to the MotifUpdate builder.
func (_u *MotifUpdateOne) Where(ps ...predicate.Motif) *MotifUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MotifUpdateOne) Select(field string, fields ...string) *MotifUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Motif entity.
func (_u *MotifUpdateOne) Save(ctx context.Context) (*Motif, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MotifUpdateOne) SaveX(ctx context.Context) *Motif {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MotifUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MotifUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MotifUpdateOne) check() error {
	if _u.mutation.WorldCleared() && len(_u.mutation.WorldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Motif.world"`)
	}
	return nil
}

func (_u *MotifUpdateOne) sqlSave(ctx context.Context) (_node *Motif, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(motif.Table, motif.Columns, sqlgraph.NewFieldSpec(motif.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Motif.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, motif.FieldID)
		for _, f := range fields {
			if !motif.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != motif.FieldID {
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
		_spec.SetField(motif.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(motif.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Occurrences(); ok {
		_spec.SetField(motif.FieldOccurrences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOccurrences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, motif.FieldOccurrences, value)
		})
	}
	_node = &Motif{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{motif.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
