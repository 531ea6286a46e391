// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/narraforge/narraforge/ent/evolutionentry"
	"github.com/narraforge/narraforge/ent/predicate"
)

// EvolutionEntryDelete is the builder for deleting a EvolutionEntry entity.
type EvolutionEntryDelete struct {
	config
	hooks    []Hook
	mutation *EvolutionEntryMutation
}

// Where appends a list predicates to the EvolutionEntryDelete builder.
func (_d *EvolutionEntryDelete) Where(ps ...predicate.EvolutionEntry) *EvolutionEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EvolutionEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EvolutionEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EvolutionEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(evolutionentry.Table, sqlgraph.NewFieldSpec(evolutionentry.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EvolutionEntryDeleteOne is the builder for deleting a single EvolutionEntry entity.
type EvolutionEntryDeleteOne struct {
	_d *EvolutionEntryDelete
}

// Where appends a list predicates to the EvolutionEntryDelete builder.
func (_d *EvolutionEntryDeleteOne) Where(ps ...predicate.EvolutionEntry) *EvolutionEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EvolutionEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{evolutionentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EvolutionEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
