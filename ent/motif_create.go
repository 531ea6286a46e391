// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/narraforge/narraforge/ent/motif"
	"github.com/narraforge/narraforge/ent/world"
)

// MotifCreate is the builder for creating a Motif entity.
type MotifCreate struct {
	config
	mutation *MotifMutation
	hooks    []Hook
}

// SetWorldID sets the "world_id" field.
func (_c *MotifCreate) SetWorldID(v string) *MotifCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MotifCreate) SetName(v string) *MotifCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MotifCreate) SetDescription(v string) *MotifCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetOccurrences sets the "occurrences" field.
func (_c *MotifCreate) SetOccurrences(v []string) *MotifCreate {
	_c.mutation.SetOccurrences(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MotifCreate) SetCreatedAt(v time.Time) *MotifCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MotifCreate) SetNillableCreatedAt(v *time.Time) *MotifCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MotifCreate) SetID(v string) *MotifCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorld sets the "world" edge to the World entity.
func (_c *MotifCreate) SetWorld(v *World) *MotifCreate {
	return _c.SetWorldID(v.ID)
}

// Mutation returns the MotifMutation object of the builder.
func (_c *MotifCreate) Mutation() *MotifMutation {
	return _c.mutation
}

// Save creates the Motif in the database.
func (_c *MotifCreate) Save(ctx context.Context) (*Motif, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MotifCreate) SaveX(ctx context.Context) *Motif {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MotifCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MotifCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MotifCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := motif.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MotifCreate) check() error {
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "Motif.world_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Motif.name"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Motif.description"`)}
	}
	if _, ok := _c.mutation.Occurrences(); !ok {
		return &ValidationError{Name: "occurrences", err: errors.New(`ent: missing required field "Motif.occurrences"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Motif.created_at"`)}
	}
	if len(_c.mutation.WorldIDs()) == 0 {
		return &ValidationError{Name: "world", err: errors.New(`ent: missing required edge "Motif.world"`)}
	}
	return nil
}

func (_c *MotifCreate) sqlSave(ctx context.Context) (*Motif, error) {
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
			return nil, fmt.Errorf("unexpected Motif.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MotifCreate) createSpec() (*Motif, *sqlgraph.CreateSpec) {
	var (
		_node = &Motif{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(motif.Table, sqlgraph.NewFieldSpec(motif.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(motif.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(motif.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Occurrences(); ok {
		_spec.SetField(motif.FieldOccurrences, field.TypeJSON, value)
		_node.Occurrences = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(motif.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   motif.WorldTable,
			Columns: []string{motif.WorldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(world.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorldID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MotifCreateBulk is the builder for creating many Motif entities in bulk.
type MotifCreateBulk struct {
	config
	err      error
	builders []*MotifCreate
}

// Save creates the Motif entities in the database.
func (_c *MotifCreateBulk) Save(ctx context.Context) ([]*Motif, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Motif, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MotifMutation)
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
func (_c *MotifCreateBulk) SaveX(ctx context.Context) []*Motif {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MotifCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MotifCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
