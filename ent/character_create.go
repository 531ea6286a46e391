// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/narraforge/narraforge/ent/character"
	"github.com/narraforge/narraforge/ent/world"
)

// CharacterCreate is the builder for creating a Character entity.
type CharacterCreate struct {
	config
	mutation *CharacterMutation
	hooks    []Hook
}

// SetWorldID sets the "world_id" field.
func (_c *CharacterCreate) SetWorldID(v string) *CharacterCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CharacterCreate) SetName(v string) *CharacterCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTrajectory sets the "trajectory" field.
func (_c *CharacterCreate) SetTrajectory(v string) *CharacterCreate {
	_c.mutation.SetTrajectory(v)
	return _c
}

// SetContradictions sets the "contradictions" field.
func (_c *CharacterCreate) SetContradictions(v []string) *CharacterCreate {
	_c.mutation.SetContradictions(v)
	return _c
}

// SetCognitiveLimits sets the "cognitive_limits" field.
func (_c *CharacterCreate) SetCognitiveLimits(v []string) *CharacterCreate {
	_c.mutation.SetCognitiveLimits(v)
	return _c
}

// SetEvolutionCapacity sets the "evolution_capacity" field.
func (_c *CharacterCreate) SetEvolutionCapacity(v float64) *CharacterCreate {
	_c.mutation.SetEvolutionCapacity(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CharacterCreate) SetCreatedAt(v time.Time) *CharacterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CharacterCreate) SetNillableCreatedAt(v *time.Time) *CharacterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CharacterCreate) SetID(v string) *CharacterCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorld sets the "world" edge to the World entity.
func (_c *CharacterCreate) SetWorld(v *World) *CharacterCreate {
	return _c.SetWorldID(v.ID)
}

// Mutation returns the CharacterMutation object of the builder.
func (_c *CharacterCreate) Mutation() *CharacterMutation {
	return _c.mutation
}

// Save creates the Character in the database.
func (_c *CharacterCreate) Save(ctx context.Context) (*Character, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CharacterCreate) SaveX(ctx context.Context) *Character {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CharacterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CharacterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CharacterCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := character.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CharacterCreate) check() error {
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "Character.world_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Character.name"`)}
	}
	if _, ok := _c.mutation.Trajectory(); !ok {
		return &ValidationError{Name: "trajectory", err: errors.New(`ent: missing required field "Character.trajectory"`)}
	}
	if _, ok := _c.mutation.Contradictions(); !ok {
		return &ValidationError{Name: "contradictions", err: errors.New(`ent: missing required field "Character.contradictions"`)}
	}
	if _, ok := _c.mutation.CognitiveLimits(); !ok {
		return &ValidationError{Name: "cognitive_limits", err: errors.New(`ent: missing required field "Character.cognitive_limits"`)}
	}
	if _, ok := _c.mutation.EvolutionCapacity(); !ok {
		return &ValidationError{Name: "evolution_capacity", err: errors.New(`ent: missing required field "Character.evolution_capacity"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Character.created_at"`)}
	}
	if len(_c.mutation.WorldIDs()) == 0 {
		return &ValidationError{Name: "world", err: errors.New(`ent: missing required edge "Character.world"`)}
	}
	return nil
}

func (_c *CharacterCreate) sqlSave(ctx context.Context) (*Character, error) {
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
			return nil, fmt.Errorf("unexpected Character.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CharacterCreate) createSpec() (*Character, *sqlgraph.CreateSpec) {
	var (
		_node = &Character{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(character.Table, sqlgraph.NewFieldSpec(character.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(character.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Trajectory(); ok {
		_spec.SetField(character.FieldTrajectory, field.TypeString, value)
		_node.Trajectory = value
	}
	if value, ok := _c.mutation.Contradictions(); ok {
		_spec.SetField(character.FieldContradictions, field.TypeJSON, value)
		_node.Contradictions = value
	}
	if value, ok := _c.mutation.CognitiveLimits(); ok {
		_spec.SetField(character.FieldCognitiveLimits, field.TypeJSON, value)
		_node.CognitiveLimits = value
	}
	if value, ok := _c.mutation.EvolutionCapacity(); ok {
		_spec.SetField(character.FieldEvolutionCapacity, field.TypeFloat64, value)
		_node.EvolutionCapacity = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(character.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   character.WorldTable,
			Columns: []string{character.WorldColumn},
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

// CharacterCreateBulk is the builder for creating many Character entities in bulk.
type CharacterCreateBulk struct {
	config
	err      error
	builders []*CharacterCreate
}

// Save creates the Character entities in the database.
func (_c *CharacterCreateBulk) Save(ctx context.Context) ([]*Character, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Character, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CharacterMutation)
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
func (_c *CharacterCreateBulk) SaveX(ctx context.Context) []*Character {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CharacterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CharacterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
