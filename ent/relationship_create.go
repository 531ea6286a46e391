// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/narraforge/narraforge/ent/relationship"
	"github.com/narraforge/narraforge/ent/world"
)

// RelationshipCreate is the builder for creating a Relationship entity.
type RelationshipCreate struct {
	config
	mutation *RelationshipMutation
	hooks    []Hook
}

// SetWorldID sets the "world_id" field.
func (_c *RelationshipCreate) SetWorldID(v string) *RelationshipCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetFromCharacterID sets the "from_character_id" field.
func (_c *RelationshipCreate) SetFromCharacterID(v string) *RelationshipCreate {
	_c.mutation.SetFromCharacterID(v)
	return _c
}

// SetToCharacterID sets the "to_character_id" field.
func (_c *RelationshipCreate) SetToCharacterID(v string) *RelationshipCreate {
	_c.mutation.SetToCharacterID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *RelationshipCreate) SetKind(v string) *RelationshipCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *RelationshipCreate) SetWeight(v float64) *RelationshipCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RelationshipCreate) SetCreatedAt(v time.Time) *RelationshipCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RelationshipCreate) SetNillableCreatedAt(v *time.Time) *RelationshipCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RelationshipCreate) SetID(v string) *RelationshipCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorld sets the "world" edge to the World entity.
func (_c *RelationshipCreate) SetWorld(v *World) *RelationshipCreate {
	return _c.SetWorldID(v.ID)
}

// Mutation returns the RelationshipMutation object of the builder.
func (_c *RelationshipCreate) Mutation() *RelationshipMutation {
	return _c.mutation
}

// Save creates the Relationship in the database.
func (_c *RelationshipCreate) Save(ctx context.Context) (*Relationship, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RelationshipCreate) SaveX(ctx context.Context) *Relationship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RelationshipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RelationshipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RelationshipCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := relationship.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RelationshipCreate) check() error {
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "Relationship.world_id"`)}
	}
	if _, ok := _c.mutation.FromCharacterID(); !ok {
		return &ValidationError{Name: "from_character_id", err: errors.New(`ent: missing required field "Relationship.from_character_id"`)}
	}
	if _, ok := _c.mutation.ToCharacterID(); !ok {
		return &ValidationError{Name: "to_character_id", err: errors.New(`ent: missing required field "Relationship.to_character_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Relationship.kind"`)}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "Relationship.weight"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Relationship.created_at"`)}
	}
	if len(_c.mutation.WorldIDs()) == 0 {
		return &ValidationError{Name: "world", err: errors.New(`ent: missing required edge "Relationship.world"`)}
	}
	return nil
}

func (_c *RelationshipCreate) sqlSave(ctx context.Context) (*Relationship, error) {
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
			return nil, fmt.Errorf("unexpected Relationship.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RelationshipCreate) createSpec() (*Relationship, *sqlgraph.CreateSpec) {
	var (
		_node = &Relationship{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(relationship.Table, sqlgraph.NewFieldSpec(relationship.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FromCharacterID(); ok {
		_spec.SetField(relationship.FieldFromCharacterID, field.TypeString, value)
		_node.FromCharacterID = value
	}
	if value, ok := _c.mutation.ToCharacterID(); ok {
		_spec.SetField(relationship.FieldToCharacterID, field.TypeString, value)
		_node.ToCharacterID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(relationship.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(relationship.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(relationship.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   relationship.WorldTable,
			Columns: []string{relationship.WorldColumn},
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

// RelationshipCreateBulk is the builder for creating many Relationship entities in bulk.
type RelationshipCreateBulk struct {
	config
	err      error
	builders []*RelationshipCreate
}

// Save creates the Relationship entities in the database.
func (_c *RelationshipCreateBulk) Save(ctx context.Context) ([]*Relationship, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Relationship, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RelationshipMutation)
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
func (_c *RelationshipCreateBulk) SaveX(ctx context.Context) []*Relationship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RelationshipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RelationshipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
