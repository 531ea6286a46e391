// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/narraforge/narraforge/ent/storyevent"
	"github.com/narraforge/narraforge/ent/world"
)

// StoryEventCreate is the builder for creating a StoryEvent entity.
type StoryEventCreate struct {
	config
	mutation *StoryEventMutation
	hooks    []Hook
}

// SetWorldID sets the "world_id" field.
func (_c *StoryEventCreate) SetWorldID(v string) *StoryEventCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetParticipantIds sets the "participant_ids" field.
func (_c *StoryEventCreate) SetParticipantIds(v []string) *StoryEventCreate {
	_c.mutation.SetParticipantIds(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *StoryEventCreate) SetLocation(v string) *StoryEventCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *StoryEventCreate) SetDescription(v string) *StoryEventCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetConsequences sets the "consequences" field.
func (_c *StoryEventCreate) SetConsequences(v []string) *StoryEventCreate {
	_c.mutation.SetConsequences(v)
	return _c
}

// SetStoryTime sets the "story_time" field.
func (_c *StoryEventCreate) SetStoryTime(v int) *StoryEventCreate {
	_c.mutation.SetStoryTime(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StoryEventCreate) SetCreatedAt(v time.Time) *StoryEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StoryEventCreate) SetNillableCreatedAt(v *time.Time) *StoryEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StoryEventCreate) SetID(v string) *StoryEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorld sets the "world" edge to the World entity.
func (_c *StoryEventCreate) SetWorld(v *World) *StoryEventCreate {
	return _c.SetWorldID(v.ID)
}

// Mutation returns the StoryEventMutation object of the builder.
func (_c *StoryEventCreate) Mutation() *StoryEventMutation {
	return _c.mutation
}

// Save creates the StoryEvent in the database.
func (_c *StoryEventCreate) Save(ctx context.Context) (*StoryEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StoryEventCreate) SaveX(ctx context.Context) *StoryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StoryEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := storyevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StoryEventCreate) check() error {
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "StoryEvent.world_id"`)}
	}
	if _, ok := _c.mutation.ParticipantIds(); !ok {
		return &ValidationError{Name: "participant_ids", err: errors.New(`ent: missing required field "StoryEvent.participant_ids"`)}
	}
	if _, ok := _c.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required field "StoryEvent.location"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "StoryEvent.description"`)}
	}
	if _, ok := _c.mutation.Consequences(); !ok {
		return &ValidationError{Name: "consequences", err: errors.New(`ent: missing required field "StoryEvent.consequences"`)}
	}
	if _, ok := _c.mutation.StoryTime(); !ok {
		return &ValidationError{Name: "story_time", err: errors.New(`ent: missing required field "StoryEvent.story_time"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StoryEvent.created_at"`)}
	}
	if len(_c.mutation.WorldIDs()) == 0 {
		return &ValidationError{Name: "world", err: errors.New(`ent: missing required edge "StoryEvent.world"`)}
	}
	return nil
}

func (_c *StoryEventCreate) sqlSave(ctx context.Context) (*StoryEvent, error) {
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
			return nil, fmt.Errorf("unexpected StoryEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StoryEventCreate) createSpec() (*StoryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StoryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(storyevent.Table, sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParticipantIds(); ok {
		_spec.SetField(storyevent.FieldParticipantIds, field.TypeJSON, value)
		_node.ParticipantIds = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(storyevent.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(storyevent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Consequences(); ok {
		_spec.SetField(storyevent.FieldConsequences, field.TypeJSON, value)
		_node.Consequences = value
	}
	if value, ok := _c.mutation.StoryTime(); ok {
		_spec.SetField(storyevent.FieldStoryTime, field.TypeInt, value)
		_node.StoryTime = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(storyevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   storyevent.WorldTable,
			Columns: []string{storyevent.WorldColumn},
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

// StoryEventCreateBulk is the builder for creating many StoryEvent entities in bulk.
type StoryEventCreateBulk struct {
	config
	err      error
	builders []*StoryEventCreate
}

// Save creates the StoryEvent entities in the database.
func (_c *StoryEventCreateBulk) Save(ctx context.Context) ([]*StoryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StoryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StoryEventMutation)
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
func (_c *StoryEventCreateBulk) SaveX(ctx context.Context) []*StoryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
