// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/narraforge/narraforge/ent/evolutionentry"
	"github.com/narraforge/narraforge/ent/world"
)

// EvolutionEntryCreate is the builder for creating a EvolutionEntry entity.
type EvolutionEntryCreate struct {
	config
	mutation *EvolutionEntryMutation
	hooks    []Hook
}

// SetWorldID sets the "world_id" field.
func (_c *EvolutionEntryCreate) SetWorldID(v string) *EvolutionEntryCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *EvolutionEntryCreate) SetEntityID(v string) *EvolutionEntryCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *EvolutionEntryCreate) SetEntityType(v evolutionentry.EntityType) *EvolutionEntryCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetChangeType sets the "change_type" field.
func (_c *EvolutionEntryCreate) SetChangeType(v string) *EvolutionEntryCreate {
	_c.mutation.SetChangeType(v)
	return _c
}

// SetBeforeState sets the "before_state" field.
func (_c *EvolutionEntryCreate) SetBeforeState(v map[string]interface{}) *EvolutionEntryCreate {
	_c.mutation.SetBeforeState(v)
	return _c
}

// SetAfterState sets the "after_state" field.
func (_c *EvolutionEntryCreate) SetAfterState(v map[string]interface{}) *EvolutionEntryCreate {
	_c.mutation.SetAfterState(v)
	return _c
}

// SetTriggerEventID sets the "trigger_event_id" field.
func (_c *EvolutionEntryCreate) SetTriggerEventID(v string) *EvolutionEntryCreate {
	_c.mutation.SetTriggerEventID(v)
	return _c
}

// SetSignificance sets the "significance" field.
func (_c *EvolutionEntryCreate) SetSignificance(v float64) *EvolutionEntryCreate {
	_c.mutation.SetSignificance(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvolutionEntryCreate) SetCreatedAt(v time.Time) *EvolutionEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvolutionEntryCreate) SetNillableCreatedAt(v *time.Time) *EvolutionEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvolutionEntryCreate) SetID(v string) *EvolutionEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorld sets the "world" edge to the World entity.
func (_c *EvolutionEntryCreate) SetWorld(v *World) *EvolutionEntryCreate {
	return _c.SetWorldID(v.ID)
}

// Mutation returns the EvolutionEntryMutation object of the builder.
func (_c *EvolutionEntryCreate) Mutation() *EvolutionEntryMutation {
	return _c.mutation
}

// Save creates the EvolutionEntry in the database.
func (_c *EvolutionEntryCreate) Save(ctx context.Context) (*EvolutionEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvolutionEntryCreate) SaveX(ctx context.Context) *EvolutionEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvolutionEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvolutionEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvolutionEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evolutionentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvolutionEntryCreate) check() error {
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "EvolutionEntry.world_id"`)}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "EvolutionEntry.entity_id"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "EvolutionEntry.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := evolutionentry.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "EvolutionEntry.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChangeType(); !ok {
		return &ValidationError{Name: "change_type", err: errors.New(`ent: missing required field "EvolutionEntry.change_type"`)}
	}
	if _, ok := _c.mutation.BeforeState(); !ok {
		return &ValidationError{Name: "before_state", err: errors.New(`ent: missing required field "EvolutionEntry.before_state"`)}
	}
	if _, ok := _c.mutation.AfterState(); !ok {
		return &ValidationError{Name: "after_state", err: errors.New(`ent: missing required field "EvolutionEntry.after_state"`)}
	}
	if _, ok := _c.mutation.TriggerEventID(); !ok {
		return &ValidationError{Name: "trigger_event_id", err: errors.New(`ent: missing required field "EvolutionEntry.trigger_event_id"`)}
	}
	if _, ok := _c.mutation.Significance(); !ok {
		return &ValidationError{Name: "significance", err: errors.New(`ent: missing required field "EvolutionEntry.significance"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvolutionEntry.created_at"`)}
	}
	if len(_c.mutation.WorldIDs()) == 0 {
		return &ValidationError{Name: "world", err: errors.New(`ent: missing required edge "EvolutionEntry.world"`)}
	}
	return nil
}

func (_c *EvolutionEntryCreate) sqlSave(ctx context.Context) (*EvolutionEntry, error) {
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
			return nil, fmt.Errorf("unexpected EvolutionEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvolutionEntryCreate) createSpec() (*EvolutionEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &EvolutionEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evolutionentry.Table, sqlgraph.NewFieldSpec(evolutionentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(evolutionentry.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(evolutionentry.FieldEntityType, field.TypeEnum, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.ChangeType(); ok {
		_spec.SetField(evolutionentry.FieldChangeType, field.TypeString, value)
		_node.ChangeType = value
	}
	if value, ok := _c.mutation.BeforeState(); ok {
		_spec.SetField(evolutionentry.FieldBeforeState, field.TypeJSON, value)
		_node.BeforeState = value
	}
	if value, ok := _c.mutation.AfterState(); ok {
		_spec.SetField(evolutionentry.FieldAfterState, field.TypeJSON, value)
		_node.AfterState = value
	}
	if value, ok := _c.mutation.TriggerEventID(); ok {
		_spec.SetField(evolutionentry.FieldTriggerEventID, field.TypeString, value)
		_node.TriggerEventID = value
	}
	if value, ok := _c.mutation.Significance(); ok {
		_spec.SetField(evolutionentry.FieldSignificance, field.TypeFloat64, value)
		_node.Significance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evolutionentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evolutionentry.WorldTable,
			Columns: []string{evolutionentry.WorldColumn},
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

// EvolutionEntryCreateBulk is the builder for creating many EvolutionEntry entities in bulk.
type EvolutionEntryCreateBulk struct {
	config
	err      error
	builders []*EvolutionEntryCreate
}

// Save creates the EvolutionEntry entities in the database.
func (_c *EvolutionEntryCreateBulk) Save(ctx context.Context) ([]*EvolutionEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvolutionEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvolutionEntryMutation)
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
func (_c *EvolutionEntryCreateBulk) SaveX(ctx context.Context) []*EvolutionEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvolutionEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvolutionEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
