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
	"github.com/narraforge/narraforge/ent/evolutionentry"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/ent/motif"
	"github.com/narraforge/narraforge/ent/relationship"
	"github.com/narraforge/narraforge/ent/storyevent"
	"github.com/narraforge/narraforge/ent/world"
)

// WorldCreate is the builder for creating a World entity.
type WorldCreate struct {
	config
	mutation *WorldMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *WorldCreate) SetJobID(v string) *WorldCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *WorldCreate) SetName(v string) *WorldCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRules sets the "rules" field.
func (_c *WorldCreate) SetRules(v []string) *WorldCreate {
	_c.mutation.SetRules(v)
	return _c
}

// SetBoundaries sets the "boundaries" field.
func (_c *WorldCreate) SetBoundaries(v []string) *WorldCreate {
	_c.mutation.SetBoundaries(v)
	return _c
}

// SetAnomalies sets the "anomalies" field.
func (_c *WorldCreate) SetAnomalies(v []string) *WorldCreate {
	_c.mutation.SetAnomalies(v)
	return _c
}

// SetCoreConflict sets the "core_conflict" field.
func (_c *WorldCreate) SetCoreConflict(v string) *WorldCreate {
	_c.mutation.SetCoreConflict(v)
	return _c
}

// SetTheme sets the "theme" field.
func (_c *WorldCreate) SetTheme(v string) *WorldCreate {
	_c.mutation.SetTheme(v)
	return _c
}

// SetScale sets the "scale" field.
func (_c *WorldCreate) SetScale(v world.Scale) *WorldCreate {
	_c.mutation.SetScale(v)
	return _c
}

// SetNillableScale sets the "scale" field if the given value is not nil.
func (_c *WorldCreate) SetNillableScale(v *world.Scale) *WorldCreate {
	if v != nil {
		_c.SetScale(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorldCreate) SetCreatedAt(v time.Time) *WorldCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorldCreate) SetNillableCreatedAt(v *time.Time) *WorldCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorldCreate) SetID(v string) *WorldCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *WorldCreate) SetJob(v *Job) *WorldCreate {
	return _c.SetJobID(v.ID)
}

// AddCharacterIDs adds the "characters" edge to the Character entity by IDs.
func (_c *WorldCreate) AddCharacterIDs(ids ...string) *WorldCreate {
	_c.mutation.AddCharacterIDs(ids...)
	return _c
}

// AddCharacters adds the "characters" edges to the Character entity.
func (_c *WorldCreate) AddCharacters(v ...*Character) *WorldCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCharacterIDs(ids...)
}

// AddStoryEventIDs adds the "story_events" edge to the StoryEvent entity by IDs.
func (_c *WorldCreate) AddStoryEventIDs(ids ...string) *WorldCreate {
	_c.mutation.AddStoryEventIDs(ids...)
	return _c
}

// AddStoryEvents adds the "story_events" edges to the StoryEvent entity.
func (_c *WorldCreate) AddStoryEvents(v ...*StoryEvent) *WorldCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStoryEventIDs(ids...)
}

// AddRelationshipIDs adds the "relationships" edge to the Relationship entity by IDs.
func (_c *WorldCreate) AddRelationshipIDs(ids ...string) *WorldCreate {
	_c.mutation.AddRelationshipIDs(ids...)
	return _c
}

// AddRelationships adds the "relationships" edges to the Relationship entity.
func (_c *WorldCreate) AddRelationships(v ...*Relationship) *WorldCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRelationshipIDs(ids...)
}

// AddMotifIDs adds the "motifs" edge to the Motif entity by IDs.
func (_c *WorldCreate) AddMotifIDs(ids ...string) *WorldCreate {
	_c.mutation.AddMotifIDs(ids...)
	return _c
}

// AddMotifs adds the "motifs" edges to the Motif entity.
func (_c *WorldCreate) AddMotifs(v ...*Motif) *WorldCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMotifIDs(ids...)
}

// AddEvolutionEntryIDs adds the "evolution_entries" edge to the EvolutionEntry entity by IDs.
func (_c *WorldCreate) AddEvolutionEntryIDs(ids ...string) *WorldCreate {
	_c.mutation.AddEvolutionEntryIDs(ids...)
	return _c
}

// AddEvolutionEntries adds the "evolution_entries" edges to the EvolutionEntry entity.
func (_c *WorldCreate) AddEvolutionEntries(v ...*EvolutionEntry) *WorldCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvolutionEntryIDs(ids...)
}

// Mutation returns the WorldMutation object of the builder.
func (_c *WorldCreate) Mutation() *WorldMutation {
	return _c.mutation
}

// Save creates the World in the database.
func (_c *WorldCreate) Save(ctx context.Context) (*World, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorldCreate) SaveX(ctx context.Context) *World {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorldCreate) defaults() {
	if _, ok := _c.mutation.Scale(); !ok {
		v := world.DefaultScale
		_c.mutation.SetScale(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := world.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorldCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "World.job_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "World.name"`)}
	}
	if _, ok := _c.mutation.Rules(); !ok {
		return &ValidationError{Name: "rules", err: errors.New(`ent: missing required field "World.rules"`)}
	}
	if _, ok := _c.mutation.Boundaries(); !ok {
		return &ValidationError{Name: "boundaries", err: errors.New(`ent: missing required field "World.boundaries"`)}
	}
	if _, ok := _c.mutation.Anomalies(); !ok {
		return &ValidationError{Name: "anomalies", err: errors.New(`ent: missing required field "World.anomalies"`)}
	}
	if _, ok := _c.mutation.CoreConflict(); !ok {
		return &ValidationError{Name: "core_conflict", err: errors.New(`ent: missing required field "World.core_conflict"`)}
	}
	if _, ok := _c.mutation.Theme(); !ok {
		return &ValidationError{Name: "theme", err: errors.New(`ent: missing required field "World.theme"`)}
	}
	if _, ok := _c.mutation.Scale(); !ok {
		return &ValidationError{Name: "scale", err: errors.New(`ent: missing required field "World.scale"`)}
	}
	if v, ok := _c.mutation.Scale(); ok {
		if err := world.ScaleValidator(v); err != nil {
			return &ValidationError{Name: "scale", err: fmt.Errorf(`ent: validator failed for field "World.scale": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "World.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "World.job"`)}
	}
	return nil
}

func (_c *WorldCreate) sqlSave(ctx context.Context) (*World, error) {
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
			return nil, fmt.Errorf("unexpected World.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorldCreate) createSpec() (*World, *sqlgraph.CreateSpec) {
	var (
		_node = &World{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(world.Table, sqlgraph.NewFieldSpec(world.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(world.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Rules(); ok {
		_spec.SetField(world.FieldRules, field.TypeJSON, value)
		_node.Rules = value
	}
	if value, ok := _c.mutation.Boundaries(); ok {
		_spec.SetField(world.FieldBoundaries, field.TypeJSON, value)
		_node.Boundaries = value
	}
	if value, ok := _c.mutation.Anomalies(); ok {
		_spec.SetField(world.FieldAnomalies, field.TypeJSON, value)
		_node.Anomalies = value
	}
	if value, ok := _c.mutation.CoreConflict(); ok {
		_spec.SetField(world.FieldCoreConflict, field.TypeString, value)
		_node.CoreConflict = value
	}
	if value, ok := _c.mutation.Theme(); ok {
		_spec.SetField(world.FieldTheme, field.TypeString, value)
		_node.Theme = value
	}
	if value, ok := _c.mutation.Scale(); ok {
		_spec.SetField(world.FieldScale, field.TypeEnum, value)
		_node.Scale = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(world.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   world.JobTable,
			Columns: []string{world.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CharactersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   world.CharactersTable,
			Columns: []string{world.CharactersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(character.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StoryEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   world.StoryEventsTable,
			Columns: []string{world.StoryEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RelationshipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   world.RelationshipsTable,
			Columns: []string{world.RelationshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(relationship.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MotifsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   world.MotifsTable,
			Columns: []string{world.MotifsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(motif.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvolutionEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   world.EvolutionEntriesTable,
			Columns: []string{world.EvolutionEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evolutionentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorldCreateBulk is the builder for creating many World entities in bulk.
type WorldCreateBulk struct {
	config
	err      error
	builders []*WorldCreate
}

// Save creates the World entities in the database.
func (_c *WorldCreateBulk) Save(ctx context.Context) ([]*World, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*World, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorldMutation)
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
func (_c *WorldCreateBulk) SaveX(ctx context.Context) []*World {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
