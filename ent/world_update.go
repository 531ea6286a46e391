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
	"github.com/narraforge/narraforge/ent/evolutionentry"
	"github.com/narraforge/narraforge/ent/motif"
	"github.com/narraforge/narraforge/ent/predicate"
	"github.com/narraforge/narraforge/ent/relationship"
	"github.com/narraforge/narraforge/ent/storyevent"
	"github.com/narraforge/narraforge/ent/world"
)

// WorldUpdate is the builder for updating World entities.
type WorldUpdate struct {
	config
	hooks    []Hook
	mutation *WorldMutation
}

// Where appends a list predicates to the WorldUpdate builder.
func (_u *WorldUpdate) Where(ps ...predicate.World) *WorldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WorldUpdate) SetName(v string) *WorldUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorldUpdate) SetNillableName(v *string) *WorldUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRules sets the "rules" field.
func (_u *WorldUpdate) SetRules(v []string) *WorldUpdate {
	_u.mutation.SetRules(v)
	return _u
}

// AppendRules appends value to the "rules" field.
func (_u *WorldUpdate) AppendRules(v []string) *WorldUpdate {
	_u.mutation.AppendRules(v)
	return _u
}

// SetBoundaries sets the "boundaries" field.
func (_u *WorldUpdate) SetBoundaries(v []string) *WorldUpdate {
	_u.mutation.SetBoundaries(v)
	return _u
}

// AppendBoundaries appends value to the "boundaries" field.
func (_u *WorldUpdate) AppendBoundaries(v []string) *WorldUpdate {
	_u.mutation.AppendBoundaries(v)
	return _u
}

// SetAnomalies sets the "anomalies" field.
func (_u *WorldUpdate) SetAnomalies(v []string) *WorldUpdate {
	_u.mutation.SetAnomalies(v)
	return _u
}

// AppendAnomalies appends value to the "anomalies" field.
func (_u *WorldUpdate) AppendAnomalies(v []string) *WorldUpdate {
	_u.mutation.AppendAnomalies(v)
	return _u
}

// SetCoreConflict sets the "core_conflict" field.
func (_u *WorldUpdate) SetCoreConflict(v string) *WorldUpdate {
	_u.mutation.SetCoreConflict(v)
	return _u
}

// SetNillableCoreConflict sets the "core_conflict" field if the given value is not nil.
func (_u *WorldUpdate) SetNillableCoreConflict(v *string) *WorldUpdate {
	if v != nil {
		_u.SetCoreConflict(*v)
	}
	return _u
}

// SetTheme sets the "theme" field.
func (_u *WorldUpdate) SetTheme(v string) *WorldUpdate {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *WorldUpdate) SetNillableTheme(v *string) *WorldUpdate {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetScale sets the "scale" field.
func (_u *WorldUpdate) SetScale(v world.Scale) *WorldUpdate {
	_u.mutation.SetScale(v)
	return _u
}

// SetNillableScale sets the "scale" field if the given value is not nil.
func (_u *WorldUpdate) SetNillableScale(v *world.Scale) *WorldUpdate {
	if v != nil {
		_u.SetScale(*v)
	}
	return _u
}

// AddCharacterIDs adds the "characters" edge to the Character entity by IDs.
func (_u *WorldUpdate) AddCharacterIDs(ids ...string) *WorldUpdate {
	_u.mutation.AddCharacterIDs(ids...)
	return _u
}

// AddCharacters adds the "characters" edges to the Character entity.
func (_u *WorldUpdate) AddCharacters(v ...*Character) *WorldUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCharacterIDs(ids...)
}

// AddStoryEventIDs adds the "story_events" edge to the StoryEvent entity by IDs.
func (_u *WorldUpdate) AddStoryEventIDs(ids ...string) *WorldUpdate {
	_u.mutation.AddStoryEventIDs(ids...)
	return _u
}

// AddStoryEvents adds the "story_events" edges to the StoryEvent entity.
func (_u *WorldUpdate) AddStoryEvents(v ...*StoryEvent) *WorldUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStoryEventIDs(ids...)
}

// AddRelationshipIDs adds the "relationships" edge to the Relationship entity by IDs.
func (_u *WorldUpdate) AddRelationshipIDs(ids ...string) *WorldUpdate {
	_u.mutation.AddRelationshipIDs(ids...)
	return _u
}

// AddRelationships adds the "relationships" edges to the Relationship entity.
func (_u *WorldUpdate) AddRelationships(v ...*Relationship) *WorldUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelationshipIDs(ids...)
}

// AddMotifIDs adds the "motifs" edge to the Motif entity by IDs.
func (_u *WorldUpdate) AddMotifIDs(ids ...string) *WorldUpdate {
	_u.mutation.AddMotifIDs(ids...)
	return _u
}

// AddMotifs adds the "motifs" edges to the Motif entity.
func (_u *WorldUpdate) AddMotifs(v ...*Motif) *WorldUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMotifIDs(ids...)
}

// AddEvolutionEntryIDs adds the "evolution_entries" edge to the EvolutionEntry entity by IDs.
func (_u *WorldUpdate) AddEvolutionEntryIDs(ids ...string) *WorldUpdate {
	_u.mutation.AddEvolutionEntryIDs(ids...)
	return _u
}

// AddEvolutionEntries adds the "evolution_entries" edges to the EvolutionEntry entity.
func (_u *WorldUpdate) AddEvolutionEntries(v ...*EvolutionEntry) *WorldUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvolutionEntryIDs(ids...)
}

// Mutation returns the WorldMutation object of the builder.
func (_u *WorldUpdate) Mutation() *WorldMutation {
	return _u.mutation
}

// ClearCharacters clears all "characters" edges to the Character entity.
func (_u *WorldUpdate) ClearCharacters() *WorldUpdate {
	_u.mutation.ClearCharacters()
	return _u
}

// RemoveCharacterIDs removes the "characters" edge to Character entities by IDs.
func (_u *WorldUpdate) RemoveCharacterIDs(ids ...string) *WorldUpdate {
	_u.mutation.RemoveCharacterIDs(ids...)
	return _u
}

// RemoveCharacters removes "characters" edges to Character entities.
func (_u *WorldUpdate) RemoveCharacters(v ...*Character) *WorldUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCharacterIDs(ids...)
}

// ClearStoryEvents clears all "story_events" edges to the StoryEvent entity.
func (_u *WorldUpdate) ClearStoryEvents() *WorldUpdate {
	_u.mutation.ClearStoryEvents()
	return _u
}

// RemoveStoryEventIDs removes the "story_events" edge to StoryEvent entities by IDs.
func (_u *WorldUpdate) RemoveStoryEventIDs(ids ...string) *WorldUpdate {
	_u.mutation.RemoveStoryEventIDs(ids...)
	return _u
}

// RemoveStoryEvents removes "story_events" edges to StoryEvent entities.
func (_u *WorldUpdate) RemoveStoryEvents(v ...*StoryEvent) *WorldUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStoryEventIDs(ids...)
}

// ClearRelationships clears all "relationships" edges to the Relationship entity.
func (_u *WorldUpdate) ClearRelationships() *WorldUpdate {
	_u.mutation.ClearRelationships()
	return _u
}

// RemoveRelationshipIDs removes the "relationships" edge to Relationship entities by IDs.
func (_u *WorldUpdate) RemoveRelationshipIDs(ids ...string) *WorldUpdate {
	_u.mutation.RemoveRelationshipIDs(ids...)
	return _u
}

// RemoveRelationships removes "relationships" edges to Relationship entities.
func (_u *WorldUpdate) RemoveRelationships(v ...*Relationship) *WorldUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelationshipIDs(ids...)
}

// ClearMotifs clears all "motifs" edges to the Motif entity.
func (_u *WorldUpdate) ClearMotifs() *WorldUpdate {
	_u.mutation.ClearMotifs()
	return _u
}

// RemoveMotifIDs removes the "motifs" edge to Motif entities by IDs.
func (_u *WorldUpdate) RemoveMotifIDs(ids ...string) *WorldUpdate {
	_u.mutation.RemoveMotifIDs(ids...)
	return _u
}

// RemoveMotifs removes "motifs" edges to Motif entities.
func (_u *WorldUpdate) RemoveMotifs(v ...*Motif) *WorldUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMotifIDs(ids...)
}

// ClearEvolutionEntries clears all "evolution_entries" edges to the EvolutionEntry entity.
func (_u *WorldUpdate) ClearEvolutionEntries() *WorldUpdate {
	_u.mutation.ClearEvolutionEntries()
	return _u
}

// RemoveEvolutionEntryIDs removes the "evolution_entries" edge to EvolutionEntry entities by IDs.
func (_u *WorldUpdate) RemoveEvolutionEntryIDs(ids ...string) *WorldUpdate {
	_u.mutation.RemoveEvolutionEntryIDs(ids...)
	return _u
}

// RemoveEvolutionEntries removes "evolution_entries" edges to EvolutionEntry entities.
func (_u *WorldUpdate) RemoveEvolutionEntries(v ...*EvolutionEntry) *WorldUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvolutionEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorldUpdate) check() error {
	if v, ok := _u.mutation.Scale(); ok {
		if err := world.ScaleValidator(v); err != nil {
			return &ValidationError{Name: "scale", err: fmt.Errorf(`ent: validator failed for field "World.scale": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "World.job"`)
	}
	return nil
}

func (_u *WorldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(world.Table, world.Columns, sqlgraph.NewFieldSpec(world.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(world.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rules(); ok {
		_spec.SetField(world.FieldRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, world.FieldRules, value)
		})
	}
	if value, ok := _u.mutation.Boundaries(); ok {
		_spec.SetField(world.FieldBoundaries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBoundaries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, world.FieldBoundaries, value)
		})
	}
	if value, ok := _u.mutation.Anomalies(); ok {
		_spec.SetField(world.FieldAnomalies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnomalies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, world.FieldAnomalies, value)
		})
	}
	if value, ok := _u.mutation.CoreConflict(); ok {
		_spec.SetField(world.FieldCoreConflict, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(world.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scale(); ok {
		_spec.SetField(world.FieldScale, field.TypeEnum, value)
	}
	if _u.mutation.CharactersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCharactersIDs(); len(nodes) > 0 && !_u.mutation.CharactersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CharactersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StoryEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStoryEventsIDs(); len(nodes) > 0 && !_u.mutation.StoryEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StoryEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RelationshipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRelationshipsIDs(); len(nodes) > 0 && !_u.mutation.RelationshipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RelationshipsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MotifsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMotifsIDs(); len(nodes) > 0 && !_u.mutation.MotifsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MotifsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvolutionEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvolutionEntriesIDs(); len(nodes) > 0 && !_u.mutation.EvolutionEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvolutionEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{world.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorldUpdateOne is the builder for updating a single World entity.
type WorldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorldMutation
}

// SetName sets the "name" field.
func (_u *WorldUpdateOne) SetName(v string) *WorldUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorldUpdateOne) SetNillableName(v *string) *WorldUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRules sets the "rules" field.
func (_u *WorldUpdateOne) SetRules(v []string) *WorldUpdateOne {
	_u.mutation.SetRules(v)
	return _u
}

// AppendRules appends value to the "rules" field.
func (_u *WorldUpdateOne) AppendRules(v []string) *WorldUpdateOne {
	_u.mutation.AppendRules(v)
	return _u
}

// SetBoundaries sets the "boundaries" field.
func (_u *WorldUpdateOne) SetBoundaries(v []string) *WorldUpdateOne {
	_u.mutation.SetBoundaries(v)
	return _u
}

// AppendBoundaries appends value to the "boundaries" field.
func (_u *WorldUpdateOne) AppendBoundaries(v []string) *WorldUpdateOne {
	_u.mutation.AppendBoundaries(v)
	return _u
}

// SetAnomalies sets the "anomalies" field.
func (_u *WorldUpdateOne) SetAnomalies(v []string) *WorldUpdateOne {
	_u.mutation.SetAnomalies(v)
	return _u
}

// AppendAnomalies appends value to the "anomalies" field.
func (_u *WorldUpdateOne) AppendAnomalies(v []string) *WorldUpdateOne {
	_u.mutation.AppendAnomalies(v)
	return _u
}

// SetCoreConflict sets the "core_conflict" field.
func (_u *WorldUpdateOne) SetCoreConflict(v string) *WorldUpdateOne {
	_u.mutation.SetCoreConflict(v)
	return _u
}

// SetNillableCoreConflict sets the "core_conflict" field if the given value is not nil.
func (_u *WorldUpdateOne) SetNillableCoreConflict(v *string) *WorldUpdateOne {
	if v != nil {
		_u.SetCoreConflict(*v)
	}
	return _u
}

// SetTheme sets the "theme" field.
func (_u *WorldUpdateOne) SetTheme(v string) *WorldUpdateOne {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *WorldUpdateOne) SetNillableTheme(v *string) *WorldUpdateOne {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// SetScale sets the "scale" field.
func (_u *WorldUpdateOne) SetScale(v world.Scale) *WorldUpdateOne {
	_u.mutation.SetScale(v)
	return _u
}

// SetNillableScale sets the "scale" field if the given value is not nil.
func (_u *WorldUpdateOne) SetNillableScale(v *world.Scale) *WorldUpdateOne {
	if v != nil {
		_u.SetScale(*v)
	}
	return _u
}

// AddCharacterIDs adds the "characters" edge to the Character entity by IDs.
func (_u *WorldUpdateOne) AddCharacterIDs(ids ...string) *WorldUpdateOne {
	_u.mutation.AddCharacterIDs(ids...)
	return _u
}

// AddCharacters adds the "characters" edges to the Character entity.
func (_u *WorldUpdateOne) AddCharacters(v ...*Character) *WorldUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCharacterIDs(ids...)
}

// AddStoryEventIDs adds the "story_events" edge to the StoryEvent entity by IDs.
func (_u *WorldUpdateOne) AddStoryEventIDs(ids ...string) *WorldUpdateOne {
	_u.mutation.AddStoryEventIDs(ids...)
	return _u
}

// AddStoryEvents adds the "story_events" edges to the StoryEvent entity.
func (_u *WorldUpdateOne) AddStoryEvents(v ...*StoryEvent) *WorldUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStoryEventIDs(ids...)
}

// AddRelationshipIDs adds the "relationships" edge to the Relationship entity by IDs.
func (_u *WorldUpdateOne) AddRelationshipIDs(ids ...string) *WorldUpdateOne {
	_u.mutation.AddRelationshipIDs(ids...)
	return _u
}

// AddRelationships adds the "relationships" edges to the Relationship entity.
func (_u *WorldUpdateOne) AddRelationships(v ...*Relationship) *WorldUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRelationshipIDs(ids...)
}

// AddMotifIDs adds the "motifs" edge to the Motif entity by IDs.
func (_u *WorldUpdateOne) AddMotifIDs(ids ...string) *WorldUpdateOne {
	_u.mutation.AddMotifIDs(ids...)
	return _u
}

// AddMotifs adds the "motifs" edges to the Motif entity.
func (_u *WorldUpdateOne) AddMotifs(v ...*Motif) *WorldUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMotifIDs(ids...)
}

// AddEvolutionEntryIDs adds the "evolution_entries" edge to the EvolutionEntry entity by IDs.
func (_u *WorldUpdateOne) AddEvolutionEntryIDs(ids ...string) *WorldUpdateOne {
	_u.mutation.AddEvolutionEntryIDs(ids...)
	return _u
}

// AddEvolutionEntries adds the "evolution_entries" edges to the EvolutionEntry entity.
func (_u *WorldUpdateOne) AddEvolutionEntries(v ...*EvolutionEntry) *WorldUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvolutionEntryIDs(ids...)
}

// Mutation returns the WorldMutation object of the builder.
func (_u *WorldUpdateOne) Mutation() *WorldMutation {
	return _u.mutation
}

// ClearCharacters clears all "characters" edges to the Character entity.
func (_u *WorldUpdateOne) ClearCharacters() *WorldUpdateOne {
	_u.mutation.ClearCharacters()
	return _u
}

// RemoveCharacterIDs removes the "characters" edge to Character entities by IDs.
func (_u *WorldUpdateOne) RemoveCharacterIDs(ids ...string) *WorldUpdateOne {
	_u.mutation.RemoveCharacterIDs(ids...)
	return _u
}

// RemoveCharacters removes "characters" edges to Character entities.
func (_u *WorldUpdateOne) RemoveCharacters(v ...*Character) *WorldUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCharacterIDs(ids...)
}

// ClearStoryEvents clears all "story_events" edges to the StoryEvent entity.
func (_u *WorldUpdateOne) ClearStoryEvents() *WorldUpdateOne {
	_u.mutation.ClearStoryEvents()
	return _u
}

// RemoveStoryEventIDs removes the "story_events" edge to StoryEvent entities by IDs.
func (_u *WorldUpdateOne) RemoveStoryEventIDs(ids ...string) *WorldUpdateOne {
	_u.mutation.RemoveStoryEventIDs(ids...)
	return _u
}

// RemoveStoryEvents removes "story_events" edges to StoryEvent entities.
func (_u *WorldUpdateOne) RemoveStoryEvents(v ...*StoryEvent) *WorldUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStoryEventIDs(ids...)
}

// ClearRelationships clears all "relationships" edges to the Relationship entity.
func (_u *WorldUpdateOne) ClearRelationships() *WorldUpdateOne {
	_u.mutation.ClearRelationships()
	return _u
}

// RemoveRelationshipIDs removes the "relationships" edge to Relationship entities by IDs.
func (_u *WorldUpdateOne) RemoveRelationshipIDs(ids ...string) *WorldUpdateOne {
	_u.mutation.RemoveRelationshipIDs(ids...)
	return _u
}

// RemoveRelationships removes "relationships" edges to Relationship entities.
func (_u *WorldUpdateOne) RemoveRelationships(v ...*Relationship) *WorldUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRelationshipIDs(ids...)
}

// ClearMotifs clears all "motifs" edges to the Motif entity.
func (_u *WorldUpdateOne) ClearMotifs() *WorldUpdateOne {
	_u.mutation.ClearMotifs()
	return _u
}

// RemoveMotifIDs removes the "motifs" edge to Motif entities by IDs.
func (_u *WorldUpdateOne) RemoveMotifIDs(ids ...string) *WorldUpdateOne {
	_u.mutation.RemoveMotifIDs(ids...)
	return _u
}

// RemoveMotifs removes "motifs" edges to Motif entities.
func (_u *WorldUpdateOne) RemoveMotifs(v ...*Motif) *WorldUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMotifIDs(ids...)
}

// ClearEvolutionEntries clears all "evolution_entries" edges to the EvolutionEntry entity.
func (_u *WorldUpdateOne) ClearEvolutionEntries() *WorldUpdateOne {
	_u.mutation.ClearEvolutionEntries()
	return _u
}

// RemoveEvolutionEntryIDs removes the "evolution_entries" edge to EvolutionEntry entities by IDs.
func (_u *WorldUpdateOne) RemoveEvolutionEntryIDs(ids ...string) *WorldUpdateOne {
	_u.mutation.RemoveEvolutionEntryIDs(ids...)
	return _u
}

// RemoveEvolutionEntries removes "evolution_entries" edges to EvolutionEntry entities.
func (_u *WorldUpdateOne) RemoveEvolutionEntries(v ...*EvolutionEntry) *WorldUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvolutionEntryIDs(ids...)
}

// Where appends a list predicates to the WorldUpdate builder.
func (_u *WorldUpdateOne) Where(ps ...predicate.World) *WorldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorldUpdateOne) Select(field string, fields ...string) *WorldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated World entity.
func (_u *WorldUpdateOne) Save(ctx context.Context) (*World, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorldUpdateOne) SaveX(ctx context.Context) *World {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorldUpdateOne) check() error {
	if v, ok := _u.mutation.Scale(); ok {
		if err := world.ScaleValidator(v); err != nil {
			return &ValidationError{Name: "scale", err: fmt.Errorf(`ent: validator failed for field "World.scale": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "World.job"`)
	}
	return nil
}

func (_u *WorldUpdateOne) sqlSave(ctx context.Context) (_node *World, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(world.Table, world.Columns, sqlgraph.NewFieldSpec(world.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "World.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, world.FieldID)
		for _, f := range fields {
			if !world.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != world.FieldID {
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
		_spec.SetField(world.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rules(); ok {
		_spec.SetField(world.FieldRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, world.FieldRules, value)
		})
	}
	if value, ok := _u.mutation.Boundaries(); ok {
		_spec.SetField(world.FieldBoundaries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBoundaries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, world.FieldBoundaries, value)
		})
	}
	if value, ok := _u.mutation.Anomalies(); ok {
		_spec.SetField(world.FieldAnomalies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnomalies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, world.FieldAnomalies, value)
		})
	}
	if value, ok := _u.mutation.CoreConflict(); ok {
		_spec.SetField(world.FieldCoreConflict, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(world.FieldTheme, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scale(); ok {
		_spec.SetField(world.FieldScale, field.TypeEnum, value)
	}
	if _u.mutation.CharactersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCharactersIDs(); len(nodes) > 0 && !_u.mutation.CharactersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CharactersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StoryEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStoryEventsIDs(); len(nodes) > 0 && !_u.mutation.StoryEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StoryEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RelationshipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRelationshipsIDs(); len(nodes) > 0 && !_u.mutation.RelationshipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RelationshipsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MotifsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMotifsIDs(); len(nodes) > 0 && !_u.mutation.MotifsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MotifsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvolutionEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvolutionEntriesIDs(); len(nodes) > 0 && !_u.mutation.EvolutionEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvolutionEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &World{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{world.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
