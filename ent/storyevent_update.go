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
	"github.com/narraforge/narraforge/ent/predicate"
	"github.com/narraforge/narraforge/ent/storyevent"
)

// StoryEventUpdate is the builder for updating StoryEvent entities.
type StoryEventUpdate struct {
	config
	hooks    []Hook
	mutation *StoryEventMutation
}

// Where appends a list predicates to the StoryEventUpdate builder.
func (_u *StoryEventUpdate) Where(ps ...predicate.StoryEvent) *StoryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParticipantIds sets the "participant_ids" field.
func (_u *StoryEventUpdate) SetParticipantIds(v []string) *StoryEventUpdate {
	_u.mutation.SetParticipantIds(v)
	return _u
}

// AppendParticipantIds appends value to the "participant_ids" field.
func (_u *StoryEventUpdate) AppendParticipantIds(v []string) *StoryEventUpdate {
	_u.mutation.AppendParticipantIds(v)
	return _u
}

// SetLocation sets the "location" field.
func (_u *StoryEventUpdate) SetLocation(v string) *StoryEventUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *StoryEventUpdate) SetNillableLocation(v *string) *StoryEventUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StoryEventUpdate) SetDescription(v string) *StoryEventUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StoryEventUpdate) SetNillableDescription(v *string) *StoryEventUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetConsequences sets the "consequences" field.
func (_u *StoryEventUpdate) SetConsequences(v []string) *StoryEventUpdate {
	_u.mutation.SetConsequences(v)
	return _u
}

// AppendConsequences appends value to the "consequences" field.
func (_u *StoryEventUpdate) AppendConsequences(v []string) *StoryEventUpdate {
	_u.mutation.AppendConsequences(v)
	return _u
}

// SetStoryTime sets the "story_time" field.
func (_u *StoryEventUpdate) SetStoryTime(v int) *StoryEventUpdate {
	_u.mutation.ResetStoryTime()
	_u.mutation.SetStoryTime(v)
	return _u
}

// SetNillableStoryTime sets the "story_time" field if the given value is not nil.
func (_u *StoryEventUpdate) SetNillableStoryTime(v *int) *StoryEventUpdate {
	if v != nil {
		_u.SetStoryTime(*v)
	}
	return _u
}

// AddStoryTime adds value to the "story_time" field.
func (_u *StoryEventUpdate) AddStoryTime(v int) *StoryEventUpdate {
	_u.mutation.AddStoryTime(v)
	return _u
}

// Mutation returns the StoryEventMutation object of the builder.
func (_u *StoryEventUpdate) Mutation() *StoryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StoryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StoryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryEventUpdate) check() error {
	if _u.mutation.WorldCleared() && len(_u.mutation.WorldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StoryEvent.world"`)
	}
	return nil
}

func (_u *StoryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storyevent.Table, storyevent.Columns, sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParticipantIds(); ok {
		_spec.SetField(storyevent.FieldParticipantIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipantIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, storyevent.FieldParticipantIds, value)
		})
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(storyevent.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(storyevent.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Consequences(); ok {
		_spec.SetField(storyevent.FieldConsequences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConsequences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, storyevent.FieldConsequences, value)
		})
	}
	if value, ok := _u.mutation.StoryTime(); ok {
		_spec.SetField(storyevent.FieldStoryTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStoryTime(); ok {
		_spec.AddField(storyevent.FieldStoryTime, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StoryEventUpdateOne is the builder for updating a single StoryEvent entity.
type StoryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StoryEventMutation
}

// SetParticipantIds sets the "participant_ids" field.
func (_u *StoryEventUpdateOne) SetParticipantIds(v []string) *StoryEventUpdateOne {
	_u.mutation.SetParticipantIds(v)
	return _u
}

// AppendParticipantIds appends value to the "participant_ids" field.
func (_u *StoryEventUpdateOne) AppendParticipantIds(v []string) *StoryEventUpdateOne {
	_u.mutation.AppendParticipantIds(v)
	return _u
}

// SetLocation sets the "location" field.
func (_u *StoryEventUpdateOne) SetLocation(v string) *StoryEventUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *StoryEventUpdateOne) SetNillableLocation(v *string) *StoryEventUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StoryEventUpdateOne) SetDescription(v string) *StoryEventUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StoryEventUpdateOne) SetNillableDescription(v *string) *StoryEventUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetConsequences sets the "consequences" field.
func (_u *StoryEventUpdateOne) SetConsequences(v []string) *StoryEventUpdateOne {
	_u.mutation.SetConsequences(v)
	return _u
}

// AppendConsequences appends value to the "consequences" field.
func (_u *StoryEventUpdateOne) AppendConsequences(v []string) *StoryEventUpdateOne {
	_u.mutation.AppendConsequences(v)
	return _u
}

// SetStoryTime sets the "story_time" field.
func (_u *StoryEventUpdateOne) SetStoryTime(v int) *StoryEventUpdateOne {
	_u.mutation.ResetStoryTime()
	_u.mutation.SetStoryTime(v)
	return _u
}

// SetNillableStoryTime sets the "story_time" field if the given value is not nil.
func (_u *StoryEventUpdateOne) SetNillableStoryTime(v *int) *StoryEventUpdateOne {
	if v != nil {
		_u.SetStoryTime(*v)
	}
	return _u
}

// AddStoryTime adds value to the "story_time" field.
func (_u *StoryEventUpdateOne) AddStoryTime(v int) *StoryEventUpdateOne {
	_u.mutation.AddStoryTime(v)
	return _u
}

// Mutation returns the StoryEventMutation object of the builder.
func (_u *StoryEventUpdateOne) Mutation() *StoryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StoryEventUpdate builder.
func (_u *StoryEventUpdateOne) Where(ps ...predicate.StoryEvent) *StoryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StoryEventUpdateOne) Select(field string, fields ...string) *StoryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StoryEvent entity.
func (_u *StoryEventUpdateOne) Save(ctx context.Context) (*StoryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryEventUpdateOne) SaveX(ctx context.Context) *StoryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StoryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryEventUpdateOne) check() error {
	if _u.mutation.WorldCleared() && len(_u.mutation.WorldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StoryEvent.world"`)
	}
	return nil
}

func (_u *StoryEventUpdateOne) sqlSave(ctx context.Context) (_node *StoryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(storyevent.Table, storyevent.Columns, sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StoryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, storyevent.FieldID)
		for _, f := range fields {
			if !storyevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != storyevent.FieldID {
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
	if value, ok := _u.mutation.ParticipantIds(); ok {
		_spec.SetField(storyevent.FieldParticipantIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipantIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, storyevent.FieldParticipantIds, value)
		})
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(storyevent.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(storyevent.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Consequences(); ok {
		_spec.SetField(storyevent.FieldConsequences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConsequences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, storyevent.FieldConsequences, value)
		})
	}
	if value, ok := _u.mutation.StoryTime(); ok {
		_spec.SetField(storyevent.FieldStoryTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStoryTime(); ok {
		_spec.AddField(storyevent.FieldStoryTime, field.TypeInt, value)
	}
	_node = &StoryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
