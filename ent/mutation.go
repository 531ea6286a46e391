// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/narraforge/narraforge/ent/character"
	"github.com/narraforge/narraforge/ent/checkpoint"
	"github.com/narraforge/narraforge/ent/event"
	"github.com/narraforge/narraforge/ent/evolutionentry"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/ent/modelcall"
	"github.com/narraforge/narraforge/ent/motif"
	"github.com/narraforge/narraforge/ent/predicate"
	"github.com/narraforge/narraforge/ent/relationship"
	"github.com/narraforge/narraforge/ent/storyevent"
	"github.com/narraforge/narraforge/ent/world"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCharacter      = "Character"
	TypeCheckpoint     = "Checkpoint"
	TypeEvent          = "Event"
	TypeEvolutionEntry = "EvolutionEntry"
	TypeJob            = "Job"
	TypeModelCall      = "ModelCall"
	TypeMotif          = "Motif"
	TypeRelationship   = "Relationship"
	TypeStoryEvent     = "StoryEvent"
	TypeWorld          = "World"
)

// CharacterMutation represents an operation that mutates the Character nodes in the graph.
type CharacterMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	name                   *string
	trajectory             *string
	contradictions         *[]string
	appendcontradictions   []string
	cognitive_limits       *[]string
	appendcognitive_limits []string
	evolution_capacity     *float64
	addevolution_capacity  *float64
	created_at             *time.Time
	clearedFields          map[string]struct{}
	world                  *string
	clearedworld           bool
	done                   bool
	oldValue               func(context.Context) (*Character, error)
	predicates             []predicate.Character
}

var _ ent.Mutation = (*CharacterMutation)(nil)

// characterOption allows management of the mutation configuration using functional options.
type characterOption func(*CharacterMutation)

// newCharacterMutation creates new mutation for the Character entity.
func newCharacterMutation(c config, op Op, opts ...characterOption) *CharacterMutation {
	m := &CharacterMutation{
		config:        c,
		op:            op,
		typ:           TypeCharacter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCharacterID sets the ID field of the mutation.
func withCharacterID(id string) characterOption {
	return func(m *CharacterMutation) {
		var (
			err   error
			once  sync.Once
			value *Character
		)
		m.oldValue = func(ctx context.Context) (*Character, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Character.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCharacter sets the old Character of the mutation.
func withCharacter(node *Character) characterOption {
	return func(m *CharacterMutation) {
		m.oldValue = func(context.Context) (*Character, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CharacterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CharacterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Character entities.
func (m *CharacterMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CharacterMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CharacterMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Character.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorldID sets the "world_id" field.
func (m *CharacterMutation) SetWorldID(s string) {
	m.world = &s
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *CharacterMutation) WorldID() (r string, exists bool) {
	v := m.world
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldWorldID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *CharacterMutation) ResetWorldID() {
	m.world = nil
}

// SetName sets the "name" field.
func (m *CharacterMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CharacterMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CharacterMutation) ResetName() {
	m.name = nil
}

// SetTrajectory sets the "trajectory" field.
func (m *CharacterMutation) SetTrajectory(s string) {
	m.trajectory = &s
}

// Trajectory returns the value of the "trajectory" field in the mutation.
func (m *CharacterMutation) Trajectory() (r string, exists bool) {
	v := m.trajectory
	if v == nil {
		return
	}
	return *v, true
}

// OldTrajectory returns the old "trajectory" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldTrajectory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrajectory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrajectory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrajectory: %w", err)
	}
	return oldValue.Trajectory, nil
}

// ResetTrajectory resets all changes to the "trajectory" field.
func (m *CharacterMutation) ResetTrajectory() {
	m.trajectory = nil
}

// SetContradictions sets the "contradictions" field.
func (m *CharacterMutation) SetContradictions(s []string) {
	m.contradictions = &s
	m.appendcontradictions = nil
}

// Contradictions returns the value of the "contradictions" field in the mutation.
func (m *CharacterMutation) Contradictions() (r []string, exists bool) {
	v := m.contradictions
	if v == nil {
		return
	}
	return *v, true
}

// OldContradictions returns the old "contradictions" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldContradictions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContradictions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContradictions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContradictions: %w", err)
	}
	return oldValue.Contradictions, nil
}

// AppendContradictions adds s to the "contradictions" field.
func (m *CharacterMutation) AppendContradictions(s []string) {
	m.appendcontradictions = append(m.appendcontradictions, s...)
}

// AppendedContradictions returns the list of values that were appended to the "contradictions" field in this mutation.
func (m *CharacterMutation) AppendedContradictions() ([]string, bool) {
	if len(m.appendcontradictions) == 0 {
		return nil, false
	}
	return m.appendcontradictions, true
}

// ResetContradictions resets all changes to the "contradictions" field.
func (m *CharacterMutation) ResetContradictions() {
	m.contradictions = nil
	m.appendcontradictions = nil
}

// SetCognitiveLimits sets the "cognitive_limits" field.
func (m *CharacterMutation) SetCognitiveLimits(s []string) {
	m.cognitive_limits = &s
	m.appendcognitive_limits = nil
}

// CognitiveLimits returns the value of the "cognitive_limits" field in the mutation.
func (m *CharacterMutation) CognitiveLimits() (r []string, exists bool) {
	v := m.cognitive_limits
	if v == nil {
		return
	}
	return *v, true
}

// OldCognitiveLimits returns the old "cognitive_limits" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldCognitiveLimits(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCognitiveLimits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCognitiveLimits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCognitiveLimits: %w", err)
	}
	return oldValue.CognitiveLimits, nil
}

// AppendCognitiveLimits adds s to the "cognitive_limits" field.
func (m *CharacterMutation) AppendCognitiveLimits(s []string) {
	m.appendcognitive_limits = append(m.appendcognitive_limits, s...)
}

// AppendedCognitiveLimits returns the list of values that were appended to the "cognitive_limits" field in this mutation.
func (m *CharacterMutation) AppendedCognitiveLimits() ([]string, bool) {
	if len(m.appendcognitive_limits) == 0 {
		return nil, false
	}
	return m.appendcognitive_limits, true
}

// ResetCognitiveLimits resets all changes to the "cognitive_limits" field.
func (m *CharacterMutation) ResetCognitiveLimits() {
	m.cognitive_limits = nil
	m.appendcognitive_limits = nil
}

// SetEvolutionCapacity sets the "evolution_capacity" field.
func (m *CharacterMutation) SetEvolutionCapacity(f float64) {
	m.evolution_capacity = &f
	m.addevolution_capacity = nil
}

// EvolutionCapacity returns the value of the "evolution_capacity" field in the mutation.
func (m *CharacterMutation) EvolutionCapacity() (r float64, exists bool) {
	v := m.evolution_capacity
	if v == nil {
		return
	}
	return *v, true
}

// OldEvolutionCapacity returns the old "evolution_capacity" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldEvolutionCapacity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvolutionCapacity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvolutionCapacity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvolutionCapacity: %w", err)
	}
	return oldValue.EvolutionCapacity, nil
}

// AddEvolutionCapacity adds f to the "evolution_capacity" field.
func (m *CharacterMutation) AddEvolutionCapacity(f float64) {
	if m.addevolution_capacity != nil {
		*m.addevolution_capacity += f
	} else {
		m.addevolution_capacity = &f
	}
}

// AddedEvolutionCapacity returns the value that was added to the "evolution_capacity" field in this mutation.
func (m *CharacterMutation) AddedEvolutionCapacity() (r float64, exists bool) {
	v := m.addevolution_capacity
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvolutionCapacity resets all changes to the "evolution_capacity" field.
func (m *CharacterMutation) ResetEvolutionCapacity() {
	m.evolution_capacity = nil
	m.addevolution_capacity = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CharacterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CharacterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Character entity.
// If the Character object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CharacterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CharacterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorld clears the "world" edge to the World entity.
func (m *CharacterMutation) ClearWorld() {
	m.clearedworld = true
	m.clearedFields[character.FieldWorldID] = struct{}{}
}

// WorldCleared reports if the "world" edge to the World entity was cleared.
func (m *CharacterMutation) WorldCleared() bool {
	return m.clearedworld
}

// WorldIDs returns the "world" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorldID instead. It exists only for internal usage by the builders.
func (m *CharacterMutation) WorldIDs() (ids []string) {
	if id := m.world; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorld resets all changes to the "world" edge.
func (m *CharacterMutation) ResetWorld() {
	m.world = nil
	m.clearedworld = false
}

// Where appends a list predicates to the CharacterMutation builder.
func (m *CharacterMutation) Where(ps ...predicate.Character) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CharacterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CharacterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Character, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CharacterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CharacterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Character).
func (m *CharacterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CharacterMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.world != nil {
		fields = append(fields, character.FieldWorldID)
	}
	if m.name != nil {
		fields = append(fields, character.FieldName)
	}
	if m.trajectory != nil {
		fields = append(fields, character.FieldTrajectory)
	}
	if m.contradictions != nil {
		fields = append(fields, character.FieldContradictions)
	}
	if m.cognitive_limits != nil {
		fields = append(fields, character.FieldCognitiveLimits)
	}
	if m.evolution_capacity != nil {
		fields = append(fields, character.FieldEvolutionCapacity)
	}
	if m.created_at != nil {
		fields = append(fields, character.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CharacterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case character.FieldWorldID:
		return m.WorldID()
	case character.FieldName:
		return m.Name()
	case character.FieldTrajectory:
		return m.Trajectory()
	case character.FieldContradictions:
		return m.Contradictions()
	case character.FieldCognitiveLimits:
		return m.CognitiveLimits()
	case character.FieldEvolutionCapacity:
		return m.EvolutionCapacity()
	case character.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CharacterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case character.FieldWorldID:
		return m.OldWorldID(ctx)
	case character.FieldName:
		return m.OldName(ctx)
	case character.FieldTrajectory:
		return m.OldTrajectory(ctx)
	case character.FieldContradictions:
		return m.OldContradictions(ctx)
	case character.FieldCognitiveLimits:
		return m.OldCognitiveLimits(ctx)
	case character.FieldEvolutionCapacity:
		return m.OldEvolutionCapacity(ctx)
	case character.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Character field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CharacterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case character.FieldWorldID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case character.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case character.FieldTrajectory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrajectory(v)
		return nil
	case character.FieldContradictions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContradictions(v)
		return nil
	case character.FieldCognitiveLimits:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCognitiveLimits(v)
		return nil
	case character.FieldEvolutionCapacity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvolutionCapacity(v)
		return nil
	case character.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Character field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CharacterMutation) AddedFields() []string {
	var fields []string
	if m.addevolution_capacity != nil {
		fields = append(fields, character.FieldEvolutionCapacity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CharacterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case character.FieldEvolutionCapacity:
		return m.AddedEvolutionCapacity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CharacterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case character.FieldEvolutionCapacity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvolutionCapacity(v)
		return nil
	}
	return fmt.Errorf("unknown Character numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CharacterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CharacterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CharacterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Character nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CharacterMutation) ResetField(name string) error {
	switch name {
	case character.FieldWorldID:
		m.ResetWorldID()
		return nil
	case character.FieldName:
		m.ResetName()
		return nil
	case character.FieldTrajectory:
		m.ResetTrajectory()
		return nil
	case character.FieldContradictions:
		m.ResetContradictions()
		return nil
	case character.FieldCognitiveLimits:
		m.ResetCognitiveLimits()
		return nil
	case character.FieldEvolutionCapacity:
		m.ResetEvolutionCapacity()
		return nil
	case character.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Character field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CharacterMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.world != nil {
		edges = append(edges, character.EdgeWorld)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CharacterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case character.EdgeWorld:
		if id := m.world; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CharacterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CharacterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CharacterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworld {
		edges = append(edges, character.EdgeWorld)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CharacterMutation) EdgeCleared(name string) bool {
	switch name {
	case character.EdgeWorld:
		return m.clearedworld
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CharacterMutation) ClearEdge(name string) error {
	switch name {
	case character.EdgeWorld:
		m.ClearWorld()
		return nil
	}
	return fmt.Errorf("unknown Character unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CharacterMutation) ResetEdge(name string) error {
	switch name {
	case character.EdgeWorld:
		m.ResetWorld()
		return nil
	}
	return fmt.Errorf("unknown Character edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	stage                *int
	addstage             *int
	context_snapshot     *map[string]interface{}
	cost_usd             *float64
	addcost_usd          *float64
	prompt_tokens        *int
	addprompt_tokens     *int
	completion_tokens    *int
	addcompletion_tokens *int
	created_at           *time.Time
	clearedFields        map[string]struct{}
	job                  *string
	clearedjob           bool
	done                 bool
	oldValue             func(context.Context) (*Checkpoint, error)
	predicates           []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *CheckpointMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *CheckpointMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *CheckpointMutation) ResetJobID() {
	m.job = nil
}

// SetStage sets the "stage" field.
func (m *CheckpointMutation) SetStage(i int) {
	m.stage = &i
	m.addstage = nil
}

// Stage returns the value of the "stage" field in the mutation.
func (m *CheckpointMutation) Stage() (r int, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldStage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// AddStage adds i to the "stage" field.
func (m *CheckpointMutation) AddStage(i int) {
	if m.addstage != nil {
		*m.addstage += i
	} else {
		m.addstage = &i
	}
}

// AddedStage returns the value that was added to the "stage" field in this mutation.
func (m *CheckpointMutation) AddedStage() (r int, exists bool) {
	v := m.addstage
	if v == nil {
		return
	}
	return *v, true
}

// ResetStage resets all changes to the "stage" field.
func (m *CheckpointMutation) ResetStage() {
	m.stage = nil
	m.addstage = nil
}

// SetContextSnapshot sets the "context_snapshot" field.
func (m *CheckpointMutation) SetContextSnapshot(value map[string]interface{}) {
	m.context_snapshot = &value
}

// ContextSnapshot returns the value of the "context_snapshot" field in the mutation.
func (m *CheckpointMutation) ContextSnapshot() (r map[string]interface{}, exists bool) {
	v := m.context_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldContextSnapshot returns the old "context_snapshot" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldContextSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextSnapshot: %w", err)
	}
	return oldValue.ContextSnapshot, nil
}

// ResetContextSnapshot resets all changes to the "context_snapshot" field.
func (m *CheckpointMutation) ResetContextSnapshot() {
	m.context_snapshot = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *CheckpointMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *CheckpointMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *CheckpointMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *CheckpointMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *CheckpointMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *CheckpointMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *CheckpointMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *CheckpointMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *CheckpointMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *CheckpointMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *CheckpointMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *CheckpointMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *CheckpointMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *CheckpointMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *CheckpointMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *CheckpointMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[checkpoint.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *CheckpointMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *CheckpointMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.job != nil {
		fields = append(fields, checkpoint.FieldJobID)
	}
	if m.stage != nil {
		fields = append(fields, checkpoint.FieldStage)
	}
	if m.context_snapshot != nil {
		fields = append(fields, checkpoint.FieldContextSnapshot)
	}
	if m.cost_usd != nil {
		fields = append(fields, checkpoint.FieldCostUsd)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, checkpoint.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, checkpoint.FieldCompletionTokens)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldJobID:
		return m.JobID()
	case checkpoint.FieldStage:
		return m.Stage()
	case checkpoint.FieldContextSnapshot:
		return m.ContextSnapshot()
	case checkpoint.FieldCostUsd:
		return m.CostUsd()
	case checkpoint.FieldPromptTokens:
		return m.PromptTokens()
	case checkpoint.FieldCompletionTokens:
		return m.CompletionTokens()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldJobID:
		return m.OldJobID(ctx)
	case checkpoint.FieldStage:
		return m.OldStage(ctx)
	case checkpoint.FieldContextSnapshot:
		return m.OldContextSnapshot(ctx)
	case checkpoint.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case checkpoint.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case checkpoint.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case checkpoint.FieldStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case checkpoint.FieldContextSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextSnapshot(v)
		return nil
	case checkpoint.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case checkpoint.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case checkpoint.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addstage != nil {
		fields = append(fields, checkpoint.FieldStage)
	}
	if m.addcost_usd != nil {
		fields = append(fields, checkpoint.FieldCostUsd)
	}
	if m.addprompt_tokens != nil {
		fields = append(fields, checkpoint.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, checkpoint.FieldCompletionTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldStage:
		return m.AddedStage()
	case checkpoint.FieldCostUsd:
		return m.AddedCostUsd()
	case checkpoint.FieldPromptTokens:
		return m.AddedPromptTokens()
	case checkpoint.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStage(v)
		return nil
	case checkpoint.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	case checkpoint.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case checkpoint.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldJobID:
		m.ResetJobID()
		return nil
	case checkpoint.FieldStage:
		m.ResetStage()
		return nil
	case checkpoint.FieldContextSnapshot:
		m.ResetContextSnapshot()
		return nil
	case checkpoint.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case checkpoint.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case checkpoint.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, checkpoint.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, checkpoint.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	job           *string
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *EventMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *EventMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *EventMutation) ResetJobID() {
	m.job = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *EventMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[event.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *EventMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *EventMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *EventMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.job != nil {
		fields = append(fields, event.FieldJobID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldJobID:
		return m.JobID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldJobID:
		return m.OldJobID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldJobID:
		m.ResetJobID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, event.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, event.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// EvolutionEntryMutation represents an operation that mutates the EvolutionEntry nodes in the graph.
type EvolutionEntryMutation struct {
	config
	op               Op
	typ              string
	id               *string
	entity_id        *string
	entity_type      *evolutionentry.EntityType
	change_type      *string
	before_state     *map[string]interface{}
	after_state      *map[string]interface{}
	trigger_event_id *string
	significance     *float64
	addsignificance  *float64
	created_at       *time.Time
	clearedFields    map[string]struct{}
	world            *string
	clearedworld     bool
	done             bool
	oldValue         func(context.Context) (*EvolutionEntry, error)
	predicates       []predicate.EvolutionEntry
}

var _ ent.Mutation = (*EvolutionEntryMutation)(nil)

// evolutionentryOption allows management of the mutation configuration using functional options.
type evolutionentryOption func(*EvolutionEntryMutation)

// newEvolutionEntryMutation creates new mutation for the EvolutionEntry entity.
func newEvolutionEntryMutation(c config, op Op, opts ...evolutionentryOption) *EvolutionEntryMutation {
	m := &EvolutionEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeEvolutionEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvolutionEntryID sets the ID field of the mutation.
func withEvolutionEntryID(id string) evolutionentryOption {
	return func(m *EvolutionEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *EvolutionEntry
		)
		m.oldValue = func(ctx context.Context) (*EvolutionEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvolutionEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvolutionEntry sets the old EvolutionEntry of the mutation.
func withEvolutionEntry(node *EvolutionEntry) evolutionentryOption {
	return func(m *EvolutionEntryMutation) {
		m.oldValue = func(context.Context) (*EvolutionEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvolutionEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvolutionEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvolutionEntry entities.
func (m *EvolutionEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvolutionEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvolutionEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvolutionEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorldID sets the "world_id" field.
func (m *EvolutionEntryMutation) SetWorldID(s string) {
	m.world = &s
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *EvolutionEntryMutation) WorldID() (r string, exists bool) {
	v := m.world
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the EvolutionEntry entity.
// If the EvolutionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionEntryMutation) OldWorldID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *EvolutionEntryMutation) ResetWorldID() {
	m.world = nil
}

// SetEntityID sets the "entity_id" field.
func (m *EvolutionEntryMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *EvolutionEntryMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the EvolutionEntry entity.
// If the EvolutionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionEntryMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *EvolutionEntryMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetEntityType sets the "entity_type" field.
func (m *EvolutionEntryMutation) SetEntityType(et evolutionentry.EntityType) {
	m.entity_type = &et
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EvolutionEntryMutation) EntityType() (r evolutionentry.EntityType, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the EvolutionEntry entity.
// If the EvolutionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionEntryMutation) OldEntityType(ctx context.Context) (v evolutionentry.EntityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EvolutionEntryMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetChangeType sets the "change_type" field.
func (m *EvolutionEntryMutation) SetChangeType(s string) {
	m.change_type = &s
}

// ChangeType returns the value of the "change_type" field in the mutation.
func (m *EvolutionEntryMutation) ChangeType() (r string, exists bool) {
	v := m.change_type
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeType returns the old "change_type" field's value of the EvolutionEntry entity.
// If the EvolutionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionEntryMutation) OldChangeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeType: %w", err)
	}
	return oldValue.ChangeType, nil
}

// ResetChangeType resets all changes to the "change_type" field.
func (m *EvolutionEntryMutation) ResetChangeType() {
	m.change_type = nil
}

// SetBeforeState sets the "before_state" field.
func (m *EvolutionEntryMutation) SetBeforeState(value map[string]interface{}) {
	m.before_state = &value
}

// BeforeState returns the value of the "before_state" field in the mutation.
func (m *EvolutionEntryMutation) BeforeState() (r map[string]interface{}, exists bool) {
	v := m.before_state
	if v == nil {
		return
	}
	return *v, true
}

// OldBeforeState returns the old "before_state" field's value of the EvolutionEntry entity.
// If the EvolutionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionEntryMutation) OldBeforeState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeforeState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeforeState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeforeState: %w", err)
	}
	return oldValue.BeforeState, nil
}

// ResetBeforeState resets all changes to the "before_state" field.
func (m *EvolutionEntryMutation) ResetBeforeState() {
	m.before_state = nil
}

// SetAfterState sets the "after_state" field.
func (m *EvolutionEntryMutation) SetAfterState(value map[string]interface{}) {
	m.after_state = &value
}

// AfterState returns the value of the "after_state" field in the mutation.
func (m *EvolutionEntryMutation) AfterState() (r map[string]interface{}, exists bool) {
	v := m.after_state
	if v == nil {
		return
	}
	return *v, true
}

// OldAfterState returns the old "after_state" field's value of the EvolutionEntry entity.
// If the EvolutionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionEntryMutation) OldAfterState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfterState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfterState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfterState: %w", err)
	}
	return oldValue.AfterState, nil
}

// ResetAfterState resets all changes to the "after_state" field.
func (m *EvolutionEntryMutation) ResetAfterState() {
	m.after_state = nil
}

// SetTriggerEventID sets the "trigger_event_id" field.
func (m *EvolutionEntryMutation) SetTriggerEventID(s string) {
	m.trigger_event_id = &s
}

// TriggerEventID returns the value of the "trigger_event_id" field in the mutation.
func (m *EvolutionEntryMutation) TriggerEventID() (r string, exists bool) {
	v := m.trigger_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerEventID returns the old "trigger_event_id" field's value of the EvolutionEntry entity.
// If the EvolutionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionEntryMutation) OldTriggerEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerEventID: %w", err)
	}
	return oldValue.TriggerEventID, nil
}

// ResetTriggerEventID resets all changes to the "trigger_event_id" field.
func (m *EvolutionEntryMutation) ResetTriggerEventID() {
	m.trigger_event_id = nil
}

// SetSignificance sets the "significance" field.
func (m *EvolutionEntryMutation) SetSignificance(f float64) {
	m.significance = &f
	m.addsignificance = nil
}

// Significance returns the value of the "significance" field in the mutation.
func (m *EvolutionEntryMutation) Significance() (r float64, exists bool) {
	v := m.significance
	if v == nil {
		return
	}
	return *v, true
}

// OldSignificance returns the old "significance" field's value of the EvolutionEntry entity.
// If the EvolutionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionEntryMutation) OldSignificance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignificance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignificance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignificance: %w", err)
	}
	return oldValue.Significance, nil
}

// AddSignificance adds f to the "significance" field.
func (m *EvolutionEntryMutation) AddSignificance(f float64) {
	if m.addsignificance != nil {
		*m.addsignificance += f
	} else {
		m.addsignificance = &f
	}
}

// AddedSignificance returns the value that was added to the "significance" field in this mutation.
func (m *EvolutionEntryMutation) AddedSignificance() (r float64, exists bool) {
	v := m.addsignificance
	if v == nil {
		return
	}
	return *v, true
}

// ResetSignificance resets all changes to the "significance" field.
func (m *EvolutionEntryMutation) ResetSignificance() {
	m.significance = nil
	m.addsignificance = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EvolutionEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvolutionEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EvolutionEntry entity.
// If the EvolutionEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvolutionEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvolutionEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorld clears the "world" edge to the World entity.
func (m *EvolutionEntryMutation) ClearWorld() {
	m.clearedworld = true
	m.clearedFields[evolutionentry.FieldWorldID] = struct{}{}
}

// WorldCleared reports if the "world" edge to the World entity was cleared.
func (m *EvolutionEntryMutation) WorldCleared() bool {
	return m.clearedworld
}

// WorldIDs returns the "world" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorldID instead. It exists only for internal usage by the builders.
func (m *EvolutionEntryMutation) WorldIDs() (ids []string) {
	if id := m.world; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorld resets all changes to the "world" edge.
func (m *EvolutionEntryMutation) ResetWorld() {
	m.world = nil
	m.clearedworld = false
}

// Where appends a list predicates to the EvolutionEntryMutation builder.
func (m *EvolutionEntryMutation) Where(ps ...predicate.EvolutionEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvolutionEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvolutionEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvolutionEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvolutionEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvolutionEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvolutionEntry).
func (m *EvolutionEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvolutionEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.world != nil {
		fields = append(fields, evolutionentry.FieldWorldID)
	}
	if m.entity_id != nil {
		fields = append(fields, evolutionentry.FieldEntityID)
	}
	if m.entity_type != nil {
		fields = append(fields, evolutionentry.FieldEntityType)
	}
	if m.change_type != nil {
		fields = append(fields, evolutionentry.FieldChangeType)
	}
	if m.before_state != nil {
		fields = append(fields, evolutionentry.FieldBeforeState)
	}
	if m.after_state != nil {
		fields = append(fields, evolutionentry.FieldAfterState)
	}
	if m.trigger_event_id != nil {
		fields = append(fields, evolutionentry.FieldTriggerEventID)
	}
	if m.significance != nil {
		fields = append(fields, evolutionentry.FieldSignificance)
	}
	if m.created_at != nil {
		fields = append(fields, evolutionentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvolutionEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evolutionentry.FieldWorldID:
		return m.WorldID()
	case evolutionentry.FieldEntityID:
		return m.EntityID()
	case evolutionentry.FieldEntityType:
		return m.EntityType()
	case evolutionentry.FieldChangeType:
		return m.ChangeType()
	case evolutionentry.FieldBeforeState:
		return m.BeforeState()
	case evolutionentry.FieldAfterState:
		return m.AfterState()
	case evolutionentry.FieldTriggerEventID:
		return m.TriggerEventID()
	case evolutionentry.FieldSignificance:
		return m.Significance()
	case evolutionentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvolutionEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evolutionentry.FieldWorldID:
		return m.OldWorldID(ctx)
	case evolutionentry.FieldEntityID:
		return m.OldEntityID(ctx)
	case evolutionentry.FieldEntityType:
		return m.OldEntityType(ctx)
	case evolutionentry.FieldChangeType:
		return m.OldChangeType(ctx)
	case evolutionentry.FieldBeforeState:
		return m.OldBeforeState(ctx)
	case evolutionentry.FieldAfterState:
		return m.OldAfterState(ctx)
	case evolutionentry.FieldTriggerEventID:
		return m.OldTriggerEventID(ctx)
	case evolutionentry.FieldSignificance:
		return m.OldSignificance(ctx)
	case evolutionentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvolutionEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvolutionEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evolutionentry.FieldWorldID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case evolutionentry.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case evolutionentry.FieldEntityType:
		v, ok := value.(evolutionentry.EntityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case evolutionentry.FieldChangeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeType(v)
		return nil
	case evolutionentry.FieldBeforeState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeforeState(v)
		return nil
	case evolutionentry.FieldAfterState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfterState(v)
		return nil
	case evolutionentry.FieldTriggerEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerEventID(v)
		return nil
	case evolutionentry.FieldSignificance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignificance(v)
		return nil
	case evolutionentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvolutionEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvolutionEntryMutation) AddedFields() []string {
	var fields []string
	if m.addsignificance != nil {
		fields = append(fields, evolutionentry.FieldSignificance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvolutionEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evolutionentry.FieldSignificance:
		return m.AddedSignificance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvolutionEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evolutionentry.FieldSignificance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSignificance(v)
		return nil
	}
	return fmt.Errorf("unknown EvolutionEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvolutionEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvolutionEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvolutionEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EvolutionEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvolutionEntryMutation) ResetField(name string) error {
	switch name {
	case evolutionentry.FieldWorldID:
		m.ResetWorldID()
		return nil
	case evolutionentry.FieldEntityID:
		m.ResetEntityID()
		return nil
	case evolutionentry.FieldEntityType:
		m.ResetEntityType()
		return nil
	case evolutionentry.FieldChangeType:
		m.ResetChangeType()
		return nil
	case evolutionentry.FieldBeforeState:
		m.ResetBeforeState()
		return nil
	case evolutionentry.FieldAfterState:
		m.ResetAfterState()
		return nil
	case evolutionentry.FieldTriggerEventID:
		m.ResetTriggerEventID()
		return nil
	case evolutionentry.FieldSignificance:
		m.ResetSignificance()
		return nil
	case evolutionentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EvolutionEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvolutionEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.world != nil {
		edges = append(edges, evolutionentry.EdgeWorld)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvolutionEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evolutionentry.EdgeWorld:
		if id := m.world; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvolutionEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvolutionEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvolutionEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworld {
		edges = append(edges, evolutionentry.EdgeWorld)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvolutionEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case evolutionentry.EdgeWorld:
		return m.clearedworld
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvolutionEntryMutation) ClearEdge(name string) error {
	switch name {
	case evolutionentry.EdgeWorld:
		m.ClearWorld()
		return nil
	}
	return fmt.Errorf("unknown EvolutionEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvolutionEntryMutation) ResetEdge(name string) error {
	switch name {
	case evolutionentry.EdgeWorld:
		m.ResetWorld()
		return nil
	}
	return fmt.Errorf("unknown EvolutionEntry edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                              Op
	typ                             string
	id                              *string
	brief                           *map[string]interface{}
	production_type                 *string
	genre                           *string
	content_language                *string
	status                          *job.Status
	current_stage                   *int
	addcurrent_stage                *int
	cumulative_cost_usd             *float64
	addcumulative_cost_usd          *float64
	cumulative_prompt_tokens        *int
	addcumulative_prompt_tokens     *int
	cumulative_completion_tokens    *int
	addcumulative_completion_tokens *int
	error_message                   *string
	error_kind                      *string
	error_stage                     *int
	adderror_stage                  *int
	owner                           *string
	pod_id                          *string
	last_heartbeat_at               *time.Time
	created_at                      *time.Time
	started_at                      *time.Time
	completed_at                    *time.Time
	deleted_at                      *time.Time
	clearedFields                   map[string]struct{}
	world                           *string
	clearedworld                    bool
	checkpoints                     map[string]struct{}
	removedcheckpoints              map[string]struct{}
	clearedcheckpoints              bool
	model_calls                     map[string]struct{}
	removedmodel_calls              map[string]struct{}
	clearedmodel_calls              bool
	events                          map[int64]struct{}
	removedevents                   map[int64]struct{}
	clearedevents                   bool
	done                            bool
	oldValue                        func(context.Context) (*Job, error)
	predicates                      []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBrief sets the "brief" field.
func (m *JobMutation) SetBrief(value map[string]interface{}) {
	m.brief = &value
}

// Brief returns the value of the "brief" field in the mutation.
func (m *JobMutation) Brief() (r map[string]interface{}, exists bool) {
	v := m.brief
	if v == nil {
		return
	}
	return *v, true
}

// OldBrief returns the old "brief" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldBrief(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrief is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrief requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrief: %w", err)
	}
	return oldValue.Brief, nil
}

// ResetBrief resets all changes to the "brief" field.
func (m *JobMutation) ResetBrief() {
	m.brief = nil
}

// SetProductionType sets the "production_type" field.
func (m *JobMutation) SetProductionType(s string) {
	m.production_type = &s
}

// ProductionType returns the value of the "production_type" field in the mutation.
func (m *JobMutation) ProductionType() (r string, exists bool) {
	v := m.production_type
	if v == nil {
		return
	}
	return *v, true
}

// OldProductionType returns the old "production_type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldProductionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductionType: %w", err)
	}
	return oldValue.ProductionType, nil
}

// ResetProductionType resets all changes to the "production_type" field.
func (m *JobMutation) ResetProductionType() {
	m.production_type = nil
}

// SetGenre sets the "genre" field.
func (m *JobMutation) SetGenre(s string) {
	m.genre = &s
}

// Genre returns the value of the "genre" field in the mutation.
func (m *JobMutation) Genre() (r string, exists bool) {
	v := m.genre
	if v == nil {
		return
	}
	return *v, true
}

// OldGenre returns the old "genre" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldGenre(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenre: %w", err)
	}
	return oldValue.Genre, nil
}

// ResetGenre resets all changes to the "genre" field.
func (m *JobMutation) ResetGenre() {
	m.genre = nil
}

// SetContentLanguage sets the "content_language" field.
func (m *JobMutation) SetContentLanguage(s string) {
	m.content_language = &s
}

// ContentLanguage returns the value of the "content_language" field in the mutation.
func (m *JobMutation) ContentLanguage() (r string, exists bool) {
	v := m.content_language
	if v == nil {
		return
	}
	return *v, true
}

// OldContentLanguage returns the old "content_language" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldContentLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentLanguage: %w", err)
	}
	return oldValue.ContentLanguage, nil
}

// ResetContentLanguage resets all changes to the "content_language" field.
func (m *JobMutation) ResetContentLanguage() {
	m.content_language = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStage sets the "current_stage" field.
func (m *JobMutation) SetCurrentStage(i int) {
	m.current_stage = &i
	m.addcurrent_stage = nil
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *JobMutation) CurrentStage() (r int, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCurrentStage(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// AddCurrentStage adds i to the "current_stage" field.
func (m *JobMutation) AddCurrentStage(i int) {
	if m.addcurrent_stage != nil {
		*m.addcurrent_stage += i
	} else {
		m.addcurrent_stage = &i
	}
}

// AddedCurrentStage returns the value that was added to the "current_stage" field in this mutation.
func (m *JobMutation) AddedCurrentStage() (r int, exists bool) {
	v := m.addcurrent_stage
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (m *JobMutation) ClearCurrentStage() {
	m.current_stage = nil
	m.addcurrent_stage = nil
	m.clearedFields[job.FieldCurrentStage] = struct{}{}
}

// CurrentStageCleared returns if the "current_stage" field was cleared in this mutation.
func (m *JobMutation) CurrentStageCleared() bool {
	_, ok := m.clearedFields[job.FieldCurrentStage]
	return ok
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *JobMutation) ResetCurrentStage() {
	m.current_stage = nil
	m.addcurrent_stage = nil
	delete(m.clearedFields, job.FieldCurrentStage)
}

// SetCumulativeCostUsd sets the "cumulative_cost_usd" field.
func (m *JobMutation) SetCumulativeCostUsd(f float64) {
	m.cumulative_cost_usd = &f
	m.addcumulative_cost_usd = nil
}

// CumulativeCostUsd returns the value of the "cumulative_cost_usd" field in the mutation.
func (m *JobMutation) CumulativeCostUsd() (r float64, exists bool) {
	v := m.cumulative_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCumulativeCostUsd returns the old "cumulative_cost_usd" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCumulativeCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCumulativeCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCumulativeCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCumulativeCostUsd: %w", err)
	}
	return oldValue.CumulativeCostUsd, nil
}

// AddCumulativeCostUsd adds f to the "cumulative_cost_usd" field.
func (m *JobMutation) AddCumulativeCostUsd(f float64) {
	if m.addcumulative_cost_usd != nil {
		*m.addcumulative_cost_usd += f
	} else {
		m.addcumulative_cost_usd = &f
	}
}

// AddedCumulativeCostUsd returns the value that was added to the "cumulative_cost_usd" field in this mutation.
func (m *JobMutation) AddedCumulativeCostUsd() (r float64, exists bool) {
	v := m.addcumulative_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCumulativeCostUsd resets all changes to the "cumulative_cost_usd" field.
func (m *JobMutation) ResetCumulativeCostUsd() {
	m.cumulative_cost_usd = nil
	m.addcumulative_cost_usd = nil
}

// SetCumulativePromptTokens sets the "cumulative_prompt_tokens" field.
func (m *JobMutation) SetCumulativePromptTokens(i int) {
	m.cumulative_prompt_tokens = &i
	m.addcumulative_prompt_tokens = nil
}

// CumulativePromptTokens returns the value of the "cumulative_prompt_tokens" field in the mutation.
func (m *JobMutation) CumulativePromptTokens() (r int, exists bool) {
	v := m.cumulative_prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCumulativePromptTokens returns the old "cumulative_prompt_tokens" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCumulativePromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCumulativePromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCumulativePromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCumulativePromptTokens: %w", err)
	}
	return oldValue.CumulativePromptTokens, nil
}

// AddCumulativePromptTokens adds i to the "cumulative_prompt_tokens" field.
func (m *JobMutation) AddCumulativePromptTokens(i int) {
	if m.addcumulative_prompt_tokens != nil {
		*m.addcumulative_prompt_tokens += i
	} else {
		m.addcumulative_prompt_tokens = &i
	}
}

// AddedCumulativePromptTokens returns the value that was added to the "cumulative_prompt_tokens" field in this mutation.
func (m *JobMutation) AddedCumulativePromptTokens() (r int, exists bool) {
	v := m.addcumulative_prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCumulativePromptTokens resets all changes to the "cumulative_prompt_tokens" field.
func (m *JobMutation) ResetCumulativePromptTokens() {
	m.cumulative_prompt_tokens = nil
	m.addcumulative_prompt_tokens = nil
}

// SetCumulativeCompletionTokens sets the "cumulative_completion_tokens" field.
func (m *JobMutation) SetCumulativeCompletionTokens(i int) {
	m.cumulative_completion_tokens = &i
	m.addcumulative_completion_tokens = nil
}

// CumulativeCompletionTokens returns the value of the "cumulative_completion_tokens" field in the mutation.
func (m *JobMutation) CumulativeCompletionTokens() (r int, exists bool) {
	v := m.cumulative_completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCumulativeCompletionTokens returns the old "cumulative_completion_tokens" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCumulativeCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCumulativeCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCumulativeCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCumulativeCompletionTokens: %w", err)
	}
	return oldValue.CumulativeCompletionTokens, nil
}

// AddCumulativeCompletionTokens adds i to the "cumulative_completion_tokens" field.
func (m *JobMutation) AddCumulativeCompletionTokens(i int) {
	if m.addcumulative_completion_tokens != nil {
		*m.addcumulative_completion_tokens += i
	} else {
		m.addcumulative_completion_tokens = &i
	}
}

// AddedCumulativeCompletionTokens returns the value that was added to the "cumulative_completion_tokens" field in this mutation.
func (m *JobMutation) AddedCumulativeCompletionTokens() (r int, exists bool) {
	v := m.addcumulative_completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCumulativeCompletionTokens resets all changes to the "cumulative_completion_tokens" field.
func (m *JobMutation) ResetCumulativeCompletionTokens() {
	m.cumulative_completion_tokens = nil
	m.addcumulative_completion_tokens = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetErrorKind sets the "error_kind" field.
func (m *JobMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *JobMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *JobMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[job.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *JobMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *JobMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, job.FieldErrorKind)
}

// SetErrorStage sets the "error_stage" field.
func (m *JobMutation) SetErrorStage(i int) {
	m.error_stage = &i
	m.adderror_stage = nil
}

// ErrorStage returns the value of the "error_stage" field in the mutation.
func (m *JobMutation) ErrorStage() (r int, exists bool) {
	v := m.error_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorStage returns the old "error_stage" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorStage(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorStage: %w", err)
	}
	return oldValue.ErrorStage, nil
}

// AddErrorStage adds i to the "error_stage" field.
func (m *JobMutation) AddErrorStage(i int) {
	if m.adderror_stage != nil {
		*m.adderror_stage += i
	} else {
		m.adderror_stage = &i
	}
}

// AddedErrorStage returns the value that was added to the "error_stage" field in this mutation.
func (m *JobMutation) AddedErrorStage() (r int, exists bool) {
	v := m.adderror_stage
	if v == nil {
		return
	}
	return *v, true
}

// ClearErrorStage clears the value of the "error_stage" field.
func (m *JobMutation) ClearErrorStage() {
	m.error_stage = nil
	m.adderror_stage = nil
	m.clearedFields[job.FieldErrorStage] = struct{}{}
}

// ErrorStageCleared returns if the "error_stage" field was cleared in this mutation.
func (m *JobMutation) ErrorStageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorStage]
	return ok
}

// ResetErrorStage resets all changes to the "error_stage" field.
func (m *JobMutation) ResetErrorStage() {
	m.error_stage = nil
	m.adderror_stage = nil
	delete(m.clearedFields, job.FieldErrorStage)
}

// SetOwner sets the "owner" field.
func (m *JobMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *JobMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldOwner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ClearOwner clears the value of the "owner" field.
func (m *JobMutation) ClearOwner() {
	m.owner = nil
	m.clearedFields[job.FieldOwner] = struct{}{}
}

// OwnerCleared returns if the "owner" field was cleared in this mutation.
func (m *JobMutation) OwnerCleared() bool {
	_, ok := m.clearedFields[job.FieldOwner]
	return ok
}

// ResetOwner resets all changes to the "owner" field.
func (m *JobMutation) ResetOwner() {
	m.owner = nil
	delete(m.clearedFields, job.FieldOwner)
}

// SetPodID sets the "pod_id" field.
func (m *JobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *JobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *JobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[job.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *JobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[job.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *JobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, job.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *JobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *JobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *JobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[job.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *JobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, job.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *JobMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *JobMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *JobMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[job.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *JobMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *JobMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, job.FieldDeletedAt)
}

// SetWorldID sets the "world" edge to the World entity by id.
func (m *JobMutation) SetWorldID(id string) {
	m.world = &id
}

// ClearWorld clears the "world" edge to the World entity.
func (m *JobMutation) ClearWorld() {
	m.clearedworld = true
}

// WorldCleared reports if the "world" edge to the World entity was cleared.
func (m *JobMutation) WorldCleared() bool {
	return m.clearedworld
}

// WorldID returns the "world" edge ID in the mutation.
func (m *JobMutation) WorldID() (id string, exists bool) {
	if m.world != nil {
		return *m.world, true
	}
	return
}

// WorldIDs returns the "world" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorldID instead. It exists only for internal usage by the builders.
func (m *JobMutation) WorldIDs() (ids []string) {
	if id := m.world; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorld resets all changes to the "world" edge.
func (m *JobMutation) ResetWorld() {
	m.world = nil
	m.clearedworld = false
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *JobMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *JobMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *JobMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *JobMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *JobMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *JobMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *JobMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// AddModelCallIDs adds the "model_calls" edge to the ModelCall entity by ids.
func (m *JobMutation) AddModelCallIDs(ids ...string) {
	if m.model_calls == nil {
		m.model_calls = make(map[string]struct{})
	}
	for i := range ids {
		m.model_calls[ids[i]] = struct{}{}
	}
}

// ClearModelCalls clears the "model_calls" edge to the ModelCall entity.
func (m *JobMutation) ClearModelCalls() {
	m.clearedmodel_calls = true
}

// ModelCallsCleared reports if the "model_calls" edge to the ModelCall entity was cleared.
func (m *JobMutation) ModelCallsCleared() bool {
	return m.clearedmodel_calls
}

// RemoveModelCallIDs removes the "model_calls" edge to the ModelCall entity by IDs.
func (m *JobMutation) RemoveModelCallIDs(ids ...string) {
	if m.removedmodel_calls == nil {
		m.removedmodel_calls = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.model_calls, ids[i])
		m.removedmodel_calls[ids[i]] = struct{}{}
	}
}

// RemovedModelCalls returns the removed IDs of the "model_calls" edge to the ModelCall entity.
func (m *JobMutation) RemovedModelCallsIDs() (ids []string) {
	for id := range m.removedmodel_calls {
		ids = append(ids, id)
	}
	return
}

// ModelCallsIDs returns the "model_calls" edge IDs in the mutation.
func (m *JobMutation) ModelCallsIDs() (ids []string) {
	for id := range m.model_calls {
		ids = append(ids, id)
	}
	return
}

// ResetModelCalls resets all changes to the "model_calls" edge.
func (m *JobMutation) ResetModelCalls() {
	m.model_calls = nil
	m.clearedmodel_calls = false
	m.removedmodel_calls = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *JobMutation) AddEventIDs(ids ...int64) {
	if m.events == nil {
		m.events = make(map[int64]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *JobMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *JobMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *JobMutation) RemoveEventIDs(ids ...int64) {
	if m.removedevents == nil {
		m.removedevents = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *JobMutation) RemovedEventsIDs() (ids []int64) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *JobMutation) EventsIDs() (ids []int64) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *JobMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.brief != nil {
		fields = append(fields, job.FieldBrief)
	}
	if m.production_type != nil {
		fields = append(fields, job.FieldProductionType)
	}
	if m.genre != nil {
		fields = append(fields, job.FieldGenre)
	}
	if m.content_language != nil {
		fields = append(fields, job.FieldContentLanguage)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.current_stage != nil {
		fields = append(fields, job.FieldCurrentStage)
	}
	if m.cumulative_cost_usd != nil {
		fields = append(fields, job.FieldCumulativeCostUsd)
	}
	if m.cumulative_prompt_tokens != nil {
		fields = append(fields, job.FieldCumulativePromptTokens)
	}
	if m.cumulative_completion_tokens != nil {
		fields = append(fields, job.FieldCumulativeCompletionTokens)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.error_kind != nil {
		fields = append(fields, job.FieldErrorKind)
	}
	if m.error_stage != nil {
		fields = append(fields, job.FieldErrorStage)
	}
	if m.owner != nil {
		fields = append(fields, job.FieldOwner)
	}
	if m.pod_id != nil {
		fields = append(fields, job.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, job.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldBrief:
		return m.Brief()
	case job.FieldProductionType:
		return m.ProductionType()
	case job.FieldGenre:
		return m.Genre()
	case job.FieldContentLanguage:
		return m.ContentLanguage()
	case job.FieldStatus:
		return m.Status()
	case job.FieldCurrentStage:
		return m.CurrentStage()
	case job.FieldCumulativeCostUsd:
		return m.CumulativeCostUsd()
	case job.FieldCumulativePromptTokens:
		return m.CumulativePromptTokens()
	case job.FieldCumulativeCompletionTokens:
		return m.CumulativeCompletionTokens()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldErrorKind:
		return m.ErrorKind()
	case job.FieldErrorStage:
		return m.ErrorStage()
	case job.FieldOwner:
		return m.Owner()
	case job.FieldPodID:
		return m.PodID()
	case job.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	case job.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldBrief:
		return m.OldBrief(ctx)
	case job.FieldProductionType:
		return m.OldProductionType(ctx)
	case job.FieldGenre:
		return m.OldGenre(ctx)
	case job.FieldContentLanguage:
		return m.OldContentLanguage(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case job.FieldCumulativeCostUsd:
		return m.OldCumulativeCostUsd(ctx)
	case job.FieldCumulativePromptTokens:
		return m.OldCumulativePromptTokens(ctx)
	case job.FieldCumulativeCompletionTokens:
		return m.OldCumulativeCompletionTokens(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case job.FieldErrorStage:
		return m.OldErrorStage(ctx)
	case job.FieldOwner:
		return m.OldOwner(ctx)
	case job.FieldPodID:
		return m.OldPodID(ctx)
	case job.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case job.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldBrief:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrief(v)
		return nil
	case job.FieldProductionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductionType(v)
		return nil
	case job.FieldGenre:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenre(v)
		return nil
	case job.FieldContentLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentLanguage(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldCurrentStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case job.FieldCumulativeCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCumulativeCostUsd(v)
		return nil
	case job.FieldCumulativePromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCumulativePromptTokens(v)
		return nil
	case job.FieldCumulativeCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCumulativeCompletionTokens(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case job.FieldErrorStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorStage(v)
		return nil
	case job.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case job.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case job.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case job.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_stage != nil {
		fields = append(fields, job.FieldCurrentStage)
	}
	if m.addcumulative_cost_usd != nil {
		fields = append(fields, job.FieldCumulativeCostUsd)
	}
	if m.addcumulative_prompt_tokens != nil {
		fields = append(fields, job.FieldCumulativePromptTokens)
	}
	if m.addcumulative_completion_tokens != nil {
		fields = append(fields, job.FieldCumulativeCompletionTokens)
	}
	if m.adderror_stage != nil {
		fields = append(fields, job.FieldErrorStage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldCurrentStage:
		return m.AddedCurrentStage()
	case job.FieldCumulativeCostUsd:
		return m.AddedCumulativeCostUsd()
	case job.FieldCumulativePromptTokens:
		return m.AddedCumulativePromptTokens()
	case job.FieldCumulativeCompletionTokens:
		return m.AddedCumulativeCompletionTokens()
	case job.FieldErrorStage:
		return m.AddedErrorStage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldCurrentStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStage(v)
		return nil
	case job.FieldCumulativeCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCumulativeCostUsd(v)
		return nil
	case job.FieldCumulativePromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCumulativePromptTokens(v)
		return nil
	case job.FieldCumulativeCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCumulativeCompletionTokens(v)
		return nil
	case job.FieldErrorStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorStage(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldCurrentStage) {
		fields = append(fields, job.FieldCurrentStage)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.FieldCleared(job.FieldErrorKind) {
		fields = append(fields, job.FieldErrorKind)
	}
	if m.FieldCleared(job.FieldErrorStage) {
		fields = append(fields, job.FieldErrorStage)
	}
	if m.FieldCleared(job.FieldOwner) {
		fields = append(fields, job.FieldOwner)
	}
	if m.FieldCleared(job.FieldPodID) {
		fields = append(fields, job.FieldPodID)
	}
	if m.FieldCleared(job.FieldLastHeartbeatAt) {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.FieldCleared(job.FieldDeletedAt) {
		fields = append(fields, job.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldCurrentStage:
		m.ClearCurrentStage()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case job.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case job.FieldErrorStage:
		m.ClearErrorStage()
		return nil
	case job.FieldOwner:
		m.ClearOwner()
		return nil
	case job.FieldPodID:
		m.ClearPodID()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case job.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldBrief:
		m.ResetBrief()
		return nil
	case job.FieldProductionType:
		m.ResetProductionType()
		return nil
	case job.FieldGenre:
		m.ResetGenre()
		return nil
	case job.FieldContentLanguage:
		m.ResetContentLanguage()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case job.FieldCumulativeCostUsd:
		m.ResetCumulativeCostUsd()
		return nil
	case job.FieldCumulativePromptTokens:
		m.ResetCumulativePromptTokens()
		return nil
	case job.FieldCumulativeCompletionTokens:
		m.ResetCumulativeCompletionTokens()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case job.FieldErrorStage:
		m.ResetErrorStage()
		return nil
	case job.FieldOwner:
		m.ResetOwner()
		return nil
	case job.FieldPodID:
		m.ResetPodID()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case job.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.world != nil {
		edges = append(edges, job.EdgeWorld)
	}
	if m.checkpoints != nil {
		edges = append(edges, job.EdgeCheckpoints)
	}
	if m.model_calls != nil {
		edges = append(edges, job.EdgeModelCalls)
	}
	if m.events != nil {
		edges = append(edges, job.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeWorld:
		if id := m.world; id != nil {
			return []ent.Value{*id}
		}
	case job.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeModelCalls:
		ids := make([]ent.Value, 0, len(m.model_calls))
		for id := range m.model_calls {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedcheckpoints != nil {
		edges = append(edges, job.EdgeCheckpoints)
	}
	if m.removedmodel_calls != nil {
		edges = append(edges, job.EdgeModelCalls)
	}
	if m.removedevents != nil {
		edges = append(edges, job.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeModelCalls:
		ids := make([]ent.Value, 0, len(m.removedmodel_calls))
		for id := range m.removedmodel_calls {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedworld {
		edges = append(edges, job.EdgeWorld)
	}
	if m.clearedcheckpoints {
		edges = append(edges, job.EdgeCheckpoints)
	}
	if m.clearedmodel_calls {
		edges = append(edges, job.EdgeModelCalls)
	}
	if m.clearedevents {
		edges = append(edges, job.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeWorld:
		return m.clearedworld
	case job.EdgeCheckpoints:
		return m.clearedcheckpoints
	case job.EdgeModelCalls:
		return m.clearedmodel_calls
	case job.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeWorld:
		m.ClearWorld()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeWorld:
		m.ResetWorld()
		return nil
	case job.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	case job.EdgeModelCalls:
		m.ResetModelCalls()
		return nil
	case job.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// ModelCallMutation represents an operation that mutates the ModelCall nodes in the graph.
type ModelCallMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	stage                *int
	addstage             *int
	attempt              *int
	addattempt           *int
	provider             *string
	model_id             *string
	tier                 *string
	prompt_tokens        *int
	addprompt_tokens     *int
	completion_tokens    *int
	addcompletion_tokens *int
	usd_cost             *float64
	addusd_cost          *float64
	duration_ms          *int
	addduration_ms       *int
	error_class          *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	job                  *string
	clearedjob           bool
	done                 bool
	oldValue             func(context.Context) (*ModelCall, error)
	predicates           []predicate.ModelCall
}

var _ ent.Mutation = (*ModelCallMutation)(nil)

// modelcallOption allows management of the mutation configuration using functional options.
type modelcallOption func(*ModelCallMutation)

// newModelCallMutation creates new mutation for the ModelCall entity.
func newModelCallMutation(c config, op Op, opts ...modelcallOption) *ModelCallMutation {
	m := &ModelCallMutation{
		config:        c,
		op:            op,
		typ:           TypeModelCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelCallID sets the ID field of the mutation.
func withModelCallID(id string) modelcallOption {
	return func(m *ModelCallMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelCall
		)
		m.oldValue = func(ctx context.Context) (*ModelCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelCall sets the old ModelCall of the mutation.
func withModelCall(node *ModelCall) modelcallOption {
	return func(m *ModelCallMutation) {
		m.oldValue = func(context.Context) (*ModelCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelCall entities.
func (m *ModelCallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelCallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelCallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ModelCallMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ModelCallMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ModelCallMutation) ResetJobID() {
	m.job = nil
}

// SetStage sets the "stage" field.
func (m *ModelCallMutation) SetStage(i int) {
	m.stage = &i
	m.addstage = nil
}

// Stage returns the value of the "stage" field in the mutation.
func (m *ModelCallMutation) Stage() (r int, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldStage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// AddStage adds i to the "stage" field.
func (m *ModelCallMutation) AddStage(i int) {
	if m.addstage != nil {
		*m.addstage += i
	} else {
		m.addstage = &i
	}
}

// AddedStage returns the value that was added to the "stage" field in this mutation.
func (m *ModelCallMutation) AddedStage() (r int, exists bool) {
	v := m.addstage
	if v == nil {
		return
	}
	return *v, true
}

// ResetStage resets all changes to the "stage" field.
func (m *ModelCallMutation) ResetStage() {
	m.stage = nil
	m.addstage = nil
}

// SetAttempt sets the "attempt" field.
func (m *ModelCallMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *ModelCallMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *ModelCallMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *ModelCallMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *ModelCallMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetProvider sets the "provider" field.
func (m *ModelCallMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ModelCallMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ModelCallMutation) ResetProvider() {
	m.provider = nil
}

// SetModelID sets the "model_id" field.
func (m *ModelCallMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *ModelCallMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ResetModelID resets all changes to the "model_id" field.
func (m *ModelCallMutation) ResetModelID() {
	m.model_id = nil
}

// SetTier sets the "tier" field.
func (m *ModelCallMutation) SetTier(s string) {
	m.tier = &s
}

// Tier returns the value of the "tier" field in the mutation.
func (m *ModelCallMutation) Tier() (r string, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *ModelCallMutation) ResetTier() {
	m.tier = nil
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *ModelCallMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *ModelCallMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *ModelCallMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *ModelCallMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *ModelCallMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *ModelCallMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *ModelCallMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *ModelCallMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *ModelCallMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *ModelCallMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetUsdCost sets the "usd_cost" field.
func (m *ModelCallMutation) SetUsdCost(f float64) {
	m.usd_cost = &f
	m.addusd_cost = nil
}

// UsdCost returns the value of the "usd_cost" field in the mutation.
func (m *ModelCallMutation) UsdCost() (r float64, exists bool) {
	v := m.usd_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldUsdCost returns the old "usd_cost" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldUsdCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsdCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsdCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsdCost: %w", err)
	}
	return oldValue.UsdCost, nil
}

// AddUsdCost adds f to the "usd_cost" field.
func (m *ModelCallMutation) AddUsdCost(f float64) {
	if m.addusd_cost != nil {
		*m.addusd_cost += f
	} else {
		m.addusd_cost = &f
	}
}

// AddedUsdCost returns the value that was added to the "usd_cost" field in this mutation.
func (m *ModelCallMutation) AddedUsdCost() (r float64, exists bool) {
	v := m.addusd_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsdCost resets all changes to the "usd_cost" field.
func (m *ModelCallMutation) ResetUsdCost() {
	m.usd_cost = nil
	m.addusd_cost = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *ModelCallMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ModelCallMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ModelCallMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ModelCallMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ModelCallMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetErrorClass sets the "error_class" field.
func (m *ModelCallMutation) SetErrorClass(s string) {
	m.error_class = &s
}

// ErrorClass returns the value of the "error_class" field in the mutation.
func (m *ModelCallMutation) ErrorClass() (r string, exists bool) {
	v := m.error_class
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorClass returns the old "error_class" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldErrorClass(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorClass: %w", err)
	}
	return oldValue.ErrorClass, nil
}

// ClearErrorClass clears the value of the "error_class" field.
func (m *ModelCallMutation) ClearErrorClass() {
	m.error_class = nil
	m.clearedFields[modelcall.FieldErrorClass] = struct{}{}
}

// ErrorClassCleared returns if the "error_class" field was cleared in this mutation.
func (m *ModelCallMutation) ErrorClassCleared() bool {
	_, ok := m.clearedFields[modelcall.FieldErrorClass]
	return ok
}

// ResetErrorClass resets all changes to the "error_class" field.
func (m *ModelCallMutation) ResetErrorClass() {
	m.error_class = nil
	delete(m.clearedFields, modelcall.FieldErrorClass)
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelCallMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelCallMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelCallMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *ModelCallMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[modelcall.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *ModelCallMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *ModelCallMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *ModelCallMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the ModelCallMutation builder.
func (m *ModelCallMutation) Where(ps ...predicate.ModelCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelCall).
func (m *ModelCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelCallMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.job != nil {
		fields = append(fields, modelcall.FieldJobID)
	}
	if m.stage != nil {
		fields = append(fields, modelcall.FieldStage)
	}
	if m.attempt != nil {
		fields = append(fields, modelcall.FieldAttempt)
	}
	if m.provider != nil {
		fields = append(fields, modelcall.FieldProvider)
	}
	if m.model_id != nil {
		fields = append(fields, modelcall.FieldModelID)
	}
	if m.tier != nil {
		fields = append(fields, modelcall.FieldTier)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, modelcall.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, modelcall.FieldCompletionTokens)
	}
	if m.usd_cost != nil {
		fields = append(fields, modelcall.FieldUsdCost)
	}
	if m.duration_ms != nil {
		fields = append(fields, modelcall.FieldDurationMs)
	}
	if m.error_class != nil {
		fields = append(fields, modelcall.FieldErrorClass)
	}
	if m.created_at != nil {
		fields = append(fields, modelcall.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelcall.FieldJobID:
		return m.JobID()
	case modelcall.FieldStage:
		return m.Stage()
	case modelcall.FieldAttempt:
		return m.Attempt()
	case modelcall.FieldProvider:
		return m.Provider()
	case modelcall.FieldModelID:
		return m.ModelID()
	case modelcall.FieldTier:
		return m.Tier()
	case modelcall.FieldPromptTokens:
		return m.PromptTokens()
	case modelcall.FieldCompletionTokens:
		return m.CompletionTokens()
	case modelcall.FieldUsdCost:
		return m.UsdCost()
	case modelcall.FieldDurationMs:
		return m.DurationMs()
	case modelcall.FieldErrorClass:
		return m.ErrorClass()
	case modelcall.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelcall.FieldJobID:
		return m.OldJobID(ctx)
	case modelcall.FieldStage:
		return m.OldStage(ctx)
	case modelcall.FieldAttempt:
		return m.OldAttempt(ctx)
	case modelcall.FieldProvider:
		return m.OldProvider(ctx)
	case modelcall.FieldModelID:
		return m.OldModelID(ctx)
	case modelcall.FieldTier:
		return m.OldTier(ctx)
	case modelcall.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case modelcall.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case modelcall.FieldUsdCost:
		return m.OldUsdCost(ctx)
	case modelcall.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case modelcall.FieldErrorClass:
		return m.OldErrorClass(ctx)
	case modelcall.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelcall.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case modelcall.FieldStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case modelcall.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case modelcall.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case modelcall.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case modelcall.FieldTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case modelcall.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case modelcall.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case modelcall.FieldUsdCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsdCost(v)
		return nil
	case modelcall.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case modelcall.FieldErrorClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorClass(v)
		return nil
	case modelcall.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelCallMutation) AddedFields() []string {
	var fields []string
	if m.addstage != nil {
		fields = append(fields, modelcall.FieldStage)
	}
	if m.addattempt != nil {
		fields = append(fields, modelcall.FieldAttempt)
	}
	if m.addprompt_tokens != nil {
		fields = append(fields, modelcall.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, modelcall.FieldCompletionTokens)
	}
	if m.addusd_cost != nil {
		fields = append(fields, modelcall.FieldUsdCost)
	}
	if m.addduration_ms != nil {
		fields = append(fields, modelcall.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelCallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modelcall.FieldStage:
		return m.AddedStage()
	case modelcall.FieldAttempt:
		return m.AddedAttempt()
	case modelcall.FieldPromptTokens:
		return m.AddedPromptTokens()
	case modelcall.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case modelcall.FieldUsdCost:
		return m.AddedUsdCost()
	case modelcall.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modelcall.FieldStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStage(v)
		return nil
	case modelcall.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case modelcall.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case modelcall.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case modelcall.FieldUsdCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsdCost(v)
		return nil
	case modelcall.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ModelCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modelcall.FieldErrorClass) {
		fields = append(fields, modelcall.FieldErrorClass)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelCallMutation) ClearField(name string) error {
	switch name {
	case modelcall.FieldErrorClass:
		m.ClearErrorClass()
		return nil
	}
	return fmt.Errorf("unknown ModelCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelCallMutation) ResetField(name string) error {
	switch name {
	case modelcall.FieldJobID:
		m.ResetJobID()
		return nil
	case modelcall.FieldStage:
		m.ResetStage()
		return nil
	case modelcall.FieldAttempt:
		m.ResetAttempt()
		return nil
	case modelcall.FieldProvider:
		m.ResetProvider()
		return nil
	case modelcall.FieldModelID:
		m.ResetModelID()
		return nil
	case modelcall.FieldTier:
		m.ResetTier()
		return nil
	case modelcall.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case modelcall.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case modelcall.FieldUsdCost:
		m.ResetUsdCost()
		return nil
	case modelcall.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case modelcall.FieldErrorClass:
		m.ResetErrorClass()
		return nil
	case modelcall.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, modelcall.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelCallMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case modelcall.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, modelcall.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelCallMutation) EdgeCleared(name string) bool {
	switch name {
	case modelcall.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelCallMutation) ClearEdge(name string) error {
	switch name {
	case modelcall.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown ModelCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelCallMutation) ResetEdge(name string) error {
	switch name {
	case modelcall.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown ModelCall edge %s", name)
}

// MotifMutation represents an operation that mutates the Motif nodes in the graph.
type MotifMutation struct {
	config
	op                Op
	typ               string
	id                *string
	name              *string
	description       *string
	occurrences       *[]string
	appendoccurrences []string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	world             *string
	clearedworld      bool
	done              bool
	oldValue          func(context.Context) (*Motif, error)
	predicates        []predicate.Motif
}

var _ ent.Mutation = (*MotifMutation)(nil)

// motifOption allows management of the mutation configuration using functional options.
type motifOption func(*MotifMutation)

// newMotifMutation creates new mutation for the Motif entity.
func newMotifMutation(c config, op Op, opts ...motifOption) *MotifMutation {
	m := &MotifMutation{
		config:        c,
		op:            op,
		typ:           TypeMotif,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMotifID sets the ID field of the mutation.
func withMotifID(id string) motifOption {
	return func(m *MotifMutation) {
		var (
			err   error
			once  sync.Once
			value *Motif
		)
		m.oldValue = func(ctx context.Context) (*Motif, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Motif.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMotif sets the old Motif of the mutation.
func withMotif(node *Motif) motifOption {
	return func(m *MotifMutation) {
		m.oldValue = func(context.Context) (*Motif, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MotifMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MotifMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Motif entities.
func (m *MotifMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MotifMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MotifMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Motif.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorldID sets the "world_id" field.
func (m *MotifMutation) SetWorldID(s string) {
	m.world = &s
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *MotifMutation) WorldID() (r string, exists bool) {
	v := m.world
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the Motif entity.
// If the Motif object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MotifMutation) OldWorldID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *MotifMutation) ResetWorldID() {
	m.world = nil
}

// SetName sets the "name" field.
func (m *MotifMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MotifMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Motif entity.
// If the Motif object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MotifMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MotifMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *MotifMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MotifMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Motif entity.
// If the Motif object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MotifMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *MotifMutation) ResetDescription() {
	m.description = nil
}

// SetOccurrences sets the "occurrences" field.
func (m *MotifMutation) SetOccurrences(s []string) {
	m.occurrences = &s
	m.appendoccurrences = nil
}

// Occurrences returns the value of the "occurrences" field in the mutation.
func (m *MotifMutation) Occurrences() (r []string, exists bool) {
	v := m.occurrences
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurrences returns the old "occurrences" field's value of the Motif entity.
// If the Motif object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MotifMutation) OldOccurrences(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurrences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurrences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurrences: %w", err)
	}
	return oldValue.Occurrences, nil
}

// AppendOccurrences adds s to the "occurrences" field.
func (m *MotifMutation) AppendOccurrences(s []string) {
	m.appendoccurrences = append(m.appendoccurrences, s...)
}

// AppendedOccurrences returns the list of values that were appended to the "occurrences" field in this mutation.
func (m *MotifMutation) AppendedOccurrences() ([]string, bool) {
	if len(m.appendoccurrences) == 0 {
		return nil, false
	}
	return m.appendoccurrences, true
}

// ResetOccurrences resets all changes to the "occurrences" field.
func (m *MotifMutation) ResetOccurrences() {
	m.occurrences = nil
	m.appendoccurrences = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MotifMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MotifMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Motif entity.
// If the Motif object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MotifMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MotifMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorld clears the "world" edge to the World entity.
func (m *MotifMutation) ClearWorld() {
	m.clearedworld = true
	m.clearedFields[motif.FieldWorldID] = struct{}{}
}

// WorldCleared reports if the "world" edge to the World entity was cleared.
func (m *MotifMutation) WorldCleared() bool {
	return m.clearedworld
}

// WorldIDs returns the "world" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorldID instead. It exists only for internal usage by the builders.
func (m *MotifMutation) WorldIDs() (ids []string) {
	if id := m.world; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorld resets all changes to the "world" edge.
func (m *MotifMutation) ResetWorld() {
	m.world = nil
	m.clearedworld = false
}

// Where appends a list predicates to the MotifMutation builder.
func (m *MotifMutation) Where(ps ...predicate.Motif) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MotifMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MotifMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Motif, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MotifMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MotifMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Motif).
func (m *MotifMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MotifMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.world != nil {
		fields = append(fields, motif.FieldWorldID)
	}
	if m.name != nil {
		fields = append(fields, motif.FieldName)
	}
	if m.description != nil {
		fields = append(fields, motif.FieldDescription)
	}
	if m.occurrences != nil {
		fields = append(fields, motif.FieldOccurrences)
	}
	if m.created_at != nil {
		fields = append(fields, motif.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MotifMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case motif.FieldWorldID:
		return m.WorldID()
	case motif.FieldName:
		return m.Name()
	case motif.FieldDescription:
		return m.Description()
	case motif.FieldOccurrences:
		return m.Occurrences()
	case motif.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MotifMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case motif.FieldWorldID:
		return m.OldWorldID(ctx)
	case motif.FieldName:
		return m.OldName(ctx)
	case motif.FieldDescription:
		return m.OldDescription(ctx)
	case motif.FieldOccurrences:
		return m.OldOccurrences(ctx)
	case motif.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Motif field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MotifMutation) SetField(name string, value ent.Value) error {
	switch name {
	case motif.FieldWorldID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case motif.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case motif.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case motif.FieldOccurrences:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurrences(v)
		return nil
	case motif.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Motif field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MotifMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MotifMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MotifMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Motif numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MotifMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MotifMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MotifMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Motif nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MotifMutation) ResetField(name string) error {
	switch name {
	case motif.FieldWorldID:
		m.ResetWorldID()
		return nil
	case motif.FieldName:
		m.ResetName()
		return nil
	case motif.FieldDescription:
		m.ResetDescription()
		return nil
	case motif.FieldOccurrences:
		m.ResetOccurrences()
		return nil
	case motif.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Motif field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MotifMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.world != nil {
		edges = append(edges, motif.EdgeWorld)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MotifMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case motif.EdgeWorld:
		if id := m.world; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MotifMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MotifMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MotifMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworld {
		edges = append(edges, motif.EdgeWorld)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MotifMutation) EdgeCleared(name string) bool {
	switch name {
	case motif.EdgeWorld:
		return m.clearedworld
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MotifMutation) ClearEdge(name string) error {
	switch name {
	case motif.EdgeWorld:
		m.ClearWorld()
		return nil
	}
	return fmt.Errorf("unknown Motif unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MotifMutation) ResetEdge(name string) error {
	switch name {
	case motif.EdgeWorld:
		m.ResetWorld()
		return nil
	}
	return fmt.Errorf("unknown Motif edge %s", name)
}

// RelationshipMutation represents an operation that mutates the Relationship nodes in the graph.
type RelationshipMutation struct {
	config
	op                Op
	typ               string
	id                *string
	from_character_id *string
	to_character_id   *string
	kind              *string
	weight            *float64
	addweight         *float64
	created_at        *time.Time
	clearedFields     map[string]struct{}
	world             *string
	clearedworld      bool
	done              bool
	oldValue          func(context.Context) (*Relationship, error)
	predicates        []predicate.Relationship
}

var _ ent.Mutation = (*RelationshipMutation)(nil)

// relationshipOption allows management of the mutation configuration using functional options.
type relationshipOption func(*RelationshipMutation)

// newRelationshipMutation creates new mutation for the Relationship entity.
func newRelationshipMutation(c config, op Op, opts ...relationshipOption) *RelationshipMutation {
	m := &RelationshipMutation{
		config:        c,
		op:            op,
		typ:           TypeRelationship,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRelationshipID sets the ID field of the mutation.
func withRelationshipID(id string) relationshipOption {
	return func(m *RelationshipMutation) {
		var (
			err   error
			once  sync.Once
			value *Relationship
		)
		m.oldValue = func(ctx context.Context) (*Relationship, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Relationship.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRelationship sets the old Relationship of the mutation.
func withRelationship(node *Relationship) relationshipOption {
	return func(m *RelationshipMutation) {
		m.oldValue = func(context.Context) (*Relationship, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RelationshipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RelationshipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Relationship entities.
func (m *RelationshipMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RelationshipMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RelationshipMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Relationship.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorldID sets the "world_id" field.
func (m *RelationshipMutation) SetWorldID(s string) {
	m.world = &s
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *RelationshipMutation) WorldID() (r string, exists bool) {
	v := m.world
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldWorldID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *RelationshipMutation) ResetWorldID() {
	m.world = nil
}

// SetFromCharacterID sets the "from_character_id" field.
func (m *RelationshipMutation) SetFromCharacterID(s string) {
	m.from_character_id = &s
}

// FromCharacterID returns the value of the "from_character_id" field in the mutation.
func (m *RelationshipMutation) FromCharacterID() (r string, exists bool) {
	v := m.from_character_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFromCharacterID returns the old "from_character_id" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldFromCharacterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromCharacterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromCharacterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromCharacterID: %w", err)
	}
	return oldValue.FromCharacterID, nil
}

// ResetFromCharacterID resets all changes to the "from_character_id" field.
func (m *RelationshipMutation) ResetFromCharacterID() {
	m.from_character_id = nil
}

// SetToCharacterID sets the "to_character_id" field.
func (m *RelationshipMutation) SetToCharacterID(s string) {
	m.to_character_id = &s
}

// ToCharacterID returns the value of the "to_character_id" field in the mutation.
func (m *RelationshipMutation) ToCharacterID() (r string, exists bool) {
	v := m.to_character_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToCharacterID returns the old "to_character_id" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldToCharacterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToCharacterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToCharacterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToCharacterID: %w", err)
	}
	return oldValue.ToCharacterID, nil
}

// ResetToCharacterID resets all changes to the "to_character_id" field.
func (m *RelationshipMutation) ResetToCharacterID() {
	m.to_character_id = nil
}

// SetKind sets the "kind" field.
func (m *RelationshipMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *RelationshipMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *RelationshipMutation) ResetKind() {
	m.kind = nil
}

// SetWeight sets the "weight" field.
func (m *RelationshipMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *RelationshipMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *RelationshipMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *RelationshipMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *RelationshipMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RelationshipMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RelationshipMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RelationshipMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorld clears the "world" edge to the World entity.
func (m *RelationshipMutation) ClearWorld() {
	m.clearedworld = true
	m.clearedFields[relationship.FieldWorldID] = struct{}{}
}

// WorldCleared reports if the "world" edge to the World entity was cleared.
func (m *RelationshipMutation) WorldCleared() bool {
	return m.clearedworld
}

// WorldIDs returns the "world" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorldID instead. It exists only for internal usage by the builders.
func (m *RelationshipMutation) WorldIDs() (ids []string) {
	if id := m.world; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorld resets all changes to the "world" edge.
func (m *RelationshipMutation) ResetWorld() {
	m.world = nil
	m.clearedworld = false
}

// Where appends a list predicates to the RelationshipMutation builder.
func (m *RelationshipMutation) Where(ps ...predicate.Relationship) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RelationshipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RelationshipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Relationship, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RelationshipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RelationshipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Relationship).
func (m *RelationshipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RelationshipMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.world != nil {
		fields = append(fields, relationship.FieldWorldID)
	}
	if m.from_character_id != nil {
		fields = append(fields, relationship.FieldFromCharacterID)
	}
	if m.to_character_id != nil {
		fields = append(fields, relationship.FieldToCharacterID)
	}
	if m.kind != nil {
		fields = append(fields, relationship.FieldKind)
	}
	if m.weight != nil {
		fields = append(fields, relationship.FieldWeight)
	}
	if m.created_at != nil {
		fields = append(fields, relationship.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RelationshipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case relationship.FieldWorldID:
		return m.WorldID()
	case relationship.FieldFromCharacterID:
		return m.FromCharacterID()
	case relationship.FieldToCharacterID:
		return m.ToCharacterID()
	case relationship.FieldKind:
		return m.Kind()
	case relationship.FieldWeight:
		return m.Weight()
	case relationship.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RelationshipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case relationship.FieldWorldID:
		return m.OldWorldID(ctx)
	case relationship.FieldFromCharacterID:
		return m.OldFromCharacterID(ctx)
	case relationship.FieldToCharacterID:
		return m.OldToCharacterID(ctx)
	case relationship.FieldKind:
		return m.OldKind(ctx)
	case relationship.FieldWeight:
		return m.OldWeight(ctx)
	case relationship.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Relationship field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RelationshipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case relationship.FieldWorldID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case relationship.FieldFromCharacterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromCharacterID(v)
		return nil
	case relationship.FieldToCharacterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToCharacterID(v)
		return nil
	case relationship.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case relationship.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case relationship.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Relationship field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RelationshipMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, relationship.FieldWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RelationshipMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case relationship.FieldWeight:
		return m.AddedWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RelationshipMutation) AddField(name string, value ent.Value) error {
	switch name {
	case relationship.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	}
	return fmt.Errorf("unknown Relationship numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RelationshipMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RelationshipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RelationshipMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Relationship nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RelationshipMutation) ResetField(name string) error {
	switch name {
	case relationship.FieldWorldID:
		m.ResetWorldID()
		return nil
	case relationship.FieldFromCharacterID:
		m.ResetFromCharacterID()
		return nil
	case relationship.FieldToCharacterID:
		m.ResetToCharacterID()
		return nil
	case relationship.FieldKind:
		m.ResetKind()
		return nil
	case relationship.FieldWeight:
		m.ResetWeight()
		return nil
	case relationship.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Relationship field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RelationshipMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.world != nil {
		edges = append(edges, relationship.EdgeWorld)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RelationshipMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case relationship.EdgeWorld:
		if id := m.world; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RelationshipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RelationshipMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RelationshipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworld {
		edges = append(edges, relationship.EdgeWorld)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RelationshipMutation) EdgeCleared(name string) bool {
	switch name {
	case relationship.EdgeWorld:
		return m.clearedworld
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RelationshipMutation) ClearEdge(name string) error {
	switch name {
	case relationship.EdgeWorld:
		m.ClearWorld()
		return nil
	}
	return fmt.Errorf("unknown Relationship unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RelationshipMutation) ResetEdge(name string) error {
	switch name {
	case relationship.EdgeWorld:
		m.ResetWorld()
		return nil
	}
	return fmt.Errorf("unknown Relationship edge %s", name)
}

// StoryEventMutation represents an operation that mutates the StoryEvent nodes in the graph.
type StoryEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	participant_ids       *[]string
	appendparticipant_ids []string
	location              *string
	description           *string
	consequences          *[]string
	appendconsequences    []string
	story_time            *int
	addstory_time         *int
	created_at            *time.Time
	clearedFields         map[string]struct{}
	world                 *string
	clearedworld          bool
	done                  bool
	oldValue              func(context.Context) (*StoryEvent, error)
	predicates            []predicate.StoryEvent
}

var _ ent.Mutation = (*StoryEventMutation)(nil)

// storyeventOption allows management of the mutation configuration using functional options.
type storyeventOption func(*StoryEventMutation)

// newStoryEventMutation creates new mutation for the StoryEvent entity.
func newStoryEventMutation(c config, op Op, opts ...storyeventOption) *StoryEventMutation {
	m := &StoryEventMutation{
		config:        c,
		op:            op,
		typ:           TypeStoryEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStoryEventID sets the ID field of the mutation.
func withStoryEventID(id string) storyeventOption {
	return func(m *StoryEventMutation) {
		var (
			err   error
			once  sync.Once
			value *StoryEvent
		)
		m.oldValue = func(ctx context.Context) (*StoryEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StoryEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStoryEvent sets the old StoryEvent of the mutation.
func withStoryEvent(node *StoryEvent) storyeventOption {
	return func(m *StoryEventMutation) {
		m.oldValue = func(context.Context) (*StoryEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StoryEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StoryEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StoryEvent entities.
func (m *StoryEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StoryEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StoryEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StoryEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorldID sets the "world_id" field.
func (m *StoryEventMutation) SetWorldID(s string) {
	m.world = &s
}

// WorldID returns the value of the "world_id" field in the mutation.
func (m *StoryEventMutation) WorldID() (r string, exists bool) {
	v := m.world
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldID returns the old "world_id" field's value of the StoryEvent entity.
// If the StoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryEventMutation) OldWorldID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldID: %w", err)
	}
	return oldValue.WorldID, nil
}

// ResetWorldID resets all changes to the "world_id" field.
func (m *StoryEventMutation) ResetWorldID() {
	m.world = nil
}

// SetParticipantIds sets the "participant_ids" field.
func (m *StoryEventMutation) SetParticipantIds(s []string) {
	m.participant_ids = &s
	m.appendparticipant_ids = nil
}

// ParticipantIds returns the value of the "participant_ids" field in the mutation.
func (m *StoryEventMutation) ParticipantIds() (r []string, exists bool) {
	v := m.participant_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantIds returns the old "participant_ids" field's value of the StoryEvent entity.
// If the StoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryEventMutation) OldParticipantIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantIds: %w", err)
	}
	return oldValue.ParticipantIds, nil
}

// AppendParticipantIds adds s to the "participant_ids" field.
func (m *StoryEventMutation) AppendParticipantIds(s []string) {
	m.appendparticipant_ids = append(m.appendparticipant_ids, s...)
}

// AppendedParticipantIds returns the list of values that were appended to the "participant_ids" field in this mutation.
func (m *StoryEventMutation) AppendedParticipantIds() ([]string, bool) {
	if len(m.appendparticipant_ids) == 0 {
		return nil, false
	}
	return m.appendparticipant_ids, true
}

// ResetParticipantIds resets all changes to the "participant_ids" field.
func (m *StoryEventMutation) ResetParticipantIds() {
	m.participant_ids = nil
	m.appendparticipant_ids = nil
}

// SetLocation sets the "location" field.
func (m *StoryEventMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *StoryEventMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the StoryEvent entity.
// If the StoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryEventMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ResetLocation resets all changes to the "location" field.
func (m *StoryEventMutation) ResetLocation() {
	m.location = nil
}

// SetDescription sets the "description" field.
func (m *StoryEventMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StoryEventMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the StoryEvent entity.
// If the StoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryEventMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *StoryEventMutation) ResetDescription() {
	m.description = nil
}

// SetConsequences sets the "consequences" field.
func (m *StoryEventMutation) SetConsequences(s []string) {
	m.consequences = &s
	m.appendconsequences = nil
}

// Consequences returns the value of the "consequences" field in the mutation.
func (m *StoryEventMutation) Consequences() (r []string, exists bool) {
	v := m.consequences
	if v == nil {
		return
	}
	return *v, true
}

// OldConsequences returns the old "consequences" field's value of the StoryEvent entity.
// If the StoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryEventMutation) OldConsequences(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsequences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsequences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsequences: %w", err)
	}
	return oldValue.Consequences, nil
}

// AppendConsequences adds s to the "consequences" field.
func (m *StoryEventMutation) AppendConsequences(s []string) {
	m.appendconsequences = append(m.appendconsequences, s...)
}

// AppendedConsequences returns the list of values that were appended to the "consequences" field in this mutation.
func (m *StoryEventMutation) AppendedConsequences() ([]string, bool) {
	if len(m.appendconsequences) == 0 {
		return nil, false
	}
	return m.appendconsequences, true
}

// ResetConsequences resets all changes to the "consequences" field.
func (m *StoryEventMutation) ResetConsequences() {
	m.consequences = nil
	m.appendconsequences = nil
}

// SetStoryTime sets the "story_time" field.
func (m *StoryEventMutation) SetStoryTime(i int) {
	m.story_time = &i
	m.addstory_time = nil
}

// StoryTime returns the value of the "story_time" field in the mutation.
func (m *StoryEventMutation) StoryTime() (r int, exists bool) {
	v := m.story_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStoryTime returns the old "story_time" field's value of the StoryEvent entity.
// If the StoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryEventMutation) OldStoryTime(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoryTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoryTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoryTime: %w", err)
	}
	return oldValue.StoryTime, nil
}

// AddStoryTime adds i to the "story_time" field.
func (m *StoryEventMutation) AddStoryTime(i int) {
	if m.addstory_time != nil {
		*m.addstory_time += i
	} else {
		m.addstory_time = &i
	}
}

// AddedStoryTime returns the value that was added to the "story_time" field in this mutation.
func (m *StoryEventMutation) AddedStoryTime() (r int, exists bool) {
	v := m.addstory_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetStoryTime resets all changes to the "story_time" field.
func (m *StoryEventMutation) ResetStoryTime() {
	m.story_time = nil
	m.addstory_time = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StoryEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StoryEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StoryEvent entity.
// If the StoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StoryEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorld clears the "world" edge to the World entity.
func (m *StoryEventMutation) ClearWorld() {
	m.clearedworld = true
	m.clearedFields[storyevent.FieldWorldID] = struct{}{}
}

// WorldCleared reports if the "world" edge to the World entity was cleared.
func (m *StoryEventMutation) WorldCleared() bool {
	return m.clearedworld
}

// WorldIDs returns the "world" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorldID instead. It exists only for internal usage by the builders.
func (m *StoryEventMutation) WorldIDs() (ids []string) {
	if id := m.world; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorld resets all changes to the "world" edge.
func (m *StoryEventMutation) ResetWorld() {
	m.world = nil
	m.clearedworld = false
}

// Where appends a list predicates to the StoryEventMutation builder.
func (m *StoryEventMutation) Where(ps ...predicate.StoryEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StoryEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StoryEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StoryEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StoryEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StoryEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StoryEvent).
func (m *StoryEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StoryEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.world != nil {
		fields = append(fields, storyevent.FieldWorldID)
	}
	if m.participant_ids != nil {
		fields = append(fields, storyevent.FieldParticipantIds)
	}
	if m.location != nil {
		fields = append(fields, storyevent.FieldLocation)
	}
	if m.description != nil {
		fields = append(fields, storyevent.FieldDescription)
	}
	if m.consequences != nil {
		fields = append(fields, storyevent.FieldConsequences)
	}
	if m.story_time != nil {
		fields = append(fields, storyevent.FieldStoryTime)
	}
	if m.created_at != nil {
		fields = append(fields, storyevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StoryEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case storyevent.FieldWorldID:
		return m.WorldID()
	case storyevent.FieldParticipantIds:
		return m.ParticipantIds()
	case storyevent.FieldLocation:
		return m.Location()
	case storyevent.FieldDescription:
		return m.Description()
	case storyevent.FieldConsequences:
		return m.Consequences()
	case storyevent.FieldStoryTime:
		return m.StoryTime()
	case storyevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StoryEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case storyevent.FieldWorldID:
		return m.OldWorldID(ctx)
	case storyevent.FieldParticipantIds:
		return m.OldParticipantIds(ctx)
	case storyevent.FieldLocation:
		return m.OldLocation(ctx)
	case storyevent.FieldDescription:
		return m.OldDescription(ctx)
	case storyevent.FieldConsequences:
		return m.OldConsequences(ctx)
	case storyevent.FieldStoryTime:
		return m.OldStoryTime(ctx)
	case storyevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StoryEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoryEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case storyevent.FieldWorldID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldID(v)
		return nil
	case storyevent.FieldParticipantIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantIds(v)
		return nil
	case storyevent.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case storyevent.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case storyevent.FieldConsequences:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsequences(v)
		return nil
	case storyevent.FieldStoryTime:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoryTime(v)
		return nil
	case storyevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StoryEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StoryEventMutation) AddedFields() []string {
	var fields []string
	if m.addstory_time != nil {
		fields = append(fields, storyevent.FieldStoryTime)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StoryEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case storyevent.FieldStoryTime:
		return m.AddedStoryTime()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoryEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case storyevent.FieldStoryTime:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStoryTime(v)
		return nil
	}
	return fmt.Errorf("unknown StoryEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StoryEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StoryEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StoryEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StoryEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StoryEventMutation) ResetField(name string) error {
	switch name {
	case storyevent.FieldWorldID:
		m.ResetWorldID()
		return nil
	case storyevent.FieldParticipantIds:
		m.ResetParticipantIds()
		return nil
	case storyevent.FieldLocation:
		m.ResetLocation()
		return nil
	case storyevent.FieldDescription:
		m.ResetDescription()
		return nil
	case storyevent.FieldConsequences:
		m.ResetConsequences()
		return nil
	case storyevent.FieldStoryTime:
		m.ResetStoryTime()
		return nil
	case storyevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StoryEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StoryEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.world != nil {
		edges = append(edges, storyevent.EdgeWorld)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StoryEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case storyevent.EdgeWorld:
		if id := m.world; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StoryEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StoryEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StoryEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworld {
		edges = append(edges, storyevent.EdgeWorld)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StoryEventMutation) EdgeCleared(name string) bool {
	switch name {
	case storyevent.EdgeWorld:
		return m.clearedworld
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StoryEventMutation) ClearEdge(name string) error {
	switch name {
	case storyevent.EdgeWorld:
		m.ClearWorld()
		return nil
	}
	return fmt.Errorf("unknown StoryEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StoryEventMutation) ResetEdge(name string) error {
	switch name {
	case storyevent.EdgeWorld:
		m.ResetWorld()
		return nil
	}
	return fmt.Errorf("unknown StoryEvent edge %s", name)
}

// WorldMutation represents an operation that mutates the World nodes in the graph.
type WorldMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	name                     *string
	rules                    *[]string
	appendrules              []string
	boundaries               *[]string
	appendboundaries         []string
	anomalies                *[]string
	appendanomalies          []string
	core_conflict            *string
	theme                    *string
	scale                    *world.Scale
	created_at               *time.Time
	clearedFields            map[string]struct{}
	job                      *string
	clearedjob               bool
	characters               map[string]struct{}
	removedcharacters        map[string]struct{}
	clearedcharacters        bool
	story_events             map[string]struct{}
	removedstory_events      map[string]struct{}
	clearedstory_events      bool
	relationships            map[string]struct{}
	removedrelationships     map[string]struct{}
	clearedrelationships     bool
	motifs                   map[string]struct{}
	removedmotifs            map[string]struct{}
	clearedmotifs            bool
	evolution_entries        map[string]struct{}
	removedevolution_entries map[string]struct{}
	clearedevolution_entries bool
	done                     bool
	oldValue                 func(context.Context) (*World, error)
	predicates               []predicate.World
}

var _ ent.Mutation = (*WorldMutation)(nil)

// worldOption allows management of the mutation configuration using functional options.
type worldOption func(*WorldMutation)

// newWorldMutation creates new mutation for the World entity.
func newWorldMutation(c config, op Op, opts ...worldOption) *WorldMutation {
	m := &WorldMutation{
		config:        c,
		op:            op,
		typ:           TypeWorld,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorldID sets the ID field of the mutation.
func withWorldID(id string) worldOption {
	return func(m *WorldMutation) {
		var (
			err   error
			once  sync.Once
			value *World
		)
		m.oldValue = func(ctx context.Context) (*World, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().World.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorld sets the old World of the mutation.
func withWorld(node *World) worldOption {
	return func(m *WorldMutation) {
		m.oldValue = func(context.Context) (*World, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorldMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorldMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of World entities.
func (m *WorldMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorldMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorldMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().World.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *WorldMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *WorldMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the World entity.
// If the World object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *WorldMutation) ResetJobID() {
	m.job = nil
}

// SetName sets the "name" field.
func (m *WorldMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorldMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the World entity.
// If the World object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorldMutation) ResetName() {
	m.name = nil
}

// SetRules sets the "rules" field.
func (m *WorldMutation) SetRules(s []string) {
	m.rules = &s
	m.appendrules = nil
}

// Rules returns the value of the "rules" field in the mutation.
func (m *WorldMutation) Rules() (r []string, exists bool) {
	v := m.rules
	if v == nil {
		return
	}
	return *v, true
}

// OldRules returns the old "rules" field's value of the World entity.
// If the World object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldMutation) OldRules(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRules: %w", err)
	}
	return oldValue.Rules, nil
}

// AppendRules adds s to the "rules" field.
func (m *WorldMutation) AppendRules(s []string) {
	m.appendrules = append(m.appendrules, s...)
}

// AppendedRules returns the list of values that were appended to the "rules" field in this mutation.
func (m *WorldMutation) AppendedRules() ([]string, bool) {
	if len(m.appendrules) == 0 {
		return nil, false
	}
	return m.appendrules, true
}

// ResetRules resets all changes to the "rules" field.
func (m *WorldMutation) ResetRules() {
	m.rules = nil
	m.appendrules = nil
}

// SetBoundaries sets the "boundaries" field.
func (m *WorldMutation) SetBoundaries(s []string) {
	m.boundaries = &s
	m.appendboundaries = nil
}

// Boundaries returns the value of the "boundaries" field in the mutation.
func (m *WorldMutation) Boundaries() (r []string, exists bool) {
	v := m.boundaries
	if v == nil {
		return
	}
	return *v, true
}

// OldBoundaries returns the old "boundaries" field's value of the World entity.
// If the World object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldMutation) OldBoundaries(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoundaries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoundaries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoundaries: %w", err)
	}
	return oldValue.Boundaries, nil
}

// AppendBoundaries adds s to the "boundaries" field.
func (m *WorldMutation) AppendBoundaries(s []string) {
	m.appendboundaries = append(m.appendboundaries, s...)
}

// AppendedBoundaries returns the list of values that were appended to the "boundaries" field in this mutation.
func (m *WorldMutation) AppendedBoundaries() ([]string, bool) {
	if len(m.appendboundaries) == 0 {
		return nil, false
	}
	return m.appendboundaries, true
}

// ResetBoundaries resets all changes to the "boundaries" field.
func (m *WorldMutation) ResetBoundaries() {
	m.boundaries = nil
	m.appendboundaries = nil
}

// SetAnomalies sets the "anomalies" field.
func (m *WorldMutation) SetAnomalies(s []string) {
	m.anomalies = &s
	m.appendanomalies = nil
}

// Anomalies returns the value of the "anomalies" field in the mutation.
func (m *WorldMutation) Anomalies() (r []string, exists bool) {
	v := m.anomalies
	if v == nil {
		return
	}
	return *v, true
}

// OldAnomalies returns the old "anomalies" field's value of the World entity.
// If the World object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldMutation) OldAnomalies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnomalies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnomalies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnomalies: %w", err)
	}
	return oldValue.Anomalies, nil
}

// AppendAnomalies adds s to the "anomalies" field.
func (m *WorldMutation) AppendAnomalies(s []string) {
	m.appendanomalies = append(m.appendanomalies, s...)
}

// AppendedAnomalies returns the list of values that were appended to the "anomalies" field in this mutation.
func (m *WorldMutation) AppendedAnomalies() ([]string, bool) {
	if len(m.appendanomalies) == 0 {
		return nil, false
	}
	return m.appendanomalies, true
}

// ResetAnomalies resets all changes to the "anomalies" field.
func (m *WorldMutation) ResetAnomalies() {
	m.anomalies = nil
	m.appendanomalies = nil
}

// SetCoreConflict sets the "core_conflict" field.
func (m *WorldMutation) SetCoreConflict(s string) {
	m.core_conflict = &s
}

// CoreConflict returns the value of the "core_conflict" field in the mutation.
func (m *WorldMutation) CoreConflict() (r string, exists bool) {
	v := m.core_conflict
	if v == nil {
		return
	}
	return *v, true
}

// OldCoreConflict returns the old "core_conflict" field's value of the World entity.
// If the World object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldMutation) OldCoreConflict(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoreConflict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoreConflict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoreConflict: %w", err)
	}
	return oldValue.CoreConflict, nil
}

// ResetCoreConflict resets all changes to the "core_conflict" field.
func (m *WorldMutation) ResetCoreConflict() {
	m.core_conflict = nil
}

// SetTheme sets the "theme" field.
func (m *WorldMutation) SetTheme(s string) {
	m.theme = &s
}

// Theme returns the value of the "theme" field in the mutation.
func (m *WorldMutation) Theme() (r string, exists bool) {
	v := m.theme
	if v == nil {
		return
	}
	return *v, true
}

// OldTheme returns the old "theme" field's value of the World entity.
// If the World object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldMutation) OldTheme(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTheme is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTheme requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTheme: %w", err)
	}
	return oldValue.Theme, nil
}

// ResetTheme resets all changes to the "theme" field.
func (m *WorldMutation) ResetTheme() {
	m.theme = nil
}

// SetScale sets the "scale" field.
func (m *WorldMutation) SetScale(w world.Scale) {
	m.scale = &w
}

// Scale returns the value of the "scale" field in the mutation.
func (m *WorldMutation) Scale() (r world.Scale, exists bool) {
	v := m.scale
	if v == nil {
		return
	}
	return *v, true
}

// OldScale returns the old "scale" field's value of the World entity.
// If the World object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldMutation) OldScale(ctx context.Context) (v world.Scale, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScale: %w", err)
	}
	return oldValue.Scale, nil
}

// ResetScale resets all changes to the "scale" field.
func (m *WorldMutation) ResetScale() {
	m.scale = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorldMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorldMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the World entity.
// If the World object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorldMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorldMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *WorldMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[world.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *WorldMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *WorldMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *WorldMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// AddCharacterIDs adds the "characters" edge to the Character entity by ids.
func (m *WorldMutation) AddCharacterIDs(ids ...string) {
	if m.characters == nil {
		m.characters = make(map[string]struct{})
	}
	for i := range ids {
		m.characters[ids[i]] = struct{}{}
	}
}

// ClearCharacters clears the "characters" edge to the Character entity.
func (m *WorldMutation) ClearCharacters() {
	m.clearedcharacters = true
}

// CharactersCleared reports if the "characters" edge to the Character entity was cleared.
func (m *WorldMutation) CharactersCleared() bool {
	return m.clearedcharacters
}

// RemoveCharacterIDs removes the "characters" edge to the Character entity by IDs.
func (m *WorldMutation) RemoveCharacterIDs(ids ...string) {
	if m.removedcharacters == nil {
		m.removedcharacters = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.characters, ids[i])
		m.removedcharacters[ids[i]] = struct{}{}
	}
}

// RemovedCharacters returns the removed IDs of the "characters" edge to the Character entity.
func (m *WorldMutation) RemovedCharactersIDs() (ids []string) {
	for id := range m.removedcharacters {
		ids = append(ids, id)
	}
	return
}

// CharactersIDs returns the "characters" edge IDs in the mutation.
func (m *WorldMutation) CharactersIDs() (ids []string) {
	for id := range m.characters {
		ids = append(ids, id)
	}
	return
}

// ResetCharacters resets all changes to the "characters" edge.
func (m *WorldMutation) ResetCharacters() {
	m.characters = nil
	m.clearedcharacters = false
	m.removedcharacters = nil
}

// AddStoryEventIDs adds the "story_events" edge to the StoryEvent entity by ids.
func (m *WorldMutation) AddStoryEventIDs(ids ...string) {
	if m.story_events == nil {
		m.story_events = make(map[string]struct{})
	}
	for i := range ids {
		m.story_events[ids[i]] = struct{}{}
	}
}

// ClearStoryEvents clears the "story_events" edge to the StoryEvent entity.
func (m *WorldMutation) ClearStoryEvents() {
	m.clearedstory_events = true
}

// StoryEventsCleared reports if the "story_events" edge to the StoryEvent entity was cleared.
func (m *WorldMutation) StoryEventsCleared() bool {
	return m.clearedstory_events
}

// RemoveStoryEventIDs removes the "story_events" edge to the StoryEvent entity by IDs.
func (m *WorldMutation) RemoveStoryEventIDs(ids ...string) {
	if m.removedstory_events == nil {
		m.removedstory_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.story_events, ids[i])
		m.removedstory_events[ids[i]] = struct{}{}
	}
}

// RemovedStoryEvents returns the removed IDs of the "story_events" edge to the StoryEvent entity.
func (m *WorldMutation) RemovedStoryEventsIDs() (ids []string) {
	for id := range m.removedstory_events {
		ids = append(ids, id)
	}
	return
}

// StoryEventsIDs returns the "story_events" edge IDs in the mutation.
func (m *WorldMutation) StoryEventsIDs() (ids []string) {
	for id := range m.story_events {
		ids = append(ids, id)
	}
	return
}

// ResetStoryEvents resets all changes to the "story_events" edge.
func (m *WorldMutation) ResetStoryEvents() {
	m.story_events = nil
	m.clearedstory_events = false
	m.removedstory_events = nil
}

// AddRelationshipIDs adds the "relationships" edge to the Relationship entity by ids.
func (m *WorldMutation) AddRelationshipIDs(ids ...string) {
	if m.relationships == nil {
		m.relationships = make(map[string]struct{})
	}
	for i := range ids {
		m.relationships[ids[i]] = struct{}{}
	}
}

// ClearRelationships clears the "relationships" edge to the Relationship entity.
func (m *WorldMutation) ClearRelationships() {
	m.clearedrelationships = true
}

// RelationshipsCleared reports if the "relationships" edge to the Relationship entity was cleared.
func (m *WorldMutation) RelationshipsCleared() bool {
	return m.clearedrelationships
}

// RemoveRelationshipIDs removes the "relationships" edge to the Relationship entity by IDs.
func (m *WorldMutation) RemoveRelationshipIDs(ids ...string) {
	if m.removedrelationships == nil {
		m.removedrelationships = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.relationships, ids[i])
		m.removedrelationships[ids[i]] = struct{}{}
	}
}

// RemovedRelationships returns the removed IDs of the "relationships" edge to the Relationship entity.
func (m *WorldMutation) RemovedRelationshipsIDs() (ids []string) {
	for id := range m.removedrelationships {
		ids = append(ids, id)
	}
	return
}

// RelationshipsIDs returns the "relationships" edge IDs in the mutation.
func (m *WorldMutation) RelationshipsIDs() (ids []string) {
	for id := range m.relationships {
		ids = append(ids, id)
	}
	return
}

// ResetRelationships resets all changes to the "relationships" edge.
func (m *WorldMutation) ResetRelationships() {
	m.relationships = nil
	m.clearedrelationships = false
	m.removedrelationships = nil
}

// AddMotifIDs adds the "motifs" edge to the Motif entity by ids.
func (m *WorldMutation) AddMotifIDs(ids ...string) {
	if m.motifs == nil {
		m.motifs = make(map[string]struct{})
	}
	for i := range ids {
		m.motifs[ids[i]] = struct{}{}
	}
}

// ClearMotifs clears the "motifs" edge to the Motif entity.
func (m *WorldMutation) ClearMotifs() {
	m.clearedmotifs = true
}

// MotifsCleared reports if the "motifs" edge to the Motif entity was cleared.
func (m *WorldMutation) MotifsCleared() bool {
	return m.clearedmotifs
}

// RemoveMotifIDs removes the "motifs" edge to the Motif entity by IDs.
func (m *WorldMutation) RemoveMotifIDs(ids ...string) {
	if m.removedmotifs == nil {
		m.removedmotifs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.motifs, ids[i])
		m.removedmotifs[ids[i]] = struct{}{}
	}
}

// RemovedMotifs returns the removed IDs of the "motifs" edge to the Motif entity.
func (m *WorldMutation) RemovedMotifsIDs() (ids []string) {
	for id := range m.removedmotifs {
		ids = append(ids, id)
	}
	return
}

// MotifsIDs returns the "motifs" edge IDs in the mutation.
func (m *WorldMutation) MotifsIDs() (ids []string) {
	for id := range m.motifs {
		ids = append(ids, id)
	}
	return
}

// ResetMotifs resets all changes to the "motifs" edge.
func (m *WorldMutation) ResetMotifs() {
	m.motifs = nil
	m.clearedmotifs = false
	m.removedmotifs = nil
}

// AddEvolutionEntryIDs adds the "evolution_entries" edge to the EvolutionEntry entity by ids.
func (m *WorldMutation) AddEvolutionEntryIDs(ids ...string) {
	if m.evolution_entries == nil {
		m.evolution_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.evolution_entries[ids[i]] = struct{}{}
	}
}

// ClearEvolutionEntries clears the "evolution_entries" edge to the EvolutionEntry entity.
func (m *WorldMutation) ClearEvolutionEntries() {
	m.clearedevolution_entries = true
}

// EvolutionEntriesCleared reports if the "evolution_entries" edge to the EvolutionEntry entity was cleared.
func (m *WorldMutation) EvolutionEntriesCleared() bool {
	return m.clearedevolution_entries
}

// RemoveEvolutionEntryIDs removes the "evolution_entries" edge to the EvolutionEntry entity by IDs.
func (m *WorldMutation) RemoveEvolutionEntryIDs(ids ...string) {
	if m.removedevolution_entries == nil {
		m.removedevolution_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evolution_entries, ids[i])
		m.removedevolution_entries[ids[i]] = struct{}{}
	}
}

// RemovedEvolutionEntries returns the removed IDs of the "evolution_entries" edge to the EvolutionEntry entity.
func (m *WorldMutation) RemovedEvolutionEntriesIDs() (ids []string) {
	for id := range m.removedevolution_entries {
		ids = append(ids, id)
	}
	return
}

// EvolutionEntriesIDs returns the "evolution_entries" edge IDs in the mutation.
func (m *WorldMutation) EvolutionEntriesIDs() (ids []string) {
	for id := range m.evolution_entries {
		ids = append(ids, id)
	}
	return
}

// ResetEvolutionEntries resets all changes to the "evolution_entries" edge.
func (m *WorldMutation) ResetEvolutionEntries() {
	m.evolution_entries = nil
	m.clearedevolution_entries = false
	m.removedevolution_entries = nil
}

// Where appends a list predicates to the WorldMutation builder.
func (m *WorldMutation) Where(ps ...predicate.World) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorldMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorldMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.World, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorldMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorldMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (World).
func (m *WorldMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorldMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.job != nil {
		fields = append(fields, world.FieldJobID)
	}
	if m.name != nil {
		fields = append(fields, world.FieldName)
	}
	if m.rules != nil {
		fields = append(fields, world.FieldRules)
	}
	if m.boundaries != nil {
		fields = append(fields, world.FieldBoundaries)
	}
	if m.anomalies != nil {
		fields = append(fields, world.FieldAnomalies)
	}
	if m.core_conflict != nil {
		fields = append(fields, world.FieldCoreConflict)
	}
	if m.theme != nil {
		fields = append(fields, world.FieldTheme)
	}
	if m.scale != nil {
		fields = append(fields, world.FieldScale)
	}
	if m.created_at != nil {
		fields = append(fields, world.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorldMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case world.FieldJobID:
		return m.JobID()
	case world.FieldName:
		return m.Name()
	case world.FieldRules:
		return m.Rules()
	case world.FieldBoundaries:
		return m.Boundaries()
	case world.FieldAnomalies:
		return m.Anomalies()
	case world.FieldCoreConflict:
		return m.CoreConflict()
	case world.FieldTheme:
		return m.Theme()
	case world.FieldScale:
		return m.Scale()
	case world.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorldMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case world.FieldJobID:
		return m.OldJobID(ctx)
	case world.FieldName:
		return m.OldName(ctx)
	case world.FieldRules:
		return m.OldRules(ctx)
	case world.FieldBoundaries:
		return m.OldBoundaries(ctx)
	case world.FieldAnomalies:
		return m.OldAnomalies(ctx)
	case world.FieldCoreConflict:
		return m.OldCoreConflict(ctx)
	case world.FieldTheme:
		return m.OldTheme(ctx)
	case world.FieldScale:
		return m.OldScale(ctx)
	case world.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown World field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorldMutation) SetField(name string, value ent.Value) error {
	switch name {
	case world.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case world.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case world.FieldRules:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRules(v)
		return nil
	case world.FieldBoundaries:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoundaries(v)
		return nil
	case world.FieldAnomalies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnomalies(v)
		return nil
	case world.FieldCoreConflict:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoreConflict(v)
		return nil
	case world.FieldTheme:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTheme(v)
		return nil
	case world.FieldScale:
		v, ok := value.(world.Scale)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScale(v)
		return nil
	case world.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown World field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorldMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorldMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorldMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown World numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorldMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorldMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorldMutation) ClearField(name string) error {
	return fmt.Errorf("unknown World nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorldMutation) ResetField(name string) error {
	switch name {
	case world.FieldJobID:
		m.ResetJobID()
		return nil
	case world.FieldName:
		m.ResetName()
		return nil
	case world.FieldRules:
		m.ResetRules()
		return nil
	case world.FieldBoundaries:
		m.ResetBoundaries()
		return nil
	case world.FieldAnomalies:
		m.ResetAnomalies()
		return nil
	case world.FieldCoreConflict:
		m.ResetCoreConflict()
		return nil
	case world.FieldTheme:
		m.ResetTheme()
		return nil
	case world.FieldScale:
		m.ResetScale()
		return nil
	case world.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown World field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorldMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.job != nil {
		edges = append(edges, world.EdgeJob)
	}
	if m.characters != nil {
		edges = append(edges, world.EdgeCharacters)
	}
	if m.story_events != nil {
		edges = append(edges, world.EdgeStoryEvents)
	}
	if m.relationships != nil {
		edges = append(edges, world.EdgeRelationships)
	}
	if m.motifs != nil {
		edges = append(edges, world.EdgeMotifs)
	}
	if m.evolution_entries != nil {
		edges = append(edges, world.EdgeEvolutionEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorldMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case world.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case world.EdgeCharacters:
		ids := make([]ent.Value, 0, len(m.characters))
		for id := range m.characters {
			ids = append(ids, id)
		}
		return ids
	case world.EdgeStoryEvents:
		ids := make([]ent.Value, 0, len(m.story_events))
		for id := range m.story_events {
			ids = append(ids, id)
		}
		return ids
	case world.EdgeRelationships:
		ids := make([]ent.Value, 0, len(m.relationships))
		for id := range m.relationships {
			ids = append(ids, id)
		}
		return ids
	case world.EdgeMotifs:
		ids := make([]ent.Value, 0, len(m.motifs))
		for id := range m.motifs {
			ids = append(ids, id)
		}
		return ids
	case world.EdgeEvolutionEntries:
		ids := make([]ent.Value, 0, len(m.evolution_entries))
		for id := range m.evolution_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorldMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedcharacters != nil {
		edges = append(edges, world.EdgeCharacters)
	}
	if m.removedstory_events != nil {
		edges = append(edges, world.EdgeStoryEvents)
	}
	if m.removedrelationships != nil {
		edges = append(edges, world.EdgeRelationships)
	}
	if m.removedmotifs != nil {
		edges = append(edges, world.EdgeMotifs)
	}
	if m.removedevolution_entries != nil {
		edges = append(edges, world.EdgeEvolutionEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorldMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case world.EdgeCharacters:
		ids := make([]ent.Value, 0, len(m.removedcharacters))
		for id := range m.removedcharacters {
			ids = append(ids, id)
		}
		return ids
	case world.EdgeStoryEvents:
		ids := make([]ent.Value, 0, len(m.removedstory_events))
		for id := range m.removedstory_events {
			ids = append(ids, id)
		}
		return ids
	case world.EdgeRelationships:
		ids := make([]ent.Value, 0, len(m.removedrelationships))
		for id := range m.removedrelationships {
			ids = append(ids, id)
		}
		return ids
	case world.EdgeMotifs:
		ids := make([]ent.Value, 0, len(m.removedmotifs))
		for id := range m.removedmotifs {
			ids = append(ids, id)
		}
		return ids
	case world.EdgeEvolutionEntries:
		ids := make([]ent.Value, 0, len(m.removedevolution_entries))
		for id := range m.removedevolution_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorldMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedjob {
		edges = append(edges, world.EdgeJob)
	}
	if m.clearedcharacters {
		edges = append(edges, world.EdgeCharacters)
	}
	if m.clearedstory_events {
		edges = append(edges, world.EdgeStoryEvents)
	}
	if m.clearedrelationships {
		edges = append(edges, world.EdgeRelationships)
	}
	if m.clearedmotifs {
		edges = append(edges, world.EdgeMotifs)
	}
	if m.clearedevolution_entries {
		edges = append(edges, world.EdgeEvolutionEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorldMutation) EdgeCleared(name string) bool {
	switch name {
	case world.EdgeJob:
		return m.clearedjob
	case world.EdgeCharacters:
		return m.clearedcharacters
	case world.EdgeStoryEvents:
		return m.clearedstory_events
	case world.EdgeRelationships:
		return m.clearedrelationships
	case world.EdgeMotifs:
		return m.clearedmotifs
	case world.EdgeEvolutionEntries:
		return m.clearedevolution_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorldMutation) ClearEdge(name string) error {
	switch name {
	case world.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown World unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorldMutation) ResetEdge(name string) error {
	switch name {
	case world.EdgeJob:
		m.ResetJob()
		return nil
	case world.EdgeCharacters:
		m.ResetCharacters()
		return nil
	case world.EdgeStoryEvents:
		m.ResetStoryEvents()
		return nil
	case world.EdgeRelationships:
		m.ResetRelationships()
		return nil
	case world.EdgeMotifs:
		m.ResetMotifs()
		return nil
	case world.EdgeEvolutionEntries:
		m.ResetEvolutionEntries()
		return nil
	}
	return fmt.Errorf("unknown World edge %s", name)
}
