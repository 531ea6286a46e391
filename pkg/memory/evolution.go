package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/narraforge/narraforge/ent"
	"github.com/narraforge/narraforge/ent/character"
	"github.com/narraforge/narraforge/ent/evolutionentry"
	"github.com/narraforge/narraforge/ent/storyevent"
	"github.com/narraforge/narraforge/ent/world"
)

// EvolutionaryStore manages the append-only audit log of entity state
// changes. An entry cannot reference an entity or trigger event that does
// not exist.
type EvolutionaryStore struct {
	client *ent.Client
}

// NewEvolutionaryStore creates a new EvolutionaryStore
func NewEvolutionaryStore(client *ent.Client) *EvolutionaryStore {
	return &EvolutionaryStore{client: client}
}

// RecordChangeInput carries one evolution entry
type RecordChangeInput struct {
	WorldID        string
	EntityID       string
	EntityType     string // "world" or "character"
	ChangeType     string
	BeforeState    map[string]interface{}
	AfterState     map[string]interface{}
	TriggerEventID string
	Significance   float64
}

// RecordChange appends an evolution entry after checking that both the
// changed entity and the triggering event exist
func (s *EvolutionaryStore) RecordChange(ctx context.Context, in RecordChangeInput) (*ent.EvolutionEntry, error) {
	if in.WorldID == "" {
		return nil, NewValidationError("world_id", "required")
	}
	if in.EntityID == "" {
		return nil, NewValidationError("entity_id", "required")
	}
	if in.ChangeType == "" {
		return nil, NewValidationError("change_type", "required")
	}
	if in.Significance < 0 || in.Significance > 1 {
		return nil, NewValidationError("significance", "must be in [0,1]")
	}

	entityType := evolutionentry.EntityType(in.EntityType)
	switch entityType {
	case evolutionentry.EntityTypeWorld:
		if in.EntityID != in.WorldID {
			return nil, NewValidationError("entity_id", "world entries must reference the world itself")
		}
		exists, err := s.client.World.Query().
			Where(world.IDEQ(in.EntityID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check world: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("world %s: %w", in.EntityID, ErrNotFound)
		}
	case evolutionentry.EntityTypeCharacter:
		exists, err := s.client.Character.Query().
			Where(
				character.IDEQ(in.EntityID),
				character.WorldIDEQ(in.WorldID),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check character: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("character %s: %w", in.EntityID, ErrNotFound)
		}
	default:
		return nil, NewValidationError("entity_type", "must be 'world' or 'character'")
	}

	triggerExists, err := s.client.StoryEvent.Query().
		Where(
			storyevent.IDEQ(in.TriggerEventID),
			storyevent.WorldIDEQ(in.WorldID),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check trigger event: %w", err)
	}
	if !triggerExists {
		return nil, fmt.Errorf("trigger event %s: %w", in.TriggerEventID, ErrNotFound)
	}

	entry, err := s.client.EvolutionEntry.Create().
		SetID(uuid.New().String()).
		SetWorldID(in.WorldID).
		SetEntityID(in.EntityID).
		SetEntityType(entityType).
		SetChangeType(in.ChangeType).
		SetBeforeState(in.BeforeState).
		SetAfterState(in.AfterState).
		SetTriggerEventID(in.TriggerEventID).
		SetSignificance(in.Significance).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record evolution entry: %w", err)
	}

	return entry, nil
}

// ListByEntity retrieves all evolution entries for one entity in
// chronological order
func (s *EvolutionaryStore) ListByEntity(ctx context.Context, entityID string) ([]*ent.EvolutionEntry, error) {
	entries, err := s.client.EvolutionEntry.Query().
		Where(evolutionentry.EntityIDEQ(entityID)).
		Order(ent.Asc(evolutionentry.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evolution entries: %w", err)
	}
	return entries, nil
}

// ListByWorld retrieves all evolution entries of a world in chronological
// order
func (s *EvolutionaryStore) ListByWorld(ctx context.Context, worldID string) ([]*ent.EvolutionEntry, error) {
	entries, err := s.client.EvolutionEntry.Query().
		Where(evolutionentry.WorldIDEQ(worldID)).
		Order(ent.Asc(evolutionentry.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evolution entries: %w", err)
	}
	return entries, nil
}
