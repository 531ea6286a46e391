package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/narraforge/narraforge/ent"
	"github.com/narraforge/narraforge/ent/character"
	"github.com/narraforge/narraforge/ent/motif"
	"github.com/narraforge/narraforge/ent/relationship"
	"github.com/narraforge/narraforge/ent/storyevent"
)

// SemanticStore manages story events, relationships, and motifs.
// All three tables are append-only; motif occurrences are the one
// mutable column.
type SemanticStore struct {
	client *ent.Client
}

// NewSemanticStore creates a new SemanticStore
func NewSemanticStore(client *ent.Client) *SemanticStore {
	return &SemanticStore{client: client}
}

// RecordEventInput carries a new story event
type RecordEventInput struct {
	WorldID        string
	ParticipantIDs []string
	Location       string
	Description    string
	Consequences   []string
	StoryTime      int
}

// RecordEvent appends a story event. Every participant must be an
// existing character of the same world.
func (s *SemanticStore) RecordEvent(ctx context.Context, in RecordEventInput) (*ent.StoryEvent, error) {
	if in.WorldID == "" {
		return nil, NewValidationError("world_id", "required")
	}
	if in.Description == "" {
		return nil, NewValidationError("description", "required")
	}
	if in.StoryTime < 0 {
		return nil, NewValidationError("story_time", "must be non-negative")
	}

	if len(in.ParticipantIDs) > 0 {
		count, err := s.client.Character.Query().
			Where(
				character.IDIn(in.ParticipantIDs...),
				character.WorldIDEQ(in.WorldID),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check participants: %w", err)
		}
		if count != len(in.ParticipantIDs) {
			return nil, NewValidationError("participant_ids", "all participants must be characters of the world")
		}
	}

	event, err := s.client.StoryEvent.Create().
		SetID(uuid.New().String()).
		SetWorldID(in.WorldID).
		SetParticipantIds(in.ParticipantIDs).
		SetLocation(in.Location).
		SetDescription(in.Description).
		SetConsequences(in.Consequences).
		SetStoryTime(in.StoryTime).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record story event: %w", err)
	}

	return event, nil
}

// GetEvent retrieves a story event by id
func (s *SemanticStore) GetEvent(ctx context.Context, eventID string) (*ent.StoryEvent, error) {
	event, err := s.client.StoryEvent.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get story event: %w", err)
	}
	return event, nil
}

// ListEvents retrieves all events of a world in story-time order
func (s *SemanticStore) ListEvents(ctx context.Context, worldID string) ([]*ent.StoryEvent, error) {
	events, err := s.client.StoryEvent.Query().
		Where(storyevent.WorldIDEQ(worldID)).
		Order(ent.Asc(storyevent.FieldStoryTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list story events: %w", err)
	}
	return events, nil
}

// ListEventsBetween retrieves a world's events in [from, to] story time,
// inclusive, in story-time order
func (s *SemanticStore) ListEventsBetween(ctx context.Context, worldID string, from, to int) ([]*ent.StoryEvent, error) {
	events, err := s.client.StoryEvent.Query().
		Where(
			storyevent.WorldIDEQ(worldID),
			storyevent.StoryTimeGTE(from),
			storyevent.StoryTimeLTE(to),
		).
		Order(ent.Asc(storyevent.FieldStoryTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list story events: %w", err)
	}
	return events, nil
}

// LinkInput carries a directed relationship edge between two characters
type LinkInput struct {
	WorldID         string
	FromCharacterID string
	ToCharacterID   string
	Kind            string
	Weight          float64
}

// Link appends a relationship edge. Both endpoints must be characters of
// the same world.
func (s *SemanticStore) Link(ctx context.Context, in LinkInput) (*ent.Relationship, error) {
	if in.WorldID == "" {
		return nil, NewValidationError("world_id", "required")
	}
	if in.Kind == "" {
		return nil, NewValidationError("kind", "required")
	}
	if in.FromCharacterID == in.ToCharacterID {
		return nil, NewValidationError("to_character_id", "cannot relate a character to itself")
	}
	if in.Weight < 0 || in.Weight > 1 {
		return nil, NewValidationError("weight", "must be in [0,1]")
	}

	count, err := s.client.Character.Query().
		Where(
			character.IDIn(in.FromCharacterID, in.ToCharacterID),
			character.WorldIDEQ(in.WorldID),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check endpoints: %w", err)
	}
	if count != 2 {
		return nil, NewValidationError("from_character_id", "both endpoints must be characters of the world")
	}

	rel, err := s.client.Relationship.Create().
		SetID(uuid.New().String()).
		SetWorldID(in.WorldID).
		SetFromCharacterID(in.FromCharacterID).
		SetToCharacterID(in.ToCharacterID).
		SetKind(in.Kind).
		SetWeight(in.Weight).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create relationship: %w", err)
	}

	return rel, nil
}

// ListRelationships retrieves all relationships of a world
func (s *SemanticStore) ListRelationships(ctx context.Context, worldID string) ([]*ent.Relationship, error) {
	rels, err := s.client.Relationship.Query().
		Where(relationship.WorldIDEQ(worldID)).
		Order(ent.Asc(relationship.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list relationships: %w", err)
	}
	return rels, nil
}

// ListRelationshipsFor retrieves relationships touching a character, in
// either direction
func (s *SemanticStore) ListRelationshipsFor(ctx context.Context, characterID string) ([]*ent.Relationship, error) {
	rels, err := s.client.Relationship.Query().
		Where(
			relationship.Or(
				relationship.FromCharacterIDEQ(characterID),
				relationship.ToCharacterIDEQ(characterID),
			),
		).
		Order(ent.Asc(relationship.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list relationships: %w", err)
	}
	return rels, nil
}

// RecordMotifInput carries a motif sighting
type RecordMotifInput struct {
	WorldID     string
	Name        string
	Description string
	// Occurrence names where the motif appeared, e.g. a segment reference
	Occurrence string
}

// RecordMotif registers a motif occurrence, creating the motif on first
// sighting and appending to its occurrence list afterwards
func (s *SemanticStore) RecordMotif(ctx context.Context, in RecordMotifInput) (*ent.Motif, error) {
	if in.WorldID == "" {
		return nil, NewValidationError("world_id", "required")
	}
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	existing, err := s.client.Motif.Query().
		Where(
			motif.WorldIDEQ(in.WorldID),
			motif.NameEQ(in.Name),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query motif: %w", err)
	}

	if existing == nil {
		occurrences := []string{}
		if in.Occurrence != "" {
			occurrences = append(occurrences, in.Occurrence)
		}
		created, err := s.client.Motif.Create().
			SetID(uuid.New().String()).
			SetWorldID(in.WorldID).
			SetName(in.Name).
			SetDescription(in.Description).
			SetOccurrences(occurrences).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create motif: %w", err)
		}
		return created, nil
	}

	if in.Occurrence == "" {
		return existing, nil
	}

	updated, err := s.client.Motif.UpdateOneID(existing.ID).
		SetOccurrences(append(existing.Occurrences, in.Occurrence)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update motif occurrences: %w", err)
	}

	return updated, nil
}

// ListMotifs retrieves all motifs of a world
func (s *SemanticStore) ListMotifs(ctx context.Context, worldID string) ([]*ent.Motif, error) {
	motifs, err := s.client.Motif.Query().
		Where(motif.WorldIDEQ(worldID)).
		Order(ent.Asc(motif.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list motifs: %w", err)
	}
	return motifs, nil
}
