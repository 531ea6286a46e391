package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/narraforge/narraforge/ent"
	"github.com/narraforge/narraforge/ent/character"
	"github.com/narraforge/narraforge/ent/world"
)

// StructuralStore manages worlds and characters
type StructuralStore struct {
	client *ent.Client
}

// NewStructuralStore creates a new StructuralStore
func NewStructuralStore(client *ent.Client) *StructuralStore {
	return &StructuralStore{client: client}
}

// CreateWorldInput carries a new world record
type CreateWorldInput struct {
	JobID        string
	Name         string
	Rules        []string
	Boundaries   []string
	Anomalies    []string
	CoreConflict string
	Theme        string
	Scale        string
}

// CreateWorld inserts the world for a job. A job has exactly one world;
// a second insert fails with ErrAlreadyExists.
func (s *StructuralStore) CreateWorld(ctx context.Context, in CreateWorldInput) (*ent.World, error) {
	if in.JobID == "" {
		return nil, NewValidationError("job_id", "required")
	}
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(in.Rules) == 0 {
		return nil, NewValidationError("rules", "at least one rule of reality required")
	}
	scale := world.Scale(in.Scale)
	switch scale {
	case world.ScaleIntimate, world.ScaleRegional, world.ScaleGlobal, world.ScaleCosmic:
	default:
		return nil, NewValidationError("scale", "must be one of intimate, regional, global, cosmic")
	}

	w, err := s.client.World.Create().
		SetID(uuid.New().String()).
		SetJobID(in.JobID).
		SetName(in.Name).
		SetRules(in.Rules).
		SetBoundaries(in.Boundaries).
		SetAnomalies(in.Anomalies).
		SetCoreConflict(in.CoreConflict).
		SetTheme(in.Theme).
		SetScale(scale).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("world for job %s: %w", in.JobID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	return w, nil
}

// GetWorld retrieves a world by id
func (s *StructuralStore) GetWorld(ctx context.Context, worldID string) (*ent.World, error) {
	w, err := s.client.World.Get(ctx, worldID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get world: %w", err)
	}
	return w, nil
}

// GetWorldByJob retrieves the world belonging to a job
func (s *StructuralStore) GetWorldByJob(ctx context.Context, jobID string) (*ent.World, error) {
	w, err := s.client.World.Query().
		Where(world.JobIDEQ(jobID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get world for job: %w", err)
	}
	return w, nil
}

// CreateCharacterInput carries a new character record
type CreateCharacterInput struct {
	WorldID           string
	Name              string
	Trajectory        string
	Contradictions    []string
	CognitiveLimits   []string
	EvolutionCapacity float64
}

// CreateCharacter inserts a character. The "characters as processes"
// invariants hold at this boundary: a world reference, at least one
// contradiction, at least one cognitive limit, and a capacity in [0,1].
func (s *StructuralStore) CreateCharacter(ctx context.Context, in CreateCharacterInput) (*ent.Character, error) {
	if in.WorldID == "" {
		return nil, NewValidationError("world_id", "required")
	}
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(in.Contradictions) == 0 {
		return nil, NewValidationError("contradictions", "at least one required")
	}
	if len(in.CognitiveLimits) == 0 {
		return nil, NewValidationError("cognitive_limits", "at least one required")
	}
	if in.EvolutionCapacity < 0 || in.EvolutionCapacity > 1 {
		return nil, NewValidationError("evolution_capacity", "must be in [0,1]")
	}

	exists, err := s.client.World.Query().
		Where(world.IDEQ(in.WorldID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check world: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("world %s: %w", in.WorldID, ErrNotFound)
	}

	c, err := s.client.Character.Create().
		SetID(uuid.New().String()).
		SetWorldID(in.WorldID).
		SetName(in.Name).
		SetTrajectory(in.Trajectory).
		SetContradictions(in.Contradictions).
		SetCognitiveLimits(in.CognitiveLimits).
		SetEvolutionCapacity(in.EvolutionCapacity).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("character %q in world %s: %w", in.Name, in.WorldID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create character: %w", err)
	}

	return c, nil
}

// GetCharacter retrieves a character by id
func (s *StructuralStore) GetCharacter(ctx context.Context, characterID string) (*ent.Character, error) {
	c, err := s.client.Character.Get(ctx, characterID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return c, nil
}

// ListCharacters retrieves all characters in a world in insertion order
func (s *StructuralStore) ListCharacters(ctx context.Context, worldID string) ([]*ent.Character, error) {
	characters, err := s.client.Character.Query().
		Where(character.WorldIDEQ(worldID)).
		Order(ent.Asc(character.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return characters, nil
}
