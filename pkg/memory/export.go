package memory

import (
	"context"
	"fmt"

	"github.com/narraforge/narraforge/ent/evolutionentry"
	"github.com/narraforge/narraforge/ent/world"
)

// Snapshot is the serialisable export of a job's triple memory. It backs
// the expansion.json output artifact and round-trips through Import.
type Snapshot struct {
	World         *WorldExport         `json:"world"`
	Characters    []CharacterExport    `json:"characters"`
	Events        []StoryEventExport   `json:"events"`
	Relationships []RelationshipExport `json:"relationships"`
	Motifs        []MotifExport        `json:"motifs"`
	Evolution     []EvolutionExport    `json:"evolution"`
}

// WorldExport mirrors a world row
type WorldExport struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Rules        []string `json:"rules"`
	Boundaries   []string `json:"boundaries"`
	Anomalies    []string `json:"anomalies"`
	CoreConflict string   `json:"core_conflict"`
	Theme        string   `json:"theme"`
	Scale        string   `json:"scale"`
}

// CharacterExport mirrors a character row
type CharacterExport struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Trajectory        string   `json:"trajectory"`
	Contradictions    []string `json:"contradictions"`
	CognitiveLimits   []string `json:"cognitive_limits"`
	EvolutionCapacity float64  `json:"evolution_capacity"`
}

// StoryEventExport mirrors a story event row
type StoryEventExport struct {
	ID             string   `json:"id"`
	ParticipantIDs []string `json:"participant_ids"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	Consequences   []string `json:"consequences"`
	StoryTime      int      `json:"story_time"`
}

// RelationshipExport mirrors a relationship row
type RelationshipExport struct {
	ID              string  `json:"id"`
	FromCharacterID string  `json:"from_character_id"`
	ToCharacterID   string  `json:"to_character_id"`
	Kind            string  `json:"kind"`
	Weight          float64 `json:"weight"`
}

// MotifExport mirrors a motif row
type MotifExport struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Occurrences []string `json:"occurrences"`
}

// EvolutionExport mirrors an evolution entry row
type EvolutionExport struct {
	ID             string                 `json:"id"`
	EntityID       string                 `json:"entity_id"`
	EntityType     string                 `json:"entity_type"`
	ChangeType     string                 `json:"change_type"`
	BeforeState    map[string]interface{} `json:"before_state"`
	AfterState     map[string]interface{} `json:"after_state"`
	TriggerEventID string                 `json:"trigger_event_id"`
	Significance   float64                `json:"significance"`
}

// Export collects a job's entire triple memory into a snapshot
func (m *Memory) Export(ctx context.Context, jobID string) (*Snapshot, error) {
	w, err := m.Structural.GetWorldByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	characters, err := m.Structural.ListCharacters(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	events, err := m.Semantic.ListEvents(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	rels, err := m.Semantic.ListRelationships(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	motifs, err := m.Semantic.ListMotifs(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	evolution, err := m.Evolutionary.ListByWorld(ctx, w.ID)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		World: &WorldExport{
			ID:           w.ID,
			Name:         w.Name,
			Rules:        w.Rules,
			Boundaries:   w.Boundaries,
			Anomalies:    w.Anomalies,
			CoreConflict: w.CoreConflict,
			Theme:        w.Theme,
			Scale:        string(w.Scale),
		},
	}
	for _, c := range characters {
		snap.Characters = append(snap.Characters, CharacterExport{
			ID:                c.ID,
			Name:              c.Name,
			Trajectory:        c.Trajectory,
			Contradictions:    c.Contradictions,
			CognitiveLimits:   c.CognitiveLimits,
			EvolutionCapacity: c.EvolutionCapacity,
		})
	}
	for _, e := range events {
		snap.Events = append(snap.Events, StoryEventExport{
			ID:             e.ID,
			ParticipantIDs: e.ParticipantIds,
			Location:       e.Location,
			Description:    e.Description,
			Consequences:   e.Consequences,
			StoryTime:      e.StoryTime,
		})
	}
	for _, r := range rels {
		snap.Relationships = append(snap.Relationships, RelationshipExport{
			ID:              r.ID,
			FromCharacterID: r.FromCharacterID,
			ToCharacterID:   r.ToCharacterID,
			Kind:            r.Kind,
			Weight:          r.Weight,
		})
	}
	for _, mo := range motifs {
		snap.Motifs = append(snap.Motifs, MotifExport{
			ID:          mo.ID,
			Name:        mo.Name,
			Description: mo.Description,
			Occurrences: mo.Occurrences,
		})
	}
	for _, ev := range evolution {
		snap.Evolution = append(snap.Evolution, EvolutionExport{
			ID:             ev.ID,
			EntityID:       ev.EntityID,
			EntityType:     string(ev.EntityType),
			ChangeType:     ev.ChangeType,
			BeforeState:    ev.BeforeState,
			AfterState:     ev.AfterState,
			TriggerEventID: ev.TriggerEventID,
			Significance:   ev.Significance,
		})
	}

	return snap, nil
}

// Import recreates a snapshot under a new job, preserving the original
// identifiers so cross-references inside the snapshot stay valid. The job
// must not already have a world.
func (m *Memory) Import(ctx context.Context, jobID string, snap *Snapshot) error {
	if snap == nil || snap.World == nil {
		return NewValidationError("snapshot", "missing world")
	}

	exists, err := m.client.World.Query().
		Where(world.JobIDEQ(jobID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check job world: %w", err)
	}
	if exists {
		return fmt.Errorf("world for job %s: %w", jobID, ErrAlreadyExists)
	}

	_, err = m.client.World.Create().
		SetID(snap.World.ID).
		SetJobID(jobID).
		SetName(snap.World.Name).
		SetRules(snap.World.Rules).
		SetBoundaries(snap.World.Boundaries).
		SetAnomalies(snap.World.Anomalies).
		SetCoreConflict(snap.World.CoreConflict).
		SetTheme(snap.World.Theme).
		SetScale(world.Scale(snap.World.Scale)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to import world: %w", err)
	}

	for _, c := range snap.Characters {
		_, err := m.client.Character.Create().
			SetID(c.ID).
			SetWorldID(snap.World.ID).
			SetName(c.Name).
			SetTrajectory(c.Trajectory).
			SetContradictions(c.Contradictions).
			SetCognitiveLimits(c.CognitiveLimits).
			SetEvolutionCapacity(c.EvolutionCapacity).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to import character %s: %w", c.ID, err)
		}
	}
	for _, e := range snap.Events {
		_, err := m.client.StoryEvent.Create().
			SetID(e.ID).
			SetWorldID(snap.World.ID).
			SetParticipantIds(e.ParticipantIDs).
			SetLocation(e.Location).
			SetDescription(e.Description).
			SetConsequences(e.Consequences).
			SetStoryTime(e.StoryTime).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to import story event %s: %w", e.ID, err)
		}
	}
	for _, r := range snap.Relationships {
		_, err := m.client.Relationship.Create().
			SetID(r.ID).
			SetWorldID(snap.World.ID).
			SetFromCharacterID(r.FromCharacterID).
			SetToCharacterID(r.ToCharacterID).
			SetKind(r.Kind).
			SetWeight(r.Weight).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to import relationship %s: %w", r.ID, err)
		}
	}
	for _, mo := range snap.Motifs {
		_, err := m.client.Motif.Create().
			SetID(mo.ID).
			SetWorldID(snap.World.ID).
			SetName(mo.Name).
			SetDescription(mo.Description).
			SetOccurrences(mo.Occurrences).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to import motif %s: %w", mo.ID, err)
		}
	}
	for _, ev := range snap.Evolution {
		_, err := m.client.EvolutionEntry.Create().
			SetID(ev.ID).
			SetWorldID(snap.World.ID).
			SetEntityID(ev.EntityID).
			SetEntityType(evolutionentry.EntityType(ev.EntityType)).
			SetChangeType(ev.ChangeType).
			SetBeforeState(ev.BeforeState).
			SetAfterState(ev.AfterState).
			SetTriggerEventID(ev.TriggerEventID).
			SetSignificance(ev.Significance).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to import evolution entry %s: %w", ev.ID, err)
		}
	}

	return nil
}
