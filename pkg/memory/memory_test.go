package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/narraforge/narraforge/ent"
	testdb "github.com/narraforge/narraforge/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestJob inserts a minimal job row for memory rows to hang off
func createTestJob(t *testing.T, client *ent.Client) string {
	t.Helper()
	jobID := uuid.New().String()
	_, err := client.Job.Create().
		SetID(jobID).
		SetBrief(map[string]interface{}{"inspiration": "a lighthouse keeper"}).
		SetProductionType("short_story").
		SetGenre("mystery").
		Save(context.Background())
	require.NoError(t, err)
	return jobID
}

// seedWorld creates a job and its world
func seedWorld(t *testing.T, m *Memory, client *ent.Client) *ent.World {
	t.Helper()
	jobID := createTestJob(t, client)
	w, err := m.Structural.CreateWorld(context.Background(), CreateWorldInput{
		JobID:        jobID,
		Name:         "Meridian",
		Rules:        []string{"tides answer to grief"},
		Boundaries:   []string{"nothing crosses the reef"},
		Anomalies:    []string{"the lighthouse burns without fuel"},
		CoreConflict: "the keeper against the sea",
		Theme:        "what loyalty costs",
		Scale:        "regional",
	})
	require.NoError(t, err)
	return w
}

func TestStructuralStore_WorldPerJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	m := New(client.Client)
	ctx := context.Background()

	w := seedWorld(t, m, client.Client)

	t.Run("second world for the same job is rejected", func(t *testing.T) {
		_, err := m.Structural.CreateWorld(ctx, CreateWorldInput{
			JobID: w.JobID,
			Name:  "Other",
			Rules: []string{"r"},
			Scale: "intimate",
		})
		require.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("lookup by job", func(t *testing.T) {
		got, err := m.Structural.GetWorldByJob(ctx, w.JobID)
		require.NoError(t, err)
		assert.Equal(t, w.ID, got.ID)
	})

	t.Run("invalid scale", func(t *testing.T) {
		_, err := m.Structural.CreateWorld(ctx, CreateWorldInput{
			JobID: createTestJob(t, client.Client),
			Name:  "Bad",
			Rules: []string{"r"},
			Scale: "galactic",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestStructuralStore_CharacterInvariants(t *testing.T) {
	client := testdb.NewTestClient(t)
	m := New(client.Client)
	ctx := context.Background()

	w := seedWorld(t, m, client.Client)

	valid := CreateCharacterInput{
		WorldID:           w.ID,
		Name:              "Edda",
		Trajectory:        "from duty to defiance",
		Contradictions:    []string{"craves company, drives people away"},
		CognitiveLimits:   []string{"does not know the ship sank"},
		EvolutionCapacity: 0.7,
	}

	t.Run("valid character persists", func(t *testing.T) {
		c, err := m.Structural.CreateCharacter(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, "Edda", c.Name)
	})

	t.Run("duplicate name in world is rejected", func(t *testing.T) {
		_, err := m.Structural.CreateCharacter(ctx, valid)
		require.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("invariant violations are rejected", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(in *CreateCharacterInput)
		}{
			{"no contradictions", func(in *CreateCharacterInput) { in.Contradictions = nil }},
			{"no cognitive limits", func(in *CreateCharacterInput) { in.CognitiveLimits = nil }},
			{"capacity below range", func(in *CreateCharacterInput) { in.EvolutionCapacity = -0.1 }},
			{"capacity above range", func(in *CreateCharacterInput) { in.EvolutionCapacity = 1.1 }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := valid
				in.Name = "Someone " + tt.name
				tt.mutate(&in)
				_, err := m.Structural.CreateCharacter(ctx, in)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("unknown world is rejected", func(t *testing.T) {
		in := valid
		in.Name = "Orphan"
		in.WorldID = uuid.New().String()
		_, err := m.Structural.CreateCharacter(ctx, in)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSemanticStore_EventsAndLinks(t *testing.T) {
	client := testdb.NewTestClient(t)
	m := New(client.Client)
	ctx := context.Background()

	w := seedWorld(t, m, client.Client)

	mkChar := func(name string) *ent.Character {
		c, err := m.Structural.CreateCharacter(ctx, CreateCharacterInput{
			WorldID:           w.ID,
			Name:              name,
			Trajectory:        "t",
			Contradictions:    []string{"c"},
			CognitiveLimits:   []string{"l"},
			EvolutionCapacity: 0.5,
		})
		require.NoError(t, err)
		return c
	}
	edda := mkChar("Edda")
	maren := mkChar("Maren")

	t.Run("event with unknown participant is rejected", func(t *testing.T) {
		_, err := m.Semantic.RecordEvent(ctx, RecordEventInput{
			WorldID:        w.ID,
			ParticipantIDs: []string{edda.ID, uuid.New().String()},
			Description:    "the lamp goes out",
			StoryTime:      1,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("events list in story-time order", func(t *testing.T) {
		for _, st := range []int{3, 1, 2} {
			_, err := m.Semantic.RecordEvent(ctx, RecordEventInput{
				WorldID:        w.ID,
				ParticipantIDs: []string{edda.ID},
				Description:    "beat",
				StoryTime:      st,
			})
			require.NoError(t, err)
		}
		events, err := m.Semantic.ListEvents(ctx, w.ID)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, 1, events[0].StoryTime)
		assert.Equal(t, 3, events[2].StoryTime)

		window, err := m.Semantic.ListEventsBetween(ctx, w.ID, 2, 3)
		require.NoError(t, err)
		assert.Len(t, window, 2)
	})

	t.Run("self link is rejected", func(t *testing.T) {
		_, err := m.Semantic.Link(ctx, LinkInput{
			WorldID:         w.ID,
			FromCharacterID: edda.ID,
			ToCharacterID:   edda.ID,
			Kind:            "rival",
			Weight:          0.5,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("link between world characters persists", func(t *testing.T) {
		rel, err := m.Semantic.Link(ctx, LinkInput{
			WorldID:         w.ID,
			FromCharacterID: edda.ID,
			ToCharacterID:   maren.ID,
			Kind:            "mentor",
			Weight:          0.8,
		})
		require.NoError(t, err)
		assert.Equal(t, "mentor", rel.Kind)

		rels, err := m.Semantic.ListRelationshipsFor(ctx, maren.ID)
		require.NoError(t, err)
		require.Len(t, rels, 1)
	})

	t.Run("motif occurrences accumulate", func(t *testing.T) {
		first, err := m.Semantic.RecordMotif(ctx, RecordMotifInput{
			WorldID:     w.ID,
			Name:        "the unlit lamp",
			Description: "absence of guidance",
			Occurrence:  "segment-1",
		})
		require.NoError(t, err)
		assert.Len(t, first.Occurrences, 1)

		second, err := m.Semantic.RecordMotif(ctx, RecordMotifInput{
			WorldID:    w.ID,
			Name:       "the unlit lamp",
			Occurrence: "segment-4",
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, []string{"segment-1", "segment-4"}, second.Occurrences)
	})
}

func TestEvolutionaryStore_ReferentialChecks(t *testing.T) {
	client := testdb.NewTestClient(t)
	m := New(client.Client)
	ctx := context.Background()

	w := seedWorld(t, m, client.Client)
	c, err := m.Structural.CreateCharacter(ctx, CreateCharacterInput{
		WorldID:           w.ID,
		Name:              "Edda",
		Trajectory:        "t",
		Contradictions:    []string{"c"},
		CognitiveLimits:   []string{"l"},
		EvolutionCapacity: 0.5,
	})
	require.NoError(t, err)

	event, err := m.Semantic.RecordEvent(ctx, RecordEventInput{
		WorldID:     w.ID,
		Description: "the storm",
		StoryTime:   1,
	})
	require.NoError(t, err)

	valid := RecordChangeInput{
		WorldID:        w.ID,
		EntityID:       c.ID,
		EntityType:     "character",
		ChangeType:     "belief_shift",
		BeforeState:    map[string]interface{}{"trusts_sea": true},
		AfterState:     map[string]interface{}{"trusts_sea": false},
		TriggerEventID: event.ID,
		Significance:   0.9,
	}

	t.Run("valid entry persists", func(t *testing.T) {
		entry, err := m.Evolutionary.RecordChange(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, c.ID, entry.EntityID)

		entries, err := m.Evolutionary.ListByEntity(ctx, c.ID)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("unknown entity is rejected", func(t *testing.T) {
		in := valid
		in.EntityID = uuid.New().String()
		_, err := m.Evolutionary.RecordChange(ctx, in)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown trigger event is rejected", func(t *testing.T) {
		in := valid
		in.TriggerEventID = uuid.New().String()
		_, err := m.Evolutionary.RecordChange(ctx, in)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("significance out of range is rejected", func(t *testing.T) {
		in := valid
		in.Significance = 1.5
		_, err := m.Evolutionary.RecordChange(ctx, in)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("world entry must reference the world itself", func(t *testing.T) {
		in := valid
		in.EntityType = "world"
		// entity id still points at the character
		_, err := m.Evolutionary.RecordChange(ctx, in)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		in.EntityID = w.ID
		_, err = m.Evolutionary.RecordChange(ctx, in)
		require.NoError(t, err)
	})
}

func TestMemory_Summaries(t *testing.T) {
	client := testdb.NewTestClient(t)
	m := New(client.Client)
	ctx := context.Background()

	w := seedWorld(t, m, client.Client)
	c, err := m.Structural.CreateCharacter(ctx, CreateCharacterInput{
		WorldID:           w.ID,
		Name:              "Edda",
		Trajectory:        "from duty to defiance",
		Contradictions:    []string{"craves company, drives people away"},
		CognitiveLimits:   []string{"does not know the ship sank"},
		EvolutionCapacity: 0.7,
	})
	require.NoError(t, err)

	t.Run("world summary carries rules and stays bounded", func(t *testing.T) {
		summary, err := m.SummarizeWorld(ctx, w.ID, 10)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(strings.Fields(summary)), 10)

		full, err := m.SummarizeWorld(ctx, w.ID, 0)
		require.NoError(t, err)
		assert.Contains(t, full, "Meridian")
		assert.Contains(t, full, "tides answer to grief")
	})

	t.Run("character summary carries limits", func(t *testing.T) {
		summary, err := m.SummarizeCharacter(ctx, c.ID, 0)
		require.NoError(t, err)
		assert.Contains(t, summary, "Edda")
		assert.Contains(t, summary, "does not know the ship sank")
	})
}

func TestMemory_ExportImportRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	m := New(client.Client)
	ctx := context.Background()

	w := seedWorld(t, m, client.Client)
	c, err := m.Structural.CreateCharacter(ctx, CreateCharacterInput{
		WorldID:           w.ID,
		Name:              "Edda",
		Trajectory:        "t",
		Contradictions:    []string{"c"},
		CognitiveLimits:   []string{"l"},
		EvolutionCapacity: 0.5,
	})
	require.NoError(t, err)
	event, err := m.Semantic.RecordEvent(ctx, RecordEventInput{
		WorldID:        w.ID,
		ParticipantIDs: []string{c.ID},
		Description:    "the storm",
		StoryTime:      1,
	})
	require.NoError(t, err)
	_, err = m.Evolutionary.RecordChange(ctx, RecordChangeInput{
		WorldID:        w.ID,
		EntityID:       c.ID,
		EntityType:     "character",
		ChangeType:     "belief_shift",
		TriggerEventID: event.ID,
		Significance:   0.4,
	})
	require.NoError(t, err)
	_, err = m.Semantic.RecordMotif(ctx, RecordMotifInput{
		WorldID:    w.ID,
		Name:       "the unlit lamp",
		Occurrence: "segment-1",
	})
	require.NoError(t, err)

	snap, err := m.Export(ctx, w.JobID)
	require.NoError(t, err)
	require.NotNil(t, snap.World)
	assert.Len(t, snap.Characters, 1)
	assert.Len(t, snap.Events, 1)
	assert.Len(t, snap.Motifs, 1)
	assert.Len(t, snap.Evolution, 1)

	// Remove the source job; cascades wipe its memory so the original ids
	// are free to be re-imported
	err = client.Client.Job.DeleteOneID(w.JobID).Exec(ctx)
	require.NoError(t, err)

	newJob := createTestJob(t, client.Client)
	require.NoError(t, m.Import(ctx, newJob, snap))

	restored, err := m.Export(ctx, newJob)
	require.NoError(t, err)
	assert.Equal(t, snap.World.ID, restored.World.ID)
	assert.Equal(t, snap.Characters, restored.Characters)
	assert.Equal(t, snap.Events, restored.Events)
	assert.Equal(t, snap.Motifs, restored.Motifs)
	assert.Equal(t, snap.Evolution, restored.Evolution)
}
