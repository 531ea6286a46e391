package checkpoint

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/narraforge/narraforge/ent"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/pkg/pipeline"
	testdb "github.com/narraforge/narraforge/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJob(t *testing.T, client *ent.Client) string {
	t.Helper()
	jobID := uuid.New().String()
	_, err := client.Job.Create().
		SetID(jobID).
		SetBrief(map[string]interface{}{"inspiration": "x"}).
		SetProductionType("short_story").
		SetGenre("mystery").
		SetCumulativeCostUsd(0.42).
		SetCumulativePromptTokens(100).
		SetCumulativeCompletionTokens(50).
		Save(context.Background())
	require.NoError(t, err)
	return jobID
}

func TestManager_SaveAndResume(t *testing.T) {
	client := testdb.NewTestClient(t)
	m := NewManager(client.Client, slog.Default())
	ctx := context.Background()

	jobID := createTestJob(t, client.Client)

	pc := pipeline.NewContext()
	require.NoError(t, pc.Put(pipeline.KeyBriefInterpretation, pipeline.Entry{
		Stage:   1,
		Payload: json.RawMessage(`{"genre":"mystery"}`),
	}))

	require.NoError(t, m.Save(ctx, jobID, 1, pc, nil))

	t.Run("boundary is immutable", func(t *testing.T) {
		err := m.Save(ctx, jobID, 1, pc, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already written")
	})

	t.Run("checkpoint carries the job counters", func(t *testing.T) {
		cp, err := m.Get(ctx, jobID, 1)
		require.NoError(t, err)
		assert.InDelta(t, 0.42, cp.CostUsd, 1e-9)
		assert.Equal(t, 100, cp.PromptTokens)
		assert.Equal(t, 50, cp.CompletionTokens)
	})

	t.Run("job current stage advances", func(t *testing.T) {
		j, err := client.Client.Job.Get(ctx, jobID)
		require.NoError(t, err)
		require.NotNil(t, j.CurrentStage)
		assert.Equal(t, 1, *j.CurrentStage)
	})

	t.Run("resume restarts at the first incomplete stage", func(t *testing.T) {
		require.NoError(t, pc.Put(pipeline.KeyWorldBible, pipeline.Entry{
			Stage:   2,
			Payload: json.RawMessage(`{"name":"Meridian"}`),
		}))
		require.NoError(t, m.Save(ctx, jobID, 2, pc, nil))

		restored, nextStage, err := m.Resume(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, 3, nextStage)
		assert.Equal(t,
			[]string{pipeline.KeyBriefInterpretation, pipeline.KeyWorldBible},
			restored.Keys())
	})
}

func TestManager_ResumeWithoutCheckpoints(t *testing.T) {
	client := testdb.NewTestClient(t)
	m := NewManager(client.Client, slog.Default())

	jobID := createTestJob(t, client.Client)

	pc, nextStage, err := m.Resume(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, 1, nextStage)
	assert.Empty(t, pc.Keys())
}

func TestManager_MemoryWritesShareTheTransaction(t *testing.T) {
	client := testdb.NewTestClient(t)
	m := NewManager(client.Client, slog.Default())
	ctx := context.Background()

	jobID := createTestJob(t, client.Client)
	pc := pipeline.NewContext()
	require.NoError(t, pc.Put(pipeline.KeyWorldBible, pipeline.Entry{
		Stage:   2,
		Payload: json.RawMessage(`{}`),
	}))

	worldID := uuid.New().String()
	require.NoError(t, m.Save(ctx, jobID, 2, pc, func(tx *ent.Tx) error {
		_, err := tx.World.Create().
			SetID(worldID).
			SetJobID(jobID).
			SetName("Meridian").
			SetRules([]string{"r"}).
			SetBoundaries([]string{}).
			SetAnomalies([]string{}).
			SetCoreConflict("c").
			SetTheme("t").
			Save(ctx)
		return err
	}))

	t.Run("memory write landed with the checkpoint", func(t *testing.T) {
		w, err := client.Client.World.Get(ctx, worldID)
		require.NoError(t, err)
		assert.Equal(t, jobID, w.JobID)
	})

	t.Run("failed memory write rolls back the checkpoint", func(t *testing.T) {
		require.NoError(t, pc.Put(pipeline.KeyCharacters, pipeline.Entry{
			Stage:   3,
			Payload: json.RawMessage(`{}`),
		}))
		err := m.Save(ctx, jobID, 3, pc, func(tx *ent.Tx) error {
			// Duplicate world violates the one-world-per-job constraint
			_, err := tx.World.Create().
				SetID(uuid.New().String()).
				SetJobID(jobID).
				SetName("Other").
				SetRules([]string{"r"}).
				SetBoundaries([]string{}).
				SetAnomalies([]string{}).
				SetCoreConflict("c").
				SetTheme("t").
				Save(ctx)
			return err
		})
		require.Error(t, err)

		_, err = m.Get(ctx, jobID, 3)
		require.Error(t, err)
	})
}

func TestManager_SweepExpired(t *testing.T) {
	client := testdb.NewTestClient(t)
	m := NewManager(client.Client, slog.Default())
	ctx := context.Background()

	mkCheckpoint := func(jobID string, age time.Duration) {
		_, err := client.Client.Checkpoint.Create().
			SetID(uuid.New().String()).
			SetJobID(jobID).
			SetStage(1).
			SetContextSnapshot(map[string]interface{}{}).
			SetCostUsd(0).
			SetPromptTokens(0).
			SetCompletionTokens(0).
			SetCreatedAt(time.Now().Add(-age)).
			Save(ctx)
		require.NoError(t, err)
	}

	completedJob := createTestJob(t, client.Client)
	require.NoError(t, client.Client.Job.UpdateOneID(completedJob).
		SetStatus(job.StatusCompleted).Exec(ctx))
	mkCheckpoint(completedJob, 48*time.Hour)

	runningJob := createTestJob(t, client.Client)
	require.NoError(t, client.Client.Job.UpdateOneID(runningJob).
		SetStatus(job.StatusRunning).Exec(ctx))
	mkCheckpoint(runningJob, 48*time.Hour)

	n, err := m.SweepExpired(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// The running job keeps its checkpoint
	cp, err := m.Latest(ctx, runningJob)
	require.NoError(t, err)
	require.NotNil(t, cp)

	swept, err := m.Latest(ctx, completedJob)
	require.NoError(t, err)
	assert.Nil(t, swept)
}
