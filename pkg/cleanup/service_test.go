package cleanup

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/pkg/checkpoint"
	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/database"
	"github.com/narraforge/narraforge/pkg/models"
	"github.com/narraforge/narraforge/pkg/services"
	testdb "github.com/narraforge/narraforge/test/database"
)

func setupCleanup(t *testing.T, cfg *config.RetentionConfig) (*database.Client, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	jobService := services.NewJobService(client.Client)
	eventService := services.NewEventService(client.Client)
	checkpoints := checkpoint.NewManager(client.Client, slog.Default())
	return client, NewService(cfg, jobService, eventService, checkpoints)
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		JobRetentionDays:    180,
		CheckpointRetention: 30 * 24 * time.Hour,
		EventTTL:            1 * time.Hour,
		CleanupInterval:     1 * time.Hour,
	}
}

func submitJob(t *testing.T, client *database.Client) string {
	t.Helper()
	j, err := services.NewJobService(client.Client).SubmitJob(context.Background(), models.Brief{
		ProductionType: models.ProductionShortStory,
		Genre:          "mystery",
		Inspiration:    "an auctioneer selling the last minute of silence",
	})
	require.NoError(t, err)
	return j.ID
}

func TestService_SoftDeletesOldCompletedJobs(t *testing.T) {
	client, svc := setupCleanup(t, retentionConfig())
	ctx := context.Background()

	old := submitJob(t, client)
	require.NoError(t, client.Client.Job.UpdateOneID(old).
		SetStatus(job.StatusCompleted).
		SetCompletedAt(time.Now().Add(-200*24*time.Hour)).
		Exec(ctx))

	recent := submitJob(t, client)
	require.NoError(t, client.Client.Job.UpdateOneID(recent).
		SetStatus(job.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx))

	svc.runAll(ctx)

	deleted, err := client.Client.Job.Get(ctx, old)
	require.NoError(t, err)
	assert.NotNil(t, deleted.DeletedAt)

	kept, err := client.Client.Job.Get(ctx, recent)
	require.NoError(t, err)
	assert.Nil(t, kept.DeletedAt)
}

func TestService_SweepsCheckpointsOfTerminalJobs(t *testing.T) {
	client, svc := setupCleanup(t, retentionConfig())
	ctx := context.Background()

	completed := submitJob(t, client)
	require.NoError(t, client.Client.Job.UpdateOneID(completed).
		SetStatus(job.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx))

	// Failed jobs keep their checkpoints so resume stays possible
	failed := submitJob(t, client)
	require.NoError(t, client.Client.Job.UpdateOneID(failed).
		SetStatus(job.StatusFailed).
		SetErrorKind("transport").
		SetCompletedAt(time.Now()).
		Exec(ctx))

	age := 40 * 24 * time.Hour
	for _, id := range []string{completed, failed} {
		_, err := client.Client.Checkpoint.Create().
			SetJobID(id).
			SetStage(1).
			SetContextSnapshot(map[string]interface{}{}).
			SetCostUsd(0).
			SetPromptTokens(0).
			SetCompletionTokens(0).
			SetCreatedAt(time.Now().Add(-age)).
			Save(ctx)
		require.NoError(t, err)
	}

	svc.runAll(ctx)

	completedCPs, err := client.Client.Job.Get(ctx, completed)
	require.NoError(t, err)
	n, err := completedCPs.QueryCheckpoints().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	failedJob, err := client.Client.Job.Get(ctx, failed)
	require.NoError(t, err)
	n, err = failedJob.QueryCheckpoints().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestService_CleansUpOldEvents(t *testing.T) {
	client, svc := setupCleanup(t, retentionConfig())
	ctx := context.Background()

	jobID := submitJob(t, client)
	channel := "job:" + jobID

	_, err := client.Client.Event.Create().
		SetJobID(jobID).
		SetChannel(channel).
		SetPayload(map[string]interface{}{}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Client.Event.Create().
		SetJobID(jobID).
		SetChannel(channel).
		SetPayload(map[string]interface{}{}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	events, err := services.NewEventService(client.Client).GetEventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "old event deleted, recent event preserved")
}

func TestService_StartStop(t *testing.T) {
	_, svc := setupCleanup(t, retentionConfig())

	svc.Start(context.Background())
	svc.Start(context.Background()) // idempotent
	svc.Stop()
}
