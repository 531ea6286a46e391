package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/ent"
	testdb "github.com/narraforge/narraforge/test/database"
)

func createTestEvent(t *testing.T, client *ent.Client, jobID, channel string, payload map[string]interface{}) *ent.Event {
	t.Helper()
	evt, err := client.Event.Create().
		SetJobID(jobID).
		SetChannel(channel).
		SetPayload(payload).
		SetCreatedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return evt
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	jobService := NewJobService(client.Client)
	ctx := context.Background()

	j := submitTestJob(t, jobService)
	channel := "job:" + j.ID

	evt1 := createTestEvent(t, client.Client, j.ID, channel, map[string]interface{}{"seq": 1})
	evt2 := createTestEvent(t, client.Client, j.ID, channel, map[string]interface{}{"seq": 2})
	evt3 := createTestEvent(t, client.Client, j.ID, channel, map[string]interface{}{"seq": 3})

	t.Run("retrieves events since ID in order", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, evt1.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, evt2.ID, events[0].ID)
		assert.Equal(t, evt3.ID, events[1].ID)
	})

	t.Run("retrieves all events when sinceID is 0", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 3)
	})

	t.Run("respects limit parameter", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, 0, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, evt1.ID, events[0].ID)
	})

	t.Run("ignores other channels", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, "job:other", 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 0)
	})
}

func TestEventService_CleanupJobEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	jobService := NewJobService(client.Client)
	ctx := context.Background()

	j := submitTestJob(t, jobService)
	other := submitTestJob(t, jobService)

	for i := 0; i < 3; i++ {
		createTestEvent(t, client.Client, j.ID, "job:"+j.ID, map[string]interface{}{"seq": i})
	}
	createTestEvent(t, client.Client, other.ID, "job:"+other.ID, map[string]interface{}{"seq": 0})

	count, err := eventService.CleanupJobEvents(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	remaining, err := eventService.GetEventsSince(ctx, "job:"+other.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestEventService_CleanupOrphanedEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	jobService := NewJobService(client.Client)
	ctx := context.Background()

	j := submitTestJob(t, jobService)

	oldTime := time.Now().Add(-8 * 24 * time.Hour)
	_, err := client.Client.Event.Create().
		SetJobID(j.ID).
		SetChannel("job:" + j.ID).
		SetPayload(map[string]interface{}{}).
		SetCreatedAt(oldTime).
		Save(ctx)
	require.NoError(t, err)

	createTestEvent(t, client.Client, j.ID, "job:"+j.ID, map[string]interface{}{"seq": 1})

	count, err := eventService.CleanupOrphanedEvents(ctx, 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	remaining, err := eventService.GetEventsSince(ctx, "job:"+j.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
