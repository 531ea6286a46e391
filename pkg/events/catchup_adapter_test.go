package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/pkg/services"
	testdb "github.com/narraforge/narraforge/test/database"
)

func TestEventServiceAdapter_GetCatchupEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	jobID := createTestJob(t, client.Client)
	channel := JobChannel(jobID)

	var ids []int64
	for i := 0; i < 3; i++ {
		evt, err := client.Client.Event.Create().
			SetJobID(jobID).
			SetChannel(channel).
			SetPayload(map[string]interface{}{"type": EventTypeStageStatus, "seq": float64(i + 1)}).
			Save(ctx)
		require.NoError(t, err)
		ids = append(ids, evt.ID)
	}

	adapter := NewEventServiceAdapter(services.NewEventService(client.Client))

	t.Run("maps ent events to catchup events", func(t *testing.T) {
		events, err := adapter.GetCatchupEvents(ctx, channel, 0, 10)
		require.NoError(t, err)
		require.Len(t, events, 3)

		assert.Equal(t, ids[0], events[0].ID)
		assert.Equal(t, ids[2], events[2].ID)
		assert.Equal(t, EventTypeStageStatus, events[0].Payload["type"])
		assert.Equal(t, float64(1), events[0].Payload["seq"])
	})

	t.Run("respects sinceID", func(t *testing.T) {
		events, err := adapter.GetCatchupEvents(ctx, channel, ids[1], 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, ids[2], events[0].ID)
	})

	t.Run("respects limit", func(t *testing.T) {
		events, err := adapter.GetCatchupEvents(ctx, channel, 0, 2)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("empty channel returns no events", func(t *testing.T) {
		events, err := adapter.GetCatchupEvents(ctx, "job:nothing-here", 0, 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
