package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLocal(t *testing.T, ch <-chan []byte) map[string]interface{} {
	t.Helper()
	select {
	case data, ok := <-ch:
		require.True(t, ok, "subscription channel closed unexpectedly")
		var msg map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for local event")
		return nil
	}
}

func TestSubscribe_ReplaysPersistedLog(t *testing.T) {
	events := []CatchupEvent{
		{ID: 1, Payload: map[string]interface{}{"type": EventTypeJobStatus, "seq": float64(1)}},
		{ID: 2, Payload: map[string]interface{}{"type": EventTypeStageStatus, "seq": float64(2)}},
	}
	manager := NewConnectionManager(&mockCatchupQuerier{events: events}, time.Second)

	ch, cancel, err := manager.Subscribe(context.Background(), "replay-job")
	require.NoError(t, err)
	defer cancel()

	msg1 := readLocal(t, ch)
	assert.Equal(t, float64(1), msg1["seq"])
	assert.Equal(t, float64(1), msg1["db_event_id"])

	msg2 := readLocal(t, ch)
	assert.Equal(t, float64(2), msg2["seq"])
	assert.Equal(t, float64(2), msg2["db_event_id"])
}

func TestSubscribe_StreamsLiveEvents(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, time.Second)

	ch, cancel, err := manager.Subscribe(context.Background(), "live-job")
	require.NoError(t, err)
	defer cancel()

	payload, _ := json.Marshal(map[string]interface{}{"type": EventTypeStageStatus, "stage": 2})
	manager.Broadcast(JobChannel("live-job"), payload)

	msg := readLocal(t, ch)
	assert.Equal(t, EventTypeStageStatus, msg["type"])
	assert.Equal(t, float64(2), msg["stage"])
}

func TestSubscribe_ClosesOnTerminalEvent(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, time.Second)

	ch, cancel, err := manager.Subscribe(context.Background(), "terminal-job")
	require.NoError(t, err)
	defer cancel()

	payload, _ := json.Marshal(map[string]interface{}{"type": EventTypeJobComplete, "job_id": "terminal-job"})
	manager.Broadcast(JobChannel("terminal-job"), payload)

	msg := readLocal(t, ch)
	assert.Equal(t, EventTypeJobComplete, msg["type"])

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should close after terminal event")
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close after terminal event")
	}
}

func TestSubscribe_CancelStopsDelivery(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, time.Second)

	ch, cancel, err := manager.Subscribe(context.Background(), "cancel-job")
	require.NoError(t, err)

	cancel()

	// Channel closes and later broadcasts are not delivered
	_, ok := <-ch
	assert.False(t, ok)

	payload, _ := json.Marshal(map[string]interface{}{"type": EventTypeStageStatus})
	assert.NotPanics(t, func() {
		manager.Broadcast(JobChannel("cancel-job"), payload)
	})
}

func TestSubscribe_CancelIsIdempotent(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, time.Second)

	_, cancel, err := manager.Subscribe(context.Background(), "idem-job")
	require.NoError(t, err)

	cancel()
	assert.NotPanics(t, cancel)
}

func TestSubscribe_IndependentSubscribers(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, time.Second)

	ch1, cancel1, err := manager.Subscribe(context.Background(), "multi-job")
	require.NoError(t, err)
	defer cancel1()

	ch2, cancel2, err := manager.Subscribe(context.Background(), "multi-job")
	require.NoError(t, err)
	defer cancel2()

	payload, _ := json.Marshal(map[string]interface{}{"type": EventTypeStageStatus, "stage": 4})
	manager.Broadcast(JobChannel("multi-job"), payload)

	assert.Equal(t, float64(4), readLocal(t, ch1)["stage"])
	assert.Equal(t, float64(4), readLocal(t, ch2)["stage"])
}
