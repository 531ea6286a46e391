package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/ent"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/pkg/database"
	"github.com/narraforge/narraforge/pkg/services"
	testdb "github.com/narraforge/narraforge/test/database"
	"github.com/narraforge/narraforge/test/util"
)

// createTestJob inserts a minimal Job row to satisfy the FK on events.
func createTestJob(t *testing.T, client *ent.Client) string {
	t.Helper()
	jobID := uuid.New().String()
	_, err := client.Job.Create().
		SetID(jobID).
		SetBrief(map[string]interface{}{"production_type": "short_story", "genre": "mystery", "inspiration": "test"}).
		SetProductionType("short_story").
		SetGenre("mystery").
		SetContentLanguage("en").
		SetStatus(job.StatusPending).
		Save(context.Background())
	require.NoError(t, err)
	return jobID
}

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	jobID        string // Pre-created Job (satisfies FK on events)
	channel      string // job:<jobID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	jobID := createTestJob(t, dbClient.Client)
	channel := JobChannel(jobID)

	// Real components
	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &streamingTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		jobID:        jobID,
		channel:      channel,
	}
}

func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the env's channel, reads subscription.confirmed, and waits
// for the LISTEN to propagate.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	require.Eventually(t, func() bool {
		return env.listener.isListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", env.channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	err := env.publisher.PublishStageStatus(ctx, env.jobID, StageStatusPayload{
		Type:      EventTypeStageStatus,
		JobID:     env.jobID,
		Stage:     1,
		StageName: "brief-interpreter",
		Status:    StageStatusStarted,
		Attempt:   1,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	err = env.publisher.PublishStageComplete(ctx, env.jobID, StageCompletePayload{
		Type:        EventTypeStageComplete,
		JobID:       env.jobID,
		Stage:       1,
		StageName:   "brief-interpreter",
		ProducedKey: "brief_interpretation",
		Words:       320,
		CostUsd:     0.01,
		DurationMs:  1800,
		Attempts:    1,
		Timestamp:   time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// Query persisted events via EventService
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, env.jobID, events[0].JobID)
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeStageStatus, events[0].Payload["type"])
	assert.Equal(t, StageStatusStarted, events[0].Payload["status"])

	assert.Equal(t, EventTypeStageComplete, events[1].Payload["type"])
	assert.Equal(t, "brief_interpretation", events[1].Payload["produced_key"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	err := env.publisher.PublishStageProgress(ctx, env.jobID, StageProgressPayload{
		Type:      EventTypeStageProgress,
		JobID:     env.jobID,
		Stage:     6,
		Done:      2,
		Total:     12,
		Message:   "segment 2 written",
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	err := env.publisher.PublishStageStatus(ctx, env.jobID, StageStatusPayload{
		Type:      EventTypeStageStatus,
		JobID:     env.jobID,
		Stage:     2,
		StageName: "world-architect",
		Status:    StageStatusStarted,
		Attempt:   1,
		Tier:      "advanced",
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	// The event should arrive via pg_notify → listener → manager
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeStageStatus, msg["type"])
	assert.Equal(t, "world-architect", msg["stage_name"])
	assert.Equal(t, env.jobID, msg["job_id"])
	// db_event_id should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_TransientEventDelivery(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	err := env.publisher.PublishStageProgress(ctx, env.jobID, StageProgressPayload{
		Type:      EventTypeStageProgress,
		JobID:     env.jobID,
		Stage:     8,
		Done:      5,
		Total:     12,
		Message:   "segment 5 stylized",
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeStageProgress, msg["type"])
	assert.Equal(t, float64(5), msg["done"])
	// Transient events carry no db_event_id
	_, hasID := msg["db_event_id"]
	assert.False(t, hasID)
}

func TestIntegration_AutoCatchupAfterSubscribe(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish two events BEFORE anyone subscribes
	for i, status := range []string{StageStatusStarted, StageStatusCompleted} {
		err := env.publisher.PublishStageStatus(ctx, env.jobID, StageStatusPayload{
			Type:      EventTypeStageStatus,
			JobID:     env.jobID,
			Stage:     1,
			StageName: "brief-interpreter",
			Status:    status,
			Attempt:   i + 1,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})
		require.NoError(t, err)
	}

	// A late subscriber receives both through the automatic replay
	conn := env.subscribeAndWait(t)

	msg1 := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, StageStatusStarted, msg1["status"])
	assert.NotNil(t, msg1["db_event_id"])

	msg2 := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, StageStatusCompleted, msg2["status"])
}

func TestIntegration_TruncatedEventRecoverable(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	// Oversized payload: NOTIFY carries only the truncation envelope, but
	// the full event is persisted and recoverable by db_event_id.
	longMessage := strings.Repeat("the fog never lifted ", 500)
	err := env.publisher.PublishJobFailed(ctx, env.jobID, JobFailedPayload{
		Type:      EventTypeJobFailed,
		JobID:     env.jobID,
		Stage:     7,
		ErrorKind: "quality",
		Message:   longMessage,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeJobFailed, msg["type"])
	assert.Equal(t, true, msg["truncated"])
	require.NotNil(t, msg["db_event_id"])

	dbEventID := int64(msg["db_event_id"].(float64))
	events, err := env.eventService.GetEventsSince(ctx, env.channel, dbEventID-1, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, longMessage, events[0].Payload["message"])
}

func TestIntegration_LocalSubscriberReceivesPublishedEvents(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	ch, cancel, err := env.manager.Subscribe(ctx, env.jobID)
	require.NoError(t, err)
	defer cancel()

	require.Eventually(t, func() bool {
		return env.listener.isListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond)

	err = env.publisher.PublishJobStatus(ctx, env.jobID, JobStatusPayload{
		Type:      EventTypeJobStatus,
		JobID:     env.jobID,
		Status:    job.StatusRunning,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	select {
	case data := <-ch:
		var msg map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, EventTypeJobStatus, msg["type"])
		assert.Equal(t, string(job.StatusRunning), msg["status"])
	case <-time.After(5 * time.Second):
		t.Fatal("local subscriber did not receive published event")
	}
}
