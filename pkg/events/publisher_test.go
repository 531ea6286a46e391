package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/ent/job"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(JobStatusPayload{
			Type:      EventTypeJobStatus,
			JobID:     "abc-123",
			Status:    job.StatusRunning,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeJobStatus)
		assert.Contains(t, result, "abc-123")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(JobFailedPayload{
			Type:      EventTypeJobFailed,
			JobID:     "abc-123",
			Stage:     6,
			ErrorKind: "schema",
			Message:   strings.Repeat("a", 8000),
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(JobFailedPayload{
			Type:      EventTypeJobFailed,
			JobID:     "job-789",
			Stage:     9,
			ErrorKind: "quality",
			Message:   strings.Repeat("x", 8000),
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(result), &decoded))
		assert.Equal(t, EventTypeJobFailed, decoded["type"])
		assert.Equal(t, "job-789", decoded["job_id"])
		assert.Equal(t, true, decoded["truncated"])
		// No db_event_id was injected, so none should appear
		_, hasID := decoded["db_event_id"]
		assert.False(t, hasID)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into small payload", func(t *testing.T) {
		payload, _ := json.Marshal(JobStatusPayload{
			Type:      EventTypeJobStatus,
			JobID:     "abc-123",
			Status:    job.StatusCompleted,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(result), &decoded))
		assert.Equal(t, float64(42), decoded["db_event_id"])
		assert.Equal(t, "abc-123", decoded["job_id"])
	})

	t.Run("keeps db_event_id in truncation envelope", func(t *testing.T) {
		payload, _ := json.Marshal(JobFailedPayload{
			Type:      EventTypeJobFailed,
			JobID:     "abc-123",
			Message:   strings.Repeat("y", 8000),
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})

		result, err := injectDBEventIDAndTruncate(payload, 99)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(result), &decoded))
		assert.Equal(t, true, decoded["truncated"])
		assert.Equal(t, float64(99), decoded["db_event_id"])
		assert.Equal(t, "abc-123", decoded["job_id"])
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := injectDBEventIDAndTruncate([]byte("not json"), 1)
		assert.Error(t, err)
	})
}
