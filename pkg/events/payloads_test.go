package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/ent/job"
)

// TestJobChannelPayloads_ContainJobID is a contract test between the backend
// and the WebSocket client.
//
// Clients route incoming events by inspecting `job_id` in the JSON payload.
// ANY payload broadcast on a job-specific channel (job:{id}) MUST include a
// non-empty `job_id` field — otherwise the client silently drops it. If you
// add a new payload that goes through a job channel, add it here.
func TestJobChannelPayloads_ContainJobID(t *testing.T) {
	const testJobID = "job-contract-test"
	now := time.Now().Format(time.RFC3339Nano)

	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "JobStatusPayload",
			payload: JobStatusPayload{
				Type:      EventTypeJobStatus,
				JobID:     testJobID,
				Status:    job.StatusRunning,
				Timestamp: now,
			},
		},
		{
			name: "StageStatusPayload",
			payload: StageStatusPayload{
				Type:      EventTypeStageStatus,
				JobID:     testJobID,
				Stage:     3,
				StageName: "character-architect",
				Status:    StageStatusStarted,
				Attempt:   1,
				Timestamp: now,
			},
		},
		{
			name: "StageCompletePayload",
			payload: StageCompletePayload{
				Type:        EventTypeStageComplete,
				JobID:       testJobID,
				Stage:       6,
				StageName:   "sequential-generator",
				ProducedKey: "segments",
				Words:       4200,
				CostUsd:     0.42,
				DurationMs:  90000,
				Attempts:    1,
				Timestamp:   now,
			},
		},
		{
			name: "JobCompletePayload",
			payload: JobCompletePayload{
				Type:           EventTypeJobComplete,
				JobID:          testJobID,
				Directory:      "./output/" + testJobID,
				WordCount:      7800,
				SegmentCount:   12,
				CoherenceScore: 0.93,
				TotalCostUsd:   1.80,
				Timestamp:      now,
			},
		},
		{
			name: "JobFailedPayload",
			payload: JobFailedPayload{
				Type:      EventTypeJobFailed,
				JobID:     testJobID,
				Stage:     7,
				ErrorKind: "quality",
				Message:   "coherence below gate after retries",
				Timestamp: now,
			},
		},
		{
			name: "StageProgressPayload",
			payload: StageProgressPayload{
				Type:      EventTypeStageProgress,
				JobID:     testJobID,
				Stage:     6,
				Done:      4,
				Total:     12,
				Message:   "segment 4 written",
				Timestamp: now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			var decoded map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &decoded))

			assert.Equal(t, testJobID, decoded["job_id"], "payload must carry job_id")
			assert.NotEmpty(t, decoded["type"], "payload must carry type")
			assert.NotEmpty(t, decoded["timestamp"], "payload must carry timestamp")
		})
	}
}

func TestStageStatusPayload_OmitsEmptyOptionalFields(t *testing.T) {
	data, err := json.Marshal(StageStatusPayload{
		Type:      EventTypeStageStatus,
		JobID:     "j-1",
		Stage:     1,
		StageName: "brief-interpreter",
		Status:    StageStatusStarted,
		Attempt:   1,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	_, hasTier := decoded["tier"]
	_, hasErrorKind := decoded["error_kind"]
	assert.False(t, hasTier, "tier should be omitted when empty")
	assert.False(t, hasErrorKind, "error_kind should be omitted when empty")
}

func TestJobStatusPayload_OmitsZeroStage(t *testing.T) {
	data, err := json.Marshal(JobStatusPayload{
		Type:      EventTypeJobStatus,
		JobID:     "j-1",
		Status:    job.StatusPending,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	_, hasStage := decoded["current_stage"]
	assert.False(t, hasStage, "current_stage should be omitted before stage 1")
}
