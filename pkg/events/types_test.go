package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobChannel(t *testing.T) {
	tests := []struct {
		name  string
		jobID string
		want  string
	}{
		{
			name:  "formats job channel correctly",
			jobID: "abc-123",
			want:  "job:abc-123",
		},
		{
			name:  "handles UUID format",
			jobID: "550e8400-e29b-41d4-a716-446655440000",
			want:  "job:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:  "handles empty string",
			jobID: "",
			want:  "job:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JobChannel(tt.jobID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeJobStatus,
		EventTypeStageStatus,
		EventTypeStageComplete,
		EventTypeJobComplete,
		EventTypeJobFailed,
		EventTypeStageProgress,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestStageStatusConstants(t *testing.T) {
	statuses := []string{
		StageStatusStarted,
		StageStatusCompleted,
		StageStatusFailed,
		StageStatusRetrying,
		StageStatusCancelled,
	}

	seen := make(map[string]bool)
	for _, status := range statuses {
		assert.NotEmpty(t, status, "stage status should not be empty")
		assert.False(t, seen[status], "duplicate stage status: %s", status)
		seen[status] = true
	}
}

func TestGlobalJobsChannel(t *testing.T) {
	assert.Equal(t, "jobs", GlobalJobsChannel)
}
