// Package events provides real-time job event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Two delivery classes exist. Persistent events (job and stage lifecycle)
// are written to the events table and NOTIFYed in the same transaction, so
// late subscribers can replay them by serial id. Transient events (stage
// progress ticks) are NOTIFY-only: high frequency, lost on disconnect, and
// always superseded by the next persistent event.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// EventTypeJobStatus marks a job lifecycle transition
	EventTypeJobStatus = "job.status"

	// EventTypeStageStatus marks a stage attempt starting or ending
	EventTypeStageStatus = "stage.status"

	// EventTypeStageComplete carries the completed stage's summary
	EventTypeStageComplete = "stage.complete"

	// EventTypeJobComplete carries the output manifest summary. Terminal.
	EventTypeJobComplete = "job.complete"

	// EventTypeJobFailed carries the failing stage and error kind. Terminal.
	EventTypeJobFailed = "job.failed"
)

// Stage lifecycle status values (used in StageStatusPayload.Status).
const (
	StageStatusStarted   = "started"
	StageStatusCompleted = "completed"
	StageStatusFailed    = "failed"
	StageStatusRetrying  = "retrying"
	StageStatusCancelled = "cancelled"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// EventTypeStageProgress reports per-stage progress ticks, such as
	// segments written so far. High-frequency, ephemeral.
	EventTypeStageProgress = "stage.progress"
)

// GlobalJobsChannel is the channel for job-level status events. The job
// list page subscribes to this for real-time updates.
const GlobalJobsChannel = "jobs"

// JobChannel returns the channel name for a specific job's events.
// Format: "job:{job_id}"
func JobChannel(jobID string) string {
	return "job:" + jobID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "job:abc-123")
	LastEventID *int64 `json:"last_event_id,omitempty"` // For catchup
}
