package events

import (
	"github.com/narraforge/narraforge/ent/job"
)

// JobStatusPayload is the payload for job.status events. Published when a
// job transitions between lifecycle states.
type JobStatusPayload struct {
	Type         string     `json:"type"`                    // always EventTypeJobStatus
	JobID        string     `json:"job_id"`                  // job UUID
	Status       job.Status `json:"status"`                  // pending, running, cancelling, completed, failed, cancelled
	CurrentStage int        `json:"current_stage,omitempty"` // 1-based, 0 before stage 1
	Timestamp    string     `json:"timestamp"`               // RFC3339Nano
}

// StageStatusPayload is the payload for stage.status events. One event type
// for every stage lifecycle transition (started, completed, failed,
// retrying, cancelled).
type StageStatusPayload struct {
	Type      string `json:"type"`                 // always EventTypeStageStatus
	JobID     string `json:"job_id"`               // job UUID
	Stage     int    `json:"stage"`                // 1-based
	StageName string `json:"stage_name"`           // agent name, e.g. "world-architect"
	Status    string `json:"status"`               // started, completed, failed, retrying, cancelled
	Attempt   int    `json:"attempt"`              // 1-based attempt counter
	Tier      string `json:"tier,omitempty"`       // capability tier of the attempt
	ErrorKind string `json:"error_kind,omitempty"` // set on failed/retrying
	Timestamp string `json:"timestamp"`            // RFC3339Nano
}

// StageCompletePayload is the payload for stage.complete events. Published
// after the stage's checkpoint committed, so a consumer that saw it can
// rely on the stage being resumable.
type StageCompletePayload struct {
	Type        string  `json:"type"`              // always EventTypeStageComplete
	JobID       string  `json:"job_id"`            // job UUID
	Stage       int     `json:"stage"`             // 1-based
	StageName   string  `json:"stage_name"`        // agent name
	ProducedKey string  `json:"produced_key"`      // context key the stage wrote
	Words       int     `json:"words"`             // words attributed to the payload
	CostUsd     float64 `json:"cost_usd"`          // cumulative job spend after the stage
	DurationMs  int64   `json:"duration_ms"`       // wall-clock stage duration
	Attempts    int     `json:"attempts"`          // attempts the stage needed
	Timestamp   string  `json:"timestamp"`         // RFC3339Nano
}

// JobCompletePayload is the payload for job.complete events. Terminal.
type JobCompletePayload struct {
	Type           string  `json:"type"`            // always EventTypeJobComplete
	JobID          string  `json:"job_id"`          // job UUID
	Directory      string  `json:"directory"`       // output artifact directory
	WordCount      int     `json:"word_count"`      // final narrative word count
	SegmentCount   int     `json:"segment_count"`   // segments in the final cut
	CoherenceScore float64 `json:"coherence_score"` // composite from stage 7
	TotalCostUsd   float64 `json:"total_cost_usd"`  // full job spend
	Timestamp      string  `json:"timestamp"`       // RFC3339Nano
}

// JobFailedPayload is the payload for job.failed events. Terminal.
// ErrorKind gates resume: cost_exceeded and permanent failures require a
// configuration change before a resume is accepted.
type JobFailedPayload struct {
	Type      string `json:"type"`       // always EventTypeJobFailed
	JobID     string `json:"job_id"`     // job UUID
	Stage     int    `json:"stage"`      // stage that failed, 1-based
	ErrorKind string `json:"error_kind"` // classified failure kind
	Message   string `json:"message"`    // human-readable failure summary
	Timestamp string `json:"timestamp"`  // RFC3339Nano
}

// StageProgressPayload is the payload for stage.progress transient events.
// Published for long-running stages (segment generation, stylization) —
// high frequency, ephemeral, never persisted.
type StageProgressPayload struct {
	Type      string `json:"type"`      // always EventTypeStageProgress
	JobID     string `json:"job_id"`    // job UUID
	Stage     int    `json:"stage"`     // 1-based
	Done      int    `json:"done"`      // units finished
	Total     int    `json:"total"`     // units planned
	Message   string `json:"message"`   // e.g. "segment 4 written"
	Timestamp string `json:"timestamp"` // RFC3339Nano
}
