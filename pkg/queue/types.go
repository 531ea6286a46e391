// Package queue provides job queue management and processing infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/narraforge/narraforge/ent"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/pkg/events"
	"github.com/narraforge/narraforge/pkg/pipeline"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no pending jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobExecutor is the interface for job processing.
//
// The executor owns the ENTIRE pipeline run internally:
//   - Resumes from the job's last committed checkpoint (fresh jobs start at stage 1)
//   - Executes the remaining stages sequentially, retrying per stage
//   - Writes checkpoints, spend, and stage events progressively during execution
//
// The worker only handles: claiming, heartbeat, terminal status update, and
// the terminal job.status event.
type JobExecutor interface {
	Execute(ctx context.Context, j *ent.Job) *ExecutionResult
}

// ExecutionResult is lightweight — just the terminal state. All intermediate
// state (checkpoints, model call ledger, events) was already written to DB by
// the executor during processing.
type ExecutionResult struct {
	Status    job.Status         // completed, failed, cancelled
	Stage     int                // failing stage (1-based), 0 if completed
	ErrorKind pipeline.ErrorKind // classified failure kind (if failed)
	Error     error              // error details (if failed/cancelled)
}

// StatusPublisher publishes job status events for WebSocket delivery.
// Implemented by events.EventPublisher; may be nil (streaming disabled).
type StatusPublisher interface {
	PublishJobStatus(ctx context.Context, jobID string, payload events.JobStatusPayload) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	PodID           string         `json:"pod_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	ActiveJobs      int            `json:"active_jobs"`
	MaxConcurrent   int            `json:"max_concurrent"`
	QueueDepth      int            `json:"queue_depth"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
	LastOrphanScan  time.Time      `json:"last_orphan_scan"`
	OrphansRequeued int            `json:"orphans_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
