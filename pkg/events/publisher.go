package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes job events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY.
// Transient events (progress ticks) are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
// Internally, payloads are marshaled to JSON and routed to the appropriate
// channel (derived from jobID) via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishJobStatus persists a job status event to the job channel and
// broadcasts a transient copy to the global jobs channel. Both publishes are
// best-effort: if the persistent one fails, the transient one is still
// attempted. Returns the first error encountered (if any).
func (p *EventPublisher) PublishJobStatus(ctx context.Context, jobID string, payload JobStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal JobStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, jobID, JobChannel(jobID), payloadJSON); err != nil {
		slog.Warn("Failed to publish job status to job channel",
			"job_id", jobID, "status", payload.Status, "error", err)
		firstErr = err
	}

	// Also broadcast to the global jobs channel (transient — for the job list)
	if err := p.notifyOnly(ctx, GlobalJobsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish job status to global channel",
			"job_id", jobID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishStageStatus persists and broadcasts a stage.status event.
// Used for stage lifecycle transitions (started, completed, retrying, etc.).
func (p *EventPublisher) PublishStageStatus(ctx context.Context, jobID string, payload StageStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StageStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, jobID, JobChannel(jobID), payloadJSON)
}

// PublishStageComplete persists and broadcasts a stage.complete event.
// Published after the stage's checkpoint committed.
func (p *EventPublisher) PublishStageComplete(ctx context.Context, jobID string, payload StageCompletePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StageCompletePayload: %w", err)
	}
	return p.persistAndNotify(ctx, jobID, JobChannel(jobID), payloadJSON)
}

// PublishJobComplete persists and broadcasts the terminal job.complete event
// and mirrors it transiently to the global jobs channel.
func (p *EventPublisher) PublishJobComplete(ctx context.Context, jobID string, payload JobCompletePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal JobCompletePayload: %w", err)
	}

	if err := p.persistAndNotify(ctx, jobID, JobChannel(jobID), payloadJSON); err != nil {
		return err
	}
	if err := p.notifyOnly(ctx, GlobalJobsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to mirror job completion to global channel",
			"job_id", jobID, "error", err)
	}
	return nil
}

// PublishJobFailed persists and broadcasts the terminal job.failed event
// and mirrors it transiently to the global jobs channel.
func (p *EventPublisher) PublishJobFailed(ctx context.Context, jobID string, payload JobFailedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal JobFailedPayload: %w", err)
	}

	if err := p.persistAndNotify(ctx, jobID, JobChannel(jobID), payloadJSON); err != nil {
		return err
	}
	if err := p.notifyOnly(ctx, GlobalJobsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to mirror job failure to global channel",
			"job_id", jobID, "error", err)
	}
	return nil
}

// PublishStageProgress broadcasts a stage.progress transient event (no DB
// persistence). Used for high-frequency per-segment progress — ephemeral,
// lost on disconnect.
func (p *EventPublisher) PublishStageProgress(ctx context.Context, jobID string, payload StageProgressPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StageProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, JobChannel(jobID), payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, jobID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (job_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		jobID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		JobID     string `json:"job_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"job_id":    routing.JobID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
