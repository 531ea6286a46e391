// Package checkpoint persists per-stage pipeline state so interrupted jobs
// can resume at the last completed boundary.
package checkpoint

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/narraforge/narraforge/ent"
	entcheckpoint "github.com/narraforge/narraforge/ent/checkpoint"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/pkg/pipeline"
)

// Manager writes and reads stage checkpoints
type Manager struct {
	client *ent.Client
	logger *slog.Logger
}

// NewManager creates a checkpoint manager
func NewManager(client *ent.Client, logger *slog.Logger) *Manager {
	return &Manager{
		client: client,
		logger: logger.With("component", "checkpoint"),
	}
}

// Save records a stage boundary: the context snapshot, the job's cumulative
// cost and token counters, and the stage's memory writes, all in one
// transaction. writeMemory may be nil for stages without memory output.
// A boundary is immutable; saving the same (job, stage) twice fails.
func (m *Manager) Save(ctx context.Context, jobID string, stage int, pc *pipeline.Context, writeMemory func(tx *ent.Tx) error) error {
	snapshot, err := pc.Snapshot()
	if err != nil {
		return fmt.Errorf("failed to snapshot context: %w", err)
	}

	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if writeMemory != nil {
		if err := writeMemory(tx); err != nil {
			return fmt.Errorf("stage %d memory writes failed: %w", stage, err)
		}
	}

	// Counters as of this boundary come from the job row; the model ledger
	// keeps them current during the stage
	j, err := tx.Job.Get(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}

	_, err = tx.Checkpoint.Create().
		SetID(uuid.New().String()).
		SetJobID(jobID).
		SetStage(stage).
		SetContextSnapshot(snapshot).
		SetCostUsd(j.CumulativeCostUsd).
		SetPromptTokens(j.CumulativePromptTokens).
		SetCompletionTokens(j.CumulativeCompletionTokens).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("checkpoint for job %s stage %d already written", jobID, stage)
		}
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}

	if err := tx.Job.UpdateOneID(jobID).SetCurrentStage(stage).Exec(ctx); err != nil {
		return fmt.Errorf("failed to update job stage: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit checkpoint: %w", err)
	}

	m.logger.Info("Checkpoint saved",
		"job_id", jobID,
		"stage", stage,
		"cost_usd", j.CumulativeCostUsd)

	return nil
}

// Latest returns the most recent checkpoint for a job, or nil when the job
// has none
func (m *Manager) Latest(ctx context.Context, jobID string) (*ent.Checkpoint, error) {
	cp, err := m.client.Checkpoint.Query().
		Where(entcheckpoint.JobIDEQ(jobID)).
		Order(ent.Desc(entcheckpoint.FieldStage)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest checkpoint: %w", err)
	}
	return cp, nil
}

// Get returns the checkpoint at an exact boundary
func (m *Manager) Get(ctx context.Context, jobID string, stage int) (*ent.Checkpoint, error) {
	cp, err := m.client.Checkpoint.Query().
		Where(
			entcheckpoint.JobIDEQ(jobID),
			entcheckpoint.StageEQ(stage),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("no checkpoint for job %s stage %d", jobID, stage)
		}
		return nil, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	return cp, nil
}

// Resume rebuilds the pipeline context from the latest checkpoint and
// returns the first stage still to run. A job with no checkpoints restarts
// from stage 1 with an empty context. A stage that started but never
// reached its boundary left nothing behind, so it re-executes from scratch.
func (m *Manager) Resume(ctx context.Context, jobID string) (*pipeline.Context, int, error) {
	cp, err := m.Latest(ctx, jobID)
	if err != nil {
		return nil, 0, err
	}
	if cp == nil {
		return pipeline.NewContext(), 1, nil
	}

	pc, err := pipeline.FromSnapshot(cp.ContextSnapshot)
	if err != nil {
		return nil, 0, fmt.Errorf("checkpoint for job %s stage %d is unreadable: %w", jobID, cp.Stage, err)
	}

	m.logger.Info("Resuming from checkpoint",
		"job_id", jobID,
		"completed_stage", cp.Stage,
		"cost_usd", cp.CostUsd)

	return pc, cp.Stage + 1, nil
}

// SweepExpired deletes checkpoints of terminal jobs older than the
// retention window. Checkpoints of running or resumable jobs are never
// swept. Returns the number of rows removed.
func (m *Manager) SweepExpired(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	n, err := m.client.Checkpoint.Delete().
		Where(
			entcheckpoint.CreatedAtLT(cutoff),
			entcheckpoint.HasJobWith(
				job.StatusIn(job.StatusCompleted, job.StatusCancelled),
			),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep checkpoints: %w", err)
	}

	if n > 0 {
		m.logger.Info("Swept expired checkpoints", "count", n, "older_than", olderThan)
	}
	return n, nil
}
