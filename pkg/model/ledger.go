package model

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/narraforge/narraforge/ent"
	"github.com/narraforge/narraforge/ent/job"
)

// CallRecord is what the ledger persists about one model call
type CallRecord struct {
	PromptTokens     int
	CompletionTokens int
	USDCost          float64
	Duration         time.Duration
	ErrorClass       string // empty on success
}

// Ledger records every model call and answers how much a job has spent.
// Recording a successful call and advancing the job's cumulative counters
// happen in one transaction.
type Ledger interface {
	RecordCall(ctx context.Context, meta CallMeta, provider, modelID string, rec CallRecord) error
	JobSpend(ctx context.Context, jobID string) (float64, error)
}

// EntLedger is the Postgres-backed ledger
type EntLedger struct {
	client *ent.Client
}

// NewEntLedger creates a ledger over the given Ent client
func NewEntLedger(client *ent.Client) *EntLedger {
	return &EntLedger{client: client}
}

// RecordCall appends a ModelCall row and, for successful calls, adds the
// usage to the job's cumulative counters in the same transaction
func (l *EntLedger) RecordCall(ctx context.Context, meta CallMeta, provider, modelID string, rec CallRecord) error {
	tx, err := l.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin ledger transaction: %w", err)
	}

	create := tx.ModelCall.Create().
		SetID(uuid.New().String()).
		SetJobID(meta.JobID).
		SetStage(meta.Stage).
		SetAttempt(meta.Attempt).
		SetProvider(provider).
		SetModelID(modelID).
		SetTier(string(meta.Tier)).
		SetPromptTokens(rec.PromptTokens).
		SetCompletionTokens(rec.CompletionTokens).
		SetUsdCost(rec.USDCost).
		SetDurationMs(int(rec.Duration.Milliseconds()))
	if rec.ErrorClass != "" {
		create = create.SetErrorClass(rec.ErrorClass)
	}

	if _, err := create.Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to record model call: %w", err)
	}

	if rec.ErrorClass == "" {
		err = tx.Job.UpdateOneID(meta.JobID).
			AddCumulativeCostUsd(rec.USDCost).
			AddCumulativePromptTokens(rec.PromptTokens).
			AddCumulativeCompletionTokens(rec.CompletionTokens).
			Exec(ctx)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update job counters: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ledger transaction: %w", err)
	}

	return nil
}

// JobSpend returns the job's cumulative USD spend
func (l *EntLedger) JobSpend(ctx context.Context, jobID string) (float64, error) {
	j, err := l.client.Job.Query().
		Where(job.ID(jobID)).
		Select(job.FieldCumulativeCostUsd).
		Only(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query job spend: %w", err)
	}
	return j.CumulativeCostUsd, nil
}
