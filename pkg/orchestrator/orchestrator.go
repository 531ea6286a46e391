// Package orchestrator drives the ten-stage pipeline for one job: it seeds
// the pipeline context from the brief, executes each stage with retry and
// tier escalation, commits a checkpoint (with the stage's memory writes) at
// every boundary, and emits progress events. It implements queue.JobExecutor,
// so the worker pool owns claiming and terminal status while the orchestrator
// owns everything in between.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/narraforge/narraforge/ent"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/pkg/checkpoint"
	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/events"
	"github.com/narraforge/narraforge/pkg/memory"
	"github.com/narraforge/narraforge/pkg/model"
	"github.com/narraforge/narraforge/pkg/pipeline"
	"github.com/narraforge/narraforge/pkg/queue"
	"github.com/narraforge/narraforge/pkg/services"
	"github.com/narraforge/narraforge/pkg/stages"
)

// EventSink receives pipeline progress events. Implemented by
// events.EventPublisher; a nil sink disables streaming.
type EventSink interface {
	PublishStageStatus(ctx context.Context, jobID string, payload events.StageStatusPayload) error
	PublishStageComplete(ctx context.Context, jobID string, payload events.StageCompletePayload) error
	PublishStageProgress(ctx context.Context, jobID string, payload events.StageProgressPayload) error
	PublishJobComplete(ctx context.Context, jobID string, payload events.JobCompletePayload) error
	PublishJobFailed(ctx context.Context, jobID string, payload events.JobFailedPayload) error
}

// Orchestrator executes jobs end to end. One instance serves all workers;
// per-job state lives in the pipeline context and the database.
type Orchestrator struct {
	client      *ent.Client
	cfg         *config.Config
	agents      []pipeline.Agent
	runner      *pipeline.Runner
	checkpoints *checkpoint.Manager
	jobs        *services.JobService
	sink        EventSink
	logger      *slog.Logger
}

// New wires the orchestrator over its collaborators. The stage set is fixed
// at construction; registration-time constraints (stage order, unique keys,
// advanced tier for prose stages) are enforced here and fail fast.
func New(client *ent.Client, cfg *config.Config, modelClient model.Client, ledger model.Ledger, mem *memory.Memory, sink EventSink, logger *slog.Logger) (*Orchestrator, error) {
	agents, err := stages.Pipeline(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid stage registration: %w", err)
	}

	return &Orchestrator{
		client:      client,
		cfg:         cfg,
		agents:      agents,
		runner:      pipeline.NewRunner(modelClient, cfg, mem, ledger),
		checkpoints: checkpoint.NewManager(client, logger),
		jobs:        services.NewJobService(client),
		sink:        sink,
		logger:      logger.With("component", "orchestrator"),
	}, nil
}

// Execute runs one job from its resume point to a terminal state. Fresh jobs
// start at stage 1; jobs with checkpoints continue at the first incomplete
// stage without re-running (or re-billing) completed work.
func (o *Orchestrator) Execute(ctx context.Context, j *ent.Job) *queue.ExecutionResult {
	log := o.logger.With("job_id", j.ID)

	pc, startStage, err := o.checkpoints.Resume(ctx, j.ID)
	if err != nil {
		log.Error("Cannot restore pipeline state", "error", err)
		return &queue.ExecutionResult{
			Status:    job.StatusFailed,
			ErrorKind: pipeline.ErrorKindPermanent,
			Error:     err,
		}
	}

	if !pc.Has(pipeline.KeyBrief) {
		if err := o.seedBrief(pc, j); err != nil {
			return &queue.ExecutionResult{
				Status:    job.StatusFailed,
				ErrorKind: pipeline.ErrorKindPermanent,
				Error:     err,
			}
		}
	}

	log.Info("Pipeline run starting",
		"start_stage", startStage,
		"production_type", j.ProductionType)

	for stage := startStage; stage <= len(o.agents); stage++ {
		// Cancellation is co-operative: checked at every stage boundary
		if cancelled, result := o.checkBoundary(ctx, j.ID); cancelled {
			return result
		}

		agent := o.agents[stage-1]

		if err := o.checkRequiredKeys(agent, pc); err != nil {
			log.Error("Stage inputs missing", "stage", stage, "error", err)
			o.publishJobFailed(j.ID, stage, pipeline.ErrorKindPermanent, err)
			return &queue.ExecutionResult{
				Status:    job.StatusFailed,
				Stage:     stage,
				ErrorKind: pipeline.ErrorKindPermanent,
				Error:     err,
			}
		}

		if err := o.jobs.SetCurrentStage(ctx, j.ID, stage); err != nil {
			log.Warn("Failed to record current stage", "stage", stage, "error", err)
		}

		stageErr := o.runStage(ctx, j.ID, agent, pc)
		if stageErr != nil {
			if stageErr.Kind == pipeline.ErrorKindCancelled {
				log.Info("Stage cancelled", "stage", stage)
				return &queue.ExecutionResult{Status: job.StatusCancelled, Stage: stage}
			}

			log.Error("Stage failed terminally",
				"stage", stage,
				"kind", stageErr.Kind,
				"attempts", stageErr.Attempts,
				"error", stageErr.LastCause)
			o.publishJobFailed(j.ID, stage, stageErr.Kind, stageErr)
			return &queue.ExecutionResult{
				Status:    job.StatusFailed,
				Stage:     stage,
				ErrorKind: stageErr.Kind,
				Error:     stageErr,
			}
		}
	}

	o.publishJobComplete(j.ID, pc)

	log.Info("Pipeline run complete")
	return &queue.ExecutionResult{Status: job.StatusCompleted}
}

// seedBrief records the submitted brief as the stage-0 context entry
func (o *Orchestrator) seedBrief(pc *pipeline.Context, j *ent.Job) error {
	raw, err := json.Marshal(j.Brief)
	if err != nil {
		return fmt.Errorf("failed to serialise brief: %w", err)
	}
	return pc.Put(pipeline.KeyBrief, pipeline.Entry{
		Stage:      0,
		RecordedAt: time.Now(),
		Payload:    raw,
	})
}

// checkRequiredKeys refuses to run a stage whose inputs are not in context
func (o *Orchestrator) checkRequiredKeys(agent pipeline.Agent, pc *pipeline.Context) error {
	for _, key := range agent.RequiredKeys() {
		if !pc.Has(key) {
			return fmt.Errorf("stage %d (%s) requires context key %q which is not recorded",
				agent.Stage(), agent.Name(), key)
		}
	}
	return nil
}

// checkBoundary looks for an external cancel request or a dead context at a
// stage boundary. Returns the terminal result to surface when cancelled.
func (o *Orchestrator) checkBoundary(ctx context.Context, jobID string) (bool, *queue.ExecutionResult) {
	if ctx.Err() != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return true, &queue.ExecutionResult{
				Status:    job.StatusFailed,
				ErrorKind: pipeline.ErrorKindCancelled,
				Error:     fmt.Errorf("job deadline reached: %w", ctx.Err()),
			}
		}
		return true, &queue.ExecutionResult{Status: job.StatusCancelled}
	}

	j, err := o.client.Job.Get(ctx, jobID)
	if err != nil {
		// Can't read the row; let the stage run and fail on its own if the
		// database is really gone
		o.logger.Warn("Boundary status check failed", "job_id", jobID, "error", err)
		return false, nil
	}
	if j.Status == job.StatusCancelling {
		return true, &queue.ExecutionResult{Status: job.StatusCancelled}
	}
	return false, nil
}

// runStage executes one stage to its checkpoint, retrying per the configured
// budget. Schema, quality, and validation failures escalate the tier before
// the next attempt; transport failures retry on the same tier. Returns nil
// when the checkpoint committed.
func (o *Orchestrator) runStage(ctx context.Context, jobID string, agent pipeline.Agent, pc *pipeline.Context) *pipeline.StageError {
	stage := agent.Stage()
	log := o.logger.With("job_id", jobID, "stage", stage, "stage_name", agent.Name())

	maxAttempts := o.cfg.Production.MaxStageRetries
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = o.cfg.Production.RetryBaseDelay
	bo.MaxInterval = o.cfg.Production.RetryMaxDelay
	bo.MaxElapsedTime = 0
	bo.Reset()

	tier := agent.PreferredTier()
	started := time.Now()
	var lastErr error
	var lastKind pipeline.ErrorKind

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		status := events.StageStatusStarted
		if attempt > 1 {
			status = events.StageStatusRetrying
		}
		o.publishStageStatus(ctx, jobID, agent, status, attempt, tier, lastKind)

		attemptCtx := ctx
		cancelAttempt := context.CancelFunc(func() {})
		if timeout, ok := o.cfg.Production.StageTimeouts[stage]; ok && timeout > 0 {
			attemptCtx, cancelAttempt = context.WithTimeout(ctx, timeout)
		}

		result, err := o.runner.RunAttempt(attemptCtx, agent, pc, jobID, attempt, tier, o.progressFunc(jobID, stage))
		cancelAttempt()

		var kind pipeline.ErrorKind

		if err == nil {
			commitErr := o.commitStage(ctx, jobID, agent, pc, result)
			if commitErr == nil {
				o.publishStageStatus(ctx, jobID, agent, events.StageStatusCompleted, attempt, tier, "")
				entry, _ := pc.Get(agent.ProducedKey())
				o.publishStageComplete(ctx, jobID, agent, attempt, entry.Words, time.Since(started))
				log.Info("Stage complete", "attempt", attempt, "tier", tier, "duration", time.Since(started))
				return nil
			}

			// A failed commit is not a model failure; the stage output is
			// lost and the whole stage must re-run, through the same backoff
			// schedule as any other transport failure
			log.Error("Checkpoint commit failed", "attempt", attempt, "error", commitErr)
			err = fmt.Errorf("checkpoint commit failed: %w", commitErr)
			kind = pipeline.ErrorKindTransport
		} else {
			kind = pipeline.Classify(err)

			// A stage-timeout expiry with a live parent context is a retryable
			// slow attempt, not a job cancellation
			if kind == pipeline.ErrorKindCancelled && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
				kind = pipeline.ErrorKindTransport
				err = fmt.Errorf("stage %d attempt %d exceeded its timeout: %w", stage, attempt, err)
			}
		}

		lastErr = err
		lastKind = kind

		if kind == pipeline.ErrorKindCancelled {
			o.publishStageStatus(context.Background(), jobID, agent, events.StageStatusCancelled, attempt, tier, kind)
			return &pipeline.StageError{Stage: stage, Kind: kind, Attempts: attempt, LastCause: err}
		}

		if !kind.Retryable() || attempt == maxAttempts {
			o.publishStageStatus(context.Background(), jobID, agent, events.StageStatusFailed, attempt, tier, kind)
			return &pipeline.StageError{Stage: stage, Kind: kind, Attempts: attempt, LastCause: err}
		}

		log.Warn("Stage attempt failed, retrying",
			"attempt", attempt,
			"kind", kind,
			"tier", tier,
			"error", err)

		if kind.UpgradesTier() {
			tier = tier.Upgrade()
		}

		select {
		case <-ctx.Done():
			return &pipeline.StageError{Stage: stage, Kind: pipeline.ErrorKindCancelled, Attempts: attempt, LastCause: ctx.Err()}
		case <-time.After(bo.NextBackOff()):
		}
	}

	// Not reached: the final attempt always returns from inside the loop,
	// commit failures included
	return &pipeline.StageError{Stage: stage, Kind: lastKind, Attempts: maxAttempts, LastCause: lastErr}
}

// commitStage writes the checkpoint together with the stage's memory writes
// in one transaction, then records the output in the live context. The
// checkpoint is built from a clone so a failed commit leaves the context
// untouched and the attempt can be retried.
func (o *Orchestrator) commitStage(ctx context.Context, jobID string, agent pipeline.Agent, pc *pipeline.Context, result *pipeline.AttemptResult) error {
	entry := pipeline.Entry{
		Stage:      agent.Stage(),
		RecordedAt: time.Now(),
		Words:      payloadWords(agent.ProducedKey(), result.Payload),
		Tokens:     result.Tokens,
		Payload:    result.Payload,
	}

	snap, err := pc.Snapshot()
	if err != nil {
		return fmt.Errorf("failed to snapshot context: %w", err)
	}
	staged, err := pipeline.FromSnapshot(snap)
	if err != nil {
		return fmt.Errorf("failed to clone context: %w", err)
	}
	if err := staged.Put(agent.ProducedKey(), entry); err != nil {
		return fmt.Errorf("failed to record stage %d output: %w", agent.Stage(), err)
	}

	writeMemory, err := o.memoryWrites(ctx, jobID, agent.Stage(), result.Payload)
	if err != nil {
		return err
	}

	if err := o.checkpoints.Save(ctx, jobID, agent.Stage(), staged, writeMemory); err != nil {
		return err
	}

	return pc.Put(agent.ProducedKey(), entry)
}

// progressFunc adapts the per-stage progress callback to transient events
func (o *Orchestrator) progressFunc(jobID string, stage int) func(done, total int, message string) {
	if o.sink == nil {
		return nil
	}
	return func(done, total int, message string) {
		err := o.sink.PublishStageProgress(context.Background(), jobID, events.StageProgressPayload{
			Type:      events.EventTypeStageProgress,
			JobID:     jobID,
			Stage:     stage,
			Done:      done,
			Total:     total,
			Message:   message,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})
		if err != nil {
			o.logger.Debug("Progress event dropped", "job_id", jobID, "stage", stage, "error", err)
		}
	}
}

func (o *Orchestrator) publishStageStatus(ctx context.Context, jobID string, agent pipeline.Agent, status string, attempt int, tier config.Tier, kind pipeline.ErrorKind) {
	if o.sink == nil {
		return
	}
	err := o.sink.PublishStageStatus(ctx, jobID, events.StageStatusPayload{
		Type:      events.EventTypeStageStatus,
		JobID:     jobID,
		Stage:     agent.Stage(),
		StageName: agent.Name(),
		Status:    status,
		Attempt:   attempt,
		Tier:      string(tier),
		ErrorKind: string(kind),
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		o.logger.Warn("Failed to publish stage status",
			"job_id", jobID, "stage", agent.Stage(), "status", status, "error", err)
	}
}

// publishStageComplete fires after the checkpoint committed, so a consumer
// that saw the event can rely on the stage being resumable
func (o *Orchestrator) publishStageComplete(ctx context.Context, jobID string, agent pipeline.Agent, attempts, words int, duration time.Duration) {
	if o.sink == nil {
		return
	}

	var costUsd float64
	if j, err := o.client.Job.Get(ctx, jobID); err == nil {
		costUsd = j.CumulativeCostUsd
	}

	err := o.sink.PublishStageComplete(ctx, jobID, events.StageCompletePayload{
		Type:        events.EventTypeStageComplete,
		JobID:       jobID,
		Stage:       agent.Stage(),
		StageName:   agent.Name(),
		ProducedKey: agent.ProducedKey(),
		Words:       words,
		CostUsd:     costUsd,
		DurationMs:  duration.Milliseconds(),
		Attempts:    attempts,
		Timestamp:   time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		o.logger.Warn("Failed to publish stage completion",
			"job_id", jobID, "stage", agent.Stage(), "error", err)
	}
}

// publishJobComplete emits the terminal event with the manifest summary.
// Runs on a background context: the job context may already be released.
func (o *Orchestrator) publishJobComplete(jobID string, pc *pipeline.Context) {
	if o.sink == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var manifest stages.OutputManifest
	if err := pc.Unmarshal(pipeline.KeyOutputManifest, &manifest); err != nil {
		o.logger.Warn("Output manifest unreadable for completion event", "job_id", jobID, "error", err)
	}

	totalCost := manifest.TotalCostUsd
	if j, err := o.client.Job.Get(ctx, jobID); err == nil {
		totalCost = j.CumulativeCostUsd
	}

	err := o.sink.PublishJobComplete(ctx, jobID, events.JobCompletePayload{
		Type:           events.EventTypeJobComplete,
		JobID:          jobID,
		Directory:      manifest.Directory,
		WordCount:      manifest.WordCount,
		SegmentCount:   manifest.SegmentCount,
		CoherenceScore: manifest.CoherenceScore,
		TotalCostUsd:   totalCost,
		Timestamp:      time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		o.logger.Warn("Failed to publish job completion", "job_id", jobID, "error", err)
	}
}

// publishJobFailed emits the terminal failure event on a background context
func (o *Orchestrator) publishJobFailed(jobID string, stage int, kind pipeline.ErrorKind, cause error) {
	if o.sink == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	message := ""
	if cause != nil {
		message = cause.Error()
	}

	err := o.sink.PublishJobFailed(ctx, jobID, events.JobFailedPayload{
		Type:      events.EventTypeJobFailed,
		JobID:     jobID,
		Stage:     stage,
		ErrorKind: string(kind),
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		o.logger.Warn("Failed to publish job failure", "job_id", jobID, "error", err)
	}
}
