package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/narraforge/narraforge/ent"
	"github.com/narraforge/narraforge/ent/checkpoint"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/pkg/models"
	"github.com/narraforge/narraforge/pkg/pipeline"
)

// JobService manages production job lifecycle
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// SubmitJob validates a Production Brief and enqueues it as a pending job.
// The brief is stored verbatim; production type, genre and content language
// are denormalised onto the row for listing and filtering.
func (s *JobService) SubmitJob(httpCtx context.Context, brief models.Brief) (*ent.Job, error) {
	if err := brief.Validate(); err != nil {
		return nil, NewValidationError("brief", err.Error())
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	briefBytes, err := json.Marshal(brief)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal brief: %w", err)
	}
	var briefJSON map[string]interface{}
	if err := json.Unmarshal(briefBytes, &briefJSON); err != nil {
		return nil, fmt.Errorf("failed to unmarshal brief: %w", err)
	}

	builder := s.client.Job.Create().
		SetID(uuid.New().String()).
		SetBrief(briefJSON).
		SetProductionType(brief.ProductionType).
		SetGenre(brief.Genre).
		SetContentLanguage(brief.Language()).
		SetStatus(job.StatusPending).
		SetCreatedAt(time.Now())

	if brief.Owner != "" {
		builder.SetOwner(brief.Owner)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return created, nil
}

// GetJob retrieves a job by ID with optional edge loading
func (s *JobService) GetJob(ctx context.Context, jobID string, withEdges bool) (*ent.Job, error) {
	query := s.client.Job.Query().Where(job.IDEQ(jobID))

	if withEdges {
		query = query.
			WithWorld().
			WithCheckpoints(func(q *ent.CheckpointQuery) {
				q.Order(ent.Asc(checkpoint.FieldStage))
			})
	}

	j, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return j, nil
}

// ListJobs lists jobs with filtering and pagination
func (s *JobService) ListJobs(ctx context.Context, filters models.JobFilters) (*models.JobListResponse, error) {
	query := s.client.Job.Query()

	if filters.Status != "" {
		query = query.Where(job.StatusEQ(job.Status(filters.Status)))
	}
	if filters.ProductionType != "" {
		query = query.Where(job.ProductionTypeEQ(filters.ProductionType))
	}
	if filters.Genre != "" {
		query = query.Where(job.GenreEQ(filters.Genre))
	}
	if filters.Owner != "" {
		query = query.Where(job.OwnerEQ(filters.Owner))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(job.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(job.CreatedAtLT(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(job.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	jobs, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return &models.JobListResponse{
		Jobs:       jobs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateJobStatus updates a job's status. Terminal statuses also set
// completed_at; the transition to running sets started_at.
func (s *JobService) UpdateJobStatus(ctx context.Context, jobID string, status job.Status) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Job.UpdateOneID(jobID).
		SetStatus(status)

	switch status {
	case job.StatusRunning:
		update = update.SetStartedAt(time.Now())
	case job.StatusCompleted, job.StatusFailed, job.StatusCancelled:
		update = update.SetCompletedAt(time.Now())
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update job status: %w", err)
	}

	return nil
}

// SetCurrentStage records the 1-based stage the orchestrator is executing
func (s *JobService) SetCurrentStage(ctx context.Context, jobID string, stage int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Job.UpdateOneID(jobID).
		SetCurrentStage(stage).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set current stage: %w", err)
	}
	return nil
}

// AddSpend accumulates model spend and token counts onto the job row
func (s *JobService) AddSpend(ctx context.Context, jobID string, costUsd float64, promptTokens, completionTokens int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Job.UpdateOneID(jobID).
		AddCumulativeCostUsd(costUsd).
		AddCumulativePromptTokens(promptTokens).
		AddCumulativeCompletionTokens(completionTokens).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record spend: %w", err)
	}
	return nil
}

// RecordFailure marks a job as failed with the classified error details.
// The stored error_kind gates whether a later resume is accepted.
func (s *JobService) RecordFailure(ctx context.Context, jobID string, stage int, kind pipeline.ErrorKind, message string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusFailed).
		SetErrorKind(string(kind)).
		SetErrorStage(stage).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record job failure: %w", err)
	}
	return nil
}

// RequestCancel requests cancellation of a job. Pending jobs are cancelled
// immediately; running jobs transition to cancelling and stop at the next
// stage boundary. Returns the status the job now holds.
func (s *JobService) RequestCancel(ctx context.Context, jobID string) (job.Status, error) {
	j, err := s.GetJob(ctx, jobID, false)
	if err != nil {
		return "", err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch j.Status {
	case job.StatusPending:
		// Conditional update: a worker may claim the row concurrently
		count, err := s.client.Job.Update().
			Where(job.IDEQ(jobID), job.StatusEQ(job.StatusPending)).
			SetStatus(job.StatusCancelled).
			SetCompletedAt(time.Now()).
			Save(writeCtx)
		if err != nil {
			return "", fmt.Errorf("failed to cancel pending job: %w", err)
		}
		if count == 0 {
			return "", ErrConcurrentModification
		}
		return job.StatusCancelled, nil

	case job.StatusRunning:
		count, err := s.client.Job.Update().
			Where(job.IDEQ(jobID), job.StatusEQ(job.StatusRunning)).
			SetStatus(job.StatusCancelling).
			Save(writeCtx)
		if err != nil {
			return "", fmt.Errorf("failed to request job cancellation: %w", err)
		}
		if count == 0 {
			return "", ErrConcurrentModification
		}
		return job.StatusCancelling, nil

	case job.StatusCancelling:
		return job.StatusCancelling, nil

	default:
		return "", NewValidationError("status", fmt.Sprintf("job is %s and cannot be cancelled", j.Status))
	}
}

// ResumeJob re-queues a failed or cancelled job so the pipeline restarts
// from its last committed checkpoint. Failures classified cost_exceeded or
// permanent are refused unless the caller confirms the configuration
// changed since the failure.
func (s *JobService) ResumeJob(ctx context.Context, jobID string, configChanged bool) (*ent.Job, error) {
	j, err := s.GetJob(ctx, jobID, false)
	if err != nil {
		return nil, err
	}

	if j.Status != job.StatusFailed && j.Status != job.StatusCancelled {
		return nil, NewValidationError("status", fmt.Sprintf("job is %s; only failed or cancelled jobs can be resumed", j.Status))
	}

	if j.ErrorKind != nil && pipeline.ErrorKind(*j.ErrorKind).BlocksResume() && !configChanged {
		return nil, NewValidationError("error_kind",
			fmt.Sprintf("job failed with %s; a configuration change is required before resume", *j.ErrorKind))
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Job.Update().
		Where(job.IDEQ(jobID), job.StatusEQ(j.Status)).
		SetStatus(job.StatusPending).
		ClearErrorMessage().
		ClearErrorKind().
		ClearErrorStage().
		ClearPodID().
		ClearLastHeartbeatAt().
		ClearCompletedAt().
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to resume job: %w", err)
	}
	if count == 0 {
		return nil, ErrConcurrentModification
	}

	return s.GetJob(ctx, jobID, false)
}

// FindOrphanedJobs finds running jobs whose heartbeat went stale
func (s *JobService) FindOrphanedJobs(ctx context.Context, threshold time.Duration) ([]*ent.Job, error) {
	cutoff := time.Now().Add(-threshold)

	jobs, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.LastHeartbeatAtNotNil(),
			job.LastHeartbeatAtLT(cutoff),
			job.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned jobs: %w", err)
	}

	return jobs, nil
}

// SoftDeleteOldJobs soft deletes jobs completed before the retention window
func (s *JobService) SoftDeleteOldJobs(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	// Use background context with timeout
	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Job.Update().
		Where(
			job.CompletedAtLT(cutoff),
			job.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete jobs: %w", err)
	}

	return count, nil
}
