// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/narraforge/narraforge/pkg/checkpoint"
	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/services"
)

// Service periodically enforces retention policies:
//   - Soft-deletes jobs completed before the retention window
//   - Deletes checkpoints of terminal jobs past the checkpoint retention
//   - Removes orphaned Event rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config       *config.RetentionConfig
	jobService   *services.JobService
	eventService *services.EventService
	checkpoints  *checkpoint.Manager

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	jobService *services.JobService,
	eventService *services.EventService,
	checkpoints *checkpoint.Manager,
) *Service {
	return &Service{
		config:       cfg,
		jobService:   jobService,
		eventService: eventService,
		checkpoints:  checkpoints,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"job_retention_days", s.config.JobRetentionDays,
		"checkpoint_retention", s.config.CheckpointRetention,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.softDeleteOldJobs(ctx)
	s.sweepExpiredCheckpoints(ctx)
	s.cleanupOrphanedEvents(ctx)
}

func (s *Service) softDeleteOldJobs(_ context.Context) {
	count, err := s.jobService.SoftDeleteOldJobs(context.Background(), s.config.JobRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete jobs failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old jobs", "count", count)
	}
}

func (s *Service) sweepExpiredCheckpoints(_ context.Context) {
	sweepCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.checkpoints.SweepExpired(sweepCtx, s.config.CheckpointRetention)
	if err != nil {
		slog.Error("Retention: checkpoint sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: swept expired checkpoints", "count", count)
	}
}

func (s *Service) cleanupOrphanedEvents(_ context.Context) {
	count, err := s.eventService.CleanupOrphanedEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up orphaned events", "count", count)
	}
}
