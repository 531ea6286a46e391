package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/narraforge/narraforge/ent"
	"github.com/narraforge/narraforge/ent/job"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu              sync.Mutex
	lastOrphanScan  time.Time
	orphansRequeued int
}

// runOrphanDetection periodically scans for orphaned jobs.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRequeueOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRequeueOrphans finds running jobs with stale heartbeats and
// re-queues them as pending. Committed checkpoints survive the dead pod, so
// the next worker to claim the job resumes from the last completed stage
// instead of starting over.
func (p *WorkerPool) detectAndRequeueOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.LastHeartbeatAtNotNil(),
			job.LastHeartbeatAtLT(threshold),
			job.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	requeued := 0
	for _, j := range orphans {
		if err := p.requeueOrphanedJob(ctx, j); err != nil {
			slog.Error("Failed to requeue orphaned job",
				"job_id", j.ID,
				"error", err)
			continue
		}
		requeued++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRequeued += requeued
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphanedJob returns a single orphaned job to the pending queue.
// The conditional update guards against racing with a pod that resumed
// heartbeating between the scan and the write.
func (p *WorkerPool) requeueOrphanedJob(ctx context.Context, j *ent.Job) error {
	lastHeartbeat := "unknown"
	if j.LastHeartbeatAt != nil {
		lastHeartbeat = j.LastHeartbeatAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if j.PodID != nil {
		podID = *j.PodID
	}

	threshold := time.Now().Add(-p.config.OrphanThreshold)
	count, err := p.client.Job.Update().
		Where(
			job.IDEQ(j.ID),
			job.StatusEQ(job.StatusRunning),
			job.LastHeartbeatAtLT(threshold),
		).
		SetStatus(job.StatusPending).
		ClearPodID().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue job: %w", err)
	}
	if count == 0 {
		// Heartbeat resumed or another pod already requeued it
		return nil
	}

	slog.Warn("Orphaned job requeued for resume",
		"job_id", j.ID,
		"old_pod_id", podID,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// RequeueStartupOrphans performs a one-time requeue of jobs owned by this pod
// that were running when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.PodIDEQ(podID),
			job.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, j := range orphans {
		err := j.Update().
			SetStatus(job.StatusPending).
			ClearPodID().
			ClearLastHeartbeatAt().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to requeue startup orphan",
				"job_id", j.ID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan requeued", "job_id", j.ID)
	}

	return nil
}
