package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/ent"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/events"
	"github.com/narraforge/narraforge/pkg/pipeline"
	testdb "github.com/narraforge/narraforge/test/database"
)

// testQueueConfig returns a config tuned for fast tests.
func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             1,
		MaxConcurrentJobs:       2,
		PollInterval:            50 * time.Millisecond,
		PollIntervalJitter:      0,
		JobTimeout:              5 * time.Second,
		GracefulShutdownTimeout: 5 * time.Second,
		HeartbeatInterval:       100 * time.Millisecond,
		OrphanDetectionInterval: time.Hour, // never fires during tests
		OrphanThreshold:         5 * time.Minute,
	}
}

// createQueueJob inserts a job row directly, bypassing the service layer.
func createQueueJob(t *testing.T, client *ent.Client, status job.Status) *ent.Job {
	t.Helper()
	j, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetBrief(map[string]interface{}{
			"production_type": "short_story",
			"genre":           "mystery",
			"inspiration":     "a cartographer mapping a city that keeps moving",
		}).
		SetProductionType("short_story").
		SetGenre("mystery").
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return j
}

// stubExecutor returns a fixed result and records which jobs it saw.
type stubExecutor struct {
	mu     sync.Mutex
	seen   []string
	result *ExecutionResult
}

func (e *stubExecutor) Execute(_ context.Context, j *ent.Job) *ExecutionResult {
	e.mu.Lock()
	e.seen = append(e.seen, j.ID)
	e.mu.Unlock()
	return e.result
}

func (e *stubExecutor) seenJobs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.seen...)
}

// blockingExecutor blocks until its job context is cancelled.
type blockingExecutor struct {
	started chan string
}

func (e *blockingExecutor) Execute(ctx context.Context, j *ent.Job) *ExecutionResult {
	select {
	case e.started <- j.ID:
	default:
	}
	<-ctx.Done()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &ExecutionResult{
			Status:    job.StatusFailed,
			ErrorKind: pipeline.ErrorKindCancelled,
			Error:     ctx.Err(),
		}
	}
	return &ExecutionResult{Status: job.StatusCancelled, Error: ctx.Err()}
}

// nopRegistry satisfies JobRegistry for tests that exercise a Worker directly.
type nopRegistry struct{}

func (nopRegistry) RegisterJob(string, context.CancelFunc) {}
func (nopRegistry) UnregisterJob(string)                   {}

// recordingPublisher captures published job status events.
type recordingPublisher struct {
	mu       sync.Mutex
	statuses []job.Status
}

func (p *recordingPublisher) PublishJobStatus(_ context.Context, _ string, payload events.JobStatusPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses = append(p.statuses, payload.Status)
	return nil
}

func (p *recordingPublisher) published() []job.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]job.Status(nil), p.statuses...)
}

func TestWorker_ClaimNextJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	first := createQueueJob(t, client.Client, job.StatusPending)
	// Ensure a strictly later created_at for FIFO ordering
	second := createQueueJob(t, client.Client, job.StatusPending)
	err := second.Update().SetCreatedAt(first.CreatedAt.Add(time.Second)).Exec(ctx)
	require.NoError(t, err)

	w := NewWorker("test-worker-0", "test-pod", client.Client, testQueueConfig(), &stubExecutor{}, nopRegistry{}, nil)

	t.Run("claims oldest pending job and marks it running", func(t *testing.T) {
		claimed, err := w.claimNextJob(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.ID, claimed.ID)
		assert.Equal(t, job.StatusRunning, claimed.Status)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "test-pod", *claimed.PodID)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.LastHeartbeatAt)
	})

	t.Run("subsequent claim returns the next job", func(t *testing.T) {
		claimed, err := w.claimNextJob(ctx)
		require.NoError(t, err)
		assert.Equal(t, second.ID, claimed.ID)
	})

	t.Run("returns ErrNoJobsAvailable when queue is empty", func(t *testing.T) {
		_, err := w.claimNextJob(ctx)
		assert.ErrorIs(t, err, ErrNoJobsAvailable)
	})

	t.Run("skips soft-deleted jobs", func(t *testing.T) {
		deleted := createQueueJob(t, client.Client, job.StatusPending)
		err := deleted.Update().SetDeletedAt(time.Now()).Exec(ctx)
		require.NoError(t, err)

		_, err = w.claimNextJob(ctx)
		assert.ErrorIs(t, err, ErrNoJobsAvailable)
	})
}

func TestWorker_PollAndProcess_AtCapacity(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := testQueueConfig()
	cfg.MaxConcurrentJobs = 1
	createQueueJob(t, client.Client, job.StatusRunning)
	createQueueJob(t, client.Client, job.StatusPending)

	w := NewWorker("test-worker-0", "test-pod", client.Client, cfg, &stubExecutor{}, nopRegistry{}, nil)
	err := w.pollAndProcess(ctx)
	assert.ErrorIs(t, err, ErrAtCapacity)
}

func TestWorker_UpdateJobTerminalStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	w := NewWorker("test-worker-0", "test-pod", client.Client, testQueueConfig(), &stubExecutor{}, nopRegistry{}, nil)

	t.Run("failed result records error details", func(t *testing.T) {
		j := createQueueJob(t, client.Client, job.StatusRunning)
		result := &ExecutionResult{
			Status:    job.StatusFailed,
			Stage:     4,
			ErrorKind: pipeline.ErrorKindSchema,
			Error:     fmt.Errorf("chapter plan missing required scenes array"),
		}
		require.NoError(t, w.updateJobTerminalStatus(ctx, j, result))

		updated, err := client.Client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, updated.Status)
		assert.NotNil(t, updated.CompletedAt)
		require.NotNil(t, updated.ErrorKind)
		assert.Equal(t, string(pipeline.ErrorKindSchema), *updated.ErrorKind)
		require.NotNil(t, updated.ErrorStage)
		assert.Equal(t, 4, *updated.ErrorStage)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "scenes array")
	})

	t.Run("completed result leaves error fields empty", func(t *testing.T) {
		j := createQueueJob(t, client.Client, job.StatusRunning)
		result := &ExecutionResult{Status: job.StatusCompleted}
		require.NoError(t, w.updateJobTerminalStatus(ctx, j, result))

		updated, err := client.Client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, updated.Status)
		assert.NotNil(t, updated.CompletedAt)
		assert.Nil(t, updated.ErrorKind)
		assert.Nil(t, updated.ErrorMessage)
	})
}

func TestWorker_PollInterval(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollInterval = 2 * time.Second
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker-0", "test-pod", nil, cfg, &stubExecutor{}, nopRegistry{}, nil)

	assert.Equal(t, 2*time.Second, w.pollInterval())

	cfg.PollIntervalJitter = time.Second
	for i := 0; i < 50; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, time.Second)
		assert.Less(t, d, 3*time.Second)
	}
}
