package queue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/pkg/pipeline"
	testdb "github.com/narraforge/narraforge/test/database"
)

func TestWorkerPool_ProcessesJobToCompletion(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	executor := &stubExecutor{result: &ExecutionResult{Status: job.StatusCompleted}}
	publisher := &recordingPublisher{}
	pool := NewWorkerPool("test-pod", client.Client, testQueueConfig(), executor, publisher)

	j := createQueueJob(t, client.Client, job.StatusPending)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		updated, err := client.Client.Job.Get(ctx, j.ID)
		return err == nil && updated.Status == job.StatusCompleted
	}, 5*time.Second, 50*time.Millisecond)

	updated, err := client.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.NotNil(t, updated.StartedAt)
	assert.NotNil(t, updated.CompletedAt)
	assert.Equal(t, []string{j.ID}, executor.seenJobs())

	// Running then terminal status published
	require.Eventually(t, func() bool {
		return len(publisher.published()) >= 2
	}, 2*time.Second, 20*time.Millisecond)
	statuses := publisher.published()
	assert.Equal(t, job.StatusRunning, statuses[0])
	assert.Equal(t, job.StatusCompleted, statuses[1])
}

func TestWorkerPool_FailedJobRecordsErrorKind(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	executor := &stubExecutor{result: &ExecutionResult{
		Status:    job.StatusFailed,
		Stage:     7,
		ErrorKind: pipeline.ErrorKindQuality,
		Error:     fmt.Errorf("prose chapter below minimum word count after retries"),
	}}
	pool := NewWorkerPool("test-pod", client.Client, testQueueConfig(), executor, nil)

	j := createQueueJob(t, client.Client, job.StatusPending)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		updated, err := client.Client.Job.Get(ctx, j.ID)
		return err == nil && updated.Status == job.StatusFailed
	}, 5*time.Second, 50*time.Millisecond)

	updated, err := client.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.ErrorKind)
	assert.Equal(t, string(pipeline.ErrorKindQuality), *updated.ErrorKind)
	require.NotNil(t, updated.ErrorStage)
	assert.Equal(t, 7, *updated.ErrorStage)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "minimum word count")
}

func TestWorkerPool_NilExecutorResult(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	executor := &stubExecutor{result: nil}
	pool := NewWorkerPool("test-pod", client.Client, testQueueConfig(), executor, nil)

	j := createQueueJob(t, client.Client, job.StatusPending)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		updated, err := client.Client.Job.Get(ctx, j.ID)
		return err == nil && updated.Status == job.StatusFailed
	}, 5*time.Second, 50*time.Millisecond)

	updated, err := client.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.ErrorKind)
	assert.Equal(t, string(pipeline.ErrorKindPermanent), *updated.ErrorKind)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "nil result")
}

func TestWorkerPool_CancelJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	executor := &blockingExecutor{started: make(chan string, 1)}
	pool := NewWorkerPool("test-pod", client.Client, testQueueConfig(), executor, nil)

	j := createQueueJob(t, client.Client, job.StatusPending)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	select {
	case <-executor.started:
	case <-time.After(5 * time.Second):
		t.Fatal("executor never picked up the job")
	}

	assert.False(t, pool.CancelJob("no-such-job"))
	assert.True(t, pool.CancelJob(j.ID))

	require.Eventually(t, func() bool {
		updated, err := client.Client.Job.Get(ctx, j.ID)
		return err == nil && updated.Status == job.StatusCancelled
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWorkerPool_HeartbeatRefreshes(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	executor := &blockingExecutor{started: make(chan string, 1)}
	pool := NewWorkerPool("test-pod", client.Client, testQueueConfig(), executor, nil)

	j := createQueueJob(t, client.Client, job.StatusPending)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	select {
	case <-executor.started:
	case <-time.After(5 * time.Second):
		t.Fatal("executor never picked up the job")
	}

	claimed, err := client.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	require.NotNil(t, claimed.LastHeartbeatAt)
	initial := *claimed.LastHeartbeatAt

	// HeartbeatInterval is 100ms in the test config
	require.Eventually(t, func() bool {
		updated, err := client.Client.Job.Get(ctx, j.ID)
		return err == nil && updated.LastHeartbeatAt != nil && updated.LastHeartbeatAt.After(initial)
	}, 5*time.Second, 50*time.Millisecond)

	pool.CancelJob(j.ID)
}

func TestWorkerPool_JobTimeout(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := testQueueConfig()
	cfg.JobTimeout = 200 * time.Millisecond

	executor := &blockingExecutor{started: make(chan string, 1)}
	pool := NewWorkerPool("test-pod", client.Client, cfg, executor, nil)

	j := createQueueJob(t, client.Client, job.StatusPending)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		updated, err := client.Client.Job.Get(ctx, j.ID)
		return err == nil && updated.Status == job.StatusFailed
	}, 5*time.Second, 50*time.Millisecond)

	updated, err := client.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.ErrorKind)
	assert.Equal(t, string(pipeline.ErrorKindCancelled), *updated.ErrorKind)
}

func TestWorkerPool_Health(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	executor := &stubExecutor{result: &ExecutionResult{Status: job.StatusCompleted}}
	pool := NewWorkerPool("test-pod", client.Client, testQueueConfig(), executor, nil)

	createQueueJob(t, client.Client, job.StatusPending)
	createQueueJob(t, client.Client, job.StatusPending)

	health := pool.Health()
	assert.False(t, health.IsHealthy) // no workers before Start
	assert.True(t, health.DBReachable)
	assert.Equal(t, "test-pod", health.PodID)
	assert.Equal(t, 2, health.QueueDepth)
	assert.Equal(t, 2, health.MaxConcurrent)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		return len(executor.seenJobs()) == 2
	}, 5*time.Second, 50*time.Millisecond)

	require.Eventually(t, func() bool {
		h := pool.Health()
		return h.IsHealthy && h.QueueDepth == 0 && h.ActiveJobs == 0
	}, 5*time.Second, 50*time.Millisecond)

	health = pool.Health()
	assert.Equal(t, 1, health.TotalWorkers)
	require.Len(t, health.WorkerStats, 1)
	assert.Equal(t, 2, health.WorkerStats[0].JobsProcessed)
}

func TestWorkerPool_StartIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	pool := NewWorkerPool("test-pod", client.Client, testQueueConfig(), &stubExecutor{result: &ExecutionResult{Status: job.StatusCompleted}}, nil)
	require.NoError(t, pool.Start(ctx))
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	assert.Equal(t, 1, pool.Health().TotalWorkers)
}
