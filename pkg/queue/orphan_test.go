package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/ent"
	"github.com/narraforge/narraforge/ent/job"
	testdb "github.com/narraforge/narraforge/test/database"
)

func markRunningOnPod(t *testing.T, j *ent.Job, podID string, heartbeat time.Time) {
	t.Helper()
	err := j.Update().
		SetStatus(job.StatusRunning).
		SetPodID(podID).
		SetStartedAt(heartbeat).
		SetLastHeartbeatAt(heartbeat).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestWorkerPool_DetectAndRequeueOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	stale := createQueueJob(t, client.Client, job.StatusPending)
	markRunningOnPod(t, stale, "dead-pod", time.Now().Add(-10*time.Minute))

	fresh := createQueueJob(t, client.Client, job.StatusPending)
	markRunningOnPod(t, fresh, "live-pod", time.Now())

	pool := NewWorkerPool("test-pod", client.Client, testQueueConfig(), &stubExecutor{}, nil)
	require.NoError(t, pool.detectAndRequeueOrphans(ctx))

	requeued, err := client.Client.Job.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, requeued.Status)
	assert.Nil(t, requeued.PodID)
	assert.Nil(t, requeued.LastHeartbeatAt)
	// Started timestamp survives — resume picks up from the last checkpoint
	assert.NotNil(t, requeued.StartedAt)

	untouched, err := client.Client.Job.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, untouched.Status)
	require.NotNil(t, untouched.PodID)
	assert.Equal(t, "live-pod", *untouched.PodID)

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRequeued)
	assert.False(t, health.LastOrphanScan.IsZero())
}

func TestWorkerPool_DetectAndRequeueOrphans_SkipsHeartbeatRace(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	j := createQueueJob(t, client.Client, job.StatusPending)
	markRunningOnPod(t, j, "slow-pod", time.Now().Add(-10*time.Minute))

	pool := NewWorkerPool("test-pod", client.Client, testQueueConfig(), &stubExecutor{}, nil)

	// Heartbeat resumes between the scan and the conditional update
	loaded, err := client.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	err = loaded.Update().SetLastHeartbeatAt(time.Now()).Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, pool.requeueOrphanedJob(ctx, loaded))

	current, err := client.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, current.Status)
	require.NotNil(t, current.PodID)
	assert.Equal(t, "slow-pod", *current.PodID)
}

func TestRequeueStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	mine := createQueueJob(t, client.Client, job.StatusPending)
	markRunningOnPod(t, mine, "restarting-pod", time.Now())

	other := createQueueJob(t, client.Client, job.StatusPending)
	markRunningOnPod(t, other, "other-pod", time.Now())

	require.NoError(t, RequeueStartupOrphans(ctx, client.Client, "restarting-pod"))

	requeued, err := client.Client.Job.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, requeued.Status)
	assert.Nil(t, requeued.PodID)
	assert.Nil(t, requeued.LastHeartbeatAt)

	untouched, err := client.Client.Job.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, untouched.Status)
}

func TestRequeueStartupOrphans_NoOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	require.NoError(t, RequeueStartupOrphans(context.Background(), client.Client, "fresh-pod"))
}
