package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/ent"
	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/pkg/models"
	"github.com/narraforge/narraforge/pkg/pipeline"
	testdb "github.com/narraforge/narraforge/test/database"
)

func testBrief() models.Brief {
	return models.Brief{
		ProductionType: models.ProductionShortStory,
		Genre:          "mystery",
		Inspiration:    "a lighthouse keeper who stops lighting the lamp",
		Owner:          "tester",
	}
}

func submitTestJob(t *testing.T, svc *JobService) *ent.Job {
	t.Helper()
	j, err := svc.SubmitJob(context.Background(), testBrief())
	require.NoError(t, err)
	return j
}

func TestJobService_SubmitJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	t.Run("creates pending job with denormalised fields", func(t *testing.T) {
		j, err := svc.SubmitJob(ctx, testBrief())
		require.NoError(t, err)

		assert.NotEmpty(t, j.ID)
		assert.Equal(t, job.StatusPending, j.Status)
		assert.Equal(t, models.ProductionShortStory, j.ProductionType)
		assert.Equal(t, "mystery", j.Genre)
		assert.Equal(t, "en", j.ContentLanguage)
		require.NotNil(t, j.Owner)
		assert.Equal(t, "tester", *j.Owner)
		assert.Equal(t, "a lighthouse keeper who stops lighting the lamp", j.Brief["inspiration"])
	})

	t.Run("carries explicit content language", func(t *testing.T) {
		brief := testBrief()
		brief.ContentLanguage = "pt-BR"
		j, err := svc.SubmitJob(ctx, brief)
		require.NoError(t, err)
		assert.Equal(t, "pt-BR", j.ContentLanguage)
	})

	t.Run("rejects invalid brief", func(t *testing.T) {
		brief := testBrief()
		brief.Genre = ""
		_, err := svc.SubmitJob(ctx, brief)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown production type", func(t *testing.T) {
		brief := testBrief()
		brief.ProductionType = "trilogy"
		_, err := svc.SubmitJob(ctx, brief)
		assert.True(t, IsValidationError(err))
	})
}

func TestJobService_GetJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	created := submitTestJob(t, svc)

	t.Run("retrieves job by ID", func(t *testing.T) {
		j, err := svc.GetJob(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, created.ID, j.ID)
	})

	t.Run("returns ErrNotFound for missing job", func(t *testing.T) {
		_, err := svc.GetJob(ctx, "does-not-exist", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestJobService_ListJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		submitTestJob(t, svc)
	}
	novella := testBrief()
	novella.ProductionType = models.ProductionNovella
	_, err := svc.SubmitJob(ctx, novella)
	require.NoError(t, err)

	t.Run("lists all jobs", func(t *testing.T) {
		resp, err := svc.ListJobs(ctx, models.JobFilters{})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
		assert.Equal(t, 20, resp.Limit)
	})

	t.Run("filters by production type", func(t *testing.T) {
		resp, err := svc.ListJobs(ctx, models.JobFilters{ProductionType: models.ProductionNovella})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
	})

	t.Run("filters by status", func(t *testing.T) {
		resp, err := svc.ListJobs(ctx, models.JobFilters{Status: string(job.StatusRunning)})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.TotalCount)
	})

	t.Run("respects pagination", func(t *testing.T) {
		resp, err := svc.ListJobs(ctx, models.JobFilters{Limit: 2, Offset: 0})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
		assert.Len(t, resp.Jobs, 2)
	})

	t.Run("excludes soft-deleted jobs by default", func(t *testing.T) {
		deleted := submitTestJob(t, svc)
		require.NoError(t, client.Client.Job.UpdateOneID(deleted.ID).
			SetDeletedAt(time.Now()).
			Exec(ctx))

		resp, err := svc.ListJobs(ctx, models.JobFilters{})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)

		resp, err = svc.ListJobs(ctx, models.JobFilters{IncludeDeleted: true})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.TotalCount)
	})
}

func TestJobService_UpdateJobStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	created := submitTestJob(t, svc)

	t.Run("running sets started_at", func(t *testing.T) {
		require.NoError(t, svc.UpdateJobStatus(ctx, created.ID, job.StatusRunning))
		j, err := svc.GetJob(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, job.StatusRunning, j.Status)
		assert.NotNil(t, j.StartedAt)
		assert.Nil(t, j.CompletedAt)
	})

	t.Run("terminal status sets completed_at", func(t *testing.T) {
		require.NoError(t, svc.UpdateJobStatus(ctx, created.ID, job.StatusCompleted))
		j, err := svc.GetJob(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, j.Status)
		assert.NotNil(t, j.CompletedAt)
	})

	t.Run("returns ErrNotFound for missing job", func(t *testing.T) {
		err := svc.UpdateJobStatus(ctx, "does-not-exist", job.StatusRunning)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestJobService_AddSpend(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	created := submitTestJob(t, svc)

	require.NoError(t, svc.AddSpend(ctx, created.ID, 0.25, 1000, 500))
	require.NoError(t, svc.AddSpend(ctx, created.ID, 0.50, 2000, 800))

	j, err := svc.GetJob(ctx, created.ID, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, j.CumulativeCostUsd, 1e-9)
	assert.Equal(t, 3000, j.CumulativePromptTokens)
	assert.Equal(t, 1300, j.CumulativeCompletionTokens)
}

func TestJobService_RequestCancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	t.Run("pending job cancels immediately", func(t *testing.T) {
		j := submitTestJob(t, svc)
		status, err := svc.RequestCancel(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelled, status)

		got, err := svc.GetJob(ctx, j.ID, false)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelled, got.Status)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("running job transitions to cancelling", func(t *testing.T) {
		j := submitTestJob(t, svc)
		require.NoError(t, svc.UpdateJobStatus(ctx, j.ID, job.StatusRunning))

		status, err := svc.RequestCancel(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelling, status)
	})

	t.Run("cancelling job is a no-op", func(t *testing.T) {
		j := submitTestJob(t, svc)
		require.NoError(t, svc.UpdateJobStatus(ctx, j.ID, job.StatusRunning))
		_, err := svc.RequestCancel(ctx, j.ID)
		require.NoError(t, err)

		status, err := svc.RequestCancel(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelling, status)
	})

	t.Run("completed job cannot be cancelled", func(t *testing.T) {
		j := submitTestJob(t, svc)
		require.NoError(t, svc.UpdateJobStatus(ctx, j.ID, job.StatusCompleted))

		_, err := svc.RequestCancel(ctx, j.ID)
		assert.True(t, IsValidationError(err))
	})
}

func TestJobService_ResumeJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	failJob := func(t *testing.T, kind pipeline.ErrorKind) *ent.Job {
		t.Helper()
		j := submitTestJob(t, svc)
		require.NoError(t, svc.UpdateJobStatus(ctx, j.ID, job.StatusRunning))
		require.NoError(t, svc.RecordFailure(ctx, j.ID, 6, kind, "stage failed"))
		return j
	}

	t.Run("resumes transport failure without config change", func(t *testing.T) {
		j := failJob(t, pipeline.ErrorKindTransport)

		resumed, err := svc.ResumeJob(ctx, j.ID, false)
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, resumed.Status)
		assert.Nil(t, resumed.ErrorKind)
		assert.Nil(t, resumed.ErrorMessage)
		assert.Nil(t, resumed.ErrorStage)
		assert.Nil(t, resumed.CompletedAt)
	})

	t.Run("cost_exceeded requires config change", func(t *testing.T) {
		j := failJob(t, pipeline.ErrorKindCostExceeded)

		_, err := svc.ResumeJob(ctx, j.ID, false)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "cost_exceeded")

		resumed, err := svc.ResumeJob(ctx, j.ID, true)
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, resumed.Status)
	})

	t.Run("permanent requires config change", func(t *testing.T) {
		j := failJob(t, pipeline.ErrorKindPermanent)
		_, err := svc.ResumeJob(ctx, j.ID, false)
		assert.True(t, IsValidationError(err))
	})

	t.Run("cancelled job resumes", func(t *testing.T) {
		j := submitTestJob(t, svc)
		_, err := svc.RequestCancel(ctx, j.ID)
		require.NoError(t, err)

		resumed, err := svc.ResumeJob(ctx, j.ID, false)
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, resumed.Status)
	})

	t.Run("running job cannot be resumed", func(t *testing.T) {
		j := submitTestJob(t, svc)
		require.NoError(t, svc.UpdateJobStatus(ctx, j.ID, job.StatusRunning))

		_, err := svc.ResumeJob(ctx, j.ID, false)
		assert.True(t, IsValidationError(err))
	})
}

func TestJobService_FindOrphanedJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	stale := submitTestJob(t, svc)
	require.NoError(t, client.Client.Job.UpdateOneID(stale.ID).
		SetStatus(job.StatusRunning).
		SetPodID("pod-gone").
		SetLastHeartbeatAt(time.Now().Add(-10*time.Minute)).
		Exec(ctx))

	fresh := submitTestJob(t, svc)
	require.NoError(t, client.Client.Job.UpdateOneID(fresh.ID).
		SetStatus(job.StatusRunning).
		SetPodID("pod-alive").
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx))

	orphans, err := svc.FindOrphanedJobs(ctx, 5*time.Minute)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, stale.ID, orphans[0].ID)
}

func TestJobService_SoftDeleteOldJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	old := submitTestJob(t, svc)
	require.NoError(t, client.Client.Job.UpdateOneID(old.ID).
		SetStatus(job.StatusCompleted).
		SetCompletedAt(time.Now().Add(-40*24*time.Hour)).
		Exec(ctx))

	recent := submitTestJob(t, svc)
	require.NoError(t, svc.UpdateJobStatus(ctx, recent.ID, job.StatusCompleted))

	t.Run("rejects non-positive retention", func(t *testing.T) {
		_, err := svc.SoftDeleteOldJobs(ctx, 0)
		assert.Error(t, err)
	})

	t.Run("soft deletes only jobs past retention", func(t *testing.T) {
		count, err := svc.SoftDeleteOldJobs(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		j, err := svc.GetJob(ctx, old.ID, false)
		require.NoError(t, err)
		assert.NotNil(t, j.DeletedAt)
	})
}
