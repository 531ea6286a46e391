package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/database"
	"github.com/narraforge/narraforge/pkg/models"
	"github.com/narraforge/narraforge/pkg/services"
	testdb "github.com/narraforge/narraforge/test/database"
)

func newTestServer(t *testing.T) (*Server, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)

	cfg := &config.Config{
		Production: config.DefaultProductionConfig(),
		Queue:      config.DefaultQueueConfig(),
	}

	s := NewServer(
		cfg,
		client,
		services.NewJobService(client.Client),
		services.NewEventService(client.Client),
		nil, // worker pool not needed for handler tests
		nil, // connection manager not needed for handler tests
	)
	return s, client
}

func doRequest(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func validBrief() models.Brief {
	return models.Brief{
		ProductionType: models.ProductionShortStory,
		Genre:          "speculative",
		Inspiration:    "a lighthouse keeper who archives the dreams of passing ships",
	}
}

func TestSubmitJob(t *testing.T) {
	s, client := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/jobs", validBrief())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeJSON(t, rec)
	jobID, _ := body["job_id"].(string)
	require.NotEmpty(t, jobID)
	assert.Equal(t, "pending", body["status"])

	stored, err := client.Client.Job.Get(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, stored.Status)
	assert.Equal(t, models.ProductionShortStory, stored.ProductionType)
	assert.Equal(t, "speculative", stored.Genre)
}

func TestSubmitJob_InvalidBrief(t *testing.T) {
	s, _ := newTestServer(t)

	brief := validBrief()
	brief.ProductionType = "screenplay"

	rec := doRequest(t, s, http.MethodPost, "/api/v1/jobs", brief)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "production_type")
}

func TestSubmitJob_MalformedBody(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetJob(t *testing.T) {
	s, _ := newTestServer(t)

	submitted := decodeJSON(t, doRequest(t, s, http.MethodPost, "/api/v1/jobs", validBrief()))
	jobID := submitted["job_id"].(string)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/jobs/"+jobID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, jobID, body["id"])
	assert.Equal(t, "pending", body["status"])
}

func TestGetJob_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/jobs/no-such-job", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListJobs(t *testing.T) {
	s, client := newTestServer(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		body := decodeJSON(t, doRequest(t, s, http.MethodPost, "/api/v1/jobs", validBrief()))
		ids = append(ids, body["job_id"].(string))
	}

	// One job completed, for status filtering
	err := client.Client.Job.UpdateOneID(ids[0]).
		SetStatus(job.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	t.Run("all jobs", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/jobs", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON(t, rec)
		assert.Equal(t, float64(3), body["total_count"])
	})

	t.Run("status filter", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/jobs?status=completed", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON(t, rec)
		assert.Equal(t, float64(1), body["total_count"])
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/jobs?status=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("pagination", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/jobs?limit=2&offset=0", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON(t, rec)
		assert.Equal(t, float64(3), body["total_count"])
		assert.Len(t, body["jobs"], 2)
	})

	t.Run("invalid limit rejected", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/jobs?limit=500", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCancelJob_Pending(t *testing.T) {
	s, client := newTestServer(t)

	submitted := decodeJSON(t, doRequest(t, s, http.MethodPost, "/api/v1/jobs", validBrief()))
	jobID := submitted["job_id"].(string)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/jobs/"+jobID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeJSON(t, rec)
	assert.Equal(t, "cancelled", body["status"])

	stored, err := client.Client.Job.Get(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, stored.Status)
}

func TestCancelJob_Running(t *testing.T) {
	s, client := newTestServer(t)
	ctx := context.Background()

	submitted := decodeJSON(t, doRequest(t, s, http.MethodPost, "/api/v1/jobs", validBrief()))
	jobID := submitted["job_id"].(string)

	require.NoError(t, client.Client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(ctx))

	rec := doRequest(t, s, http.MethodPost, "/api/v1/jobs/"+jobID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "cancelling", body["status"])
}

func TestCancelJob_Terminal(t *testing.T) {
	s, client := newTestServer(t)
	ctx := context.Background()

	submitted := decodeJSON(t, doRequest(t, s, http.MethodPost, "/api/v1/jobs", validBrief()))
	jobID := submitted["job_id"].(string)

	require.NoError(t, client.Client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx))

	rec := doRequest(t, s, http.MethodPost, "/api/v1/jobs/"+jobID+"/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResumeJob(t *testing.T) {
	s, client := newTestServer(t)
	ctx := context.Background()

	submitted := decodeJSON(t, doRequest(t, s, http.MethodPost, "/api/v1/jobs", validBrief()))
	jobID := submitted["job_id"].(string)

	require.NoError(t, client.Client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusFailed).
		SetErrorKind("transport").
		SetErrorStage(4).
		SetErrorMessage("provider unavailable after retries").
		SetCompletedAt(time.Now()).
		Exec(ctx))

	rec := doRequest(t, s, http.MethodPost, "/api/v1/jobs/"+jobID+"/resume", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeJSON(t, rec)
	assert.Equal(t, "pending", body["status"])

	stored, err := client.Client.Job.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, stored.Status)
	assert.Nil(t, stored.ErrorKind)
}

func TestResumeJob_BlockedKindNeedsConfigChange(t *testing.T) {
	s, client := newTestServer(t)
	ctx := context.Background()

	submitted := decodeJSON(t, doRequest(t, s, http.MethodPost, "/api/v1/jobs", validBrief()))
	jobID := submitted["job_id"].(string)

	require.NoError(t, client.Client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusFailed).
		SetErrorKind("cost_exceeded").
		SetErrorStage(6).
		SetErrorMessage("budget ceiling reached").
		SetCompletedAt(time.Now()).
		Exec(ctx))

	rec := doRequest(t, s, http.MethodPost, "/api/v1/jobs/"+jobID+"/resume", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "cost_exceeded")

	rec = doRequest(t, s, http.MethodPost, "/api/v1/jobs/"+jobID+"/resume",
		ResumeJobRequest{ConfigChanged: true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestResumeJob_WrongStatus(t *testing.T) {
	s, _ := newTestServer(t)

	submitted := decodeJSON(t, doRequest(t, s, http.MethodPost, "/api/v1/jobs", validBrief()))
	jobID := submitted["job_id"].(string)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/jobs/"+jobID+"/resume", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJobEvents(t *testing.T) {
	s, client := newTestServer(t)
	ctx := context.Background()

	submitted := decodeJSON(t, doRequest(t, s, http.MethodPost, "/api/v1/jobs", validBrief()))
	jobID := submitted["job_id"].(string)

	channel := "job:" + jobID
	for i := 1; i <= 3; i++ {
		_, err := client.Client.Event.Create().
			SetJobID(jobID).
			SetChannel(channel).
			SetPayload(map[string]interface{}{"type": "stage.status", "stage": i}).
			SetCreatedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
	}

	rec := doRequest(t, s, http.MethodGet, "/api/v1/jobs/"+jobID+"/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp JobEventsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Count)
	assert.Equal(t, jobID, resp.JobID)

	// since_id resumes after the first event
	rec = doRequest(t, s, http.MethodGet,
		fmt.Sprintf("/api/v1/jobs/%s/events?since_id=%d", jobID, resp.Events[0].ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tail JobEventsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tail))
	assert.Equal(t, 2, tail.Count)
}

func TestJobEvents_UnknownJob(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/jobs/no-such-job/events", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
