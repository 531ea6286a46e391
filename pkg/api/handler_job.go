package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/narraforge/narraforge/ent/job"
	"github.com/narraforge/narraforge/pkg/models"
)

// submitJobHandler handles POST /api/v1/jobs.
// The request body is a Production Brief; a valid brief is enqueued as a
// pending job and picked up by the worker pool.
func (s *Server) submitJobHandler(c *gin.Context) {
	var brief models.Brief
	if err := c.ShouldBindJSON(&brief); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	created, err := s.jobService.SubmitJob(c.Request.Context(), brief)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &SubmitJobResponse{
		JobID:     created.ID,
		Status:    string(created.Status),
		CreatedAt: created.CreatedAt.Format(time.RFC3339),
	})
}

// getJobHandler handles GET /api/v1/jobs/:id.
// ?include=details loads the world and per-stage checkpoint edges.
func (s *Server) getJobHandler(c *gin.Context) {
	jobID := c.Param("id")

	withEdges := c.Query("include") == "details"

	j, err := s.jobService.GetJob(c.Request.Context(), jobID, withEdges)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, j)
}

// listJobsHandler handles GET /api/v1/jobs with filtering and pagination.
func (s *Server) listJobsHandler(c *gin.Context) {
	filters := models.JobFilters{}

	if v := c.Query("status"); v != "" {
		if err := job.StatusValidator(job.Status(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
		filters.Status = v
	}
	filters.ProductionType = c.Query("production_type")
	filters.Genre = c.Query("genre")
	filters.Owner = c.Query("owner")

	if v := c.Query("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid created_after: must be RFC3339"})
			return
		}
		filters.CreatedAfter = &t
	}
	if v := c.Query("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid created_before: must be RFC3339"})
			return
		}
		filters.CreatedBefore = &t
	}

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit: must be 1-100"})
			return
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		filters.Offset = n
	}

	result, err := s.jobService.ListJobs(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// cancelJobHandler handles POST /api/v1/jobs/:id/cancel.
// Pending jobs cancel immediately; running jobs transition to cancelling and
// the orchestrator stops at the next stage boundary.
func (s *Server) cancelJobHandler(c *gin.Context) {
	jobID := c.Param("id")

	status, err := s.jobService.RequestCancel(c.Request.Context(), jobID)

	// Always try to cancel on this pod via the worker pool, regardless of
	// the DB result. The job may be running here while another replica
	// handled the status transition.
	if s.workerPool != nil {
		s.workerPool.CancelJob(jobID)
	}

	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &CancelJobResponse{
		JobID:   jobID,
		Status:  string(status),
		Message: "job cancellation requested",
	})
}

// resumeJobHandler handles POST /api/v1/jobs/:id/resume.
// Re-queues a failed or cancelled job; the pipeline restarts from the last
// committed checkpoint. Failures that block resume (cost_exceeded,
// permanent) require config_changed=true in the body.
func (s *Server) resumeJobHandler(c *gin.Context) {
	jobID := c.Param("id")

	var req ResumeJobRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}

	j, err := s.jobService.ResumeJob(c.Request.Context(), jobID, req.ConfigChanged)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &ResumeJobResponse{
		JobID:  j.ID,
		Status: string(j.Status),
	})
}
