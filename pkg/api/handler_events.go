package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/narraforge/narraforge/pkg/events"
)

// jobEventsHandler handles GET /api/v1/jobs/:id/events.
// REST fallback for the WebSocket stream: returns persisted events for the
// job's channel in serial order. ?since_id resumes after a known event;
// ?limit caps the page size.
func (s *Server) jobEventsHandler(c *gin.Context) {
	jobID := c.Param("id")

	var sinceID int64
	if v := c.Query("since_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid since_id"})
			return
		}
		sinceID = n
	}

	limit := 200
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 1000 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit: must be 1-1000"})
			return
		}
		limit = n
	}

	// Confirm the job exists so a typo'd id returns 404 instead of an
	// empty event list.
	if _, err := s.jobService.GetJob(c.Request.Context(), jobID, false); err != nil {
		mapServiceError(c, err)
		return
	}

	rows, err := s.eventService.GetEventsSince(c.Request.Context(), events.JobChannel(jobID), sinceID, limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	items := make([]JobEventItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, JobEventItem{
			ID:      row.ID,
			Payload: row.Payload,
		})
	}

	c.JSON(http.StatusOK, &JobEventsResponse{
		JobID:  jobID,
		Events: items,
		Count:  len(items),
	})
}
