package models

import (
	"time"

	"github.com/narraforge/narraforge/ent"
)

// JobFilters carries the filtering and pagination knobs for job listings
type JobFilters struct {
	Status         string     `json:"status,omitempty"`
	ProductionType string     `json:"production_type,omitempty"`
	Genre          string     `json:"genre,omitempty"`
	Owner          string     `json:"owner,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// JobListResponse contains a paginated job list
type JobListResponse struct {
	Jobs       []*ent.Job `json:"jobs"`
	TotalCount int        `json:"total_count"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}
