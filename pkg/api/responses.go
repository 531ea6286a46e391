package api

// SubmitJobResponse is returned by POST /api/v1/jobs.
type SubmitJobResponse struct {
	JobID     string `json:"job_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// CancelJobResponse is returned by POST /api/v1/jobs/:id/cancel.
type CancelJobResponse struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ResumeJobResponse is returned by POST /api/v1/jobs/:id/resume.
type ResumeJobResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// JobEventItem is a single persisted event row.
type JobEventItem struct {
	ID      int64                  `json:"id"`
	Payload map[string]interface{} `json:"payload"`
}

// JobEventsResponse is returned by GET /api/v1/jobs/:id/events.
type JobEventsResponse struct {
	JobID  string         `json:"job_id"`
	Events []JobEventItem `json:"events"`
	Count  int            `json:"count"`
}

// HealthCheck is the status of a single component in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// SystemWarningsResponse is returned by GET /api/v1/system/warnings.
type SystemWarningsResponse struct {
	Warnings []SystemWarningItem `json:"warnings"`
}

// SystemWarningItem is a single system warning.
type SystemWarningItem struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	ProviderID string `json:"provider_id,omitempty"`
	CreatedAt  string `json:"created_at"`
}
