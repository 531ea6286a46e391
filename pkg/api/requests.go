package api

// ResumeJobRequest is the optional body for POST /api/v1/jobs/:id/resume.
// config_changed must be true to resume jobs whose failure kind blocks
// resume (cost_exceeded, permanent).
type ResumeJobRequest struct {
	ConfigChanged bool `json:"config_changed"`
}
