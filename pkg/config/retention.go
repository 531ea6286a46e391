package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// JobRetentionDays is how many days to keep completed jobs before
	// soft-deleting them (setting deleted_at). Cancelled and failed jobs
	// keep their checkpoints for the same window so resume stays possible.
	JobRetentionDays int `yaml:"job_retention_days"`

	// CheckpointRetention is the maximum age of checkpoints belonging to
	// terminal jobs before deletion.
	CheckpointRetention time.Duration `yaml:"checkpoint_retention"`

	// EventTTL is the maximum age of orphaned Event rows before deletion.
	// Per-job cleanup handles the normal case; this is a safety net.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		JobRetentionDays:    180,
		CheckpointRetention: 30 * 24 * time.Hour,
		EventTTL:            24 * time.Hour,
		CleanupInterval:     12 * time.Hour,
	}
}
