package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial indexes that Ent/Atlas
// cannot express. These must match the constraints in the migration SQL
// under migrations/.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Retention sweeps only look at soft-deleted rows
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS job_deleted_at_soft_deleted
		ON jobs (deleted_at)
		WHERE deleted_at IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create soft-delete index: %w", err)
	}

	// Orphan scans only look at running jobs
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS job_heartbeat_running
		ON jobs (last_heartbeat_at)
		WHERE status = 'running'`)
	if err != nil {
		return fmt.Errorf("failed to create heartbeat index: %w", err)
	}

	return nil
}
