//go:build integration

package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/narraforge/narraforge/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client with CI/local detection.
// In CI (CI_DATABASE_URL set): connects to the external PostgreSQL service.
// In local dev: spins up a testcontainer.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests; production uses the embedded SQL files
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreatePartialIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.Less(t, health.ResponseTime, int64(1000))
}

func TestDatabaseClient_JobRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	job, err := client.Job.Create().
		SetID("job-rt-1").
		SetBrief(map[string]interface{}{
			"production_type": "short_story",
			"genre":           "mystery",
			"premise":         "a librarian finds a letter addressed to her future self",
		}).
		SetProductionType("short_story").
		SetGenre("mystery").
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pending", string(job.Status))
	assert.Equal(t, "en", job.ContentLanguage)
	assert.Zero(t, job.CumulativeCostUsd)

	got, err := client.Job.Get(ctx, "job-rt-1")
	require.NoError(t, err)
	assert.Equal(t, "mystery", got.Brief["genre"])
}

func TestDatabaseClient_CheckpointUniquePerStage(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Job.Create().
		SetID("job-ck-1").
		SetBrief(map[string]interface{}{"premise": "x"}).
		SetProductionType("short_story").
		SetGenre("mystery").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Checkpoint.Create().
		SetID("ck-1").
		SetJobID("job-ck-1").
		SetStage(1).
		SetContextSnapshot(map[string]interface{}{}).
		SetCostUsd(0.01).
		SetPromptTokens(100).
		SetCompletionTokens(50).
		Save(ctx)
	require.NoError(t, err)

	// Second checkpoint for the same stage must violate the unique index
	_, err = client.Checkpoint.Create().
		SetID("ck-2").
		SetJobID("job-ck-1").
		SetStage(1).
		SetContextSnapshot(map[string]interface{}{}).
		SetCostUsd(0.02).
		SetPromptTokens(200).
		SetCompletionTokens(80).
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))
}

func TestDatabaseClient_CascadeDelete(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Job.Create().
		SetID("job-cas-1").
		SetBrief(map[string]interface{}{"premise": "x"}).
		SetProductionType("novella").
		SetGenre("scifi").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.World.Create().
		SetID("world-cas-1").
		SetJobID("job-cas-1").
		SetName("Meridian").
		SetRules([]string{"tides follow grief"}).
		SetBoundaries([]string{"no travel beyond the shelf"}).
		SetAnomalies([]string{}).
		SetCoreConflict("memory against erosion").
		SetTheme("what the sea keeps").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.DB().ExecContext(ctx, `DELETE FROM jobs WHERE job_id = $1`, "job-cas-1")
	require.NoError(t, err)

	exists, err := client.World.Query().Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}
