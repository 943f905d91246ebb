package testdb

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/phrazzld/studybuddy-api/internal/config"
	"github.com/phrazzld/studybuddy-api/internal/platform/database"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// GetTestDatabaseURL returns the PostgreSQL URL for integration tests.
// It checks STUDYBUDDY_TEST_DATABASE_URL and DATABASE_URL in that order.
func GetTestDatabaseURL() string {
	if u := os.Getenv("STUDYBUDDY_TEST_DATABASE_URL"); u != "" {
		return u
	}
	return os.Getenv("DATABASE_URL")
}

// ShouldSkipDatabaseTest returns true if no PostgreSQL URL is configured.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == ""
}

// Open returns a migrated in-memory SQLite database that is closed when the
// test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	return open(t, config.DatabaseConfig{Driver: database.DriverSQLite, Name: ":memory:"})
}

// OpenPostgres returns a migrated PostgreSQL database, or skips the test.
func OpenPostgres(t *testing.T) *sql.DB {
	t.Helper()

	if ShouldSkipDatabaseTest() {
		t.Skip("STUDYBUDDY_TEST_DATABASE_URL not set - skipping integration test")
	}

	db := open(t, config.DatabaseConfig{Driver: database.DriverPostgres, URL: GetTestDatabaseURL()})

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "PostgreSQL test database is not reachable")

	return db
}

// Truncate removes every flashcard. Use it with OpenPostgres, whose
// database outlives a single test.
func Truncate(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	_, err := db.ExecContext(ctx, "DELETE FROM flashcards")
	require.NoError(t, err, "Failed to clean flashcards table")
}

func open(t *testing.T, cfg config.DatabaseConfig) *sql.DB {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := database.Open(ctx, cfg, logger)
	require.NoError(t, err, "Failed to open test database")
	require.NotNil(t, db, "Test database must be configured")

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close test database: %v", err)
		}
	})

	require.NoError(t, database.Migrate(ctx, db, cfg.Driver, logger), "Failed to run migrations")

	return db
}
