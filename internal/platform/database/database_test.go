package database

import (
	"context"
	"testing"

	"github.com/phrazzld/studybuddy-api/internal/config"
	"github.com/phrazzld/studybuddy-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWithoutDatabase(t *testing.T) {
	l, buf := logger.GetTestLogger(t)

	db, err := Open(context.Background(), config.DatabaseConfig{Driver: DriverPostgres}, l)

	require.NoError(t, err)
	assert.Nil(t, db)
	logger.AssertLogContains(t, buf, "no database configured")
}

func TestOpenUnsupportedDriver(t *testing.T) {
	l, _ := logger.GetTestLogger(t)

	db, err := Open(context.Background(), config.DatabaseConfig{Driver: "mysql", URL: "mysql://x"}, l)

	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestOpenAndMigrateSQLite(t *testing.T) {
	l, buf := logger.GetTestLogger(t)
	ctx := context.Background()

	db, err := Open(ctx, config.DatabaseConfig{Driver: DriverSQLite, Name: ":memory:"}, l)
	require.NoError(t, err)
	require.NotNil(t, db)
	defer func() { _ = db.Close() }()

	require.NoError(t, Migrate(ctx, db, DriverSQLite, l))
	logger.AssertLogContains(t, buf, "database migrations applied")

	// Applying again is a no-op.
	require.NoError(t, Migrate(ctx, db, DriverSQLite, l))

	for _, table := range []string{"flashcards", "users", "payments", MigrationTableName} {
		var name string
		err := db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1", table).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrateRequiresDatabase(t *testing.T) {
	l, _ := logger.GetTestLogger(t)

	assert.Error(t, Migrate(context.Background(), nil, DriverSQLite, l))
}

func TestSQLiteDSN(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ":memory:?_time_format=sqlite", sqliteDSN(":memory:"))
	assert.Equal(t, "file:x.db?cache=shared&_time_format=sqlite", sqliteDSN("file:x.db?cache=shared"))
	assert.Equal(t, "x.db?_time_format=sqlite", sqliteDSN("x.db?_time_format=sqlite"))
}
