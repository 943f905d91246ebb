package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/studybuddy-api/internal/config"
	_ "modernc.org/sqlite" // sqlite driver
)

// Supported drivers, as named in config.DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const pingTimeout = 5 * time.Second

// Open creates a connection pool for cfg.
//
// When no database is configured it returns a nil *sql.DB and no error; stores
// built on a nil pool report store.ErrStorageUnavailable. A failed ping is
// logged but not fatal: the pool keeps trying on later calls.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	dsn := cfg.DSN()
	if dsn == "" {
		logger.Warn("no database configured, flashcards will not be persisted")
		return nil, nil
	}

	driverName, err := sqlDriverName(cfg.Driver)
	if err != nil {
		return nil, err
	}
	if cfg.Driver == DriverSQLite {
		dsn = sqliteDSN(dsn)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	switch cfg.Driver {
	case DriverSQLite:
		// One connection keeps in-memory databases shared and serializes writers.
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		logger.Warn("database ping failed, continuing without a verified connection",
			"driver", cfg.Driver,
			"error", err)
		return db, nil
	}

	logger.Info("database connection established", "driver", cfg.Driver)
	return db, nil
}

func sqlDriverName(driver string) (string, error) {
	switch driver {
	case DriverPostgres, "":
		return "pgx", nil
	case DriverSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// sqliteDSN makes time.Time values round-trip as sortable text.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_time_format=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_time_format=sqlite"
}
