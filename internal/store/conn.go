package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/studybuddy-api/internal/platform/logger"
)

// ConnFn is a function that runs against a single dedicated connection.
type ConnFn func(ctx context.Context, conn *sql.Conn) error

// WithConn acquires a connection from db, runs fn with it and releases it on
// every path, including a panic in fn. No transaction is opened; each
// statement fn executes commits on its own.
//
// A nil db or a failure to acquire a connection yields ErrStorageUnavailable.
func WithConn(ctx context.Context, db *sql.DB, fn ConnFn) (err error) {
	log := logger.FromContext(ctx)

	if db == nil {
		return fmt.Errorf("%w: no database configured", ErrStorageUnavailable)
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		log.Error("failed to acquire database connection",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: failed to acquire connection: %v", ErrStorageUnavailable, err)
	}

	defer func() {
		if p := recover(); p != nil {
			if closeErr := conn.Close(); closeErr != nil {
				log.Error("failed to release connection after panic",
					slog.String("error", closeErr.Error()),
					slog.Any("panic", p))
			}
			// ALLOW-PANIC: Propagating caught panic after releasing the connection
			panic(p)
		}
		if closeErr := conn.Close(); closeErr != nil {
			log.Warn("failed to release connection",
				slog.String("error", closeErr.Error()))
			if err == nil {
				err = fmt.Errorf("failed to release connection: %w", closeErr)
			}
		}
	}()

	return fn(ctx, conn)
}
