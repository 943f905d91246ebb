// Package database provides the SQL implementations of the interfaces defined
// in internal/store. It opens PostgreSQL (through pgx) or SQLite (through
// modernc.org/sqlite) pools from configuration, applies the embedded goose
// migrations for the chosen dialect, and maps driver errors onto the store
// error sentinels.
//
// Queries use $N placeholders, which both drivers accept.
package database
