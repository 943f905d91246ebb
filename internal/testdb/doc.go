// Package testdb provides utilities for database tests.
//
// Open returns a fresh in-memory SQLite database with every migration
// applied, so store and handler tests run without external services. Each
// call gets its own database; nothing is shared between tests.
//
// OpenPostgres connects to the database named by STUDYBUDDY_TEST_DATABASE_URL
// (or DATABASE_URL) and skips the test when neither is set.
package testdb
