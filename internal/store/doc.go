// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic. Implementations live in
// internal/platform/database.
//
// A store built without a database reports ErrStorageUnavailable from every
// call instead of failing at startup.
package store
