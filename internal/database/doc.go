// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package database provides the DuckDB-backed location store for Wayfarer.
//
// # Overview
//
// The package owns the locations table, which holds one row per visit
// derived from a geotagged photo, and the schema_migrations table that
// tracks applied schema changes.
//
// Files:
//   - database.go: lifecycle (open, initialize, close, ping)
//   - database_schema.go: table creation
//   - migrations.go: versioned migrations (indexes and later changes)
//   - database_connection.go: pool configuration and error classification
//   - database_utils.go: context helpers, checkpoints, close helpers
//   - crud_locations.go: list, insert, update and clear
//   - crud_stats.go: summary statistics and country breakdown
//
// # Timestamps
//
// capture_date, created_at and updated_at are stored as TIMESTAMP values in
// UTC. Callers pass and receive UTC times.
//
// # Concurrency
//
// DB is safe for concurrent use. Writes are serialized by an internal mutex
// and retried on DuckDB transaction conflicts.
//
// # Testing
//
// Tests use in-memory databases:
//
//	db, err := database.New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "256MB"})
package database
