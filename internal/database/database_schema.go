// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// getTableCreationQueries returns the CREATE TABLE statements for the base schema.
// Indexes and later changes live in migrations.go.
func (db *DB) getTableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS locations (
			id VARCHAR PRIMARY KEY,
			latitude DOUBLE NOT NULL,
			longitude DOUBLE NOT NULL,
			capture_date TIMESTAMP NOT NULL,
			country VARCHAR NOT NULL DEFAULT 'Unknown',
			city VARCHAR NOT NULL DEFAULT 'Unknown',
			source_file VARCHAR NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			CHECK (latitude BETWEEN -90 AND 90),
			CHECK (longitude BETWEEN -180 AND 180)
		);`,
	}
}

// createTables creates the core database tables
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range db.getTableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}
