// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package database

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// configureConnectionPool sets connection pool parameters
func (db *DB) configureConnectionPool() {
	db.conn.SetMaxOpenConns(runtime.NumCPU())
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// isTransactionConflict checks if an error is a DuckDB transaction conflict
func isTransactionConflict(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Transaction conflict") ||
		strings.Contains(errStr, "Conflict on update") ||
		strings.Contains(errStr, "cannot update a table that has been altered")
}

// isInternalError checks if an error is a DuckDB INTERNAL error
func isInternalError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "INTERNAL Error")
}

// withWriteRetry runs fn under the write lock, retrying transaction
// conflicts with exponential backoff (1ms, 2ms, 4ms).
func (db *DB) withWriteRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	var lastErr error
	for attempt := 0; attempt < db.maxWriteRetries; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return fmt.Errorf("operation timed out or canceled: %w", ctx.Err())
		}
		if isInternalError(err) {
			return fmt.Errorf("FATAL: DuckDB internal error: %w", err)
		}
		if !isTransactionConflict(err) {
			return err
		}

		if attempt < db.maxWriteRetries-1 {
			backoff := time.Millisecond * time.Duration(1<<uint(attempt))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}
