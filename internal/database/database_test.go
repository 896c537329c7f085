// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/wayfarer/internal/config"
)

// testDBSemaphore limits concurrent DuckDB instances in tests. Concurrent
// CGO calls from many parallel tests can hang under CI resource pressure.
var testDBSemaphore = make(chan struct{}, 1)

// setupTestDB creates a new in-memory test database. The semaphore is held
// for the whole test and released by t.Cleanup.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	db, err := New(&config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "256MB",
		Threads:   1,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func TestNew_AppliesMigrations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	version, err := db.GetCurrentSchemaVersion(ctx)
	if err != nil {
		t.Fatalf("GetCurrentSchemaVersion() error = %v", err)
	}
	want := db.getMigrations()[len(db.getMigrations())-1].Version
	if version != want {
		t.Errorf("schema version = %d, want %d", version, want)
	}

	history, err := db.GetMigrationHistory(ctx)
	if err != nil {
		t.Fatalf("GetMigrationHistory() error = %v", err)
	}
	if len(history) != len(db.getMigrations()) {
		t.Errorf("history length = %d, want %d", len(history), len(db.getMigrations()))
	}
	for _, m := range history {
		if m.AppliedAt.IsZero() {
			t.Errorf("migration v%d has no applied_at", m.Version)
		}
	}

	if err := db.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestNew_ReopenFileIsIdempotent(t *testing.T) {
	testDBSemaphore <- struct{}{}
	defer func() { <-testDBSemaphore }()

	path := filepath.Join(t.TempDir(), "nested", "wayfarer.duckdb")
	cfg := &config.DatabaseConfig{Path: path, MaxMemory: "256MB", Threads: 1}

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rec := newRecord("a.jpg", 48.85, 2.35, "Paris", "France", time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC))
	if err := db.InsertLocation(context.Background(), &rec); err != nil {
		t.Fatalf("InsertLocation() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	db, err = New(cfg)
	if err != nil {
		t.Fatalf("reopen New() error = %v", err)
	}
	defer db.Close()

	history, err := db.GetMigrationHistory(context.Background())
	if err != nil {
		t.Fatalf("GetMigrationHistory() error = %v", err)
	}
	if len(history) != len(db.getMigrations()) {
		t.Errorf("migrations re-applied: history = %d", len(history))
	}
	got, err := db.GetLocation(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("GetLocation() after reopen error = %v", err)
	}
	if got.City != "Paris" {
		t.Errorf("persisted city = %q", got.City)
	}
	if db.GetDatabasePath() != path {
		t.Errorf("GetDatabasePath() = %q", db.GetDatabasePath())
	}
}

func TestIsTransactionConflict(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("TransactionContext Error: Transaction conflict: cannot update"), true},
		{errors.New("Conflict on update of row"), true},
		{errors.New("Constraint Error: duplicate key"), false},
	}
	for _, tt := range tests {
		if got := isTransactionConflict(tt.err); got != tt.want {
			t.Errorf("isTransactionConflict(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
	if !isInternalError(errors.New("INTERNAL Error: boom")) || isInternalError(nil) {
		t.Error("isInternalError classification wrong")
	}
}

func TestWithWriteRetry(t *testing.T) {
	db := &DB{maxWriteRetries: 3}
	ctx := context.Background()

	t.Run("retries conflicts", func(t *testing.T) {
		calls := 0
		err := db.withWriteRetry(ctx, func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("Transaction conflict")
			}
			return nil
		})
		if err != nil || calls != 3 {
			t.Errorf("err = %v, calls = %d, want nil after 3", err, calls)
		}
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := db.withWriteRetry(ctx, func(context.Context) error {
			calls++
			return errors.New("Transaction conflict")
		})
		if err == nil || calls != 3 {
			t.Errorf("err = %v, calls = %d", err, calls)
		}
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		calls := 0
		sentinel := errors.New("constraint violated")
		err := db.withWriteRetry(ctx, func(context.Context) error {
			calls++
			return sentinel
		})
		if !errors.Is(err, sentinel) || calls != 1 {
			t.Errorf("err = %v, calls = %d", err, calls)
		}
	})
}
