// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/wayfarer/internal/models"
)

const locationColumns = `id, latitude, longitude, capture_date, country, city, source_file, created_at, updated_at`

// buildLocationWhere builds the WHERE clause and args for a LocationFilter.
func buildLocationWhere(filter models.LocationFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if filter.From != nil {
		clauses = append(clauses, "capture_date >= ?")
		args = append(args, filter.From.UTC())
	}
	if filter.To != nil {
		clauses = append(clauses, "capture_date <= ?")
		args = append(args, filter.To.UTC())
	}
	if filter.Country != "" {
		clauses = append(clauses, "country = ?")
		args = append(args, filter.Country)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// ListLocations returns stored locations matching filter, newest capture first.
func (db *DB) ListLocations(ctx context.Context, filter models.LocationFilter) (records []models.LocationRecord, err error) {
	start := time.Now()
	defer func() { observe("list_locations", start, err) }()

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	where, args := buildLocationWhere(filter)
	query := `SELECT ` + locationColumns + ` FROM locations` + where + ` ORDER BY capture_date DESC, id`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer closeWithLog(rows, "location rows")

	records = []models.LocationRecord{}
	for rows.Next() {
		rec, scanErr := scanLocation(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}
	return records, nil
}

// GetLocation returns the location with the given id, or ErrNotFound.
func (db *DB) GetLocation(ctx context.Context, id string) (rec models.LocationRecord, err error) {
	start := time.Now()
	defer func() { observe("get_location", start, err) }()

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	row := db.conn.QueryRowContext(ctx, `SELECT `+locationColumns+` FROM locations WHERE id = ?`, id)
	rec, err = scanLocation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocationRecord{}, ErrNotFound
	}
	return rec, err
}

// InsertLocation stores a new location record. Empty names are stored as Unknown.
func (db *DB) InsertLocation(ctx context.Context, rec *models.LocationRecord) (err error) {
	start := time.Now()
	defer func() { observe("insert_location", start, err) }()

	if rec.ID == "" {
		return fmt.Errorf("location id is required")
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}
	rec.City = models.NormalizeName(rec.City)
	rec.Country = models.NormalizeName(rec.Country)

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	return db.withWriteRetry(ctx, func(ctx context.Context) error {
		_, execErr := db.conn.ExecContext(ctx,
			`INSERT INTO locations (`+locationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.Latitude, rec.Longitude, rec.CaptureDate.UTC(),
			rec.Country, rec.City, rec.SourceFileName,
			rec.CreatedAt.UTC(), rec.UpdatedAt.UTC())
		if execErr != nil {
			return fmt.Errorf("failed to insert location: %w", execErr)
		}
		return nil
	})
}

// UpdateLocationPlace overwrites a record's city and country. Returns
// ErrNotFound when no record has the id.
func (db *DB) UpdateLocationPlace(ctx context.Context, id, city, country string) (err error) {
	start := time.Now()
	defer func() { observe("update_location_place", start, err) }()

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	return db.withWriteRetry(ctx, func(ctx context.Context) error {
		result, execErr := db.conn.ExecContext(ctx,
			`UPDATE locations SET city = ?, country = ?, updated_at = ? WHERE id = ?`,
			models.NormalizeName(city), models.NormalizeName(country), time.Now().UTC(), id)
		if execErr != nil {
			return fmt.Errorf("failed to update location: %w", execErr)
		}
		n, rowsErr := result.RowsAffected()
		if rowsErr != nil {
			return fmt.Errorf("failed to read affected rows: %w", rowsErr)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ClearLocations deletes every location and returns how many were removed.
func (db *DB) ClearLocations(ctx context.Context) (deleted int64, err error) {
	start := time.Now()
	defer func() { observe("clear_locations", start, err) }()

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	err = db.withWriteRetry(ctx, func(ctx context.Context) error {
		result, execErr := db.conn.ExecContext(ctx, `DELETE FROM locations`)
		if execErr != nil {
			return fmt.Errorf("failed to clear locations: %w", execErr)
		}
		n, rowsErr := result.RowsAffected()
		if rowsErr != nil {
			return fmt.Errorf("failed to read affected rows: %w", rowsErr)
		}
		deleted = n
		return nil
	})
	return deleted, err
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLocation(s rowScanner) (models.LocationRecord, error) {
	var rec models.LocationRecord
	err := s.Scan(
		&rec.ID, &rec.Latitude, &rec.Longitude, &rec.CaptureDate,
		&rec.Country, &rec.City, &rec.SourceFileName,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, err
		}
		return rec, fmt.Errorf("failed to scan location: %w", err)
	}
	rec.CaptureDate = rec.CaptureDate.UTC()
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	return rec, nil
}
