// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/wayfarer/internal/models"
)

// GetLocationStats summarizes the stored locations.
//
// Countries and Cities count distinct known names; a city is identified by
// its (city, country) pair. UnknownLocations counts records whose country is
// Unknown. The country breakdown is included.
func (db *DB) GetLocationStats(ctx context.Context) (stats *models.LocationStats, err error) {
	start := time.Now()
	defer func() { observe("location_stats", start, err) }()

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
		SELECT
			COUNT(*),
			COUNT(DISTINCT country) FILTER (WHERE country <> ?),
			COUNT(DISTINCT city || '|' || country) FILTER (WHERE city <> ?),
			COUNT(*) FILTER (WHERE country = ?),
			MIN(capture_date),
			MAX(capture_date)
		FROM locations`

	var first, last sql.NullTime
	stats = &models.LocationStats{}
	err = db.conn.QueryRowContext(ctx, query, models.Unknown, models.Unknown, models.Unknown).Scan(
		&stats.TotalLocations,
		&stats.Countries,
		&stats.Cities,
		&stats.UnknownLocations,
		&first,
		&last,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query location stats: %w", err)
	}
	if first.Valid {
		t := first.Time.UTC()
		stats.FirstCapture = &t
	}
	if last.Valid {
		t := last.Time.UTC()
		stats.LastCapture = &t
	}

	stats.CountryBreakdown, err = db.CountryBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// CountryBreakdown returns the record count per country, largest first,
// ties ordered by country name. Unknown is included as its own row.
func (db *DB) CountryBreakdown(ctx context.Context) (breakdown []models.CountryStat, err error) {
	start := time.Now()
	defer func() { observe("country_breakdown", start, err) }()

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT
			country,
			COUNT(*) AS visits,
			COUNT(DISTINCT city) FILTER (WHERE city <> ?)
		FROM locations
		GROUP BY country
		ORDER BY visits DESC, country ASC`, models.Unknown)
	if err != nil {
		return nil, fmt.Errorf("failed to query country breakdown: %w", err)
	}
	defer closeWithLog(rows, "country breakdown rows")

	breakdown = []models.CountryStat{}
	for rows.Next() {
		var cs models.CountryStat
		if err := rows.Scan(&cs.Country, &cs.Count, &cs.Cities); err != nil {
			return nil, fmt.Errorf("failed to scan country breakdown: %w", err)
		}
		breakdown = append(breakdown, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate country breakdown: %w", err)
	}
	return breakdown, nil
}
