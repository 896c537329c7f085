// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package database

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/wayfarer/internal/models"
)

func TestGetLocationStats_Empty(t *testing.T) {
	db := setupTestDB(t)

	stats, err := db.GetLocationStats(context.Background())
	if err != nil {
		t.Fatalf("GetLocationStats() error = %v", err)
	}
	if stats.TotalLocations != 0 || stats.FirstCapture != nil || stats.LastCapture != nil {
		t.Errorf("stats = %+v", stats)
	}
	if stats.CountryBreakdown == nil || len(stats.CountryBreakdown) != 0 {
		t.Errorf("breakdown = %v, want empty slice", stats.CountryBreakdown)
	}
}

func TestGetLocationStats(t *testing.T) {
	db := setupTestDB(t)

	seed(t, db,
		newRecord("a.jpg", 48.85, 2.35, "Paris", "France", day(2025, 1, 10)),
		newRecord("b.jpg", 48.86, 2.34, "Paris", "France", day(2025, 1, 11)),
		newRecord("c.jpg", 45.76, 4.83, "Lyon", "France", day(2025, 3, 5)),
		newRecord("d.jpg", 41.90, 12.49, "Rome", "Italy", day(2025, 6, 20)),
		newRecord("e.jpg", 0.5, -30, models.Unknown, models.Unknown, day(2024, 11, 1)),
		newRecord("f.jpg", 51.5, -0.12, models.Unknown, "United Kingdom", day(2025, 2, 2)),
	)

	stats, err := db.GetLocationStats(context.Background())
	if err != nil {
		t.Fatalf("GetLocationStats() error = %v", err)
	}

	if stats.TotalLocations != 6 {
		t.Errorf("TotalLocations = %d, want 6", stats.TotalLocations)
	}
	if stats.Countries != 3 {
		t.Errorf("Countries = %d, want 3", stats.Countries)
	}
	if stats.Cities != 3 {
		t.Errorf("Cities = %d, want 3", stats.Cities)
	}
	if stats.UnknownLocations != 1 {
		t.Errorf("UnknownLocations = %d, want 1", stats.UnknownLocations)
	}
	if stats.FirstCapture == nil || !stats.FirstCapture.Equal(day(2024, 11, 1)) {
		t.Errorf("FirstCapture = %v", stats.FirstCapture)
	}
	if stats.LastCapture == nil || !stats.LastCapture.Equal(day(2025, 6, 20)) {
		t.Errorf("LastCapture = %v", stats.LastCapture)
	}

	want := []models.CountryStat{
		{Country: "France", Count: 3, Cities: 2},
		{Country: "Italy", Count: 1, Cities: 1},
		{Country: "United Kingdom", Count: 1, Cities: 0},
		{Country: "Unknown", Count: 1, Cities: 0},
	}
	if len(stats.CountryBreakdown) != len(want) {
		t.Fatalf("breakdown = %+v", stats.CountryBreakdown)
	}
	for i, w := range want {
		if stats.CountryBreakdown[i] != w {
			t.Errorf("breakdown[%d] = %+v, want %+v", i, stats.CountryBreakdown[i], w)
		}
	}
}

func TestCountryBreakdown_TieOrder(t *testing.T) {
	db := setupTestDB(t)

	seed(t, db,
		newRecord("z.jpg", 1, 1, "Zurich", "Switzerland", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		newRecord("a.jpg", 2, 2, "Vienna", "Austria", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)),
	)

	got, err := db.CountryBreakdown(context.Background())
	if err != nil {
		t.Fatalf("CountryBreakdown() error = %v", err)
	}
	if len(got) != 2 || got[0].Country != "Austria" || got[1].Country != "Switzerland" {
		t.Errorf("breakdown = %+v, want alphabetical ties", got)
	}
}
