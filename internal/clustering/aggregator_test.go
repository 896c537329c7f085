// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package clustering

import (
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/wayfarer/internal/models"
)

func day(n int) time.Time {
	return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func rec(id string, lat, lng float64, city, country string, date time.Time) models.LocationRecord {
	return models.LocationRecord{
		ID:          id,
		Latitude:    lat,
		Longitude:   lng,
		City:        city,
		Country:     country,
		CaptureDate: date,
	}
}

func sumCounts(aggs []models.ClusterAggregate) int {
	total := 0
	for _, a := range aggs {
		total += a.Count
	}
	return total
}

func TestAggregate_CityLevelWithUnknownCities(t *testing.T) {
	t.Parallel()

	locations := []models.LocationRecord{
		rec("a", 48.8566, 2.3522, "Paris", "France", day(0)),
		rec("b", 48.8600, 2.3400, "Paris", "France", day(1)),
		rec("c", 48.8500, 2.3600, "Paris", "France", day(2)),
		rec("d", 46.0, 2.0, "Unknown", "France", day(3)),
		rec("e", 45.0, 1.0, "Unknown", "France", day(4)),
	}

	aggs := Aggregate(locations, 5)
	if len(aggs) != 3 {
		t.Fatalf("got %d aggregates, want 3: %+v", len(aggs), aggs)
	}

	paris := aggs[0]
	if paris.City != "Paris" || paris.Country != "France" || paris.Count != 3 {
		t.Errorf("first aggregate = %+v, want Paris, France x3", paris)
	}
	if paris.ID != "city-paris-france" {
		t.Errorf("ID = %q, want city-paris-france", paris.ID)
	}
	if paris.DetailLevel != models.DetailCity {
		t.Errorf("DetailLevel = %s, want city", paris.DetailLevel)
	}

	for _, a := range aggs[1:] {
		if a.Count != 1 || a.City != "Unknown" || a.DetailLevel != models.DetailPoint {
			t.Errorf("individual aggregate = %+v", a)
		}
	}
}

func TestAggregate_CountryLevel(t *testing.T) {
	t.Parallel()

	locations := []models.LocationRecord{
		rec("a", 48.8566, 2.3522, "Paris", "France", day(0)),
		rec("b", 45.7640, 4.8357, "Lyon", "France", day(1)),
		rec("c", 43.2965, 5.3698, "Marseille", "France", day(2)),
		rec("d", 45.7700, 4.8300, "Lyon", "France", day(3)),
		rec("e", 46.0, 2.0, "Unknown", "France", day(4)),
		rec("f", 51.5074, -0.1278, "London", "United Kingdom", day(5)),
		rec("g", 0, -30, "Unknown", "Unknown", day(6)),
	}

	aggs := Aggregate(locations, 2)
	if got := sumCounts(aggs); got != len(locations) {
		t.Fatalf("sum of counts = %d, want %d", got, len(locations))
	}
	if len(aggs) != 3 {
		t.Fatalf("got %d aggregates, want 3", len(aggs))
	}

	france := aggs[0]
	if france.ID != "country-france" || france.Count != 5 {
		t.Errorf("france = %+v", france)
	}
	if france.City != "3 cities" {
		t.Errorf("france city label = %q, want 3 cities", france.City)
	}

	uk := aggs[1]
	if uk.City != "1 city" || uk.Country != "United Kingdom" {
		t.Errorf("uk = %+v", uk)
	}

	unknown := aggs[2]
	if unknown.Country != "Unknown" || unknown.DetailLevel != models.DetailPoint || unknown.ID != "point-g" {
		t.Errorf("unknown = %+v", unknown)
	}
}

func TestAggregate_AreaLevelGrid(t *testing.T) {
	t.Parallel()

	locations := []models.LocationRecord{
		rec("a", 48.8566, 2.3522, "Paris", "France", day(0)),
		rec("b", 48.8612, 2.3390, "Paris", "France", day(1)),
		rec("c", 48.8480, -2.3510, "Unknown", "France", day(2)),
	}

	aggs := Aggregate(locations, 8)
	if len(aggs) != 2 {
		t.Fatalf("got %d aggregates, want 2: %+v", len(aggs), aggs)
	}

	if aggs[0].ID != "area-48p85-2p35" || aggs[0].Count != 2 {
		t.Errorf("first = %+v", aggs[0])
	}
	if aggs[1].ID != "area-48p85--2p35" || aggs[1].Count != 1 {
		t.Errorf("second = %+v", aggs[1])
	}
	if aggs[1].City != "Unknown" {
		t.Errorf("grid level must keep Unknown members, got %+v", aggs[1])
	}

	wantLat := (48.8566 + 48.8612) / 2
	if math.Abs(aggs[0].Latitude-wantLat) > 1e-9 {
		t.Errorf("centroid lat = %v, want %v", aggs[0].Latitude, wantLat)
	}
	if aggs[0].RadiusKm <= 0 {
		t.Error("multi-member cluster should have a positive radius")
	}
}

func TestAggregate_MajorityVote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cities      []string
		wantCity    string
		countries   []string
		wantCountry string
	}{
		{
			name:        "clear majority",
			cities:      []string{"Paris", "Boulogne", "Paris"},
			wantCity:    "Paris",
			countries:   []string{"France", "France", "France"},
			wantCountry: "France",
		},
		{
			name:        "tie goes to first encountered",
			cities:      []string{"Boulogne", "Paris", "Paris", "Boulogne"},
			wantCity:    "Boulogne",
			countries:   []string{"Unknown", "France", "France", "Unknown"},
			wantCountry: "Unknown",
		},
		{
			name:        "fields vote independently",
			cities:      []string{"Unknown", "Unknown", "Paris"},
			wantCity:    "Unknown",
			countries:   []string{"France", "Spain", "France"},
			wantCountry: "France",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var locations []models.LocationRecord
			for i := range tt.cities {
				locations = append(locations, rec(fmt.Sprint(i), 48.8566, 2.3522, tt.cities[i], tt.countries[i], day(i)))
			}

			aggs := AggregateLevel(locations, models.DetailPoint)
			if len(aggs) != 1 {
				t.Fatalf("got %d aggregates, want 1", len(aggs))
			}
			if aggs[0].City != tt.wantCity || aggs[0].Country != tt.wantCountry {
				t.Errorf("got %s, %s; want %s, %s", aggs[0].City, aggs[0].Country, tt.wantCity, tt.wantCountry)
			}
		})
	}
}

func TestAggregate_VisitDates(t *testing.T) {
	t.Parallel()

	var locations []models.LocationRecord
	for i := 0; i < 15; i++ {
		locations = append(locations, rec(fmt.Sprint(i), 35.6762, 139.6503, "Tokyo", "Japan", day(i)))
	}

	aggs := Aggregate(locations, 5)
	if len(aggs) != 1 {
		t.Fatalf("got %d aggregates, want 1", len(aggs))
	}

	a := aggs[0]
	if len(a.VisitDates) != models.MaxVisitDates {
		t.Fatalf("len(VisitDates) = %d, want %d", len(a.VisitDates), models.MaxVisitDates)
	}
	if !a.CaptureDate.Equal(day(14)) {
		t.Errorf("CaptureDate = %v, want %v", a.CaptureDate, day(14))
	}
	for i := 1; i < len(a.VisitDates); i++ {
		if !a.VisitDates[i-1].After(a.VisitDates[i]) {
			t.Fatalf("VisitDates not descending at %d: %v", i, a.VisitDates)
		}
	}
	if !a.VisitDates[9].Equal(day(5)) {
		t.Errorf("oldest kept date = %v, want %v", a.VisitDates[9], day(5))
	}
}

func TestAggregate_Conservation(t *testing.T) {
	t.Parallel()

	cities := []string{"Paris", "Unknown", "Lyon", "", "Nice"}
	countries := []string{"France", "France", "Unknown", "Unknown", "France"}

	var locations []models.LocationRecord
	for i := 0; i < 200; i++ {
		lat := -60 + float64(i%37)*3.1 + float64(i%7)*0.013
		lng := -170 + float64(i%53)*6.3 + float64(i%11)*0.021
		locations = append(locations, rec(fmt.Sprint(i), lat, lng, cities[i%len(cities)], countries[i%len(countries)], day(i%30)))
	}

	for _, zoom := range []float64{0, 3, 4, 6, 7, 10, 11, 18} {
		aggs := Aggregate(locations, zoom)
		if got := sumCounts(aggs); got != len(locations) {
			t.Errorf("zoom %v: sum of counts = %d, want %d", zoom, got, len(locations))
		}
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	t.Parallel()

	locations := []models.LocationRecord{
		rec("x1", 40.7128, -74.006, "New York", "United States", day(0)),
		rec("x2", 34.0522, -118.2437, "Los Angeles", "United States", day(1)),
		rec("x3", 40.7130, -74.0050, "New York", "United States", day(2)),
		rec("x4", 1.0, 1.0, "Unknown", "Unknown", day(3)),
	}

	for _, zoom := range []float64{2, 5, 9, 14} {
		first := Aggregate(locations, zoom)
		second := Aggregate(locations, zoom)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("zoom %v: results differ between calls", zoom)
		}
	}
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	for _, zoom := range []float64{1, 5, 9, 15} {
		if aggs := Aggregate(nil, zoom); len(aggs) != 0 {
			t.Errorf("zoom %v: got %d aggregates for empty input", zoom, len(aggs))
		}
	}
}

func TestAggregate_AllUnknownCountryLevel(t *testing.T) {
	t.Parallel()

	locations := []models.LocationRecord{
		rec("u1", 10, 10, "Unknown", "Unknown", day(0)),
		rec("u2", 10, 10, "Unknown", "Unknown", day(1)),
	}

	aggs := Aggregate(locations, 1)
	if len(aggs) != 2 {
		t.Fatalf("got %d aggregates, want 2 individual entries", len(aggs))
	}
	if aggs[0].ID == aggs[1].ID {
		t.Errorf("individual aggregates share id %q", aggs[0].ID)
	}
}

func TestAggregate_NameVariantsGroupTogether(t *testing.T) {
	t.Parallel()

	locations := []models.LocationRecord{
		rec("a", 38.6270, -90.1994, "St. Louis", "United States", day(0)),
		rec("b", 38.6300, -90.2000, "St Louis", "united states", day(1)),
		rec("c", 38.6250, -90.1900, "st. louis", "United States", day(2)),
		rec("d", 41.8781, -87.6298, "Chicago", "United States", day(3)),
	}

	tests := []struct {
		name      string
		zoom      float64
		wantCount []int
		wantCity  string
	}{
		{"city level", 5, []int{3, 1}, "St. Louis"},
		{"country level", 2, []int{4}, "2 cities"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			aggs := Aggregate(locations, tt.zoom)
			if len(aggs) != len(tt.wantCount) {
				t.Fatalf("got %d aggregates, want %d: %+v", len(aggs), len(tt.wantCount), aggs)
			}
			for i, want := range tt.wantCount {
				if aggs[i].Count != want {
					t.Errorf("aggs[%d].Count = %d, want %d", i, aggs[i].Count, want)
				}
			}
			if aggs[0].City != tt.wantCity || aggs[0].Country != "United States" {
				t.Errorf("first aggregate = %q, %q; want %q, United States", aggs[0].City, aggs[0].Country, tt.wantCity)
			}
		})
	}
}
