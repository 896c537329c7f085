// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package geocode

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/golang/geo/s2"

	"github.com/tomtom215/wayfarer/internal/models"
)

// EarthRadiusKm is the mean Earth radius used for fallback distances.
const EarthRadiusKm = 6371.0088

// Region is an axis-aligned bounding box mapped to a country, with optional
// named cities inside it. Bounds are inclusive.
type Region struct {
	MinLat  float64      `json:"min_lat"`
	MaxLat  float64      `json:"max_lat"`
	MinLng  float64      `json:"min_lng"`
	MaxLng  float64      `json:"max_lng"`
	Country string       `json:"country"`
	Cities  []RegionCity `json:"cities,omitempty"`
}

// RegionCity is a city matched when a point lies within RadiusKm of its center.
type RegionCity struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	RadiusKm float64 `json:"radius_km"`
}

// Contains reports whether the point lies within the region bounds.
func (r *Region) Contains(lat, lng float64) bool {
	return lat >= r.MinLat && lat <= r.MaxLat && lng >= r.MinLng && lng <= r.MaxLng
}

// Validate checks the region bounds and city radii.
func (r *Region) Validate() error {
	if r.Country == "" {
		return errors.New("region country is required")
	}
	if r.MinLat > r.MaxLat || r.MinLng > r.MaxLng {
		return fmt.Errorf("region %s has inverted bounds", r.Country)
	}
	if r.MinLat < -90 || r.MaxLat > 90 || r.MinLng < -180 || r.MaxLng > 180 {
		return fmt.Errorf("region %s bounds out of range", r.Country)
	}
	for _, c := range r.Cities {
		if c.Name == "" || c.RadiusKm <= 0 {
			return fmt.Errorf("region %s has invalid city %q", r.Country, c.Name)
		}
	}
	return nil
}

// FallbackTable resolves coordinates offline from an ordered region list.
// The first region containing a point wins, so more specific regions must be
// listed before the larger boxes they overlap.
type FallbackTable struct {
	regions []Region
}

// NewFallbackTable builds a table from regions in priority order.
func NewFallbackTable(regions []Region) (*FallbackTable, error) {
	for i := range regions {
		if err := regions[i].Validate(); err != nil {
			return nil, fmt.Errorf("fallback region %d: %w", i, err)
		}
	}
	cp := make([]Region, len(regions))
	copy(cp, regions)
	return &FallbackTable{regions: cp}, nil
}

// DefaultFallbackTable returns the built-in region table.
func DefaultFallbackTable() *FallbackTable {
	return &FallbackTable{regions: defaultRegions()}
}

// LoadFallbackTable reads a JSON array of regions from path.
func LoadFallbackTable(path string) (*FallbackTable, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open fallback regions: %w", err)
	}
	defer f.Close()
	return ReadFallbackTable(f)
}

// ReadFallbackTable decodes a JSON array of regions.
func ReadFallbackTable(r io.Reader) (*FallbackTable, error) {
	var regions []Region
	if err := json.NewDecoder(r).Decode(&regions); err != nil {
		return nil, fmt.Errorf("failed to decode fallback regions: %w", err)
	}
	return NewFallbackTable(regions)
}

// Len returns the number of regions.
func (t *FallbackTable) Len() int {
	return len(t.regions)
}

// Lookup returns the place for the first region containing the point. The
// city is the nearest listed city whose radius covers the point, or Unknown.
// The bool is false when no region matched.
func (t *FallbackTable) Lookup(lat, lng float64) (models.Place, bool) {
	for i := range t.regions {
		r := &t.regions[i]
		if !r.Contains(lat, lng) {
			continue
		}
		return models.NewPlace(r.nearestCity(lat, lng), r.Country), true
	}
	return models.UnknownPlace(), false
}

func (r *Region) nearestCity(lat, lng float64) string {
	if len(r.Cities) == 0 {
		return ""
	}
	p := s2.LatLngFromDegrees(lat, lng)
	best := ""
	bestDist := 0.0
	for _, c := range r.Cities {
		d := DistanceKm(p, s2.LatLngFromDegrees(c.Lat, c.Lng))
		if d > c.RadiusKm {
			continue
		}
		if best == "" || d < bestDist {
			best = c.Name
			bestDist = d
		}
	}
	return best
}

// DistanceKm returns the great-circle distance between two points.
func DistanceKm(a, b s2.LatLng) float64 {
	return a.Distance(b).Radians() * EarthRadiusKm
}
