// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package models

import (
	"fmt"
	"time"
)

// DetailLevel is the granularity at which locations are clustered.
type DetailLevel string

const (
	DetailCountry DetailLevel = "country"
	DetailCity    DetailLevel = "city"
	DetailArea    DetailLevel = "area"
	DetailPoint   DetailLevel = "point"
)

// Grid steps in degrees for the cell-based detail levels.
const (
	AreaGridStep  = 0.05
	PointGridStep = 0.01
)

// MaxVisitDates caps ClusterAggregate.VisitDates.
const MaxVisitDates = 10

// DetailLevelForZoom maps a map zoom level to a detail level.
// Upper bounds are inclusive: <=3 country, <=6 city, <=10 area, otherwise point.
func DetailLevelForZoom(zoom float64) DetailLevel {
	switch {
	case zoom <= 3:
		return DetailCountry
	case zoom <= 6:
		return DetailCity
	case zoom <= 10:
		return DetailArea
	default:
		return DetailPoint
	}
}

// ParseDetailLevel parses a detail level name.
func ParseDetailLevel(s string) (DetailLevel, error) {
	switch DetailLevel(s) {
	case DetailCountry, DetailCity, DetailArea, DetailPoint:
		return DetailLevel(s), nil
	default:
		return "", fmt.Errorf("unknown detail level %q", s)
	}
}

// GridStep returns the cell size in degrees for area and point levels, or 0.
func (d DetailLevel) GridStep() float64 {
	switch d {
	case DetailArea:
		return AreaGridStep
	case DetailPoint:
		return PointGridStep
	default:
		return 0
	}
}

// ClusterAggregate is a derived map marker. It is recomputed on every request
// and never persisted.
type ClusterAggregate struct {
	ID          string      `json:"id"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	Country     string      `json:"country"`
	City        string      `json:"city"`
	CaptureDate time.Time   `json:"capture_date"`
	Count       int         `json:"count"`
	VisitDates  []time.Time `json:"visit_dates"`
	DetailLevel DetailLevel `json:"detail_level"`
	// RadiusKm is the largest great-circle distance from the centroid to a member.
	RadiusKm float64 `json:"radius_km"`
}
