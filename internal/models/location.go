// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package models

import (
	"strings"
	"time"
)

// Unknown is the sentinel used in place of an absent city or country name.
const Unknown = "Unknown"

// Place is a resolved (city, country) pair.
type Place struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// NewPlace builds a Place, normalizing empty names to Unknown.
func NewPlace(city, country string) Place {
	return Place{
		City:    NormalizeName(city),
		Country: NormalizeName(country),
	}
}

// UnknownPlace returns the fully unresolved place.
func UnknownPlace() Place {
	return Place{City: Unknown, Country: Unknown}
}

// IsKnown reports whether both city and country are real names.
func (p Place) IsKnown() bool {
	return IsKnownName(p.City) && IsKnownName(p.Country)
}

// IsUnknown reports whether neither city nor country is a real name.
func (p Place) IsUnknown() bool {
	return !IsKnownName(p.City) && !IsKnownName(p.Country)
}

// IsKnownName reports whether name is a real place name rather than empty or Unknown.
func IsKnownName(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && name != Unknown
}

// NormalizeName trims name and maps empty values to Unknown.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return Unknown
	}
	return name
}

// LocationRecord is a persisted visit derived from a single geotagged photo.
//
// City and Country are never empty. They may only move from Unknown to a
// known value after creation.
type LocationRecord struct {
	ID             string    `json:"id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	CaptureDate    time.Time `json:"capture_date"`
	Country        string    `json:"country"`
	City           string    `json:"city"`
	SourceFileName string    `json:"source_file"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Place returns the record's resolved place.
func (r *LocationRecord) Place() Place {
	return Place{City: r.City, Country: r.Country}
}

// LocationFilter narrows location listings. Zero values mean no constraint.
type LocationFilter struct {
	From    *time.Time
	To      *time.Time
	Country string
}

// LocationStats summarizes the stored record set.
type LocationStats struct {
	TotalLocations   int           `json:"total_locations"`
	Countries        int           `json:"countries"`
	Cities           int           `json:"cities"`
	UnknownLocations int           `json:"unknown_locations"`
	FirstCapture     *time.Time    `json:"first_capture,omitempty"`
	LastCapture      *time.Time    `json:"last_capture,omitempty"`
	CountryBreakdown []CountryStat `json:"country_breakdown"`
}

// CountryStat is the number of stored records for one country.
type CountryStat struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
	Cities  int    `json:"cities"`
}
