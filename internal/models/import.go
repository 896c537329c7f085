// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package models

// UpsertOutcome classifies what an upsert did to the stored record set.
type UpsertOutcome string

const (
	UpsertNew     UpsertOutcome = "new"
	UpsertUpdated UpsertOutcome = "updated"
	UpsertSeen    UpsertOutcome = "seen"
)

// ImportSummary is the flat tally returned by batch photo imports.
//
// Processed counts every photo offered. New, Updated and Skipped are disjoint;
// photos that matched an existing record without changing it are counted in
// Processed and appear in Locations, but not in New or Updated.
type ImportSummary struct {
	Processed int              `json:"processed"`
	New       int              `json:"new"`
	Updated   int              `json:"updated"`
	Skipped   int              `json:"skipped"`
	Locations []LocationRecord `json:"locations"`
	Skips     []SkippedPhoto   `json:"skips,omitempty"`
}

// SkippedPhoto records why a photo produced no location.
type SkippedPhoto struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

// Skip reasons reported in SkippedPhoto.Reason.
const (
	SkipNoGPS        = "no_gps"
	SkipUnreadable   = "unreadable"
	SkipOutOfRange   = "outside_date_range"
	SkipStoreFailure = "store_failure"
)

// Add records one upsert result in the summary.
func (s *ImportSummary) Add(outcome UpsertOutcome, rec LocationRecord) {
	switch outcome {
	case UpsertNew:
		s.New++
	case UpsertUpdated:
		s.Updated++
	}
	s.Locations = append(s.Locations, rec)
}

// Skip records a photo that produced no location.
func (s *ImportSummary) Skip(fileName, reason string) {
	s.Skipped++
	s.Skips = append(s.Skips, SkippedPhoto{FileName: fileName, Reason: reason})
}
