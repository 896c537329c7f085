// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package models defines the data structures shared across Wayfarer.

Key Components:

  - Place: a resolved (city, country) pair, using the Unknown sentinel for absent names
  - LocationRecord: a persisted, photo-derived visit
  - ClusterAggregate: a derived map marker grouping several records
  - ImportSummary: the tally returned by photo import operations
  - LocationStats: summary statistics over the stored record set

City and country names are never empty. Absence is always spelled Unknown:

	place := models.NewPlace("", "France")
	place.City    // "Unknown"
	place.Country // "France"

Thread Safety:

All types are plain values. Callers that share them across goroutines must
provide their own synchronization.
*/
package models
