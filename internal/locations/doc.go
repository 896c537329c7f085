// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package locations decides whether a resolved photo location is a new visit
// or a repeat of a stored one, so re-importing the same photos never creates
// duplicate records.
package locations
