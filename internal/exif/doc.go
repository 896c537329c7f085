// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package exif reads the GPS position and capture timestamp from photo
// metadata. Photos without a position yield ErrNoGPS and are skipped by
// the importer.
package exif
