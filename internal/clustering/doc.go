// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package clustering groups stored locations into map markers.

The detail level follows the map zoom:

	zoom <= 3   country  grouped by country name
	zoom <= 6   city     grouped by (city, country)
	zoom <= 10  area     0.05 degree grid cells
	zoom >  10  point    0.01 degree grid cells

At country and city level, records whose grouping name is Unknown are
emitted as individual point aggregates. Grid levels include every record and
report the most frequent city and country per cell. Every input record is
counted in exactly one aggregate.

Aggregation is pure and recomputed on every request; ids are stable slugs of
the grouping key so clients can diff markers between requests.
*/
package clustering
