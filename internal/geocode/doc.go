// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package geocode resolves photo coordinates to city and country names.

Resolution order:

 1. LocationCache lookup on the quantized coordinate
 2. External provider (Google Geocoding or Nominatim), optionally behind a
    rate limiter and circuit breaker
 3. Offline FallbackTable of ordered bounding boxes with city radii

Resolve never returns an error. Provider failures are logged and the
coordinate falls through to the fallback table, whose misses resolve to
(Unknown, Unknown). Only results with at least one known field are cached.

Provider composition:

	var p geocode.Provider = geocode.NewGoogleProvider(geocode.ClientConfig{APIKey: key})
	p = geocode.NewRateLimitedProvider(p, 10, 1)
	p = geocode.NewBreakerProvider(p, geocode.DefaultBreakerConfig())
	resolver := geocode.NewResolver(locCache, p, geocode.DefaultFallbackTable())
*/
package geocode
