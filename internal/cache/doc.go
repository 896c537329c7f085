// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package cache provides the in-memory structures that sit in front of
reverse geocoding and record matching.

# Overview

  - LocationCache: bounded TTL cache from a quantized coordinate to a Place
  - SpatialIndex: grid-bucketed index for finding records near a coordinate
  - timeHeap: timestamp-ordered heap used by LocationCache for oldest-first eviction

# LocationCache

Coordinates are rounded to a fixed step (0.01 degrees by default, about 1 km
at the equator) so nearby photos share an entry:

	c := cache.NewLocationCache(cache.LocationCacheConfig{
	    TTL:        24 * time.Hour,
	    MaxEntries: 10000,
	})
	c.Put(51.5074, -0.1278, models.NewPlace("London", "United Kingdom"))
	place, ok := c.Get(51.5031, -0.1301) // same cell, hit

Expired entries are removed lazily on Get. Sweep removes every expired entry
at once and is intended for a periodic background service. When Put pushes
the cache over MaxEntries, the entries with the oldest cachedAt are evicted
until the cap holds again. A place whose city and country are both Unknown
is never stored.

# Thread Safety

LocationCache serializes every operation behind a single mutex. SpatialIndex
is not synchronized; it is built and queried within one request.
*/
package cache
