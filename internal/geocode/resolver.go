// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package geocode

import (
	"context"
	"time"

	"github.com/tomtom215/wayfarer/internal/cache"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/models"
)

// Resolution is a resolved place together with how it was obtained.
type Resolution struct {
	Place   models.Place `json:"place"`
	Outcome Outcome      `json:"outcome"`
}

// Resolver turns coordinates into places through the cache, an optional
// external provider, and the offline fallback table. Resolve never fails.
//
// Concurrent misses for the same cell are not coalesced; each may call the
// provider, and both converge on the same cached value.
type Resolver struct {
	cache    *cache.LocationCache
	provider Provider
	fallback *FallbackTable
}

// NewResolver creates a resolver. A nil cache gets a default one and a nil
// fallback gets the built-in table. The provider is checked once here: a nil
// or unavailable provider is logged and never called.
func NewResolver(c *cache.LocationCache, provider Provider, fallback *FallbackTable) *Resolver {
	if c == nil {
		c = cache.NewLocationCache(cache.LocationCacheConfig{})
	}
	if fallback == nil {
		fallback = DefaultFallbackTable()
	}

	r := &Resolver{cache: c, fallback: fallback}

	switch {
	case provider == nil:
		logging.Warn().Msg("No geocoding provider configured, using offline fallback only")
	case !provider.IsAvailable():
		logging.Warn().
			Str("provider", provider.Name()).
			Msg("Geocoding provider credential missing or placeholder, using offline fallback only")
	default:
		r.provider = provider
		logging.Info().Str("provider", provider.Name()).Int("fallback_regions", fallback.Len()).Msg("Geocoding resolver initialized")
	}

	return r
}

// ProviderName returns the active provider name, or "fallback" when the
// provider is disabled.
func (r *Resolver) ProviderName() string {
	if r.provider == nil {
		return "fallback"
	}
	return r.provider.Name()
}

// ProviderEnabled reports whether the resolver calls an external provider.
func (r *Resolver) ProviderEnabled() bool {
	return r.provider != nil
}

// Cache returns the resolver's cache.
func (r *Resolver) Cache() *cache.LocationCache {
	return r.cache
}

// Resolve returns the place at the coordinate. City and country are never empty.
func (r *Resolver) Resolve(ctx context.Context, lat, lng float64) models.Place {
	return r.ResolveDetailed(ctx, lat, lng).Place
}

// ResolveDetailed resolves the coordinate and reports the outcome.
//
// A partial provider answer is merged with the fallback: fallback fields win
// and the provider fills whichever fallback fields are Unknown.
func (r *Resolver) ResolveDetailed(ctx context.Context, lat, lng float64) Resolution {
	if place, ok := r.tryCache(lat, lng); ok {
		return r.finish(Resolution{Place: place, Outcome: OutcomeCacheHit})
	}

	fromProvider := models.UnknownPlace()
	providerFailed := false
	if r.provider != nil {
		place, err := r.tryProvider(ctx, lat, lng)
		if err != nil {
			providerFailed = true
		} else {
			fromProvider = place
			if place.IsKnown() {
				r.store(lat, lng, place)
				return r.finish(Resolution{Place: place, Outcome: OutcomeProviderOK})
			}
		}
	}

	place, matched := r.fallback.Lookup(lat, lng)
	place = mergePlaces(place, fromProvider)
	r.store(lat, lng, place)

	outcome := OutcomeFallbackUnmatched
	switch {
	case matched:
		outcome = OutcomeFallbackMatched
	case providerFailed:
		outcome = OutcomeProviderFailed
	}

	logging.Ctx(ctx).Debug().
		Float64("lat", lat).
		Float64("lng", lng).
		Str("city", place.City).
		Str("country", place.Country).
		Str("outcome", string(outcome)).
		Msg("Resolved via fallback")

	return r.finish(Resolution{Place: place, Outcome: outcome})
}

func (r *Resolver) tryCache(lat, lng float64) (models.Place, bool) {
	place, ok := r.cache.Get(lat, lng)
	if ok {
		metrics.LocationCacheHits.Inc()
	} else {
		metrics.LocationCacheMisses.Inc()
	}
	return place, ok
}

func (r *Resolver) tryProvider(ctx context.Context, lat, lng float64) (models.Place, error) {
	start := time.Now()
	place, err := r.provider.ReverseGeocode(ctx, lat, lng)
	metrics.RecordProviderCall(r.provider.Name(), time.Since(start), err)
	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("provider", r.provider.Name()).
			Float64("lat", lat).
			Float64("lng", lng).
			Msg("Reverse geocoding failed, using fallback")
		return models.UnknownPlace(), err
	}
	return models.NewPlace(place.City, place.Country), nil
}

func (r *Resolver) store(lat, lng float64, place models.Place) {
	if r.cache.Put(lat, lng, place) {
		metrics.LocationCacheEntries.Set(float64(r.cache.Len()))
	}
}

func (r *Resolver) finish(res Resolution) Resolution {
	metrics.GeocodeResolutions.WithLabelValues(string(res.Outcome)).Inc()
	return res
}

// mergePlaces keeps primary's known fields and fills the rest from secondary.
func mergePlaces(primary, secondary models.Place) models.Place {
	out := primary
	if !models.IsKnownName(out.City) && models.IsKnownName(secondary.City) {
		out.City = secondary.City
	}
	if !models.IsKnownName(out.Country) && models.IsKnownName(secondary.Country) {
		out.Country = secondary.Country
	}
	return models.NewPlace(out.City, out.Country)
}
