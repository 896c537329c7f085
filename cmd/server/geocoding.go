// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package main

import (
	"fmt"

	"github.com/tomtom215/wayfarer/internal/cache"
	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/geocode"
	"github.com/tomtom215/wayfarer/internal/logging"
)

// newResolver builds the provider chain, location cache and fallback table
// from configuration.
func newResolver(cfg *config.GeocodingConfig) (*geocode.Resolver, error) {
	fallback := geocode.DefaultFallbackTable()
	if cfg.FallbackFile != "" {
		table, err := geocode.LoadFallbackTable(cfg.FallbackFile)
		if err != nil {
			return nil, fmt.Errorf("load fallback table: %w", err)
		}
		fallback = table
		logging.Info().Str("file", cfg.FallbackFile).Int("regions", table.Len()).Msg("Loaded fallback region table")
	}

	locCache := cache.NewLocationCache(cache.LocationCacheConfig{
		TTL:        cfg.CacheTTL,
		MaxEntries: cfg.CacheMaxEntries,
	})

	return geocode.NewResolver(locCache, newProvider(cfg), fallback), nil
}

// newProvider returns the configured provider wrapped in a rate limiter and a
// circuit breaker. Breaker rejections are cheap, so the limiter sits inside.
func newProvider(cfg *config.GeocodingConfig) geocode.Provider {
	clientCfg := geocode.ClientConfig{
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	}

	var base geocode.Provider
	switch cfg.Provider {
	case config.ProviderNominatim:
		base = geocode.NewNominatimProvider(clientCfg)
	default:
		base = geocode.NewGoogleProvider(clientCfg)
	}

	limited := geocode.NewRateLimitedProvider(base, cfg.EffectiveRateLimit(), cfg.RateBurst)
	return geocode.NewBreakerProvider(limited, geocode.BreakerConfig{
		MaxFailures: cfg.BreakerMaxFailures,
		Timeout:     cfg.BreakerTimeout,
	})
}
