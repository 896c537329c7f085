// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package services

import (
	"context"
	"time"

	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
)

// DefaultSweepInterval is used when NewCacheSweeperService gets a non-positive interval.
const DefaultSweepInterval = 10 * time.Minute

// Sweeper is the subset of *cache.LocationCache the sweeper needs.
type Sweeper interface {
	Sweep() int
	Len() int
}

// CacheSweeperService evicts expired location cache entries on a fixed
// interval. Expired entries are never served either way; sweeping only
// bounds memory between imports.
type CacheSweeperService struct {
	cache    Sweeper
	interval time.Duration
	name     string
}

// NewCacheSweeperService creates a sweeper for cache.
func NewCacheSweeperService(cache Sweeper, interval time.Duration) *CacheSweeperService {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &CacheSweeperService{
		cache:    cache,
		interval: interval,
		name:     "location-cache-sweeper",
	}
}

// Serve implements suture.Service.
func (s *CacheSweeperService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logging.Debug().Dur("interval", s.interval).Msg("Location cache sweeper started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.SweepOnce()
		}
	}
}

// SweepOnce runs a single sweep and returns the number of evicted entries.
func (s *CacheSweeperService) SweepOnce() int {
	n := s.cache.Sweep()
	remaining := s.cache.Len()

	metrics.LocationCacheSwept.Add(float64(n))
	metrics.LocationCacheEntries.Set(float64(remaining))

	if n > 0 {
		logging.Debug().Int("swept", n).Int("remaining", remaining).Msg("Swept expired location cache entries")
	}
	return n
}

// String implements fmt.Stringer for supervisor logs.
func (s *CacheSweeperService) String() string {
	return s.name
}
