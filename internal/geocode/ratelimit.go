// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package geocode

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/tomtom215/wayfarer/internal/models"
)

// RateLimitedProvider throttles outbound calls to a provider.
type RateLimitedProvider struct {
	inner   Provider
	limiter *rate.Limiter
}

// NewRateLimitedProvider allows rps requests per second with the given burst.
// A non-positive rps disables limiting.
func NewRateLimitedProvider(inner Provider, rps float64, burst int) *RateLimitedProvider {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedProvider{
		inner:   inner,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Name returns the wrapped provider's name.
func (p *RateLimitedProvider) Name() string {
	return p.inner.Name()
}

// IsAvailable reports the wrapped provider's availability.
func (p *RateLimitedProvider) IsAvailable() bool {
	return p.inner.IsAvailable()
}

// ReverseGeocode waits for a token, then calls the wrapped provider.
func (p *RateLimitedProvider) ReverseGeocode(ctx context.Context, lat, lng float64) (models.Place, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return models.UnknownPlace(), fmt.Errorf("rate limit wait: %w", err)
	}
	return p.inner.ReverseGeocode(ctx, lat, lng)
}
