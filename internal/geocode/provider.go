// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tomtom215/wayfarer/internal/models"
)

// Provider resolves coordinates through an external reverse-geocoding service.
type Provider interface {
	// ReverseGeocode returns the place at the coordinate. Any transport,
	// status or decoding failure is returned as an error.
	ReverseGeocode(ctx context.Context, lat, lng float64) (models.Place, error)

	// Name returns the provider name for logging and metrics.
	Name() string

	// IsAvailable reports whether the provider is configured well enough to call.
	IsAvailable() bool
}

var (
	// ErrProviderUnavailable is returned when a provider lacks credentials.
	ErrProviderUnavailable = errors.New("geocoding provider not configured")

	// ErrCircuitOpen is returned while the provider circuit breaker rejects calls.
	ErrCircuitOpen = errors.New("geocoding provider circuit open")
)

// StatusError is a non-success response from a provider.
type StatusError struct {
	Provider   string
	HTTPStatus int
	Status     string // provider-level status, e.g. ZERO_RESULTS
	Message    string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		if e.Message != "" {
			return fmt.Sprintf("%s returned status %s: %s", e.Provider, e.Status, e.Message)
		}
		return fmt.Sprintf("%s returned status %s", e.Provider, e.Status)
	}
	return fmt.Sprintf("%s returned HTTP %d", e.Provider, e.HTTPStatus)
}

// Outcome records how a resolution was produced.
type Outcome string

const (
	OutcomeCacheHit          Outcome = "cache_hit"
	OutcomeProviderOK        Outcome = "provider_ok"
	OutcomeProviderFailed    Outcome = "provider_failed"
	OutcomeFallbackMatched   Outcome = "fallback_matched"
	OutcomeFallbackUnmatched Outcome = "fallback_unmatched"
)

// placeholderPatterns are fragments found in sample configuration values.
var placeholderPatterns = []string{
	"YOUR_",
	"YOUR-",
	"API_KEY",
	"CHANGEME",
	"CHANGE_ME",
	"PLACEHOLDER",
	"REPLACE",
	"EXAMPLE",
	"XXX",
}

// IsPlaceholderKey reports whether key is empty or an obvious sample value.
func IsPlaceholderKey(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return true
	}
	upper := strings.ToUpper(key)
	for _, p := range placeholderPatterns {
		if strings.Contains(upper, p) {
			return true
		}
	}
	return false
}

// newHTTPClient returns the configured client or one with the default timeout.
func newHTTPClient(cfg ClientConfig) *http.Client {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}
	return &http.Client{Timeout: cfg.timeout()}
}
