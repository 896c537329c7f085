// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package geocode

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/models"
)

// BreakerConfig configures a BreakerProvider.
type BreakerConfig struct {
	MaxRequests  uint32        // concurrent probes allowed while half-open
	Interval     time.Duration // closed-state count reset window
	Timeout      time.Duration // open duration before probing again
	MinRequests  uint32        // requests needed before the failure ratio is considered
	FailureRatio float64
	MaxFailures  uint32 // consecutive failures that open the circuit regardless of ratio
}

// DefaultBreakerConfig opens after 5 consecutive failures, or 60% failures
// across at least 10 requests, and probes again after one minute.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
		MaxFailures:  5,
	}
}

// BreakerProvider wraps a Provider with a circuit breaker. While open, calls
// fail immediately with ErrCircuitOpen and the resolver goes straight to the
// fallback table.
//
// The breaker uses wall-clock time for its interval and timeout.
type BreakerProvider struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker[models.Place]
	name  string
}

// NewBreakerProvider wraps inner with a circuit breaker named after it.
func NewBreakerProvider(inner Provider, cfg BreakerConfig) *BreakerProvider {
	def := DefaultBreakerConfig()
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = def.MaxRequests
	}
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MinRequests == 0 {
		cfg.MinRequests = def.MinRequests
	}
	if cfg.FailureRatio <= 0 || cfg.FailureRatio > 1 {
		cfg.FailureRatio = def.FailureRatio
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = def.MaxFailures
	}

	cbName := "geocode-" + inner.Name()
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[models.Place](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.ConsecutiveFailures >= cfg.MaxFailures {
				logging.Warn().
					Str("breaker", cbName).
					Uint32("consecutive_failures", counts.ConsecutiveFailures).
					Msg("[CIRCUIT BREAKER] Opening circuit")
				return true
			}
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logging.Warn().
					Str("breaker", cbName).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		// Context cancellation is the caller giving up, not the provider failing.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &BreakerProvider{inner: inner, cb: cb, name: cbName}
}

// Name returns the wrapped provider's name.
func (b *BreakerProvider) Name() string {
	return b.inner.Name()
}

// IsAvailable reports the wrapped provider's availability. An open circuit
// does not make the provider unavailable; it only fails calls fast.
func (b *BreakerProvider) IsAvailable() bool {
	return b.inner.IsAvailable()
}

// State returns the breaker state as a string.
func (b *BreakerProvider) State() string {
	return stateToString(b.cb.State())
}

// ReverseGeocode calls the wrapped provider through the breaker.
func (b *BreakerProvider) ReverseGeocode(ctx context.Context, lat, lng float64) (models.Place, error) {
	place, err := b.cb.Execute(func() (models.Place, error) {
		return b.inner.ReverseGeocode(ctx, lat, lng)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			return models.UnknownPlace(), fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		return models.UnknownPlace(), err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return place, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
