// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package metrics declares Wayfarer's Prometheus instruments.
//
// All metrics are registered on the default registry at package init via
// promauto and exposed by the API's /metrics route.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfarer_db_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_db_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfarer_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wayfarer_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Geocoding Metrics
	GeocodeResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_geocode_resolutions_total",
			Help: "Coordinate resolutions by outcome",
		},
		[]string{"outcome"}, // cache_hit, provider_ok, provider_failed, fallback_matched, fallback_unmatched
	)

	GeocodeProviderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfarer_geocode_provider_duration_seconds",
			Help:    "Duration of reverse-geocoding provider calls in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)

	GeocodeProviderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_geocode_provider_errors_total",
			Help: "Reverse-geocoding provider failures",
		},
		[]string{"provider"},
	)

	LocationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wayfarer_location_cache_hits_total",
			Help: "Location cache hits",
		},
	)

	LocationCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wayfarer_location_cache_misses_total",
			Help: "Location cache misses, including expired entries",
		},
	)

	LocationCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wayfarer_location_cache_entries",
			Help: "Entries currently held by the location cache",
		},
	)

	LocationCacheSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wayfarer_location_cache_swept_total",
			Help: "Expired entries removed by the background sweeper",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wayfarer_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_circuit_breaker_requests_total",
			Help: "Requests through the circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_circuit_breaker_state_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Import Metrics
	ImportPhotos = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_import_photos_total",
			Help: "Photos processed by import, by result",
		},
		[]string{"result"}, // new, updated, seen, skipped
	)

	ImportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wayfarer_import_duration_seconds",
			Help:    "Duration of photo import batches in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300},
		},
	)

	// Clustering Metrics
	ClusterDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfarer_cluster_duration_seconds",
			Help:    "Duration of location aggregation in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"detail_level"},
	)
)

// RecordDBQuery records a database query metric.
func RecordDBQuery(operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordProviderCall records one reverse-geocoding provider round trip.
func RecordProviderCall(provider string, duration time.Duration, err error) {
	GeocodeProviderDuration.WithLabelValues(provider).Observe(duration.Seconds())
	if err != nil {
		GeocodeProviderErrors.WithLabelValues(provider).Inc()
	}
}
