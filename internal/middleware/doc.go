// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package middleware provides the HTTP middleware the API router installs
ahead of the handlers.

Key Components:

  - RequestID: propagates or generates X-Request-ID and stores it in the
    request context so logging.Ctx tags every log line of the request
  - PrometheusMetrics: request count, latency and in-flight gauge, labeled
    by the matched chi route pattern rather than the raw path

Both are standard func(http.Handler) http.Handler middleware and compose
with chi's own:

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
