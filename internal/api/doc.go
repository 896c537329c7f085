// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package api provides the HTTP interface for photo import, stored locations,
map clusters and single-coordinate geocoding.

# Routes

All routes live under /api/v1:

	GET    /health             liveness, database ping, provider and last import
	POST   /photos/import      multipart upload of photos[] with optional from/to
	POST   /photos/scan        {"directory","from","to"} under the configured photo root
	GET    /locations          stored locations, optional from/to/country
	DELETE /locations          bulk clear
	GET    /locations/stats    totals plus per-country breakdown
	GET    /clusters?zoom=N    zoom-dependent aggregation (0..22)
	GET    /clusters/city      city-level aggregation
	GET    /clusters/country   country-level aggregation
	GET    /geocode?lat=&lng=  resolve one coordinate with its outcome
	GET    /metrics            Prometheus exposition

Dates accept RFC3339 or YYYY-MM-DD. A date-only "to" covers the whole day.

# Middleware

Applied to every route, in order: chi RealIP, request id, chi Recoverer,
Prometheus metrics, go-chi/cors, go-chi/httprate.

# Responses

Every JSON response uses the APIResponse envelope:

	{"success": true, "data": {...}, "metadata": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "BAD_REQUEST", "message": "..."}, "metadata": {...}}

Import and scan always answer with the summary once the request itself is
valid; per-photo failures appear as skips, never as HTTP errors. A second
import while one is running gets 409 CONFLICT.
*/
package api
