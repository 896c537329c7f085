// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package main is the entry point for the Wayfarer server.

Wayfarer imports geotagged photos, reverse-geocodes each GPS position to a
city and country, stores one location record per photo in DuckDB and serves
zoom-dependent clusters for a travel map.

# Application Architecture

	RootSupervisor ("wayfarer")
	├── DataSupervisor ("data-layer")
	│   └── CacheSweeperService (location cache expiry)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService (chi router)

Component initialization order:

 1. Configuration: .env file, then Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog with JSON/console output modes
 3. Database: DuckDB with versioned migrations
 4. Geocoding: provider (Google or Nominatim) behind a rate limiter and
    circuit breaker, location cache, offline fallback table
 5. Importer: EXIF extraction and batched location upserts
 6. Supervisor Tree: Suture v4 process supervision
 7. HTTP Server: Chi router with middleware stack

# Configuration

Common environment variables:

	GEOCODING_PROVIDER=google|nominatim
	GOOGLE_MAPS_API_KEY=...          # empty = offline fallback only
	DUCKDB_PATH=/data/wayfarer.duckdb
	PHOTO_DIR=/photos                # enables POST /api/v1/photos/scan
	HTTP_PORT=3857

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests within SERVER_TIMEOUT and the database is closed after the tree
stops.
*/
package main
