// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package config provides configuration management for Wayfarer.

Configuration is loaded in layers, later layers overriding earlier ones:

 1. .env file: loaded into the process environment by godotenv when present.
    Variables already set in the environment are never overwritten.
 2. Defaults: built-in values from defaultConfig().
 3. Config file: optional YAML file from CONFIG_PATH, or the first of
    config.yaml, config.yml, /etc/wayfarer/config.yaml that exists.
 4. Environment variables: mapped to config paths through an explicit table
    in envTransformFunc. Unmapped variables are ignored.

After loading, Validate() checks ranges and enumerations and fails fast on
misconfiguration.

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, ENVIRONMENT

Database:
  - DUCKDB_PATH, DUCKDB_MAX_MEMORY, DUCKDB_THREADS

Geocoding:
  - GEOCODING_PROVIDER: google (default) or nominatim
  - GOOGLE_MAPS_API_KEY or GEOCODING_API_KEY
  - GEOCODING_BASE_URL, GEOCODING_USER_AGENT, GEOCODING_TIMEOUT
  - GEOCODING_RATE_LIMIT, GEOCODING_RATE_BURST
  - GEOCODE_CACHE_TTL, GEOCODE_CACHE_MAX_ENTRIES, GEOCODE_CACHE_SWEEP_INTERVAL
  - GEOCODING_BREAKER_MAX_FAILURES, GEOCODING_BREAKER_TIMEOUT

Import:
  - PHOTO_DIR, IMPORT_MAX_UPLOAD_MB, IMPORT_WORKERS, IMPORT_ALLOWED_EXTENSIONS

Security:
  - CORS_ORIGINS, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Comma-separated values are accepted for CORS_ORIGINS and
IMPORT_ALLOWED_EXTENSIONS.

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatalf("Failed to load config: %v", err)
	}
*/
package config
