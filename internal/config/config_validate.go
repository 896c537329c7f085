// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package config

import (
	"fmt"
	"strings"
	"time"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validProviders = map[string]bool{
	ProviderGoogle:    true,
	ProviderNominatim: true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateGeocoding(); err != nil {
		return err
	}

	if err := c.validateImport(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateDatabase validates DuckDB configuration
func (c *Config) validateDatabase() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be >= 0")
	}
	return nil
}

// validateGeocoding validates provider and cache configuration. A missing
// API key is not an error; the resolver runs on the fallback table.
func (c *Config) validateGeocoding() error {
	g := c.Geocoding
	if !validProviders[g.Provider] {
		return fmt.Errorf("GEOCODING_PROVIDER must be one of: google, nominatim")
	}
	if g.BaseURL != "" {
		if err := validateHTTPURL(g.BaseURL, "GEOCODING_BASE_URL"); err != nil {
			return err
		}
	}
	if g.Provider == ProviderNominatim && strings.TrimSpace(g.UserAgent) == "" {
		return fmt.Errorf("GEOCODING_USER_AGENT is required for the nominatim provider")
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("GEOCODING_TIMEOUT must be positive")
	}
	if g.RateLimit < 0 {
		return fmt.Errorf("GEOCODING_RATE_LIMIT must be >= 0")
	}
	if g.RateBurst < 0 {
		return fmt.Errorf("GEOCODING_RATE_BURST must be >= 0")
	}
	if g.CacheTTL <= 0 {
		return fmt.Errorf("GEOCODE_CACHE_TTL must be positive")
	}
	if g.CacheMaxEntries < 1 {
		return fmt.Errorf("GEOCODE_CACHE_MAX_ENTRIES must be at least 1")
	}
	if g.CacheSweepInterval < time.Second {
		return fmt.Errorf("GEOCODE_CACHE_SWEEP_INTERVAL must be at least 1s")
	}
	if g.BreakerMaxFailures < 1 {
		return fmt.Errorf("GEOCODING_BREAKER_MAX_FAILURES must be at least 1")
	}
	if g.BreakerTimeout <= 0 {
		return fmt.Errorf("GEOCODING_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validateImport validates photo import configuration
func (c *Config) validateImport() error {
	if c.Import.MaxUploadMB < 1 {
		return fmt.Errorf("IMPORT_MAX_UPLOAD_MB must be at least 1")
	}
	if c.Import.Workers < 0 {
		return fmt.Errorf("IMPORT_WORKERS must be >= 0")
	}
	if len(c.Import.AllowedExtensions) == 0 {
		return fmt.Errorf("IMPORT_ALLOWED_EXTENSIONS must not be empty")
	}
	for i, ext := range c.Import.AllowedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Import.AllowedExtensions[i] = ext
	}
	return nil
}

// validateSecurity validates CORS and rate limiting
func (c *Config) validateSecurity() error {
	if c.isProduction() {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain * when ENVIRONMENT=production")
			}
		}
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > 100000 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between 1 and 100000")
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) isProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}
