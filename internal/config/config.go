// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

// DotEnvPath is the .env file loaded before configuration.
const DotEnvPath = ".env"

// Geocoding providers.
const (
	ProviderGoogle    = "google"
	ProviderNominatim = "nominatim"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Geocoding GeocodingConfig `koanf:"geocoding"`
	Import    ImportConfig    `koanf:"import"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development or production
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path      string `koanf:"path"` // ":memory:" for an in-process database
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = use NumCPU
}

// GeocodingConfig holds reverse-geocoding settings
type GeocodingConfig struct {
	Provider  string        `koanf:"provider"`
	APIKey    string        `koanf:"api_key"`
	BaseURL   string        `koanf:"base_url"` // empty = provider default
	UserAgent string        `koanf:"user_agent"`
	Timeout   time.Duration `koanf:"timeout"`

	RateLimit float64 `koanf:"rate_limit"` // requests per second; 0 = provider default
	RateBurst int     `koanf:"rate_burst"`

	CacheTTL           time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries    int           `koanf:"cache_max_entries"`
	CacheSweepInterval time.Duration `koanf:"cache_sweep_interval"`

	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`

	FallbackFile string `koanf:"fallback_file"` // JSON region table; empty = built-in table
}

// EffectiveRateLimit returns the configured rate, or the provider's default
// when unset. Nominatim's usage policy allows one request per second.
func (g GeocodingConfig) EffectiveRateLimit() float64 {
	if g.RateLimit > 0 {
		return g.RateLimit
	}
	if g.Provider == ProviderNominatim {
		return 1
	}
	return 10
}

// ImportConfig holds photo import settings
type ImportConfig struct {
	PhotoDir          string   `koanf:"photo_dir"` // root for directory scans; empty disables scanning
	MaxUploadMB       int64    `koanf:"max_upload_mb"`
	Workers           int      `koanf:"workers"` // 0 = use GOMAXPROCS
	AllowedExtensions []string `koanf:"allowed_extensions"`
}

// MaxUploadBytes returns the upload limit in bytes.
func (i ImportConfig) MaxUploadBytes() int64 {
	return i.MaxUploadMB << 20
}

// SecurityConfig holds HTTP security settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json, console
	Caller bool   `koanf:"caller"`
}

// Load reads an optional .env file into the environment and then loads the
// layered configuration.
func Load() (*Config, error) {
	if err := loadDotEnv(DotEnvPath); err != nil {
		return nil, err
	}
	return LoadWithKoanf()
}

// loadDotEnv loads path into the environment. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
