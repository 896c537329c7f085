// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/wayfarer/config.yaml",
	"/etc/wayfarer/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        3857,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			Path:      "/data/wayfarer.duckdb",
			MaxMemory: "1GB",
			Threads:   0,
		},
		Geocoding: GeocodingConfig{
			Provider:           ProviderGoogle,
			APIKey:             "", // no key = offline fallback table only
			BaseURL:            "",
			UserAgent:          "Wayfarer/1.0 (+https://github.com/tomtom215/wayfarer)",
			Timeout:            10 * time.Second,
			RateLimit:          0,
			RateBurst:          1,
			CacheTTL:           24 * time.Hour,
			CacheMaxEntries:    10000,
			CacheSweepInterval: 10 * time.Minute,
			BreakerMaxFailures: 5,
			BreakerTimeout:     time.Minute,
			FallbackFile:       "",
		},
		Import: ImportConfig{
			PhotoDir:          "",
			MaxUploadMB:       256,
			Workers:           0,
			AllowedExtensions: []string{".jpg", ".jpeg", ".tif", ".tiff"},
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
	"import.allowed_extensions",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML file or defaults)
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to config paths.
var envMappings = map[string]string{
	// Server mappings
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Database mappings
	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",

	// Geocoding mappings
	"geocoding_provider":             "geocoding.provider",
	"google_maps_api_key":            "geocoding.api_key",
	"geocoding_api_key":              "geocoding.api_key",
	"geocoding_base_url":             "geocoding.base_url",
	"geocoding_user_agent":           "geocoding.user_agent",
	"geocoding_timeout":              "geocoding.timeout",
	"geocoding_rate_limit":           "geocoding.rate_limit",
	"geocoding_rate_burst":           "geocoding.rate_burst",
	"geocode_cache_ttl":              "geocoding.cache_ttl",
	"geocode_cache_max_entries":      "geocoding.cache_max_entries",
	"geocode_cache_sweep_interval":   "geocoding.cache_sweep_interval",
	"geocoding_breaker_max_failures": "geocoding.breaker_max_failures",
	"geocoding_breaker_timeout":      "geocoding.breaker_timeout",
	"geocoding_fallback_file":        "geocoding.fallback_file",

	// Import mappings
	"photo_dir":                 "import.photo_dir",
	"import_max_upload_mb":      "import.max_upload_mb",
	"import_workers":            "import.workers",
	"import_allowed_extensions": "import.allowed_extensions",

	// Security mappings
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - GOOGLE_MAPS_API_KEY -> geocoding.api_key
//   - DUCKDB_PATH -> database.path
//   - HTTP_PORT -> server.port
//
// Unmapped keys return an empty string and are skipped, so unrelated
// environment variables never reach the config.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
