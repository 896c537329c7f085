// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/wayfarer/internal/api"
	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/database"
	"github.com/tomtom215/wayfarer/internal/importer"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/supervisor"
	"github.com/tomtom215/wayfarer/internal/supervisor/services"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup always executes.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("geocoding_provider", cfg.Geocoding.Provider).
		Str("photo_dir", cfg.Import.PhotoDir).
		Msg("Starting Wayfarer")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize database")
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	resolver, err := newResolver(&cfg.Geocoding)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize geocoding")
		return 1
	}

	imp := importer.NewService(db, resolver, importer.Config{
		Workers:    cfg.Import.Workers,
		Extensions: cfg.Import.AllowedExtensions,
	})

	handler := api.NewHandler(db, imp, resolver, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
		// No Read/WriteTimeout: a large upload batch is imported within one request.
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return 1
	}
	tree.AddDataService(services.NewCacheSweeperService(resolver.Cache(), cfg.Geocoding.CacheSweepInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
	return 0
}
