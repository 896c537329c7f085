// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"context"
	"time"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/geocode"
	"github.com/tomtom215/wayfarer/internal/importer"
	"github.com/tomtom215/wayfarer/internal/models"
)

// LocationStore is the persistence the handlers read and clear.
type LocationStore interface {
	ListLocations(ctx context.Context, filter models.LocationFilter) ([]models.LocationRecord, error)
	ClearLocations(ctx context.Context) (int64, error)
	GetLocationStats(ctx context.Context) (*models.LocationStats, error)
	Ping(ctx context.Context) error
}

// PhotoImporter runs photo imports.
type PhotoImporter interface {
	ImportFiles(ctx context.Context, sources []importer.Source, opts importer.Options) (models.ImportSummary, error)
	ScanDirectory(ctx context.Context, dir string, opts importer.Options) (models.ImportSummary, error)
	IsRunning() bool
	LastRun() *importer.RunStats
	Exclusive(fn func() error) error
}

// Geocoder resolves single coordinates for the /geocode endpoint.
type Geocoder interface {
	ResolveDetailed(ctx context.Context, lat, lng float64) geocode.Resolution
	ProviderName() string
}

// Handler serves the API endpoints.
type Handler struct {
	store     LocationStore
	importer  PhotoImporter
	geocoder  Geocoder
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a Handler. cfg supplies the photo root and upload limit.
func NewHandler(store LocationStore, imp PhotoImporter, geocoder Geocoder, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		importer:  imp,
		geocoder:  geocoder,
		config:    cfg,
		startTime: time.Now(),
	}
}
