// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package importer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/wayfarer/internal/exif"
	"github.com/tomtom215/wayfarer/internal/locations"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/models"
)

// ErrImportInProgress is returned when an import is requested while another runs.
var ErrImportInProgress = errors.New("import already in progress")

// PlaceResolver resolves a coordinate to a place. It never fails; an
// unresolvable coordinate yields the Unknown place.
type PlaceResolver interface {
	Resolve(ctx context.Context, lat, lng float64) models.Place
}

// Config configures a Service.
type Config struct {
	Workers    int      // prepare-phase concurrency; defaults to GOMAXPROCS
	Extensions []string // allowed extensions for ScanDirectory; defaults to DefaultExtensions
	Now        func() time.Time
}

// Options narrows a single import.
type Options struct {
	From *time.Time // inclusive lower bound on capture date
	To   *time.Time // inclusive upper bound on capture date
}

// Contains reports whether t lies within the options' date range.
func (o Options) Contains(t time.Time) bool {
	if o.From != nil && t.Before(*o.From) {
		return false
	}
	if o.To != nil && t.After(*o.To) {
		return false
	}
	return true
}

// RunStats describes the most recent import.
type RunStats struct {
	ImportID  string    `json:"import_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time,omitempty"`
	Running   bool      `json:"running"`
	Processed int       `json:"processed"`
	New       int       `json:"new"`
	Updated   int       `json:"updated"`
	Skipped   int       `json:"skipped"`
	Error     string    `json:"error,omitempty"`
}

// Service imports photos into the location store.
type Service struct {
	store    locations.Store
	resolver PlaceResolver
	cfg      Config

	mu      sync.Mutex
	running bool
	last    *RunStats
}

// NewService creates an import service.
func NewService(store locations.Store, resolver PlaceResolver, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultExtensions
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{store: store, resolver: resolver, cfg: cfg}
}

// Extensions returns the file extensions the service imports.
func (s *Service) Extensions() []string {
	return s.cfg.Extensions
}

// IsRunning reports whether an import is in progress.
func (s *Service) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// LastRun returns a copy of the most recent import's stats, or nil.
func (s *Service) LastRun() *RunStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return nil
	}
	stats := *s.last
	return &stats
}

// Exclusive runs fn while holding the import slot, so no import can start
// until fn returns. It returns ErrImportInProgress without calling fn when an
// import is already running.
func (s *Service) Exclusive(fn func() error) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.release()
	return fn()
}

// ScanDirectory imports every photo under dir with an allowed extension.
func (s *Service) ScanDirectory(ctx context.Context, dir string, opts Options) (models.ImportSummary, error) {
	sources, err := collectSources(ctx, dir, s.cfg.Extensions)
	if err != nil {
		return models.ImportSummary{}, err
	}
	logging.Info().Str("directory", dir).Int("files", len(sources)).Msg("Directory scanned for photos")
	return s.ImportFiles(ctx, sources, opts)
}

// prepared is the outcome of the prepare phase for one source.
type prepared struct {
	candidate  locations.Candidate
	skipReason string
}

// ImportFiles imports sources and returns the per-photo tally. Skipped photos
// never fail the import; a store failure on one photo is reported as a skip
// and the rest continue. The error is non-nil only when the import could not
// start or the context was canceled.
func (s *Service) ImportFiles(ctx context.Context, sources []Source, opts Options) (models.ImportSummary, error) {
	if err := s.begin(); err != nil {
		return models.ImportSummary{}, err
	}

	importID := logging.GenerateImportID()
	ctx = logging.ContextWithImportID(ctx, importID)
	start := s.cfg.Now()
	s.setLast(&RunStats{ImportID: importID, StartTime: start, Running: true})

	summary, err := s.run(ctx, sources, opts)

	metrics.ImportDuration.Observe(time.Since(start).Seconds())
	stats := &RunStats{
		ImportID:  importID,
		StartTime: start,
		EndTime:   s.cfg.Now(),
		Processed: summary.Processed,
		New:       summary.New,
		Updated:   summary.Updated,
		Skipped:   summary.Skipped,
	}
	if err != nil {
		stats.Error = err.Error()
	}
	s.finish(stats)

	logger := logging.Ctx(ctx)
	if err != nil {
		logger.Error().Err(err).Int("processed", summary.Processed).Msg("Import aborted")
		return summary, err
	}
	logger.Info().
		Int("processed", summary.Processed).
		Int("new", summary.New).
		Int("updated", summary.Updated).
		Int("skipped", summary.Skipped).
		Dur("duration", time.Since(start)).
		Msg("Import completed")
	return summary, nil
}

func (s *Service) run(ctx context.Context, sources []Source, opts Options) (models.ImportSummary, error) {
	summary := models.ImportSummary{
		Processed: len(sources),
		Locations: []models.LocationRecord{},
	}
	if len(sources) == 0 {
		return summary, nil
	}

	batch, err := locations.NewBatch(ctx, s.store, locations.WithClock(s.cfg.Now))
	if err != nil {
		return summary, err
	}

	results := make([]prepared, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for i, src := range sources {
		g.Go(func() error {
			results[i] = s.prepare(gctx, src, opts)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("import canceled: %w", err)
	}

	for i, res := range results {
		name := sources[i].Name
		if res.skipReason != "" {
			summary.Skip(name, res.skipReason)
			metrics.ImportPhotos.WithLabelValues("skipped").Inc()
			continue
		}

		rec, outcome, err := batch.Upsert(ctx, res.candidate)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("file", name).Msg("Failed to store photo location")
			summary.Skip(name, models.SkipStoreFailure)
			metrics.ImportPhotos.WithLabelValues("skipped").Inc()
			continue
		}
		summary.Add(outcome, rec)
		metrics.ImportPhotos.WithLabelValues(string(outcome)).Inc()
	}

	return summary, nil
}

// prepare reads and resolves one photo. It never returns an error; problems
// become a skip reason.
func (s *Service) prepare(ctx context.Context, src Source, opts Options) prepared {
	logger := logging.Ctx(ctx)

	rc, err := src.Open()
	if err != nil {
		logger.Debug().Err(err).Str("file", src.Name).Msg("Photo could not be opened")
		return prepared{skipReason: models.SkipUnreadable}
	}
	md, err := exif.Extract(rc)
	_ = rc.Close()
	if err != nil {
		if errors.Is(err, exif.ErrNoGPS) {
			logger.Debug().Str("file", src.Name).Msg("Photo has no GPS position")
			return prepared{skipReason: models.SkipNoGPS}
		}
		logger.Debug().Err(err).Str("file", src.Name).Msg("Photo metadata unreadable")
		return prepared{skipReason: models.SkipUnreadable}
	}

	captured := md.CaptureDate
	if !md.HasCaptureDate() {
		captured = src.ModTime
		if captured.IsZero() {
			captured = s.cfg.Now()
		}
	}
	captured = captured.UTC()

	if !opts.Contains(captured) {
		return prepared{skipReason: models.SkipOutOfRange}
	}

	place := s.resolver.Resolve(ctx, md.Latitude, md.Longitude)
	return prepared{candidate: locations.Candidate{
		Latitude:    md.Latitude,
		Longitude:   md.Longitude,
		CaptureDate: captured,
		Place:       place,
		FileName:    src.Name,
	}}
}

func (s *Service) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrImportInProgress
	}
	s.running = true
	return nil
}

func (s *Service) setLast(stats *RunStats) {
	s.mu.Lock()
	s.last = stats
	s.mu.Unlock()
}

func (s *Service) finish(stats *RunStats) {
	s.mu.Lock()
	s.running = false
	s.last = stats
	s.mu.Unlock()
}

func (s *Service) release() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}
