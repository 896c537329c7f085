// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/exif/exiftest"
	"github.com/tomtom215/wayfarer/internal/geocode"
	"github.com/tomtom215/wayfarer/internal/importer"
	"github.com/tomtom215/wayfarer/internal/models"
)

// memStore satisfies both LocationStore and locations.Store.
type memStore struct {
	mu      sync.Mutex
	records []models.LocationRecord
	pingErr error
	listErr error
}

func (m *memStore) ListLocations(_ context.Context, f models.LocationFilter) ([]models.LocationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []models.LocationRecord{}
	for _, rec := range m.records {
		if f.Country != "" && rec.Country != f.Country {
			continue
		}
		if f.From != nil && rec.CaptureDate.Before(*f.From) {
			continue
		}
		if f.To != nil && rec.CaptureDate.After(*f.To) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (m *memStore) InsertLocation(_ context.Context, rec *models.LocationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, *rec)
	return nil
}

func (m *memStore) UpdateLocationPlace(_ context.Context, id, city, country string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if m.records[i].ID == id {
			m.records[i].City, m.records[i].Country = city, country
			return nil
		}
	}
	return errors.New("not found")
}

func (m *memStore) ClearLocations(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.records))
	m.records = nil
	return n, nil
}

func (m *memStore) GetLocationStats(context.Context) (*models.LocationStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	countries := map[string]int{}
	for _, rec := range m.records {
		countries[rec.Country]++
	}
	stats := &models.LocationStats{TotalLocations: len(m.records), CountryBreakdown: []models.CountryStat{}}
	for c, n := range countries {
		stats.Countries++
		stats.CountryBreakdown = append(stats.CountryBreakdown, models.CountryStat{Country: c, Count: n})
	}
	return stats, nil
}

func (m *memStore) Ping(context.Context) error {
	return m.pingErr
}

func (m *memStore) add(recs ...models.LocationRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, recs...)
}

func (m *memStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// busyImporter reports an import in progress for every call.
type busyImporter struct{}

func (busyImporter) ImportFiles(context.Context, []importer.Source, importer.Options) (models.ImportSummary, error) {
	return models.ImportSummary{}, importer.ErrImportInProgress
}

func (busyImporter) ScanDirectory(context.Context, string, importer.Options) (models.ImportSummary, error) {
	return models.ImportSummary{}, importer.ErrImportInProgress
}

func (busyImporter) IsRunning() bool               { return true }
func (busyImporter) LastRun() *importer.RunStats { return nil }
func (busyImporter) Exclusive(func() error) error {
	return importer.ErrImportInProgress
}

type testEnv struct {
	store   *memStore
	cfg     *config.Config
	handler http.Handler
}

func testConfig() *config.Config {
	return &config.Config{
		Import: config.ImportConfig{MaxUploadMB: 8},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitDisabled: true,
		},
	}
}

func newTestEnv(t *testing.T, mutate func(*config.Config), imp PhotoImporter) *testEnv {
	t.Helper()

	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}
	store := &memStore{}
	resolver := geocode.NewResolver(nil, nil, nil)
	if imp == nil {
		imp = importer.NewService(store, resolver, importer.Config{Workers: 2})
	}
	handler := NewHandler(store, imp, resolver, cfg)
	router := NewRouter(handler, NewChiMiddleware(ChiMiddlewareConfigFromSecurity(&cfg.Security)))
	return &testEnv{store: store, cfg: cfg, handler: router.SetupChi()}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"metadata"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, data interface{}) envelope {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("status = %d, want %d; body = %s", rec.Code, wantStatus, rec.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v; body = %s", err, rec.Body.String())
	}
	if data != nil {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return env
}

func photoBytes(lat, lng float64, date string) []byte {
	return exiftest.BuildTIFF(&exiftest.GPSFix{Lat: lat, Lng: lng, LatRef: 'N', LngRef: 'E'}, date)
}

type upload struct {
	field, name string
	data        []byte
}

func multipartRequest(t *testing.T, uploads []upload, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, u := range uploads {
		part, err := mw.CreateFormFile(u.field, u.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := io.Copy(part, bytes.NewReader(u.data)); err != nil {
			t.Fatal(err)
		}
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/photos/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
