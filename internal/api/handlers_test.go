// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/geocode"
	"github.com/tomtom215/wayfarer/internal/importer"
	"github.com/tomtom215/wayfarer/internal/models"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	var health HealthStatus
	decode(t, env.do(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)), http.StatusOK, &health)
	if health.Status != "healthy" || !health.DatabaseConnected {
		t.Errorf("health = %+v", health)
	}
	if health.GeocodeProvider != "fallback" {
		t.Errorf("GeocodeProvider = %q, want fallback", health.GeocodeProvider)
	}

	env.store.pingErr = errors.New("closed")
	decode(t, env.do(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)), http.StatusOK, &health)
	if health.Status != "degraded" || health.DatabaseConnected {
		t.Errorf("health with failing ping = %+v", health)
	}
}

func TestImportPhotos(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	req := multipartRequest(t, []upload{
		{"photos[]", "paris.jpg", photoBytes(48.8584, 2.2945, "2025:07:14 09:30:00")},
		{"photos[]", "nogps.jpg", []byte("not a photo")},
	}, nil)

	rec := env.do(req)
	var summary models.ImportSummary
	envl := decode(t, rec, http.StatusOK, &summary)

	if !envl.Success || envl.Meta == nil || envl.Meta.RequestID == "" {
		t.Errorf("envelope = %+v", envl)
	}
	if rec.Header().Get("X-Request-ID") != envl.Meta.RequestID {
		t.Error("metadata request_id should match X-Request-ID header")
	}
	if summary.Processed != 2 || summary.New != 1 || summary.Skipped != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if len(summary.Locations) != 1 || summary.Locations[0].City != "Paris" || summary.Locations[0].Country != "France" {
		t.Errorf("locations = %+v", summary.Locations)
	}
	if env.store.len() != 1 {
		t.Errorf("stored = %d, want 1", env.store.len())
	}

	// Re-uploading the same photo matches the stored record.
	rec = env.do(multipartRequest(t, []upload{
		{"photos", "paris.jpg", photoBytes(48.8584, 2.2945, "2025:07:14 09:30:00")},
	}, nil))
	decode(t, rec, http.StatusOK, &summary)
	if summary.New != 0 || summary.Processed != 1 || env.store.len() != 1 {
		t.Errorf("re-import summary = %+v, stored = %d", summary, env.store.len())
	}
}

func TestImportPhotos_DateRange(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	req := multipartRequest(t, []upload{
		{"photos[]", "july.jpg", photoBytes(41.9, 12.49, "2025:07:14 09:30:00")},
		{"photos[]", "march.jpg", photoBytes(41.9, 12.49, "2025:03:01 09:30:00")},
	}, map[string]string{"from": "2025-07-01", "to": "2025-07-14"})

	var summary models.ImportSummary
	decode(t, env.do(req), http.StatusOK, &summary)
	if summary.New != 1 || summary.Skipped != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	if summary.Skips[0].FileName != "march.jpg" || summary.Skips[0].Reason != models.SkipOutOfRange {
		t.Errorf("skips = %+v", summary.Skips)
	}
}

func TestImportPhotos_BadRequests(t *testing.T) {
	t.Parallel()

	photo := []upload{{"photos[]", "a.jpg", photoBytes(10, 10, "2025:01:01 00:00:00")}}

	tests := []struct {
		name     string
		req      func(t *testing.T) *http.Request
		wantCode string
	}{
		{"not multipart", func(*testing.T) *http.Request {
			return httptest.NewRequest(http.MethodPost, "/api/v1/photos/import", strings.NewReader("{}"))
		}, ErrCodeBadRequest},
		{"no files", func(t *testing.T) *http.Request {
			return multipartRequest(t, nil, map[string]string{"from": "2025-01-01"})
		}, ErrCodeBadRequest},
		{"wrong field", func(t *testing.T) *http.Request {
			return multipartRequest(t, []upload{{"file", "a.jpg", []byte("x")}}, nil)
		}, ErrCodeBadRequest},
		{"bad date", func(t *testing.T) *http.Request {
			return multipartRequest(t, photo, map[string]string{"from": "yesterday"})
		}, ErrCodeBadRequest},
		{"inverted range", func(t *testing.T) *http.Request {
			return multipartRequest(t, photo, map[string]string{"from": "2025-02-01", "to": "2025-01-01"})
		}, ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, nil, nil)
			envl := decode(t, env.do(tt.req(t)), http.StatusBadRequest, nil)
			if envl.Success || envl.Error == nil || envl.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", envl.Error, tt.wantCode)
			}
			if env.store.len() != 0 {
				t.Error("rejected request should not store anything")
			}
		})
	}
}

func TestImportPhotos_InProgress(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, busyImporter{})
	req := multipartRequest(t, []upload{{"photos[]", "a.jpg", photoBytes(10, 10, "2025:01:01 00:00:00")}}, nil)

	envl := decode(t, env.do(req), http.StatusConflict, nil)
	if envl.Error.Code != ErrCodeConflict {
		t.Errorf("code = %s", envl.Error.Code)
	}
}

func TestScanPhotos(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "italy"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "italy", "rome.jpg"), photoBytes(41.9028, 12.4964, "2024:05:02 10:00:00"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "tokyo.tif"), photoBytes(35.6762, 139.6503, "2024:11:02 10:00:00"), 0o600); err != nil {
		t.Fatal(err)
	}

	withRoot := func(c *config.Config) { c.Import.PhotoDir = root }

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantNew    int
		wantCode   string
	}{
		{"whole root", `{}`, http.StatusOK, 2, ""},
		{"empty body", ``, http.StatusOK, 2, ""},
		{"subdirectory", `{"directory":"italy"}`, http.StatusOK, 1, ""},
		{"date range", `{"from":"2024-11-01"}`, http.StatusOK, 1, ""},
		{"escape root", `{"directory":"../etc"}`, http.StatusBadRequest, 0, ErrCodeValidation},
		{"missing directory", `{"directory":"spain"}`, http.StatusNotFound, 0, ErrCodeNotFound},
		{"unknown field", `{"dir":"italy"}`, http.StatusBadRequest, 0, ErrCodeBadRequest},
		{"bad date", `{"to":"soon"}`, http.StatusBadRequest, 0, ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, withRoot, nil)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/photos/scan", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			var summary models.ImportSummary
			var data interface{}
			if tt.wantStatus == http.StatusOK {
				data = &summary
			}
			envl := decode(t, env.do(req), tt.wantStatus, data)

			if tt.wantStatus == http.StatusOK && summary.New != tt.wantNew {
				t.Errorf("New = %d, want %d (summary %+v)", summary.New, tt.wantNew, summary)
			}
			if tt.wantCode != "" && (envl.Error == nil || envl.Error.Code != tt.wantCode) {
				t.Errorf("error = %+v, want %s", envl.Error, tt.wantCode)
			}
		})
	}
}

func TestScanPhotos_NoPhotoRoot(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/photos/scan", strings.NewReader(`{}`))
	envl := decode(t, env.do(req), http.StatusServiceUnavailable, nil)
	if envl.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("code = %s", envl.Error.Code)
	}
}

func seedRecords(env *testEnv) {
	day := func(m time.Month, d int) time.Time { return time.Date(2025, m, d, 12, 0, 0, 0, time.UTC) }
	env.store.add(
		models.LocationRecord{ID: "1", Latitude: 48.8566, Longitude: 2.3522, City: "Paris", Country: "France", CaptureDate: day(1, 10)},
		models.LocationRecord{ID: "2", Latitude: 48.8570, Longitude: 2.3530, City: "Paris", Country: "France", CaptureDate: day(1, 11)},
		models.LocationRecord{ID: "3", Latitude: 45.7640, Longitude: 4.8357, City: "Lyon", Country: "France", CaptureDate: day(3, 5)},
		models.LocationRecord{ID: "4", Latitude: 41.9028, Longitude: 12.4964, City: "Rome", Country: "Italy", CaptureDate: day(6, 20)},
	)
}

func TestLocations(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	seedRecords(env)

	tests := []struct {
		query string
		want  int
	}{
		{"", 4},
		{"?country=France", 3},
		{"?from=2025-03-01", 2},
		{"?to=2025-01-10", 1},
		{"?from=2025-01-01&to=2025-03-05&country=France", 3},
	}

	for _, tt := range tests {
		var records []models.LocationRecord
		envl := decode(t, env.do(httptest.NewRequest(http.MethodGet, "/api/v1/locations"+tt.query, nil)), http.StatusOK, &records)
		if len(records) != tt.want {
			t.Errorf("GET /locations%s = %d records, want %d", tt.query, len(records), tt.want)
		}
		if envl.Meta.Count == nil || *envl.Meta.Count != tt.want {
			t.Errorf("GET /locations%s metadata count = %v", tt.query, envl.Meta.Count)
		}
	}

	decode(t, env.do(httptest.NewRequest(http.MethodGet, "/api/v1/locations?from=2025-02-01&to=2025-01-01", nil)), http.StatusBadRequest, nil)
}

func TestLocations_DatabaseError(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	env.store.listErr = errors.New("disk gone")

	envl := decode(t, env.do(httptest.NewRequest(http.MethodGet, "/api/v1/locations", nil)), http.StatusInternalServerError, nil)
	if envl.Error.Code != ErrCodeDatabaseError || strings.Contains(envl.Error.Message, "disk gone") {
		t.Errorf("error = %+v", envl.Error)
	}
}

func TestClearLocations(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	seedRecords(env)

	var result ClearResult
	decode(t, env.do(httptest.NewRequest(http.MethodDelete, "/api/v1/locations", nil)), http.StatusOK, &result)
	if result.Deleted != 4 || env.store.len() != 0 {
		t.Errorf("deleted = %d, remaining = %d", result.Deleted, env.store.len())
	}

	busy := newTestEnv(t, nil, busyImporter{})
	decode(t, busy.do(httptest.NewRequest(http.MethodDelete, "/api/v1/locations", nil)), http.StatusConflict, nil)
}

func TestClearLocations_RejectedDuringImport(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	resolver := geocode.NewResolver(nil, nil, nil)
	imp := importer.NewService(store, resolver, importer.Config{Workers: 1})
	handler := NewRouter(NewHandler(store, imp, resolver, testConfig()), nil).SetupChi()
	clearReq := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/locations", nil))
		return rec
	}

	data := photoBytes(48.8566, 2.3522, "2025:01:10 12:00:00")
	if _, err := imp.ImportFiles(context.Background(), []importer.Source{importer.BytesSource("paris.tif", data)}, importer.Options{}); err != nil {
		t.Fatal(err)
	}

	release := make(chan struct{})
	opened := make(chan struct{})
	src := importer.BytesSource("paris.tif", data)
	open := src.Open
	src.Open = func() (io.ReadCloser, error) {
		close(opened)
		<-release
		return open()
	}

	done := make(chan models.ImportSummary, 1)
	go func() {
		summary, err := imp.ImportFiles(context.Background(), []importer.Source{src}, importer.Options{})
		if err != nil {
			t.Errorf("import error = %v", err)
		}
		done <- summary
	}()

	<-opened
	decode(t, clearReq(), http.StatusConflict, nil)

	close(release)
	summary := <-done

	stored, _ := store.ListLocations(context.Background(), models.LocationFilter{})
	ids := make(map[string]bool, len(stored))
	for _, rec := range stored {
		ids[rec.ID] = true
	}
	for _, loc := range summary.Locations {
		if !ids[loc.ID] {
			t.Errorf("reported location %s is missing from the store", loc.ID)
		}
	}

	var result ClearResult
	decode(t, clearReq(), http.StatusOK, &result)
	if result.Deleted != 1 || store.len() != 0 {
		t.Errorf("deleted = %d, remaining = %d", result.Deleted, store.len())
	}
}

func TestLocationStats(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	seedRecords(env)

	var stats models.LocationStats
	decode(t, env.do(httptest.NewRequest(http.MethodGet, "/api/v1/locations/stats", nil)), http.StatusOK, &stats)
	if stats.TotalLocations != 4 || stats.Countries != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestClusters(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	seedRecords(env)

	tests := []struct {
		path      string
		wantLevel models.DetailLevel
		wantCount int
	}{
		{"/api/v1/clusters?zoom=2", models.DetailCountry, 2},
		{"/api/v1/clusters?zoom=5.5", models.DetailCity, 3},
		{"/api/v1/clusters?zoom=14", models.DetailPoint, 3},
		{"/api/v1/clusters/city", models.DetailCity, 3},
		{"/api/v1/clusters/country", models.DetailCountry, 2},
		{"/api/v1/clusters/country?country=Italy", models.DetailCountry, 1},
	}

	for _, tt := range tests {
		var resp ClusterResponse
		decode(t, env.do(httptest.NewRequest(http.MethodGet, tt.path, nil)), http.StatusOK, &resp)
		if resp.DetailLevel != tt.wantLevel || len(resp.Clusters) != tt.wantCount {
			t.Errorf("%s: level = %s, clusters = %d, want %s/%d", tt.path, resp.DetailLevel, len(resp.Clusters), tt.wantLevel, tt.wantCount)
		}
		total := 0
		for _, c := range resp.Clusters {
			total += c.Count
		}
		if total != resp.TotalLocations {
			t.Errorf("%s: cluster counts sum to %d, want %d", tt.path, total, resp.TotalLocations)
		}
	}
}

func TestClusters_Empty(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	var resp ClusterResponse
	decode(t, env.do(httptest.NewRequest(http.MethodGet, "/api/v1/clusters/city", nil)), http.StatusOK, &resp)
	if resp.Clusters == nil || len(resp.Clusters) != 0 {
		t.Errorf("clusters = %v, want empty list", resp.Clusters)
	}
}

func TestClusters_InvalidZoom(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	tests := []struct {
		query    string
		wantCode string
	}{
		{"", ErrCodeBadRequest},
		{"?zoom=abc", ErrCodeBadRequest},
		{"?zoom=NaN", ErrCodeBadRequest},
		{"?zoom=Inf", ErrCodeBadRequest},
		{"?zoom=-Inf", ErrCodeBadRequest},
		{"?zoom=23", ErrCodeValidation},
		{"?zoom=-1", ErrCodeValidation},
	}
	for _, tt := range tests {
		envl := decode(t, env.do(httptest.NewRequest(http.MethodGet, "/api/v1/clusters"+tt.query, nil)), http.StatusBadRequest, nil)
		if envl.Error.Code != tt.wantCode {
			t.Errorf("zoom%s: code = %s, want %s", tt.query, envl.Error.Code, tt.wantCode)
		}
	}
}

func TestGeocode(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)

	var res GeocodeResult
	decode(t, env.do(httptest.NewRequest(http.MethodGet, "/api/v1/geocode?lat=48.8566&lng=2.3522", nil)), http.StatusOK, &res)
	if res.Place.City != "Paris" || res.Place.Country != "France" {
		t.Errorf("place = %+v", res.Place)
	}
	if res.Outcome != geocode.OutcomeFallbackMatched || res.Provider != "fallback" {
		t.Errorf("outcome = %s, provider = %s", res.Outcome, res.Provider)
	}

	decode(t, env.do(httptest.NewRequest(http.MethodGet, "/api/v1/geocode?lat=48.8566&lng=2.3522", nil)), http.StatusOK, &res)
	if res.Outcome != geocode.OutcomeCacheHit {
		t.Errorf("second outcome = %s, want cache_hit", res.Outcome)
	}

	decode(t, env.do(httptest.NewRequest(http.MethodGet, "/api/v1/geocode?lat=-60&lng=-140", nil)), http.StatusOK, &res)
	if res.Place != models.UnknownPlace() {
		t.Errorf("open ocean place = %+v, want Unknown", res.Place)
	}

	for _, q := range []string{"?lat=95&lng=0", "?lat=10", "?lat=x&lng=1", "?lat=1&lng=181", "?lat=NaN&lng=1", "?lat=1&lng=Inf"} {
		decode(t, env.do(httptest.NewRequest(http.MethodGet, "/api/v1/geocode"+q, nil)), http.StatusBadRequest, nil)
	}
}
