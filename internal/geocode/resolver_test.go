// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/wayfarer/internal/cache"
	"github.com/tomtom215/wayfarer/internal/models"
)

func TestResolver_NoCredentialUsesFallback(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(googleParisBody))
	}))
	defer server.Close()

	for _, key := range []string{"", "YOUR_API_KEY_HERE"} {
		r := NewResolver(nil, NewGoogleProvider(ClientConfig{APIKey: key, BaseURL: server.URL}), nil)
		if r.ProviderEnabled() {
			t.Errorf("key %q: provider should be disabled", key)
		}

		res := r.ResolveDetailed(context.Background(), 51.50, -0.13)
		if res.Place.Country != "United Kingdom" || res.Place.City != "London" {
			t.Errorf("key %q: place = %+v, want London, United Kingdom", key, res.Place)
		}
		if res.Outcome != OutcomeFallbackMatched {
			t.Errorf("key %q: outcome = %s, want %s", key, res.Outcome, OutcomeFallbackMatched)
		}
	}

	if hits.Load() != 0 {
		t.Errorf("provider called %d times without a credential", hits.Load())
	}
}

func TestResolver_NilProvider(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil, nil, nil)
	if r.ProviderName() != "fallback" {
		t.Errorf("ProviderName() = %q, want fallback", r.ProviderName())
	}
	if place := r.Resolve(context.Background(), 48.8566, 2.3522); place.City != "Paris" {
		t.Errorf("place = %+v, want Paris", place)
	}
}

func TestResolver_Idempotent(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider(models.NewPlace("Tokyo", "Japan"), nil)
	r := NewResolver(cache.NewLocationCache(cache.LocationCacheConfig{}), provider, nil)

	first := r.ResolveDetailed(context.Background(), 35.6762, 139.6503)
	second := r.ResolveDetailed(context.Background(), 35.6762, 139.6503)

	if first.Outcome != OutcomeProviderOK {
		t.Errorf("first outcome = %s, want %s", first.Outcome, OutcomeProviderOK)
	}
	if second.Outcome != OutcomeCacheHit {
		t.Errorf("second outcome = %s, want %s", second.Outcome, OutcomeCacheHit)
	}
	if first.Place != second.Place {
		t.Errorf("places differ: %+v vs %+v", first.Place, second.Place)
	}
	if n := provider.calls.Load(); n != 1 {
		t.Errorf("provider calls = %d, want 1", n)
	}
}

func TestResolver_NearbyCoordinatesShareCache(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider(models.NewPlace("Tokyo", "Japan"), nil)
	r := NewResolver(nil, provider, nil)

	r.Resolve(context.Background(), 35.6712, 139.6512)
	r.Resolve(context.Background(), 35.6738, 139.6489)

	if n := provider.calls.Load(); n != 1 {
		t.Errorf("provider calls = %d, want 1 for the same cache cell", n)
	}
}

func TestResolver_ExpiredEntryCallsProviderAgain(t *testing.T) {
	t.Parallel()

	clock := newTestClock()
	c := cache.NewLocationCache(cache.LocationCacheConfig{TTL: time.Hour, Now: clock.Now})
	provider := newFakeProvider(models.NewPlace("Tokyo", "Japan"), nil)
	r := NewResolver(c, provider, nil)

	r.Resolve(context.Background(), 35.6762, 139.6503)
	clock.Advance(2 * time.Hour)
	res := r.ResolveDetailed(context.Background(), 35.6762, 139.6503)

	if res.Outcome != OutcomeProviderOK {
		t.Errorf("outcome after TTL = %s, want %s", res.Outcome, OutcomeProviderOK)
	}
	if n := provider.calls.Load(); n != 2 {
		t.Errorf("provider calls = %d, want 2", n)
	}
}

func TestResolver_ProviderFailureFallsBack(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider(models.Place{}, errors.New("connection refused"))
	r := NewResolver(nil, provider, nil)

	res := r.ResolveDetailed(context.Background(), 48.8566, 2.3522)
	if res.Place.City != "Paris" || res.Place.Country != "France" {
		t.Errorf("place = %+v, want Paris, France", res.Place)
	}
	if res.Outcome != OutcomeFallbackMatched {
		t.Errorf("outcome = %s, want %s", res.Outcome, OutcomeFallbackMatched)
	}

	// The fallback answer was cached.
	if again := r.ResolveDetailed(context.Background(), 48.8566, 2.3522); again.Outcome != OutcomeCacheHit {
		t.Errorf("second outcome = %s, want %s", again.Outcome, OutcomeCacheHit)
	}
	if n := provider.calls.Load(); n != 1 {
		t.Errorf("provider calls = %d, want 1", n)
	}
}

func TestResolver_UnknownNeverCached(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider(models.Place{}, errors.New("timeout"))
	r := NewResolver(nil, provider, nil)

	for i := 0; i < 2; i++ {
		res := r.ResolveDetailed(context.Background(), 0, -30)
		if !res.Place.IsUnknown() {
			t.Errorf("place = %+v, want Unknown", res.Place)
		}
		if res.Outcome != OutcomeProviderFailed {
			t.Errorf("outcome = %s, want %s", res.Outcome, OutcomeProviderFailed)
		}
	}

	if n := provider.calls.Load(); n != 2 {
		t.Errorf("provider calls = %d, want 2 (Unknown is not cached)", n)
	}
	if r.Cache().Len() != 0 {
		t.Errorf("cache holds %d entries, want 0", r.Cache().Len())
	}
}

func TestResolver_PartialProviderResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		provided    models.Place
		lat, lng    float64
		wantCity    string
		wantCountry string
		wantOutcome Outcome
	}{
		{
			name:        "fallback city fills provider gap",
			provided:    models.NewPlace("", "France"),
			lat:         48.8566,
			lng:         2.3522,
			wantCity:    "Paris",
			wantCountry: "France",
			wantOutcome: OutcomeFallbackMatched,
		},
		{
			name:        "provider country kept where fallback misses",
			provided:    models.NewPlace("", "Kiribati"),
			lat:         1.87,
			lng:         -157.4,
			wantCity:    "Unknown",
			wantCountry: "Kiribati",
			wantOutcome: OutcomeFallbackUnmatched,
		},
		{
			name:        "fallback country wins over provider",
			provided:    models.NewPlace("", "Elsewhere"),
			lat:         46.0,
			lng:         2.0,
			wantCity:    "Unknown",
			wantCountry: "France",
			wantOutcome: OutcomeFallbackMatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewResolver(nil, newFakeProvider(tt.provided, nil), nil)
			res := r.ResolveDetailed(context.Background(), tt.lat, tt.lng)

			if res.Place.City != tt.wantCity || res.Place.Country != tt.wantCountry {
				t.Errorf("place = %+v, want %s, %s", res.Place, tt.wantCity, tt.wantCountry)
			}
			if res.Outcome != tt.wantOutcome {
				t.Errorf("outcome = %s, want %s", res.Outcome, tt.wantOutcome)
			}
		})
	}
}

func TestResolver_CanceledContextStillResolves(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider(models.NewPlace("Nowhere", "Noland"), nil)
	r := NewResolver(nil, provider, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	place := r.Resolve(ctx, 51.50, -0.13)
	if place.City != "London" {
		t.Errorf("place = %+v, want fallback London", place)
	}
}

func TestResolver_NeverReturnsEmpty(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil, newFakeProvider(models.Place{}, errors.New("down")), nil)

	for lat := -90.0; lat <= 90; lat += 15 {
		for lng := -180.0; lng <= 180; lng += 30 {
			place := r.Resolve(context.Background(), lat, lng)
			if place.City == "" || place.Country == "" {
				t.Fatalf("Resolve(%v, %v) = %+v, want non-empty fields", lat, lng, place)
			}
		}
	}
}

func TestResolver_ConcurrentResolve(t *testing.T) {
	t.Parallel()

	provider := newFakeProvider(models.NewPlace("Tokyo", "Japan"), nil)
	r := NewResolver(nil, provider, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if place := r.Resolve(context.Background(), 35.6762, 139.6503); place.City != "Tokyo" {
				t.Errorf("place = %+v", place)
			}
		}()
	}
	wg.Wait()

	// Concurrent misses are not coalesced, but every later call is a hit.
	before := provider.calls.Load()
	r.Resolve(context.Background(), 35.6762, 139.6503)
	if provider.calls.Load() != before {
		t.Error("resolve after warm-up should not call the provider")
	}
}
