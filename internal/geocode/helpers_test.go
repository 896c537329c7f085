// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package geocode

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/wayfarer/internal/models"
)

// fakeProvider returns a fixed place or error and counts calls.
type fakeProvider struct {
	name      string
	place     models.Place
	err       error
	available bool
	calls     atomic.Int32
}

func newFakeProvider(place models.Place, err error) *fakeProvider {
	return &fakeProvider{name: "fake", place: place, err: err, available: true}
}

func (f *fakeProvider) Name() string      { return f.name }
func (f *fakeProvider) IsAvailable() bool { return f.available }

func (f *fakeProvider) ReverseGeocode(ctx context.Context, _, _ float64) (models.Place, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return models.UnknownPlace(), err
	}
	if f.err != nil {
		return models.UnknownPlace(), f.err
	}
	return f.place, nil
}

// testClock is a manually advanced clock for cache expiry tests.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
