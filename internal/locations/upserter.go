// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package locations

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/wayfarer/internal/cache"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/models"
)

// MatchEpsilon is the per-axis coordinate tolerance, in degrees, under which
// two photos of the same file and day are the same visit. It is about 11 m.
const MatchEpsilon = 0.0001

// indexCellSize must be at least MatchEpsilon so the 3x3 neighborhood scan
// in cache.SpatialIndex finds every candidate.
const indexCellSize = 0.001

// Store is the persistence the upserter reads from and writes to.
type Store interface {
	ListLocations(ctx context.Context, filter models.LocationFilter) ([]models.LocationRecord, error)
	InsertLocation(ctx context.Context, rec *models.LocationRecord) error
	UpdateLocationPlace(ctx context.Context, id, city, country string) error
}

// Candidate is a resolved photo location awaiting upsert.
type Candidate struct {
	Latitude    float64
	Longitude   float64
	CaptureDate time.Time
	Place       models.Place
	FileName    string
}

// Batch upserts candidates against a snapshot of the stored records taken
// when the batch began. Records inserted by the batch are added to the
// snapshot, so duplicates within one batch also collapse.
//
// A Batch is not safe for concurrent use; callers upsert sequentially.
type Batch struct {
	store Store
	index *cache.SpatialIndex[*models.LocationRecord]
	now   func() time.Time
}

// Option configures a Batch.
type Option func(*Batch)

// WithClock overrides the clock used for CreatedAt and UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(b *Batch) { b.now = now }
}

// NewBatch loads the current record set from store and indexes it.
func NewBatch(ctx context.Context, store Store, opts ...Option) (*Batch, error) {
	existing, err := store.ListLocations(ctx, models.LocationFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load existing locations: %w", err)
	}

	b := &Batch{
		store: store,
		index: cache.NewSpatialIndex[*models.LocationRecord](indexCellSize),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	for i := range existing {
		rec := existing[i]
		b.index.Insert(rec.Latitude, rec.Longitude, &rec)
	}

	logging.Debug().Int("existing", len(existing)).Int("cells", b.index.NumCells()).Msg("Upsert batch indexed")
	return b, nil
}

// Upsert inserts the candidate or fills Unknown fields of its matching record.
// It returns the stored record as it stands after the call.
func (b *Batch) Upsert(ctx context.Context, c Candidate) (models.LocationRecord, models.UpsertOutcome, error) {
	place := models.NewPlace(c.Place.City, c.Place.Country)

	if existing := b.find(c); existing != nil {
		city, country, changed := MergePlace(existing.Place(), place)
		if !changed {
			return *existing, models.UpsertSeen, nil
		}
		if err := b.store.UpdateLocationPlace(ctx, existing.ID, city, country); err != nil {
			return *existing, "", fmt.Errorf("failed to update location %s: %w", existing.ID, err)
		}
		existing.City = city
		existing.Country = country
		existing.UpdatedAt = b.now().UTC()
		return *existing, models.UpsertUpdated, nil
	}

	now := b.now().UTC()
	rec := &models.LocationRecord{
		ID:             uuid.NewString(),
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
		CaptureDate:    c.CaptureDate.UTC(),
		Country:        place.Country,
		City:           place.City,
		SourceFileName: c.FileName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := b.store.InsertLocation(ctx, rec); err != nil {
		return models.LocationRecord{}, "", fmt.Errorf("failed to insert location: %w", err)
	}
	b.index.Insert(rec.Latitude, rec.Longitude, rec)
	return *rec, models.UpsertNew, nil
}

func (b *Batch) find(c Candidate) *models.LocationRecord {
	for _, rec := range b.index.Nearby(c.Latitude, c.Longitude) {
		if Matches(rec, c) {
			return rec
		}
	}
	return nil
}

// Matches reports whether rec is the stored visit for candidate c: same file
// name, both axes within MatchEpsilon, and the same UTC calendar date.
func Matches(rec *models.LocationRecord, c Candidate) bool {
	if rec.SourceFileName != c.FileName {
		return false
	}
	if math.Abs(rec.Latitude-c.Latitude) >= MatchEpsilon || math.Abs(rec.Longitude-c.Longitude) >= MatchEpsilon {
		return false
	}
	return SameDay(rec.CaptureDate, c.CaptureDate)
}

// SameDay reports whether a and b fall on the same UTC calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// MergePlace applies the fill-only rule: a stored field changes only from
// Unknown to a known incoming value. A known stored value is never replaced.
func MergePlace(stored, incoming models.Place) (city, country string, changed bool) {
	city = models.NormalizeName(stored.City)
	country = models.NormalizeName(stored.Country)

	if !models.IsKnownName(city) && models.IsKnownName(incoming.City) {
		city = incoming.City
		changed = true
	}
	if !models.IsKnownName(country) && models.IsKnownName(incoming.Country) {
		country = incoming.Country
		changed = true
	}
	return city, country, changed
}
