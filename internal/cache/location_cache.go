// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package cache

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/tomtom215/wayfarer/internal/models"
)

// Defaults for LocationCacheConfig zero values.
const (
	DefaultLocationTTL        = 24 * time.Hour
	DefaultLocationMaxEntries = 10000
	DefaultKeyStep            = 0.01
)

// LocationCacheConfig configures a LocationCache.
type LocationCacheConfig struct {
	// TTL is how long an entry stays valid after it was cached.
	TTL time.Duration

	// MaxEntries caps the number of stored entries. Oldest entries are evicted first.
	MaxEntries int

	// KeyStep is the quantization step in degrees applied to both axes.
	KeyStep float64

	// Now overrides the clock. Used by tests.
	Now func() time.Time
}

// LocationCacheStats tracks cache activity since construction.
type LocationCacheStats struct {
	Hits        int64 `json:"hits"`
	Misses      int64 `json:"misses"`
	Expirations int64 `json:"expirations"`
	Evictions   int64 `json:"evictions"`
	Entries     int   `json:"entries"`
}

// LocationCache maps quantized coordinates to resolved places.
type LocationCache struct {
	mu         sync.Mutex
	entries    *timeHeap[models.Place]
	ttl        time.Duration
	maxEntries int
	step       float64
	decimals   int
	now        func() time.Time
	stats      LocationCacheStats
}

// NewLocationCache creates an empty cache, applying defaults for zero config values.
func NewLocationCache(cfg LocationCacheConfig) *LocationCache {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultLocationTTL
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultLocationMaxEntries
	}
	if cfg.KeyStep <= 0 {
		cfg.KeyStep = DefaultKeyStep
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &LocationCache{
		entries:    newTimeHeap[models.Place](),
		ttl:        cfg.TTL,
		maxEntries: cfg.MaxEntries,
		step:       cfg.KeyStep,
		decimals:   stepDecimals(cfg.KeyStep),
		now:        cfg.Now,
	}
}

// Key returns the cache key for a coordinate.
func (c *LocationCache) Key(lat, lng float64) string {
	return formatKey(lat, lng, c.step, c.decimals)
}

// Get returns the cached place for the coordinate's cell.
// An expired entry is removed and reported as a miss.
func (c *LocationCache) Get(lat, lng float64) (models.Place, bool) {
	key := c.Key(lat, lng)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries.get(key)
	if !ok {
		c.stats.Misses++
		return models.Place{}, false
	}

	if c.now().Sub(entry.cachedAt) > c.ttl {
		c.entries.remove(key)
		c.stats.Expirations++
		c.stats.Misses++
		return models.Place{}, false
	}

	c.stats.Hits++
	return entry.value, true
}

// Put stores place for the coordinate's cell with a fresh timestamp.
// Fully Unknown places are not stored; Put reports whether it stored the entry.
func (c *LocationCache) Put(lat, lng float64, place models.Place) bool {
	if place.IsUnknown() {
		return false
	}
	place = models.NewPlace(place.City, place.Country)
	key := c.Key(lat, lng)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.put(key, place, c.now())
	for c.entries.len() > c.maxEntries {
		c.entries.popOldest()
		c.stats.Evictions++
	}
	return true
}

// Sweep removes every expired entry and returns how many were removed.
func (c *LocationCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Entries cached at exactly now-ttl are still valid.
	n := c.entries.popBefore(c.now().Add(-c.ttl))
	c.stats.Expirations += int64(n)
	return n
}

// Len returns the number of physically stored entries, expired or not.
func (c *LocationCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.len()
}

// Clear drops every entry. Stats are kept.
func (c *LocationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.clear()
}

// Stats returns a snapshot of cache activity.
func (c *LocationCache) Stats() LocationCacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Entries = c.entries.len()
	return s
}

// MaxEntries returns the configured entry cap.
func (c *LocationCache) MaxEntries() int {
	return c.maxEntries
}

// QuantizeKey rounds both axes to step and joins them as "lat,lng".
func QuantizeKey(lat, lng, step float64) string {
	return formatKey(lat, lng, step, stepDecimals(step))
}

func formatKey(lat, lng, step float64, decimals int) string {
	return strconv.FormatFloat(Quantize(lat, step), 'f', decimals, 64) + "," +
		strconv.FormatFloat(Quantize(lng, step), 'f', decimals, 64)
}

// Quantize rounds v to the nearest multiple of step.
func Quantize(v, step float64) float64 {
	q := math.Round(v/step) * step
	if q == 0 {
		return 0 // drop negative zero
	}
	return q
}

// stepDecimals returns how many fractional digits are needed to print multiples of step.
func stepDecimals(step float64) int {
	d := int(math.Ceil(-math.Log10(step) - 1e-9))
	if d < 0 {
		return 0
	}
	return d
}
