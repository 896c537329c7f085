// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package clustering

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/golang/geo/s2"

	"github.com/tomtom215/wayfarer/internal/cache"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/models"
)

const earthRadiusKm = 6371.0088

// Aggregate clusters locations at the detail level for a map zoom.
func Aggregate(locations []models.LocationRecord, zoom float64) []models.ClusterAggregate {
	return AggregateLevel(locations, models.DetailLevelForZoom(zoom))
}

// AggregateLevel clusters locations at an explicit detail level.
//
// The sum of Count across the result always equals len(locations). Results
// are ordered by Count descending, then ID. Identical input yields identical
// IDs and order.
//
// Country and city names are grouped by their slug, so case and punctuation
// differences ("St. Louis", "st louis") fall into one cluster labeled with
// the first spelling encountered.
func AggregateLevel(locations []models.LocationRecord, level models.DetailLevel) []models.ClusterAggregate {
	start := time.Now()

	var out []models.ClusterAggregate
	switch level {
	case models.DetailCountry:
		out = aggregateByName(locations, level, countryKey)
	case models.DetailCity:
		out = aggregateByName(locations, level, cityKey)
	case models.DetailArea, models.DetailPoint:
		out = aggregateByCell(locations, level)
	default:
		out = aggregateByCell(locations, models.DetailPoint)
	}

	sortAggregates(out)

	metrics.ClusterDuration.WithLabelValues(string(level)).Observe(time.Since(start).Seconds())
	logging.Debug().
		Str("detail_level", string(level)).
		Int("locations", len(locations)).
		Int("clusters", len(out)).
		Msg("Aggregated locations")

	return out
}

// nameKeyFunc returns the grouping key and id slug for a record, or ok=false
// when the record must be emitted on its own.
type nameKeyFunc func(rec *models.LocationRecord) (key string, ok bool)

func countryKey(rec *models.LocationRecord) (string, bool) {
	if !models.IsKnownName(rec.Country) {
		return "", false
	}
	return Slug("country", rec.Country), true
}

func cityKey(rec *models.LocationRecord) (string, bool) {
	if !models.IsKnownName(rec.City) {
		return "", false
	}
	return Slug("city", rec.City, rec.Country), true
}

// group accumulates the members of one aggregate in input order.
type group struct {
	id      string
	members []*models.LocationRecord
}

func aggregateByName(locations []models.LocationRecord, level models.DetailLevel, keyFn nameKeyFunc) []models.ClusterAggregate {
	groups := make(map[string]*group)
	var order []*group
	var out []models.ClusterAggregate

	for i := range locations {
		rec := &locations[i]
		key, ok := keyFn(rec)
		if !ok {
			out = append(out, individual(rec, i))
			continue
		}
		g, exists := groups[key]
		if !exists {
			g = &group{id: key}
			groups[key] = g
			order = append(order, g)
		}
		g.members = append(g.members, rec)
	}

	for _, g := range order {
		agg := summarize(g.id, g.members, level)
		first := g.members[0]
		agg.Country = first.Country
		if level == models.DetailCountry {
			agg.City = citiesLabel(g.members)
		} else {
			agg.City = first.City
		}
		out = append(out, agg)
	}
	return out
}

type cellKey struct {
	x, y int64
}

func aggregateByCell(locations []models.LocationRecord, level models.DetailLevel) []models.ClusterAggregate {
	step := level.GridStep()
	groups := make(map[cellKey]*group)
	var order []*group

	for i := range locations {
		rec := &locations[i]
		key := cellKey{
			x: int64(math.Round(rec.Latitude / step)),
			y: int64(math.Round(rec.Longitude / step)),
		}
		g, exists := groups[key]
		if !exists {
			g = &group{id: Slug(string(level), formatCoord(rec.Latitude, step), formatCoord(rec.Longitude, step))}
			groups[key] = g
			order = append(order, g)
		}
		g.members = append(g.members, rec)
	}

	out := make([]models.ClusterAggregate, 0, len(order))
	for _, g := range order {
		agg := summarize(g.id, g.members, level)
		agg.City = majority(g.members, func(r *models.LocationRecord) string { return r.City })
		agg.Country = majority(g.members, func(r *models.LocationRecord) string { return r.Country })
		out = append(out, agg)
	}
	return out
}

// individual emits a single record as its own point-level aggregate.
func individual(rec *models.LocationRecord, index int) models.ClusterAggregate {
	var id string
	if rec.ID != "" {
		id = Slug("point", rec.ID)
	} else {
		id = Slug("point", formatCoord(rec.Latitude, models.PointGridStep),
			formatCoord(rec.Longitude, models.PointGridStep), strconv.Itoa(index))
	}
	agg := summarize(id, []*models.LocationRecord{rec}, models.DetailPoint)
	agg.City = models.NormalizeName(rec.City)
	agg.Country = models.NormalizeName(rec.Country)
	return agg
}

// summarize computes the centroid, radius, count and dates of a group.
func summarize(id string, members []*models.LocationRecord, level models.DetailLevel) models.ClusterAggregate {
	var sumLat, sumLng float64
	dates := make([]time.Time, 0, len(members))
	for _, m := range members {
		sumLat += m.Latitude
		sumLng += m.Longitude
		if !m.CaptureDate.IsZero() {
			dates = append(dates, m.CaptureDate)
		}
	}
	n := float64(len(members))
	lat, lng := sumLat/n, sumLng/n

	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	agg := models.ClusterAggregate{
		ID:          id,
		Latitude:    lat,
		Longitude:   lng,
		Count:       len(members),
		DetailLevel: level,
		RadiusKm:    radiusKm(lat, lng, members),
	}
	if len(dates) > 0 {
		agg.CaptureDate = dates[0]
		if len(dates) > models.MaxVisitDates {
			dates = dates[:models.MaxVisitDates]
		}
		agg.VisitDates = dates
	} else {
		agg.VisitDates = []time.Time{}
	}
	return agg
}

func radiusKm(lat, lng float64, members []*models.LocationRecord) float64 {
	if len(members) < 2 {
		return 0
	}
	center := s2.LatLngFromDegrees(lat, lng)
	maxKm := 0.0
	for _, m := range members {
		d := center.Distance(s2.LatLngFromDegrees(m.Latitude, m.Longitude)).Radians() * earthRadiusKm
		if d > maxKm {
			maxKm = d
		}
	}
	return maxKm
}

// majority returns the most frequent normalized value; ties go to the value
// seen first.
func majority(members []*models.LocationRecord, field func(*models.LocationRecord) string) string {
	counts := make(map[string]int)
	var order []string
	for _, m := range members {
		v := models.NormalizeName(field(m))
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	best := ""
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

// citiesLabel renders the distinct known city count for a country cluster.
func citiesLabel(members []*models.LocationRecord) string {
	seen := make(map[string]struct{})
	for _, m := range members {
		if models.IsKnownName(m.City) {
			seen[slugPart(m.City)] = struct{}{}
		}
	}
	if len(seen) == 1 {
		return "1 city"
	}
	return strconv.Itoa(len(seen)) + " cities"
}

// formatCoord rounds v to the grid step and prints it with the step's precision.
func formatCoord(v, step float64) string {
	decimals := 2
	if step >= 1 {
		decimals = 0
	} else if step < 0.01 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	return strconv.FormatFloat(cache.Quantize(v, step), 'f', decimals, 64)
}

func sortAggregates(out []models.ClusterAggregate) {
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ID < out[j].ID
	})
}
