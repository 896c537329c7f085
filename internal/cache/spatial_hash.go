// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package cache

import "math"

// SpatialIndex buckets values into fixed-size lat/lng cells so that
// proximity lookups only scan the neighborhood of a point instead of the
// whole set.
//
// Time Complexity:
//   - Insert: O(1)
//   - Nearby: O(k) where k = entries in the 3x3 neighborhood
type SpatialIndex[T any] struct {
	cells    map[CellKey][]T
	cellSize float64
	size     int
}

// CellKey identifies a grid cell.
type CellKey struct {
	X, Y int
}

// NewSpatialIndex creates an index with cells of cellSizeDeg degrees.
// Queries through Nearby are exact for any tolerance up to cellSizeDeg.
func NewSpatialIndex[T any](cellSizeDeg float64) *SpatialIndex[T] {
	if cellSizeDeg <= 0 {
		cellSizeDeg = 0.001
	}
	return &SpatialIndex[T]{
		cells:    make(map[CellKey][]T),
		cellSize: cellSizeDeg,
	}
}

// CellFor returns the cell containing the point.
func (g *SpatialIndex[T]) CellFor(lat, lng float64) CellKey {
	return CellKey{
		X: int(math.Floor(lng / g.cellSize)),
		Y: int(math.Floor(lat / g.cellSize)),
	}
}

// Insert adds value at the given point.
func (g *SpatialIndex[T]) Insert(lat, lng float64, value T) {
	key := g.CellFor(lat, lng)
	g.cells[key] = append(g.cells[key], value)
	g.size++
}

// Nearby returns every value in the point's cell and its eight neighbors,
// in cell-scan order then insertion order.
func (g *SpatialIndex[T]) Nearby(lat, lng float64) []T {
	center := g.CellFor(lat, lng)
	var out []T
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			out = append(out, g.cells[CellKey{X: center.X + dx, Y: center.Y + dy}]...)
		}
	}
	return out
}

// Size returns the number of inserted values.
func (g *SpatialIndex[T]) Size() int {
	return g.size
}

// NumCells returns the number of non-empty cells.
func (g *SpatialIndex[T]) NumCells() int {
	return len(g.cells)
}
