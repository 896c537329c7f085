// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package exif

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	goexif "github.com/rwcarlsen/goexif/exif"
)

var (
	// ErrNoGPS is returned when a photo carries no usable GPS position.
	ErrNoGPS = errors.New("photo has no GPS coordinates")

	// ErrUnreadable is returned when a photo's metadata cannot be decoded.
	ErrUnreadable = errors.New("photo metadata unreadable")
)

// Metadata is the subset of EXIF data location import needs.
type Metadata struct {
	Latitude    float64
	Longitude   float64
	CaptureDate time.Time // zero when the photo has no DateTimeOriginal or DateTime
}

// HasCaptureDate reports whether the photo carried a capture timestamp.
func (m Metadata) HasCaptureDate() bool {
	return !m.CaptureDate.IsZero()
}

// Extract decodes EXIF from a JPEG or TIFF stream.
//
// EXIF timestamps carry no zone; the wall-clock value is interpreted as UTC
// so calendar-day comparisons do not depend on the server's location.
func Extract(r io.Reader) (Metadata, error) {
	x, err := goexif.Decode(r)
	if err != nil && x == nil {
		return Metadata{}, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	lat, lng, err := x.LatLong()
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %w", ErrNoGPS, err)
	}
	if !validCoordinate(lat, lng) {
		return Metadata{}, fmt.Errorf("%w: invalid position %f,%f", ErrNoGPS, lat, lng)
	}

	md := Metadata{Latitude: lat, Longitude: lng}
	if t, err := x.DateTime(); err == nil {
		md.CaptureDate = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	}
	return md, nil
}

// ExtractFile opens path and extracts its metadata.
func ExtractFile(path string) (Metadata, error) {
	f, err := os.Open(path) //nolint:gosec // paths come from the configured photo directory
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()
	return Extract(f)
}

// validCoordinate rejects out-of-range values and the (0, 0) position that
// some cameras write when they have no fix.
func validCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return false
	}
	return lat != 0 || lng != 0
}
