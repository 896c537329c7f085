// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package exiftest builds minimal EXIF-bearing TIFF streams for tests.
package exiftest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// GPSFix is a position written into a test TIFF. Coordinates are absolute
// values; the hemisphere comes from the refs ('N'/'S', 'E'/'W').
type GPSFix struct {
	Lat, Lng       float64
	LatRef, LngRef byte
}

// BuildTIFF assembles a little-endian TIFF stream with an EXIF sub-IFD
// holding DateTimeOriginal and, when gps is set, a GPS sub-IFD. date uses the EXIF
// layout "2006:01:02 15:04:05".
func BuildTIFF(gps *GPSFix, date string) []byte {
	var b bytes.Buffer
	w16 := func(v uint16) { _ = binary.Write(&b, binary.LittleEndian, v) }
	w32 := func(v uint32) { _ = binary.Write(&b, binary.LittleEndian, v) }
	entry := func(tag, typ uint16, count, value uint32) {
		w16(tag)
		w16(typ)
		w32(count)
		w32(value)
	}
	writeDMS := func(v float64) {
		v = math.Abs(v)
		deg := math.Floor(v)
		minutes := math.Floor((v - deg) * 60)
		sec := ((v-deg)*60 - minutes) * 60
		w32(uint32(deg))
		w32(1)
		w32(uint32(minutes))
		w32(1)
		w32(uint32(math.Round(sec * 10000)))
		w32(10000)
	}

	const ifd0 = 8
	n0 := uint32(1)
	if gps != nil {
		n0 = 2
	}
	exifIFD := ifd0 + 2 + 12*n0 + 4
	dateOff := exifIFD + 2 + 12 + 4
	gpsIFD := dateOff + 20
	latOff := gpsIFD + 2 + 12*4 + 4
	lngOff := latOff + 24

	b.WriteString("II")
	w16(42)
	w32(ifd0)

	w16(uint16(n0))
	entry(0x8769, 4, 1, exifIFD)
	if gps != nil {
		entry(0x8825, 4, 1, gpsIFD)
	}
	w32(0)

	w16(1)
	entry(0x9003, 2, 20, dateOff)
	w32(0)
	b.WriteString(date)
	b.WriteByte(0)

	if gps != nil {
		w16(4)
		entry(0x0001, 2, 2, uint32(gps.LatRef))
		entry(0x0002, 5, 3, latOff)
		entry(0x0003, 2, 2, uint32(gps.LngRef))
		entry(0x0004, 5, 3, lngOff)
		w32(0)
		writeDMS(gps.Lat)
		writeDMS(gps.Lng)
	}

	return b.Bytes()
}
