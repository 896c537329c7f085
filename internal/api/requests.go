// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/wayfarer/internal/importer"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/validation"
)

// dateOnlyLayout is accepted alongside RFC3339 for from/to parameters.
const dateOnlyLayout = "2006-01-02"

// scanRequest is the JSON body of POST /photos/scan.
type scanRequest struct {
	Directory string `json:"directory" validate:"photodir"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// clusterRequest holds the validated /clusters query.
type clusterRequest struct {
	Zoom float64 `query:"zoom" validate:"min=0,max=22"`
}

// geocodeRequest holds the validated /geocode query.
type geocodeRequest struct {
	Lat float64 `query:"lat" validate:"latitude"`
	Lng float64 `query:"lng" validate:"longitude"`
}

// parseDate parses an RFC3339 timestamp or a YYYY-MM-DD date in UTC. A
// date-only upper bound is moved to the last instant of that day so the
// range stays inclusive of the whole day.
func parseDate(name, value string, upper bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: expected RFC3339 or YYYY-MM-DD", name)
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// parseDateRange parses and validates a from/to pair.
func parseDateRange(from, to string) (validation.DateRange, *validation.RequestValidationError, error) {
	var dr validation.DateRange
	var err error
	if dr.From, err = parseDate("from", from, false); err != nil {
		return dr, nil, err
	}
	if dr.To, err = parseDate("to", to, true); err != nil {
		return dr, nil, err
	}
	if verr := validation.ValidateStruct(&dr); verr != nil {
		return dr, verr, nil
	}
	return dr, nil, nil
}

// importOptions converts a validated date range into importer options.
func importOptions(dr validation.DateRange) importer.Options {
	return importer.Options{From: dr.From, To: dr.To}
}

// locationFilter converts a validated date range and country into a store filter.
func locationFilter(dr validation.DateRange, country string) models.LocationFilter {
	return models.LocationFilter{
		From:    dr.From,
		To:      dr.To,
		Country: strings.TrimSpace(country),
	}
}

// parseFloatParam parses a required float query parameter.
func parseFloatParam(r *http.Request, key string) (float64, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s must be a finite number", key)
	}
	return f, nil
}

// writeValidationError writes a VALIDATION_ERROR response for verr.
func writeValidationError(rw *ResponseWriter, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	rw.ValidationError(apiErr.Message, apiErr.Details)
}
