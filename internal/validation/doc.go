// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package validation wraps go-playground/validator v10 with a process-wide
// singleton and translates field errors into the API's VALIDATION_ERROR
// envelope.
//
// Field names in messages are the request's JSON or query names, not the Go
// struct field names:
//
//	type geocodeRequest struct {
//	    Lat float64 `json:"lat" validate:"latitude"`
//	    Lng float64 `json:"lng" validate:"longitude"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	}
//
// Custom tags:
//   - photodir: a relative directory inside the photo root (no "..", not absolute)
//   - daterange: on a struct with From/To *time.Time fields, From must not be after To
package validation
