// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"net/http"

	"github.com/tomtom215/wayfarer/internal/geocode"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/validation"
)

// GeocodeResult is the /geocode payload.
type GeocodeResult struct {
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Place     models.Place    `json:"place"`
	Outcome   geocode.Outcome `json:"outcome"`
	Provider  string          `json:"provider"`
}

// Geocode resolves one coordinate
//
// @Summary Reverse geocode a coordinate
// @Description Never fails for a valid coordinate; unresolvable positions return Unknown.
// @Tags Geocode
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} APIResponse{data=GeocodeResult}
// @Router /geocode [get]
func (h *Handler) Geocode(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	lat, err := parseFloatParam(r, "lat")
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	lng, err := parseFloatParam(r, "lng")
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	req := geocodeRequest{Lat: lat, Lng: lng}
	if verr := validation.ValidateStruct(&req); verr != nil {
		writeValidationError(rw, verr)
		return
	}

	res := h.geocoder.ResolveDetailed(r.Context(), req.Lat, req.Lng)
	rw.Success(GeocodeResult{
		Latitude:  req.Lat,
		Longitude: req.Lng,
		Place:     res.Place,
		Outcome:   res.Outcome,
		Provider:  h.geocoder.ProviderName(),
	})
}
