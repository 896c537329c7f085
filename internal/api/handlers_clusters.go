// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"net/http"

	"github.com/tomtom215/wayfarer/internal/clustering"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/validation"
)

// ClusterResponse is the payload of the cluster endpoints.
type ClusterResponse struct {
	DetailLevel    models.DetailLevel        `json:"detail_level"`
	Zoom           *float64                  `json:"zoom,omitempty"`
	TotalLocations int                       `json:"total_locations"`
	Clusters       []models.ClusterAggregate `json:"clusters"`
}

// Clusters aggregates stored locations for a map zoom
//
// @Summary Zoom-based clusters
// @Description zoom <= 3 groups by country, <= 6 by city, <= 10 by ~5 km cells, otherwise ~1 km cells.
// @Tags Clusters
// @Produce json
// @Param zoom query number true "Map zoom (0-22)"
// @Success 200 {object} APIResponse{data=ClusterResponse}
// @Router /clusters [get]
func (h *Handler) Clusters(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	zoom, err := parseFloatParam(r, "zoom")
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	req := clusterRequest{Zoom: zoom}
	if verr := validation.ValidateStruct(&req); verr != nil {
		writeValidationError(rw, verr)
		return
	}

	h.writeClusters(rw, r, models.DetailLevelForZoom(req.Zoom), &req.Zoom)
}

// CityClusters aggregates stored locations by city
//
// @Summary City clusters
// @Tags Clusters
// @Produce json
// @Success 200 {object} APIResponse{data=ClusterResponse}
// @Router /clusters/city [get]
func (h *Handler) CityClusters(w http.ResponseWriter, r *http.Request) {
	h.writeClusters(NewResponseWriter(w, r), r, models.DetailCity, nil)
}

// CountryClusters aggregates stored locations by country
//
// @Summary Country clusters
// @Tags Clusters
// @Produce json
// @Success 200 {object} APIResponse{data=ClusterResponse}
// @Router /clusters/country [get]
func (h *Handler) CountryClusters(w http.ResponseWriter, r *http.Request) {
	h.writeClusters(NewResponseWriter(w, r), r, models.DetailCountry, nil)
}

// writeClusters loads locations matching the request's from/to/country and
// aggregates them at level.
func (h *Handler) writeClusters(rw *ResponseWriter, r *http.Request, level models.DetailLevel, zoom *float64) {
	q := r.URL.Query()
	dr, verr, err := parseDateRange(q.Get("from"), q.Get("to"))
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr != nil {
		writeValidationError(rw, verr)
		return
	}

	records, err := h.store.ListLocations(r.Context(), locationFilter(dr, q.Get("country")))
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	clusters := clustering.AggregateLevel(records, level)
	if clusters == nil {
		clusters = []models.ClusterAggregate{}
	}

	rw.SuccessList(ClusterResponse{
		DetailLevel:    level,
		Zoom:           zoom,
		TotalLocations: len(records),
		Clusters:       clusters,
	}, len(clusters))
}
