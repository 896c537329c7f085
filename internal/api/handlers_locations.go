// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/wayfarer/internal/importer"
	"github.com/tomtom215/wayfarer/internal/logging"
)

// ClearResult is the DELETE /locations payload.
type ClearResult struct {
	Deleted int64 `json:"deleted"`
}

// Locations lists stored locations
//
// @Summary List locations
// @Tags Locations
// @Produce json
// @Param from query string false "Earliest capture date"
// @Param to query string false "Latest capture date"
// @Param country query string false "Country name"
// @Success 200 {object} APIResponse{data=[]models.LocationRecord}
// @Router /locations [get]
func (h *Handler) Locations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

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
	rw.SuccessList(records, len(records))
}

// ClearLocations deletes every stored location
//
// @Summary Clear locations
// @Tags Locations
// @Produce json
// @Success 200 {object} APIResponse{data=ClearResult}
// @Router /locations [delete]
func (h *Handler) ClearLocations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var deleted int64
	clearAll := func() error {
		var err error
		deleted, err = h.store.ClearLocations(r.Context())
		return err
	}

	// The clear holds the import slot so no import can snapshot the
	// records it is about to delete.
	var err error
	if h.importer != nil {
		err = h.importer.Exclusive(clearAll)
	} else {
		err = clearAll()
	}
	if errors.Is(err, importer.ErrImportInProgress) {
		rw.Conflict("Cannot clear locations while an import is running")
		return
	}
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	logging.Ctx(r.Context()).Info().Int64("deleted", deleted).Msg("Locations cleared")
	rw.Success(ClearResult{Deleted: deleted})
}

// LocationStats summarizes stored locations
//
// @Summary Location statistics
// @Tags Locations
// @Produce json
// @Success 200 {object} APIResponse{data=models.LocationStats}
// @Router /locations/stats [get]
func (h *Handler) LocationStats(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	stats, err := h.store.GetLocationStats(r.Context())
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	rw.Success(stats)
}
