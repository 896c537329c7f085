// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/wayfarer/internal/importer"
)

// HealthStatus is the /health payload.
type HealthStatus struct {
	Status            string             `json:"status"`
	DatabaseConnected bool               `json:"database_connected"`
	GeocodeProvider   string             `json:"geocode_provider"`
	ImportRunning     bool               `json:"import_running"`
	LastImport        *importer.RunStats `json:"last_import,omitempty"`
	Uptime            float64            `json:"uptime_seconds"`
}

// Health reports liveness and dependency status
//
// @Summary Get system health status
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbConnected := h.store != nil && h.store.Ping(ctx) == nil

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	health := HealthStatus{
		Status:            status,
		DatabaseConnected: dbConnected,
		Uptime:            time.Since(h.startTime).Seconds(),
	}
	if h.geocoder != nil {
		health.GeocodeProvider = h.geocoder.ProviderName()
	}
	if h.importer != nil {
		health.ImportRunning = h.importer.IsRunning()
		health.LastImport = h.importer.LastRun()
	}

	NewResponseWriter(w, r).Success(health)
}
