// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/wayfarer/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil middleware factory uses the defaults.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to ALL routes in order
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(router.chiMiddleware.RateLimit())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	h := router.handler
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/photos", func(r chi.Router) {
			r.Post("/import", h.ImportPhotos)
			r.Post("/scan", h.ScanPhotos)
		})

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", h.Locations)
			r.Delete("/", h.ClearLocations)
			r.Get("/stats", h.LocationStats)
		})

		r.Route("/clusters", func(r chi.Router) {
			r.Get("/", h.Clusters)
			r.Get("/city", h.CityClusters)
			r.Get("/country", h.CountryClusters)
		})

		r.Get("/geocode", h.Geocode)
		r.Handle("/metrics", promhttp.Handler())
	})

	// Scrapers conventionally expect /metrics at the root.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
