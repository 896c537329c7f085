// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	importIDKey  contextKey = "import_id"
)

// GenerateRequestID returns a new UUID for an HTTP request.
func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateImportID returns a short id that tags every log line of one import batch.
func GenerateImportID() string {
	return uuid.New().String()[:8]
}

// ContextWithRequestID stores an HTTP request id in ctx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request id, or "".
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithImportID stores an import batch id in ctx.
func ContextWithImportID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, importIDKey, id)
}

// ImportIDFromContext returns the import batch id, or "".
func ImportIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(importIDKey).(string); ok {
		return id
	}
	return ""
}

// Ctx returns the global logger enriched with the request and import ids in ctx.
//
//	logging.Ctx(ctx).Info().Int("new", n).Msg("Import finished")
func Ctx(ctx context.Context) *zerolog.Logger {
	logCtx := With()
	if id := RequestIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("request_id", id)
	}
	if id := ImportIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("import_id", id)
	}
	l := logCtx.Logger()
	return &l
}
