// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// Tests in this file mutate the global logger and do not run in parallel.

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"WARNING", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestInit_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Info().Str("city", "Paris").Msg("resolved")

	out := buf.String()
	for _, want := range []string{`"level":"info"`, `"city":"Paris"`, `"message":"resolved"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}
}

func TestInit_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})
	defer Init(DefaultConfig())

	Info().Msg("hidden")
	Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info entry written at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn entry missing")
	}
}

func TestCtx_AddsIDs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithImportID(ctx, "imp-1")
	Ctx(ctx).Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-1"`) {
		t.Errorf("missing request_id in %q", out)
	}
	if !strings.Contains(out, `"import_id":"imp-1"`) {
		t.Errorf("missing import_id in %q", out)
	}
}

func TestGenerateIDs(t *testing.T) {
	if len(GenerateRequestID()) != 36 {
		t.Error("request id should be a full UUID")
	}
	if len(GenerateImportID()) != 8 {
		t.Error("import id should be 8 characters")
	}
	if RequestIDFromContext(context.Background()) != "" {
		t.Error("empty context should have no request id")
	}
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	logger := slog.New(NewSlogHandler()).With("service", "sweeper").WithGroup("cache")
	logger.Warn("restarting", "attempt", 2)

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"service":"sweeper"`, `"cache.attempt":2`, `"message":"restarting"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}
}
