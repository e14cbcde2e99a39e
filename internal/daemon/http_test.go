// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package daemon

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ManuGH/playctl/internal/domain/playback/controller"
	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/ManuGH/playctl/internal/domain/playback/ports"
	"github.com/ManuGH/playctl/internal/infrastructure/engine/stub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newControllerFor(t *testing.T, eng ports.Engine) *controller.Controller {
	t.Helper()
	ctl, err := controller.New(controller.Config{Engine: eng})
	require.NoError(t, err)
	return ctl
}

func TestRouter_Healthz(t *testing.T) {
	ctl, _ := newStubController(t, stub.Options{})
	rec := httptest.NewRecorder()
	NewRouter(ctl).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_StatusReportsSnapshot(t *testing.T) {
	// The reply is held back so the request stays pending.
	ctl, _ := newStubController(t, stub.Options{ReplyDelay: time.Hour})
	ctl.Initialize(context.Background(), nil, nil, nil)

	rec := httptest.NewRecorder()
	NewRouter(ctl).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var snap controller.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, model.StateInitializing.String(), snap.State)
	assert.Equal(t, 1, snap.Pending)
}

func TestRouter_Metrics(t *testing.T) {
	ctl, _ := newStubController(t, stub.Options{})
	rec := httptest.NewRecorder()
	NewRouter(ctl).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "playctl_")
}

func TestRouter_TracesStatusButNotHealthOrMetrics(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	ctl, _ := newStubController(t, stub.Options{})
	router := NewRouter(ctl)
	for _, path := range []string{"/healthz", "/metrics", "/status"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP GET /status", spans[0].Name())
}

func TestSpanName_HidesQueryValues(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/status?verbose=1", nil)
	assert.Equal(t, "HTTP GET /status?", spanName("", r))
}
