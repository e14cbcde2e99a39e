// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package daemon

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ManuGH/playctl/internal/domain/playback/controller"
	xglog "github.com/ManuGH/playctl/internal/log"
)

// NewRouter exposes metrics, liveness and the controller snapshot.
func NewRouter(ctl *controller.Controller) http.Handler {
	r := chi.NewRouter()
	r.Use(otelDiagnostics)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/status", statusHandler(ctl))
	return r
}

func statusHandler(ctl *controller.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ctl.Snapshot()); err != nil {
			logger := xglog.WithComponentFromContext(r.Context(), "daemon.http")
			logger.Error().Err(err).Msg("failed to encode status")
		}
	}
}
