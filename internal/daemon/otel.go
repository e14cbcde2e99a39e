// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package daemon

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const diagnosticsOperation = "playctl.diagnostics"

// otelDiagnostics traces diagnostics requests with the global provider.
// Health checks and scrapes are filtered out.
func otelDiagnostics(next http.Handler) http.Handler {
	return otelhttp.NewHandler(
		next,
		diagnosticsOperation,
		otelhttp.WithTracerProvider(otel.GetTracerProvider()),
		otelhttp.WithSpanOptions(trace.WithAttributes(semconv.ServiceName("playctl"))),
		otelhttp.WithFilter(shouldTrace),
		otelhttp.WithSpanNameFormatter(spanName),
	)
}

func shouldTrace(r *http.Request) bool {
	switch r.URL.Path {
	case "/healthz", "/metrics":
		return false
	}
	return true
}

// spanName renders "HTTP {METHOD} {PATH}"; query values are never exposed.
func spanName(_ string, r *http.Request) string {
	name := "HTTP " + r.Method + " " + r.URL.Path
	if r.URL.RawQuery != "" {
		return name + "?"
	}
	return name
}
