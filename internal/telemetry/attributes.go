// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
)

// Common attribute keys for consistent tracing across the application.
const (
	// Request attributes
	RequestKindKey  = "playback.request.kind"
	RequestIDKey    = "playback.request.id"
	RequestExtraKey = "playback.request.extra_args"

	// Outcome attributes
	ResultKey   = "playback.result"
	CodeKey     = "playback.code"
	SeverityKey = "playback.severity"

	// State attributes
	StateKey = "playback.state"

	// Error attributes
	ErrorKey     = "error"
	ErrorTypeKey = "error.type"
)

// RequestAttributes creates span attributes for an admitted request.
func RequestAttributes(kind string, id uint64, extraArgs int, state string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String(RequestKindKey, kind),
		attribute.Int64(RequestIDKey, int64(id)),
		attribute.Int(RequestExtraKey, extraArgs),
	}
	if state != "" {
		attrs = append(attrs, attribute.String(StateKey, state))
	}
	return attrs
}

// OutcomeAttributes creates span attributes for a delivered outcome.
func OutcomeAttributes(success bool, code int, severity string) []attribute.KeyValue {
	result := "success"
	if !success {
		result = "failure"
	}
	return []attribute.KeyValue{
		attribute.String(ResultKey, result),
		attribute.Int(CodeKey, code),
		attribute.String(SeverityKey, severity),
	}
}

// ErrorAttributes creates error-related span attributes.
func ErrorAttributes(_ error, errorType string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Bool(ErrorKey, true),
		attribute.String(ErrorTypeKey, errorType),
	}
}
