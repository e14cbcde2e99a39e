// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package telemetry

import (
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestRequestAttributes(t *testing.T) {
	tests := []struct {
		name    string
		state   string
		wantLen int
	}{
		{name: "with state", state: "PLAYING", wantLen: 4},
		{name: "without state", state: "", wantLen: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := RequestAttributes("seek", 42, 2, tt.state)
			if len(attrs) != tt.wantLen {
				t.Fatalf("Expected %d attributes, got %d", tt.wantLen, len(attrs))
			}
			verifyAttribute(t, attrs, RequestKindKey, "seek")
			verifyIntAttribute(t, attrs, RequestIDKey, 42)
			verifyIntAttribute(t, attrs, RequestExtraKey, 2)
			if tt.state != "" {
				verifyAttribute(t, attrs, StateKey, tt.state)
			}
		})
	}
}

func TestOutcomeAttributes(t *testing.T) {
	attrs := OutcomeAttributes(false, 409, "warning")
	verifyAttribute(t, attrs, ResultKey, "failure")
	verifyIntAttribute(t, attrs, CodeKey, 409)
	verifyAttribute(t, attrs, SeverityKey, "warning")

	attrs = OutcomeAttributes(true, 0, "info")
	verifyAttribute(t, attrs, ResultKey, "success")
}

func TestErrorAttributes(t *testing.T) {
	attrs := ErrorAttributes(errors.New("test error"), "engine_unavailable")
	if len(attrs) != 2 {
		t.Fatalf("Expected 2 attributes, got %d", len(attrs))
	}
	verifyBoolAttribute(t, attrs, ErrorKey, true)
	verifyAttribute(t, attrs, ErrorTypeKey, "engine_unavailable")
}

// Helper functions for attribute verification

func find(attrs []attribute.KeyValue, key string) (attribute.KeyValue, bool) {
	for _, attr := range attrs {
		if string(attr.Key) == key {
			return attr, true
		}
	}
	return attribute.KeyValue{}, false
}

func verifyAttribute(t *testing.T, attrs []attribute.KeyValue, key, expectedValue string) {
	t.Helper()
	attr, ok := find(attrs, key)
	if !ok {
		t.Errorf("Attribute %s not found", key)
		return
	}
	if attr.Value.AsString() != expectedValue {
		t.Errorf("Expected %s=%s, got %s", key, expectedValue, attr.Value.AsString())
	}
}

func verifyIntAttribute(t *testing.T, attrs []attribute.KeyValue, key string, expectedValue int64) {
	t.Helper()
	attr, ok := find(attrs, key)
	if !ok {
		t.Errorf("Attribute %s not found", key)
		return
	}
	if attr.Value.AsInt64() != expectedValue {
		t.Errorf("Expected %s=%d, got %d", key, expectedValue, attr.Value.AsInt64())
	}
}

func verifyBoolAttribute(t *testing.T, attrs []attribute.KeyValue, key string, expectedValue bool) {
	t.Helper()
	attr, ok := find(attrs, key)
	if !ok {
		t.Errorf("Attribute %s not found", key)
		return
	}
	if attr.Value.AsBool() != expectedValue {
		t.Errorf("Expected %s=%t, got %t", key, expectedValue, attr.Value.AsBool())
	}
}
