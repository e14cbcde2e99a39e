// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getHistogramCount(t *testing.T, hist prometheus.Observer) uint64 {
	t.Helper()
	h, ok := hist.(prometheus.Histogram)
	if !ok {
		t.Fatalf("observer is not a prometheus.Histogram")
	}
	metric := &dto.Metric{}
	if err := h.Write(metric); err != nil {
		t.Fatalf("write histogram metric: %v", err)
	}
	return metric.GetHistogram().GetSampleCount()
}

func TestSessionSLO_TTFFNormalization(t *testing.T) {
	hist := sessionTTFFSeconds.WithLabelValues("unknown", "ok")
	before := getHistogramCount(t, hist)
	ObserveSessionTTFF("custom_mode", "OK ", 1.25)
	after := getHistogramCount(t, hist)
	if after != before+1 {
		t.Fatalf("expected TTFF sample count +1, got before=%d after=%d", before, after)
	}
}

func TestSessionSLO_RebufferSeverity(t *testing.T) {
	minorBefore := counterValue(t, sessionRebufferTotal.WithLabelValues("minor"))
	majorBefore := counterValue(t, sessionRebufferTotal.WithLabelValues("major"))

	IncSessionRebuffer(0.4)
	IncSessionRebuffer(2.0)
	IncSessionRebuffer(7)

	if got := counterValue(t, sessionRebufferTotal.WithLabelValues("minor")); got != minorBefore+1 {
		t.Fatalf("expected minor rebuffer +1, got before=%v after=%v", minorBefore, got)
	}
	if got := counterValue(t, sessionRebufferTotal.WithLabelValues("major")); got != majorBefore+2 {
		t.Fatalf("expected major rebuffer +2, got before=%v after=%v", majorBefore, got)
	}
}

func TestSessionSLO_ErrorCodeNormalization(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{code: 401, want: "401"},
		{code: 503, want: "503"},
		{code: 101, want: "UNKNOWN"},
		{code: 0, want: "UNKNOWN"},
	}
	for _, tt := range tests {
		before := counterValue(t, sessionErrorTotal.WithLabelValues("seek", tt.want))
		IncSessionError("seek", tt.code)
		if got := counterValue(t, sessionErrorTotal.WithLabelValues("seek", tt.want)); got != before+1 {
			t.Fatalf("code %d: expected %s +1, got before=%v after=%v", tt.code, tt.want, before, got)
		}
	}
}
