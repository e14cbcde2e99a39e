// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package metrics

import (
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	sessionStartModeImmediate = "immediate"
	sessionStartModeOnDemand  = "on_demand"

	SessionOutcomeOK      = "ok"
	SessionOutcomeFailed  = "failed"
	SessionOutcomeAborted = "aborted"

	sessionRebufferMinor = "minor"
	sessionRebufferMajor = "major"

	// Stalls at or above this many seconds count as major rebuffers.
	majorRebufferSeconds = 2.0

	sessionCodeUnknown = "UNKNOWN"
)

var (
	sessionTTFFSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "playctl_session_ttff_seconds",
		Help:    "Time from Start admission until the session first reaches Playing",
		Buckets: []float64{0.25, 0.5, 1, 2, 3, 4, 5, 8, 13, 20, 30, 45, 60},
	}, []string{"start_mode", "outcome"})

	sessionRebufferTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playctl_session_rebuffer_total",
		Help: "Playing to Buffering stalls by severity",
	}, []string{"severity"})

	sessionErrorTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playctl_session_error_total",
		Help: "Failed request outcomes by request kind and code",
	}, []string{"kind", "code"})
)

// ObserveSessionTTFF records time-to-first-frame with low-cardinality labels.
func ObserveSessionTTFF(startMode, outcome string, seconds float64) {
	sessionTTFFSeconds.WithLabelValues(
		normalizeStartModeLabel(startMode),
		normalizeSessionOutcomeLabel(outcome),
	).Observe(seconds)
}

// IncSessionRebuffer classifies a stall by its duration and counts it.
func IncSessionRebuffer(stallSeconds float64) {
	severity := sessionRebufferMinor
	if stallSeconds >= majorRebufferSeconds {
		severity = sessionRebufferMajor
	}
	sessionRebufferTotal.WithLabelValues(severity).Inc()
}

// IncSessionError counts a failed outcome. Codes outside the failure ranges
// collapse to UNKNOWN.
func IncSessionError(kind string, code int) {
	sessionErrorTotal.WithLabelValues(kind, normalizeSessionCodeLabel(code)).Inc()
}

func normalizeStartModeLabel(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case sessionStartModeImmediate, sessionStartModeOnDemand:
		return strings.ToLower(strings.TrimSpace(mode))
	default:
		return "unknown"
	}
}

func normalizeSessionOutcomeLabel(outcome string) string {
	switch strings.ToLower(strings.TrimSpace(outcome)) {
	case SessionOutcomeOK, SessionOutcomeFailed, SessionOutcomeAborted:
		return strings.ToLower(strings.TrimSpace(outcome))
	default:
		return "unknown"
	}
}

func normalizeSessionCodeLabel(code int) string {
	if code >= 400 && code < 600 {
		return strconv.Itoa(code)
	}
	return sessionCodeUnknown
}
