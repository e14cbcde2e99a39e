// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playctl_requests_total",
		Help: "Requests seen by the controller by kind and admission outcome (admitted, rejected, submit_failed)",
	}, []string{"kind", "outcome"})

	RequestResultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playctl_request_results_total",
		Help: "Resolved requests by kind and result",
	}, []string{"kind", "result"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "playctl_request_duration_seconds",
		Help:    "Time from admission to delivery of a request outcome",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"kind"})

	PendingRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "playctl_pending_requests",
		Help: "Requests admitted and not yet resolved",
	})

	UnmatchedResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playctl_unmatched_resolutions_total",
		Help: "Engine completions that matched no pending request",
	}, []string{"kind"})

	EventsDeliveredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playctl_events_delivered_total",
		Help: "Events delivered to the host by type",
	}, []string{"type"})

	EventQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "playctl_event_queue_depth",
		Help: "Items waiting in the event queue",
	})

	StateTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playctl_state_transitions_total",
		Help: "Committed session state transitions",
	}, []string{"from", "to"})

	DroppedNoticesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playctl_dropped_notices_total",
		Help: "Engine messages dropped by the router by reason",
	}, []string{"reason"})
)

// IncRequest records an admission decision.
func IncRequest(kind, outcome string) {
	RequestsTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveResult records a resolved request outcome.
func ObserveResult(kind, result string, seconds float64) {
	RequestResultsTotal.WithLabelValues(kind, result).Inc()
	if seconds >= 0 {
		RequestDuration.WithLabelValues(kind).Observe(seconds)
	}
}

// SetPending publishes the pending-request count.
func SetPending(n int) {
	PendingRequests.Set(float64(n))
}

// IncUnmatched records a completion for an unknown request id.
func IncUnmatched(kind string) {
	UnmatchedResolutionsTotal.WithLabelValues(kind).Inc()
}

// IncDelivered records a delivered event.
func IncDelivered(eventType string) {
	EventsDeliveredTotal.WithLabelValues(eventType).Inc()
}

// SetQueueDepth publishes the current event queue depth.
func SetQueueDepth(n int) {
	EventQueueDepth.Set(float64(n))
}

// RecordTransition records a committed state transition.
func RecordTransition(from, to string) {
	StateTransitionsTotal.WithLabelValues(from, to).Inc()
}

// IncDroppedNotice records a dropped Engine message with a concrete reason.
func IncDroppedNotice(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	DroppedNoticesTotal.WithLabelValues(reason).Inc()
}
