// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package controller

import (
	"time"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/ManuGH/playctl/internal/metrics"
)

// sloTracker derives session SLO samples from settled outcomes. It is only
// touched from the delivery context.
type sloTracker struct {
	startAdmitted time.Time
	stalledAt     time.Time
}

// startCompleted arms the TTFF clock on a successful Start; a failed Start
// is recorded immediately.
func (s *sloTracker) startCompleted(admitted time.Time, ok bool, mode model.StartMode) {
	if ok {
		s.startAdmitted = admitted
		return
	}
	metrics.ObserveSessionTTFF(string(mode), metrics.SessionOutcomeFailed, time.Since(admitted).Seconds())
}

func (s *sloTracker) transition(from, to model.PlayerState, mode model.StartMode) {
	now := time.Now()
	switch {
	case to == model.StatePlaying && !s.startAdmitted.IsZero():
		metrics.ObserveSessionTTFF(string(mode), metrics.SessionOutcomeOK, now.Sub(s.startAdmitted).Seconds())
		s.startAdmitted = time.Time{}
	case to == model.StatePlaying && !s.stalledAt.IsZero():
		metrics.IncSessionRebuffer(now.Sub(s.stalledAt).Seconds())
		s.stalledAt = time.Time{}
	case from == model.StatePlaying && to == model.StateBuffering:
		s.stalledAt = now
	}
}

// stopped closes an armed TTFF clock as aborted.
func (s *sloTracker) stopped(mode model.StartMode) {
	if !s.startAdmitted.IsZero() {
		metrics.ObserveSessionTTFF(string(mode), metrics.SessionOutcomeAborted, time.Since(s.startAdmitted).Seconds())
	}
	s.startAdmitted = time.Time{}
	s.stalledAt = time.Time{}
}
