// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package controller

import (
	"testing"
	"time"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/stretchr/testify/assert"
)

func TestSLOTracker_TTFFAndStalls(t *testing.T) {
	var s sloTracker
	mode := model.StartModeImmediate

	s.startCompleted(time.Now().Add(-time.Second), true, mode)
	assert.False(t, s.startAdmitted.IsZero())

	// Initial buffering is not a stall.
	s.transition(model.StateContentPreparedForPlayout, model.StateBuffering, mode)
	assert.True(t, s.stalledAt.IsZero())

	s.transition(model.StateBuffering, model.StatePlaying, mode)
	assert.True(t, s.startAdmitted.IsZero())

	s.transition(model.StatePlaying, model.StateBuffering, mode)
	assert.False(t, s.stalledAt.IsZero())
	s.transition(model.StateBuffering, model.StatePlaying, mode)
	assert.True(t, s.stalledAt.IsZero())
}

func TestSLOTracker_StopAbortsArmedClock(t *testing.T) {
	var s sloTracker
	s.startCompleted(time.Now(), true, model.StartModeOnDemand)
	s.stopped(model.StartModeOnDemand)
	assert.True(t, s.startAdmitted.IsZero())

	s.startCompleted(time.Now(), false, model.StartModeOnDemand)
	assert.True(t, s.startAdmitted.IsZero())
}
