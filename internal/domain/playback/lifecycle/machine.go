// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package lifecycle

import (
	"fmt"
	"sync"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
	xglog "github.com/ManuGH/playctl/internal/log"
	"github.com/ManuGH/playctl/internal/metrics"
	"github.com/rs/zerolog"
)

// Hooks are side effects bound to specific transitions. They run after the
// state has been committed and outside the machine lock.
type Hooks struct {
	// OnContentSession fires when the content-session flag flips: true on
	// entering PreparingContentForPlayout, false on entering Stopping or when
	// content preparation fails.
	OnContentSession func(active bool)
	// OnCorePrepared fires on entering CorePrepared; session-scoped
	// configuration is pushed to the Engine from here.
	OnCorePrepared func()
}

// Machine holds the single current PlayerState.
type Machine struct {
	mu            sync.Mutex
	state         model.PlayerState
	contentActive bool
	hooks         Hooks
	logger        zerolog.Logger
}

// NewMachine returns a machine in StateUninitialized.
func NewMachine(hooks Hooks) *Machine {
	return &Machine{
		state:  model.StateUninitialized,
		hooks:  hooks,
		logger: xglog.WithComponent("playback.lifecycle"),
	}
}

// State returns the current state.
func (m *Machine) State() model.PlayerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// ContentSessionActive reports the derived content-session flag.
func (m *Machine) ContentSessionActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contentActive
}

// Fire applies tr to the current state. Forbidden triggers leave the state
// untouched and return an error wrapping ErrTransitionForbidden or ErrTerminal.
func (m *Machine) Fire(tr Trigger) (Transition, error) {
	m.mu.Lock()
	from := m.state
	t, ok := TransitionFor(from, tr)
	if !ok {
		m.mu.Unlock()
		d := DecisionFor(from, tr)
		sentinel := ErrTransitionForbidden
		if from.IsTerminal() {
			sentinel = ErrTerminal
		}
		return Transition{From: from, To: from, Trigger: tr}, fmt.Errorf("%w: %s + %s (%s)", sentinel, from, tr, d.Reason)
	}

	m.state = t.To
	flagChanged := false
	switch {
	case t.To == model.StatePreparingContentForPlayout:
		flagChanged = !m.contentActive
		m.contentActive = true
	case t.To == model.StateStopping, tr == TrPrepareContentFailed:
		flagChanged = m.contentActive
		m.contentActive = false
	}
	active := m.contentActive
	m.mu.Unlock()

	metrics.RecordTransition(from.String(), t.To.String())
	m.logger.Info().
		Str(xglog.FieldEvent, "state.transition").
		Str(xglog.FieldOldState, from.String()).
		Str(xglog.FieldNewState, t.To.String()).
		Str(xglog.FieldTrigger, tr.String()).
		Msg("playback state changed")

	if flagChanged && m.hooks.OnContentSession != nil {
		m.hooks.OnContentSession(active)
	}
	if t.To == model.StateCorePrepared && m.hooks.OnCorePrepared != nil {
		m.hooks.OnCorePrepared()
	}
	return t, nil
}
