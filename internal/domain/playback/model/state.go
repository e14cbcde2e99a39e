// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package model

// PlayerState is the single authoritative lifecycle phase of a playback session.
// Transitions between states are explicit; see the lifecycle package.
type PlayerState int

const (
	StateUninitialized PlayerState = iota
	StateInitializing
	StateInitialized
	StatePreparingCore
	StateCorePrepared
	StatePreparingContentForPlayout
	StateContentPreparedForPlayout
	StateBuffering
	StatePlaying
	StatePausing
	StatePaused
	StateSeeking
	StateSwitchingContent
	StateFinished
	StateStopping
	StateStopped
)

var stateNames = [...]string{
	StateUninitialized:              "UNINITIALIZED",
	StateInitializing:               "INITIALIZING",
	StateInitialized:                "INITIALIZED",
	StatePreparingCore:              "PREPARING_CORE",
	StateCorePrepared:               "CORE_PREPARED",
	StatePreparingContentForPlayout: "PREPARING_CONTENT_FOR_PLAYOUT",
	StateContentPreparedForPlayout:  "CONTENT_PREPARED_FOR_PLAYOUT",
	StateBuffering:                  "BUFFERING",
	StatePlaying:                    "PLAYING",
	StatePausing:                    "PAUSING",
	StatePaused:                     "PAUSED",
	StateSeeking:                    "SEEKING",
	StateSwitchingContent:           "SWITCHING_CONTENT",
	StateFinished:                   "FINISHED",
	StateStopping:                   "STOPPING",
	StateStopped:                    "STOPPED",
}

// AllStates lists every PlayerState in declaration order.
func AllStates() []PlayerState {
	out := make([]PlayerState, 0, len(stateNames))
	for s := range stateNames {
		out = append(out, PlayerState(s))
	}
	return out
}

func (s PlayerState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "INVALID"
	}
	return stateNames[s]
}

// IsTerminal reports whether no transition is defined out of the state.
func (s PlayerState) IsTerminal() bool {
	return s == StateStopped
}

// IsBusy reports whether the session is between a command and its settled state.
func (s PlayerState) IsBusy() bool {
	switch s {
	case StateInitializing, StatePreparingCore, StatePreparingContentForPlayout,
		StatePausing, StateSeeking, StateSwitchingContent, StateStopping:
		return true
	}
	return false
}

// IsPlaying reports whether media is actively being rendered.
func (s PlayerState) IsPlaying() bool {
	return s == StatePlaying
}

// CanPause reports whether a Pause request is admissible.
func (s PlayerState) CanPause() bool {
	return s == StatePlaying || s == StateBuffering
}

// CanUnpause reports whether an Unpause request is admissible.
func (s PlayerState) CanUnpause() bool {
	return s == StatePaused || s == StatePausing
}

// CanStart reports whether a Start request is admissible.
func (s PlayerState) CanStart() bool {
	return s == StateContentPreparedForPlayout
}

// CanSeek reports whether a Seek request is admissible.
func (s PlayerState) CanSeek() bool {
	switch s {
	case StatePlaying, StatePaused, StateBuffering, StateFinished:
		return true
	}
	return false
}

// CanSwitchContent reports whether a SwitchContent request is admissible.
func (s PlayerState) CanSwitchContent() bool {
	switch s {
	case StateContentPreparedForPlayout, StatePlaying, StatePaused, StateBuffering, StateFinished:
		return true
	}
	return false
}

// HasContent reports whether prepared content is attached to the session.
func (s PlayerState) HasContent() bool {
	switch s {
	case StateContentPreparedForPlayout, StateBuffering, StatePlaying, StatePausing,
		StatePaused, StateSeeking, StateSwitchingContent, StateFinished:
		return true
	}
	return false
}

// HasCore reports whether the Engine has been initialized and the session is not shutting down.
func (s PlayerState) HasCore() bool {
	switch s {
	case StateUninitialized, StateInitializing, StateStopping, StateStopped:
		return false
	}
	return true
}
