// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package lifecycle

import (
	"fmt"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
)

// Trigger is an input to the session state machine: either a locally
// confirmed command outcome or an Engine-pushed state notice.
type Trigger int

const (
	TrUnknown Trigger = iota

	// Local command triggers.
	TrInitializeIssued
	TrInitializeSucceeded
	TrInitializeFailed
	TrPrepareCoreIssued
	TrPrepareCoreSucceeded
	TrPrepareCoreFailed
	TrPrepareContentIssued
	TrPrepareContentSucceeded
	TrPrepareContentFailed
	TrStopIssued
	TrStopCompleted

	// Engine state notices.
	TrEngineRunning
	TrEnginePausing
	TrEnginePaused
	TrEngineBuffering
	TrEngineSeeking
	TrEngineSwitchingContent
	TrEngineFinished
)

var triggerNames = map[Trigger]string{
	TrUnknown:                 "unknown",
	TrInitializeIssued:        "initialize_issued",
	TrInitializeSucceeded:     "initialize_succeeded",
	TrInitializeFailed:        "initialize_failed",
	TrPrepareCoreIssued:       "prepare_core_issued",
	TrPrepareCoreSucceeded:    "prepare_core_succeeded",
	TrPrepareCoreFailed:       "prepare_core_failed",
	TrPrepareContentIssued:    "prepare_content_issued",
	TrPrepareContentSucceeded: "prepare_content_succeeded",
	TrPrepareContentFailed:    "prepare_content_failed",
	TrStopIssued:              "stop_issued",
	TrStopCompleted:           "stop_completed",
	TrEngineRunning:           "engine_running",
	TrEnginePausing:           "engine_pausing",
	TrEnginePaused:            "engine_paused",
	TrEngineBuffering:         "engine_buffering",
	TrEngineSeeking:           "engine_seeking",
	TrEngineSwitchingContent:  "engine_switching_content",
	TrEngineFinished:          "engine_finished",
}

func (t Trigger) String() string {
	if name, ok := triggerNames[t]; ok {
		return name
	}
	return fmt.Sprintf("trigger(%d)", int(t))
}

// AllTriggers lists every concrete trigger.
func AllTriggers() []Trigger {
	out := make([]Trigger, 0, len(triggerNames)-1)
	for t := TrInitializeIssued; t <= TrEngineFinished; t++ {
		out = append(out, t)
	}
	return out
}

// IsEngineNotice reports whether t originates from an Engine state notice.
func (t Trigger) IsEngineNotice() bool {
	return t >= TrEngineRunning && t <= TrEngineFinished
}

// TriggerForStateCode maps a reserved state-notice code to its trigger.
// The mapping is exhaustive; any other code in the reserved range is a
// protocol mismatch and is reported through illegalStateCode.
func TriggerForStateCode(code model.Code) (Trigger, error) {
	switch code {
	case model.CodeStateRunning:
		return TrEngineRunning, nil
	case model.CodeStatePausing:
		return TrEnginePausing, nil
	case model.CodeStatePaused:
		return TrEnginePaused, nil
	case model.CodeStateBuffering:
		return TrEngineBuffering, nil
	case model.CodeStateSeeking:
		return TrEngineSeeking, nil
	case model.CodeStateSwitchingContent:
		return TrEngineSwitchingContent, nil
	case model.CodeStateFinished:
		return TrEngineFinished, nil
	default:
		return illegalStateCode(code)
	}
}

// CompletionTrigger maps the outcome of a state-bearing request to its trigger.
// ok is false for kinds whose completion does not move the state machine.
func CompletionTrigger(kind model.RequestKind, success bool) (Trigger, bool) {
	switch kind {
	case model.KindInitialize:
		if success {
			return TrInitializeSucceeded, true
		}
		return TrInitializeFailed, true
	case model.KindPrepareCore:
		if success {
			return TrPrepareCoreSucceeded, true
		}
		return TrPrepareCoreFailed, true
	case model.KindPrepareContentForPlayout:
		if success {
			return TrPrepareContentSucceeded, true
		}
		return TrPrepareContentFailed, true
	case model.KindStop:
		// A failed Stop still terminates the session.
		return TrStopCompleted, true
	default:
		return TrUnknown, false
	}
}

// IssueTrigger maps an admitted request to the optimistic transition applied
// on the calling thread before the Engine replies.
func IssueTrigger(kind model.RequestKind) (Trigger, bool) {
	switch kind {
	case model.KindInitialize:
		return TrInitializeIssued, true
	case model.KindPrepareCore:
		return TrPrepareCoreIssued, true
	case model.KindPrepareContentForPlayout:
		return TrPrepareContentIssued, true
	case model.KindStop:
		return TrStopIssued, true
	default:
		return TrUnknown, false
	}
}
