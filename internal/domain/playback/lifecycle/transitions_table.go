// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package lifecycle

import "github.com/ManuGH/playctl/internal/domain/playback/model"

// Transition is a single allowed edge in the session state machine.
type Transition struct {
	From    model.PlayerState
	To      model.PlayerState
	Trigger Trigger
	// Event is the derived event type announcing entry into To.
	Event model.EventType
}

// Decision records whether a trigger is allowed from a state and why not.
type Decision struct {
	Allowed bool
	Reason  string
}

const (
	ForbiddenTerminalAbsorbing = "terminal_absorbing"
	ForbiddenOutOfOrder        = "out_of_order"
	ForbiddenRequiresContent   = "requires_content"
	ForbiddenStopInFlight      = "stop_in_flight"
)

// contentStates accept Engine state notices.
var contentStates = []model.PlayerState{
	model.StateContentPreparedForPlayout,
	model.StateBuffering,
	model.StatePlaying,
	model.StatePausing,
	model.StatePaused,
	model.StateSeeking,
	model.StateSwitchingContent,
	model.StateFinished,
}

var noticeTargets = map[Trigger]model.PlayerState{
	TrEngineRunning:          model.StatePlaying,
	TrEnginePausing:          model.StatePausing,
	TrEnginePaused:           model.StatePaused,
	TrEngineBuffering:        model.StateBuffering,
	TrEngineSeeking:          model.StateSeeking,
	TrEngineSwitchingContent: model.StateSwitchingContent,
	TrEngineFinished:         model.StateFinished,
}

var transitionsTable = buildTransitions()

func buildTransitions() []Transition {
	table := []Transition{
		// Core bring-up
		{From: model.StateUninitialized, To: model.StateInitializing, Trigger: TrInitializeIssued},
		{From: model.StateInitializing, To: model.StateInitialized, Trigger: TrInitializeSucceeded},
		{From: model.StateInitializing, To: model.StateUninitialized, Trigger: TrInitializeFailed},
		{From: model.StateInitialized, To: model.StatePreparingCore, Trigger: TrPrepareCoreIssued},
		{From: model.StatePreparingCore, To: model.StateCorePrepared, Trigger: TrPrepareCoreSucceeded},
		{From: model.StatePreparingCore, To: model.StateInitialized, Trigger: TrPrepareCoreFailed},

		// Content preparation (issued optimistically on admission)
		{From: model.StateCorePrepared, To: model.StatePreparingContentForPlayout, Trigger: TrPrepareContentIssued},
		{From: model.StatePreparingContentForPlayout, To: model.StateContentPreparedForPlayout, Trigger: TrPrepareContentSucceeded},
		{From: model.StatePreparingContentForPlayout, To: model.StateCorePrepared, Trigger: TrPrepareContentFailed},

		// Shutdown
		{From: model.StateStopping, To: model.StateStopped, Trigger: TrStopCompleted},
	}

	for _, s := range model.AllStates() {
		if s == model.StateStopping || s == model.StateStopped {
			continue
		}
		table = append(table, Transition{From: s, To: model.StateStopping, Trigger: TrStopIssued})
	}

	for tr := TrEngineRunning; tr <= TrEngineFinished; tr++ {
		for _, s := range contentStates {
			table = append(table, Transition{From: s, To: noticeTargets[tr], Trigger: tr})
		}
	}

	for i := range table {
		table[i].Event = model.StateChanged(table[i].To)
	}
	return table
}

// TransitionFor returns the allowed transition for a given state+trigger.
func TransitionFor(from model.PlayerState, tr Trigger) (Transition, bool) {
	for _, t := range transitionsTable {
		if t.From == from && t.Trigger == tr {
			return t, true
		}
	}
	return Transition{}, false
}

// DecisionFor returns an explicit decision for every state×trigger pair.
func DecisionFor(from model.PlayerState, tr Trigger) Decision {
	if _, ok := TransitionFor(from, tr); ok {
		return Decision{Allowed: true}
	}
	switch {
	case from.IsTerminal():
		return Decision{Reason: ForbiddenTerminalAbsorbing}
	case tr == TrStopIssued && from == model.StateStopping:
		return Decision{Reason: ForbiddenStopInFlight}
	case tr.IsEngineNotice():
		return Decision{Reason: ForbiddenRequiresContent}
	default:
		return Decision{Reason: ForbiddenOutOfOrder}
	}
}
