// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package lifecycle

import (
	"testing"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/stretchr/testify/require"
)

func TestTransitionTable_Coverage(t *testing.T) {
	allowed := map[model.PlayerState]map[Trigger]struct{}{}
	for _, tr := range transitionsTable {
		if _, ok := allowed[tr.From]; !ok {
			allowed[tr.From] = map[Trigger]struct{}{}
		}
		if _, exists := allowed[tr.From][tr.Trigger]; exists {
			t.Fatalf("duplicate transition: %s + %s", tr.From, tr.Trigger)
		}
		allowed[tr.From][tr.Trigger] = struct{}{}
		require.Equal(t, model.StateChanged(tr.To), tr.Event, "derived event for %s", tr.To)
	}

	for _, state := range model.AllStates() {
		for _, tr := range AllTriggers() {
			decision := DecisionFor(state, tr)
			if _, ok := allowed[state][tr]; ok {
				require.True(t, decision.Allowed, "allowed transition must be marked allowed for %s + %s", state, tr)
				continue
			}
			require.False(t, decision.Allowed, "forbidden transition must be marked forbidden for %s + %s", state, tr)
			require.NotEmpty(t, decision.Reason, "forbidden transition must have reason for %s + %s", state, tr)
		}
	}
}

func TestStoppedIsAbsorbing(t *testing.T) {
	for _, tr := range AllTriggers() {
		_, ok := TransitionFor(model.StateStopped, tr)
		require.False(t, ok, "no edge may leave Stopped (%s)", tr)
		require.Equal(t, ForbiddenTerminalAbsorbing, DecisionFor(model.StateStopped, tr).Reason)
	}
}

func TestStopReachableFromEveryLiveState(t *testing.T) {
	for _, s := range model.AllStates() {
		_, ok := TransitionFor(s, TrStopIssued)
		switch s {
		case model.StateStopping:
			require.False(t, ok)
			require.Equal(t, ForbiddenStopInFlight, DecisionFor(s, TrStopIssued).Reason)
		case model.StateStopped:
			require.False(t, ok)
		default:
			require.True(t, ok, "stop must be issuable from %s", s)
		}
	}
}

func TestTriggerForStateCode(t *testing.T) {
	cases := map[model.Code]Trigger{
		model.CodeStateRunning:          TrEngineRunning,
		model.CodeStatePausing:          TrEnginePausing,
		model.CodeStatePaused:           TrEnginePaused,
		model.CodeStateBuffering:        TrEngineBuffering,
		model.CodeStateSeeking:          TrEngineSeeking,
		model.CodeStateSwitchingContent: TrEngineSwitchingContent,
		model.CodeStateFinished:         TrEngineFinished,
	}
	for code, want := range cases {
		got, err := TriggerForStateCode(code)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.True(t, got.IsEngineNotice())
	}
}

func TestCompletionTriggerStopAlwaysCompletes(t *testing.T) {
	for _, success := range []bool{true, false} {
		tr, ok := CompletionTrigger(model.KindStop, success)
		require.True(t, ok)
		require.Equal(t, TrStopCompleted, tr)
	}
	_, ok := CompletionTrigger(model.KindSeek, true)
	require.False(t, ok)
}
