// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateChangedCoversEveryState(t *testing.T) {
	seen := map[EventType]PlayerState{}
	for _, s := range AllStates() {
		et := StateChanged(s)
		require.NotEqual(t, EventUnknown, et, "state %s has no event type", s)
		require.True(t, et.IsStateChange(), "event for %s must be a state change", s)
		if prev, dup := seen[et]; dup {
			t.Fatalf("states %s and %s share event type %v", prev, s, et)
		}
		seen[et] = s
	}
	require.Len(t, AllStates(), 16)
}

func TestStatePredicates(t *testing.T) {
	require.True(t, StateStopped.IsTerminal())
	require.False(t, StateStopping.IsTerminal())

	require.True(t, StatePreparingContentForPlayout.IsBusy())
	require.False(t, StatePlaying.IsBusy())

	require.True(t, StatePlaying.CanPause())
	require.True(t, StateBuffering.CanPause())
	require.False(t, StatePaused.CanPause())

	require.True(t, StatePaused.CanUnpause())
	require.True(t, StateContentPreparedForPlayout.CanStart())
	require.False(t, StateCorePrepared.CanSeek())

	require.False(t, StateUninitialized.HasCore())
	require.True(t, StateCorePrepared.HasCore())
	require.False(t, StateStopped.HasCore())
}

func TestMessageErrClassification(t *testing.T) {
	ok := Success(CodeOK, "done")
	require.NoError(t, ok.Err())
	require.True(t, ok.OK())

	bad := Failure(SeverityWarning, CodeNoDisplayMappings, "no display mappings")
	require.ErrorIs(t, bad.Err(), ErrInvalidArgument)
	require.Contains(t, bad.Err().Error(), "no display mappings")

	fatal := Failure(SeverityFatal, CodeDecoderInitFailed, "decoder init failed")
	require.True(t, errors.Is(fatal.Err(), ErrFatal))

	unknown := Failure(SeverityWarning, 9999, "odd")
	require.ErrorIs(t, unknown.Err(), ErrRequestFailed)
}

func TestTimingSentinelRecycledInPlace(t *testing.T) {
	sentinel := NewTimingUnavailable()
	require.Equal(t, CodeTimingUnavailable, sentinel.Code())

	snapshot := *sentinel
	sentinel.Update(SeverityWarning, CodeTimingUnavailable, "timing unavailable for request 7", ResultFailure)

	require.Equal(t, "timing unavailable", snapshot.Text(), "copies taken before Update are unaffected")
	require.Equal(t, "timing unavailable for request 7", sentinel.Text())
}

func TestStateNoticeRange(t *testing.T) {
	for _, c := range []Code{CodeStateRunning, CodeStatePausing, CodeStatePaused, CodeStateBuffering,
		CodeStateSeeking, CodeStateSwitchingContent, CodeStateFinished, 150} {
		require.True(t, IsStateNoticeCode(c), "code %d", c)
	}
	for _, c := range []Code{CodeOK, CodeAudioFocusChanged, CodeInvalidState, CodeEngineFault} {
		require.False(t, IsStateNoticeCode(c), "code %d", c)
	}
}

func TestNoticeType(t *testing.T) {
	require.Equal(t, EventActiveTrackChanged, NoticeType(Success(CodeActiveTrackChanged, "")))
	require.Equal(t, EventFatalError, NoticeType(Failure(SeverityFatal, CodeUnsupportedDevice, "")))
	require.Equal(t, EventWarning, NoticeType(Failure(SeverityWarning, 777, "")))
	require.Equal(t, EventInfo, NoticeType(Success(888, "")))
}

func TestRequestKinds(t *testing.T) {
	require.False(t, KindUnknown.Known())
	for _, k := range AllKinds() {
		require.True(t, k.Known())
		require.NotContains(t, k.String(), "kind(")
		parsed, ok := ParseRequestKind(k.String())
		require.True(t, ok)
		require.Equal(t, k, parsed)
	}
	_, ok := ParseRequestKind("unknown")
	require.False(t, ok)
	require.False(t, NoRequestID.IsSet())
}
