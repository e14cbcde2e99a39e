// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package model

import "strconv"

// EventType classifies a delivered Event. State-changed kinds mirror PlayerState;
// the remainder are free-standing notices and request outcomes.
type EventType int

const (
	EventUnknown EventType = iota

	EventStateChangedInitializing
	EventStateChangedInitialized
	EventStateChangedPreparingCore
	EventStateChangedCorePrepared
	EventStateChangedPreparingContentForPlayout
	EventStateChangedContentPreparedForPlayout
	EventStateChangedBuffering
	EventStateChangedPlaying
	EventStateChangedPausing
	EventStateChangedPaused
	EventStateChangedSeeking
	EventStateChangedSwitchingContent
	EventStateChangedFinished
	EventStateChangedStopping
	EventStateChangedStopped
	EventStateChangedUninitialized

	// EventRequestCompleted is the outcome of a request with no state effect.
	EventRequestCompleted

	EventAudioFocusChanged
	EventActiveTrackChanged
	EventDecoderCapabilities

	EventInfo
	EventWarning
	EventFatalError
)

var stateEvents = map[PlayerState]EventType{
	StateUninitialized:              EventStateChangedUninitialized,
	StateInitializing:               EventStateChangedInitializing,
	StateInitialized:                EventStateChangedInitialized,
	StatePreparingCore:              EventStateChangedPreparingCore,
	StateCorePrepared:               EventStateChangedCorePrepared,
	StatePreparingContentForPlayout: EventStateChangedPreparingContentForPlayout,
	StateContentPreparedForPlayout:  EventStateChangedContentPreparedForPlayout,
	StateBuffering:                  EventStateChangedBuffering,
	StatePlaying:                    EventStateChangedPlaying,
	StatePausing:                    EventStateChangedPausing,
	StatePaused:                     EventStateChangedPaused,
	StateSeeking:                    EventStateChangedSeeking,
	StateSwitchingContent:           EventStateChangedSwitchingContent,
	StateFinished:                   EventStateChangedFinished,
	StateStopping:                   EventStateChangedStopping,
	StateStopped:                    EventStateChangedStopped,
}

// StateChanged returns the event type announcing entry into s.
func StateChanged(s PlayerState) EventType {
	if t, ok := stateEvents[s]; ok {
		return t
	}
	return EventUnknown
}

// IsStateChange reports whether t announces a state transition.
func (t EventType) IsStateChange() bool {
	return t >= EventStateChangedInitializing && t <= EventStateChangedUninitialized
}

var eventNames = map[EventType]string{
	EventUnknown:             "unknown",
	EventRequestCompleted:    "request_completed",
	EventAudioFocusChanged:   "audio_focus_changed",
	EventActiveTrackChanged:  "active_track_changed",
	EventDecoderCapabilities: "decoder_capabilities",
	EventInfo:                "info",
	EventWarning:             "warning",
	EventFatalError:          "fatal_error",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	for s, et := range stateEvents {
		if et == t {
			return "state_changed." + s.String()
		}
	}
	return "event(" + strconv.Itoa(int(t)) + ")"
}

// Event is a single outcome delivered to the host. It is produced once,
// queued once and delivered once.
type Event struct {
	Type        EventType
	Message     Message
	Correlation *Correlation
	// Payload carries opaque Engine data attached to the outcome, if any.
	Payload []byte
}

// Callback receives a delivered Event.
type Callback func(Event)

// NoticeType maps a free-standing Engine message to its event type.
func NoticeType(msg Message) EventType {
	switch msg.Code() {
	case CodeAudioFocusChanged:
		return EventAudioFocusChanged
	case CodeActiveTrackChanged:
		return EventActiveTrackChanged
	case CodeDecoderCapabilities:
		return EventDecoderCapabilities
	}
	switch msg.Severity() {
	case SeverityFatal:
		return EventFatalError
	case SeverityWarning:
		return EventWarning
	default:
		return EventInfo
	}
}
