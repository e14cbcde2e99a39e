// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package model

import "strconv"

// RequestKind identifies an operation that can be submitted to the Engine.
type RequestKind int

const (
	KindUnknown RequestKind = iota
	KindInitialize
	KindPrepareCore
	KindPrepareContentForPlayout
	KindStart
	KindPause
	KindUnpause
	KindSeek
	KindStop
	KindSwitchContent
	KindChangeStereoMode
	KindCallCore
	KindSwitchAudioTrack
	KindParseMediaInfo
	KindContentSupportedTest
	KindGetTiming

	kindCount
)

var kindNames = [...]string{
	KindUnknown:                  "unknown",
	KindInitialize:               "initialize",
	KindPrepareCore:              "prepare_core",
	KindPrepareContentForPlayout: "prepare_content_for_playout",
	KindStart:                    "start",
	KindPause:                    "pause",
	KindUnpause:                  "unpause",
	KindSeek:                     "seek",
	KindStop:                     "stop",
	KindSwitchContent:            "switch_content",
	KindChangeStereoMode:         "change_stereo_mode",
	KindCallCore:                 "call_core",
	KindSwitchAudioTrack:         "switch_audio_track",
	KindParseMediaInfo:           "parse_media_info",
	KindContentSupportedTest:     "content_supported_test",
	KindGetTiming:                "get_timing",
}

func (k RequestKind) String() string {
	if k < 0 || k >= kindCount {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Known reports whether k is a concrete operation (not the Unknown sentinel).
func (k RequestKind) Known() bool {
	return k > KindUnknown && k < kindCount
}

// ParseRequestKind resolves a kind by its String form.
func ParseRequestKind(name string) (RequestKind, bool) {
	for k := KindUnknown + 1; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindUnknown, false
}

// AllKinds lists every concrete RequestKind.
func AllKinds() []RequestKind {
	out := make([]RequestKind, 0, int(kindCount)-1)
	for k := KindUnknown + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// RequestID correlates a submitted request with its eventual completion.
// The zero value is the "not set" sentinel and is never issued.
type RequestID uint64

// NoRequestID is the "not set" sentinel.
const NoRequestID RequestID = 0

func (id RequestID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// IsSet reports whether id differs from the sentinel.
func (id RequestID) IsSet() bool {
	return id != NoRequestID
}

// Correlation ties an Event back to the request that caused it.
type Correlation struct {
	Kind  RequestKind
	ID    RequestID
	Extra []any
}
