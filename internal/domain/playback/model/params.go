// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package model

import "time"

// StartMode controls how the Engine begins playout once content is prepared.
type StartMode string

const (
	StartModeImmediate StartMode = "immediate"
	StartModeOnDemand  StartMode = "on_demand"
)

// Valid reports whether m is a known start mode.
func (m StartMode) Valid() bool {
	return m == StartModeImmediate || m == StartModeOnDemand
}

// SessionConfig is pushed to the Engine when the core becomes prepared.
type SessionConfig struct {
	ABREnabled bool      `json:"abrEnabled"`
	StartMode  StartMode `json:"startMode"`
}

// StereoMode selects the stereoscopic layout of the rendered surface.
type StereoMode string

const (
	StereoMono         StereoMode = "mono"
	StereoSideBySide   StereoMode = "side_by_side"
	StereoTopBottom    StereoMode = "top_bottom"
	StereoMonoLeftEye  StereoMode = "mono_left_eye"
	StereoMonoRightEye StereoMode = "mono_right_eye"
)

// Valid reports whether m is a known stereo mode.
func (m StereoMode) Valid() bool {
	switch m {
	case StereoMono, StereoSideBySide, StereoTopBottom, StereoMonoLeftEye, StereoMonoRightEye:
		return true
	}
	return false
}

// DisplayMapping binds a decoded stream to a render surface.
type DisplayMapping struct {
	SurfaceID  string     `json:"surfaceId"`
	Projection string     `json:"projection,omitempty"`
	Stereo     StereoMode `json:"stereo,omitempty"`
}

// AudioTrackSelection picks an audio track by index or language.
// Index < 0 means "no explicit index".
type AudioTrackSelection struct {
	Index    int    `json:"index"`
	Language string `json:"language,omitempty"`
}

// IsZero reports whether no track has been selected.
func (a AudioTrackSelection) IsZero() bool {
	return a.Index < 0 && a.Language == ""
}

// ContentDescriptor identifies playable content.
type ContentDescriptor struct {
	URI             string           `json:"uri"`
	Verified        bool             `json:"verified"`
	DisplayMappings []DisplayMapping `json:"displayMappings"`
}

type InitializeParams struct {
	Platform string `json:"platform,omitempty"`
}

type PrepareCoreParams struct {
	Decoders []string `json:"decoders,omitempty"`
}

type PrepareContentParams struct {
	Content       ContentDescriptor    `json:"content"`
	Audio         *AudioTrackSelection `json:"audio,omitempty"`
	StartPosition time.Duration        `json:"startPosition"`
	// Timeout is enforced by the Engine, not by the controller.
	Timeout time.Duration `json:"timeout"`
}

type StartParams struct {
	Position time.Duration `json:"position"`
}

type SeekParams struct {
	Position time.Duration `json:"position"`
	Accurate bool          `json:"accurate"`
}

type SwitchContentParams struct {
	Content      ContentDescriptor    `json:"content"`
	Audio        *AudioTrackSelection `json:"audio,omitempty"`
	KeepPosition bool                 `json:"keepPosition"`
}

type ChangeStereoModeParams struct {
	Mode StereoMode `json:"mode"`
}

type SwitchAudioTrackParams struct {
	Track AudioTrackSelection `json:"track"`
}

// CallCoreParams is an opaque pass-through call; Payload is forwarded unchanged.
type CallCoreParams struct {
	Payload []byte `json:"-"`
}

type ParseMediaInfoParams struct {
	URI string `json:"uri"`
}

type ContentSupportedTestParams struct {
	Content ContentDescriptor `json:"content"`
}

// TimingInfo is the decoded payload of a GetTiming completion.
type TimingInfo struct {
	Position time.Duration `json:"position"`
	Duration time.Duration `json:"duration"`
	Buffered time.Duration `json:"buffered"`
}
