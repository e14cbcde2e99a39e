// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package controller

import (
	"fmt"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
)

// admissible reports whether kind may be issued from state s.
func admissible(kind model.RequestKind, s model.PlayerState) bool {
	switch kind {
	case model.KindInitialize:
		return s == model.StateUninitialized
	case model.KindPrepareCore:
		return s == model.StateInitialized
	case model.KindPrepareContentForPlayout:
		return s == model.StateCorePrepared
	case model.KindStart:
		return s.CanStart()
	case model.KindPause:
		return s.CanPause()
	case model.KindUnpause:
		return s.CanUnpause()
	case model.KindSeek:
		return s.CanSeek()
	case model.KindSwitchContent:
		return s.CanSwitchContent()
	case model.KindChangeStereoMode, model.KindSwitchAudioTrack, model.KindGetTiming:
		return s.HasContent()
	case model.KindCallCore, model.KindParseMediaInfo, model.KindContentSupportedTest:
		return s.HasCore()
	case model.KindStop:
		return s != model.StateStopping && s != model.StateStopped
	default:
		return false
	}
}

func invalidState(kind model.RequestKind, s model.PlayerState) *model.Message {
	m := model.Failure(model.SeverityWarning, model.CodeInvalidState,
		fmt.Sprintf("%s not allowed in state %s", kind, s))
	return &m
}

func rejectWith(code model.Code, text string) *model.Message {
	m := model.Failure(model.SeverityWarning, code, text)
	return &m
}

func invalidArgument(kind model.RequestKind, what string) *model.Message {
	return rejectWith(model.CodeInvalidArgument, fmt.Sprintf("%s: %s", kind, what))
}

// validate decides admission for kind with params in state s. On admit it
// returns the (possibly normalized) params and a nil message. Caller-owned
// params are never mutated; normalization works on a copy.
func (c *Controller) validate(kind model.RequestKind, s model.PlayerState, params any) (any, *model.Message) {
	if s.IsTerminal() {
		return nil, invalidState(kind, s)
	}
	if !kind.Known() {
		return nil, rejectWith(model.CodeUnsupportedRequest, fmt.Sprintf("unsupported request %s", kind))
	}
	if !admissible(kind, s) {
		return nil, invalidState(kind, s)
	}

	switch kind {
	case model.KindPrepareContentForPlayout:
		p, ok := params.(*model.PrepareContentParams)
		if !ok || p == nil {
			return nil, invalidArgument(kind, "parameters required")
		}
		if len(p.Content.DisplayMappings) == 0 {
			return nil, rejectWith(model.CodeNoDisplayMappings, "no display mappings")
		}
		if p.Timeout < 0 {
			return nil, invalidArgument(kind, "negative timeout")
		}
		norm := *p
		norm.Audio = c.fillAudio(p.Audio)
		return &norm, nil

	case model.KindSwitchContent:
		p, ok := params.(*model.SwitchContentParams)
		if !ok || p == nil {
			return nil, invalidArgument(kind, "parameters required")
		}
		if !p.Content.Verified {
			return nil, rejectWith(model.CodeContentNotVerified, "content descriptor not verified")
		}
		norm := *p
		norm.Audio = c.fillAudio(p.Audio)
		return &norm, nil

	case model.KindSeek:
		p, ok := params.(*model.SeekParams)
		if !ok || p == nil {
			return nil, invalidArgument(kind, "parameters required")
		}
		if p.Position < 0 {
			return nil, invalidArgument(kind, "negative position")
		}
		return p, nil

	case model.KindChangeStereoMode:
		p, ok := params.(*model.ChangeStereoModeParams)
		if !ok || p == nil {
			return nil, invalidArgument(kind, "parameters required")
		}
		if !p.Mode.Valid() {
			return nil, invalidArgument(kind, fmt.Sprintf("unknown stereo mode %q", p.Mode))
		}
		return p, nil

	case model.KindSwitchAudioTrack:
		p, ok := params.(*model.SwitchAudioTrackParams)
		if !ok || p == nil {
			return nil, invalidArgument(kind, "parameters required")
		}
		if p.Track.IsZero() {
			return nil, invalidArgument(kind, "no track selected")
		}
		return p, nil

	case model.KindCallCore:
		p, ok := params.(*model.CallCoreParams)
		if !ok || p == nil || len(p.Payload) == 0 {
			return nil, invalidArgument(kind, "payload required")
		}
		return p, nil

	case model.KindParseMediaInfo:
		p, ok := params.(*model.ParseMediaInfoParams)
		if !ok || p == nil || p.URI == "" {
			return nil, invalidArgument(kind, "uri required")
		}
		return p, nil

	case model.KindContentSupportedTest:
		p, ok := params.(*model.ContentSupportedTestParams)
		if !ok || p == nil || p.Content.URI == "" {
			return nil, invalidArgument(kind, "content uri required")
		}
		return p, nil

	case model.KindStart:
		p, ok := params.(*model.StartParams)
		if !ok || p == nil {
			return nil, nil
		}
		if p.Position < 0 {
			return nil, invalidArgument(kind, "negative position")
		}
		return p, nil
	}

	// Initialize, PrepareCore, Pause, Unpause, Stop, GetTiming: optional or no params.
	if isNilPointer(params) {
		return nil, nil
	}
	return params, nil
}

func (c *Controller) fillAudio(sel *model.AudioTrackSelection) *model.AudioTrackSelection {
	if sel != nil && !sel.IsZero() {
		cp := *sel
		return &cp
	}
	def := c.audioDefault()
	return &def
}

func isNilPointer(v any) bool {
	switch p := v.(type) {
	case nil:
		return true
	case *model.InitializeParams:
		return p == nil
	case *model.PrepareCoreParams:
		return p == nil
	}
	return false
}
