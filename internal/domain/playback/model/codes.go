// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package model

import "errors"

// Code is the numeric status code carried by every Message.
// Keep these stable: the Engine protocol and client UX depend on them.
type Code int32

const (
	CodeOK Code = 0

	// State notices. The range is reserved and the set below is exhaustive:
	// any other code inside the range means the Engine protocol drifted.
	stateNoticeFirst          Code = 100
	CodeStateRunning          Code = 101
	CodeStatePausing          Code = 102
	CodeStatePaused           Code = 103
	CodeStateBuffering        Code = 104
	CodeStateSeeking          Code = 105
	CodeStateSwitchingContent Code = 106
	CodeStateFinished         Code = 107
	stateNoticeLast           Code = 199

	// Free-standing notices.
	CodeAudioFocusChanged   Code = 201
	CodeActiveTrackChanged  Code = 202
	CodeDecoderCapabilities Code = 203

	// Recoverable failures.
	CodeInvalidState       Code = 401
	CodeInvalidArgument    Code = 402
	CodeNoDisplayMappings  Code = 403
	CodeContentNotVerified Code = 404
	CodeRequestCancelled   Code = 405
	CodeUnsupportedRequest Code = 406
	CodeEngineUnavailable  Code = 407
	CodeTimingUnavailable  Code = 408
	CodeRequestFailed      Code = 409

	// Session-ending failures.
	CodeDecoderInitFailed Code = 501
	CodeUnsupportedDevice Code = 502
	CodeEngineFault       Code = 503
)

// IsStateNoticeCode reports whether code lies in the reserved state-notice range.
func IsStateNoticeCode(code Code) bool {
	return code >= stateNoticeFirst && code <= stateNoticeLast
}

var (
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrCancelled         = errors.New("request cancelled")
	ErrUnsupported       = errors.New("unsupported request")
	ErrEngineUnavailable = errors.New("engine unavailable")
	ErrRequestFailed     = errors.New("request failed")
	ErrFatal             = errors.New("fatal engine error")
)

// ErrorClass maps a failure code to its sentinel error class.
func ErrorClass(code Code) error {
	switch code {
	case CodeOK:
		return nil
	case CodeInvalidState:
		return ErrInvalidState
	case CodeInvalidArgument, CodeNoDisplayMappings, CodeContentNotVerified:
		return ErrInvalidArgument
	case CodeRequestCancelled:
		return ErrCancelled
	case CodeUnsupportedRequest:
		return ErrUnsupported
	case CodeEngineUnavailable, CodeTimingUnavailable:
		return ErrEngineUnavailable
	case CodeDecoderInitFailed, CodeUnsupportedDevice, CodeEngineFault:
		return ErrFatal
	default:
		return ErrRequestFailed
	}
}
