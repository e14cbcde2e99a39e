// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package lifecycle

import "errors"

var (
	// ErrUnknownStateCode means the Engine pushed a code inside the reserved
	// state-notice range that this layer does not know.
	ErrUnknownStateCode = errors.New("unknown state notice code")
	// ErrTransitionForbidden means the trigger has no edge from the current state.
	ErrTransitionForbidden = errors.New("transition forbidden")
	// ErrTerminal means the machine already reached its terminal state.
	ErrTerminal = errors.New("state machine is terminal")
)
