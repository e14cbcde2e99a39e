// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package daemon

import "errors"

var (
	// ErrMissingController is returned by Run when the App has no controller.
	ErrMissingController = errors.New("daemon: controller is nil")
	// ErrMissingConfig is returned by Run when the App has no config holder.
	ErrMissingConfig = errors.New("daemon: config holder is nil")
)
