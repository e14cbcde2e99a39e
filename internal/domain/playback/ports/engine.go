// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package ports

import (
	"context"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
)

// Request is one outbound Engine call. Payload encoding is opaque to the
// controller; see PayloadEncoder.
type Request struct {
	Kind    model.RequestKind
	ID      model.RequestID
	Payload []byte
}

// Inbound is one status message pushed by the Engine. Correlation is set
// when the message completes a previously submitted request.
type Inbound struct {
	Message     model.Message
	Correlation *model.Correlation
	Payload     []byte
}

// Sink is the single inbound entry point. The Engine may call it from any
// goroutine at any time, including after the session is Stopped.
type Sink func(Inbound)

// Engine is the opaque media engine. It is strictly a message boundary:
// Submit is fire-and-forget, outcomes come back through the attached Sink.
type Engine interface {
	// Attach installs the sink for inbound messages.
	Attach(sink Sink)

	// Submit hands a request to the Engine. It must not block on playback work.
	Submit(ctx context.Context, req Request) error

	// Configure pushes session-scoped configuration once the core is prepared.
	Configure(ctx context.Context, cfg model.SessionConfig) error
}

// PayloadEncoder serializes typed request parameters for the Engine.
type PayloadEncoder interface {
	Encode(kind model.RequestKind, params any) ([]byte, error)
}

// SessionHooks are collaborators notified about session-level changes
// (rendering, pose tracking). All fields are optional.
type SessionHooks struct {
	// OnContentSession fires when the content-session flag flips.
	OnContentSession func(active bool)
	// OnCleanup runs exactly once before the session reaches Stopped.
	OnCleanup func()
}
