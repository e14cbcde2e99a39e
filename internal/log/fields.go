// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRequestID     = "request_id"
	FieldRequestKind   = "request_kind"
	FieldCorrelationID = "correlation_id"
	FieldSessionID     = "session_id"

	// Process / pipeline fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldTrigger   = "trigger"

	// Engine message fields
	FieldCode     = "code"
	FieldSeverity = "severity"
	FieldResult   = "result"

	// State fields
	FieldOldState = "old_state"
	FieldNewState = "new_state"

	// Queue fields
	FieldQueueDepth = "queue_depth"
	FieldPending    = "pending"

	// Path / URL fields
	FieldPath       = "path"
	FieldListenAddr = "listen_addr"
)
