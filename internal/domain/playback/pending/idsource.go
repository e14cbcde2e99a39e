// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package pending

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/google/uuid"
)

// IDSource issues request identifiers. Implementations must never return
// model.NoRequestID and must be safe for concurrent use.
type IDSource interface {
	Next() model.RequestID
}

// CounterSource issues monotonically increasing identifiers starting at 1.
type CounterSource struct {
	n atomic.Uint64
}

// NewCounterSource returns a counter starting at 1.
func NewCounterSource() *CounterSource {
	return &CounterSource{}
}

func (c *CounterSource) Next() model.RequestID {
	for {
		if v := c.n.Add(1); v != 0 {
			return model.RequestID(v)
		}
	}
}

// UUIDSource derives identifiers from random (v4) UUIDs.
type UUIDSource struct{}

func (UUIDSource) Next() model.RequestID {
	for {
		u := uuid.New()
		if v := binary.BigEndian.Uint64(u[:8]); v != 0 {
			return model.RequestID(v)
		}
	}
}

// SourceByName resolves a configured id source name ("counter" or "uuid").
func SourceByName(name string) (IDSource, bool) {
	switch name {
	case "", "counter":
		return NewCounterSource(), true
	case "uuid":
		return UUIDSource{}, true
	default:
		return nil, false
	}
}
