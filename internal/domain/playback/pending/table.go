// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package pending tracks in-flight Engine requests until their outcome is
// delivered exactly once.
package pending

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/ManuGH/playctl/internal/metrics"
)

var (
	ErrDuplicateID = errors.New("request id collision")
	ErrNotFound    = errors.New("pending request not found")
)

// maxIDAttempts bounds retries when the id source collides with a live entry.
const maxIDAttempts = 8

// Entry is one admitted request. It is owned by the Table until resolved;
// afterwards its callbacks belong to whoever calls Complete.
type Entry struct {
	ID        model.RequestID
	Kind      model.RequestKind
	OnSuccess model.Callback
	OnFailure model.Callback
	Extra     []any
	// Ctx carries the request's trace span and log fields.
	Ctx      context.Context
	Admitted time.Time

	seq  uint64
	done atomic.Bool
}

// Correlation returns the correlation block for events about this entry.
func (e *Entry) Correlation() *model.Correlation {
	return &model.Correlation{Kind: e.Kind, ID: e.ID, Extra: e.Extra}
}

// Complete invokes exactly one of OnSuccess/OnFailure depending on the
// event's result. It returns false if the entry was already completed.
func (e *Entry) Complete(ev model.Event) bool {
	if !e.done.CompareAndSwap(false, true) {
		return false
	}
	cb := e.OnFailure
	if ev.Message.OK() {
		cb = e.OnSuccess
	}
	if cb != nil {
		cb(ev)
	}
	return true
}

// Table is the pending request table. A single mutex guards all entries.
type Table struct {
	mu      sync.Mutex
	ids     IDSource
	entries map[model.RequestID]*Entry
	seq     uint64
	now     func() time.Time
}

// NewTable returns an empty table drawing ids from ids (a counter if nil).
func NewTable(ids IDSource) *Table {
	if ids == nil {
		ids = NewCounterSource()
	}
	return &Table{
		ids:     ids,
		entries: make(map[model.RequestID]*Entry),
		now:     time.Now,
	}
}

// Register admits a request and returns its entry with a fresh id.
// Ids are unique among live entries.
func (t *Table) Register(ctx context.Context, kind model.RequestKind, onSuccess, onFailure model.Callback, extra []any) (*Entry, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := t.ids.Next()
		if !id.IsSet() {
			continue
		}
		if _, live := t.entries[id]; live {
			continue
		}
		t.seq++
		e := &Entry{
			ID:        id,
			Kind:      kind,
			OnSuccess: onSuccess,
			OnFailure: onFailure,
			Extra:     extra,
			Ctx:       ctx,
			Admitted:  t.now(),
			seq:       t.seq,
		}
		t.entries[id] = e
		metrics.SetPending(len(t.entries))
		return e, nil
	}
	return nil, fmt.Errorf("register %s: %w after %d attempts", kind, ErrDuplicateID, maxIDAttempts)
}

// Resolve removes and returns the entry matching {kind, id}. An unknown id
// or a kind mismatch returns ErrNotFound and leaves the table untouched.
func (t *Table) Resolve(kind model.RequestKind, id model.RequestID) (*Entry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[id]
	if !ok || e.Kind != kind {
		return nil, fmt.Errorf("resolve %s/%s: %w", kind, id, ErrNotFound)
	}
	delete(t.entries, id)
	metrics.SetPending(len(t.entries))
	return e, nil
}

// DrainAll removes every live entry and returns them in admission order.
func (t *Table) DrainAll() []*Entry {
	t.mu.Lock()
	out := make([]*Entry, 0, len(t.entries))
	for id, e := range t.entries {
		out = append(out, e)
		delete(t.entries, id)
	}
	metrics.SetPending(0)
	t.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
