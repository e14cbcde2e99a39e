// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package eventq is the FIFO that hands outcomes from any goroutine to the
// host's single delivery context.
package eventq

import (
	"sync"
	"sync/atomic"
)

// Queue is an unbounded FIFO. Push and PushFront are safe from any goroutine.
// Drain must only be called from the delivery context; the lock is never held
// while the deliver callback runs, so callbacks may push again.
type Queue[T any] struct {
	mu       sync.Mutex
	items    []T
	draining atomic.Bool
	onDepth  func(int)
}

// New returns an empty queue. onDepth, if non-nil, is called with the new
// depth after every mutation (outside the lock).
func New[T any](onDepth func(int)) *Queue[T] {
	return &Queue[T]{onDepth: onDepth}
}

// Push appends v to the tail.
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	q.items = append(q.items, v)
	n := len(q.items)
	q.mu.Unlock()
	q.report(n)
}

// PushFront places v ahead of everything already queued. It is a priority
// escape hatch for rare urgent synthetic events, not a general mechanism.
func (q *Queue[T]) PushFront(v T) {
	q.mu.Lock()
	q.items = append(q.items, v)
	copy(q.items[1:], q.items[:len(q.items)-1])
	q.items[0] = v
	n := len(q.items)
	q.mu.Unlock()
	q.report(n)
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue[T]) pop() (T, bool) {
	q.mu.Lock()
	var zero T
	if len(q.items) == 0 {
		q.mu.Unlock()
		return zero, false
	}
	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	n := len(q.items)
	q.mu.Unlock()
	q.report(n)
	return v, true
}

// Drain delivers items in FIFO order until the queue is observed empty,
// re-checking after every delivery, so items pushed by deliver itself are
// delivered before Drain returns. A nested Drain from inside deliver is a
// no-op returning 0. It returns the number of items delivered.
func (q *Queue[T]) Drain(deliver func(T)) int {
	if !q.draining.CompareAndSwap(false, true) {
		return 0
	}
	defer q.draining.Store(false)

	delivered := 0
	for {
		v, ok := q.pop()
		if !ok {
			return delivered
		}
		deliver(v)
		delivered++
	}
}

func (q *Queue[T]) report(n int) {
	if q.onDepth != nil {
		q.onDepth(n)
	}
}
