// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package pending

import (
	"context"
	"sync"
	"testing"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	mu  sync.Mutex
	ids []model.RequestID
}

func (f *fixedSource) Next() model.RequestID {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.ids) == 0 {
		return model.NoRequestID
	}
	id := f.ids[0]
	f.ids = f.ids[1:]
	return id
}

func TestRegisterResolve_ExactlyOnce(t *testing.T) {
	tbl := NewTable(nil)
	var successes, failures int
	e, err := tbl.Register(context.Background(), model.KindSeek,
		func(model.Event) { successes++ },
		func(model.Event) { failures++ },
		[]any{"extra", 7},
	)
	require.NoError(t, err)
	require.True(t, e.ID.IsSet())
	require.Equal(t, 1, tbl.Len())

	got, err := tbl.Resolve(model.KindSeek, e.ID)
	require.NoError(t, err)
	require.Same(t, e, got)
	require.Equal(t, 0, tbl.Len())

	ev := model.Event{Message: model.Failure(model.SeverityWarning, model.CodeRequestFailed, "seek failed")}
	require.True(t, got.Complete(ev))
	require.False(t, got.Complete(ev), "second completion must be a no-op")
	require.Equal(t, 0, successes)
	require.Equal(t, 1, failures)

	_, err = tbl.Resolve(model.KindSeek, e.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_KindMismatchLeavesEntry(t *testing.T) {
	tbl := NewTable(nil)
	e, err := tbl.Register(context.Background(), model.KindPause, nil, nil, nil)
	require.NoError(t, err)

	_, err = tbl.Resolve(model.KindSeek, e.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, 1, tbl.Len())
}

func TestRegister_SkipsSentinelAndLiveCollisions(t *testing.T) {
	src := &fixedSource{ids: []model.RequestID{5, 0, 5, 6}}
	tbl := NewTable(src)

	first, err := tbl.Register(context.Background(), model.KindPause, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, model.RequestID(5), first.ID)

	second, err := tbl.Register(context.Background(), model.KindPause, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, model.RequestID(6), second.ID)
}

func TestRegister_GivesUpAfterBoundedAttempts(t *testing.T) {
	src := &fixedSource{}
	tbl := NewTable(src)
	_, err := tbl.Register(context.Background(), model.KindStart, nil, nil, nil)
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestDrainAll_AdmissionOrder(t *testing.T) {
	tbl := NewTable(nil)
	var ids []model.RequestID
	for i := 0; i < 5; i++ {
		e, err := tbl.Register(context.Background(), model.KindCallCore, nil, nil, nil)
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}
	drained := tbl.DrainAll()
	require.Len(t, drained, 5)
	for i, e := range drained {
		require.Equal(t, ids[i], e.ID)
	}
	require.Equal(t, 0, tbl.Len())
}

func TestIDSources(t *testing.T) {
	c := NewCounterSource()
	require.Equal(t, model.RequestID(1), c.Next())
	require.Equal(t, model.RequestID(2), c.Next())

	seen := map[model.RequestID]struct{}{}
	var u UUIDSource
	for i := 0; i < 1000; i++ {
		id := u.Next()
		require.True(t, id.IsSet())
		seen[id] = struct{}{}
	}
	require.Len(t, seen, 1000)

	_, ok := SourceByName("uuid")
	require.True(t, ok)
	_, ok = SourceByName("prng")
	require.False(t, ok)
}

func TestRegister_ConcurrentUnique(t *testing.T) {
	tbl := NewTable(UUIDSource{})
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := tbl.Register(context.Background(), model.KindCallCore, nil, nil, nil)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 800, tbl.Len())
}
