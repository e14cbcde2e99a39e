// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestHolder_ReloadSwapsAndNotifies(t *testing.T) {
	path := writeFile(t, "playctl.yaml", "logLevel: info\n")
	l := NewLoader(path, "")
	initial, err := l.Load()
	require.NoError(t, err)

	h := NewHolder(initial, l, path)
	ch := make(chan Config, 1)
	h.RegisterListener(ch)

	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\n"), 0o600))
	require.NoError(t, h.Reload(context.Background()))
	require.Equal(t, "debug", h.Get().LogLevel)
	require.Equal(t, "debug", (<-ch).LogLevel)
}

func TestHolder_InvalidReloadKeepsOld(t *testing.T) {
	path := writeFile(t, "playctl.yaml", "logLevel: warn\n")
	l := NewLoader(path, "")
	initial, err := l.Load()
	require.NoError(t, err)
	h := NewHolder(initial, l, path)

	require.NoError(t, os.WriteFile(path, []byte("tickInterval: -1s\n"), 0o600))
	require.Error(t, h.Reload(context.Background()))
	require.Equal(t, "warn", h.Get().LogLevel)
}

func TestHolder_WatchReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := writeFile(t, "playctl.yaml", "logLevel: info\n")
	l := NewLoader(path, "")
	initial, err := l.Load()
	require.NoError(t, err)
	h := NewHolder(initial, l, path)
	h.debounce = 10 * time.Millisecond

	ch := make(chan Config, 4)
	h.RegisterListener(ch)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Watch(ctx) }()

	// Give the watcher time to register before writing.
	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte("logLevel: error\n"), 0o600); err != nil {
			return false
		}
		select {
		case cfg := <-ch:
			return cfg.LogLevel == "error"
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	require.Equal(t, "error", h.Get().LogLevel)
}

func TestHolder_WatchWithoutPathBlocksUntilCancel(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := NewHolder(Default(), NewLoader("", ""), "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, h.Watch(ctx))
}
