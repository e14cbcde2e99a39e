// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package controller_test

import (
	"context"
	"testing"
	"time"

	"github.com/ManuGH/playctl/internal/domain/playback/controller"
	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/ManuGH/playctl/internal/domain/playback/ports"
	"github.com/ManuGH/playctl/internal/infrastructure/engine/stub"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// drainUntil ticks the delivery context until cond holds.
func drainUntil(t *testing.T, c *controller.Controller, cond func() bool) {
	t.Helper()
	require.Eventually(t, func() bool {
		c.DrainAndDeliver()
		return cond()
	}, 2*time.Second, time.Millisecond)
}

func TestSession_AgainstStubEngine(t *testing.T) {
	defer goleak.VerifyNone(t)

	eng := stub.New(stub.Options{ReplyDelay: time.Millisecond})
	defer eng.Close()

	cleaned := false
	c, err := controller.New(controller.Config{
		Engine:  eng,
		Session: model.SessionConfig{ABREnabled: true, StartMode: model.StartModeOnDemand},
		Hooks:   portsHooks(&cleaned),
	})
	require.NoError(t, err)

	var types []model.EventType
	c.AddListener(func(ev model.Event) { types = append(types, ev.Type) })

	ctx := context.Background()
	is := func(s model.PlayerState) func() bool { return func() bool { return c.State() == s } }

	c.Initialize(ctx, &model.InitializeParams{Platform: "test"}, nil, nil)
	drainUntil(t, c, is(model.StateInitialized))

	c.PrepareCore(ctx, nil, nil, nil)
	drainUntil(t, c, is(model.StateCorePrepared))
	cfg, ok := eng.Configured()
	require.True(t, ok)
	require.Equal(t, model.StartModeOnDemand, cfg.StartMode)

	c.PrepareContentForPlayout(ctx, &model.PrepareContentParams{
		Content: model.ContentDescriptor{
			URI:             "file:///clip.mp4",
			Verified:        true,
			DisplayMappings: []model.DisplayMapping{{SurfaceID: "main", Stereo: model.StereoMono}},
		},
		Timeout: time.Second,
	}, nil, nil)
	drainUntil(t, c, is(model.StateContentPreparedForPlayout))

	c.Start(ctx, nil, nil, nil)
	drainUntil(t, c, c.IsPlaying)

	paused := false
	c.Pause(ctx, func(model.Event) { paused = true }, nil)
	drainUntil(t, c, is(model.StatePaused))
	require.True(t, paused)

	c.Unpause(ctx, nil, nil)
	drainUntil(t, c, c.IsPlaying)

	var pos time.Duration
	c.Seek(ctx, &model.SeekParams{Position: 90 * time.Second}, nil, nil)
	drainUntil(t, c, c.IsPlaying)
	c.GetTiming(ctx, func(ev model.Event) {
		if info, err := controller.DecodeTiming(ev); err == nil {
			pos = info.Position
		}
	}, nil)
	drainUntil(t, c, func() bool { return pos == 90*time.Second })

	stopped := false
	c.Stop(ctx, func(model.Event) { stopped = true }, nil)
	drainUntil(t, c, c.IsStopped)
	require.True(t, stopped)
	require.True(t, cleaned)

	require.Contains(t, types, model.EventStateChangedBuffering)
	require.Contains(t, types, model.EventStateChangedSeeking)
	require.Equal(t, model.EventStateChangedStopped, types[len(types)-1])
}

func portsHooks(cleaned *bool) ports.SessionHooks {
	return ports.SessionHooks{OnCleanup: func() { *cleaned = true }}
}
