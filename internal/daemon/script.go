// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package daemon

import (
	"context"
	"time"

	"github.com/ManuGH/playctl/internal/config"
	"github.com/ManuGH/playctl/internal/domain/playback/controller"
	"github.com/ManuGH/playctl/internal/domain/playback/model"
	xglog "github.com/ManuGH/playctl/internal/log"
	"github.com/rs/zerolog"
)

// Step is one scripted host action.
type Step struct {
	Name string
	// Ready gates the step; the script waits while it reports false.
	Ready func(c *controller.Controller) bool
	Issue func(ctx context.Context, c *controller.Controller, onSuccess, onFailure model.Callback)
}

// Script drives a controller through a fixed sequence of steps, one request
// in flight at a time. Advance must be called from the delivery context.
type Script struct {
	steps    []Step
	idx      int
	inFlight bool
	failures int
	logger   zerolog.Logger
}

// NewScript returns a script over steps.
func NewScript(steps []Step) *Script {
	return &Script{steps: steps, logger: xglog.WithComponent("daemon.script")}
}

// Done reports whether every step has resolved.
func (s *Script) Done() bool { return s.idx >= len(s.steps) && !s.inFlight }

// Failures returns the number of steps that resolved with a failure.
func (s *Script) Failures() int { return s.failures }

// Advance issues the next step if the previous one resolved and the next is ready.
func (s *Script) Advance(ctx context.Context, c *controller.Controller) {
	if s.inFlight || s.idx >= len(s.steps) {
		return
	}
	step := s.steps[s.idx]
	if step.Ready != nil && !step.Ready(c) {
		return
	}
	s.inFlight = true
	s.logger.Info().Str("step", step.Name).Str("state", c.State().String()).Msg("issuing scripted step")
	step.Issue(ctx, c, s.resolved(step, true), s.resolved(step, false))
}

func (s *Script) resolved(step Step, ok bool) model.Callback {
	return func(ev model.Event) {
		s.inFlight = false
		s.idx++
		evt := s.logger.Info()
		if !ok {
			s.failures++
			evt = s.logger.Warn()
			// Abandon the remaining steps but always finish with the last one (Stop).
			if last := len(s.steps) - 1; s.idx < last {
				s.idx = last
			}
		}
		evt.Str("step", step.Name).
			Str(xglog.FieldResult, ev.Message.Result().String()).
			Int32(xglog.FieldCode, int32(ev.Message.Code())).
			Str(xglog.FieldEvent, ev.Type.String()).
			Msg("scripted step resolved")
	}
}

// DefaultScript is the demo session run by the daemon against the stub engine.
func DefaultScript(cfg config.Config) *Script {
	always := func(*controller.Controller) bool { return true }
	return NewScript([]Step{
		{Name: "initialize", Ready: always, Issue: func(ctx context.Context, c *controller.Controller, ok, fail model.Callback) {
			c.Initialize(ctx, &model.InitializeParams{Platform: "playctl"}, ok, fail)
		}},
		{Name: "prepare_core", Ready: always, Issue: func(ctx context.Context, c *controller.Controller, ok, fail model.Callback) {
			c.PrepareCore(ctx, &model.PrepareCoreParams{Decoders: []string{"h264", "aac"}}, ok, fail)
		}},
		{Name: "content_supported", Ready: always, Issue: func(ctx context.Context, c *controller.Controller, ok, fail model.Callback) {
			c.ContentSupportedTest(ctx, &model.ContentSupportedTestParams{Content: demoContent()}, ok, fail)
		}},
		{Name: "prepare_content", Ready: always, Issue: func(ctx context.Context, c *controller.Controller, ok, fail model.Callback) {
			c.PrepareContentForPlayout(ctx, &model.PrepareContentParams{
				Content: demoContent(),
				Timeout: cfg.Session.PrepareTimeout,
			}, ok, fail)
		}},
		{Name: "start", Ready: always, Issue: func(ctx context.Context, c *controller.Controller, ok, fail model.Callback) {
			c.Start(ctx, nil, ok, fail)
		}},
		{Name: "seek", Ready: (*controller.Controller).CanSeek, Issue: func(ctx context.Context, c *controller.Controller, ok, fail model.Callback) {
			c.Seek(ctx, &model.SeekParams{Position: 30 * time.Second}, ok, fail)
		}},
		{Name: "pause", Ready: (*controller.Controller).CanPause, Issue: func(ctx context.Context, c *controller.Controller, ok, fail model.Callback) {
			c.Pause(ctx, ok, fail)
		}},
		{Name: "unpause", Ready: (*controller.Controller).CanUnpause, Issue: func(ctx context.Context, c *controller.Controller, ok, fail model.Callback) {
			c.Unpause(ctx, ok, fail)
		}},
		{Name: "timing", Ready: (*controller.Controller).IsPlaying, Issue: func(ctx context.Context, c *controller.Controller, ok, fail model.Callback) {
			c.GetTiming(ctx, ok, fail)
		}},
		{Name: "stereo", Ready: always, Issue: func(ctx context.Context, c *controller.Controller, ok, fail model.Callback) {
			c.ChangeStereoMode(ctx, &model.ChangeStereoModeParams{Mode: model.StereoMono}, ok, fail)
		}},
		{Name: "stop", Ready: always, Issue: func(ctx context.Context, c *controller.Controller, ok, fail model.Callback) {
			c.Stop(ctx, ok, fail)
		}},
	})
}

func demoContent() model.ContentDescriptor {
	return model.ContentDescriptor{
		URI:             "stub://demo/clip.mp4",
		Verified:        true,
		DisplayMappings: []model.DisplayMapping{{SurfaceID: "main", Stereo: model.StereoMono}},
	}
}
