// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package controller

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/ManuGH/playctl/internal/domain/playback/ports"
	"github.com/stretchr/testify/require"
)

// fakeEngine records submissions; replies are pushed by the test.
type fakeEngine struct {
	mu           sync.Mutex
	sink         ports.Sink
	submitted    []ports.Request
	configured   []model.SessionConfig
	submitErr    error
	configureErr error
}

func (f *fakeEngine) Attach(sink ports.Sink) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sink = sink
}

func (f *fakeEngine) Submit(_ context.Context, req ports.Request) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted = append(f.submitted, req)
	return nil
}

func (f *fakeEngine) Configure(_ context.Context, cfg model.SessionConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.configureErr != nil {
		return f.configureErr
	}
	f.configured = append(f.configured, cfg)
	return nil
}

func (f *fakeEngine) submissions() []ports.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ports.Request(nil), f.submitted...)
}

func (f *fakeEngine) last(t *testing.T) ports.Request {
	t.Helper()
	subs := f.submissions()
	require.NotEmpty(t, subs, "engine was never contacted")
	return subs[len(subs)-1]
}

func (f *fakeEngine) push(in ports.Inbound) {
	f.mu.Lock()
	sink := f.sink
	f.mu.Unlock()
	sink(in)
}

func (f *fakeEngine) complete(req ports.Request, msg model.Message, payload []byte) {
	f.push(ports.Inbound{
		Message:     msg,
		Correlation: &model.Correlation{Kind: req.Kind, ID: req.ID},
		Payload:     payload,
	})
}

func (f *fakeEngine) succeed(req ports.Request) {
	f.complete(req, model.Success(model.CodeOK, req.Kind.String()+" ok"), nil)
}

func (f *fakeEngine) fail(req ports.Request) {
	f.complete(req, model.Failure(model.SeverityWarning, model.CodeRequestFailed, req.Kind.String()+" failed"), nil)
}

func (f *fakeEngine) notice(code model.Code) {
	f.push(ports.Inbound{Message: model.Success(code, "")})
}

// recorder captures the outcome of a single request.
type recorder struct {
	mu        sync.Mutex
	successes []model.Event
	failures  []model.Event
}

func (r *recorder) onSuccess(ev model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, ev)
}

func (r *recorder) onFailure(ev model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, ev)
}

func (r *recorder) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.successes) + len(r.failures)
}

// onlyFailure asserts exactly one failure and no success, returning it.
func (r *recorder) onlyFailure(t *testing.T) model.Event {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.Empty(t, r.successes)
	require.Len(t, r.failures, 1)
	return r.failures[0]
}

// onlySuccess asserts exactly one success and no failure, returning it.
func (r *recorder) onlySuccess(t *testing.T) model.Event {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.Empty(t, r.failures)
	require.Len(t, r.successes, 1)
	return r.successes[0]
}

func newTestController(t *testing.T, mutate func(*Config)) (*Controller, *fakeEngine) {
	t.Helper()
	fe := &fakeEngine{}
	cfg := Config{
		Engine:       fe,
		Session:      model.SessionConfig{ABREnabled: true, StartMode: model.StartModeImmediate},
		DefaultAudio: model.AudioTrackSelection{Index: -1, Language: "en"},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	c, err := New(cfg)
	require.NoError(t, err)
	return c, fe
}

func validContent() *model.PrepareContentParams {
	return &model.PrepareContentParams{
		Content: model.ContentDescriptor{
			URI:             "file:///movie.mp4",
			Verified:        true,
			DisplayMappings: []model.DisplayMapping{{SurfaceID: "main"}},
		},
	}
}

// advance drives the session to target through the fake engine.
func advance(t *testing.T, c *Controller, fe *fakeEngine, target model.PlayerState) {
	t.Helper()
	ctx := context.Background()
	steps := []struct {
		reach model.PlayerState
		issue func()
	}{
		{model.StateInitialized, func() { c.Initialize(ctx, nil, nil, nil) }},
		{model.StateCorePrepared, func() { c.PrepareCore(ctx, nil, nil, nil) }},
		{model.StateContentPreparedForPlayout, func() { c.PrepareContentForPlayout(ctx, validContent(), nil, nil) }},
	}
	for _, step := range steps {
		if c.State() == target {
			return
		}
		step.issue()
		fe.succeed(fe.last(t))
		c.DrainAndDeliver()
		require.Equal(t, step.reach, c.State())
	}
	if c.State() == target {
		return
	}
	require.Equal(t, model.StatePlaying, target, "advance only reaches Playing beyond content preparation")
	fe.notice(model.CodeStateRunning)
	c.DrainAndDeliver()
	require.Equal(t, model.StatePlaying, c.State())
}

// stop drives the session to Stopped with the given engine verdict.
func stop(t *testing.T, c *Controller, fe *fakeEngine, ok bool) *recorder {
	t.Helper()
	rec := &recorder{}
	c.Stop(context.Background(), rec.onSuccess, rec.onFailure)
	require.Equal(t, model.StateStopping, c.State())
	if ok {
		fe.succeed(fe.last(t))
	} else {
		fe.fail(fe.last(t))
	}
	c.DrainAndDeliver()
	require.Equal(t, model.StateStopped, c.State())
	return rec
}

var errEngineDown = errors.New("engine down")
