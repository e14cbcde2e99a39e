// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package controller drives a playback session hosted by an external Engine.
//
// Operations are admitted or rejected synchronously on the calling goroutine.
// Every outcome (request completions, state changes, free-standing notices and
// locally synthesized failures) is queued and delivered only from
// DrainAndDeliver, which the host calls from its single delivery context.
package controller

import (
	"errors"
	"sync"

	"github.com/ManuGH/playctl/internal/domain/playback/eventq"
	"github.com/ManuGH/playctl/internal/domain/playback/lifecycle"
	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/ManuGH/playctl/internal/domain/playback/pending"
	"github.com/ManuGH/playctl/internal/domain/playback/ports"
	xglog "github.com/ManuGH/playctl/internal/log"
	"github.com/ManuGH/playctl/internal/metrics"
	"github.com/ManuGH/playctl/internal/telemetry"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

// ErrNilEngine is returned by New when no Engine is configured.
var ErrNilEngine = errors.New("controller: engine is nil")

// Config wires a Controller to its collaborators.
type Config struct {
	Engine  ports.Engine
	Encoder ports.PayloadEncoder // defaults to ports.JSONEncoder
	IDs     pending.IDSource     // defaults to a monotonic counter
	Hooks   ports.SessionHooks

	// Session is pushed to the Engine on entering CorePrepared.
	Session model.SessionConfig
	// DefaultAudio fills a missing audio-track selection on content preparation.
	DefaultAudio model.AudioTrackSelection

	Tracer trace.Tracer
}

// Controller is the request/response correlation layer over one Engine session.
type Controller struct {
	engine  ports.Engine
	encoder ports.PayloadEncoder
	hooks   ports.SessionHooks
	tracer  trace.Tracer

	machine *lifecycle.Machine
	pending *pending.Table
	queue   *eventq.Queue[envelope]

	sessMu       sync.RWMutex
	session      model.SessionConfig
	defaultAudio model.AudioTrackSelection

	listenMu  sync.Mutex
	listeners []listener
	nextLID   int

	cleanupOnce sync.Once
	slo         sloTracker

	// timing is recycled in the delivery context only.
	timing *model.Message

	unmatchedLog rate.Sometimes
	logger       zerolog.Logger
}

type listener struct {
	id int
	fn model.Callback
}

// New builds a controller in StateUninitialized and attaches its sink to the Engine.
func New(cfg Config) (*Controller, error) {
	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}
	if cfg.Encoder == nil {
		cfg.Encoder = ports.JSONEncoder{}
	}
	if cfg.Tracer == nil {
		cfg.Tracer = telemetry.Tracer(telemetry.PlaybackTracerName)
	}
	if cfg.Session.StartMode == "" {
		cfg.Session.StartMode = model.StartModeImmediate
	}

	c := &Controller{
		engine:       cfg.Engine,
		encoder:      cfg.Encoder,
		hooks:        cfg.Hooks,
		tracer:       cfg.Tracer,
		pending:      pending.NewTable(cfg.IDs),
		queue:        eventq.New[envelope](metrics.SetQueueDepth),
		session:      cfg.Session,
		defaultAudio: cfg.DefaultAudio,
		timing:       model.NewTimingUnavailable(),
		unmatchedLog: rate.Sometimes{First: 5, Every: 100},
		logger:       xglog.WithComponent("playback.controller"),
	}
	c.machine = lifecycle.NewMachine(lifecycle.Hooks{
		OnContentSession: c.onContentSession,
		OnCorePrepared:   c.onCorePrepared,
	})
	cfg.Engine.Attach(c.HandleMessage)
	return c, nil
}

// State returns the current PlayerState.
func (c *Controller) State() model.PlayerState { return c.machine.State() }

// IsBusy reports whether a command is between issue and its settled state.
func (c *Controller) IsBusy() bool { return c.machine.State().IsBusy() }

// IsPlaying reports whether the session is in StatePlaying.
func (c *Controller) IsPlaying() bool { return c.machine.State().IsPlaying() }

// CanPause reports whether Pause would currently be admitted.
func (c *Controller) CanPause() bool { return c.machine.State().CanPause() }

// CanUnpause reports whether Unpause would currently be admitted.
func (c *Controller) CanUnpause() bool { return c.machine.State().CanUnpause() }

// CanSeek reports whether Seek would currently be admitted.
func (c *Controller) CanSeek() bool { return c.machine.State().CanSeek() }

// IsStopped reports whether the session reached its terminal state.
func (c *Controller) IsStopped() bool { return c.machine.State().IsTerminal() }

// ContentSessionActive reports the content-session flag.
func (c *Controller) ContentSessionActive() bool { return c.machine.ContentSessionActive() }

// SetSessionConfig replaces the configuration pushed on the next CorePrepared transition.
func (c *Controller) SetSessionConfig(cfg model.SessionConfig) {
	c.sessMu.Lock()
	c.session = cfg
	c.sessMu.Unlock()
}

// SessionConfig returns the configuration pushed on entering CorePrepared.
func (c *Controller) SessionConfig() model.SessionConfig {
	c.sessMu.RLock()
	defer c.sessMu.RUnlock()
	return c.session
}

// SetDefaultAudio replaces the audio-track selection used when a caller leaves it empty.
func (c *Controller) SetDefaultAudio(sel model.AudioTrackSelection) {
	c.sessMu.Lock()
	c.defaultAudio = sel
	c.sessMu.Unlock()
}

func (c *Controller) audioDefault() model.AudioTrackSelection {
	c.sessMu.RLock()
	defer c.sessMu.RUnlock()
	return c.defaultAudio
}

// AddListener registers fn for every delivered Event. Listeners run after the
// request's own callback, in registration order. The returned func removes fn.
func (c *Controller) AddListener(fn model.Callback) (remove func()) {
	c.listenMu.Lock()
	c.nextLID++
	id := c.nextLID
	c.listeners = append(c.listeners, listener{id: id, fn: fn})
	c.listenMu.Unlock()

	return func() {
		c.listenMu.Lock()
		defer c.listenMu.Unlock()
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) snapshotListeners() []model.Callback {
	c.listenMu.Lock()
	defer c.listenMu.Unlock()
	out := make([]model.Callback, len(c.listeners))
	for i, l := range c.listeners {
		out[i] = l.fn
	}
	return out
}

// Snapshot is a point-in-time view of the session for diagnostics.
type Snapshot struct {
	State                string `json:"state"`
	ContentSessionActive bool   `json:"contentSessionActive"`
	Busy                 bool   `json:"busy"`
	Pending              int    `json:"pending"`
	QueueDepth           int    `json:"queueDepth"`
}

// Snapshot returns the current diagnostic view.
func (c *Controller) Snapshot() Snapshot {
	s := c.machine.State()
	return Snapshot{
		State:                s.String(),
		ContentSessionActive: c.machine.ContentSessionActive(),
		Busy:                 s.IsBusy(),
		Pending:              c.pending.Len(),
		QueueDepth:           c.queue.Len(),
	}
}
