// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package stub is a simulated Engine. It answers every request from its own
// goroutine after a fixed delay and emits the state notices a real Engine would.
package stub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/ManuGH/playctl/internal/domain/playback/ports"
	xglog "github.com/ManuGH/playctl/internal/log"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrClosed = errors.New("stub engine closed")
	ErrBusy   = errors.New("stub engine backlog full")
)

const backlog = 64

// Options configures the simulated Engine.
type Options struct {
	// ReplyDelay is applied before answering each request.
	ReplyDelay time.Duration
	// FailKinds are answered with a Warning failure instead of success.
	FailKinds []model.RequestKind
	// FailConfigure makes Configure return an error.
	FailConfigure bool
}

type job struct {
	req    *ports.Request
	notice *ports.Inbound
}

// Engine implements ports.Engine.
type Engine struct {
	mu         sync.Mutex
	sink       ports.Sink
	closed     bool
	configured *model.SessionConfig
	position   time.Duration

	opts   Options
	fail   map[model.RequestKind]bool
	handle string
	jobs   chan job
	done   chan struct{}
	wg     sync.WaitGroup
	logger zerolog.Logger
}

// New starts a simulated Engine. Close must be called to stop its goroutine.
func New(opts Options) *Engine {
	e := &Engine{
		opts:   opts,
		fail:   make(map[model.RequestKind]bool, len(opts.FailKinds)),
		handle: "stub-" + uuid.New().String(),
		jobs:   make(chan job, backlog),
		done:   make(chan struct{}),
	}
	for _, k := range opts.FailKinds {
		e.fail[k] = true
	}
	e.logger = xglog.Derive(func(c *zerolog.Context) {
		*c = c.Str(xglog.FieldComponent, "engine.stub").Str(xglog.FieldSessionID, e.handle)
	})
	e.wg.Add(1)
	go e.run()
	return e
}

// Handle identifies this simulated engine instance.
func (e *Engine) Handle() string { return e.handle }

// Attach installs the inbound sink.
func (e *Engine) Attach(sink ports.Sink) {
	e.mu.Lock()
	e.sink = sink
	e.mu.Unlock()
}

// Submit queues req for an asynchronous reply.
func (e *Engine) Submit(ctx context.Context, req ports.Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.enqueue(job{req: &req})
}

// Configure records the session configuration.
func (e *Engine) Configure(ctx context.Context, cfg model.SessionConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	if e.opts.FailConfigure {
		return fmt.Errorf("configure %s: rejected", e.handle)
	}
	e.configured = &cfg
	return nil
}

// Configured returns the last configuration pushed, if any.
func (e *Engine) Configured() (model.SessionConfig, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.configured == nil {
		return model.SessionConfig{}, false
	}
	return *e.configured, true
}

// Emit queues an unsolicited message, delivered in order with request replies.
func (e *Engine) Emit(in ports.Inbound) error {
	return e.enqueue(job{notice: &in})
}

func (e *Engine) enqueue(j job) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	select {
	case e.jobs <- j:
		return nil
	default:
		return ErrBusy
	}
}

// Close stops the engine goroutine and waits for it to exit. Queued jobs are discarded.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	close(e.done)
	e.mu.Unlock()
	e.wg.Wait()
	return nil
}

func (e *Engine) run() {
	defer e.wg.Done()
	for {
		select {
		case <-e.done:
			return
		case j := <-e.jobs:
			if j.notice != nil {
				e.send(*j.notice)
				continue
			}
			if !e.wait() {
				return
			}
			e.reply(*j.req)
		}
	}
}

func (e *Engine) wait() bool {
	if e.opts.ReplyDelay <= 0 {
		return true
	}
	t := time.NewTimer(e.opts.ReplyDelay)
	defer t.Stop()
	select {
	case <-e.done:
		return false
	case <-t.C:
		return true
	}
}

func (e *Engine) send(in ports.Inbound) {
	e.mu.Lock()
	sink := e.sink
	e.mu.Unlock()
	if sink == nil {
		e.logger.Warn().Int32(xglog.FieldCode, int32(in.Message.Code())).Msg("no sink attached; message dropped")
		return
	}
	sink(in)
}

func notice(code model.Code) ports.Inbound {
	return ports.Inbound{Message: model.Success(code, "")}
}

func (e *Engine) reply(req ports.Request) {
	corr := &model.Correlation{Kind: req.Kind, ID: req.ID}
	done := func(payload []byte) {
		e.send(ports.Inbound{Message: model.Success(model.CodeOK, req.Kind.String()+" done"), Correlation: corr, Payload: payload})
	}

	e.logger.Debug().
		Str(xglog.FieldRequestKind, req.Kind.String()).
		Uint64(xglog.FieldRequestID, uint64(req.ID)).
		Msg("stub handling request")

	if e.fail[req.Kind] {
		e.send(ports.Inbound{
			Message:     model.Failure(model.SeverityWarning, model.CodeRequestFailed, req.Kind.String()+" failed"),
			Correlation: corr,
		})
		return
	}

	switch req.Kind {
	case model.KindStart:
		done(nil)
		e.send(notice(model.CodeStateBuffering))
		e.send(notice(model.CodeStateRunning))
	case model.KindPause:
		done(nil)
		e.send(notice(model.CodeStatePausing))
		e.send(notice(model.CodeStatePaused))
	case model.KindUnpause:
		done(nil)
		e.send(notice(model.CodeStateRunning))
	case model.KindSeek:
		var p model.SeekParams
		if err := json.Unmarshal(req.Payload, &p); err == nil {
			e.mu.Lock()
			e.position = p.Position
			e.mu.Unlock()
		}
		e.send(notice(model.CodeStateSeeking))
		done(nil)
		e.send(notice(model.CodeStateRunning))
	case model.KindSwitchContent:
		e.send(notice(model.CodeStateSwitchingContent))
		done(nil)
		e.send(notice(model.CodeStateRunning))
	case model.KindSwitchAudioTrack:
		done(nil)
		e.send(ports.Inbound{Message: model.Success(model.CodeActiveTrackChanged, "audio track changed"), Payload: req.Payload})
	case model.KindCallCore, model.KindParseMediaInfo:
		done(req.Payload)
	case model.KindGetTiming:
		e.mu.Lock()
		info := model.TimingInfo{Position: e.position}
		e.mu.Unlock()
		b, err := json.Marshal(info)
		if err != nil {
			done(nil)
			return
		}
		done(b)
	default:
		done(nil)
	}
}

var _ ports.Engine = (*Engine)(nil)
