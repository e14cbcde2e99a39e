// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package controller

import (
	"context"
	"errors"
	"time"

	"github.com/ManuGH/playctl/internal/domain/playback/lifecycle"
	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/ManuGH/playctl/internal/domain/playback/pending"
	xglog "github.com/ManuGH/playctl/internal/log"
	"github.com/ManuGH/playctl/internal/metrics"
	"github.com/ManuGH/playctl/internal/telemetry"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DrainAndDeliver settles and delivers queued outcomes in FIFO order until
// the queue is empty, including outcomes pushed by callbacks during this
// call. It must only be called from the host's delivery context. It returns
// the number of events delivered to callbacks and listeners.
func (c *Controller) DrainAndDeliver() int {
	delivered := 0
	c.queue.Drain(func(env envelope) {
		if c.settle(env) {
			delivered++
		}
	})
	return delivered
}

// settle applies the state effect of env and delivers its event. It reports
// false when the envelope was dropped.
func (c *Controller) settle(env envelope) bool {
	switch {
	case env.trigger != nil:
		return c.settleNotice(env)
	case env.entry != nil:
		c.settleCompletion(env)
		return true
	default:
		if c.machine.State().IsTerminal() {
			metrics.IncDroppedNotice("late")
			c.logger.Warn().
				Str(xglog.FieldEvent, "dispatch.late_notice").
				Int32(xglog.FieldCode, int32(env.event.Message.Code())).
				Msg("notice after stop dropped")
			return false
		}
		c.deliver(env.event, nil)
		return true
	}
}

func (c *Controller) settleNotice(env envelope) bool {
	t, err := c.machine.Fire(*env.trigger)
	if err != nil {
		from := t.From
		if errors.Is(err, lifecycle.ErrTerminal) || from == model.StateStopping {
			metrics.IncDroppedNotice("late")
			c.logger.Warn().Err(err).
				Str(xglog.FieldEvent, "dispatch.late_notice").
				Str(xglog.FieldTrigger, env.trigger.String()).
				Msg("state notice after stop dropped")
			return false
		}
		metrics.IncDroppedNotice("forbidden")
		c.logger.Error().Err(err).
			Str(xglog.FieldEvent, "dispatch.notice_rejected").
			Str(xglog.FieldTrigger, env.trigger.String()).
			Str(xglog.FieldOldState, from.String()).
			Msg("state notice rejected by state machine")
		return false
	}
	c.slo.transition(t.From, t.To, c.SessionConfig().StartMode)
	ev := env.event
	ev.Type = t.Event
	c.deliver(ev, nil)
	return true
}

func (c *Controller) settleCompletion(env envelope) {
	entry := env.entry
	ev := env.event
	if ev.Correlation == nil {
		ev.Correlation = entry.Correlation()
	}

	if entry.Kind == model.KindGetTiming && ev.Message.OK() && len(ev.Payload) == 0 {
		text := ev.Message.Text()
		if text == "" {
			text = "timing unavailable"
		}
		c.timing.Update(model.SeverityWarning, model.CodeTimingUnavailable, text, model.ResultFailure)
		ev.Message = *c.timing
	}

	ev.Type = completionType(ev.Message)

	if !env.rejected {
		if entry.Kind == model.KindStop {
			if !ev.Message.OK() {
				c.logger.Warn().
					Uint64(xglog.FieldRequestID, uint64(entry.ID)).
					Int32(xglog.FieldCode, int32(ev.Message.Code())).
					Str(xglog.FieldEvent, "dispatch.stop_failed").
					Msg("stop reported failure; finalizing session anyway")
			}
			c.cleanup()
		}
		if entry.Kind == model.KindStart {
			c.slo.startCompleted(entry.Admitted, ev.Message.OK(), c.SessionConfig().StartMode)
		}
		if tr, ok := lifecycle.CompletionTrigger(entry.Kind, ev.Message.OK()); ok {
			t, err := c.machine.Fire(tr)
			if err != nil {
				c.logger.Warn().Err(err).
					Str(xglog.FieldRequestKind, entry.Kind.String()).
					Uint64(xglog.FieldRequestID, uint64(entry.ID)).
					Str(xglog.FieldEvent, "dispatch.completion_superseded").
					Msg("completion no longer moves the session")
			} else {
				c.slo.transition(t.From, t.To, c.SessionConfig().StartMode)
				ev.Type = t.Event
			}
		}
	}

	c.finishSpan(entry, ev.Message)
	c.deliver(ev, entry)
}

// cleanup runs once before the session reaches Stopped. Outstanding requests
// are failed as cancelled so each still resolves exactly once.
func (c *Controller) cleanup() {
	c.cleanupOnce.Do(func() {
		c.slo.stopped(c.SessionConfig().StartMode)
		if c.hooks.OnCleanup != nil {
			c.hooks.OnCleanup()
		}
		for _, entry := range c.pending.DrainAll() {
			msg := model.Failure(model.SeverityWarning, model.CodeRequestCancelled, "request cancelled by stop")
			ev := model.Event{Type: completionType(msg), Message: msg, Correlation: entry.Correlation()}
			c.finishSpan(entry, msg)
			c.deliver(ev, entry)
		}
	})
}

// deliver invokes the request callback, if any, then every listener.
func (c *Controller) deliver(ev model.Event, entry *pending.Entry) {
	if entry != nil {
		if !entry.Complete(ev) {
			return
		}
		metrics.ObserveResult(entry.Kind.String(), ev.Message.Result().String(), time.Since(entry.Admitted).Seconds())
		if !ev.Message.OK() {
			metrics.IncSessionError(entry.Kind.String(), int(ev.Message.Code()))
		}
	}
	metrics.IncDelivered(ev.Type.String())
	for _, fn := range c.snapshotListeners() {
		fn(ev)
	}
}

func (c *Controller) finishSpan(entry *pending.Entry, msg model.Message) {
	span := trace.SpanFromContext(entry.Ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(telemetry.OutcomeAttributes(msg.OK(), int(msg.Code()), msg.Severity().String())...)
	if !msg.OK() {
		span.SetStatus(codes.Error, msg.Text())
	}
	span.End()
}

func completionType(msg model.Message) model.EventType {
	switch {
	case msg.Severity() == model.SeverityFatal:
		return model.EventFatalError
	case !msg.OK():
		return model.EventWarning
	default:
		return model.EventRequestCompleted
	}
}

// onCorePrepared pushes the session configuration. It runs in the context
// that fired the transition; failures surface as a Warning event.
func (c *Controller) onCorePrepared() {
	cfg := c.SessionConfig()
	if err := c.engine.Configure(context.Background(), cfg); err != nil {
		c.logger.Warn().Err(err).Str(xglog.FieldEvent, "session.configure_failed").Msg("session configuration rejected")
		msg := model.Failure(model.SeverityWarning, model.CodeEngineUnavailable, "session configuration failed: "+err.Error())
		c.queue.Push(envelope{event: model.Event{Type: model.EventWarning, Message: msg}})
		return
	}
	c.logger.Debug().
		Bool("abr_enabled", cfg.ABREnabled).
		Str("start_mode", string(cfg.StartMode)).
		Msg("session configuration pushed")
}

func (c *Controller) onContentSession(active bool) {
	if c.hooks.OnContentSession != nil {
		c.hooks.OnContentSession(active)
	}
}
