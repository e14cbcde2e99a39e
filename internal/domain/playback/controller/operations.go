// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package controller

import (
	"context"
	"time"

	"github.com/ManuGH/playctl/internal/domain/playback/lifecycle"
	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/ManuGH/playctl/internal/domain/playback/pending"
	"github.com/ManuGH/playctl/internal/domain/playback/ports"
	xglog "github.com/ManuGH/playctl/internal/log"
	"github.com/ManuGH/playctl/internal/metrics"
	"github.com/ManuGH/playctl/internal/telemetry"
	"go.opentelemetry.io/otel/trace"
)

// Initialize brings up the Engine core.
func (c *Controller) Initialize(ctx context.Context, p *model.InitializeParams, onSuccess, onFailure model.Callback, extra ...any) {
	c.Issue(ctx, model.KindInitialize, p, onSuccess, onFailure, extra...)
}

// PrepareCore loads decoders once the core is initialized.
func (c *Controller) PrepareCore(ctx context.Context, p *model.PrepareCoreParams, onSuccess, onFailure model.Callback, extra ...any) {
	c.Issue(ctx, model.KindPrepareCore, p, onSuccess, onFailure, extra...)
}

// PrepareContentForPlayout attaches content. On admission the session moves to
// PreparingContentForPlayout immediately, before the Engine replies.
func (c *Controller) PrepareContentForPlayout(ctx context.Context, p *model.PrepareContentParams, onSuccess, onFailure model.Callback, extra ...any) {
	c.Issue(ctx, model.KindPrepareContentForPlayout, p, onSuccess, onFailure, extra...)
}

func (c *Controller) Start(ctx context.Context, p *model.StartParams, onSuccess, onFailure model.Callback, extra ...any) {
	c.Issue(ctx, model.KindStart, p, onSuccess, onFailure, extra...)
}

func (c *Controller) Pause(ctx context.Context, onSuccess, onFailure model.Callback, extra ...any) {
	c.Issue(ctx, model.KindPause, nil, onSuccess, onFailure, extra...)
}

func (c *Controller) Unpause(ctx context.Context, onSuccess, onFailure model.Callback, extra ...any) {
	c.Issue(ctx, model.KindUnpause, nil, onSuccess, onFailure, extra...)
}

func (c *Controller) Seek(ctx context.Context, p *model.SeekParams, onSuccess, onFailure model.Callback, extra ...any) {
	c.Issue(ctx, model.KindSeek, p, onSuccess, onFailure, extra...)
}

// Stop ends the session. It is admitted from every state except Stopping and
// Stopped and always reaches Stopped, whatever the Engine reports.
func (c *Controller) Stop(ctx context.Context, onSuccess, onFailure model.Callback, extra ...any) {
	c.Issue(ctx, model.KindStop, nil, onSuccess, onFailure, extra...)
}

// SwitchContent replaces the playing content; the descriptor must be verified.
func (c *Controller) SwitchContent(ctx context.Context, p *model.SwitchContentParams, onSuccess, onFailure model.Callback, extra ...any) {
	c.Issue(ctx, model.KindSwitchContent, p, onSuccess, onFailure, extra...)
}

func (c *Controller) ChangeStereoMode(ctx context.Context, p *model.ChangeStereoModeParams, onSuccess, onFailure model.Callback, extra ...any) {
	c.Issue(ctx, model.KindChangeStereoMode, p, onSuccess, onFailure, extra...)
}

// CallCore forwards an opaque payload to the Engine unchanged.
func (c *Controller) CallCore(ctx context.Context, p *model.CallCoreParams, onSuccess, onFailure model.Callback, extra ...any) {
	c.Issue(ctx, model.KindCallCore, p, onSuccess, onFailure, extra...)
}

func (c *Controller) SwitchAudioTrack(ctx context.Context, p *model.SwitchAudioTrackParams, onSuccess, onFailure model.Callback, extra ...any) {
	c.Issue(ctx, model.KindSwitchAudioTrack, p, onSuccess, onFailure, extra...)
}

func (c *Controller) ParseMediaInfo(ctx context.Context, p *model.ParseMediaInfoParams, onSuccess, onFailure model.Callback, extra ...any) {
	c.Issue(ctx, model.KindParseMediaInfo, p, onSuccess, onFailure, extra...)
}

func (c *Controller) ContentSupportedTest(ctx context.Context, p *model.ContentSupportedTestParams, onSuccess, onFailure model.Callback, extra ...any) {
	c.Issue(ctx, model.KindContentSupportedTest, p, onSuccess, onFailure, extra...)
}

// GetTiming requests the current playout position. A reply without timing
// data is delivered as a Warning CodeTimingUnavailable failure.
func (c *Controller) GetTiming(ctx context.Context, onSuccess, onFailure model.Callback, extra ...any) {
	c.Issue(ctx, model.KindGetTiming, nil, onSuccess, onFailure, extra...)
}

// Issue admits or rejects a request of any kind. It never blocks on the
// Engine and never returns an outcome; exactly one of onSuccess/onFailure
// runs later from DrainAndDeliver.
func (c *Controller) Issue(ctx context.Context, kind model.RequestKind, params any, onSuccess, onFailure model.Callback, extra ...any) {
	if ctx == nil {
		ctx = context.Background()
	}
	state := c.machine.State()

	ctx, span := c.tracer.Start(ctx, "playback."+kind.String(), trace.WithSpanKind(trace.SpanKindClient))

	entry, err := c.pending.Register(ctx, kind, onSuccess, onFailure, extra)
	if err != nil {
		// Cannot be correlated with an Engine reply; fail it locally.
		c.logger.Error().Err(err).Str(xglog.FieldRequestKind, kind.String()).Msg("request id allocation failed")
		entry = &pending.Entry{Kind: kind, OnSuccess: onSuccess, OnFailure: onFailure, Extra: extra, Ctx: ctx, Admitted: time.Now()}
		c.reject(entry, rejectWith(model.CodeRequestFailed, "request id allocation failed"))
		return
	}
	span.SetAttributes(telemetry.RequestAttributes(kind.String(), uint64(entry.ID), len(extra), state.String())...)
	logger := xglog.WithContext(ctx, c.logger).With().
		Str(xglog.FieldRequestKind, kind.String()).
		Uint64(xglog.FieldRequestID, uint64(entry.ID)).
		Logger()

	norm, reject := c.validate(kind, state, params)
	if reject != nil {
		logger.Debug().Int32(xglog.FieldCode, int32(reject.Code())).Str(xglog.FieldEvent, "request.rejected").Msg(reject.Text())
		c.unregisterAndReject(entry, reject)
		return
	}

	payload, err := c.encoder.Encode(kind, norm)
	if err != nil {
		logger.Debug().Err(err).Str(xglog.FieldEvent, "request.rejected").Msg("payload encoding failed")
		c.unregisterAndReject(entry, invalidArgument(kind, err.Error()))
		return
	}

	if tr, ok := lifecycle.IssueTrigger(kind); ok {
		t, err := c.machine.Fire(tr)
		if err != nil {
			// State moved between validation and issue.
			logger.Debug().Err(err).Str(xglog.FieldEvent, "request.rejected").Msg("optimistic transition refused")
			c.unregisterAndReject(entry, invalidState(kind, t.From))
			return
		}
		msg := model.Success(model.CodeOK, t.To.String())
		c.queue.Push(envelope{event: model.Event{Type: t.Event, Message: msg}})
	}

	metrics.IncRequest(kind.String(), "admitted")
	logger.Debug().Str(xglog.FieldEvent, "request.admitted").Msg("request admitted")

	if err := c.engine.Submit(ctx, ports.Request{Kind: kind, ID: entry.ID, Payload: payload}); err != nil {
		logger.Warn().Err(err).Str(xglog.FieldEvent, "request.submit_failed").Msg("engine refused request")
		metrics.IncRequest(kind.String(), "submit_failed")
		if _, rerr := c.pending.Resolve(kind, entry.ID); rerr != nil {
			// Already settled by a reply racing the submit error.
			return
		}
		msg := model.Failure(model.SeverityWarning, model.CodeEngineUnavailable, "engine unavailable: "+err.Error())
		c.queue.Push(envelope{
			event: model.Event{Message: msg, Correlation: entry.Correlation()},
			entry: entry,
		})
	}
}

// unregisterAndReject resolves a registered entry locally and queues its failure.
func (c *Controller) unregisterAndReject(entry *pending.Entry, msg *model.Message) {
	if _, err := c.pending.Resolve(entry.Kind, entry.ID); err != nil {
		c.logger.Error().Err(err).Str(xglog.FieldRequestKind, entry.Kind.String()).Msg("rejected request vanished from pending table")
	}
	c.reject(entry, msg)
}

func (c *Controller) reject(entry *pending.Entry, msg *model.Message) {
	metrics.IncRequest(entry.Kind.String(), "rejected")
	c.queue.Push(envelope{
		event:    model.Event{Message: *msg, Correlation: entry.Correlation()},
		entry:    entry,
		rejected: true,
	})
}
