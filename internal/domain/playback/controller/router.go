// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package controller

import (
	"github.com/ManuGH/playctl/internal/domain/playback/lifecycle"
	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/ManuGH/playctl/internal/domain/playback/pending"
	"github.com/ManuGH/playctl/internal/domain/playback/ports"
	xglog "github.com/ManuGH/playctl/internal/log"
	"github.com/ManuGH/playctl/internal/metrics"
)

// envelope is one queued outcome. Exactly one of trigger/entry is set for
// state notices and request completions; neither for free-standing events.
type envelope struct {
	event   model.Event
	trigger *lifecycle.Trigger
	entry   *pending.Entry
	// rejected marks failures synthesized before the Engine was contacted;
	// they never move the state machine.
	rejected bool
}

var _ ports.Sink = (*Controller)(nil).HandleMessage

// HandleMessage is the Engine sink. It may be called from any goroutine at
// any time. It only classifies and enqueues; state and callbacks are settled
// in DrainAndDeliver.
func (c *Controller) HandleMessage(in ports.Inbound) {
	msg := in.Message

	// State notices are absorbed into the state machine and never emitted
	// as a free-standing event as well.
	if model.IsStateNoticeCode(msg.Code()) {
		tr, err := lifecycle.TriggerForStateCode(msg.Code())
		if err != nil {
			metrics.IncDroppedNotice("unknown_state_code")
			c.logger.Error().Err(err).
				Int32(xglog.FieldCode, int32(msg.Code())).
				Str(xglog.FieldEvent, "router.unknown_state_code").
				Msg("dropping unmapped state notice")
			return
		}
		c.queue.Push(envelope{
			event:   model.Event{Message: msg, Payload: in.Payload},
			trigger: &tr,
		})
		return
	}

	if corr := in.Correlation; corr != nil && corr.Kind.Known() && corr.ID.IsSet() {
		entry, err := c.pending.Resolve(corr.Kind, corr.ID)
		if err != nil {
			metrics.IncUnmatched(corr.Kind.String())
			c.unmatchedLog.Do(func() {
				c.logger.Warn().Err(err).
					Str(xglog.FieldRequestKind, corr.Kind.String()).
					Uint64(xglog.FieldRequestID, uint64(corr.ID)).
					Str(xglog.FieldEvent, "router.unmatched").
					Msg("completion for untracked request ignored")
			})
			return
		}
		c.queue.Push(envelope{
			event: model.Event{Message: msg, Correlation: entry.Correlation(), Payload: in.Payload},
			entry: entry,
		})
		return
	}

	c.queue.Push(envelope{
		event: model.Event{Type: model.NoticeType(msg), Message: msg, Payload: in.Payload},
	})
}
