// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

//go:build !debug

package controller

import (
	"testing"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/stretchr/testify/require"
)

func TestRouter_UnmappedStateCodeIsDropped(t *testing.T) {
	c, fe := newTestController(t, nil)
	advance(t, c, fe, model.StatePlaying)

	var got []model.Event
	c.AddListener(func(ev model.Event) { got = append(got, ev) })

	fe.notice(model.Code(150))
	require.Zero(t, c.DrainAndDeliver())
	require.Empty(t, got, "unmapped state notice must not fall back to a generic event")
	require.Equal(t, model.StatePlaying, c.State())
}
