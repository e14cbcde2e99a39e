// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package ports

import (
	"testing"
	"time"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/stretchr/testify/require"
)

func TestJSONEncoder(t *testing.T) {
	var enc JSONEncoder

	raw := []byte{0x01, 0x02}
	b, err := enc.Encode(model.KindCallCore, &model.CallCoreParams{Payload: raw})
	require.NoError(t, err)
	require.Equal(t, raw, b)

	b, err = enc.Encode(model.KindSeek, &model.SeekParams{Position: 2 * time.Second, Accurate: true})
	require.NoError(t, err)
	require.JSONEq(t, `{"position":2000000000,"accurate":true}`, string(b))

	b, err = enc.Encode(model.KindStop, nil)
	require.NoError(t, err)
	require.Nil(t, b)

	_, err = enc.Encode(model.KindCallCore, map[string]any{"bad": make(chan int)})
	require.Error(t, err)
}
