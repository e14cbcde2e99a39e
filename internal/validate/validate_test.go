// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package validate

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidator_AccumulatesErrors(t *testing.T) {
	v := New()
	v.Range("count", 0, 1, 10)
	v.FloatRange("rate", 1.5, 0, 1)
	v.PositiveDuration("tick", 0)
	v.NonNegativeDuration("delay", -time.Second)
	v.NotEmpty("name", "  ")
	v.OneOf("mode", "fast", []string{"immediate", "on_demand"})
	v.ListenAddr("listen", "nohost")

	require.False(t, v.IsValid())
	require.Len(t, v.Errors(), 7)

	err := v.Err()
	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Errors(), 7)
	require.Contains(t, err.Error(), "validation failed for count")
	require.Contains(t, err.Error(), "; ")
}

func TestValidator_ValidInputs(t *testing.T) {
	v := New()
	v.Range("count", 5, 1, 10)
	v.FloatRange("rate", 0.5, 0, 1)
	v.PositiveDuration("tick", time.Millisecond)
	v.NonNegativeDuration("delay", 0)
	v.NotEmpty("name", "playctl")
	v.OneOf("mode", "on_demand", []string{"immediate", "on_demand"})
	v.ListenAddr("listen", "127.0.0.1:9090")
	v.ListenAddr("listen", "")

	require.True(t, v.IsValid())
	require.NoError(t, v.Err())
}

func TestValidator_SingleErrorMessage(t *testing.T) {
	v := New()
	v.ListenAddr("listen", ":70000")
	require.EqualError(t, v.Err(), `validation failed for listen: port must be between 0 and 65535, got "70000"`)
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("warn")
	require.NoError(t, err)
	require.Equal(t, LogLevelWarn, lvl)

	_, err = ParseLogLevel("verbose")
	require.Error(t, err)
}
