// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

//go:build !debug

package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTriggerForStateCode_UnknownCodeIsError(t *testing.T) {
	tr, err := TriggerForStateCode(150)
	require.ErrorIs(t, err, ErrUnknownStateCode)
	require.Equal(t, TrUnknown, tr)
}
