// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

//go:build !debug

package lifecycle

import (
	"fmt"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
)

func illegalStateCode(code model.Code) (Trigger, error) {
	return TrUnknown, fmt.Errorf("%w: %d", ErrUnknownStateCode, code)
}
