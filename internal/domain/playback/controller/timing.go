// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package controller

import (
	"encoding/json"
	"fmt"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
)

// DecodeTiming decodes the payload of a successful GetTiming completion.
func DecodeTiming(ev model.Event) (model.TimingInfo, error) {
	var info model.TimingInfo
	if !ev.Message.OK() {
		return info, ev.Message.Err()
	}
	if err := json.Unmarshal(ev.Payload, &info); err != nil {
		return info, fmt.Errorf("decode timing: %w", err)
	}
	return info, nil
}
