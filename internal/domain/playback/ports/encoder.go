// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package ports

import (
	"encoding/json"
	"fmt"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
)

// JSONEncoder encodes parameters as JSON. CallCore payloads are forwarded unchanged.
type JSONEncoder struct{}

func (JSONEncoder) Encode(kind model.RequestKind, params any) ([]byte, error) {
	switch p := params.(type) {
	case nil:
		return nil, nil
	case *model.CallCoreParams:
		return p.Payload, nil
	case model.CallCoreParams:
		return p.Payload, nil
	}
	b, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode %s params: %w", kind, err)
	}
	return b, nil
}

var _ PayloadEncoder = JSONEncoder{}
