// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
	"github.com/ManuGH/playctl/internal/validate"
)

// Validate checks a Config using the centralized validation package.
func Validate(cfg Config) error {
	v := validate.New()

	if _, err := validate.ParseLogLevel(cfg.LogLevel); err != nil {
		v.AddError("LogLevel", err.Error(), cfg.LogLevel)
	}
	v.NotEmpty("LogService", cfg.LogService)
	v.PositiveDuration("TickInterval", cfg.TickInterval)
	v.OneOf("IDSource", cfg.IDSource, []string{"counter", "uuid"})
	v.ListenAddr("ListenAddr", cfg.ListenAddr)

	if !model.StartMode(cfg.Session.StartMode).Valid() {
		v.AddError("Session.StartMode",
			fmt.Sprintf("must be %q or %q", model.StartModeImmediate, model.StartModeOnDemand),
			cfg.Session.StartMode)
	}
	v.NonNegativeDuration("Session.PrepareTimeout", cfg.Session.PrepareTimeout)
	v.Range("Session.DefaultAudioTrack", cfg.Session.DefaultAudioTrack, -1, 63)

	if cfg.Telemetry.Enabled {
		v.OneOf("Telemetry.ExporterType", cfg.Telemetry.ExporterType, []string{"grpc", "http"})
		v.NotEmpty("Telemetry.Endpoint", cfg.Telemetry.Endpoint)
	}
	v.FloatRange("Telemetry.SamplingRate", cfg.Telemetry.SamplingRate, 0, 1)

	v.NonNegativeDuration("Engine.ReplyDelay", cfg.Engine.ReplyDelay)
	for _, name := range cfg.Engine.FailKinds {
		if _, ok := model.ParseRequestKind(name); !ok {
			v.AddError("Engine.FailKinds", fmt.Sprintf("unknown request kind %q", name), name)
		}
	}

	if err := v.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
