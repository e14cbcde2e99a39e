// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config loads playctl configuration with precedence ENV > file > defaults.
package config

import (
	"time"

	"github.com/ManuGH/playctl/internal/domain/playback/model"
)

// Config is the full daemon configuration.
type Config struct {
	Version string `yaml:"-"`

	LogLevel   string `yaml:"logLevel"`
	LogService string `yaml:"logService"`

	// TickInterval is the host delivery cadence (one drain per tick).
	TickInterval time.Duration `yaml:"tickInterval"`
	// IDSource selects the request id source: "counter" or "uuid".
	IDSource string `yaml:"idSource"`
	// ListenAddr serves /metrics, /healthz and /status. Empty disables it.
	ListenAddr string `yaml:"listenAddr"`

	Session   SessionConfig   `yaml:"session"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Engine    EngineConfig    `yaml:"engine"`
}

// SessionConfig holds session-scoped playback settings.
type SessionConfig struct {
	ABREnabled bool   `yaml:"abrEnabled"`
	StartMode  string `yaml:"startMode"`
	// PrepareTimeout travels to the Engine with content preparation.
	PrepareTimeout       time.Duration `yaml:"prepareTimeout"`
	DefaultAudioLanguage string        `yaml:"defaultAudioLanguage"`
	DefaultAudioTrack    int           `yaml:"defaultAudioTrack"`
}

// TelemetryConfig configures request tracing.
type TelemetryConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Environment  string  `yaml:"environment"`
	ExporterType string  `yaml:"exporterType"`
	Endpoint     string  `yaml:"endpoint"`
	SamplingRate float64 `yaml:"samplingRate"`
	// TracerName names the tracer for request spans; empty uses the playback default.
	TracerName string `yaml:"tracerName"`
}

// EngineConfig configures the simulated engine.
type EngineConfig struct {
	ReplyDelay time.Duration `yaml:"replyDelay"`
	FailKinds  []string      `yaml:"failKinds"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		LogLevel:     "info",
		LogService:   "playctl",
		TickInterval: 16 * time.Millisecond,
		IDSource:     "counter",
		ListenAddr:   "127.0.0.1:9464",
		Session: SessionConfig{
			ABREnabled:        true,
			StartMode:         string(model.StartModeImmediate),
			PrepareTimeout:    10 * time.Second,
			DefaultAudioTrack: -1,
		},
		Telemetry: TelemetryConfig{
			Environment:  "development",
			ExporterType: "grpc",
			Endpoint:     "localhost:4317",
			SamplingRate: 1.0,
		},
		Engine: EngineConfig{
			ReplyDelay: 20 * time.Millisecond,
		},
	}
}

// SessionModel converts the session block to the value pushed to the Engine.
func (c Config) SessionModel() model.SessionConfig {
	return model.SessionConfig{
		ABREnabled: c.Session.ABREnabled,
		StartMode:  model.StartMode(c.Session.StartMode),
	}
}

// DefaultAudio returns the audio-track selection used when callers leave it empty.
func (c Config) DefaultAudio() model.AudioTrackSelection {
	return model.AudioTrackSelection{
		Index:    c.Session.DefaultAudioTrack,
		Language: c.Session.DefaultAudioLanguage,
	}
}

// FailKinds resolves Engine.FailKinds. Unknown names are rejected by Validate.
func (c Config) FailKinds() []model.RequestKind {
	out := make([]model.RequestKind, 0, len(c.Engine.FailKinds))
	for _, name := range c.Engine.FailKinds {
		if k, ok := model.ParseRequestKind(name); ok {
			out = append(out, k)
		}
	}
	return out
}
