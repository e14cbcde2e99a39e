// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/ManuGH/playctl/internal/config"
	"github.com/ManuGH/playctl/internal/daemon"
	"github.com/ManuGH/playctl/internal/domain/playback/controller"
	"github.com/ManuGH/playctl/internal/domain/playback/pending"
	"github.com/ManuGH/playctl/internal/domain/playback/ports"
	"github.com/ManuGH/playctl/internal/infrastructure/engine/stub"
	xglog "github.com/ManuGH/playctl/internal/log"
	"github.com/ManuGH/playctl/internal/telemetry"
	"github.com/ManuGH/playctl/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (YAML)")
	runScript := flag.Bool("script", true, "drive the demo session script against the engine")
	hold := flag.Bool("hold", false, "keep serving diagnostics after the session stopped")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	// Configure logger with safe defaults until config is loaded
	xglog.Configure(xglog.Config{
		Level:   "info",
		Service: "playctl",
		Version: version.Version,
	})
	logger := xglog.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	path := strings.TrimSpace(*configPath)
	loader := config.NewLoader(path, version.Version)
	cfg, err := loader.Load()
	if err != nil {
		logger.Fatal().
			Err(err).
			Str(xglog.FieldEvent, "config.load_failed").
			Str(xglog.FieldPath, path).
			Msg("failed to load configuration")
	}

	xglog.Configure(xglog.Config{
		Level:   cfg.LogLevel,
		Service: cfg.LogService,
		Version: cfg.Version,
	})
	logger = xglog.WithComponent("main")
	if len(loader.ConsumedEnvKeys) > 0 {
		logger.Debug().Strs("env_keys", slices.Sorted(maps.Keys(loader.ConsumedEnvKeys))).Msg("environment overrides applied")
	}

	if err := run(ctx, cfg, loader, path, *runScript, *hold); err != nil {
		logger.Error().Err(err).Str(xglog.FieldEvent, "daemon.failed").Msg("playctl exited with error")
		os.Exit(1)
	}
	logger.Info().Str(xglog.FieldEvent, "daemon.exit").Msg("playctl stopped")
}

func run(ctx context.Context, cfg config.Config, loader *config.Loader, path string, withScript, hold bool) error {
	tp, err := telemetry.NewProvider(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(shutdownCtx)
	}()

	ids, ok := pending.SourceByName(cfg.IDSource)
	if !ok {
		return fmt.Errorf("%w: idSource %q", config.ErrInvalidConfig, cfg.IDSource)
	}

	eng := stub.New(stub.Options{ReplyDelay: cfg.Engine.ReplyDelay, FailKinds: cfg.FailKinds()})
	defer func() { _ = eng.Close() }()

	logger := xglog.WithComponent("main")
	ctl, err := controller.New(controller.Config{
		Engine:       eng,
		IDs:          ids,
		Session:      cfg.SessionModel(),
		DefaultAudio: cfg.DefaultAudio(),
		Tracer:       tp.Tracer(),
		Hooks: ports.SessionHooks{
			OnContentSession: func(active bool) {
				logger.Info().Bool("active", active).Msg("content session changed")
			},
			OnCleanup: func() {
				logger.Info().Str(xglog.FieldEvent, "session.cleanup").Msg("session cleanup")
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create controller: %w", err)
	}

	var script *daemon.Script
	if withScript {
		script = daemon.DefaultScript(cfg)
	}
	app := daemon.NewApp(daemon.Options{
		Holder:     config.NewHolder(cfg, loader, path),
		Controller: ctl,
		Script:     script,
		Hold:       hold || !withScript,
	})

	ctx = xglog.ContextWithSessionID(ctx, eng.Handle())
	return app.Run(ctx)
}
