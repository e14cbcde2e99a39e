// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package daemon hosts a playback controller: it owns the delivery loop,
// the diagnostics HTTP server and configuration reload wiring.
package daemon

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ManuGH/playctl/internal/config"
	"github.com/ManuGH/playctl/internal/domain/playback/controller"
	xglog "github.com/ManuGH/playctl/internal/log"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// Options configures an App.
type Options struct {
	Holder     *config.Holder
	Controller *controller.Controller
	// Script is advanced once per tick after delivery; nil runs no script.
	Script *Script
	// Hold keeps the daemon running after the script finished.
	Hold bool
}

// App owns the long-lived runtime: the tick loop that is the controller's
// single delivery context, the diagnostics server and config reload.
type App struct {
	logger       zerolog.Logger
	holder       *config.Holder
	ctl          *controller.Controller
	script       *Script
	hold         bool
	reloadSignal os.Signal
	// applyCh receives reloaded configs; registered at construction so a
	// reload before Run is not lost.
	applyCh chan config.Config
}

// NewApp creates a new App orchestrator.
func NewApp(opts Options) *App {
	a := &App{
		logger:       xglog.WithComponent("daemon"),
		holder:       opts.Holder,
		ctl:          opts.Controller,
		script:       opts.Script,
		hold:         opts.Hold,
		reloadSignal: syscall.SIGHUP,
		applyCh:      make(chan config.Config, 1),
	}
	if a.holder != nil {
		a.holder.RegisterListener(a.applyCh)
	}
	return a
}

// Run starts all owned subsystems and blocks until ctx is cancelled, the
// script completed (unless holding) or a fatal error occurs.
func (a *App) Run(ctx context.Context) error {
	if a.ctl == nil {
		return ErrMissingController
	}
	if a.holder == nil {
		return ErrMissingConfig
	}

	ctx, finish := context.WithCancel(ctx)
	defer finish()
	g, ctx := errgroup.WithContext(ctx)
	cfg := a.holder.Get()

	// Delivery loop: the only goroutine that calls DrainAndDeliver.
	g.Go(func() error {
		return a.tickLoop(ctx, cfg.TickInterval, a.applyCh, finish)
	})

	// Config watcher is best-effort: a failure is logged, never fatal.
	g.Go(func() error {
		if err := a.holder.Watch(ctx); err != nil {
			a.logger.Warn().Err(err).Str(xglog.FieldEvent, "config.watcher_start_failed").Msg("failed to start config watcher")
		}
		return nil
	})

	// SIGHUP trigger for manual reload.
	if a.reloadSignal != nil {
		g.Go(func() error {
			hupChan := make(chan os.Signal, 1)
			signal.Notify(hupChan, a.reloadSignal)
			defer signal.Stop(hupChan)

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-hupChan:
					a.logger.Info().
						Str(xglog.FieldEvent, "config.reload_signal").
						Str("signal", a.reloadSignal.String()).
						Msg("received reload signal, reloading config")
					if err := a.holder.Reload(context.Background()); err != nil {
						a.logger.Warn().Err(err).Str(xglog.FieldEvent, "config.reload_failed").Msg("config reload failed")
					}
				}
			}
		})
	}

	if cfg.ListenAddr != "" {
		srv := &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           NewRouter(a.ctl),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			a.logger.Info().Str(xglog.FieldListenAddr, cfg.ListenAddr).Msg("diagnostics server listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}

func (a *App) tickLoop(ctx context.Context, interval time.Duration, applyCh <-chan config.Config, finish context.CancelFunc) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Flush outcomes already queued so no callback is lost on exit.
			a.ctl.DrainAndDeliver()
			return nil
		case cfg := <-applyCh:
			a.apply(cfg)
			if cfg.TickInterval != interval {
				interval = cfg.TickInterval
				ticker.Reset(interval)
			}
		case <-ticker.C:
			a.ctl.DrainAndDeliver()
			if a.script == nil {
				continue
			}
			a.script.Advance(ctx, a.ctl)
			if a.script.Done() && a.ctl.IsStopped() && !a.hold {
				a.ctl.DrainAndDeliver()
				a.logger.Info().
					Str(xglog.FieldEvent, "daemon.script_done").
					Int("failures", a.script.Failures()).
					Msg("session script finished")
				finish()
			}
		}
	}
}

// apply pushes reloadable settings into the running controller. Session
// settings take effect on the next CorePrepared transition.
func (a *App) apply(cfg config.Config) {
	xglog.Configure(xglog.Config{Level: cfg.LogLevel})
	a.ctl.SetSessionConfig(cfg.SessionModel())
	a.ctl.SetDefaultAudio(cfg.DefaultAudio())
	a.logger.Info().Str(xglog.FieldEvent, "config.applied").Msg("reloaded configuration applied")
}
