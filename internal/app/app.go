package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/dshills/helios/internal/config"
	"github.com/dshills/helios/internal/config/watcher"
	"github.com/dshills/helios/internal/event"
	"github.com/dshills/helios/internal/input"
	"github.com/dshills/helios/internal/logging"
	"github.com/dshills/helios/internal/script"
)

// Backend drives the frame loop and produces events.
//
// Run adds observed events to sink and calls frame once per tick, on the
// goroutine that owns sink. It returns when frame returns an error, the
// input source ends, or ctx is done.
type Backend interface {
	Name() string
	Run(ctx context.Context, sink input.Sink, frame func() error) error
}

const (
	// maxRecordedPanics bounds the recovered panics kept with their stacks.
	maxRecordedPanics = 16

	// inputLatencyThreshold is the peak producer hand-off latency above
	// which the status reports unhealthy input.
	inputLatencyThreshold = 250 * time.Millisecond
)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file the config was loaded from.
	ConfigPath string

	// Watch reloads the configuration and script when their files change.
	Watch bool

	// Override is applied to every reloaded configuration, so values given
	// on the command line survive a reload.
	Override func(*config.Config)

	// Logger receives application logs. Defaults to logging.Default().
	Logger *logging.Logger
}

// Application owns the event bus and connects a backend, the built-in
// listeners and an optional script to it.
//
// Everything except Close and the metrics accessors runs on the goroutine
// that calls Run.
type Application struct {
	cfg    *config.Config
	opts   Options
	logger *logging.Logger

	bus          *event.Bus
	metrics      *Metrics
	inputMetrics *input.Metrics
	script       *script.Listener

	// Most recent recovered listener panics, oldest first.
	panics     []error
	panicCount uint64

	watcher *watcher.Watcher
	reloads chan *config.Config

	backend    string
	lastEvent  string
	quitReason string

	running atomic.Bool
	closed  atomic.Bool
}

// New creates an application for cfg. A nil cfg means config.Default().
func New(cfg *config.Config, opts Options) (*Application, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, NewComponentError("config", "validate", err)
	}

	app := &Application{
		cfg:     cfg,
		opts:    opts,
		reloads: make(chan *config.Config, 1),
	}

	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// Run drives the frame loop with b until the user quits, b stops or ctx is
// done. Quitting and cancellation are normal exits and return nil.
func (app *Application) Run(ctx context.Context, b Backend) error {
	if b == nil {
		return ErrNoBackend
	}
	if app.closed.Load() {
		return ErrClosed
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.backend = b.Name()
	app.quitReason = ""
	if app.watcher != nil {
		app.watcher.Start()
	}

	app.logger.Info("running %s backend at %d fps", app.backend, app.cfg.Loop.FPS)
	err := b.Run(ctx, app.bus, app.frame)

	switch {
	case errors.Is(err, ErrQuit):
		app.logger.Info("quit: %s", app.quitReason)
		return nil
	case errors.Is(err, context.Canceled):
		app.logger.Info("stopped: %v", err)
		return nil
	case err != nil:
		return NewComponentError(app.backend, "run", err)
	}
	return nil
}

// frame runs once per tick: it applies pending reloads, dispatches the
// queued events and reports a requested quit.
func (app *Application) frame() error {
	start := time.Now()

	app.applyReloads()

	queued := app.bus.Len()
	app.bus.Dispatch()
	app.metrics.RecordFrame(time.Since(start), queued)

	if app.quitReason != "" {
		return ErrQuit
	}
	return nil
}

// Quit asks the loop to stop after the current frame.
// The first reason given is the one reported.
func (app *Application) Quit(reason string) {
	if app.quitReason == "" {
		app.quitReason = reason
	}
}

// Bus returns the event bus.
func (app *Application) Bus() *event.Bus {
	return app.bus
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger {
	return app.logger
}

// Metrics returns frame loop metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// InputMetrics returns the metrics producers record into.
func (app *Application) InputMetrics() *input.Metrics {
	return app.inputMetrics
}

// Script returns the script listener.
func (app *Application) Script() *script.Listener {
	return app.script
}

// Panics returns the most recent recovered listener panics, oldest first.
// At most maxRecordedPanics are kept; PanicCount reports the total.
func (app *Application) Panics() []error {
	if len(app.panics) == 0 {
		return nil
	}
	return slices.Clone(app.panics)
}

// PanicCount returns the number of listener panics recovered so far.
func (app *Application) PanicCount() uint64 {
	return app.panicCount
}

// IsRunning returns true if the frame loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Status returns the lines backends draw on screen.
func (app *Application) Status() []string {
	frames := app.metrics.Snapshot()
	in := app.inputMetrics.Snapshot()
	stats := app.bus.Stats()

	last := app.lastEvent
	if last == "" {
		last = "-"
	}

	lines := []string{
		fmt.Sprintf("helios [%s]", app.backend),
		fmt.Sprintf("frames %d  avg %s  slow %d", frames.FrameCount, frames.AvgFrameTime(), frames.SlowFrames),
		fmt.Sprintf("events %d  input %d  dropped %d  listeners %d",
			stats.EventsDispatched, in.Total(), in.DroppedEvents, stats.Listeners),
		"last " + last,
	}
	if app.script.Loaded() {
		lines = append(lines, "script "+app.script.Source())
	}
	if app.panicCount > 0 {
		lines = append(lines, fmt.Sprintf("panics %d", app.panicCount))
	}
	if health := app.inputMetrics.HealthCheck(inputLatencyThreshold); !health.Healthy {
		lines = append(lines, "input: "+health.Message)
	}
	if app.cfg.Loop.QuitOnEscape {
		lines = append(lines, "Esc or Ctrl+C to quit")
	} else {
		lines = append(lines, "Ctrl+C to quit")
	}
	return lines
}

// Close stops the watcher and releases the script state.
func (app *Application) Close() error {
	if !app.closed.CompareAndSwap(false, true) {
		return nil
	}

	errs := NewErrorList()
	if app.watcher != nil {
		if err := app.watcher.Stop(); err != nil {
			errs.Add(NewComponentError("watcher", "stop", err))
		}
	}
	if app.script != nil {
		app.script.Close()
	}
	return errs.AsError()
}
