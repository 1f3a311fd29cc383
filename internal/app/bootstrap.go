package app

import (
	"slices"

	"github.com/dshills/helios/internal/config/watcher"
	"github.com/dshills/helios/internal/event"
	"github.com/dshills/helios/internal/input"
	"github.com/dshills/helios/internal/logging"
	"github.com/dshills/helios/internal/script"
)

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	cfg := app.cfg

	// 1. Logging
	app.logger = app.opts.Logger
	if app.logger == nil {
		app.logger = logging.Default()
	}
	app.logger.SetLevel(logging.ParseLevel(cfg.Log.Level))

	// 2. Metrics
	app.metrics = NewMetrics(cfg.Loop.Interval())
	app.inputMetrics = input.NewMetrics()

	// 3. Event bus
	busOpts := []event.Option{
		event.WithListenerCapacity(cfg.Bus.ListenerCapacity),
		event.WithQueueCapacity(cfg.Bus.QueueCapacity),
		event.WithLogger(app.logger),
	}
	if cfg.Bus.RecoverPanics {
		busOpts = append(busOpts, event.WithPanicHandler(app.recordPanic))
	}
	app.bus = event.NewBus(busOpts...)
	app.bus.Init()

	// 4. Listeners, in delivery order
	app.bus.AddEventListener(app.traceListener())

	app.script = script.New(
		script.WithTimeout(cfg.Script.Timeout.Std()),
		script.WithLogger(app.logger),
		script.WithQuit(func() { app.Quit("script") }),
	)
	if cfg.Script.Enabled() {
		if err := app.script.LoadFile(cfg.Script.Path); err != nil {
			return NewComponentError("script", "load", err)
		}
	}
	app.bus.AddEventListener(app.script)

	app.bus.AddEventListener(app.quitListener())

	// 5. Live reload
	if app.opts.Watch && app.opts.ConfigPath != "" {
		if err := app.startWatcher(); err != nil {
			return NewComponentError("watcher", "start", err)
		}
	}

	app.logger.Debug("bootstrap complete: bus %s, %d listeners", app.bus.ID(), app.bus.Listeners())
	return nil
}

// startWatcher watches the config file and the script, if any.
func (app *Application) startWatcher() error {
	w, err := watcher.New(watcher.WithLogger(app.logger))
	if err != nil {
		return err
	}
	if err := w.Watch(app.opts.ConfigPath); err != nil {
		_ = w.Stop()
		return err
	}
	if app.cfg.Script.Enabled() {
		if err := w.Watch(app.cfg.Script.Path); err != nil {
			_ = w.Stop()
			return err
		}
	}
	w.OnChange(app.onFileChange)
	app.watcher = w
	return nil
}

// recordPanic keeps the most recent recovered listener panics for later
// inspection and counts all of them.
func (app *Application) recordPanic(e event.Event, recovered any, stack []byte) {
	desc := ""
	if e != nil {
		desc = e.String()
	}
	app.panicCount++
	if len(app.panics) == maxRecordedPanics {
		app.panics = slices.Delete(app.panics, 0, 1)
	}
	app.panics = append(app.panics, NewRecoveredPanicError(desc, recovered, string(stack)))
}
