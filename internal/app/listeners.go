package app

import (
	"github.com/dshills/helios/internal/event"
	"github.com/dshills/helios/internal/logging"
)

// traceListener remembers the last event for the status display and logs
// every event at debug level.
func (app *Application) traceListener() event.Listener {
	return event.ListenerFunc(func(e event.Event) {
		app.lastEvent = e.String()
		if app.logger.Enabled(logging.LevelDebug) {
			app.logger.Debug("%s", app.lastEvent)
		}
	})
}

// quitListener stops the loop on Ctrl+C, on Escape when configured, and
// when the window is destroyed.
func (app *Application) quitListener() event.Listener {
	return event.ListenerFunc(func(e event.Event) {
		d := event.NewDispatcher(e)
		event.Dispatch(d, func(k event.KeyPress) {
			switch {
			case k.Key() == event.KeyEscape && app.cfg.Loop.QuitOnEscape:
				app.Quit("escape")
			case k.IsControl() && (k.Key() == 'c' || k.Key() == 'C'):
				app.Quit("ctrl+c")
			}
		})
		event.Dispatch(d, func(event.WindowDestroy) {
			app.Quit("window closed")
		})
	})
}
