package app

import (
	"github.com/dshills/helios/internal/config"
	"github.com/dshills/helios/internal/config/watcher"
	"github.com/dshills/helios/internal/logging"
)

// onFileChange runs on the watcher goroutine. It loads the new config and
// hands it to the loop; only the newest pending config is kept.
func (app *Application) onFileChange(ev watcher.Event) {
	app.logger.Debug("%s %s", ev.Op, ev.Path)

	cfg, err := config.Load(app.opts.ConfigPath)
	if err == nil && app.opts.Override != nil {
		app.opts.Override(cfg)
		err = cfg.Validate()
	}
	if err != nil {
		app.logger.Error("reload: %v", err)
		return
	}

	select {
	case <-app.reloads:
	default:
	}
	select {
	case app.reloads <- cfg:
	default:
	}
}

// applyReloads applies a pending config, if any.
func (app *Application) applyReloads() {
	select {
	case cfg := <-app.reloads:
		app.applyConfig(cfg)
	default:
	}
}

// applyConfig switches to cfg. Log level, Escape handling and the script
// change immediately; everything else needs a restart.
func (app *Application) applyConfig(cfg *config.Config) {
	old := app.cfg
	app.cfg = cfg

	app.logger.SetLevel(logging.ParseLevel(cfg.Log.Level))

	if cfg.Bus != old.Bus || cfg.Input != old.Input || cfg.Loop.FPS != old.Loop.FPS ||
		cfg.Log.File != old.Log.File || cfg.Script.Timeout != old.Script.Timeout {
		app.logger.Warn("reload: some settings take effect after restart")
	}

	app.reloadScript(old.Script.Path)
	app.logger.Info("configuration reloaded")
}

// reloadScript rebinds the script after a reload and keeps the watcher
// pointed at the current script file.
func (app *Application) reloadScript(oldPath string) {
	path := app.cfg.Script.Path

	if app.watcher != nil && path != oldPath {
		if oldPath != "" {
			if err := app.watcher.Unwatch(oldPath); err != nil {
				app.logger.Warn("reload: unwatch %s: %v", oldPath, err)
			}
		}
		if path != "" {
			if err := app.watcher.Watch(path); err != nil {
				app.logger.Warn("reload: watch %s: %v", path, err)
			}
		}
	}

	if !app.cfg.Script.Enabled() {
		if app.script.Loaded() {
			app.script.Unload()
			app.logger.Info("script unloaded")
		}
		return
	}
	if err := app.script.LoadFile(path); err != nil {
		app.logger.Error("reload: %v", err)
	}
}
