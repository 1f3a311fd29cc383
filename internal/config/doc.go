// Package config provides the configuration system for Helios.
//
// Configuration is assembled in three steps, later steps overriding earlier:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← HELIOS_* (highest priority)
//	├─────────────────────────────┤
//	│  2. Config File             │  ← helios.toml / helios.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Default()
//	└─────────────────────────────┘
//
// The result is validated with struct tags before it is returned, so a
// *Config obtained from Load is always usable.
//
// # Sub-packages
//
//   - watcher: fsnotify-based live reload of the config file
//
// # Basic Usage
//
//	cfg, err := config.Load("helios.toml")
//	if err != nil {
//	    var perr *config.ParseError
//	    if errors.As(err, &perr) {
//	        // syntax error or unknown key
//	    }
//	    log.Fatal(err)
//	}
//
//	bus := event.NewBus(event.WithListenerCapacity(cfg.Bus.ListenerCapacity))
//
// A missing file is not an error; defaults (plus environment overrides)
// are used instead.
//
// # File Format
//
// TOML:
//
//	[log]
//	level = "debug"
//
//	[bus]
//	listener_capacity = 128
//	recover_panics = true
//
//	[loop]
//	fps = 60
//
//	[input]
//	backend = "terminal"
//	mouse = true
//
//	[script]
//	path = "listeners/echo.lua"
//	timeout = "50ms"
//
// YAML uses the same keys.
package config
