package config

import "time"

// Backend names accepted by Input.Backend.
const (
	BackendTerminal = "terminal"
	BackendEbiten   = "ebiten"
)

// Config holds all application configuration.
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Bus    BusConfig    `toml:"bus" yaml:"bus"`
	Loop   LoopConfig   `toml:"loop" yaml:"loop"`
	Input  InputConfig  `toml:"input" yaml:"input"`
	Script ScriptConfig `toml:"script" yaml:"script"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	// Level is the minimum level written: debug, info, warn or error.
	Level string `toml:"level" yaml:"level" validate:"required,oneof=debug info warn error"`

	// File redirects log output to a file. Empty means stderr.
	File string `toml:"file" yaml:"file"`
}

// BusConfig sizes the event bus.
type BusConfig struct {
	// ListenerCapacity is the registry reservation made at start-up.
	ListenerCapacity int `toml:"listener_capacity" yaml:"listener_capacity" validate:"gte=1,lte=65536"`

	// QueueCapacity is the initial queue reservation.
	QueueCapacity int `toml:"queue_capacity" yaml:"queue_capacity" validate:"gte=0,lte=1048576"`

	// RecoverPanics recovers and logs listener panics instead of aborting.
	RecoverPanics bool `toml:"recover_panics" yaml:"recover_panics"`
}

// LoopConfig controls the frame loop.
type LoopConfig struct {
	// FPS is the number of dispatch passes per second.
	FPS int `toml:"fps" yaml:"fps" validate:"gte=1,lte=1000"`

	// QuitOnEscape stops the loop when Escape is pressed.
	QuitOnEscape bool `toml:"quit_on_escape" yaml:"quit_on_escape"`
}

// Interval returns the time between two dispatch passes.
func (c LoopConfig) Interval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPS)
}

// InputConfig selects and tunes the input producer.
type InputConfig struct {
	// Backend is the producer driving the bus: terminal or ebiten.
	Backend string `toml:"backend" yaml:"backend" validate:"required,oneof=terminal ebiten"`

	// Mouse enables mouse reporting in the terminal backend.
	Mouse bool `toml:"mouse" yaml:"mouse"`

	// Width and Height size the ebiten window.
	Width  int `toml:"width" yaml:"width" validate:"gte=0,lte=16384"`
	Height int `toml:"height" yaml:"height" validate:"gte=0,lte=16384"`

	// Title is the ebiten window title.
	Title string `toml:"title" yaml:"title"`
}

// ScriptConfig configures the Lua listener.
type ScriptConfig struct {
	// Path is the Lua file defining on_event. Empty disables scripting.
	Path string `toml:"path" yaml:"path"`

	// Timeout bounds a single on_event call.
	Timeout Duration `toml:"timeout" yaml:"timeout" validate:"gte=0"`
}

// Enabled reports whether a script is configured.
func (c ScriptConfig) Enabled() bool {
	return c.Path != ""
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Bus: BusConfig{
			ListenerCapacity: 64,
			QueueCapacity:    256,
		},
		Loop: LoopConfig{
			FPS:          60,
			QuitOnEscape: true,
		},
		Input: InputConfig{
			Backend: BackendTerminal,
			Mouse:   true,
			Width:   800,
			Height:  600,
			Title:   "Helios",
		},
		Script: ScriptConfig{
			Timeout: Duration(100 * time.Millisecond),
		},
	}
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
