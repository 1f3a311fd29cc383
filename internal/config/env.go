package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "HELIOS_"

// envSetter parses an environment value into cfg.
type envSetter func(cfg *Config, value string) error

// EnvLoader applies environment variable overrides to a Config.
type EnvLoader struct {
	prefix  string               // Environment variable prefix (e.g., "HELIOS_")
	mapping map[string]envSetter // Variable name without prefix -> setter
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "HELIOS_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(),
		lookup:  os.LookupEnv,
	}
}

// defaultEnvMapping returns the supported overrides keyed by the variable
// name without its prefix. The name mirrors the config path, so LOOP_FPS
// sets loop.fps.
func defaultEnvMapping() map[string]envSetter {
	return map[string]envSetter{
		"LOG_LEVEL":             stringSetter(func(c *Config) *string { return &c.Log.Level }),
		"LOG_FILE":              stringSetter(func(c *Config) *string { return &c.Log.File }),
		"BUS_LISTENER_CAPACITY": intSetter(func(c *Config) *int { return &c.Bus.ListenerCapacity }),
		"BUS_QUEUE_CAPACITY":    intSetter(func(c *Config) *int { return &c.Bus.QueueCapacity }),
		"BUS_RECOVER_PANICS":    boolSetter(func(c *Config) *bool { return &c.Bus.RecoverPanics }),
		"LOOP_FPS":              intSetter(func(c *Config) *int { return &c.Loop.FPS }),
		"LOOP_QUIT_ON_ESCAPE":   boolSetter(func(c *Config) *bool { return &c.Loop.QuitOnEscape }),
		"INPUT_BACKEND":         stringSetter(func(c *Config) *string { return &c.Input.Backend }),
		"INPUT_MOUSE":           boolSetter(func(c *Config) *bool { return &c.Input.Mouse }),
		"INPUT_WIDTH":           intSetter(func(c *Config) *int { return &c.Input.Width }),
		"INPUT_HEIGHT":          intSetter(func(c *Config) *int { return &c.Input.Height }),
		"INPUT_TITLE":           stringSetter(func(c *Config) *string { return &c.Input.Title }),
		"SCRIPT_PATH":           stringSetter(func(c *Config) *string { return &c.Script.Path }),
		"SCRIPT_TIMEOUT":        durationSetter(func(c *Config) *Duration { return &c.Script.Timeout }),
	}
}

// Apply overrides cfg with every mapped variable that is set.
// Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Apply(cfg *Config) error {
	for name, set := range l.mapping {
		env := l.prefix + name
		val, ok := l.lookup(env)
		if !ok {
			continue
		}
		if err := set(cfg, val); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidEnv, env, err)
		}
	}
	return nil
}

// Variables returns the names of all supported variables.
func (l *EnvLoader) Variables() []string {
	names := make([]string, 0, len(l.mapping))
	for name := range l.mapping {
		names = append(names, l.prefix+name)
	}
	return names
}

func stringSetter(field func(*Config) *string) envSetter {
	return func(c *Config, v string) error {
		*field(c) = v
		return nil
	}
}

func intSetter(field func(*Config) *int) envSetter {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func boolSetter(field func(*Config) *bool) envSetter {
	return func(c *Config, v string) error {
		b, err := parseBool(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

func durationSetter(field func(*Config) *Duration) envSetter {
	return func(c *Config, v string) error {
		return field(c).UnmarshalText([]byte(strings.TrimSpace(v)))
	}
}

// parseBool accepts the usual shell spellings of a boolean.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q", s)
	}
}
