package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile writes content to name inside a fresh temp dir and returns the path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate(), "defaults must be valid")
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 64, cfg.Bus.ListenerCapacity)
	assert.Equal(t, 60, cfg.Loop.FPS)
	assert.True(t, cfg.Loop.QuitOnEscape)
	assert.Equal(t, BackendTerminal, cfg.Input.Backend)
	assert.False(t, cfg.Script.Enabled())
	assert.Equal(t, 100*time.Millisecond, cfg.Script.Timeout.Std())
}

func TestLoopConfig_Interval(t *testing.T) {
	assert.Equal(t, time.Second/60, LoopConfig{FPS: 60}.Interval())
	assert.Equal(t, 100*time.Millisecond, LoopConfig{FPS: 10}.Interval())
	assert.Equal(t, time.Second/60, LoopConfig{}.Interval(), "zero FPS falls back to 60")
}

func TestConfig_Clone(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.Loop.FPS = 5

	assert.Equal(t, 60, cfg.Loop.FPS)
	assert.Equal(t, 5, clone.Loop.FPS)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "helios.toml", `
[log]
level = "debug"

[bus]
listener_capacity = 128
recover_panics = true

[loop]
fps = 30

[input]
backend = "ebiten"
width = 1024

[script]
path = "echo.lua"
timeout = "250ms"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 128, cfg.Bus.ListenerCapacity)
	assert.True(t, cfg.Bus.RecoverPanics)
	assert.Equal(t, 30, cfg.Loop.FPS)
	assert.Equal(t, BackendEbiten, cfg.Input.Backend)
	assert.Equal(t, 1024, cfg.Input.Width)
	assert.Equal(t, 600, cfg.Input.Height, "unset keys keep their default")
	assert.Equal(t, "echo.lua", cfg.Script.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.Script.Timeout.Std())
}

func TestLoad_YAML(t *testing.T) {
	for _, name := range []string{"helios.yaml", "helios.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, `
log:
  level: warn
loop:
  fps: 120
  quit_on_escape: false
script:
  timeout: 2s
`)

			cfg, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, "warn", cfg.Log.Level)
			assert.Equal(t, 120, cfg.Loop.FPS)
			assert.False(t, cfg.Loop.QuitOnEscape)
			assert.Equal(t, 2*time.Second, cfg.Script.Timeout.Std())
			assert.Equal(t, 64, cfg.Bus.ListenerCapacity)
		})
	}
}

func TestLoad_EmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "helios.yaml", ""))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load(writeFile(t, "helios.ini", "fps=1"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		line    int
	}{
		{"toml syntax", "bad.toml", "[loop\nfps = 1\n", 0},
		{"toml unknown key", "bad.toml", "[loop]\nfps = 1\nspeed = 2\n", 3},
		{"toml bad duration", "bad.toml", "[script]\ntimeout = \"soon\"\n", 0},
		{"yaml syntax", "bad.yaml", "loop: [\n", 0},
		{"yaml unknown key", "bad.yaml", "loop:\n  speed: 2\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "expected ParseError, got %T: %v", err, err)
			assert.True(t, strings.HasSuffix(perr.Path, tt.file))
			if tt.line > 0 {
				assert.Equal(t, tt.line, perr.Line)
			}
		})
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	path := writeFile(t, "helios.toml", `
[log]
level = "loud"

[loop]
fps = 0

[input]
backend = "x11"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))

	byPath := make(map[string]*ValidationError)
	for _, ve := range verrs {
		byPath[ve.Path] = ve
	}

	require.Contains(t, byPath, "log.level")
	assert.Equal(t, ErrCodeInvalidEnum, byPath["log.level"].Code)
	assert.Equal(t, "loud", byPath["log.level"].Value)

	require.Contains(t, byPath, "loop.fps")
	assert.Equal(t, ErrCodeOutOfRange, byPath["loop.fps"].Code)

	require.Contains(t, byPath, "input.backend")
	assert.Equal(t, ErrCodeInvalidEnum, byPath["input.backend"].Code)
}

func TestValidate_Required(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = ""

	err := cfg.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "log.level", verrs[0].Path)
	assert.Equal(t, ErrCodeRequiredMissing, verrs[0].Code)
	assert.Contains(t, err.Error(), "log.level: is required")
}

func TestDecode(t *testing.T) {
	cfg := Default()
	err := Decode(strings.NewReader("[bus]\nqueue_capacity = 4\n"), FormatTOML, cfg)

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Bus.QueueCapacity)
	assert.Equal(t, 64, cfg.Bus.ListenerCapacity)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"helios.toml", FormatTOML, false},
		{"HELIOS.TOML", FormatTOML, false},
		{"conf/helios.yaml", FormatYAML, false},
		{"helios.yml", FormatYAML, false},
		{"helios.json", 0, true},
		{"helios", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, 90*time.Second, d.Std())

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(text))

	assert.Error(t, d.UnmarshalText([]byte("fast")))
}
