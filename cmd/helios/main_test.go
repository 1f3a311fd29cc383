package main

import (
	"testing"

	"github.com/dshills/helios/internal/app"
	"github.com/dshills/helios/internal/config"
	"github.com/dshills/helios/internal/input/termsrc"
)

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	applyFlags(cfg, options{})
	if *cfg != *config.Default() {
		t.Errorf("empty flags changed config: %+v", cfg)
	}

	applyFlags(cfg, options{backend: "ebiten", logLevel: "debug", scriptPath: "init.lua"})
	if cfg.Input.Backend != "ebiten" {
		t.Errorf("Backend = %q, want ebiten", cfg.Input.Backend)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Script.Path != "init.lua" {
		t.Errorf("Script.Path = %q, want init.lua", cfg.Script.Path)
	}
}

func TestNewBackend_Terminal(t *testing.T) {
	application, err := app.New(nil, app.Options{})
	if err != nil {
		t.Fatalf("app.New() error = %v", err)
	}
	defer application.Close()

	b := newBackend(application.Config(), application)
	if _, ok := b.(*termsrc.Backend); !ok {
		t.Errorf("newBackend() = %T, want *termsrc.Backend", b)
	}
	if b.Name() != "terminal" {
		t.Errorf("Name() = %q, want terminal", b.Name())
	}
}
