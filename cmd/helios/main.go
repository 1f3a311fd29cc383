// Package main is the entry point for the Helios event demo.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/helios/internal/app"
	"github.com/dshills/helios/internal/config"
	"github.com/dshills/helios/internal/input/ebitensrc"
	"github.com/dshills/helios/internal/input/termsrc"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the command line.
type options struct {
	configPath string
	backend    string
	logLevel   string
	scriptPath string
	watch      bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		return 1
	}
	applyFlags(cfg, opts)

	// The terminal backend owns the screen; without a log file, logs are
	// held back and printed once the screen is released.
	var held bytes.Buffer
	var logOut io.Writer = os.Stderr
	if cfg.Input.Backend == config.BackendTerminal {
		logOut = &held
	}
	defer func() {
		if held.Len() > 0 {
			_, _ = held.WriteTo(os.Stderr)
		}
	}()

	logger, logCloser, err := app.NewLogger(cfg.Log, logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logCloser.Close()

	application, err := app.New(cfg, app.Options{
		ConfigPath: opts.configPath,
		Watch:      opts.watch,
		Override:   func(c *config.Config) { applyFlags(c, opts) },
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("close: %v", err)
		}
	}()

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx, newBackend(cfg, application)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newBackend builds the producer backend named in cfg.
func newBackend(cfg *config.Config, application *app.Application) app.Backend {
	switch cfg.Input.Backend {
	case config.BackendEbiten:
		return ebitensrc.NewBackend(
			ebitensrc.WithWindow(cfg.Input.Width, cfg.Input.Height, cfg.Input.Title),
			ebitensrc.WithInterval(cfg.Loop.Interval()),
			ebitensrc.WithStatus(application.Status),
			ebitensrc.WithMetrics(application.InputMetrics()),
			ebitensrc.WithLogger(application.Logger()),
		)
	default:
		return termsrc.NewBackend(
			termsrc.WithMouse(cfg.Input.Mouse),
			termsrc.WithInterval(cfg.Loop.Interval()),
			termsrc.WithStatus(application.Status),
			termsrc.WithMetrics(application.InputMetrics()),
			termsrc.WithLogger(application.Logger()),
		)
	}
}

// applyFlags overrides configuration values given on the command line.
func applyFlags(cfg *config.Config, opts options) {
	if opts.backend != "" {
		cfg.Input.Backend = opts.backend
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.scriptPath != "" {
		cfg.Script.Path = opts.scriptPath
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.backend, "backend", "", "Input backend (terminal, ebiten)")
	flag.StringVar(&opts.backend, "b", "", "Input backend (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.scriptPath, "script", "", "Lua script receiving every event")
	flag.StringVar(&opts.scriptPath, "s", "", "Lua script receiving every event (shorthand)")
	flag.BoolVar(&opts.watch, "watch", false, "Reload configuration and script when they change")
	flag.BoolVar(&opts.watch, "w", false, "Reload configuration and script when they change (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Helios - input event bus demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: helios [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  %sLOG_LEVEL, %sINPUT_BACKEND, ... override the configuration file\n",
			config.EnvPrefix, config.EnvPrefix)
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  helios                          Terminal backend with defaults\n")
		fmt.Fprintf(os.Stderr, "  helios -b ebiten                Open a game window\n")
		fmt.Fprintf(os.Stderr, "  helios -c helios.toml -w        Load and watch a config file\n")
		fmt.Fprintf(os.Stderr, "  helios -s init.lua              Handle events in Lua\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Helios %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.watch && opts.configPath == "" {
		fmt.Fprintf(os.Stderr, "Error: -watch requires -config\n")
		os.Exit(1)
	}

	return opts
}
