// Package ebitensrc produces events from an ebiten game window.
//
// Ebiten exposes input as state queried once per tick. Capture reads that
// state into a poll.Frame and the Backend feeds the frames to a
// poll.Tracker, which emits the events for each change.
package ebitensrc

import (
	"context"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dshills/helios/internal/event"
	"github.com/dshills/helios/internal/input"
	"github.com/dshills/helios/internal/input/poll"
	"github.com/dshills/helios/internal/logging"
)

var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	button event.Button
}{
	{ebiten.MouseButtonLeft, event.ButtonLeft},
	{ebiten.MouseButtonMiddle, event.ButtonMiddle},
	{ebiten.MouseButtonRight, event.ButtonRight},
	{ebiten.MouseButtonBack, event.ButtonBack},
	{ebiten.MouseButtonForward, event.ButtonForward},
}

// Capture reads the current window and device state.
func Capture() poll.Frame {
	var f poll.Frame

	f.X, f.Y = ebiten.WindowPosition()
	f.Width, f.Height = ebiten.WindowSize()
	f.Closing = ebiten.IsWindowBeingClosed()

	f.CursorX, f.CursorY = ebiten.CursorPosition()
	_, f.Wheel = ebiten.Wheel()
	for _, m := range mouseButtons {
		if ebiten.IsMouseButtonPressed(m.ebiten) {
			f.Buttons = f.Buttons.With(m.button)
		}
	}

	f.Mods = event.ModifiersOf(
		ebiten.IsKeyPressed(ebiten.KeyControl),
		ebiten.IsKeyPressed(ebiten.KeyShift),
		ebiten.IsKeyPressed(ebiten.KeyAlt),
	)

	for _, k := range inpututil.AppendPressedKeys(nil) {
		if key := convertKey(k); key != event.KeyNone {
			f.Keys = append(f.Keys, key)
		}
	}
	f.Chars = ebiten.AppendInputChars(nil)

	return f
}

// showMode reports how the window is currently shown.
func showMode() event.ShowMode {
	switch {
	case ebiten.IsFullscreen():
		return event.ShowFullscreen
	case ebiten.IsWindowMaximized():
		return event.ShowMaximized
	case ebiten.IsWindowMinimized():
		return event.ShowMinimized
	default:
		return event.ShowNormal
	}
}

// Option configures a Backend.
type Option func(*Backend)

// WithWindow sets the initial window size and title.
func WithWindow(width, height int, title string) Option {
	return func(b *Backend) {
		if width > 0 && height > 0 {
			b.width, b.height = width, height
		}
		if title != "" {
			b.title = title
		}
	}
}

// WithInterval sets the time between frames.
func WithInterval(d time.Duration) Option {
	return func(b *Backend) {
		if d > 0 {
			b.interval = d
		}
	}
}

// WithStatus sets a callback whose lines are drawn every frame.
func WithStatus(fn func() []string) Option {
	return func(b *Backend) {
		b.status = fn
	}
}

// WithMetrics records produced events into m.
func WithMetrics(m *input.Metrics) Option {
	return func(b *Backend) {
		if m != nil {
			b.metrics = m
		}
	}
}

// WithLogger sets the logger used for backend diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(b *Backend) {
		if l != nil {
			b.logger = l
		}
	}
}

// Backend runs a frame loop inside an ebiten game window.
type Backend struct {
	width, height int
	title         string
	interval      time.Duration
	status        func() []string
	metrics       *input.Metrics
	logger        *logging.Logger
}

// NewBackend creates an ebiten backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		width:    800,
		height:   600,
		title:    "Helios",
		interval: time.Second / 60,
		metrics:  input.NewMetrics(),
		logger:   logging.Null,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.WithComponent("ebitensrc")
	return b
}

// Name identifies the backend in logs.
func (b *Backend) Name() string {
	return "ebiten"
}

// Run opens the window and calls frame once per tick until frame returns an
// error, the window is closed, or ctx is done. Input observed during the
// tick is added to sink before frame runs.
//
// Run must be called from the main goroutine.
func (b *Backend) Run(ctx context.Context, sink input.Sink, frame func() error) error {
	ebiten.SetWindowSize(b.width, b.height)
	ebiten.SetWindowTitle(b.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(int(time.Second / b.interval))

	g := &game{
		ctx:     ctx,
		sink:    b.metrics.Sink(sink),
		frame:   frame,
		tracker: poll.NewTracker(showMode()),
		status:  b.status,
	}

	b.logger.Info("opening %dx%d window", b.width, b.height)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return g.err
}

// game adapts the frame loop to ebiten.Game.
type game struct {
	ctx     context.Context
	sink    input.Sink
	frame   func() error
	tracker *poll.Tracker
	status  func() []string
	err     error
}

func (g *game) Update() error {
	if err := g.ctx.Err(); err != nil {
		g.err = err
		return ebiten.Termination
	}

	g.tracker.Update(Capture(), g.sink)

	if err := g.frame(); err != nil {
		g.err = err
		return ebiten.Termination
	}
	// The window close was delivered through frame; nothing is left to run.
	if g.tracker.Closed() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.status != nil {
		ebitenutil.DebugPrint(screen, strings.Join(g.status(), "\n"))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
