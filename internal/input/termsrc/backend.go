package termsrc

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/helios/internal/event"
	"github.com/dshills/helios/internal/input"
)

// WithMouse enables or disables terminal mouse reporting.
func WithMouse(enabled bool) Option {
	return func(o *options) {
		o.mouse = enabled
	}
}

// WithInterval sets the time between frames.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithStatus sets a callback whose lines are drawn after every frame.
func WithStatus(fn func() []string) Option {
	return func(o *options) {
		o.status = fn
	}
}

// WithScreen uses s instead of the process terminal.
func WithScreen(s tcell.Screen) Option {
	return func(o *options) {
		o.screen = s
	}
}

// Backend runs a frame loop on a tcell screen.
type Backend struct {
	opts options
}

// NewBackend creates a terminal backend.
func NewBackend(opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Backend{opts: o}
}

// Name identifies the backend in logs.
func (b *Backend) Name() string {
	return "terminal"
}

// Run initializes the screen and calls frame once per interval until frame
// returns an error or ctx is done. Before each frame, input that arrived
// since the previous one is added to sink. A WindowCreate event is added
// ahead of the first frame.
//
// Run returns the error from frame, or ctx.Err().
func (b *Backend) Run(ctx context.Context, sink input.Sink, frame func() error) error {
	screen := b.opts.screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		screen = s
	}

	if err := screen.Init(); err != nil {
		return err
	}
	if b.opts.mouse {
		screen.EnableMouse()
	}

	src := newSource(screen, b.opts)
	src.Start()
	defer func() {
		screen.Fini()
		<-src.Done()
	}()

	sink.AddEvent(event.NewWindowCreate(event.ShowFullscreen))

	ticker := time.NewTicker(b.opts.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			src.Drain(sink)
			if err := frame(); err != nil {
				return err
			}
			b.draw(screen)
		}
	}
}

// draw renders the status lines, if any.
func (b *Backend) draw(screen tcell.Screen) {
	if b.opts.status == nil {
		return
	}

	screen.Clear()
	style := tcell.StyleDefault
	for y, line := range b.opts.status() {
		x := 0
		for _, r := range line {
			screen.SetContent(x, y, r, nil, style)
			x++
		}
	}
	screen.Show()
}
