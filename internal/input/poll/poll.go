// Package poll turns successive snapshots of input state into events.
//
// Game-style platforms expose the current state of the window and devices
// ("is Escape down?", "where is the cursor?") instead of a stream of events.
// A Tracker compares each Frame with the previous one and emits the events
// describing the difference.
package poll

import (
	"math"
	"slices"

	"github.com/dshills/helios/internal/event"
	"github.com/dshills/helios/internal/input"
)

// ButtonSet is a set of held mouse buttons.
type ButtonSet uint8

// With returns the set with b added.
func (s ButtonSet) With(b event.Button) ButtonSet {
	if b == event.ButtonNone || b > event.ButtonForward {
		return s
	}
	return s | 1<<(b-1)
}

// Has reports whether b is held.
func (s ButtonSet) Has(b event.Button) bool {
	if b == event.ButtonNone || b > event.ButtonForward {
		return false
	}
	return s&(1<<(b-1)) != 0
}

// Frame is the observable input state at one point in time.
type Frame struct {
	// Window geometry
	X, Y          int
	Width, Height int

	// Closing is set once the user asked to close the window.
	Closing bool

	// Pointer state
	CursorX, CursorY int
	Buttons          ButtonSet

	// Wheel is the wheel movement since the previous frame, in steps.
	Wheel float64

	// Keys lists the keys held down, in the order the platform reports them.
	Keys []event.Key

	// Chars lists text input received since the previous frame.
	Chars []rune

	// Mods is the modifier state.
	Mods event.Modifier
}

// Tracker emits the events that lead from one Frame to the next.
// It is not safe for concurrent use.
type Tracker struct {
	prev     Frame
	held     map[event.Key]bool
	started  bool
	closed   bool
	wheelAcc float64
	showMode event.ShowMode
}

// NewTracker creates a tracker. The first Update reports window creation
// with the given show mode.
func NewTracker(mode event.ShowMode) *Tracker {
	return &Tracker{
		held:     make(map[event.Key]bool),
		showMode: mode,
	}
}

// Update compares f with the previous frame, adds the resulting events to
// sink and returns how many were added.
//
// Events are emitted in a fixed order: window creation and geometry,
// pointer motion, wheel, button releases then presses, key releases then
// presses, typed characters, and finally window destruction.
// Nothing is emitted after the window was destroyed.
func (t *Tracker) Update(f Frame, sink input.Sink) int {
	if t.closed {
		return 0
	}

	n := 0
	emit := func(e event.Event) {
		sink.AddEvent(e)
		n++
	}

	if !t.started {
		t.started = true
		emit(event.NewWindowCreate(t.showMode))
		emit(event.NewWindowResize(f.Width, f.Height))
		t.prev.X, t.prev.Y = f.X, f.Y
		t.prev.Width, t.prev.Height = f.Width, f.Height
		t.prev.CursorX, t.prev.CursorY = f.CursorX, f.CursorY
	}

	if f.X != t.prev.X || f.Y != t.prev.Y {
		emit(event.NewWindowMove(f.X, f.Y))
	}
	if f.Width != t.prev.Width || f.Height != t.prev.Height {
		emit(event.NewWindowResize(f.Width, f.Height))
	}

	if f.CursorX != t.prev.CursorX || f.CursorY != t.prev.CursorY {
		emit(event.NewMouseMove(f.CursorX, f.CursorY))
	}

	// Fractional wheel movement (trackpads) accumulates until a whole step.
	t.wheelAcc += f.Wheel
	if steps := math.Trunc(t.wheelAcc); steps != 0 {
		t.wheelAcc -= steps
		emit(event.NewMouseScroll(int(steps)))
	}

	for b := event.ButtonLeft; b <= event.ButtonForward; b++ {
		if t.prev.Buttons.Has(b) && !f.Buttons.Has(b) {
			emit(event.NewMouseButtonRelease(b, f.Mods))
		}
	}
	for b := event.ButtonLeft; b <= event.ButtonForward; b++ {
		if !t.prev.Buttons.Has(b) && f.Buttons.Has(b) {
			emit(event.NewMouseButtonClick(b, f.Mods))
		}
	}

	n += t.updateKeys(f, sink)

	for _, c := range f.Chars {
		emit(event.NewKeyType(c))
	}

	if f.Closing {
		emit(event.NewWindowDestroy())
		t.closed = true
	}

	t.prev = f
	t.prev.Keys = nil
	t.prev.Chars = nil
	return n
}

// updateKeys emits releases for keys no longer held, in key order, then
// presses for newly held keys in frame order.
func (t *Tracker) updateKeys(f Frame, sink input.Sink) int {
	n := 0

	var released []event.Key
	for k := range t.held {
		if !slices.Contains(f.Keys, k) {
			released = append(released, k)
		}
	}
	slices.Sort(released)
	for _, k := range released {
		delete(t.held, k)
		sink.AddEvent(event.NewKeyRelease(k, f.Mods))
		n++
	}

	for _, k := range f.Keys {
		if k == event.KeyNone || t.held[k] {
			continue
		}
		t.held[k] = true
		sink.AddEvent(event.NewKeyPress(k, f.Mods))
		n++
	}
	return n
}

// Closed reports whether the tracker has emitted WindowDestroy.
func (t *Tracker) Closed() bool {
	return t.closed
}

// Held reports whether key is currently held according to the last frame.
func (t *Tracker) Held(key event.Key) bool {
	return t.held[key]
}
