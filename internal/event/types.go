package event

import (
	"strings"
	"time"
)

// Kind identifies the concrete variant of an event.
// The set of kinds is closed; there is no runtime registration.
type Kind uint8

const (
	// KindNone is reported by nothing that may be enqueued.
	KindNone Kind = iota

	// Window events
	KindWindowCreate
	KindWindowDestroy
	KindWindowMove
	KindWindowResize

	// Mouse events
	KindMouseMove
	KindMouseScroll

	// Mouse button events
	KindMouseButtonClick
	KindMouseButtonRelease

	// Keyboard events
	KindKeyPress
	KindKeyRelease
	KindKeyType

	kindCount
)

var kindNames = [kindCount]string{
	KindNone:               "None",
	KindWindowCreate:       "WindowCreate",
	KindWindowDestroy:      "WindowDestroy",
	KindWindowMove:         "WindowMove",
	KindWindowResize:       "WindowResize",
	KindMouseMove:          "MouseMove",
	KindMouseScroll:        "MouseScroll",
	KindMouseButtonClick:   "MouseButtonClick",
	KindMouseButtonRelease: "MouseButtonRelease",
	KindKeyPress:           "KeyPress",
	KindKeyRelease:         "KeyRelease",
	KindKeyType:            "KeyType",
}

// String returns the variant name of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return "Unknown"
	}
	return kindNames[k]
}

// Valid reports whether k names a concrete variant.
func (k Kind) Valid() bool {
	return k > KindNone && k < kindCount
}

// Category returns the family the kind belongs to.
func (k Kind) Category() Category {
	switch k {
	case KindWindowCreate, KindWindowDestroy, KindWindowMove, KindWindowResize:
		return CategoryWindow
	case KindMouseMove, KindMouseScroll:
		return CategoryMouse
	case KindMouseButtonClick, KindMouseButtonRelease:
		return CategoryMouseButton
	case KindKeyPress, KindKeyRelease, KindKeyType:
		return CategoryKeyboard
	default:
		return CategoryNone
	}
}

// Kinds returns every concrete kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := KindNone + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Category is a bitmask classifying event families.
// It is informational; dispatch never consults it.
type Category uint8

const (
	// CategoryNone indicates no category.
	CategoryNone Category = 0

	// CategoryWindow covers window lifecycle and geometry events.
	CategoryWindow Category = 1 << 0

	// CategoryMouse covers pointer motion and wheel events.
	CategoryMouse Category = 1 << 1

	// CategoryMouseButton covers button press and release events.
	CategoryMouseButton Category = 1 << 2

	// CategoryKeyboard covers key and text input events.
	CategoryKeyboard Category = 1 << 3
)

// Has returns true if c contains all bits of other.
func (c Category) Has(other Category) bool {
	return other != CategoryNone && c&other == other
}

// String returns a representation like "Window" or "Mouse|MouseButton".
func (c Category) String() string {
	if c == CategoryNone {
		return "None"
	}

	var parts []string
	if c.Has(CategoryWindow) {
		parts = append(parts, "Window")
	}
	if c.Has(CategoryMouse) {
		parts = append(parts, "Mouse")
	}
	if c.Has(CategoryMouseButton) {
		parts = append(parts, "MouseButton")
	}
	if c.Has(CategoryKeyboard) {
		parts = append(parts, "Keyboard")
	}
	return strings.Join(parts, "|")
}

// Listener receives every dispatched event.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc is a function adapter for Listener.
type ListenerFunc func(e Event)

// OnEvent implements the Listener interface.
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// PanicHandler is called when a listener panics and recovery is enabled.
type PanicHandler func(e Event, recovered any, stack []byte)

// Stats contains bus statistics.
type Stats struct {
	// Queued is the number of events waiting for the next pass.
	Queued int

	// Listeners is the number of registered listeners.
	Listeners int

	// Passes is the number of completed dispatch passes.
	Passes uint64

	// EventsAdded is the total number of events enqueued.
	EventsAdded uint64

	// EventsDispatched is the total number of events drained by dispatch passes.
	EventsDispatched uint64

	// ListenerCalls is the total number of listener invocations.
	ListenerCalls uint64

	// ListenerPanics is the number of recovered listener panics.
	ListenerPanics uint64

	// ListenerTime is the cumulative time spent inside listeners.
	ListenerTime time.Duration
}
