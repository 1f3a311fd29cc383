package event

import (
	"fmt"
	"strings"
)

// Event is the capability shared by every event variant.
// Events are immutable once created.
//
// The interface is sealed: only the variants declared in this package
// implement it, which keeps the taxonomy closed.
type Event interface {
	// Kind returns the variant discriminant.
	Kind() Kind

	// Category returns the family of the variant.
	Category() Category

	// String returns a human-readable description of the event and its payload.
	String() string

	sealed()
}

// ModifierEvent is implemented by variants that carry modifier key state:
// key press/release and mouse button click/release.
type ModifierEvent interface {
	Event

	// Modifiers returns the modifier keys held when the event occurred.
	Modifiers() Modifier
}

// Variant is the closed set of concrete event types.
type Variant interface {
	WindowCreate | WindowDestroy | WindowMove | WindowResize |
		MouseMove | MouseScroll | MouseButtonClick | MouseButtonRelease |
		KeyPress | KeyRelease | KeyType

	Event
}

// KindOf returns the kind of variant V without needing an instance.
func KindOf[V Variant]() Kind {
	var zero V
	return zero.Kind()
}

// field is a single "Name: (value)" component of a description.
type field struct {
	name  string
	value any
}

// describe renders the canonical description "[Event:Name]: A: (1), B: (2)".
func describe(k Kind, fields ...field) string {
	var sb strings.Builder
	sb.WriteString("[Event:")
	sb.WriteString(k.String())
	sb.WriteByte(']')

	for i, f := range fields {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: (%v)", f.name, f.value)
	}
	return sb.String()
}

// modifierFields returns the Control/Shift/Alt description fields.
func modifierFields(m Modifier) []field {
	return []field{
		{"Control", m.IsControl()},
		{"Shift", m.IsShift()},
		{"Alt", m.IsAlt()},
	}
}
