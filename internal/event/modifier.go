package event

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota

	// ModShift indicates the Shift key.
	ModShift

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt
)

// combineModifiers ORs together optional constructor modifiers.
func combineModifiers(mods []Modifier) Modifier {
	var m Modifier
	for _, mod := range mods {
		m |= mod
	}
	return m
}

// ModifiersOf builds a Modifier from individual flags.
func ModifiersOf(control, shift, alt bool) Modifier {
	var m Modifier
	if control {
		m |= ModCtrl
	}
	if shift {
		m |= ModShift
	}
	if alt {
		m |= ModAlt
	}
	return m
}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// IsControl returns true if Control is held.
func (m Modifier) IsControl() bool {
	return m.Has(ModCtrl)
}

// IsShift returns true if Shift is held.
func (m Modifier) IsShift() bool {
	return m.Has(ModShift)
}

// IsAlt returns true if Alt is held.
func (m Modifier) IsAlt() bool {
	return m.Has(ModAlt)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.IsControl() {
		parts = append(parts, "Ctrl")
	}
	if m.IsAlt() {
		parts = append(parts, "Alt")
	}
	if m.IsShift() {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}
