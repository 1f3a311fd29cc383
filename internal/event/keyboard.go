package event

import (
	"fmt"
	"unicode"
)

// Key identifies a keyboard key.
// Character keys use their rune value; special keys live above the Unicode range.
type Key int32

const (
	// KeyNone represents no key.
	KeyNone Key = 0

	keySpecialBase Key = unicode.MaxRune + 1
)

// Special keys
const (
	KeyEscape Key = keySpecialBase + iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	keySpecialEnd
)

var specialKeyNames = [...]string{
	"Escape", "Enter", "Tab", "Backspace", "Delete", "Insert",
	"Home", "End", "PageUp", "PageDown",
	"Up", "Down", "Left", "Right",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
}

// KeyFromRune returns the key for a character.
func KeyFromRune(r rune) Key {
	return Key(r)
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k >= keySpecialBase && k < keySpecialEnd
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// Rune returns the character for a character key, or 0 for special keys.
func (k Key) Rune() rune {
	if k <= KeyNone || k > unicode.MaxRune {
		return 0
	}
	return rune(k)
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch {
	case k == KeyNone:
		return "None"
	case k.IsSpecial():
		return specialKeyNames[k-keySpecialBase]
	case k == ' ':
		return "Space"
	case k > KeyNone && k <= unicode.MaxRune && unicode.IsPrint(rune(k)):
		return string(rune(k))
	default:
		return fmt.Sprintf("Key(%d)", int32(k))
	}
}

// keyEvent is the payload shared by the key press and release variants.
type keyEvent struct {
	key  Key
	mods Modifier
}

// Key returns the key code.
func (e keyEvent) Key() Key { return e.key }

// Modifiers returns the modifier keys held at the time.
func (e keyEvent) Modifiers() Modifier { return e.mods }

// IsControl returns true if Control was held.
func (e keyEvent) IsControl() bool { return e.mods.IsControl() }

// IsShift returns true if Shift was held.
func (e keyEvent) IsShift() bool { return e.mods.IsShift() }

// IsAlt returns true if Alt was held.
func (e keyEvent) IsAlt() bool { return e.mods.IsAlt() }

func (e keyEvent) describe(k Kind) string {
	return describe(k, append([]field{{"Key", int32(e.key)}}, modifierFields(e.mods)...)...)
}

// KeyPress is emitted when a key goes down (including auto-repeat).
type KeyPress struct {
	keyEvent
}

// NewKeyPress creates a key press event. Omitted modifiers default to none.
func NewKeyPress(key Key, mods ...Modifier) KeyPress {
	return KeyPress{keyEvent{key: key, mods: combineModifiers(mods)}}
}

func (KeyPress) Kind() Kind         { return KindKeyPress }
func (KeyPress) Category() Category { return CategoryKeyboard }
func (KeyPress) sealed()            {}

func (e KeyPress) String() string {
	return e.describe(KindKeyPress)
}

// KeyRelease is emitted when a key goes up.
type KeyRelease struct {
	keyEvent
}

// NewKeyRelease creates a key release event. Omitted modifiers default to none.
func NewKeyRelease(key Key, mods ...Modifier) KeyRelease {
	return KeyRelease{keyEvent{key: key, mods: combineModifiers(mods)}}
}

func (KeyRelease) Kind() Kind         { return KindKeyRelease }
func (KeyRelease) Category() Category { return CategoryKeyboard }
func (KeyRelease) sealed()            {}

func (e KeyRelease) String() string {
	return e.describe(KindKeyRelease)
}

// KeyType is emitted for text input, after layout and modifiers are applied.
type KeyType struct {
	char rune
}

// NewKeyType creates a text input event for a single character.
func NewKeyType(c rune) KeyType {
	return KeyType{char: c}
}

// Char returns the typed character.
func (e KeyType) Char() rune { return e.char }

func (KeyType) Kind() Kind         { return KindKeyType }
func (KeyType) Category() Category { return CategoryKeyboard }
func (KeyType) sealed()            {}

func (e KeyType) String() string {
	return describe(KindKeyType, field{"Char", string(e.char)})
}
