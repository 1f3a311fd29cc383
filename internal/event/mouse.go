package event

import "fmt"

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonBack is the back navigation button (mouse button 4).
	ButtonBack
	// ButtonForward is the forward navigation button (mouse button 5).
	ButtonForward
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return fmt.Sprintf("button%d", uint8(b))
	}
}

// MouseMove is emitted when the pointer moves.
type MouseMove struct {
	x, y int
}

// NewMouseMove creates a pointer motion event.
func NewMouseMove(x, y int) MouseMove {
	return MouseMove{x: x, y: y}
}

// X returns the horizontal pointer position.
func (e MouseMove) X() int { return e.x }

// Y returns the vertical pointer position.
func (e MouseMove) Y() int { return e.y }

func (MouseMove) Kind() Kind         { return KindMouseMove }
func (MouseMove) Category() Category { return CategoryMouse }
func (MouseMove) sealed()            {}

func (e MouseMove) String() string {
	return describe(KindMouseMove, field{"XPos", e.x}, field{"YPos", e.y})
}

// MouseScroll is emitted when the wheel turns.
// Positive offsets scroll up, negative offsets scroll down.
type MouseScroll struct {
	offset int
}

// NewMouseScroll creates a wheel event.
func NewMouseScroll(offset int) MouseScroll {
	return MouseScroll{offset: offset}
}

// Offset returns the number of wheel steps.
func (e MouseScroll) Offset() int { return e.offset }

func (MouseScroll) Kind() Kind         { return KindMouseScroll }
func (MouseScroll) Category() Category { return CategoryMouse }
func (MouseScroll) sealed()            {}

func (e MouseScroll) String() string {
	return describe(KindMouseScroll, field{"Offset", e.offset})
}

// mouseButton is the payload shared by the mouse button variants.
type mouseButton struct {
	button Button
	mods   Modifier
}

// Button returns the button that changed state.
func (b mouseButton) Button() Button { return b.button }

// Modifiers returns the modifier keys held at the time.
func (b mouseButton) Modifiers() Modifier { return b.mods }

// IsControl returns true if Control was held.
func (b mouseButton) IsControl() bool { return b.mods.IsControl() }

// IsShift returns true if Shift was held.
func (b mouseButton) IsShift() bool { return b.mods.IsShift() }

// IsAlt returns true if Alt was held.
func (b mouseButton) IsAlt() bool { return b.mods.IsAlt() }

func (b mouseButton) describe(k Kind) string {
	return describe(k, append([]field{{"Button", int(b.button)}}, modifierFields(b.mods)...)...)
}

// MouseButtonClick is emitted when a mouse button is pressed.
type MouseButtonClick struct {
	mouseButton
}

// NewMouseButtonClick creates a button press event. Omitted modifiers default to none.
func NewMouseButtonClick(button Button, mods ...Modifier) MouseButtonClick {
	return MouseButtonClick{mouseButton{button: button, mods: combineModifiers(mods)}}
}

func (MouseButtonClick) Kind() Kind         { return KindMouseButtonClick }
func (MouseButtonClick) Category() Category { return CategoryMouseButton }
func (MouseButtonClick) sealed()            {}

func (e MouseButtonClick) String() string {
	return e.describe(KindMouseButtonClick)
}

// MouseButtonRelease is emitted when a mouse button is released.
type MouseButtonRelease struct {
	mouseButton
}

// NewMouseButtonRelease creates a button release event. Omitted modifiers default to none.
func NewMouseButtonRelease(button Button, mods ...Modifier) MouseButtonRelease {
	return MouseButtonRelease{mouseButton{button: button, mods: combineModifiers(mods)}}
}

func (MouseButtonRelease) Kind() Kind         { return KindMouseButtonRelease }
func (MouseButtonRelease) Category() Category { return CategoryMouseButton }
func (MouseButtonRelease) sealed()            {}

func (e MouseButtonRelease) String() string {
	return e.describe(KindMouseButtonRelease)
}
