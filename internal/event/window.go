package event

// ShowMode describes how a window was shown when it was created.
type ShowMode int

const (
	// ShowNormal is a regular, restored window.
	ShowNormal ShowMode = iota
	// ShowMinimized is an iconified window.
	ShowMinimized
	// ShowMaximized is a window filling the work area.
	ShowMaximized
	// ShowFullscreen is a window covering the whole screen.
	ShowFullscreen
)

// String returns the show mode name.
func (m ShowMode) String() string {
	switch m {
	case ShowNormal:
		return "normal"
	case ShowMinimized:
		return "minimized"
	case ShowMaximized:
		return "maximized"
	case ShowFullscreen:
		return "fullscreen"
	default:
		return "unknown"
	}
}

// WindowCreate is emitted once a window has been created.
type WindowCreate struct {
	showMode ShowMode
}

// NewWindowCreate creates a window creation event.
func NewWindowCreate(mode ShowMode) WindowCreate {
	return WindowCreate{showMode: mode}
}

// ShowMode returns how the window was shown.
func (e WindowCreate) ShowMode() ShowMode { return e.showMode }

func (WindowCreate) Kind() Kind         { return KindWindowCreate }
func (WindowCreate) Category() Category { return CategoryWindow }
func (WindowCreate) sealed()            {}

func (e WindowCreate) String() string {
	return describe(KindWindowCreate, field{"ShowMode", int(e.showMode)})
}

// WindowDestroy is emitted when a window is closed.
type WindowDestroy struct{}

// NewWindowDestroy creates a window destruction event.
func NewWindowDestroy() WindowDestroy {
	return WindowDestroy{}
}

func (WindowDestroy) Kind() Kind         { return KindWindowDestroy }
func (WindowDestroy) Category() Category { return CategoryWindow }
func (WindowDestroy) sealed()            {}

func (WindowDestroy) String() string {
	return describe(KindWindowDestroy)
}

// WindowMove is emitted when a window changes position.
type WindowMove struct {
	x, y int
}

// NewWindowMove creates a window move event for the new top-left position.
func NewWindowMove(x, y int) WindowMove {
	return WindowMove{x: x, y: y}
}

// X returns the new horizontal position.
func (e WindowMove) X() int { return e.x }

// Y returns the new vertical position.
func (e WindowMove) Y() int { return e.y }

func (WindowMove) Kind() Kind         { return KindWindowMove }
func (WindowMove) Category() Category { return CategoryWindow }
func (WindowMove) sealed()            {}

func (e WindowMove) String() string {
	return describe(KindWindowMove, field{"XPos", e.x}, field{"YPos", e.y})
}

// WindowResize is emitted when a window changes size.
type WindowResize struct {
	width, height int
}

// NewWindowResize creates a window resize event.
func NewWindowResize(width, height int) WindowResize {
	return WindowResize{width: width, height: height}
}

// Width returns the new width.
func (e WindowResize) Width() int { return e.width }

// Height returns the new height.
func (e WindowResize) Height() int { return e.height }

func (WindowResize) Kind() Kind         { return KindWindowResize }
func (WindowResize) Category() Category { return CategoryWindow }
func (WindowResize) sealed()            {}

func (e WindowResize) String() string {
	return describe(KindWindowResize, field{"Width", e.width}, field{"Height", e.height})
}
