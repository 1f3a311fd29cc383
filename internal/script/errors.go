package script

import "errors"

// Errors for script operations.
var (
	// ErrClosed is returned when using a listener after Close.
	ErrClosed = errors.New("script: listener is closed")

	// ErrNoHandler is returned when a script does not define on_event.
	ErrNoHandler = errors.New("script: on_event is not defined")

	// ErrTimeout is returned when a handler call exceeds its time budget.
	ErrTimeout = errors.New("script: execution timeout")
)
