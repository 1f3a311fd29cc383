package dispatch

import "time"

// Handler is the interface for listeners driven by a dispatcher.
// This mirrors the event.Listener interface without importing it.
type Handler interface {
	Handle(event any)
}

// Result represents the outcome of a handler execution.
type Result struct {
	// Panicked is true if the handler panicked and the panic was recovered.
	Panicked bool

	// PanicValue is the value passed to panic(), if Panicked is true.
	PanicValue any

	// PanicStack is the stack trace at the point of panic.
	PanicStack []byte

	// Duration is how long the handler took to execute.
	Duration time.Duration
}

// IsSuccess returns true if the handler returned normally.
func (r Result) IsSuccess() bool {
	return !r.Panicked
}

// IsPanic returns true if the result indicates a recovered panic.
func (r Result) IsPanic() bool {
	return r.Panicked
}

// PanicHandler is called when a handler panics during execution.
// It receives the event being processed, the panic value, and the stack trace.
type PanicHandler func(event any, panicValue any, stack []byte)
