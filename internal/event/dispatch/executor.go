package dispatch

import (
	"runtime/debug"
	"time"
)

// Executor handles the actual execution of handlers with timing and
// optional panic recovery.
type Executor struct {
	panicHandler PanicHandler
}

// NewExecutor creates a new executor with the given options.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithExecutorPanicHandler enables panic recovery and reports panics to h.
// A nil handler leaves recovery disabled.
func WithExecutorPanicHandler(h PanicHandler) ExecutorOption {
	return func(e *Executor) {
		e.panicHandler = h
	}
}

// Recovers returns true if panics raised by handlers are recovered.
func (e *Executor) Recovers() bool {
	return e.panicHandler != nil
}

// Execute runs a handler with the given event and returns the result.
// Without a panic handler, a handler panic propagates to the caller.
func (e *Executor) Execute(event any, handler Handler) (result Result) {
	start := time.Now()

	if e.panicHandler == nil {
		handler.Handle(event)
		result.Duration = time.Since(start)
		return result
	}

	defer func() {
		result.Duration = time.Since(start)

		if r := recover(); r != nil {
			stack := debug.Stack()

			result.Panicked = true
			result.PanicValue = r
			result.PanicStack = stack

			// A panicking panic handler must not take the pass down with it.
			func() {
				defer func() {
					_ = recover()
				}()
				e.panicHandler(event, r, stack)
			}()
		}
	}()

	handler.Handle(event)
	return result
}
