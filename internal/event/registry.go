package event

import "github.com/dshills/helios/internal/event/dispatch"

// Registry is the ordered, append-only collection of listeners.
// Registration order is delivery order; listeners are never removed.
type Registry struct {
	listeners []Listener
	handlers  []dispatch.Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Reserve grows the registry's capacity to at least n listeners.
// It never shrinks and has no observable effect besides allocation.
func (r *Registry) Reserve(n int) {
	if n <= cap(r.listeners) {
		return
	}

	listeners := make([]Listener, len(r.listeners), n)
	copy(listeners, r.listeners)
	r.listeners = listeners

	handlers := make([]dispatch.Handler, len(r.handlers), n)
	copy(handlers, r.handlers)
	r.handlers = handlers
}

// Add appends a listener. A nil listener is ignored and Add returns false.
func (r *Registry) Add(l Listener) bool {
	if l == nil {
		return false
	}
	if fn, ok := l.(ListenerFunc); ok && fn == nil {
		return false
	}

	r.listeners = append(r.listeners, l)
	r.handlers = append(r.handlers, listenerHandler{l})
	return true
}

// Len returns the number of registered listeners.
func (r *Registry) Len() int {
	return len(r.listeners)
}

// Cap returns the reserved capacity.
func (r *Registry) Cap() int {
	return cap(r.listeners)
}

// Listeners returns a copy of the registered listeners in registration order.
func (r *Registry) Listeners() []Listener {
	result := make([]Listener, len(r.listeners))
	copy(result, r.listeners)
	return result
}

// snapshot returns the handlers registered so far. Appends made after the
// snapshot never become visible through it.
func (r *Registry) snapshot() []dispatch.Handler {
	return r.handlers[:len(r.handlers):len(r.handlers)]
}

// listenerHandler adapts a Listener to dispatch.Handler.
type listenerHandler struct {
	l Listener
}

func (h listenerHandler) Handle(event any) {
	h.l.OnEvent(event.(Event))
}
