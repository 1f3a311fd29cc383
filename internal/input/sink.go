package input

import "github.com/dshills/helios/internal/event"

// Sink receives produced events. *event.Bus satisfies it.
type Sink interface {
	AddEvent(e event.Event)
}

// SinkFunc is a function adapter for Sink.
type SinkFunc func(e event.Event)

// AddEvent implements Sink.
func (f SinkFunc) AddEvent(e event.Event) {
	f(e)
}

// Slice is a Sink that collects events in order. It is mostly useful in tests.
type Slice []event.Event

// AddEvent implements Sink.
func (s *Slice) AddEvent(e event.Event) {
	*s = append(*s, e)
}

// Kinds returns the kinds of the collected events in order.
func (s Slice) Kinds() []event.Kind {
	kinds := make([]event.Kind, len(s))
	for i, e := range s {
		kinds[i] = e.Kind()
	}
	return kinds
}
