package event

// Dispatcher routes a received event to handlers written for specific variants.
// It is typically built at the top of a listener:
//
//	bus.AddEventListenerFunc(func(e event.Event) {
//	    d := event.NewDispatcher(e)
//	    event.Dispatch(d, func(k event.KeyPress) { ... })
//	    event.Dispatch(d, func(r event.WindowResize) { ... })
//	})
type Dispatcher struct {
	event Event
}

// NewDispatcher creates a Dispatcher for a received event.
func NewDispatcher(e Event) Dispatcher {
	return Dispatcher{event: e}
}

// Event returns the wrapped event.
func (d Dispatcher) Event() Event {
	return d.event
}

// Dispatch invokes fn if the wrapped event is a V, and reports whether it did.
// A mismatch is the normal "not this case" outcome.
func Dispatch[V Variant](d Dispatcher, fn func(V)) bool {
	ev, known := concrete(d.event)
	if !known {
		// Only a foreign type reporting one of our kinds is an error.
		if d.event != nil && d.event.Kind() == KindOf[V]() {
			panic(&EntryError{Tag: d.event.Kind(), Value: d.event})
		}
		return false
	}

	v, ok := ev.(V)
	if ok {
		fn(v)
	}
	return ok
}

// Handle is shorthand for Dispatch(NewDispatcher(e), fn).
func Handle[V Variant](e Event, fn func(V)) bool {
	return Dispatch(NewDispatcher(e), fn)
}

// FilterFunc is a predicate over events.
// Return true to allow the event, false to filter it out.
type FilterFunc func(e Event) bool

// FilterByKind allows only events of the given kinds.
func FilterByKind(kinds ...Kind) FilterFunc {
	var set [kindCount]bool
	for _, k := range kinds {
		if k < kindCount {
			set[k] = true
		}
	}
	return func(e Event) bool {
		k := e.Kind()
		return k < kindCount && set[k]
	}
}

// FilterByCategory allows events whose category intersects mask.
func FilterByCategory(mask Category) FilterFunc {
	return func(e Event) bool {
		return e.Category()&mask != 0
	}
}

// FilterModified allows only modifier-carrying events with at least one of mods held.
func FilterModified(mods Modifier) FilterFunc {
	return func(e Event) bool {
		me, ok := e.(ModifierEvent)
		return ok && me.Modifiers()&mods != 0
	}
}

// AndFilter allows an event only if every filter allows it.
func AndFilter(filters ...FilterFunc) FilterFunc {
	return func(e Event) bool {
		for _, f := range filters {
			if !f(e) {
				return false
			}
		}
		return true
	}
}

// OrFilter allows an event if any filter allows it.
func OrFilter(filters ...FilterFunc) FilterFunc {
	return func(e Event) bool {
		for _, f := range filters {
			if f(e) {
				return true
			}
		}
		return false
	}
}

// NotFilter inverts a filter.
func NotFilter(f FilterFunc) FilterFunc {
	return func(e Event) bool {
		return !f(e)
	}
}

// Filtered wraps a listener so it only sees events allowed by f.
func Filtered(l Listener, f FilterFunc) Listener {
	return ListenerFunc(func(e Event) {
		if f(e) {
			l.OnEvent(e)
		}
	})
}
