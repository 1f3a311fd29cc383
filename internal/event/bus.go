package event

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/helios/internal/event/dispatch"
	"github.com/dshills/helios/internal/logging"
)

// entry is a queued event together with the kind recorded at enqueue time.
type entry struct {
	event Event
	kind  Kind
}

// Bus is the FIFO event queue and its listener registry.
//
// A Bus is owned by a single goroutine: AddEvent, AddEventListener and
// Dispatch must not be called concurrently. Callers that feed it from other
// goroutines must hand events over through their own synchronization.
type Bus struct {
	id     string
	config busConfig

	queue []entry
	spare []entry

	registry   *Registry
	dispatcher *dispatch.SyncDispatcher
	logger     *logging.Logger

	dispatching bool

	// Stats
	passes           uint64
	eventsAdded      uint64
	eventsDispatched uint64
}

// NewBus creates a new event bus with the given options.
func NewBus(opts ...Option) *Bus {
	config := defaultBusConfig()
	for _, opt := range opts {
		opt(&config)
	}

	b := &Bus{
		id:       uuid.NewString(),
		config:   config,
		registry: NewRegistry(),
	}
	b.logger = config.logger.WithFields(map[string]any{
		"component": "bus",
		"bus":       b.id,
	})

	if config.queueCapacity > 0 {
		b.queue = make([]entry, 0, config.queueCapacity)
	}

	var dispatchOpts []dispatch.SyncOption
	if config.panicHandler != nil {
		dispatchOpts = append(dispatchOpts, dispatch.WithPanicHandler(b.recovered))
	}
	b.dispatcher = dispatch.NewSyncDispatcher(dispatchOpts...)

	return b
}

// ID returns the unique identifier of this bus instance.
func (b *Bus) ID() string {
	return b.id
}

// Init reserves registry capacity for the configured number of listeners.
// It is a performance hint only; calling it any number of times, or never,
// does not change behavior.
func (b *Bus) Init() {
	b.registry.Reserve(b.config.listenerCapacity)
}

// AddEvent appends an event to the tail of the queue, tagged with its kind.
// Pointer-held variants are copied so later mutation cannot reach the queue.
//
// Enqueuing nil, a nil pointer, or anything reporting KindNone is producer
// misuse and panics with ErrInvalidEvent.
func (b *Bus) AddEvent(e Event) {
	ev, _ := concrete(e)
	if ev == nil || !ev.Kind().Valid() {
		panic(fmt.Errorf("%w: %T", ErrInvalidEvent, e))
	}

	b.queue = append(b.queue, entry{event: ev, kind: ev.Kind()})
	b.eventsAdded++
}

// AddEventListener appends a listener to the registry.
// Listeners receive every dispatched event in registration order and cannot
// be removed. A nil listener is ignored.
func (b *Bus) AddEventListener(l Listener) {
	if !b.registry.Add(l) {
		b.logger.Debug("ignoring nil listener")
	}
}

// AddEventListenerFunc is a convenience for AddEventListener(ListenerFunc(fn)).
func (b *Bus) AddEventListenerFunc(fn func(Event)) {
	b.AddEventListener(ListenerFunc(fn))
}

// Dispatch drains the queue in FIFO order, handing each event to every
// listener in registration order.
//
// The pass covers exactly the events queued when it starts. Events added by
// listeners during the pass wait for the next call, and listeners registered
// during the pass first see events of the next call. Calling Dispatch from a
// listener is ignored.
//
// A listener panic aborts the pass unless a panic handler was configured;
// the rest of that pass's events are then discarded.
func (b *Bus) Dispatch() {
	if b.dispatching {
		b.logger.Warn("ignoring re-entrant dispatch")
		return
	}
	b.dispatching = true
	defer func() { b.dispatching = false }()

	pending := b.queue
	b.queue = b.spare[:0]
	b.spare = nil

	handlers := b.registry.snapshot()

	for i := range pending {
		ev := resolve(pending[i])
		pending[i] = entry{}

		for _, h := range handlers {
			b.dispatcher.Dispatch(ev, h)
		}
		b.eventsDispatched++
	}

	b.passes++
	if len(pending) > 0 {
		b.logger.Debug("pass %d: %d events, %d listeners", b.passes, len(pending), len(handlers))
	}

	b.spare = pending[:0]
}

// Len returns the number of events waiting for the next pass.
func (b *Bus) Len() int {
	return len(b.queue)
}

// Listeners returns the number of registered listeners.
func (b *Bus) Listeners() int {
	return b.registry.Len()
}

// Stats returns current bus statistics.
// Listener counters come from the dispatcher.
func (b *Bus) Stats() Stats {
	ds := b.dispatcher.Stats()
	return Stats{
		Queued:           len(b.queue),
		Listeners:        b.registry.Len(),
		Passes:           b.passes,
		EventsAdded:      b.eventsAdded,
		EventsDispatched: b.eventsDispatched,
		ListenerCalls:    ds.Dispatched,
		ListenerPanics:   ds.Panicked,
		ListenerTime:     ds.TotalDuration,
	}
}

// recovered adapts the dispatch panic callback to the configured PanicHandler.
func (b *Bus) recovered(event any, panicValue any, stack []byte) {
	ev, _ := event.(Event)
	b.logger.Error("listener panic on %v: %v", ev, panicValue)
	b.config.panicHandler(ev, panicValue, stack)
}

// resolve recovers the concrete variant of a drained entry and checks it
// against the recorded tag. A mismatch means the queue was corrupted.
func resolve(en entry) Event {
	ev, _ := concrete(en.event)
	if ev == nil {
		panic(&EntryError{Tag: en.kind, Value: en.event})
	}
	if ev.Kind() != en.kind {
		panic(&EntryError{Tag: en.kind, Resolved: ev.Kind(), Value: en.event})
	}
	return ev
}

// concrete returns the value form of a known variant and reports whether the
// dynamic type is one of the variants or a pointer to one. Nil pointers are
// known but yield a nil event; unknown implementations yield (nil, false).
func concrete(e Event) (Event, bool) {
	switch v := e.(type) {
	case WindowCreate, WindowDestroy, WindowMove, WindowResize,
		MouseMove, MouseScroll, MouseButtonClick, MouseButtonRelease,
		KeyPress, KeyRelease, KeyType:
		return v, true
	case *WindowCreate:
		return deref(v)
	case *WindowDestroy:
		return deref(v)
	case *WindowMove:
		return deref(v)
	case *WindowResize:
		return deref(v)
	case *MouseMove:
		return deref(v)
	case *MouseScroll:
		return deref(v)
	case *MouseButtonClick:
		return deref(v)
	case *MouseButtonRelease:
		return deref(v)
	case *KeyPress:
		return deref(v)
	case *KeyRelease:
		return deref(v)
	case *KeyType:
		return deref(v)
	default:
		return nil, false
	}
}

func deref[V Variant](p *V) (Event, bool) {
	if p == nil {
		return nil, true
	}
	return *p, true
}
