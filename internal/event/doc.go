// Package event provides the event queue and dispatch mechanism for Helios.
//
// Input and window producers enqueue events as they observe them; the host
// loop drains the queue once per frame and every registered listener sees
// every event, in order. Nothing here is asynchronous: the bus is a plain
// value owned by one goroutine.
//
// # Architecture
//
//	 producers                       ┌──────────────────────────────┐
//	 (terminal, window, scripts) ──▶ │             Bus              │
//	                    AddEvent     │  - FIFO queue of entries     │
//	                                 │  - append-only Registry      │
//	                                 └──────────────────────────────┘
//	                                               │ Dispatch (once per frame)
//	                                               ▼
//	                                 ┌──────────────────────────────┐
//	                                 │   dispatch.SyncDispatcher    │
//	                                 │  - registration-order fan-out│
//	                                 │  - optional panic recovery   │
//	                                 └──────────────────────────────┘
//	                                               │
//	                                               ▼
//	                                 listeners ── Dispatcher / Handle[V]
//
// # Event Taxonomy
//
// The set of variants is closed. Each has a Kind, a Category and a
// description produced by String:
//
//	Window:       WindowCreate, WindowDestroy, WindowMove, WindowResize
//	Mouse:        MouseMove, MouseScroll
//	MouseButton:  MouseButtonClick, MouseButtonRelease
//	Keyboard:     KeyPress, KeyRelease, KeyType
//
// Key and mouse button variants also carry Control/Shift/Alt modifier state.
//
// # Basic Usage
//
//	bus := event.NewBus()
//	bus.Init() // optional capacity hint
//
//	bus.AddEventListenerFunc(func(e event.Event) {
//	    fmt.Println(e)
//
//	    event.Handle(e, func(k event.KeyPress) {
//	        fmt.Printf("pressed %s\n", k.Key())
//	    })
//	})
//
//	bus.AddEvent(event.NewKeyPress('a'))
//	bus.AddEvent(event.NewMouseButtonClick(event.ButtonMiddle))
//
//	// once per frame
//	bus.Dispatch()
//
// # Dispatch Semantics
//
// A pass drains exactly the events that were queued when Dispatch was called.
// Events added from inside a listener are delivered by the next pass.
// An entry whose tag disagrees with the stored variant panics with
// ErrInconsistentEntry; it can only come from memory or logic corruption.
//
// # Thread Safety
//
// None. A Bus must be used from one goroutine. Producers running elsewhere
// (for example a terminal poller) hand events to the owning goroutine first.
//
// # Subpackages
//
//   - dispatch: listener execution, timing and panic recovery
package event
