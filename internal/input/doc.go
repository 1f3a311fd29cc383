// Package input connects input sources to the event bus.
//
// A producer observes a platform (a terminal, a game window) and turns what
// it sees into event variants which it hands to a Sink, normally the
// application's *event.Bus. Producers live in subpackages:
//
//   - termsrc: tcell terminal events
//   - poll: frame-snapshot diffing for sources that expose state, not events
//   - ebitensrc: ebiten window and device state, via poll
//
// Producers that run on their own goroutine buffer translated events and
// hand them over from the bus-owning goroutine through Drain, so the bus
// itself is never touched concurrently.
package input
