// Package dispatch executes listeners on behalf of the event bus.
//
// The bus fans every drained event out to its listeners through a
// SyncDispatcher. Listeners run in the caller's goroutine, in the order they
// are handed over, and each execution is timed and counted.
//
// # Panic Recovery
//
// By default a panicking listener is not recovered: the panic unwinds through
// the dispatch pass, because a trusted consumer that panics signals a bug.
// Installing a PanicHandler switches the executor to recovery mode, where the
// panic is captured with its stack, reported, and the next listener runs.
//
// # Usage
//
//	dispatcher := dispatch.NewSyncDispatcher(
//	    dispatch.WithPanicHandler(func(event any, v any, stack []byte) {
//	        log.Printf("listener panic: %v\n%s", v, stack)
//	    }),
//	)
//	result := dispatcher.Dispatch(event, handler)
//	if result.IsPanic() {
//	    // already reported
//	}
package dispatch
