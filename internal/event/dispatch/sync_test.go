package dispatch

import (
	"testing"
)

type handlerFunc func(event any)

func (f handlerFunc) Handle(event any) { f(event) }

func TestResult_IsSuccess(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		expected bool
	}{
		{"success", Result{}, true},
		{"panic", Result{Panicked: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.IsSuccess(); got != tt.expected {
				t.Errorf("IsSuccess() = %v, want %v", got, tt.expected)
			}
			if got := tt.result.IsPanic(); got == tt.expected {
				t.Errorf("IsPanic() = %v, want %v", got, !tt.expected)
			}
		})
	}
}

func TestExecutor_Execute_Success(t *testing.T) {
	executor := NewExecutor()

	var called bool
	var receivedEvent any

	handler := handlerFunc(func(event any) {
		called = true
		receivedEvent = event
	})

	result := executor.Execute("test-event", handler)

	if !result.IsSuccess() {
		t.Errorf("expected success, got %+v", result)
	}
	if !called {
		t.Error("handler was not called")
	}
	if receivedEvent != "test-event" {
		t.Errorf("expected event 'test-event', got %v", receivedEvent)
	}
	if executor.Recovers() {
		t.Error("expected recovery to be disabled by default")
	}
}

func TestExecutor_Execute_PanicPropagatesWithoutHandler(t *testing.T) {
	executor := NewExecutor()

	handler := handlerFunc(func(event any) {
		panic("boom")
	})

	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("expected panic 'boom' to propagate, got %v", r)
		}
	}()

	executor.Execute("test-event", handler)
	t.Error("expected Execute to panic")
}

func TestExecutor_Execute_Panic(t *testing.T) {
	var panicHandlerCalled bool
	var capturedPanicValue any
	var capturedEvent any

	executor := NewExecutor(
		WithExecutorPanicHandler(func(event any, panicValue any, stack []byte) {
			panicHandlerCalled = true
			capturedPanicValue = panicValue
			capturedEvent = event
		}),
	)

	handler := handlerFunc(func(event any) {
		panic("test panic")
	})

	result := executor.Execute("test-event", handler)

	if result.IsSuccess() {
		t.Error("expected failure")
	}
	if !result.IsPanic() {
		t.Error("expected IsPanic() to be true")
	}
	if result.PanicValue != "test panic" {
		t.Errorf("expected panic value 'test panic', got %v", result.PanicValue)
	}
	if len(result.PanicStack) == 0 {
		t.Error("expected non-empty stack trace")
	}
	if !panicHandlerCalled {
		t.Error("panic handler was not called")
	}
	if capturedPanicValue != "test panic" {
		t.Errorf("panic handler received wrong value: %v", capturedPanicValue)
	}
	if capturedEvent != "test-event" {
		t.Errorf("panic handler received wrong event: %v", capturedEvent)
	}
}

func TestExecutor_Execute_PanicHandlerPanics(t *testing.T) {
	executor := NewExecutor(
		WithExecutorPanicHandler(func(event any, panicValue any, stack []byte) {
			panic("handler exploded too")
		}),
	)

	result := executor.Execute("test-event", handlerFunc(func(event any) {
		panic("boom")
	}))

	if !result.IsPanic() {
		t.Error("expected recovered panic")
	}
}

func TestSyncDispatcher_Dispatch_Success(t *testing.T) {
	dispatcher := NewSyncDispatcher()

	result := dispatcher.Dispatch("test-event", handlerFunc(func(event any) {}))

	if !result.IsSuccess() {
		t.Errorf("expected success, got %+v", result)
	}

	stats := dispatcher.Stats()
	if stats.Dispatched != 1 {
		t.Errorf("expected 1 dispatched, got %d", stats.Dispatched)
	}
	if stats.Succeeded != 1 {
		t.Errorf("expected 1 succeeded, got %d", stats.Succeeded)
	}
}

func TestSyncDispatcher_Dispatch_Panic(t *testing.T) {
	var panicHandlerCalled bool

	dispatcher := NewSyncDispatcher(
		WithPanicHandler(func(event any, panicValue any, stack []byte) {
			panicHandlerCalled = true
		}),
	)

	if !dispatcher.Recovers() {
		t.Fatal("expected dispatcher to recover panics")
	}

	result := dispatcher.Dispatch("test-event", handlerFunc(func(event any) {
		panic("boom")
	}))

	if !result.IsPanic() {
		t.Error("expected panic")
	}
	if !panicHandlerCalled {
		t.Error("panic handler was not called")
	}

	stats := dispatcher.Stats()
	if stats.Panicked != 1 {
		t.Errorf("expected 1 panicked, got %d", stats.Panicked)
	}
	if stats.Succeeded != 0 {
		t.Errorf("expected 0 succeeded, got %d", stats.Succeeded)
	}
}

func TestSyncDispatcher_Dispatch_ContinuesAfterRecoveredPanic(t *testing.T) {
	dispatcher := NewSyncDispatcher(
		WithPanicHandler(func(event any, panicValue any, stack []byte) {}),
	)

	var calls []string
	handlers := []Handler{
		handlerFunc(func(event any) { calls = append(calls, "a") }),
		handlerFunc(func(event any) { panic("b") }),
		handlerFunc(func(event any) { calls = append(calls, "c") }),
	}

	var results []Result
	for _, h := range handlers {
		results = append(results, dispatcher.Dispatch("test-event", h))
	}

	if !results[1].IsPanic() {
		t.Error("expected second result to be a panic")
	}
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "c" {
		t.Errorf("expected calls [a c], got %v", calls)
	}

	stats := dispatcher.Stats()
	if stats.Dispatched != 3 || stats.Succeeded != 2 || stats.Panicked != 1 {
		t.Errorf("expected 3 dispatched, 2 succeeded, 1 panicked, got %+v", stats)
	}
}
