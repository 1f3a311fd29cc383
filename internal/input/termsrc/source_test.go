package termsrc

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/helios/internal/event"
	"github.com/dshills/helios/internal/input"
)

// chanPoller feeds queued tcell events to a Source; closing it ends polling.
type chanPoller chan tcell.Event

func (p chanPoller) PollEvent() tcell.Event {
	return <-p
}

func TestSource_Drain(t *testing.T) {
	p := make(chanPoller, 8)
	metrics := input.NewMetrics()
	src := NewSource(p, WithMetrics(metrics))
	src.Start()

	p <- tcell.NewEventResize(80, 24)
	p <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	close(p)

	select {
	case <-src.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("source did not stop after poller closed")
	}

	var got input.Slice
	n := src.Drain(&got)

	require.Equal(t, 4, n)
	assert.Equal(t, []event.Kind{
		event.KindWindowResize, event.KindKeyPress, event.KindKeyType, event.KindKeyRelease,
	}, got.Kinds())

	assert.Zero(t, src.Drain(&got), "drain is empty afterwards")

	snap := metrics.Snapshot()
	assert.Equal(t, uint64(1), snap.WindowEventsTotal)
	assert.Equal(t, uint64(3), snap.KeyEventsTotal)
	assert.Same(t, metrics, src.Metrics())
}

func TestSource_DropsWhenFull(t *testing.T) {
	p := make(chanPoller, 8)
	metrics := input.NewMetrics()
	src := NewSource(p, WithBufferSize(1), WithMetrics(metrics))
	src.Start()

	p <- tcell.NewEventResize(1, 1)
	p <- tcell.NewEventResize(2, 2)
	close(p)
	<-src.Done()

	var got input.Slice
	src.Drain(&got)

	require.Len(t, got, 1)
	assert.Equal(t, "[Event:WindowResize]: Width: (1), Height: (1)", got[0].String())
	assert.Equal(t, uint64(1), metrics.Snapshot().DroppedEvents)
}

func TestSource_IntoBus(t *testing.T) {
	p := make(chanPoller, 1)
	src := NewSource(p)
	src.Start()

	p <- tcell.NewEventMouse(7, 8, tcell.Button1, tcell.ModNone)
	close(p)
	<-src.Done()

	bus := event.NewBus()
	var clicks int
	bus.AddEventListenerFunc(func(e event.Event) {
		event.Handle(e, func(event.MouseButtonClick) { clicks++ })
	})

	src.Drain(bus)
	bus.Dispatch()

	assert.Equal(t, 1, clicks)
}
