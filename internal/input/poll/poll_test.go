package poll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/helios/internal/event"
	"github.com/dshills/helios/internal/input"
)

func base() Frame {
	return Frame{Width: 800, Height: 600, CursorX: 10, CursorY: 10}
}

func update(tr *Tracker, f Frame) input.Slice {
	var got input.Slice
	tr.Update(f, &got)
	return got
}

func TestButtonSet(t *testing.T) {
	var s ButtonSet
	s = s.With(event.ButtonLeft).With(event.ButtonForward).With(event.ButtonNone).With(event.Button(42))

	assert.True(t, s.Has(event.ButtonLeft))
	assert.True(t, s.Has(event.ButtonForward))
	assert.False(t, s.Has(event.ButtonMiddle))
	assert.False(t, s.Has(event.ButtonNone))
	assert.False(t, s.Has(event.Button(42)))
}

func TestTracker_FirstFrame(t *testing.T) {
	tr := NewTracker(event.ShowMaximized)
	got := update(tr, base())

	require.Equal(t, []event.Kind{event.KindWindowCreate, event.KindWindowResize}, got.Kinds())

	event.Handle(got[0], func(c event.WindowCreate) {
		assert.Equal(t, event.ShowMaximized, c.ShowMode())
	})
	event.Handle(got[1], func(r event.WindowResize) {
		assert.Equal(t, 800, r.Width())
		assert.Equal(t, 600, r.Height())
	})

	assert.Empty(t, update(tr, base()), "unchanged frame emits nothing")
}

func TestTracker_Geometry(t *testing.T) {
	tr := NewTracker(event.ShowNormal)
	update(tr, base())

	f := base()
	f.X, f.Y = 5, 6
	f.Width = 1024
	f.CursorX = 11

	got := update(tr, f)
	require.Equal(t, []event.Kind{event.KindWindowMove, event.KindWindowResize, event.KindMouseMove}, got.Kinds())
	assert.Equal(t, "[Event:WindowMove]: XPos: (5), YPos: (6)", got[0].String())
	assert.Equal(t, "[Event:WindowResize]: Width: (1024), Height: (600)", got[1].String())
	assert.Equal(t, "[Event:MouseMove]: XPos: (11), YPos: (10)", got[2].String())
}

func TestTracker_Wheel(t *testing.T) {
	tr := NewTracker(event.ShowNormal)
	update(tr, base())

	f := base()
	f.Wheel = 0.4
	assert.Empty(t, update(tr, f))

	f.Wheel = 0.7
	got := update(tr, f)
	require.Len(t, got, 1)
	event.Handle(got[0], func(s event.MouseScroll) {
		assert.Equal(t, 1, s.Offset())
	})

	f.Wheel = -2.5
	got = update(tr, f)
	require.Len(t, got, 1)
	event.Handle(got[0], func(s event.MouseScroll) {
		assert.Equal(t, -2, s.Offset())
	})
}

func TestTracker_Buttons(t *testing.T) {
	tr := NewTracker(event.ShowNormal)
	update(tr, base())

	f := base()
	f.Buttons = ButtonSet(0).With(event.ButtonMiddle)
	f.Mods = event.ModCtrl

	got := update(tr, f)
	require.Len(t, got, 1)
	assert.Equal(t,
		"[Event:MouseButtonClick]: Button: (2), Control: (true), Shift: (false), Alt: (false)",
		got[0].String())

	assert.Empty(t, update(tr, f), "held button emits nothing")

	f.Buttons = ButtonSet(0).With(event.ButtonLeft)
	f.Mods = 0
	got = update(tr, f)
	require.Equal(t, []event.Kind{event.KindMouseButtonRelease, event.KindMouseButtonClick}, got.Kinds())
	event.Handle(got[0], func(r event.MouseButtonRelease) {
		assert.Equal(t, event.ButtonMiddle, r.Button())
	})
	event.Handle(got[1], func(c event.MouseButtonClick) {
		assert.Equal(t, event.ButtonLeft, c.Button())
	})
}

func TestTracker_Keys(t *testing.T) {
	tr := NewTracker(event.ShowNormal)
	update(tr, base())

	f := base()
	f.Keys = []event.Key{'a', event.KeyLeft}
	f.Chars = []rune{'a'}

	got := update(tr, f)
	require.Equal(t, []event.Kind{event.KindKeyPress, event.KindKeyPress, event.KindKeyType}, got.Kinds())
	assert.True(t, tr.Held('a'))
	assert.True(t, tr.Held(event.KeyLeft))

	f.Chars = nil
	assert.Empty(t, update(tr, f), "held keys do not repeat")

	f.Keys = []event.Key{event.KeyLeft}
	got = update(tr, f)
	require.Equal(t, []event.Kind{event.KindKeyRelease}, got.Kinds())
	event.Handle(got[0], func(r event.KeyRelease) {
		assert.Equal(t, event.Key('a'), r.Key())
	})
	assert.False(t, tr.Held('a'))
}

func TestTracker_KeyModifiers(t *testing.T) {
	tr := NewTracker(event.ShowNormal)
	update(tr, base())

	f := base()
	f.Keys = []event.Key{'c'}
	f.Mods = event.ModCtrl

	got := update(tr, f)
	require.Len(t, got, 1)
	event.Handle(got[0], func(p event.KeyPress) {
		assert.True(t, p.IsControl())
		assert.Equal(t, event.Key('c'), p.Key())
	})
}

func TestTracker_Closing(t *testing.T) {
	tr := NewTracker(event.ShowNormal)
	update(tr, base())

	f := base()
	f.Keys = []event.Key{event.KeyEscape}
	f.Closing = true

	got := update(tr, f)
	require.Equal(t, []event.Kind{event.KindKeyPress, event.KindWindowDestroy}, got.Kinds())
	assert.True(t, tr.Closed())

	f.Keys = nil
	assert.Empty(t, update(tr, f), "nothing after destroy")
}

func TestTracker_DrivesBus(t *testing.T) {
	bus := event.NewBus()

	var descriptions []string
	bus.AddEventListenerFunc(func(e event.Event) {
		descriptions = append(descriptions, e.String())
	})

	tr := NewTracker(event.ShowNormal)
	f := base()
	f.Keys = []event.Key{'a'}
	n := tr.Update(f, bus)
	bus.Dispatch()

	assert.Equal(t, 3, n)
	assert.Equal(t, []string{
		"[Event:WindowCreate]: ShowMode: (0)",
		"[Event:WindowResize]: Width: (800), Height: (600)",
		"[Event:KeyPress]: Key: (97), Control: (false), Shift: (false), Alt: (false)",
	}, descriptions)
}
