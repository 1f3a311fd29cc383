// Package termsrc produces events from a tcell terminal.
//
// Terminals report key presses but not releases, so every key press is
// followed by a synthesized release. Mouse reporting is state based (which
// buttons are down at a given position); the Translator diffs successive
// reports into click, release, move and scroll events.
package termsrc

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/helios/internal/event"
	"github.com/dshills/helios/internal/input/poll"
)

// keyMapping pairs a tcell key with the key it produces.
// A slice rather than a map: several tcell names share a value, and the
// first entry for a value wins.
type keyMapping struct {
	tcell tcell.Key
	key   event.Key
}

var specialKeys = []keyMapping{
	{tcell.KeyEscape, event.KeyEscape},
	{tcell.KeyEnter, event.KeyEnter},
	{tcell.KeyTab, event.KeyTab},
	{tcell.KeyBacktab, event.KeyTab},
	{tcell.KeyBackspace, event.KeyBackspace},
	{tcell.KeyBackspace2, event.KeyBackspace},
	{tcell.KeyDelete, event.KeyDelete},
	{tcell.KeyInsert, event.KeyInsert},
	{tcell.KeyHome, event.KeyHome},
	{tcell.KeyEnd, event.KeyEnd},
	{tcell.KeyPgUp, event.KeyPageUp},
	{tcell.KeyPgDn, event.KeyPageDown},
	{tcell.KeyUp, event.KeyUp},
	{tcell.KeyDown, event.KeyDown},
	{tcell.KeyLeft, event.KeyLeft},
	{tcell.KeyRight, event.KeyRight},
	{tcell.KeyF1, event.KeyF1},
	{tcell.KeyF2, event.KeyF2},
	{tcell.KeyF3, event.KeyF3},
	{tcell.KeyF4, event.KeyF4},
	{tcell.KeyF5, event.KeyF5},
	{tcell.KeyF6, event.KeyF6},
	{tcell.KeyF7, event.KeyF7},
	{tcell.KeyF8, event.KeyF8},
	{tcell.KeyF9, event.KeyF9},
	{tcell.KeyF10, event.KeyF10},
	{tcell.KeyF11, event.KeyF11},
	{tcell.KeyF12, event.KeyF12},
}

// controlKeys are reported by terminals as control codes; they become the
// letter key with Control held.
var controlKeys = []keyMapping{
	{tcell.KeyCtrlA, 'a'}, {tcell.KeyCtrlB, 'b'}, {tcell.KeyCtrlC, 'c'},
	{tcell.KeyCtrlD, 'd'}, {tcell.KeyCtrlE, 'e'}, {tcell.KeyCtrlF, 'f'},
	{tcell.KeyCtrlG, 'g'}, {tcell.KeyCtrlH, 'h'}, {tcell.KeyCtrlI, 'i'},
	{tcell.KeyCtrlJ, 'j'}, {tcell.KeyCtrlK, 'k'}, {tcell.KeyCtrlL, 'l'},
	{tcell.KeyCtrlM, 'm'}, {tcell.KeyCtrlN, 'n'}, {tcell.KeyCtrlO, 'o'},
	{tcell.KeyCtrlP, 'p'}, {tcell.KeyCtrlQ, 'q'}, {tcell.KeyCtrlR, 'r'},
	{tcell.KeyCtrlS, 's'}, {tcell.KeyCtrlT, 't'}, {tcell.KeyCtrlU, 'u'},
	{tcell.KeyCtrlV, 'v'}, {tcell.KeyCtrlW, 'w'}, {tcell.KeyCtrlX, 'x'},
	{tcell.KeyCtrlY, 'y'}, {tcell.KeyCtrlZ, 'z'}, {tcell.KeyCtrlSpace, ' '},
}

func lookup(table []keyMapping, k tcell.Key) (event.Key, bool) {
	for _, m := range table {
		if m.tcell == k {
			return m.key, true
		}
	}
	return event.KeyNone, false
}

// buttonMapping pairs a tcell button bit with the button it reports.
var buttonMapping = []struct {
	mask   tcell.ButtonMask
	button event.Button
}{
	{tcell.Button1, event.ButtonLeft},
	{tcell.Button2, event.ButtonRight},
	{tcell.Button3, event.ButtonMiddle},
	{tcell.Button4, event.ButtonBack},
	{tcell.Button5, event.ButtonForward},
}

// Translator converts tcell events to event variants.
// It keeps pointer state between calls and is not safe for concurrent use.
type Translator struct {
	x, y      int
	seenMouse bool
	buttons   poll.ButtonSet
}

// NewTranslator creates a translator with no pointer history.
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate returns the events describing ev, in the order they happened.
// Events with no counterpart (focus, paste markers, interrupts) yield nil.
func (t *Translator) Translate(ev tcell.Event) []event.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return t.translateKey(e)
	case *tcell.EventMouse:
		return t.translateMouse(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return []event.Event{event.NewWindowResize(w, h)}
	default:
		return nil
	}
}

func (t *Translator) translateKey(e *tcell.EventKey) []event.Event {
	mods := convertMod(e.Modifiers())

	var key event.Key
	typed := rune(0)

	switch k := e.Key(); {
	case k == tcell.KeyRune:
		r := e.Rune()
		key = event.KeyFromRune(r)
		if unicode.IsPrint(r) && !mods.IsControl() && !mods.IsAlt() {
			typed = r
		}
	default:
		if special, ok := lookup(specialKeys, k); ok {
			key = special
			if k == tcell.KeyBacktab {
				mods = mods.With(event.ModShift)
			}
			break
		}
		if letter, ok := lookup(controlKeys, k); ok {
			key = letter
			mods = mods.With(event.ModCtrl)
			break
		}
		return nil
	}

	events := []event.Event{event.NewKeyPress(key, mods)}
	if typed != 0 {
		events = append(events, event.NewKeyType(typed))
	}
	return append(events, event.NewKeyRelease(key, mods))
}

func (t *Translator) translateMouse(e *tcell.EventMouse) []event.Event {
	var events []event.Event

	x, y := e.Position()
	if !t.seenMouse || x != t.x || y != t.y {
		t.seenMouse = true
		t.x, t.y = x, y
		events = append(events, event.NewMouseMove(x, y))
	}

	mask := e.Buttons()
	switch {
	case mask&tcell.WheelUp != 0:
		events = append(events, event.NewMouseScroll(1))
	case mask&tcell.WheelDown != 0:
		events = append(events, event.NewMouseScroll(-1))
	}

	var held poll.ButtonSet
	for _, m := range buttonMapping {
		if mask&m.mask != 0 {
			held = held.With(m.button)
		}
	}

	mods := convertMod(e.Modifiers())
	for b := event.ButtonLeft; b <= event.ButtonForward; b++ {
		if t.buttons.Has(b) && !held.Has(b) {
			events = append(events, event.NewMouseButtonRelease(b, mods))
		}
	}
	for b := event.ButtonLeft; b <= event.ButtonForward; b++ {
		if !t.buttons.Has(b) && held.Has(b) {
			events = append(events, event.NewMouseButtonClick(b, mods))
		}
	}
	t.buttons = held

	return events
}

// convertMod converts a tcell modifier mask. Meta is reported as Alt.
func convertMod(m tcell.ModMask) event.Modifier {
	var result event.Modifier
	if m&tcell.ModShift != 0 {
		result |= event.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= event.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		result |= event.ModAlt
	}
	return result
}
