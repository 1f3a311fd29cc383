package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/helios/internal/event"
)

// eventTable converts an event into the table passed to on_event.
//
// Every table has kind, category and description. The remaining fields
// depend on the variant:
//
//	WindowCreate         show_mode
//	WindowMove           x, y
//	WindowResize         width, height
//	MouseMove            x, y
//	MouseScroll          offset
//	MouseButtonClick     button, button_name, ctrl, shift, alt
//	MouseButtonRelease   button, button_name, ctrl, shift, alt
//	KeyPress             key, key_name, ctrl, shift, alt
//	KeyRelease           key, key_name, ctrl, shift, alt
//	KeyType              char
func eventTable(L *lua.LState, e event.Event) *lua.LTable {
	t := L.CreateTable(0, 8)
	t.RawSetString("kind", lua.LString(e.Kind().String()))
	t.RawSetString("category", lua.LString(e.Category().String()))
	t.RawSetString("description", lua.LString(e.String()))

	d := event.NewDispatcher(e)
	event.Dispatch(d, func(v event.WindowCreate) {
		t.RawSetString("show_mode", lua.LString(v.ShowMode().String()))
	})
	event.Dispatch(d, func(v event.WindowMove) {
		setPoint(t, v.X(), v.Y())
	})
	event.Dispatch(d, func(v event.WindowResize) {
		t.RawSetString("width", lua.LNumber(v.Width()))
		t.RawSetString("height", lua.LNumber(v.Height()))
	})
	event.Dispatch(d, func(v event.MouseMove) {
		setPoint(t, v.X(), v.Y())
	})
	event.Dispatch(d, func(v event.MouseScroll) {
		t.RawSetString("offset", lua.LNumber(v.Offset()))
	})
	event.Dispatch(d, func(v event.MouseButtonClick) {
		setButton(t, v.Button(), v.Modifiers())
	})
	event.Dispatch(d, func(v event.MouseButtonRelease) {
		setButton(t, v.Button(), v.Modifiers())
	})
	event.Dispatch(d, func(v event.KeyPress) {
		setKey(t, v.Key(), v.Modifiers())
	})
	event.Dispatch(d, func(v event.KeyRelease) {
		setKey(t, v.Key(), v.Modifiers())
	})
	event.Dispatch(d, func(v event.KeyType) {
		t.RawSetString("char", lua.LString(string(v.Char())))
	})
	return t
}

func setPoint(t *lua.LTable, x, y int) {
	t.RawSetString("x", lua.LNumber(x))
	t.RawSetString("y", lua.LNumber(y))
}

func setButton(t *lua.LTable, b event.Button, mods event.Modifier) {
	t.RawSetString("button", lua.LNumber(b))
	t.RawSetString("button_name", lua.LString(b.String()))
	setModifiers(t, mods)
}

func setKey(t *lua.LTable, k event.Key, mods event.Modifier) {
	t.RawSetString("key", lua.LNumber(k))
	t.RawSetString("key_name", lua.LString(k.String()))
	setModifiers(t, mods)
}

func setModifiers(t *lua.LTable, mods event.Modifier) {
	t.RawSetString("ctrl", lua.LBool(mods.IsControl()))
	t.RawSetString("shift", lua.LBool(mods.IsShift()))
	t.RawSetString("alt", lua.LBool(mods.IsAlt()))
}
