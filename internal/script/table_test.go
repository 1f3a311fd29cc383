package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/helios/internal/event"
)

func TestEventTable(t *testing.T) {
	tests := []struct {
		name   string
		event  event.Event
		fields map[string]lua.LValue
	}{
		{
			name:  "window create",
			event: event.NewWindowCreate(event.ShowMaximized),
			fields: map[string]lua.LValue{
				"kind":      lua.LString("WindowCreate"),
				"category":  lua.LString("Window"),
				"show_mode": lua.LString("maximized"),
			},
		},
		{
			name:  "window destroy",
			event: event.NewWindowDestroy(),
			fields: map[string]lua.LValue{
				"kind":        lua.LString("WindowDestroy"),
				"description": lua.LString("[Event:WindowDestroy]"),
			},
		},
		{
			name:  "window move",
			event: event.NewWindowMove(10, 20),
			fields: map[string]lua.LValue{
				"x": lua.LNumber(10),
				"y": lua.LNumber(20),
			},
		},
		{
			name:  "window resize",
			event: event.NewWindowResize(800, 600),
			fields: map[string]lua.LValue{
				"width":       lua.LNumber(800),
				"height":      lua.LNumber(600),
				"description": lua.LString("[Event:WindowResize]: Width: (800), Height: (600)"),
			},
		},
		{
			name:  "mouse move",
			event: event.NewMouseMove(3, 4),
			fields: map[string]lua.LValue{
				"kind":     lua.LString("MouseMove"),
				"category": lua.LString("Mouse"),
				"x":        lua.LNumber(3),
				"y":        lua.LNumber(4),
			},
		},
		{
			name:  "mouse scroll",
			event: event.NewMouseScroll(-2),
			fields: map[string]lua.LValue{
				"offset": lua.LNumber(-2),
			},
		},
		{
			name:  "button click",
			event: event.NewMouseButtonClick(event.ButtonMiddle, event.ModShift),
			fields: map[string]lua.LValue{
				"kind":        lua.LString("MouseButtonClick"),
				"category":    lua.LString("MouseButton"),
				"button":      lua.LNumber(2),
				"button_name": lua.LString("middle"),
				"ctrl":        lua.LFalse,
				"shift":       lua.LTrue,
				"alt":         lua.LFalse,
			},
		},
		{
			name:  "button release",
			event: event.NewMouseButtonRelease(event.ButtonLeft),
			fields: map[string]lua.LValue{
				"button_name": lua.LString("left"),
				"shift":       lua.LFalse,
			},
		},
		{
			name:  "key press",
			event: event.NewKeyPress('a', event.ModCtrl, event.ModAlt),
			fields: map[string]lua.LValue{
				"kind":     lua.LString("KeyPress"),
				"category": lua.LString("Keyboard"),
				"key":      lua.LNumber('a'),
				"key_name": lua.LString("a"),
				"ctrl":     lua.LTrue,
				"alt":      lua.LTrue,
			},
		},
		{
			name:  "key release",
			event: event.NewKeyRelease(event.KeyEscape),
			fields: map[string]lua.LValue{
				"key_name": lua.LString("Escape"),
			},
		},
		{
			name:  "key type",
			event: event.NewKeyType('é'),
			fields: map[string]lua.LValue{
				"char": lua.LString("é"),
			},
		},
	}

	L := lua.NewState()
	defer L.Close()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := eventTable(L, tt.event)
			assert.Equal(t, lua.LString(tt.event.String()), tbl.RawGetString("description"))
			for k, want := range tt.fields {
				assert.Equal(t, want, tbl.RawGetString(k), k)
			}
		})
	}
}

func TestEventTable_OnlyVariantFields(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	tbl := eventTable(L, event.NewMouseScroll(1))
	assert.Equal(t, lua.LNil, tbl.RawGetString("x"))
	assert.Equal(t, lua.LNil, tbl.RawGetString("key"))
	assert.Equal(t, lua.LNil, tbl.RawGetString("button"))
}
