// Package script runs Lua event handlers as bus listeners.
//
// A script defines a global on_event function. The listener calls it once
// per dispatched event with a table describing the event:
//
//	function on_event(ev)
//	    if ev.kind == "KeyPress" and ev.key_name == "q" then
//	        helios.quit()
//	    end
//	end
//
// Scripts run in a restricted state. Only the base, table, string and math
// libraries are opened, and dofile, loadfile, load and loadstring are
// removed. Loading a script and every on_event call are bounded by a timeout.
//
// The helios table gives scripts access to the host:
//
//	helios.log(msg)    write msg to the host log
//	helios.quit()      ask the host to stop
//
// A Listener is not safe for concurrent use; like the bus it belongs to the
// goroutine that dispatches.
package script

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/helios/internal/event"
	"github.com/dshills/helios/internal/logging"
)

// DefaultTimeout bounds a single script call.
const DefaultTimeout = 100 * time.Millisecond

// handlerName is the global a script defines to receive events.
const handlerName = "on_event"

// Option configures a Listener.
type Option func(*Listener)

// WithTimeout sets the time budget for loading and for each on_event call.
// Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(l *Listener) {
		if d >= 0 {
			l.timeout = d
		}
	}
}

// WithLogger sets the logger receiving script output and errors.
func WithLogger(logger *logging.Logger) Option {
	return func(l *Listener) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithQuit sets the function run by helios.quit().
func WithQuit(fn func()) Option {
	return func(l *Listener) {
		l.quit = fn
	}
}

// Stats reports handler activity.
type Stats struct {
	Calls    uint64
	Failures uint64
	LastErr  error
}

// Listener delivers events to a Lua on_event function.
type Listener struct {
	L *lua.LState

	timeout time.Duration
	logger  *logging.Logger
	quit    func()

	source  string
	handler *lua.LFunction
	closed  bool

	calls    uint64
	failures uint64
	lastErr  error
}

// New creates a listener with a fresh sandboxed Lua state and no script.
// Events received before a script is loaded are ignored.
func New(opts ...Option) *Listener {
	l := &Listener{
		timeout: DefaultTimeout,
		logger:  logging.Null,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.WithComponent("script")

	l.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(l.L)
	l.installHost()
	return l
}

// openSafeLibraries opens only libraries without file or process access.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// installHost replaces print and registers the helios table.
func (l *Listener) installHost() {
	l.L.SetGlobal("print", l.L.NewFunction(l.luaPrint))

	mod := l.L.SetFuncs(l.L.NewTable(), map[string]lua.LGFunction{
		"log":  l.luaLog,
		"quit": l.luaQuit,
	})
	l.L.SetGlobal("helios", mod)
}

func (l *Listener) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	l.logger.Info("%s", strings.Join(parts, "\t"))
	return 0
}

func (l *Listener) luaLog(L *lua.LState) int {
	l.logger.Info("%s", L.CheckString(1))
	return 0
}

func (l *Listener) luaQuit(L *lua.LState) int {
	if l.quit != nil {
		l.quit()
	}
	return 0
}

// LoadFile runs the script at path and binds its on_event function.
// Loading again replaces the previous handler and keeps globals. If the new
// script fails, the previous handler stays bound.
func (l *Listener) LoadFile(path string) error {
	return l.load(path, func() error { return l.L.DoFile(path) })
}

// LoadString runs src as a script named name.
func (l *Listener) LoadString(name, src string) error {
	return l.load(name, func() error {
		fn, err := l.L.Load(strings.NewReader(src), name)
		if err != nil {
			return err
		}
		l.L.Push(fn)
		return l.L.PCall(0, lua.MultRet, nil)
	})
}

func (l *Listener) load(source string, run func() error) error {
	if l.closed {
		return ErrClosed
	}

	prev := l.L.GetGlobal(handlerName)
	l.L.SetGlobal(handlerName, lua.LNil)
	top := l.L.GetTop()

	err := l.run(run)
	l.L.SetTop(top)

	fn, ok := l.L.GetGlobal(handlerName).(*lua.LFunction)
	if err == nil && !ok {
		err = ErrNoHandler
	}
	if err != nil {
		l.L.SetGlobal(handlerName, prev)
		return fmt.Errorf("load %s: %w", source, err)
	}

	l.source = source
	l.handler = fn
	l.logger.Info("loaded %s", source)
	return nil
}

// Unload unbinds the handler. Later events are ignored until a script is
// loaded again.
func (l *Listener) Unload() {
	if l.closed {
		return
	}
	l.handler = nil
	l.source = ""
	l.L.SetGlobal(handlerName, lua.LNil)
}

// Loaded reports whether a handler is bound.
func (l *Listener) Loaded() bool {
	return l.handler != nil
}

// Source returns the name of the loaded script.
func (l *Listener) Source() string {
	return l.source
}

// Call delivers one event to on_event and returns the script error, if any.
func (l *Listener) Call(e event.Event) error {
	if l.closed {
		return ErrClosed
	}
	if l.handler == nil {
		return nil
	}

	l.calls++
	err := l.run(func() error {
		return l.L.CallByParam(lua.P{
			Fn:      l.handler,
			NRet:    0,
			Protect: true,
		}, eventTable(l.L, e))
	})
	if err != nil {
		l.failures++
		l.lastErr = err
	}
	return err
}

// OnEvent implements event.Listener. Script errors are logged and do not
// reach the bus.
func (l *Listener) OnEvent(e event.Event) {
	if err := l.Call(e); err != nil {
		l.logger.Error("%s: %v", e.Kind(), err)
	}
}

// run executes fn under the configured timeout.
func (l *Listener) run(fn func() error) error {
	if l.timeout <= 0 {
		return fn()
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	l.L.SetContext(ctx)
	defer l.L.RemoveContext()

	err := fn()
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrTimeout, l.timeout)
	}
	return err
}

// Stats returns handler activity counters.
func (l *Listener) Stats() Stats {
	return Stats{
		Calls:    l.calls,
		Failures: l.failures,
		LastErr:  l.lastErr,
	}
}

// Close releases the Lua state. Further calls return ErrClosed.
func (l *Listener) Close() {
	if l.closed {
		return
	}
	l.closed = true
	l.handler = nil
	l.L.Close()
}
