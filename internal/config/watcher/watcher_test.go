package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector records delivered events.
type collector struct {
	mu     sync.Mutex
	events []Event
}

func (c *collector) handle(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *collector) snapshot() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

func newStarted(t *testing.T, path string, opts ...Option) (*Watcher, *collector) {
	t.Helper()

	w, err := New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, w.Watch(path))

	c := &collector{}
	w.OnChange(c.handle)
	w.Start()
	return w, c
}

func TestOperation_String(t *testing.T) {
	assert.Equal(t, "write", OpWrite.String())
	assert.Equal(t, "create", OpCreate.String())
	assert.Equal(t, "remove", OpRemove.String())
	assert.Equal(t, "rename", OpRename.String())
	assert.Equal(t, "unknown", Operation(99).String())
}

func TestConvertOp(t *testing.T) {
	tests := []struct {
		in   fsnotify.Op
		want Operation
		ok   bool
	}{
		{fsnotify.Write, OpWrite, true},
		{fsnotify.Create, OpCreate, true},
		{fsnotify.Create | fsnotify.Write, OpCreate, true},
		{fsnotify.Remove, OpRemove, true},
		{fsnotify.Rename, OpRename, true},
		{fsnotify.Chmod, 0, false},
	}

	for _, tt := range tests {
		got, ok := convertOp(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in.String())
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in.String())
		}
	}
}

func TestWatcher_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "helios.toml")
	require.NoError(t, os.WriteFile(path, []byte("[loop]\nfps = 30\n"), 0o600))

	_, c := newStarted(t, path, WithDebounce(0))

	require.NoError(t, os.WriteFile(path, []byte("[loop]\nfps = 60\n"), 0o600))

	require.Eventually(t, func() bool {
		return len(c.snapshot()) > 0
	}, 2*time.Second, 10*time.Millisecond)

	abs, _ := filepath.Abs(path)
	assert.Equal(t, abs, c.snapshot()[0].Path)
}

func TestWatcher_CreateMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "later.yaml")
	_, c := newStarted(t, path, WithDebounce(0))

	require.NoError(t, os.WriteFile(path, []byte("loop:\n  fps: 10\n"), 0o600))

	require.Eventually(t, func() bool {
		for _, e := range c.snapshot() {
			if e.Op == OpCreate || e.Op == OpWrite {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "helios.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, c := newStarted(t, path, WithDebounce(0))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o600))
	time.Sleep(200 * time.Millisecond)

	assert.Empty(t, c.snapshot())
}

func TestWatcher_Debounce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "helios.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, c := newStarted(t, path, WithDebounce(150*time.Millisecond))

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0o600))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return len(c.snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	time.Sleep(300 * time.Millisecond)
	assert.Len(t, c.snapshot(), 1, "burst should collapse into one event")
}

func TestWatcher_FiredTimerKeepsNewerPending(t *testing.T) {
	w, err := New(WithDebounce(time.Millisecond))
	require.NoError(t, err)
	defer w.Stop()

	c := &collector{}
	w.OnChange(c.handle)

	path := filepath.Join(t.TempDir(), "helios.toml")
	w.queueEvent(Event{Path: path, Op: OpWrite})

	// Let the first timer fire and block on the lock, then replace it.
	w.mu.Lock()
	time.Sleep(100 * time.Millisecond)
	w.debounce = time.Hour
	w.queueLocked(Event{Path: path, Op: OpCreate})
	newer := w.pending[path]
	w.mu.Unlock()

	require.Eventually(t, func() bool {
		return len(c.snapshot()) == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, OpWrite, c.snapshot()[0].Op)

	w.mu.RLock()
	assert.Same(t, newer, w.pending[path], "newer timer must stay pending")
	w.mu.RUnlock()

	require.NoError(t, w.Stop())
	assert.False(t, newer.Stop(), "Stop cancels the newer timer")
	assert.Len(t, c.snapshot(), 1)
}

func TestWatcher_WatchUnwatch(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Stop()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")

	require.NoError(t, w.Watch(a))
	require.NoError(t, w.Watch(b))
	require.NoError(t, w.Watch(a), "watching twice is a no-op")
	assert.Len(t, w.WatchedFiles(), 2)

	require.NoError(t, w.Unwatch(a))
	assert.Len(t, w.WatchedFiles(), 1)
	require.NoError(t, w.Unwatch(b))
	assert.Empty(t, w.WatchedFiles())
	require.NoError(t, w.Unwatch(b))
}

func TestWatcher_StartStop(t *testing.T) {
	w, err := New()
	require.NoError(t, err)

	assert.False(t, w.IsRunning())
	w.Start()
	w.Start()
	assert.True(t, w.IsRunning())

	require.NoError(t, w.Stop())
	assert.False(t, w.IsRunning())
	require.NoError(t, w.Stop(), "second Stop is a no-op")

	assert.ErrorIs(t, w.Watch(filepath.Join(t.TempDir(), "x.toml")), ErrNotRunning)
}
