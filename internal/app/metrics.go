package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks frame loop timing.
// Recording is lock-free so the status line can read it from any goroutine.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64
	slowFrames   atomic.Uint64

	// Events dispatched by frames
	eventCount atomic.Uint64

	budget    time.Duration
	startTime time.Time
}

// NewMetrics creates a frame metrics tracker. Frames taking longer than
// budget are counted as slow; zero disables that check.
func NewMetrics(budget time.Duration) *Metrics {
	m := &Metrics{
		budget:    budget,
		startTime: time.Now(),
	}
	// Initialize min to max int64 so first frame will be smaller
	m.frameMinNs.Store(1<<63 - 1)
	return m
}

// RecordFrame records one frame that dispatched events.
func (m *Metrics) RecordFrame(duration time.Duration, events int) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)
	m.eventCount.Add(uint64(events))

	if m.budget > 0 && duration > m.budget {
		m.slowFrames.Add(1)
	}

	// Update min (atomic compare-and-swap loop)
	for {
		old := m.frameMinNs.Load()
		if ns >= old {
			break
		}
		if m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}

	// Update max (atomic compare-and-swap loop)
	for {
		old := m.frameMaxNs.Load()
		if ns <= old {
			break
		}
		if m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frameCount := m.frameCount.Load()

	var avgFrameNs int64
	if frameCount > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frameCount)
	}

	minFrameNs := m.frameMinNs.Load()
	if minFrameNs == 1<<63-1 {
		minFrameNs = 0
	}

	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		FrameCount:     frameCount,
		AvgFrameTimeNs: avgFrameNs,
		MinFrameTimeNs: minFrameNs,
		MaxFrameTimeNs: m.frameMaxNs.Load(),
		LastFrameNs:    m.lastFrameNs.Load(),
		SlowFrames:     m.slowFrames.Load(),
		EventCount:     m.eventCount.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTimeNs int64
	MinFrameTimeNs int64
	MaxFrameTimeNs int64
	LastFrameNs    int64
	SlowFrames     uint64
	EventCount     uint64
}

// AvgFrameTime returns the mean time spent in a frame.
func (s MetricsSnapshot) AvgFrameTime() time.Duration {
	return time.Duration(s.AvgFrameTimeNs)
}

// SlowRate returns the percentage of frames over budget.
func (s MetricsSnapshot) SlowRate() float64 {
	if s.FrameCount == 0 {
		return 0
	}
	return float64(s.SlowFrames) / float64(s.FrameCount) * 100
}
