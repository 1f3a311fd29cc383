package input

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/helios/internal/event"
)

// Metrics tracks producer throughput and hand-off latency.
// It is safe for concurrent use: producers record from their own goroutine
// while the host reads snapshots.
type Metrics struct {
	// Event counters
	windowEventsTotal atomic.Uint64
	mouseEventsTotal  atomic.Uint64
	buttonEventsTotal atomic.Uint64
	keyEventsTotal    atomic.Uint64
	droppedEvents     atomic.Uint64

	// Latency between observing an event and handing it to the sink
	mu                sync.RWMutex
	latencies         []time.Duration
	maxLatencySamples int
	latencyIdx        int

	// Peak latency (all time)
	peakLatency atomic.Int64

	// Start time for uptime calculation
	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		latencies:         make([]time.Duration, 1000),
		maxLatencySamples: 1000,
		startTime:         time.Now(),
	}
}

// RecordEvent counts an event by category.
func (m *Metrics) RecordEvent(e event.Event) {
	switch e.Category() {
	case event.CategoryWindow:
		m.windowEventsTotal.Add(1)
	case event.CategoryMouse:
		m.mouseEventsTotal.Add(1)
	case event.CategoryMouseButton:
		m.buttonEventsTotal.Add(1)
	case event.CategoryKeyboard:
		m.keyEventsTotal.Add(1)
	}
}

// RecordLatency records how long an event waited before reaching the sink.
func (m *Metrics) RecordLatency(latency time.Duration) {
	latencyNs := latency.Nanoseconds()
	for {
		current := m.peakLatency.Load()
		if latencyNs <= current {
			break
		}
		if m.peakLatency.CompareAndSwap(current, latencyNs) {
			break
		}
	}

	// Store in circular buffer
	m.mu.Lock()
	m.latencies[m.latencyIdx] = latency
	m.latencyIdx = (m.latencyIdx + 1) % m.maxLatencySamples
	m.mu.Unlock()
}

// RecordDroppedEvent records a dropped event (buffer full).
func (m *Metrics) RecordDroppedEvent() {
	m.droppedEvents.Add(1)
}

// Sink returns a Sink that counts every event before passing it to next.
func (m *Metrics) Sink(next Sink) Sink {
	return SinkFunc(func(e event.Event) {
		m.RecordEvent(e)
		next.AddEvent(e)
	})
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	// Counters
	WindowEventsTotal uint64
	MouseEventsTotal  uint64
	ButtonEventsTotal uint64
	KeyEventsTotal    uint64
	DroppedEvents     uint64

	// Latency stats
	AvgLatency  time.Duration
	MaxLatency  time.Duration
	P99Latency  time.Duration
	PeakLatency time.Duration

	// Rates
	EventsPerSecond float64

	// Uptime
	Uptime time.Duration
}

// Total returns the number of events counted across all categories.
func (s MetricsSnapshot) Total() uint64 {
	return s.WindowEventsTotal + s.MouseEventsTotal + s.ButtonEventsTotal + s.KeyEventsTotal
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	latencies := make([]time.Duration, len(m.latencies))
	copy(latencies, m.latencies)
	uptime := time.Since(m.startTime)
	m.mu.RUnlock()

	snap := MetricsSnapshot{
		WindowEventsTotal: m.windowEventsTotal.Load(),
		MouseEventsTotal:  m.mouseEventsTotal.Load(),
		ButtonEventsTotal: m.buttonEventsTotal.Load(),
		KeyEventsTotal:    m.keyEventsTotal.Load(),
		DroppedEvents:     m.droppedEvents.Load(),
		PeakLatency:       time.Duration(m.peakLatency.Load()),
		Uptime:            uptime,
	}

	if uptime > 0 {
		snap.EventsPerSecond = float64(snap.Total()) / uptime.Seconds()
	}

	snap.AvgLatency, snap.MaxLatency, snap.P99Latency = calculateLatencyStats(latencies)

	return snap
}

// calculateLatencyStats computes average, max, and p99 from a slice of latencies.
func calculateLatencyStats(latencies []time.Duration) (avg, maxLat, p99 time.Duration) {
	// Filter non-zero latencies
	valid := make([]time.Duration, 0, len(latencies))
	for _, l := range latencies {
		if l > 0 {
			valid = append(valid, l)
		}
	}

	if len(valid) == 0 {
		return 0, 0, 0
	}

	var sum time.Duration
	for _, l := range valid {
		sum += l
		if l > maxLat {
			maxLat = l
		}
	}
	avg = sum / time.Duration(len(valid))

	slices.Sort(valid)

	idx := int(float64(len(valid)) * 0.99)
	if idx >= len(valid) {
		idx = len(valid) - 1
	}
	p99 = valid[idx]

	return avg, maxLat, p99
}

// HealthStatus represents the current health status of input processing.
type HealthStatus struct {
	Healthy          bool
	DroppedEvents    uint64
	PeakLatency      time.Duration
	LatencyThreshold time.Duration
	Message          string
}

// HealthCheck returns the current health status.
func (m *Metrics) HealthCheck(latencyThreshold time.Duration) HealthStatus {
	status := HealthStatus{
		Healthy:          true,
		DroppedEvents:    m.droppedEvents.Load(),
		PeakLatency:      time.Duration(m.peakLatency.Load()),
		LatencyThreshold: latencyThreshold,
	}

	if status.DroppedEvents > 0 {
		status.Healthy = false
		status.Message = "dropped events detected"
	} else if status.PeakLatency > latencyThreshold {
		status.Healthy = false
		status.Message = "latency threshold exceeded"
	} else {
		status.Message = "healthy"
	}

	return status
}
