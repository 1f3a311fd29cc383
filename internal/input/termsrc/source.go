package termsrc

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/helios/internal/event"
	"github.com/dshills/helios/internal/input"
	"github.com/dshills/helios/internal/logging"
)

// DefaultBufferSize is the number of translated batches a Source holds
// before it starts dropping input.
const DefaultBufferSize = 256

// Poller is the part of tcell.Screen a Source reads from.
// PollEvent blocks and returns nil once the screen is finalized.
type Poller interface {
	PollEvent() tcell.Event
}

// batch is the translation of one tcell event.
type batch struct {
	events []event.Event
	at     time.Time
}

// Source reads a Poller on its own goroutine and buffers the translated
// events until the bus-owning goroutine collects them with Drain.
type Source struct {
	poller     Poller
	translator *Translator
	pending    chan batch

	metrics *input.Metrics
	logger  *logging.Logger

	startOnce sync.Once
	done      chan struct{}
}

// Option configures a Source or a Backend.
type Option func(*options)

type options struct {
	bufferSize int
	metrics    *input.Metrics
	logger     *logging.Logger
	mouse      bool
	interval   time.Duration
	status     func() []string
	screen     tcell.Screen
}

func defaultOptions() options {
	return options{
		bufferSize: DefaultBufferSize,
		metrics:    input.NewMetrics(),
		logger:     logging.Null,
		mouse:      true,
		interval:   time.Second / 60,
	}
}

// WithBufferSize sets how many translated batches may wait for Drain.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// WithMetrics records throughput, drops and latency into m.
func WithMetrics(m *input.Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithLogger sets the logger used for producer diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewSource creates a source reading from p. Call Start to begin polling.
func NewSource(p Poller, opts ...Option) *Source {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newSource(p, o)
}

func newSource(p Poller, o options) *Source {
	return &Source{
		poller:     p,
		translator: NewTranslator(),
		pending:    make(chan batch, o.bufferSize),
		metrics:    o.metrics,
		logger:     o.logger.WithComponent("termsrc"),
		done:       make(chan struct{}),
	}
}

// Start launches the polling goroutine. It runs until the poller returns nil.
func (s *Source) Start() {
	s.startOnce.Do(func() {
		go s.pollLoop()
	})
}

// Done is closed once the polling goroutine has exited.
func (s *Source) Done() <-chan struct{} {
	return s.done
}

func (s *Source) pollLoop() {
	defer close(s.done)

	for {
		ev := s.poller.PollEvent()
		if ev == nil {
			s.logger.Debug("poller closed")
			return
		}

		events := s.translator.Translate(ev)
		if len(events) == 0 {
			continue
		}

		select {
		case s.pending <- batch{events: events, at: time.Now()}:
		default:
			for range events {
				s.metrics.RecordDroppedEvent()
			}
			s.logger.Warn("input buffer full, dropped %d events", len(events))
		}
	}
}

// Drain moves every buffered event into sink without blocking and returns
// how many were moved. It must be called from the goroutine owning sink.
func (s *Source) Drain(sink input.Sink) int {
	n := 0
	for {
		select {
		case b := <-s.pending:
			latency := time.Since(b.at)
			for _, e := range b.events {
				sink.AddEvent(e)
				s.metrics.RecordEvent(e)
				s.metrics.RecordLatency(latency)
			}
			n += len(b.events)
		default:
			return n
		}
	}
}

// Metrics returns the metrics the source records into.
func (s *Source) Metrics() *input.Metrics {
	return s.metrics
}
