package event

import "github.com/dshills/helios/internal/logging"

// DefaultListenerCapacity is the registry reservation applied by Init.
const DefaultListenerCapacity = 64

// Option configures a Bus.
type Option func(*busConfig)

// busConfig contains configuration for the event bus.
type busConfig struct {
	// listenerCapacity is the registry reservation hint.
	listenerCapacity int

	// queueCapacity is the initial queue reservation hint.
	queueCapacity int

	// panicHandler enables listener panic recovery when set.
	panicHandler PanicHandler

	// logger receives pass summaries at debug level.
	logger *logging.Logger
}

// defaultBusConfig returns sensible default configuration.
func defaultBusConfig() busConfig {
	return busConfig{
		listenerCapacity: DefaultListenerCapacity,
		queueCapacity:    0,
		logger:           logging.Null,
	}
}

// WithListenerCapacity sets how many listeners Init reserves room for.
func WithListenerCapacity(n int) Option {
	return func(c *busConfig) {
		if n > 0 {
			c.listenerCapacity = n
		}
	}
}

// WithQueueCapacity reserves room for n pending events.
func WithQueueCapacity(n int) Option {
	return func(c *busConfig) {
		if n > 0 {
			c.queueCapacity = n
		}
	}
}

// WithPanicHandler recovers listener panics and reports them to h.
// Without it a panicking listener aborts the dispatch pass.
func WithPanicHandler(h PanicHandler) Option {
	return func(c *busConfig) {
		c.panicHandler = h
	}
}

// WithLogger sets the logger used for bus diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(c *busConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
