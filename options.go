package statetree

import "github.com/giantswarm/micrologger"

const defaultRootName = "root"

// Option configures a Chart at construction time.
type Option func(*Chart)

// WithLogger configures the Chart with a custom logger. The logger receives
// configuration errors and, through the default error handler, callback failures.
func WithLogger(l micrologger.Logger) Option {
	return func(c *Chart) {
		c.logger = l
	}
}

// WithObserver registers an observer. Observers are notified in registration order.
func WithObserver(o Observer) Option {
	return func(c *Chart) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithErrorHandler replaces the default handler for failing callbacks.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *Chart) {
		c.handleError = h
	}
}

// WithRootName names the root state. The default is "root".
func WithRootName(name string) Option {
	return func(c *Chart) {
		c.rootName = name
	}
}

// WithDefaultToHistory makes the chart prefer recorded history over default
// substates, as DefaultToHistoryState does.
func WithDefaultToHistory() Option {
	return func(c *Chart) {
		c.defaultToHistory = true
	}
}
