package loom

import "github.com/rs/zerolog"

// WorldOption represents an option that can be used to augment how a world
// will be created.
type WorldOption func(*world)

// WithNamespace sets the world namespace, overriding LOOM_NAMESPACE.
func WithNamespace(namespace string) WorldOption {
	return func(w *world) {
		w.config.LoomNamespace = namespace
	}
}

// WithLogger installs a custom logger, replacing the one the world would
// otherwise build from its config.
func WithLogger(logger zerolog.Logger) WorldOption {
	return func(w *world) {
		w.logger = logger
		w.customLogger = true
	}
}

// WithPrettyLog enables console-formatted log output.
func WithPrettyLog() WorldOption {
	return func(w *world) {
		w.config.LoomLogPretty = true
	}
}

// WithStatsdAddress sets the statsd agent address, overriding STATSD_ADDRESS.
func WithStatsdAddress(address string) WorldOption {
	return func(w *world) {
		w.config.StatsdAddress = address
	}
}
