package loom

import (
	"strings"

	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const (
	DefaultNamespace = "loom-world"
	DefaultLogLevel  = "info"
)

var defaultConfig = WorldConfig{
	LoomNamespace: DefaultNamespace,
	LoomLogLevel:  DefaultLogLevel,
}

// WorldConfig is loaded from the environment when a world is created. Field
// names map to SCREAMING_SNAKE environment variables (LoomNamespace ->
// LOOM_NAMESPACE).
type WorldConfig struct {
	// LoomNamespace is a unique identifier for this world deployment.
	LoomNamespace string
	// LoomLogLevel must be a valid zerolog level string (debug, info, warn...).
	LoomLogLevel string
	// LoomLogPretty enables human-readable console output instead of JSON.
	LoomLogPretty bool
	// StatsdAddress is the address of a statsd agent to emit tick metrics to.
	// Metrics are disabled when empty.
	StatsdAddress string
	// StatsdTags is a comma-separated list of tags attached to every metric.
	StatsdTags string
}

func loadWorldConfig() (WorldConfig, error) {
	cfg := defaultConfig
	if err := config.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to load world config from environment")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, eris.Wrap(err, "invalid world config")
	}
	return cfg, nil
}

// Validate checks that the config is usable. An empty log level falls back to
// the default rather than failing.
func (w *WorldConfig) Validate() error {
	if w.LoomNamespace == "" {
		return eris.New("LOOM_NAMESPACE must not be empty")
	}
	if w.LoomLogLevel == "" {
		w.LoomLogLevel = DefaultLogLevel
	}
	if _, err := zerolog.ParseLevel(w.LoomLogLevel); err != nil {
		return eris.Wrap(err, "LOOM_LOG_LEVEL is not a valid level")
	}
	return nil
}

func (w *WorldConfig) statsdTagList() []string {
	if w.StatsdTags == "" {
		return nil
	}
	tags := strings.Split(w.StatsdTags, ",")
	out := tags[:0]
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
