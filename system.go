package loom

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/emberworks/loom/log"
	"github.com/emberworks/loom/statsd"
)

// System is one unit of per-tick simulation logic. Systems run in
// registration order; returning an error aborts the tick.
type System func(ctx context.Context, w World) error

// RegisterSystems registers systems under names derived from their function
// names. Use World.RegisterSystem directly to pick a name explicitly (for
// example for closures, which all share the name "func1").
func RegisterSystems(w World, systems ...System) {
	for _, sys := range systems {
		w.RegisterSystem(systemName(sys), sys)
	}
}

func systemName(sys System) string {
	fullName := runtime.FuncForPC(reflect.ValueOf(sys).Pointer()).Name()
	parts := strings.Split(fullName, ".")
	name := parts[len(parts)-1]
	// Method values carry an -fm suffix.
	return strings.TrimSuffix(name, "-fm")
}

func (w *world) RegisterSystem(name string, sys System) {
	w.systemNames = append(w.systemNames, name)
	w.systems = append(w.systems, sys)
	log.System(&w.logger, w, zerolog.DebugLevel)
}

// Tick runs every registered system once, in registration order. A cancelled
// context stops the tick between systems; it does not interrupt a system that
// is already running.
func (w *world) Tick(ctx context.Context) error {
	tick := w.tick.Add(1)
	tickStart := time.Now()
	defer statsd.EmitTickStat(tickStart, "full_tick")

	for i, sys := range w.systems {
		if err := ctx.Err(); err != nil {
			return eris.Wrap(err, fmt.Sprintf("tick %d aborted", tick))
		}
		name := w.systemNames[i]
		sysLogger := log.CreateSystemLogger(&w.logger, name)
		sysStart := time.Now()
		if err := sys(ctx, w); err != nil {
			return eris.Wrap(err, fmt.Sprintf("system %q failed at tick %d", name, tick))
		}
		statsd.EmitTickStat(sysStart, name)
		sysLogger.Debug().Uint64("tick", tick).Msg("system completed")
	}
	return nil
}

func (w *world) CurrentTick() uint64 {
	return w.tick.Load()
}
