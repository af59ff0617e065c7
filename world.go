// Package loom is an entity-component-system data core. A World owns entity
// slots, per-type component stores, singletons, and systems; package-level
// generic functions (SetComponent, GetComponent, Query2, ...) operate on a
// World because Go methods cannot be generic.
package loom

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emberworks/loom/component"
	"github.com/emberworks/loom/gamestate"
	"github.com/emberworks/loom/log"
	"github.com/emberworks/loom/statsd"
	"github.com/emberworks/loom/types"
)

// World is the facade over one simulation's state. NewWorld returns the live
// implementation; NewNullWorld returns one where every operation is a cheap
// no-op.
type World interface {
	// CreateEntity allocates a new entity with no components.
	CreateEntity() types.Entity
	// DestroyEntity frees the entity and purges its components. Dead or stale
	// handles are a no-op; the return value reports whether anything died.
	DestroyEntity(e types.Entity) bool
	// DestroyEntities destroys each given entity, returning how many actually
	// died.
	DestroyEntities(entities ...types.Entity) int
	// IsAlive reports whether the handle refers to a live entity.
	IsAlive(e types.Entity) bool
	// EntityCount returns the number of live entities.
	EntityCount() int
	// EachEntity visits every live entity. Return false from fn to stop early.
	EachEntity(fn func(types.Entity) bool)

	// NewSearch starts a fluent search over the world's entities.
	NewSearch() *Search
	// SearchCQL compiles a text query into a search. Component names in the
	// query must be registered.
	SearchCQL(query string) (*Search, error)

	// RegisterSystem adds a named system to the end of the tick order.
	RegisterSystem(name string, sys System)
	// Tick runs every registered system once, in registration order. The first
	// system error aborts the tick.
	Tick(ctx context.Context) error
	// CurrentTick returns the number of completed or in-progress ticks.
	CurrentTick() uint64

	// Namespace returns the world's configured namespace.
	Namespace() string
	// InstanceID returns the unique id assigned to this world instance.
	InstanceID() string
	// Logger returns the world's logger.
	Logger() *zerolog.Logger
	// DumpState returns every live entity with the JSON encoding of each of
	// its components.
	DumpState() (types.EntityStateResponse, error)

	GetRegisteredComponents() []types.ComponentMetadata
	GetRegisteredSystems() []string

	// Plumbing for the package-level generic helpers.
	registerComponent(md types.ComponentMetadata) error
	componentByName(name string) (types.ComponentMetadata, error)
	setComponent(md types.ComponentMetadata, e types.Entity, value any) bool
	getComponent(md types.ComponentMetadata, e types.Entity) (any, bool)
	removeComponent(md types.ComponentMetadata, e types.Entity) bool
	hasComponent(md types.ComponentMetadata, e types.Entity) bool
	setSingleton(md types.ComponentMetadata, value any)
	getSingleton(md types.ComponentMetadata) (any, error)
	stateReader() gamestate.Reader
}

var _ World = (*world)(nil)
var _ log.Loggable = (*world)(nil)

type world struct {
	config       WorldConfig
	instanceID   string
	logger       zerolog.Logger
	customLogger bool

	componentManager *component.Manager
	stateManager     *gamestate.Manager

	systemNames []string
	systems     []System
	tick        atomic.Uint64
}

// NewWorld creates a world from environment config plus the given options.
func NewWorld(opts ...WorldOption) (World, error) {
	cfg, err := loadWorldConfig()
	if err != nil {
		return nil, err
	}

	w := &world{
		config:           cfg,
		instanceID:       uuid.NewString(),
		componentManager: component.NewManager(),
		stateManager:     gamestate.NewManager(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if !w.customLogger {
		level, err := zerolog.ParseLevel(w.config.LoomLogLevel)
		if err != nil {
			return nil, err
		}
		var out = os.Stderr
		logger := zerolog.New(out)
		if w.config.LoomLogPretty {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: out})
		}
		w.logger = logger.Level(level).With().
			Timestamp().
			Str("namespace", w.config.LoomNamespace).
			Str("world_id", w.instanceID).
			Logger()
	}

	if w.config.StatsdAddress != "" {
		if err := statsd.Init(w.config.StatsdAddress, w.config.statsdTagList()); err != nil {
			w.logger.Warn().Err(err).Msg("failed to init statsd client, metrics disabled")
		}
	}

	w.logger.Info().Str("namespace", w.config.LoomNamespace).Msg("world created")
	return w, nil
}

func (w *world) CreateEntity() types.Entity {
	e := w.stateManager.CreateEntity()
	w.logger.Debug().Int("entity_id", int(e.ID)).Msg("entity created")
	return e
}

func (w *world) DestroyEntity(e types.Entity) bool {
	destroyed := w.stateManager.DestroyEntity(e)
	if destroyed {
		w.logger.Debug().Int("entity_id", int(e.ID)).Msg("entity destroyed")
	}
	return destroyed
}

func (w *world) DestroyEntities(entities ...types.Entity) int {
	destroyed := 0
	for _, e := range entities {
		if w.DestroyEntity(e) {
			destroyed++
		}
	}
	return destroyed
}

func (w *world) IsAlive(e types.Entity) bool {
	return w.stateManager.IsAlive(e)
}

func (w *world) EntityCount() int {
	return w.stateManager.EntityCount()
}

func (w *world) EachEntity(fn func(types.Entity) bool) {
	w.stateManager.EachEntity(fn)
}

func (w *world) Namespace() string {
	return w.config.LoomNamespace
}

func (w *world) InstanceID() string {
	return w.instanceID
}

func (w *world) Logger() *zerolog.Logger {
	return &w.logger
}

func (w *world) GetRegisteredComponents() []types.ComponentMetadata {
	return w.componentManager.GetComponents()
}

func (w *world) GetRegisteredSystems() []string {
	names := make([]string, len(w.systemNames))
	copy(names, w.systemNames)
	return names
}

func (w *world) registerComponent(md types.ComponentMetadata) error {
	if err := w.componentManager.RegisterComponent(md); err != nil {
		return err
	}
	log.Components(&w.logger, w, zerolog.DebugLevel)
	return nil
}

func (w *world) componentByName(name string) (types.ComponentMetadata, error) {
	return w.componentManager.GetComponentByName(name)
}

func (w *world) setComponent(md types.ComponentMetadata, e types.Entity, value any) bool {
	return w.stateManager.SetComponent(md, e, value)
}

func (w *world) getComponent(md types.ComponentMetadata, e types.Entity) (any, bool) {
	return w.stateManager.GetComponent(md, e)
}

func (w *world) removeComponent(md types.ComponentMetadata, e types.Entity) bool {
	return w.stateManager.RemoveComponent(md, e)
}

func (w *world) hasComponent(md types.ComponentMetadata, e types.Entity) bool {
	return w.stateManager.HasComponent(md, e)
}

func (w *world) setSingleton(md types.ComponentMetadata, value any) {
	w.stateManager.SetSingleton(md, value)
}

func (w *world) getSingleton(md types.ComponentMetadata) (any, error) {
	return w.stateManager.GetSingleton(md)
}

func (w *world) stateReader() gamestate.Reader {
	return w.stateManager
}
