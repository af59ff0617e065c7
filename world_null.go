package loom

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emberworks/loom/component"
	"github.com/emberworks/loom/gamestate"
	"github.com/emberworks/loom/types"
)

var _ World = (*nullWorld)(nil)

// nullWorld is a World where nothing exists and nothing happens. Creates
// return the bad-entity sentinel, writes are discarded, searches match
// nothing, and ticks run zero systems. Only GetSingleton fails, because
// callers of GetSingleton rely on a registered value existing.
type nullWorld struct {
	logger zerolog.Logger
}

// NewNullWorld returns a world whose every operation is a trivial no-op. It is
// useful as a stand-in where code requires a World but no simulation should
// run.
func NewNullWorld() World {
	return &nullWorld{logger: zerolog.Nop()}
}

func (n *nullWorld) CreateEntity() types.Entity               { return types.BadEntity }
func (n *nullWorld) DestroyEntity(types.Entity) bool          { return false }
func (n *nullWorld) DestroyEntities(...types.Entity) int      { return 0 }
func (n *nullWorld) IsAlive(types.Entity) bool                { return false }
func (n *nullWorld) EntityCount() int                         { return 0 }
func (n *nullWorld) EachEntity(func(types.Entity) bool)       {}
func (n *nullWorld) RegisterSystem(string, System)            {}
func (n *nullWorld) Tick(context.Context) error               { return nil }
func (n *nullWorld) CurrentTick() uint64                      { return 0 }
func (n *nullWorld) Namespace() string                        { return "null" }
func (n *nullWorld) InstanceID() string                       { return "" }
func (n *nullWorld) Logger() *zerolog.Logger                  { return &n.logger }
func (n *nullWorld) GetRegisteredComponents() []types.ComponentMetadata { return nil }
func (n *nullWorld) GetRegisteredSystems() []string           { return nil }

func (n *nullWorld) NewSearch() *Search {
	return &Search{w: n}
}

func (n *nullWorld) SearchCQL(query string) (*Search, error) {
	return searchCQL(n, query)
}

func (n *nullWorld) DumpState() (types.EntityStateResponse, error) {
	return types.EntityStateResponse{}, nil
}

func (n *nullWorld) registerComponent(types.ComponentMetadata) error { return nil }

func (n *nullWorld) componentByName(name string) (types.ComponentMetadata, error) {
	return nil, component.ErrComponentNotRegistered
}

func (n *nullWorld) setComponent(types.ComponentMetadata, types.Entity, any) bool { return false }

func (n *nullWorld) getComponent(types.ComponentMetadata, types.Entity) (any, bool) {
	return nil, false
}

func (n *nullWorld) removeComponent(types.ComponentMetadata, types.Entity) bool { return false }
func (n *nullWorld) hasComponent(types.ComponentMetadata, types.Entity) bool    { return false }
func (n *nullWorld) setSingleton(types.ComponentMetadata, any)                  {}

func (n *nullWorld) getSingleton(md types.ComponentMetadata) (any, error) {
	return nil, gamestate.ErrSingletonNotFound
}

func (n *nullWorld) stateReader() gamestate.Reader {
	return nullReader{}
}

// nullReader satisfies gamestate.Reader with permanently empty state.
type nullReader struct{}

func (nullReader) StoreSize(types.ComponentID) int                            { return 0 }
func (nullReader) EachStoredID(types.ComponentID, func(types.EntityID) bool)  {}
func (nullReader) SignatureOf(types.EntityID) types.ComponentSet              { return types.ComponentSet{} }
func (nullReader) ResolveID(types.EntityID) (types.Entity, bool)              { return types.BadEntity, false }
func (nullReader) EachEntity(func(types.Entity) bool)                         {}
