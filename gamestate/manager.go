package gamestate

import (
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/emberworks/loom/types"
)

// Reader is the read surface the search engine evaluates against. It is
// satisfied by the Manager; a null world satisfies it with empty results.
type Reader interface {
	// StoreSize returns the number of entities holding the given component
	// type. Unknown component types report zero.
	StoreSize(id types.ComponentID) int
	// EachStoredID visits the slot index of every entity holding the given
	// component type. Return false from fn to stop early.
	EachStoredID(id types.ComponentID, fn func(types.EntityID) bool)
	// SignatureOf returns the component signature of a slot.
	SignatureOf(id types.EntityID) types.ComponentSet
	// ResolveID returns the live entity handle occupying a slot, if any.
	ResolveID(id types.EntityID) (types.Entity, bool)
	// EachEntity visits every live entity. Return false from fn to stop early.
	EachEntity(fn func(types.Entity) bool)
}

var _ Reader = (*Manager)(nil)

// Manager owns all simulation state for one world: the entity slot table,
// every per-type component store (created lazily), the per-entity component
// signatures, and the singleton registry. All mutation policy lives here —
// stale or dead entity handles are rejected before they reach a store, which
// is what keeps the stores themselves branch-free.
type Manager struct {
	allocator  *entityAllocator
	stores     map[types.ComponentID]*componentStore
	signatures []types.ComponentSet
	singletons map[types.ComponentID]any
}

func NewManager() *Manager {
	return &Manager{
		allocator:  newEntityAllocator(),
		stores:     make(map[types.ComponentID]*componentStore),
		singletons: make(map[types.ComponentID]any),
	}
}

// CreateEntity allocates a new entity with no components.
func (m *Manager) CreateEntity() types.Entity {
	e := m.allocator.create()
	if int(e.ID) >= len(m.signatures) {
		m.signatures = append(m.signatures, types.ComponentSet{})
	} else {
		m.signatures[e.ID] = types.ComponentSet{}
	}
	return e
}

// DestroyEntity frees the entity's slot and purges its row from every store
// it occupies. Stale handles are a no-op; the return value reports whether an
// entity was actually destroyed.
func (m *Manager) DestroyEntity(e types.Entity) bool {
	if !m.allocator.isAlive(e) {
		return false
	}
	m.signatures[e.ID].Each(func(cid types.ComponentID) bool {
		if store, ok := m.stores[cid]; ok {
			store.purge(e.ID)
		}
		return true
	})
	m.signatures[e.ID] = types.ComponentSet{}
	return m.allocator.destroy(e)
}

func (m *Manager) IsAlive(e types.Entity) bool {
	return m.allocator.isAlive(e)
}

func (m *Manager) EntityCount() int {
	return m.allocator.count()
}

// SetComponent inserts or replaces the component value for the entity. The
// store for the component type is created on first use. Writes against dead
// or stale handles are dropped; the return value reports whether the write
// was applied.
func (m *Manager) SetComponent(comp types.ComponentMetadata, e types.Entity, value any) bool {
	if !m.allocator.isAlive(e) {
		return false
	}
	store, ok := m.stores[comp.ID()]
	if !ok {
		store = newComponentStore(comp)
		m.stores[comp.ID()] = store
	}
	store.set(e.ID, value)
	m.signatures[e.ID].Add(comp.ID())
	return true
}

// GetComponent returns the component value for the entity. Missing
// components, dead entities, and stale handles all read as "not found".
func (m *Manager) GetComponent(comp types.ComponentMetadata, e types.Entity) (any, bool) {
	if !m.allocator.isAlive(e) {
		return nil, false
	}
	store, ok := m.stores[comp.ID()]
	if !ok {
		return nil, false
	}
	return store.get(e.ID)
}

// RemoveComponent removes the component from the entity, reporting whether
// anything was removed.
func (m *Manager) RemoveComponent(comp types.ComponentMetadata, e types.Entity) bool {
	if !m.allocator.isAlive(e) {
		return false
	}
	store, ok := m.stores[comp.ID()]
	if !ok {
		return false
	}
	if !store.remove(e.ID) {
		return false
	}
	m.signatures[e.ID].Remove(comp.ID())
	return true
}

func (m *Manager) HasComponent(comp types.ComponentMetadata, e types.Entity) bool {
	if !m.allocator.isAlive(e) {
		return false
	}
	store, ok := m.stores[comp.ID()]
	if !ok {
		return false
	}
	return store.has(e.ID)
}

// SetSingleton registers or replaces the world-wide instance of the component
// type.
func (m *Manager) SetSingleton(comp types.ComponentMetadata, value any) {
	m.singletons[comp.ID()] = value
}

// GetSingleton returns the world-wide instance of the component type. A
// missing singleton is a configuration defect and fails loudly instead of
// producing a zero value.
func (m *Manager) GetSingleton(comp types.ComponentMetadata) (any, error) {
	v, ok := m.singletons[comp.ID()]
	if !ok {
		return nil, eris.Wrap(ErrSingletonNotFound, fmt.Sprintf("no singleton registered for %q", comp.Name()))
	}
	return v, nil
}

// StoreSize implements Reader.
func (m *Manager) StoreSize(id types.ComponentID) int {
	store, ok := m.stores[id]
	if !ok {
		return 0
	}
	return store.size()
}

// EachStoredID implements Reader.
func (m *Manager) EachStoredID(id types.ComponentID, fn func(types.EntityID) bool) {
	store, ok := m.stores[id]
	if !ok {
		return
	}
	store.eachID(fn)
}

// SignatureOf implements Reader.
func (m *Manager) SignatureOf(id types.EntityID) types.ComponentSet {
	if int(id) >= len(m.signatures) {
		return types.ComponentSet{}
	}
	return m.signatures[id]
}

// ResolveID implements Reader.
func (m *Manager) ResolveID(id types.EntityID) (types.Entity, bool) {
	return m.allocator.resolve(id)
}

// EachEntity implements Reader.
func (m *Manager) EachEntity(fn func(types.Entity) bool) {
	m.allocator.each(fn)
}
