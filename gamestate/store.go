package gamestate

import "github.com/emberworks/loom/types"

// componentStore is the per-type storage table: a sparse map from slot index
// to the component value. It is deliberately dumb — no liveness or generation
// checks happen here (the Manager owns that policy), and no operation can
// fault.
type componentStore struct {
	comp   types.ComponentMetadata
	values map[types.EntityID]any
}

func newComponentStore(comp types.ComponentMetadata) *componentStore {
	return &componentStore{
		comp:   comp,
		values: make(map[types.EntityID]any),
	}
}

// set inserts or overwrites the value for the given slot.
func (s *componentStore) set(id types.EntityID, value any) {
	s.values[id] = value
}

func (s *componentStore) get(id types.EntityID) (any, bool) {
	v, ok := s.values[id]
	return v, ok
}

func (s *componentStore) has(id types.EntityID) bool {
	_, ok := s.values[id]
	return ok
}

// remove deletes the row and reports whether one existed.
func (s *componentStore) remove(id types.EntityID) bool {
	if _, ok := s.values[id]; !ok {
		return false
	}
	delete(s.values, id)
	return true
}

// purge drops the row regardless of presence. Idempotent; used by entity
// destruction.
func (s *componentStore) purge(id types.EntityID) {
	delete(s.values, id)
}

func (s *componentStore) size() int {
	return len(s.values)
}

// eachID visits every slot index present in the store. Return false from fn
// to stop early.
func (s *componentStore) eachID(fn func(types.EntityID) bool) {
	for id := range s.values {
		if !fn(id) {
			return
		}
	}
}
