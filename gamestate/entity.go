package gamestate

import "github.com/emberworks/loom/types"

type entitySlot struct {
	generation types.Generation
	alive      bool
}

// entityAllocator issues entity handles and recycles freed slots. A slot's
// generation is bumped when the slot is handed out again, never at destroy
// time, so IsAlive must check both the generation and the alive flag.
type entityAllocator struct {
	slots     []entitySlot
	freeList  []types.EntityID
	liveCount int
}

func newEntityAllocator() *entityAllocator {
	return &entityAllocator{}
}

// create returns a handle for a fresh or recycled slot.
func (a *entityAllocator) create() types.Entity {
	var id types.EntityID
	if n := len(a.freeList); n > 0 {
		id = a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		a.slots[id].generation++
	} else {
		id = types.EntityID(len(a.slots))
		a.slots = append(a.slots, entitySlot{})
	}
	a.slots[id].alive = true
	a.liveCount++
	return types.Entity{ID: id, Generation: a.slots[id].generation}
}

// destroy frees the slot behind e. Stale handles (generation mismatch, or a
// slot already freed) are ignored; the return value reports whether anything
// was freed.
func (a *entityAllocator) destroy(e types.Entity) bool {
	if !a.isAlive(e) {
		return false
	}
	a.slots[e.ID].alive = false
	a.freeList = append(a.freeList, e.ID)
	a.liveCount--
	return true
}

func (a *entityAllocator) isAlive(e types.Entity) bool {
	if int(e.ID) >= len(a.slots) {
		return false
	}
	slot := a.slots[e.ID]
	return slot.alive && slot.generation == e.Generation
}

// resolve returns the current handle for a slot index, if the slot is alive.
func (a *entityAllocator) resolve(id types.EntityID) (types.Entity, bool) {
	if int(id) >= len(a.slots) || !a.slots[id].alive {
		return types.BadEntity, false
	}
	return types.Entity{ID: id, Generation: a.slots[id].generation}, true
}

// each visits every live entity. Return false from fn to stop early. The
// visit order is unspecified but stable for the duration of one call, as long
// as the caller does not mutate the allocator mid-iteration.
func (a *entityAllocator) each(fn func(types.Entity) bool) {
	for id := range a.slots {
		slot := a.slots[id]
		if !slot.alive {
			continue
		}
		if !fn(types.Entity{ID: types.EntityID(id), Generation: slot.generation}) {
			return
		}
	}
}

func (a *entityAllocator) count() int {
	return a.liveCount
}
