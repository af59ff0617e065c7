package loom_test

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emberworks/loom"
	"github.com/emberworks/loom/assert"
	"github.com/emberworks/loom/types"
)

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (Position) Name() string { return "Position" }

type Velocity struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

func (Velocity) Name() string { return "Velocity" }

type Health struct {
	Value int `json:"value"`
}

func (Health) Name() string { return "Health" }

type Frozen struct{}

func (Frozen) Name() string { return "Frozen" }

// Unregistered is never attached to anything in these tests.
type Unregistered struct{}

func (Unregistered) Name() string { return "Unregistered" }

func newTestWorld(t *testing.T, opts ...loom.WorldOption) loom.World {
	t.Helper()
	opts = append([]loom.WorldOption{loom.WithLogger(zerolog.Nop())}, opts...)
	w, err := loom.NewWorld(opts...)
	assert.NilError(t, err)
	return w
}

func collectIDs(entities []types.Entity) []types.EntityID {
	ids := make([]types.EntityID, 0, len(entities))
	for _, e := range entities {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestWorldEntityLifecycle(t *testing.T) {
	w := newTestWorld(t)

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	assert.False(t, e1.IsBad())
	assert.True(t, w.IsAlive(e1))
	assert.True(t, w.IsAlive(e2))
	assert.Equal(t, 2, w.EntityCount())

	assert.True(t, w.DestroyEntity(e1))
	assert.False(t, w.IsAlive(e1))
	assert.Equal(t, 1, w.EntityCount())

	// Double destroy is a no-op.
	assert.False(t, w.DestroyEntity(e1))
}

func TestWorldDestroyEntities(t *testing.T) {
	w := newTestWorld(t)

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()
	assert.True(t, w.DestroyEntity(e2))

	assert.Equal(t, 2, w.DestroyEntities(e1, e2, e3))
	assert.Equal(t, 0, w.EntityCount())
}

func TestWorldComponentRoundTrip(t *testing.T) {
	w := newTestWorld(t)
	e := w.CreateEntity()

	assert.NilError(t, loom.SetComponent(w, e, Position{X: 1, Y: 2}))
	assert.True(t, loom.HasComponent[Position](w, e))

	got, ok := loom.GetComponent[Position](w, e)
	assert.True(t, ok)
	assert.Equal(t, Position{X: 1, Y: 2}, got)

	// Overwrite.
	assert.NilError(t, loom.SetComponent(w, e, Position{X: 3, Y: 4}))
	got, _ = loom.GetComponent[Position](w, e)
	assert.Equal(t, Position{X: 3, Y: 4}, got)

	assert.True(t, loom.RemoveComponent[Position](w, e))
	assert.False(t, loom.HasComponent[Position](w, e))
	_, ok = loom.GetComponent[Position](w, e)
	assert.False(t, ok)
	assert.False(t, loom.RemoveComponent[Position](w, e))
}

func TestWorldUpdateComponent(t *testing.T) {
	w := newTestWorld(t)
	e := w.CreateEntity()
	assert.NilError(t, loom.SetComponent(w, e, Health{Value: 10}))

	applied := loom.UpdateComponent(w, e, func(h *Health) *Health {
		h.Value -= 3
		return h
	})
	assert.True(t, applied)

	got, _ := loom.GetComponent[Health](w, e)
	assert.Equal(t, 7, got.Value)

	// No component, no update.
	bare := w.CreateEntity()
	assert.False(t, loom.UpdateComponent(w, bare, func(h *Health) *Health { return h }))
}

func TestWorldStaleHandleIsInert(t *testing.T) {
	w := newTestWorld(t)

	stale := w.CreateEntity()
	assert.NilError(t, loom.SetComponent(w, stale, Position{X: 1}))
	assert.True(t, w.DestroyEntity(stale))

	fresh := w.CreateEntity()
	assert.Equal(t, stale.ID, fresh.ID)
	assert.NilError(t, loom.SetComponent(w, fresh, Position{X: 2}))

	// The recycled slot's data is invisible through the stale handle.
	assert.False(t, w.IsAlive(stale))
	assert.False(t, loom.HasComponent[Position](w, stale))
	_, ok := loom.GetComponent[Position](w, stale)
	assert.False(t, ok)

	// Writes through the stale handle do not corrupt the new occupant.
	assert.NilError(t, loom.SetComponent(w, stale, Position{X: 99}))
	got, _ := loom.GetComponent[Position](w, fresh)
	assert.Equal(t, Position{X: 2}, got)
}

func TestWorldQueryMovementScenario(t *testing.T) {
	w := newTestWorld(t)

	mover1 := w.CreateEntity()
	assert.NilError(t, loom.SetComponent(w, mover1, Position{}))
	assert.NilError(t, loom.SetComponent(w, mover1, Velocity{DX: 1}))

	still := w.CreateEntity()
	assert.NilError(t, loom.SetComponent(w, still, Position{}))

	mover2 := w.CreateEntity()
	assert.NilError(t, loom.SetComponent(w, mover2, Position{}))
	assert.NilError(t, loom.SetComponent(w, mover2, Velocity{DX: 2}))

	var matched []types.EntityID
	loom.Query2(w, func(e types.Entity, _ Position, _ Velocity) bool {
		matched = append(matched, e.ID)
		return true
	})
	assert.ElementsMatch(t, []types.EntityID{mover1.ID, mover2.ID}, matched)

	// Removing a required component excludes the entity from later queries.
	assert.True(t, loom.RemoveComponent[Velocity](w, mover2))
	matched = matched[:0]
	loom.Query2(w, func(e types.Entity, _ Position, _ Velocity) bool {
		matched = append(matched, e.ID)
		return true
	})
	assert.ElementsMatch(t, []types.EntityID{mover1.ID}, matched)
}

// Randomized cross-check: query results must equal a brute-force scan.
func TestWorldQueryMatchesBruteForce(t *testing.T) {
	w := newTestWorld(t)
	rng := rand.New(rand.NewSource(42))

	wantPosVel := map[types.EntityID]bool{}
	for i := 0; i < 200; i++ {
		e := w.CreateEntity()
		hasPos := rng.Intn(2) == 0
		hasVel := rng.Intn(2) == 0
		if hasPos {
			assert.NilError(t, loom.SetComponent(w, e, Position{X: float64(i)}))
		}
		if hasVel {
			assert.NilError(t, loom.SetComponent(w, e, Velocity{DX: float64(i)}))
		}
		if rng.Intn(10) == 0 {
			assert.True(t, w.DestroyEntity(e))
			continue
		}
		if hasPos && hasVel {
			wantPosVel[e.ID] = true
		}
	}

	got := map[types.EntityID]bool{}
	loom.Query2(w, func(e types.Entity, _ Position, _ Velocity) bool {
		got[e.ID] = true
		return true
	})
	assert.DeepEqual(t, wantPosVel, got)
}

func TestWorldNamespaceAndInstanceID(t *testing.T) {
	w := newTestWorld(t, loom.WithNamespace("battle-royale"))
	assert.Equal(t, "battle-royale", w.Namespace())
	assert.Assert(t, w.InstanceID() != "")

	other := newTestWorld(t, loom.WithNamespace("battle-royale"))
	assert.Assert(t, w.InstanceID() != other.InstanceID())
}

func TestWorldRegisteredComponentsListing(t *testing.T) {
	w := newTestWorld(t)
	assert.Len(t, w.GetRegisteredComponents(), 0)

	e := w.CreateEntity()
	assert.NilError(t, loom.SetComponent(w, e, Position{}))
	assert.NilError(t, loom.SetComponent(w, e, Velocity{}))

	names := make([]string, 0, 2)
	for _, md := range w.GetRegisteredComponents() {
		names = append(names, md.Name())
	}
	assert.ElementsMatch(t, []string{"Position", "Velocity"}, names)
}

func TestWorldRegisterComponentSchemaClash(t *testing.T) {
	w := newTestWorld(t)
	assert.NilError(t, loom.RegisterComponent[Position](w))
	// Same type again is fine.
	assert.NilError(t, loom.RegisterComponent[Position](w))
}
