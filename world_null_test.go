package loom_test

import (
	"context"
	"testing"

	"github.com/emberworks/loom"
	"github.com/emberworks/loom/assert"
	"github.com/emberworks/loom/gamestate"
	"github.com/emberworks/loom/types"
)

func TestNullWorldEntityOperations(t *testing.T) {
	w := loom.NewNullWorld()

	e := w.CreateEntity()
	assert.True(t, e.IsBad())
	assert.False(t, w.IsAlive(e))
	assert.Equal(t, 0, w.EntityCount())

	assert.False(t, w.DestroyEntity(e))
	assert.Equal(t, 0, w.DestroyEntities(e, e))

	visited := 0
	w.EachEntity(func(types.Entity) bool {
		visited++
		return true
	})
	assert.Equal(t, 0, visited)
}

func TestNullWorldComponentOperations(t *testing.T) {
	w := loom.NewNullWorld()
	e := w.CreateEntity()

	// Writes are silently discarded.
	assert.NilError(t, loom.SetComponent(w, e, Position{X: 1}))
	assert.False(t, loom.HasComponent[Position](w, e))
	_, ok := loom.GetComponent[Position](w, e)
	assert.False(t, ok)
	assert.False(t, loom.RemoveComponent[Position](w, e))
	assert.False(t, loom.UpdateComponent(w, e, func(p *Position) *Position { return p }))
	assert.Len(t, w.GetRegisteredComponents(), 0)
}

func TestNullWorldSingletonFailsLoudly(t *testing.T) {
	w := loom.NewNullWorld()

	assert.NilError(t, loom.SetSingleton(w, Health{Value: 10}))
	_, err := loom.GetSingleton[Health](w)
	assert.ErrorIs(t, err, gamestate.ErrSingletonNotFound)
}

func TestNullWorldSearchesAreEmpty(t *testing.T) {
	w := loom.NewNullWorld()

	s := w.NewSearch()
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Collect())
	_, err := s.First()
	assert.IsError(t, err)
	assert.Panics(t, func() { s.MustFirst() })

	visited := 0
	loom.Query1(w, func(types.Entity, Position) bool {
		visited++
		return true
	})
	assert.Equal(t, 0, visited)
}

func TestNullWorldTickRunsNothing(t *testing.T) {
	w := loom.NewNullWorld()

	ran := false
	w.RegisterSystem("noop", func(context.Context, loom.World) error {
		ran = true
		return nil
	})
	assert.NilError(t, w.Tick(context.Background()))
	assert.False(t, ran)
	assert.Equal(t, uint64(0), w.CurrentTick())
	assert.Len(t, w.GetRegisteredSystems(), 0)
}

func TestNullWorldDumpStateIsEmpty(t *testing.T) {
	w := loom.NewNullWorld()

	state, err := w.DumpState()
	assert.NilError(t, err)
	assert.Len(t, state, 0)
}

func TestNullWorldBuilderYieldsBadEntity(t *testing.T) {
	w := loom.NewNullWorld()

	e := loom.With(loom.NewEntity(w), Position{}).Entity()
	assert.True(t, e.IsBad())

	named := loom.CreateEntityNamed(w, "ghost")
	assert.True(t, named.IsBad())
	_, ok := loom.EntityNameOf(w, named)
	assert.False(t, ok)
}
