package loom_test

import (
	"testing"

	"github.com/emberworks/loom"
	"github.com/emberworks/loom/assert"
)

func TestEntityBuilder(t *testing.T) {
	w := newTestWorld(t)

	e := loom.With(loom.With(loom.NewEntity(w), Position{X: 1}), Velocity{DX: 2}).Entity()
	assert.True(t, w.IsAlive(e))

	pos, ok := loom.GetComponent[Position](w, e)
	assert.True(t, ok)
	assert.Equal(t, 1.0, pos.X)
	vel, ok := loom.GetComponent[Velocity](w, e)
	assert.True(t, ok)
	assert.Equal(t, 2.0, vel.DX)
}

func TestNamedEntity(t *testing.T) {
	w := newTestWorld(t)

	e := loom.CreateEntityNamed(w, "player-one")
	assert.True(t, w.IsAlive(e))

	name, ok := loom.EntityNameOf(w, e)
	assert.True(t, ok)
	assert.Equal(t, "player-one", name)

	anonymous := w.CreateEntity()
	_, ok = loom.EntityNameOf(w, anonymous)
	assert.False(t, ok)
}

func TestNamedEntityBuilderChains(t *testing.T) {
	w := newTestWorld(t)

	e := loom.With(loom.NewEntityNamed(w, "boss"), Health{Value: 100}).Entity()

	name, ok := loom.EntityNameOf(w, e)
	assert.True(t, ok)
	assert.Equal(t, "boss", name)
	h, ok := loom.GetComponent[Health](w, e)
	assert.True(t, ok)
	assert.Equal(t, 100, h.Value)
}

func TestEntityNameIsSearchable(t *testing.T) {
	w := newTestWorld(t)

	named := loom.CreateEntityNamed(w, "npc")
	w.CreateEntity()

	s := w.NewSearch().With(loom.Ref[loom.EntityName]())
	assert.Equal(t, 1, s.Count())
	first, err := s.First()
	assert.NilError(t, err)
	assert.Equal(t, named, first)
}
