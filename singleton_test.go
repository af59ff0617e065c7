package loom_test

import (
	"testing"

	"github.com/emberworks/loom"
	"github.com/emberworks/loom/assert"
	"github.com/emberworks/loom/gamestate"
	"github.com/emberworks/loom/types"
)

type MatchClock struct {
	Elapsed int64 `json:"elapsed"`
}

func (MatchClock) Name() string { return "MatchClock" }

func TestSingletonRoundTrip(t *testing.T) {
	w := newTestWorld(t)

	assert.NilError(t, loom.SetSingleton(w, MatchClock{Elapsed: 30}))
	clock, err := loom.GetSingleton[MatchClock](w)
	assert.NilError(t, err)
	assert.Equal(t, int64(30), clock.Elapsed)

	// Replacement wins.
	assert.NilError(t, loom.SetSingleton(w, MatchClock{Elapsed: 60}))
	clock, err = loom.GetSingleton[MatchClock](w)
	assert.NilError(t, err)
	assert.Equal(t, int64(60), clock.Elapsed)
}

func TestSingletonMissingFailsLoudly(t *testing.T) {
	w := newTestWorld(t)

	_, err := loom.GetSingleton[MatchClock](w)
	assert.ErrorIs(t, err, gamestate.ErrSingletonNotFound)
}

func TestSingletonDoesNotMatchSearches(t *testing.T) {
	w := newTestWorld(t)
	assert.NilError(t, loom.SetSingleton(w, MatchClock{}))

	// The singleton lives outside the entity tables.
	assert.Equal(t, 0, w.EntityCount())
	assert.Equal(t, 0, w.NewSearch().With(loom.Ref[MatchClock]()).Count())
	visited := 0
	loom.Query1(w, func(types.Entity, MatchClock) bool {
		visited++
		return true
	})
	assert.Equal(t, 0, visited)
}

func TestSingletonAndEntityComponentCoexist(t *testing.T) {
	w := newTestWorld(t)

	// The same type can serve as both a singleton and a per-entity component.
	assert.NilError(t, loom.SetSingleton(w, Health{Value: 1000}))
	e := w.CreateEntity()
	assert.NilError(t, loom.SetComponent(w, e, Health{Value: 10}))

	global, err := loom.GetSingleton[Health](w)
	assert.NilError(t, err)
	assert.Equal(t, 1000, global.Value)
	local, ok := loom.GetComponent[Health](w, e)
	assert.True(t, ok)
	assert.Equal(t, 10, local.Value)
}
