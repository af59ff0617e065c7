// Package search implements the query engine: the evaluation of a component
// filter over the world's per-type stores.
package search

import (
	"github.com/rotisserie/eris"

	"github.com/emberworks/loom/gamestate"
	"github.com/emberworks/loom/search/filter"
	"github.com/emberworks/loom/types"
)

// ErrNoMatch is returned by First when nothing satisfies the search.
var ErrNoMatch = eris.New("no entity matches the search")

// CallbackFn receives one matched entity. Return false to stop iterating.
type CallbackFn func(types.Entity) bool

// FilterFn is an arbitrary per-entity predicate evaluated after the component
// filter. An error disqualifies the entity without aborting the search.
type FilterFn func(types.Entity) (bool, error)

// Search evaluates a component filter against a world state. Entities are
// first narrowed by the component filter, then by the optional user-defined
// where filter.
//
// When the search names required components, evaluation iterates the smallest
// of their stores and probes the remaining criteria against each candidate's
// component signature. The cost is therefore proportional to the size of the
// smallest required store, not to the total entity population — do not
// replace this with a scan of all live entities.
type Search struct {
	stateReader gamestate.Reader

	// componentFilter defines the component criteria entities must satisfy.
	componentFilter filter.ComponentFilter

	// required lists component types every match must hold; the smallest of
	// their stores drives the iteration. Empty means no store can drive and
	// the search falls back to enumerating live entities.
	required []types.ComponentID

	// whereFilter is an arbitrary user-defined filter that can be evaluated to filter entities.
	whereFilter FilterFn
}

// New creates a Search over the given state with a component filter already
// provided. The required list must only name component types the filter
// already demands of every match.
func New(stateReader gamestate.Reader, compFilter filter.ComponentFilter, required []types.ComponentID) *Search {
	return &Search{
		stateReader:     stateReader,
		componentFilter: compFilter,
		required:        required,
		whereFilter:     nil,
	}
}

// Where narrows the search with a per-entity predicate. Where clauses chain:
// each additional clause is ANDed with the previous ones. The receiver is not
// modified.
func (s *Search) Where(whereFn FilterFn) *Search {
	whereFilter := whereFn
	if s.whereFilter != nil {
		whereFilter = andWhere(s.whereFilter, whereFn)
	}
	return &Search{
		stateReader:     s.stateReader,
		componentFilter: s.componentFilter,
		required:        s.required,
		whereFilter:     whereFilter,
	}
}

// Each iterates over all entities that match the search. If you would like to
// stop the iteration, return false from the callback. To continue iterating,
// return true. Mutating world state while an Each call is in progress is
// undefined; each separate call re-evaluates the search from scratch.
func (s *Search) Each(callback CallbackFn) {
	s.drive(func(id types.EntityID) bool {
		signature := s.stateReader.SignatureOf(id)
		if !s.componentFilter.Matches(signature) {
			return true
		}
		entity, ok := s.stateReader.ResolveID(id)
		if !ok {
			return true
		}
		if s.whereFilter != nil {
			eligible, err := s.whereFilter(entity)
			if err != nil || !eligible {
				return true
			}
		}
		return callback(entity)
	})
}

// Count returns the number of entities that match the search.
func (s *Search) Count() int {
	count := 0
	s.Each(func(types.Entity) bool {
		count++
		return true
	})
	return count
}

// First returns the first entity that matches the search.
func (s *Search) First() (types.Entity, error) {
	found := types.BadEntity
	s.Each(func(e types.Entity) bool {
		found = e
		return false
	})
	if found.IsBad() {
		return types.BadEntity, ErrNoMatch
	}
	return found, nil
}

// MustFirst returns the first entity that matches the search, panicking if
// there is none.
func (s *Search) MustFirst() types.Entity {
	e, err := s.First()
	if err != nil {
		panic("no entity matches the search")
	}
	return e
}

// Collect materializes the matched entities into a slice.
func (s *Search) Collect() []types.Entity {
	var entities []types.Entity
	s.Each(func(e types.Entity) bool {
		entities = append(entities, e)
		return true
	})
	return entities
}

// drive feeds candidate slot indexes to fn, choosing the smallest required
// store as the driving set.
func (s *Search) drive(fn func(types.EntityID) bool) {
	if len(s.required) == 0 {
		s.stateReader.EachEntity(func(e types.Entity) bool {
			return fn(e.ID)
		})
		return
	}

	driving := s.required[0]
	smallest := s.stateReader.StoreSize(driving)
	for _, id := range s.required[1:] {
		if size := s.stateReader.StoreSize(id); size < smallest {
			driving, smallest = id, size
		}
	}
	s.stateReader.EachStoredID(driving, fn)
}

func andWhere(a, b FilterFn) FilterFn {
	return func(e types.Entity) (bool, error) {
		ok, err := a(e)
		if err != nil || !ok {
			return false, err
		}
		return b(e)
	}
}
