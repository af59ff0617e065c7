package loom

import (
	"github.com/emberworks/loom/cql"
	"github.com/emberworks/loom/search"
	"github.com/emberworks/loom/search/filter"
	"github.com/emberworks/loom/types"
)

// ComponentRef names a component type for use in a search without needing its
// registered metadata. Refs to unregistered types are legal; they resolve at
// evaluation time.
type ComponentRef struct {
	name string
}

// Ref creates a reference to the component type T.
func Ref[T types.Component]() ComponentRef {
	var t T
	return ComponentRef{name: t.Name()}
}

// Search is the fluent query builder. Criteria accumulate through With,
// Without, WithAny, and Where; each call returns a new Search, so partial
// queries can be shared and extended independently. Evaluation happens only
// when a terminal operation (Each, Count, First, Collect) runs.
type Search struct {
	w World

	withRefs    []ComponentRef
	withoutRefs []ComponentRef
	anyGroups   [][]ComponentRef
	whereFilter search.FilterFn

	// prebuilt, when set, replaces the With/Without/WithAny criteria. CQL
	// searches arrive here already compiled.
	prebuilt filter.ComponentFilter
}

func (w *world) NewSearch() *Search {
	return &Search{w: w}
}

func (w *world) SearchCQL(query string) (*Search, error) {
	return searchCQL(w, query)
}

func searchCQL(w World, query string) (*Search, error) {
	compiled, err := cql.Parse(query, w.componentByName)
	if err != nil {
		return nil, err
	}
	return &Search{w: w, prebuilt: compiled}, nil
}

func (s *Search) clone() *Search {
	out := &Search{
		w:           s.w,
		withRefs:    append([]ComponentRef(nil), s.withRefs...),
		withoutRefs: append([]ComponentRef(nil), s.withoutRefs...),
		anyGroups:   append([][]ComponentRef(nil), s.anyGroups...),
		whereFilter: s.whereFilter,
		prebuilt:    s.prebuilt,
	}
	return out
}

// With requires every match to hold all of the given component types. A
// reference to a type no entity can hold (because it was never registered)
// makes the search empty.
func (s *Search) With(refs ...ComponentRef) *Search {
	out := s.clone()
	out.withRefs = append(out.withRefs, refs...)
	return out
}

// Without excludes entities holding any of the given component types.
func (s *Search) Without(refs ...ComponentRef) *Search {
	out := s.clone()
	out.withoutRefs = append(out.withoutRefs, refs...)
	return out
}

// WithAny requires every match to hold at least one of the given component
// types. Multiple WithAny calls add independent groups, each of which must be
// satisfied.
func (s *Search) WithAny(refs ...ComponentRef) *Search {
	out := s.clone()
	out.anyGroups = append(out.anyGroups, refs)
	return out
}

// Where narrows the search with an arbitrary per-entity predicate, evaluated
// after the component criteria. Clauses chain with AND. A predicate error
// disqualifies the entity without aborting the search.
func (s *Search) Where(fn func(e types.Entity) (bool, error)) *Search {
	out := s.clone()
	if out.whereFilter == nil {
		out.whereFilter = fn
		return out
	}
	prev := out.whereFilter
	out.whereFilter = func(e types.Entity) (bool, error) {
		ok, err := prev(e)
		if err != nil || !ok {
			return false, err
		}
		return fn(e)
	}
	return out
}

// Each runs the search, visiting every match. Return false from cb to stop.
func (s *Search) Each(cb func(e types.Entity) bool) {
	engine, ok := s.compile()
	if !ok {
		return
	}
	engine.Each(search.CallbackFn(cb))
}

// Count returns the number of matches.
func (s *Search) Count() int {
	engine, ok := s.compile()
	if !ok {
		return 0
	}
	return engine.Count()
}

// First returns the first match, or an error if nothing matches.
func (s *Search) First() (types.Entity, error) {
	engine, ok := s.compile()
	if !ok {
		return types.BadEntity, search.ErrNoMatch
	}
	return engine.First()
}

// MustFirst returns the first match, panicking if nothing matches.
func (s *Search) MustFirst() types.Entity {
	e, err := s.First()
	if err != nil {
		panic("no entity matches the search")
	}
	return e
}

// Collect materializes the matches into a slice.
func (s *Search) Collect() []types.Entity {
	engine, ok := s.compile()
	if !ok {
		return nil
	}
	return engine.Collect()
}

// compile resolves the accumulated refs and builds the engine-level search.
// The second return is false when the criteria are provably unsatisfiable, in
// which case no engine search is needed.
func (s *Search) compile() (*search.Search, bool) {
	compFilter := s.prebuilt
	if compFilter == nil {
		var parts []filter.ComponentFilter

		withIDs := make([]types.ComponentID, 0, len(s.withRefs))
		for _, ref := range s.withRefs {
			md, err := s.w.componentByName(ref.name)
			if err != nil {
				// Nothing can hold a type that was never registered.
				return nil, false
			}
			withIDs = append(withIDs, md.ID())
		}
		if len(withIDs) > 0 {
			parts = append(parts, filter.Contains(withIDs...))
		}

		for _, group := range s.anyGroups {
			groupIDs := make([]types.ComponentID, 0, len(group))
			for _, ref := range group {
				md, err := s.w.componentByName(ref.name)
				if err != nil {
					continue
				}
				groupIDs = append(groupIDs, md.ID())
			}
			if len(group) > 0 && len(groupIDs) == 0 {
				return nil, false
			}
			if len(groupIDs) > 0 {
				parts = append(parts, filter.AnyOf(groupIDs...))
			}
		}

		// Unregistered exclusions are vacuously satisfied.
		withoutIDs := make([]types.ComponentID, 0, len(s.withoutRefs))
		for _, ref := range s.withoutRefs {
			md, err := s.w.componentByName(ref.name)
			if err != nil {
				continue
			}
			withoutIDs = append(withoutIDs, md.ID())
		}
		if len(withoutIDs) > 0 {
			parts = append(parts, filter.Not(filter.AnyOf(withoutIDs...)))
		}

		switch len(parts) {
		case 0:
			compFilter = filter.All()
		case 1:
			compFilter = parts[0]
		default:
			compFilter = filter.And(parts...)
		}
	}

	engine := search.New(s.w.stateReader(), compFilter, filter.Required(compFilter))
	if s.whereFilter != nil {
		engine = engine.Where(s.whereFilter)
	}
	return engine, true
}
