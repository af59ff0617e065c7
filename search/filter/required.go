package filter

import "github.com/emberworks/loom/types"

// Required returns the component types a filter guarantees on every match.
// The search engine drives iteration from the smallest of these stores, so a
// larger result means a cheaper search. Filters that promise nothing (Not,
// AnyOf, All) contribute an empty set.
func Required(f ComponentFilter) []types.ComponentID {
	return requiredSet(f).ToSlice()
}

func requiredSet(f ComponentFilter) types.ComponentSet {
	switch f := f.(type) {
	case *contains:
		return f.components
	case exact:
		return f.components
	case *and:
		var acc types.ComponentSet
		for _, sub := range f.filters {
			acc = acc.Union(requiredSet(sub))
		}
		return acc
	case *or:
		// Only components demanded by every branch are guaranteed.
		if len(f.filters) == 0 {
			return types.ComponentSet{}
		}
		acc := requiredSet(f.filters[0])
		for _, sub := range f.filters[1:] {
			acc = acc.Intersect(requiredSet(sub))
		}
		return acc
	default:
		return types.ComponentSet{}
	}
}
