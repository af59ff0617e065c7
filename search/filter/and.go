package filter

import "github.com/emberworks/loom/types"

type and struct {
	filters []ComponentFilter
}

func And(filters ...ComponentFilter) ComponentFilter {
	return &and{filters: filters}
}

func (f *and) Matches(signature types.ComponentSet) bool {
	for _, filter := range f.filters {
		if !filter.Matches(signature) {
			return false
		}
	}
	return true
}
