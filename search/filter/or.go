package filter

import "github.com/emberworks/loom/types"

type or struct {
	filters []ComponentFilter
}

func Or(filters ...ComponentFilter) ComponentFilter {
	return &or{filters: filters}
}

func (f *or) Matches(signature types.ComponentSet) bool {
	for _, filter := range f.filters {
		if filter.Matches(signature) {
			return true
		}
	}
	return false
}
