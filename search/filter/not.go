package filter

import "github.com/emberworks/loom/types"

type not struct {
	filter ComponentFilter
}

func Not(filter ComponentFilter) ComponentFilter {
	return &not{filter: filter}
}

func (f *not) Matches(signature types.ComponentSet) bool {
	return !f.filter.Matches(signature)
}
