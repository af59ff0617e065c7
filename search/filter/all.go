package filter

import "github.com/emberworks/loom/types"

type all struct{}

// All matches every entity.
func All() ComponentFilter {
	return &all{}
}

func (f *all) Matches(_ types.ComponentSet) bool {
	return true
}
