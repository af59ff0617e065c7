package filter

import "github.com/emberworks/loom/types"

type exact struct {
	components types.ComponentSet
}

// Exact matches entities that hold exactly the given component types, no more
// and no fewer.
func Exact(components ...types.ComponentID) ComponentFilter {
	f := exact{}
	for _, id := range components {
		f.components.Add(id)
	}
	return f
}

func (f exact) Matches(signature types.ComponentSet) bool {
	return signature == f.components
}
