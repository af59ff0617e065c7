package filter

import "github.com/emberworks/loom/types"

type anyOf struct {
	components types.ComponentSet
}

// AnyOf matches entities that hold at least one of the given component types.
func AnyOf(components ...types.ComponentID) ComponentFilter {
	f := &anyOf{}
	for _, id := range components {
		f.components.Add(id)
	}
	return f
}

func (f *anyOf) Matches(signature types.ComponentSet) bool {
	return signature.Intersects(f.components)
}
