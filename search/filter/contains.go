package filter

import "github.com/emberworks/loom/types"

type contains struct {
	components types.ComponentSet
}

// Contains matches entities that hold all of the given component types.
func Contains(components ...types.ComponentID) ComponentFilter {
	f := &contains{}
	for _, id := range components {
		f.components.Add(id)
	}
	return f
}

func (f *contains) Matches(signature types.ComponentSet) bool {
	return signature.ContainsAll(f.components)
}
