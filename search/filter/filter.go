// Package filter provides the component-predicate algebra used by searches.
// Filters are evaluated against an entity's component signature.
package filter

import "github.com/emberworks/loom/types"

// ComponentFilter is a filter that filters entities based on their components.
type ComponentFilter interface {
	// Matches returns true if an entity with the given component signature
	// matches the filter.
	Matches(signature types.ComponentSet) bool
}
