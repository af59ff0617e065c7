package loom

import (
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/emberworks/loom/gamestate"
	"github.com/emberworks/loom/types"
)

// SetSingleton registers or replaces the world-wide instance of T. Singletons
// live outside the entity tables; they never match searches and are not
// attached to any entity.
func SetSingleton[T types.Component](w World, value T) error {
	md, err := resolveComponent[T](w, true)
	if err != nil {
		if _, isNull := w.(*nullWorld); isNull {
			return nil
		}
		return eris.Wrap(err, "failed to resolve component for singleton")
	}
	w.setSingleton(md, value)
	return nil
}

// GetSingleton returns the world-wide instance of T. Unlike the per-entity
// accessors, a missing singleton is an error: code asking for a singleton is
// asking for configuration that should have been installed at startup.
func GetSingleton[T types.Component](w World) (T, error) {
	var zero T
	md, err := resolveComponent[T](w, false)
	if err != nil {
		return zero, eris.Wrap(gamestate.ErrSingletonNotFound,
			fmt.Sprintf("no singleton registered for %q", zero.Name()))
	}
	raw, err := w.getSingleton(md)
	if err != nil {
		return zero, err
	}
	switch v := raw.(type) {
	case T:
		return v, nil
	case *T:
		return *v, nil
	default:
		return zero, eris.Errorf("singleton %q holds unexpected type %T", md.Name(), raw)
	}
}
