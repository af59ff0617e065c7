package loom

import (
	"github.com/rotisserie/eris"

	"github.com/emberworks/loom/component"
	"github.com/emberworks/loom/types"
)

// RegisterComponent registers the component type T with the world. It is
// optional for write paths (SetComponent registers on first use) but lets a
// caller pick up registration errors, set a default value, or pre-register
// types so searches can find them before any entity holds one.
func RegisterComponent[T types.Component](w World, opts ...component.Option[T]) error {
	md, err := component.NewComponentMetadata[T](opts...)
	if err != nil {
		return err
	}
	return w.registerComponent(md)
}

// resolveComponent looks up the metadata for T. When autoRegister is set an
// unregistered type is registered on the spot; read paths pass false so that
// reads of never-written types simply miss.
func resolveComponent[T types.Component](w World, autoRegister bool) (types.ComponentMetadata, error) {
	var t T
	md, err := w.componentByName(t.Name())
	if err == nil {
		return md, nil
	}
	if !autoRegister {
		return nil, err
	}
	if err := RegisterComponent[T](w); err != nil {
		return nil, err
	}
	md, err = w.componentByName(t.Name())
	if err != nil {
		// The null world accepts registrations without recording them.
		return nil, err
	}
	return md, nil
}

// componentValue extracts the stored value for md on e as a T.
func componentValue[T types.Component](w World, md types.ComponentMetadata, e types.Entity) (T, bool) {
	var zero T
	raw, ok := w.getComponent(md, e)
	if !ok {
		return zero, false
	}
	switch v := raw.(type) {
	case T:
		return v, true
	case *T:
		return *v, true
	default:
		return zero, false
	}
}

// SetComponent inserts or replaces the T component on the entity. The type is
// registered on first use; a registration failure (for example a schema clash
// with an already registered component of the same name) is the only error.
// Writes against dead or stale handles are silently dropped.
func SetComponent[T types.Component](w World, e types.Entity, value T) error {
	md, err := resolveComponent[T](w, true)
	if err != nil {
		if _, isNull := w.(*nullWorld); isNull {
			return nil
		}
		return eris.Wrap(err, "failed to resolve component for set")
	}
	if w.setComponent(md, e, value) {
		w.Logger().Debug().
			Int("entity_id", int(e.ID)).
			Str("component_name", md.Name()).
			Int("component_id", int(md.ID())).
			Msg("entity updated")
	}
	return nil
}

// GetComponent returns the T component of the entity. Dead entities, stale
// handles, and absent components all report a miss rather than an error.
func GetComponent[T types.Component](w World, e types.Entity) (T, bool) {
	var zero T
	md, err := resolveComponent[T](w, false)
	if err != nil {
		return zero, false
	}
	return componentValue[T](w, md, e)
}

// HasComponent reports whether the entity currently holds a T component.
func HasComponent[T types.Component](w World, e types.Entity) bool {
	md, err := resolveComponent[T](w, false)
	if err != nil {
		return false
	}
	return w.hasComponent(md, e)
}

// RemoveComponent detaches the T component from the entity, reporting whether
// anything was removed. Removing an absent component is a no-op.
func RemoveComponent[T types.Component](w World, e types.Entity) bool {
	md, err := resolveComponent[T](w, false)
	if err != nil {
		return false
	}
	return w.removeComponent(md, e)
}

// UpdateComponent reads the T component, applies fn, and writes the result
// back. It reports whether the update was applied; entities without the
// component are left untouched.
func UpdateComponent[T types.Component](w World, e types.Entity, fn func(*T) *T) bool {
	md, err := resolveComponent[T](w, false)
	if err != nil {
		return false
	}
	value, ok := componentValue[T](w, md, e)
	if !ok {
		return false
	}
	updated := fn(&value)
	if updated == nil {
		return false
	}
	return w.setComponent(md, e, *updated)
}
