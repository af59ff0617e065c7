package loom

import "github.com/emberworks/loom/types"

// EntityName is a built-in component holding an entity's human-readable name.
// It participates in searches like any other component.
type EntityName struct {
	Value string `json:"value"`
}

func (EntityName) Name() string {
	return "EntityName"
}

// EntityBuilder attaches components to a freshly created entity with a fluent
// chain:
//
//	e := loom.With(loom.With(loom.NewEntity(w), Position{}), Velocity{}).Entity()
//
// The entity exists from the first call; the builder is just sugar over
// SetComponent.
type EntityBuilder struct {
	w      World
	entity types.Entity
}

// NewEntity creates an entity and returns a builder for it.
func NewEntity(w World) *EntityBuilder {
	return &EntityBuilder{w: w, entity: w.CreateEntity()}
}

// NewEntityNamed creates an entity carrying an EntityName component.
func NewEntityNamed(w World, name string) *EntityBuilder {
	b := NewEntity(w)
	return With(b, EntityName{Value: name})
}

// With attaches a component to the entity under construction. Registration
// errors are surfaced through the world's logger rather than breaking the
// chain.
func With[T types.Component](b *EntityBuilder, value T) *EntityBuilder {
	if err := SetComponent(b.w, b.entity, value); err != nil {
		b.w.Logger().Err(err).
			Int("entity_id", int(b.entity.ID)).
			Msg("failed to attach component to entity")
	}
	return b
}

// Entity returns the built entity handle.
func (b *EntityBuilder) Entity() types.Entity {
	return b.entity
}

// CreateEntityNamed creates an entity with an EntityName component in one
// call.
func CreateEntityNamed(w World, name string) types.Entity {
	return NewEntityNamed(w, name).Entity()
}

// EntityNameOf returns the entity's name, if it has one.
func EntityNameOf(w World, e types.Entity) (string, bool) {
	name, ok := GetComponent[EntityName](w, e)
	if !ok {
		return "", false
	}
	return name.Value, true
}
