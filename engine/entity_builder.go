package engine

import "github.com/lixenwraith/winparam/core"

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components.
// It reserves an entity ID upfront and allows components to be added before the entity is
// handed out via Build().
//
// Example usage:
//
//	window := engine.With(
//	    engine.With(world.NewEntity(), world.Components.Window, win),
//	    world.Components.PrimaryWindow, component.PrimaryWindowComponent{},
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID.
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built.
// The store type must match the component type.
//
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Set(eb.entity, component)
	return eb
}

// Entity returns the reserved id without finishing the builder
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build finalizes entity construction and returns the entity ID.
// After calling Build(), no more components can be added to this builder.
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
