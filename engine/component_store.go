package engine

import (
	"reflect"

	"github.com/lixenwraith/winparam/component"
)

// ComponentStore provides cached pointer to typed component store
// Initialized once per world to eliminate runtime map lookup
type ComponentStore struct {
	// Windowing
	Window        *Store[component.WindowComponent]
	PrimaryWindow *Store[component.PrimaryWindowComponent]

	// Scene
	Camera    *Store[component.CameraComponent]
	UICamera  *Store[component.UICameraConfigComponent]
	Transform *Store[component.GlobalTransformComponent]
}

// GetComponentStore populates ComponentStore from world
// Call once during world construction; pointers remain valid for application lifetime
func GetComponentStore(w *World) ComponentStore {
	return ComponentStore{
		Window:        GetStore[component.WindowComponent](w),
		PrimaryWindow: GetStore[component.PrimaryWindowComponent](w),

		Camera:    GetStore[component.CameraComponent](w),
		UICamera:  GetStore[component.UICameraConfigComponent](w),
		Transform: GetStore[component.GlobalTransformComponent](w),
	}
}

// GetStore returns the world's store for component type T, creating it on first use
func GetStore[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()

	w.mu.Lock()
	defer w.mu.Unlock()

	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	w.stores[t] = s
	w.storeOrder = append(w.storeOrder, s)
	return s
}
