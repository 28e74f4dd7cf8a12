package engine

import (
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/winparam/core"
	"github.com/lixenwraith/winparam/input"
)

// System is an interface that all systems must implement
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Global resources (Time, Touches)
	Resources *ResourceStore

	// Cached typed stores for the built-in components
	Components ComponentStore

	stores     map[reflect.Type]AnyStore
	storeOrder []AnyStore

	time *TimeResource

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with the core resources registered
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		stores:       make(map[reflect.Type]AnyStore),
		time:         &TimeResource{},
		systems:      make([]System, 0),
	}

	w.Components = GetComponentStore(w)
	AddResource(w.Resources, w.time)
	AddResource(w.Resources, input.NewTouches())

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores() {
		store.Remove(e)
	}
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.mu.Unlock()

	for _, store := range w.allStores() {
		store.Clear()
	}
}

func (w *World) allStores() []AnyStore {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]AnyStore, len(w.storeOrder))
	copy(result, w.storeOrder)
	return result
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N, stable for equal priorities)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
// Hosts mutate windows, cameras and touches inside RunSafe so queries never observe a half-written frame
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update advances frame time and runs all systems sequentially
func (w *World) Update(dt time.Duration) {
	w.RunSafe(func() {
		w.UpdateLocked(dt)
	})
}

// UpdateLocked runs all systems assuming the caller already holds updateMutex
func (w *World) UpdateLocked(dt time.Duration) {
	w.time.Advance(dt)

	for _, system := range w.Systems() {
		system.Update()
	}
}

// FrameNumber returns the number of completed Update calls
func (w *World) FrameNumber() int64 {
	return w.time.FrameNumber
}
