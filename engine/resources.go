package engine

import (
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/winparam/input"
)

// ResourceStore is a thread-safe container for global resources
// It allows systems to access shared data (Time, Touches) without
// coupling to the host that owns them
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or updates a resource in the store
// T should be the pointer type of the resource struct so systems can mutate it in place
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	t := reflect.TypeOf(resource)
	rs.resources[t] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	t := reflect.TypeFor[T]()
	val, ok := rs.resources[t]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Useful for core resources (Time, Touches) that must exist
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("Required resource not found: " + reflect.TypeFor[T]().String())
	}
	return res
}

// --- Core Resources ---

// TimeResource wraps frame timing for systems
// It is updated by World.Update at the start of a frame
type TimeResource struct {
	// DeltaTime is the duration passed to the last update
	DeltaTime time.Duration

	// Elapsed is the sum of all deltas
	Elapsed time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Advance modifies TimeResource fields in-place (zero allocation)
// Must be called under world lock to prevent races with system reads
func (tr *TimeResource) Advance(dt time.Duration) {
	tr.DeltaTime = dt
	tr.Elapsed += dt
	tr.FrameNumber++
}

// CoreResources provides cached pointers to singleton resources
// Initialized once per system to eliminate runtime map lookups
type CoreResources struct {
	Time    *TimeResource
	Touches *input.Touches
}

// GetCoreResources populates CoreResources from the world's resource store
// Call once during system construction; pointers remain valid for application lifetime
func GetCoreResources(w *World) CoreResources {
	return CoreResources{
		Time:    MustGetResource[*TimeResource](w.Resources),
		Touches: MustGetResource[*input.Touches](w.Resources),
	}
}
