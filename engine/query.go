package engine

import (
	"sort"

	"github.com/lixenwraith/winparam/core"
)

// QueryBuilder provides a fluent interface for querying entities based on component intersection.
// Results follow the iteration order of the first store passed to With(); the remaining filters
// are checked smallest store first to fail fast.
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	excluded []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder for finding entities with specific component combinations.
// Use With() and Without() to add component filters, then Execute() to get the results.
//
// Example:
//
//	cameras := world.Query().
//	    With(world.Components.Camera).
//	    With(world.Components.Transform).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter.
// The resulting query will only return entities that have components in ALL specified stores.
//
// Panics if called after Execute().
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Without excludes entities that have a component in the given store.
//
// Panics if called after Execute().
func (qb *QueryBuilder) Without(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.excluded = append(qb.excluded, store)
	return qb
}

// Execute runs the query and returns all entities matching every filter.
// Calling Execute() multiple times returns the cached result.
//
// Returns:
//   - Empty slice if no With() stores were specified
//   - Entities in the iteration order of the first With() store
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	candidates := qb.stores[0].All()

	filters := make([]QueryableStore, len(qb.stores)-1)
	copy(filters, qb.stores[1:])
	sort.Slice(filters, func(i, j int) bool {
		return filters[i].Count() < filters[j].Count()
	})

	// Reuse the snapshot's backing array
	filtered := candidates[:0]
	for _, e := range candidates {
		if qb.matches(e, filters) {
			filtered = append(filtered, e)
		}
	}

	qb.results = filtered
	return qb.results
}

func (qb *QueryBuilder) matches(e core.Entity, filters []QueryableStore) bool {
	for _, store := range filters {
		if !store.Has(e) {
			return false
		}
	}
	for _, store := range qb.excluded {
		if store.Has(e) {
			return false
		}
	}
	return true
}
