package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/winparam/core"
)

type mockComponent struct {
	Value int
}

func TestStore_SetGetRemove(t *testing.T) {
	s := NewStore[mockComponent]()

	s.Set(1, mockComponent{Value: 10})
	s.Set(2, mockComponent{Value: 20})

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, 10, got.Value)

	// Update keeps a single entry
	s.Set(1, mockComponent{Value: 11})
	assert.Equal(t, 2, s.Count())

	s.Remove(1)
	assert.False(t, s.Has(1))
	_, ok = s.Get(1)
	assert.False(t, ok)

	// Removing a missing entity is a no-op
	s.Remove(99)
	assert.Equal(t, 1, s.Count())
}

func TestStore_OrderPreservedOnRemove(t *testing.T) {
	s := NewStore[mockComponent]()
	for e := core.Entity(1); e <= 5; e++ {
		s.Set(e, mockComponent{Value: int(e)})
	}

	s.Remove(2)
	s.Set(3, mockComponent{Value: 33}) // update does not move
	s.Set(6, mockComponent{Value: 6})

	assert.Equal(t, []core.Entity{1, 3, 4, 5, 6}, s.All())

	// Re-inserting goes to the end
	s.Set(2, mockComponent{})
	assert.Equal(t, []core.Entity{1, 3, 4, 5, 6, 2}, s.All())
}

func TestStore_Update(t *testing.T) {
	s := NewStore[mockComponent]()
	s.Set(1, mockComponent{Value: 1})

	require.True(t, s.Update(1, func(c *mockComponent) { c.Value++ }))
	got, _ := s.Get(1)
	assert.Equal(t, 2, got.Value)

	assert.False(t, s.Update(2, func(c *mockComponent) { c.Value++ }))
	assert.False(t, s.Has(2), "Update must not insert")
}

func TestStore_AllIsSnapshot(t *testing.T) {
	s := NewStore[mockComponent]()
	s.Set(1, mockComponent{})

	all := s.All()
	all[0] = 99
	assert.True(t, s.Has(1))
	assert.Equal(t, []core.Entity{1}, s.All())
}

func TestStore_Clear(t *testing.T) {
	s := NewStore[mockComponent]()
	s.Set(1, mockComponent{})
	s.Set(2, mockComponent{})
	s.Clear()

	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.All())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore[mockComponent]()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				e := core.Entity(base*1000 + j + 1)
				s.Set(e, mockComponent{Value: j})
				s.Get(e)
				s.All()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 800, s.Count())
}
