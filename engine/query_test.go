package engine

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/winparam/component"
	"github.com/lixenwraith/winparam/core"
)

// TestQueryBuilder verifies intersection and exclusion of query results
func TestQueryBuilder(t *testing.T) {
	w := NewWorld()
	c := w.Components

	// Window + primary
	e1 := w.CreateEntity()
	c.Window.Set(e1, component.NewWindow("main", 800, 600, 1))
	c.PrimaryWindow.Set(e1, component.PrimaryWindowComponent{})

	// Window only
	e2 := w.CreateEntity()
	c.Window.Set(e2, component.NewWindow("second", 400, 300, 1))

	// Primary marker only
	e3 := w.CreateEntity()
	c.PrimaryWindow.Set(e3, component.PrimaryWindowComponent{})

	results := w.Query().
		With(c.Window).
		With(c.PrimaryWindow).
		Execute()
	assert.Equal(t, []core.Entity{e1}, results)

	assert.Len(t, w.Query().With(c.Window).Execute(), 2)
	assert.Equal(t, []core.Entity{e2}, w.Query().With(c.Window).Without(c.PrimaryWindow).Execute())
	assert.Empty(t, w.Query().Execute())
}

// TestQueryBuilder_Order verifies results follow the first store's insertion order
// even when a later filter store is smaller
func TestQueryBuilder_Order(t *testing.T) {
	w := NewWorld()
	c := w.Components

	var cams []core.Entity
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		c.Camera.Set(e, component.NewCamera2D(component.WindowTarget(component.PrimaryWindow())))
		if i%2 == 0 {
			c.Transform.Set(e, component.TransformFromTranslation(math32.Vec3(float32(i), 0, 0)))
			cams = append(cams, e)
		}
	}

	assert.Equal(t, cams, w.Query().With(c.Camera).With(c.Transform).Execute())

	q := w.Query().With(c.Camera)
	assert.Equal(t, q.Execute(), q.Execute(), "re-execution returns the cached result")
}

// TestQueryBuilder_Panic verifies the builder is frozen after Execute
func TestQueryBuilder_Panic(t *testing.T) {
	w := NewWorld()

	q := w.Query()
	q.Execute()
	assert.Panics(t, func() { q.With(w.Components.Window) })

	q = w.Query().With(w.Components.Window)
	q.Execute()
	assert.Panics(t, func() { q.Without(w.Components.PrimaryWindow) })
}
