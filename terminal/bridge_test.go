package terminal

import (
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/winparam/component"
	"github.com/lixenwraith/winparam/cursor"
	"github.com/lixenwraith/winparam/engine"
	"github.com/lixenwraith/winparam/input"
	"github.com/lixenwraith/winparam/system"
)

func newTestBridge(t *testing.T, opts ...Option) (*engine.World, *Bridge) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	world := engine.NewWorld()
	b := NewBridge(world, screen, opts...)
	world.AddSystem(b)
	system.RegisterDefaults(world)
	return world, b
}

func TestBridge_WindowSizedFromScreen(t *testing.T) {
	world, b := newTestBridge(t, WithPrimary())

	win, ok := world.Components.Window.Get(b.Window())
	require.True(t, ok)
	assert.Equal(t, math32.Vec2(640, 384), win.Resolution())
	assert.True(t, world.Components.PrimaryWindow.Has(b.Window()))
	assert.Equal(t, component.PrimaryWindow(), b.Ref())
}

func TestBridge_ScaleFactor(t *testing.T) {
	world, b := newTestBridge(t, WithScaleFactor(2))

	win, _ := world.Components.Window.Get(b.Window())
	assert.Equal(t, math32.Vec2(640, 384), win.PhysicalResolution())
	assert.Equal(t, math32.Vec2(320, 192), win.Resolution())
	assert.Equal(t, component.WindowEntity(b.Window()), b.Ref())

	b.Push(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	world.Update(time.Millisecond)

	pos, ok := cursor.FromWorld(world).RawCursorPosition()
	require.True(t, ok)
	assert.Equal(t, math32.Vec2(42, 44), pos.Position())
}

func TestBridge_MouseMovesCursor(t *testing.T) {
	world, b := newTestBridge(t, WithPrimary())

	require.True(t, b.Push(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone)))

	// Queued events apply only on update
	_, ok := cursor.FromWorld(world).RawCursorPosition()
	assert.False(t, ok)

	world.Update(16 * time.Millisecond)

	pos, ok := cursor.FromWorld(world).RawCursorPosition()
	require.True(t, ok)
	assert.Equal(t, component.PrimaryWindow(), pos.Window())
	assert.Equal(t, math32.Vec2(84, 88), pos.Position())
	assert.Equal(t, MouseActionMove, b.LastAction())
}

func TestBridge_IgnoresOtherEvents(t *testing.T) {
	_, b := newTestBridge(t)
	assert.False(t, b.Push(tcell.NewEventInterrupt(nil)))
}

func TestBridge_ResizeAndCellSize(t *testing.T) {
	world, b := newTestBridge(t, WithCellSize(10, 20))

	b.Push(tcell.NewEventResize(100, 30))
	world.Update(time.Millisecond)

	res, ok := cursor.FromWorld(world).Resolution(b.Ref())
	require.True(t, ok)
	assert.Equal(t, math32.Vec2(1000, 600), res)
}

func TestBridge_ShrinkDropsCursorOutsideWindow(t *testing.T) {
	world, b := newTestBridge(t, WithPrimary())
	resolver := cursor.FromWorld(world)

	b.Push(tcell.NewEventMouse(70, 20, tcell.ButtonNone, tcell.ModNone))
	b.Push(tcell.NewEventResize(10, 5))
	world.Update(time.Millisecond)

	res, _ := resolver.Resolution(b.Ref())
	assert.Equal(t, math32.Vec2(80, 80), res)
	_, ok := resolver.RawCursorPosition()
	assert.False(t, ok, "cursor at (564,328) lies outside an 80x80 window")
	_, ok = resolver.UICursorPosition()
	assert.False(t, ok)

	// A shrink that still contains the cursor keeps it
	b.Push(tcell.NewEventResize(80, 24))
	b.Push(tcell.NewEventMouse(2, 2, tcell.ButtonNone, tcell.ModNone))
	b.Push(tcell.NewEventResize(40, 12))
	world.Update(time.Millisecond)

	pos, ok := resolver.RawCursorPosition()
	require.True(t, ok)
	assert.Equal(t, math32.Vec2(20, 40), pos.Position())
}

func TestBridge_FocusLossClearsCursor(t *testing.T) {
	world, b := newTestBridge(t)

	b.Push(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))
	b.Push(tcell.NewEventFocus(false))
	world.Update(time.Millisecond)

	win, _ := world.Components.Window.Get(b.Window())
	_, ok := win.CursorPosition()
	assert.False(t, ok)
}

func TestBridge_TouchEmulation(t *testing.T) {
	world, b := newTestBridge(t, WithPrimary(), WithTouchEmulation())
	touches := engine.MustGetResource[*input.Touches](world.Resources)

	b.Push(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	world.Update(time.Millisecond)

	assert.Equal(t, MouseActionPress, b.LastAction())
	pos, ok := touches.FirstPressedPosition()
	require.True(t, ok)
	assert.Equal(t, math32.Vec2(4, 8), pos)

	b.Push(tcell.NewEventMouse(2, 0, tcell.Button1, tcell.ModNone))
	world.Update(time.Millisecond)
	assert.Equal(t, MouseActionDrag, b.LastAction())
	touch, _ := touches.Get(TouchID)
	assert.Equal(t, math32.Vec2(20, 8), touch.Position)

	b.Push(tcell.NewEventMouse(2, 0, tcell.ButtonNone, tcell.ModNone))
	world.Update(time.Millisecond)
	assert.Equal(t, MouseActionRelease, b.LastAction())
	_, ok = touches.FirstPressedPosition()
	assert.False(t, ok)
}

func TestBridge_FocusLossCancelsTouch(t *testing.T) {
	world, b := newTestBridge(t, WithTouchEmulation())
	touches := engine.MustGetResource[*input.Touches](world.Resources)

	b.Push(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	b.Push(tcell.NewEventFocus(false))
	b.Push(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	// Apply without the touch frame system so this frame's transitions stay visible
	b.Update()

	assert.True(t, touches.JustCanceled(TouchID))
	assert.Equal(t, MouseActionPress, b.LastAction(), "button state resets with focus")
}

func TestBridge_TouchFallbackWhenCursorCleared(t *testing.T) {
	world, b := newTestBridge(t, WithPrimary(), WithTouchEmulation())

	b.Push(tcell.NewEventMouse(3, 3, tcell.Button1, tcell.ModNone))
	world.Update(time.Millisecond)
	world.Components.Window.Update(b.Window(), func(w *component.WindowComponent) { w.ClearCursor() })

	pos, ok := cursor.FromWorld(world).RawCursorPosition()
	require.True(t, ok)
	assert.Equal(t, math32.Vec2(28, 56), pos.Position())
}

func TestClassifyMouse(t *testing.T) {
	cases := []struct {
		wasDown bool
		buttons tcell.ButtonMask
		want    MouseAction
	}{
		{false, tcell.ButtonNone, MouseActionMove},
		{false, tcell.Button1, MouseActionPress},
		{true, tcell.Button1, MouseActionDrag},
		{true, tcell.ButtonNone, MouseActionRelease},
		{false, tcell.WheelUp, MouseActionMove},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyMouse(tc.wasDown, tc.buttons), "wasDown=%v buttons=%v", tc.wasDown, tc.buttons)
	}
}
