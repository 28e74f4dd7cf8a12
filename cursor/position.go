package cursor

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/lixenwraith/winparam/component"
)

// CursorPosition is a pointer location tagged with the window it was found in
// It is a plain value: the window may close or resize after the query returns
type CursorPosition struct {
	window   component.WindowRef
	position math32.Vector2
}

// NewCursorPosition pairs a window reference with a position
func NewCursorPosition(window component.WindowRef, position math32.Vector2) CursorPosition {
	return CursorPosition{window: window, position: position}
}

// Window returns the window the cursor is positioned above
func (c CursorPosition) Window() component.WindowRef {
	return c.window
}

// Position returns the cursor's position
func (c CursorPosition) Position() math32.Vector2 {
	return c.position
}

// Vec2 converts to a bare coordinate, dropping the window tag
func (c CursorPosition) Vec2() math32.Vector2 {
	return c.position
}

func (c CursorPosition) X() float32 { return c.position.X }
func (c CursorPosition) Y() float32 { return c.position.Y }

func (c CursorPosition) String() string {
	if c.window.IsPrimary() {
		return fmt.Sprintf("cursor position: %v,%v (Primary Window)", c.position.X, c.position.Y)
	}
	e, _ := c.window.Entity()
	return fmt.Sprintf("cursor_position: %v,%v (Window: %s)", c.position.X, c.position.Y, e)
}
