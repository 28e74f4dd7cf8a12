package component

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32"

	"github.com/lixenwraith/winparam/core"
	"github.com/lixenwraith/winparam/parameter"
)

// WindowRef identifies either the primary window or a specific window entity
// Comparable with ==
type WindowRef struct {
	entity  core.Entity
	primary bool
}

// PrimaryWindow references whichever window currently carries PrimaryWindowComponent
func PrimaryWindow() WindowRef {
	return WindowRef{primary: true}
}

// WindowEntity references a window by entity id
func WindowEntity(e core.Entity) WindowRef {
	return WindowRef{entity: e}
}

// IsPrimary reports whether the reference is the structural primary reference
func (r WindowRef) IsPrimary() bool {
	return r.primary
}

// Entity returns the referenced entity, false for the primary reference
func (r WindowRef) Entity() (core.Entity, bool) {
	return r.entity, !r.primary
}

func (r WindowRef) String() string {
	if r.primary {
		return "Primary"
	}
	return fmt.Sprintf("Entity(%s)", r.entity)
}

// WindowComponent is the per-window state owned by the windowing backend
// Cursor is in window-local logical pixels, origin top-left, +Y down
type WindowComponent struct {
	Title string

	PhysicalWidth  uint32
	PhysicalHeight uint32

	// Scale is the physical/logical ratio, 0 means parameter.DefaultScaleFactor
	Scale float64

	cursor    math32.Vector2
	hasCursor bool
}

// NewWindow creates a window with a logical resolution at the given scale factor
func NewWindow(title string, width, height float32, scale float64) WindowComponent {
	w := WindowComponent{Title: title, Scale: scale}
	w.SetResolution(width, height)
	return w
}

// ScaleFactor returns the physical/logical ratio
func (w WindowComponent) ScaleFactor() float64 {
	if w.Scale <= 0 {
		return parameter.DefaultScaleFactor
	}
	return w.Scale
}

// Width returns the logical width
func (w WindowComponent) Width() float32 {
	return float32(float64(w.PhysicalWidth) / w.ScaleFactor())
}

// Height returns the logical height
func (w WindowComponent) Height() float32 {
	return float32(float64(w.PhysicalHeight) / w.ScaleFactor())
}

// Resolution returns the logical size
func (w WindowComponent) Resolution() math32.Vector2 {
	return math32.Vec2(w.Width(), w.Height())
}

// PhysicalResolution returns the size in physical pixels
func (w WindowComponent) PhysicalResolution() math32.Vector2 {
	return math32.Vec2(float32(w.PhysicalWidth), float32(w.PhysicalHeight))
}

// SetResolution sets the logical size, physical size follows the scale factor
func (w *WindowComponent) SetResolution(width, height float32) {
	scale := w.ScaleFactor()
	w.PhysicalWidth = uint32(math.Round(float64(width) * scale))
	w.PhysicalHeight = uint32(math.Round(float64(height) * scale))
}

// SetPhysicalResolution sets the size in physical pixels
func (w *WindowComponent) SetPhysicalResolution(width, height uint32) {
	w.PhysicalWidth = width
	w.PhysicalHeight = height
}

// CursorPosition returns the cursor in logical pixels, false when the pointer is outside the window
func (w WindowComponent) CursorPosition() (math32.Vector2, bool) {
	return w.cursor, w.hasCursor
}

// SetCursorPosition records the cursor in logical pixels
func (w *WindowComponent) SetCursorPosition(pos math32.Vector2) {
	w.cursor = pos
	w.hasCursor = true
}

// ClearCursor marks the pointer as outside the window
func (w *WindowComponent) ClearCursor() {
	w.cursor = math32.Vector2{}
	w.hasCursor = false
}

// PrimaryWindowComponent marks the application's main window, expected on at most one entity
type PrimaryWindowComponent struct{}
