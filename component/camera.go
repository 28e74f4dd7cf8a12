package component

import (
	"cogentcore.org/core/math32"

	"github.com/lixenwraith/winparam/vmath"
)

// RenderTargetKind distinguishes window targets from off-screen ones
type RenderTargetKind uint8

const (
	RenderTargetWindow RenderTargetKind = iota
	RenderTargetImage                   // Off-screen texture, never resolves a cursor
)

// RenderTarget is what a camera draws into
type RenderTarget struct {
	Kind   RenderTargetKind
	Window WindowRef // Valid for RenderTargetWindow
	Image  string    // Texture name for RenderTargetImage
}

// WindowTarget renders into a window
func WindowTarget(ref WindowRef) RenderTarget {
	return RenderTarget{Kind: RenderTargetWindow, Window: ref}
}

// ImageTarget renders into a named off-screen image
func ImageTarget(name string) RenderTarget {
	return RenderTarget{Kind: RenderTargetImage, Image: name}
}

// WindowRef returns the target window, false for non-window targets
func (t RenderTarget) WindowRef() (WindowRef, bool) {
	if t.Kind != RenderTargetWindow {
		return WindowRef{}, false
	}
	return t.Window, true
}

// Viewport is a sub-rectangle of the render target in physical pixels
type Viewport struct {
	PhysicalPosition math32.Vector2
	PhysicalSize     math32.Vector2
}

// TargetInfo is the render target state copied by the camera target system
type TargetInfo struct {
	PhysicalSize math32.Vector2
	ScaleFactor  float64
}

// CameraComponent projects between a render target and the world
type CameraComponent struct {
	Target     RenderTarget
	Projection vmath.Projection

	// Viewport restricts rendering to a sub-rectangle, zero size means the whole target
	Viewport Viewport

	// Computed is owned by the camera target system
	Computed      TargetInfo
	ComputedValid bool
}

// NewCamera2D creates an orthographic camera rendering into target
func NewCamera2D(target RenderTarget) CameraComponent {
	return CameraComponent{Target: target, Projection: vmath.OrthographicProjection()}
}

// NewCamera3D creates a perspective camera rendering into target
func NewCamera3D(target RenderTarget) CameraComponent {
	return CameraComponent{Target: target, Projection: vmath.PerspectiveProjection()}
}

// LogicalViewportRect returns the viewport origin and size in logical pixels of the target
func (c CameraComponent) LogicalViewportRect() (math32.Vector2, math32.Vector2, bool) {
	if !c.ComputedValid || c.Computed.ScaleFactor <= 0 {
		return math32.Vector2{}, math32.Vector2{}, false
	}
	s := float32(c.Computed.ScaleFactor)

	pos := math32.Vector2{}
	size := c.Computed.PhysicalSize
	if c.Viewport.PhysicalSize.X > 0 && c.Viewport.PhysicalSize.Y > 0 {
		pos = c.Viewport.PhysicalPosition
		size = c.Viewport.PhysicalSize
	}
	if size.X <= 0 || size.Y <= 0 {
		return math32.Vector2{}, math32.Vector2{}, false
	}
	return math32.Vec2(pos.X/s, pos.Y/s), math32.Vec2(size.X/s, size.Y/s), true
}

// ViewportToWorld casts a ray from a window-local logical position through this camera
// Fails when target info is missing, the position is outside the viewport, or the projection is degenerate
func (c CameraComponent) ViewportToWorld(transform GlobalTransformComponent, pos math32.Vector2) (math32.Ray, bool) {
	origin, size, ok := c.LogicalViewportRect()
	if !ok {
		return math32.Ray{}, false
	}
	local := math32.Vec2(pos.X-origin.X, pos.Y-origin.Y)
	if local.X < 0 || local.Y < 0 || local.X > size.X || local.Y > size.Y {
		return math32.Ray{}, false
	}
	return vmath.ViewportToWorld(c.Projection, &transform.Matrix, size, local)
}

// UICameraConfigComponent controls UI rendering for a camera, absent means UI is shown
type UICameraConfigComponent struct {
	ShowUI bool
}
