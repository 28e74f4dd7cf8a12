// Package cursor resolves the pointer position across windows and cameras.
//
// Every query recomputes from the current component state and is read-only.
// Ties between several qualifying windows or cameras go to the first one in
// store iteration order, which is insertion order.
package cursor

import (
	"iter"
	"log/slog"

	"cogentcore.org/core/math32"

	"github.com/lixenwraith/winparam/component"
	"github.com/lixenwraith/winparam/core"
	"github.com/lixenwraith/winparam/engine"
	"github.com/lixenwraith/winparam/input"
)

// TouchSource is the part of the touch history cursor queries fall back on
type TouchSource interface {
	FirstPressedPosition() (math32.Vector2, bool)
}

// Views are the read-only handles the resolver queries
// Nil views behave as empty; a nil UICameras view shows UI on every camera
type Views struct {
	Windows    engine.View[component.WindowComponent]
	Primary    engine.View[component.PrimaryWindowComponent]
	Cameras    engine.View[component.CameraComponent]
	UICameras  engine.View[component.UICameraConfigComponent]
	Transforms engine.View[component.GlobalTransformComponent]
	Touches    TouchSource
}

// Windows answers cursor queries over the injected views
type Windows struct {
	views  Views
	logger *slog.Logger
}

// New creates a resolver over explicit views
func New(views Views) *Windows {
	return &Windows{views: views, logger: slog.Default()}
}

// FromWorld creates a resolver over a world's component stores and touch resource
func FromWorld(w *engine.World) *Windows {
	views := Views{
		Windows:    w.Components.Window,
		Primary:    w.Components.PrimaryWindow,
		Cameras:    w.Components.Camera,
		UICameras:  w.Components.UICamera,
		Transforms: w.Components.Transform,
	}
	if touches, ok := engine.GetResource[*input.Touches](w.Resources); ok {
		views.Touches = touches
	}
	return New(views)
}

// WithLogger replaces the debug logger
func (w *Windows) WithLogger(l *slog.Logger) *Windows {
	w.logger = l
	return w
}

// All iterates windows in store order
func (w *Windows) All() iter.Seq2[core.Entity, component.WindowComponent] {
	return func(yield func(core.Entity, component.WindowComponent) bool) {
		if w.views.Windows == nil {
			return
		}
		for _, e := range w.views.Windows.All() {
			win, ok := w.views.Windows.Get(e)
			if !ok {
				continue
			}
			if !yield(e, win) {
				return
			}
		}
	}
}

// GetWindow resolves a window reference
// The primary reference succeeds only when exactly one window carries the primary marker
func (w *Windows) GetWindow(ref component.WindowRef) (component.WindowComponent, bool) {
	if w.views.Windows == nil {
		return component.WindowComponent{}, false
	}
	if e, ok := ref.Entity(); ok {
		return w.views.Windows.Get(e)
	}
	e, ok := w.primaryEntity()
	if !ok {
		return component.WindowComponent{}, false
	}
	return w.views.Windows.Get(e)
}

func (w *Windows) primaryEntity() (core.Entity, bool) {
	if w.views.Primary == nil {
		return 0, false
	}
	var found core.Entity
	count := 0
	for _, e := range w.views.Primary.All() {
		if !w.views.Windows.Has(e) {
			continue
		}
		found = e
		count++
	}
	if count > 1 {
		w.logger.Debug("ambiguous primary window", "count", count)
		return 0, false
	}
	return found, count == 1
}

// ScaleFactor returns the physical/logical ratio of a window
func (w *Windows) ScaleFactor(ref component.WindowRef) (float64, bool) {
	win, ok := w.GetWindow(ref)
	if !ok {
		return 0, false
	}
	return win.ScaleFactor(), true
}

// PhysicalResolution returns a window's size in physical pixels
func (w *Windows) PhysicalResolution(ref component.WindowRef) (math32.Vector2, bool) {
	win, ok := w.GetWindow(ref)
	if !ok {
		return math32.Vector2{}, false
	}
	return win.PhysicalResolution(), true
}

// Resolution returns a window's logical size
func (w *Windows) Resolution(ref component.WindowRef) (math32.Vector2, bool) {
	win, ok := w.GetWindow(ref)
	if !ok {
		return math32.Vector2{}, false
	}
	return win.Resolution(), true
}

// RawCursorPosition returns the cursor in window-local pixels of the first hovered window
// Falls back to the first pressed touch, reported on the primary window
func (w *Windows) RawCursorPosition() (CursorPosition, bool) {
	for e, win := range w.All() {
		pos, ok := win.CursorPosition()
		if !ok {
			continue
		}
		ref := component.WindowEntity(e)
		if w.views.Primary != nil && w.views.Primary.Has(e) {
			ref = component.PrimaryWindow()
		}
		return NewCursorPosition(ref, pos), true
	}
	return w.touchPosition()
}

// UICursorPosition returns the cursor in UI space of the first UI camera's hovered window
// UI space flips y against the window's logical height
func (w *Windows) UICursorPosition() (CursorPosition, bool) {
	found, ok := w.uiCameraCursor()
	if !ok {
		found, ok = w.touchPosition()
	}
	if !ok {
		return CursorPosition{}, false
	}

	size, ok := w.Resolution(found.window)
	if !ok {
		return CursorPosition{}, false
	}
	pos := found.position
	pos.Y = size.Y - pos.Y
	return NewCursorPosition(found.window, pos), true
}

func (w *Windows) uiCameraCursor() (CursorPosition, bool) {
	for e, cam := range w.cameras() {
		if w.views.UICameras != nil {
			if cfg, ok := w.views.UICameras.Get(e); ok && !cfg.ShowUI {
				continue
			}
		}
		ref, ok := cam.Target.WindowRef()
		if !ok {
			continue
		}
		win, ok := w.GetWindow(ref)
		if !ok {
			continue
		}
		if pos, ok := win.CursorPosition(); ok {
			return NewCursorPosition(ref, pos), true
		}
	}
	return CursorPosition{}, false
}

// WorldCursorPosition projects the cursor through the first camera whose window is hovered
// and whose projection succeeds; the ray origin is truncated to 2D
// There is no touch fallback here
func (w *Windows) WorldCursorPosition() (math32.Vector2, bool) {
	for e, cam := range w.cameras() {
		ref, ok := cam.Target.WindowRef()
		if !ok {
			continue
		}
		win, ok := w.GetWindow(ref)
		if !ok {
			continue
		}
		pos, ok := win.CursorPosition()
		if !ok {
			continue
		}
		transform, _ := w.views.Transforms.Get(e)
		ray, ok := cam.ViewportToWorld(transform, pos)
		if !ok {
			w.logger.Debug("camera projection failed", "camera", e, "window", ref)
			continue
		}
		return math32.Vec2(ray.Origin.X, ray.Origin.Y), true
	}
	return math32.Vector2{}, false
}

// cameras iterates cameras that also carry a global transform, in camera store order
func (w *Windows) cameras() iter.Seq2[core.Entity, component.CameraComponent] {
	return func(yield func(core.Entity, component.CameraComponent) bool) {
		if w.views.Cameras == nil || w.views.Transforms == nil {
			return
		}
		for _, e := range w.views.Cameras.All() {
			if !w.views.Transforms.Has(e) {
				continue
			}
			cam, ok := w.views.Cameras.Get(e)
			if !ok {
				continue
			}
			if !yield(e, cam) {
				return
			}
		}
	}
}

func (w *Windows) touchPosition() (CursorPosition, bool) {
	if w.views.Touches == nil {
		return CursorPosition{}, false
	}
	pos, ok := w.views.Touches.FirstPressedPosition()
	if !ok {
		return CursorPosition{}, false
	}
	return NewCursorPosition(component.PrimaryWindow(), pos), true
}
