package scene

import (
	"log/slog"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/lixenwraith/winparam/component"
	"github.com/lixenwraith/winparam/core"
	"github.com/lixenwraith/winparam/engine"
	"github.com/lixenwraith/winparam/input"
	"github.com/lixenwraith/winparam/parameter"
)

// Spawned maps scene names to the entities created for them
type Spawned struct {
	Windows map[string]core.Entity
	Cameras []core.Entity
}

// Spawn creates the scene's windows and cameras in declaration order and presses its touches
// The world is not cleared first; use Replace to swap scenes
func (s *Scene) Spawn(world *engine.World, logger *slog.Logger) (Spawned, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := s.Validate(); err != nil {
		return Spawned{}, err
	}

	c := world.Components
	out := Spawned{
		Windows: make(map[string]core.Entity, len(s.Windows)),
		Cameras: make([]core.Entity, 0, len(s.Cameras)),
	}

	for _, def := range s.Windows {
		width, height := def.Width, def.Height
		if width == 0 && height == 0 {
			width, height = parameter.DefaultWindowWidth, parameter.DefaultWindowHeight
		}
		title := def.Title
		if title == "" {
			title = def.Name
		}
		win := component.NewWindow(title, width, height, def.Scale)
		if len(def.Cursor) == 2 {
			win.SetCursorPosition(math32.Vec2(def.Cursor[0], def.Cursor[1]))
		}

		b := engine.With(world.NewEntity(), c.Window, win)
		if def.Primary {
			engine.With(b, c.PrimaryWindow, component.PrimaryWindowComponent{})
		}
		e := b.Build()
		out.Windows[def.Name] = e
		logger.Debug("scene window spawned", "name", def.Name, "entity", e, "primary", def.Primary)
	}

	for _, def := range s.Cameras {
		cam := newCamera(def, out.Windows)

		transform := component.IdentityTransform()
		if len(def.Translation) == 3 {
			transform = component.TransformFromTranslation(math32.Vec3(def.Translation[0], def.Translation[1], def.Translation[2]))
		}

		b := engine.With(world.NewEntity(), c.Camera, cam)
		engine.With(b, c.Transform, transform)
		if def.ShowUI != nil {
			engine.With(b, c.UICamera, component.UICameraConfigComponent{ShowUI: *def.ShowUI})
		}
		e := b.Build()
		out.Cameras = append(out.Cameras, e)
		logger.Debug("scene camera spawned", "name", def.Name, "entity", e, "target", def.Target)
	}

	touches := engine.MustGetResource[*input.Touches](world.Resources)
	for _, t := range s.Touches {
		touches.Press(t.ID, math32.Vec2(t.X, t.Y))
	}

	return out, nil
}

// Replace clears the world and touch history, then spawns the scene
// Registered systems are kept
func (s *Scene) Replace(world *engine.World, logger *slog.Logger) (Spawned, error) {
	if err := s.Validate(); err != nil {
		return Spawned{}, err
	}
	world.Clear()
	engine.MustGetResource[*input.Touches](world.Resources).Reset()
	return s.Spawn(world, logger)
}

func newCamera(def Camera, windows map[string]core.Entity) component.CameraComponent {
	var target component.RenderTarget
	switch {
	case def.Target == "" || def.Target == TargetPrimary:
		target = component.WindowTarget(component.PrimaryWindow())
	case strings.HasPrefix(def.Target, TargetImagePrefix):
		target = component.ImageTarget(strings.TrimPrefix(def.Target, TargetImagePrefix))
	default:
		target = component.WindowTarget(component.WindowEntity(windows[def.Target]))
	}

	var cam component.CameraComponent
	if def.Projection == ProjectionPerspective {
		cam = component.NewCamera3D(target)
	} else {
		cam = component.NewCamera2D(target)
	}
	if def.Scale > 0 {
		cam.Projection.Scale = def.Scale
	}
	if def.Viewport != nil {
		cam.Viewport = component.Viewport{
			PhysicalPosition: math32.Vec2(def.Viewport.X, def.Viewport.Y),
			PhysicalSize:     math32.Vec2(def.Viewport.Width, def.Viewport.Height),
		}
	}
	return cam
}
