package system

import (
	"log/slog"

	"github.com/lixenwraith/winparam/component"
	"github.com/lixenwraith/winparam/cursor"
	"github.com/lixenwraith/winparam/engine"
	"github.com/lixenwraith/winparam/parameter"
)

// CameraTargetSystem copies each window camera's target size and scale factor into CameraComponent.Computed
// Cameras whose window is gone, or whose primary reference is ambiguous, are invalidated
type CameraTargetSystem struct {
	world   *engine.World
	windows *cursor.Windows
	logger  *slog.Logger
}

// NewCameraTargetSystem creates the camera target system
func NewCameraTargetSystem(world *engine.World, logger *slog.Logger) *CameraTargetSystem {
	if logger == nil {
		logger = slog.Default()
	}
	s := &CameraTargetSystem{
		world:   world,
		windows: cursor.FromWorld(world).WithLogger(logger),
		logger:  logger,
	}
	return s
}

func (s *CameraTargetSystem) Name() string {
	return "camera_target"
}

func (s *CameraTargetSystem) Priority() int {
	return parameter.PriorityCameraTarget
}

func (s *CameraTargetSystem) Update() {
	cameras := s.world.Components.Camera
	for _, e := range s.world.Query().With(cameras).Execute() {
		cameras.Update(e, func(cam *component.CameraComponent) {
			ref, ok := cam.Target.WindowRef()
			if !ok {
				// Off-screen targets are sized by their owner
				return
			}
			win, ok := s.windows.GetWindow(ref)
			if !ok {
				if cam.ComputedValid {
					s.logger.Debug("camera target window unavailable", "camera", e, "window", ref)
				}
				cam.Computed = component.TargetInfo{}
				cam.ComputedValid = false
				return
			}
			cam.Computed = component.TargetInfo{
				PhysicalSize: win.PhysicalResolution(),
				ScaleFactor:  win.ScaleFactor(),
			}
			cam.ComputedValid = true
		})
	}
}
