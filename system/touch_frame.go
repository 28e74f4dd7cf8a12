package system

import (
	"github.com/lixenwraith/winparam/engine"
	"github.com/lixenwraith/winparam/input"
	"github.com/lixenwraith/winparam/parameter"
)

// TouchFrameSystem clears the just-pressed/released/canceled touch sets at the end of a frame
type TouchFrameSystem struct {
	touches *input.Touches
}

// NewTouchFrameSystem creates the touch frame system
func NewTouchFrameSystem(world *engine.World) *TouchFrameSystem {
	return &TouchFrameSystem{
		touches: engine.GetCoreResources(world).Touches,
	}
}

func (s *TouchFrameSystem) Name() string {
	return "touch_frame"
}

func (s *TouchFrameSystem) Priority() int {
	return parameter.PriorityTouchFrame
}

func (s *TouchFrameSystem) Update() {
	s.touches.ClearJustChanged()
}

// RegisterDefaults adds the systems every host needs to keep cursor queries consistent
func RegisterDefaults(world *engine.World) {
	world.AddSystem(NewCameraTargetSystem(world, nil))
	world.AddSystem(NewTouchFrameSystem(world))
}
