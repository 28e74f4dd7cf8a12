package main

import (
	"log/slog"
	"time"

	"cogentcore.org/core/math32"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/winparam/component"
	"github.com/lixenwraith/winparam/core"
	"github.com/lixenwraith/winparam/cursor"
	"github.com/lixenwraith/winparam/engine"
	"github.com/lixenwraith/winparam/input"
	"github.com/lixenwraith/winparam/parameter"
	"github.com/lixenwraith/winparam/scene"
	"github.com/lixenwraith/winparam/terminal"
)

const frameInterval = 16 * time.Millisecond

// reportSystem draws the current resolution results in the top-left of the screen
// With touch emulation a fourth line follows the emulated touch
type reportSystem struct {
	screen  tcell.Screen
	windows *cursor.Windows
	touches *input.Touches
	style   tcell.Style
}

func newReportSystem(world *engine.World, screen tcell.Screen, emulateTouch bool, logger *slog.Logger) *reportSystem {
	s := &reportSystem{
		screen:  screen,
		windows: cursor.FromWorld(world).WithLogger(logger),
		style:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
	if emulateTouch {
		s.touches = engine.GetCoreResources(world).Touches
	}
	return s
}

func (s *reportSystem) Name() string {
	return "cursor_report"
}

func (s *reportSystem) Priority() int {
	return parameter.PriorityCursor
}

func (s *reportSystem) Update() {
	s.screen.Clear()
	lines := resolve(s.windows).Lines()
	style := s.style
	if s.touches != nil {
		lines = append(lines, touchSummary(s.touches, terminal.TouchID))
		if s.touches.AnyJustPressed() {
			style = style.Bold(true)
		}
	}
	for row, line := range lines {
		for col, r := range line {
			s.screen.SetContent(col, row, r, nil, style)
		}
	}
	hint := "esc/ctrl-c to quit"
	_, rows := s.screen.Size()
	for col, r := range hint {
		s.screen.SetContent(col, rows-1, r, nil, tcell.StyleDefault.Dim(true))
	}
}

// runLive turns the terminal into the primary window with a 2D camera centred on the origin
// An optional scene is spawned alongside as extra windows and cameras
func runLive(world *engine.World, sc *scene.Scene, emulateTouch bool, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize screen")
	}
	core.SetCrashFinalizer(screen.Fini)
	defer func() {
		core.SetCrashFinalizer(nil)
		screen.Fini()
	}()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()

	opts := []terminal.Option{terminal.WithPrimary(), terminal.WithLogger(logger)}
	if emulateTouch {
		opts = append(opts, terminal.WithTouchEmulation())
	}

	var bridge *terminal.Bridge
	world.RunSafe(func() {
		bridge = terminal.NewBridge(world, screen, opts...)
		world.AddSystem(bridge)
		world.AddSystem(newReportSystem(world, screen, emulateTouch, logger))

		b := engine.With(world.NewEntity(), world.Components.Camera, component.NewCamera2D(component.WindowTarget(bridge.Ref())))
		engine.With(b, world.Components.Transform, component.TransformFromTranslation(math32.Vec3(0, 0, 0))).Build()

		if sc != nil {
			for i := range sc.Windows {
				// The terminal owns the primary marker
				sc.Windows[i].Primary = false
			}
			if _, err = sc.Spawn(world, logger); err != nil {
				return
			}
		}
	})
	if err != nil {
		return err
	}

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			if isQuit(ev) {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			bridge.Push(ev)

		case now := <-ticker.C:
			world.Update(now.Sub(last))
			last = now
			screen.Show()
		}
	}
}

func isQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC
}
