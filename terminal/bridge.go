package terminal

import (
	"log/slog"
	"sync"

	"cogentcore.org/core/math32"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/winparam/component"
	"github.com/lixenwraith/winparam/core"
	"github.com/lixenwraith/winparam/engine"
	"github.com/lixenwraith/winparam/input"
	"github.com/lixenwraith/winparam/parameter"
)

// TouchID is the touch id used by button emulation
const TouchID uint64 = 0

// Option configures a Bridge
type Option func(*Bridge)

// WithCellSize sets the physical pixel size of one cell
func WithCellSize(width, height float32) Option {
	return func(b *Bridge) {
		if width > 0 && height > 0 {
			b.cellWidth, b.cellHeight = width, height
		}
	}
}

// WithScaleFactor sets the physical/logical ratio reported for the terminal window
func WithScaleFactor(scale float64) Option {
	return func(b *Bridge) {
		if scale > 0 {
			b.scale = scale
		}
	}
}

// WithTouchEmulation makes the left button press, drag and release a touch
func WithTouchEmulation() Option {
	return func(b *Bridge) {
		b.emulateTouch = true
	}
}

// WithPrimary marks the terminal window as the primary window
func WithPrimary() Option {
	return func(b *Bridge) {
		b.primary = true
	}
}

// WithLogger sets the bridge logger
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.logger = l
		}
	}
}

// Bridge owns one window entity driven by terminal events
type Bridge struct {
	world   *engine.World
	touches *input.Touches
	window  core.Entity
	logger  *slog.Logger

	cellWidth    float32
	cellHeight   float32
	scale        float64
	emulateTouch bool
	primary      bool

	mu         sync.Mutex
	pending    []tcell.Event
	buttonDown bool
	lastAction MouseAction
}

// NewBridge creates the window entity sized to the screen and returns the bridge
// The bridge must be added to the world as a system for queued events to apply
func NewBridge(world *engine.World, screen tcell.Screen, opts ...Option) *Bridge {
	b := &Bridge{
		world:      world,
		touches:    engine.GetCoreResources(world).Touches,
		logger:     slog.Default(),
		cellWidth:  parameter.TerminalCellWidth,
		cellHeight: parameter.TerminalCellHeight,
		scale:      parameter.DefaultScaleFactor,
		pending:    make([]tcell.Event, 0, 16),
	}
	for _, opt := range opts {
		opt(b)
	}

	cols, rows := screen.Size()
	win := component.WindowComponent{Title: "terminal", Scale: b.scale}
	win.SetPhysicalResolution(b.physicalSize(cols, rows))

	eb := engine.With(world.NewEntity(), world.Components.Window, win)
	if b.primary {
		engine.With(eb, world.Components.PrimaryWindow, component.PrimaryWindowComponent{})
	}
	b.window = eb.Build()

	b.logger.Debug("terminal window created", "entity", b.window, "cols", cols, "rows", rows)
	return b
}

// Window returns the terminal's window entity
func (b *Bridge) Window() core.Entity {
	return b.window
}

// Ref returns the reference cameras should target to render into the terminal
func (b *Bridge) Ref() component.WindowRef {
	if b.primary {
		return component.PrimaryWindow()
	}
	return component.WindowEntity(b.window)
}

// Push queues an event, safe from the polling goroutine
// Returns false for events the bridge does not consume
func (b *Bridge) Push(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventMouse, *tcell.EventResize, *tcell.EventFocus:
	default:
		return false
	}
	b.mu.Lock()
	b.pending = append(b.pending, ev)
	b.mu.Unlock()
	return true
}

// LastAction returns the classification of the most recently applied mouse report
func (b *Bridge) LastAction() MouseAction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastAction
}

// CellCenter converts a cell coordinate to window-local logical pixels
func (b *Bridge) CellCenter(col, row int) math32.Vector2 {
	s := float32(b.scale)
	return math32.Vec2((float32(col)+0.5)*b.cellWidth/s, (float32(row)+0.5)*b.cellHeight/s)
}

func (b *Bridge) physicalSize(cols, rows int) (uint32, uint32) {
	return uint32(float32(cols) * b.cellWidth), uint32(float32(rows) * b.cellHeight)
}

func (b *Bridge) Name() string {
	return "terminal_bridge"
}

func (b *Bridge) Priority() int {
	return parameter.PriorityWindow
}

// Update applies queued events in arrival order
func (b *Bridge) Update() {
	b.mu.Lock()
	events := b.pending
	b.pending = make([]tcell.Event, 0, cap(events))
	b.mu.Unlock()

	for _, ev := range events {
		b.apply(ev)
	}
}

func (b *Bridge) apply(ev tcell.Event) {
	windows := b.world.Components.Window

	switch ev := ev.(type) {
	case *tcell.EventMouse:
		col, row := ev.Position()
		pos := b.CellCenter(col, row)
		if !windows.Update(b.window, func(w *component.WindowComponent) { w.SetCursorPosition(pos) }) {
			return
		}

		b.mu.Lock()
		action := classifyMouse(b.buttonDown, ev.Buttons())
		b.lastAction = action
		b.buttonDown = action == MouseActionPress || action == MouseActionDrag
		b.mu.Unlock()

		if b.emulateTouch {
			b.applyTouch(action, pos)
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		windows.Update(b.window, func(w *component.WindowComponent) {
			w.SetPhysicalResolution(b.physicalSize(cols, rows))
			// A shrink can leave the last reported cell outside the window
			if pos, ok := w.CursorPosition(); ok && (pos.X > w.Width() || pos.Y > w.Height()) {
				w.ClearCursor()
			}
		})
		b.logger.Debug("terminal resized", "cols", cols, "rows", rows)

	case *tcell.EventFocus:
		if !ev.Focused {
			windows.Update(b.window, func(w *component.WindowComponent) { w.ClearCursor() })
			b.mu.Lock()
			b.buttonDown = false
			b.mu.Unlock()
			if b.emulateTouch {
				b.touches.Process(input.TouchInput{ID: TouchID, Phase: input.TouchCanceled})
			}
		}
	}
}

func (b *Bridge) applyTouch(action MouseAction, pos math32.Vector2) {
	ev := input.TouchInput{ID: TouchID, Position: pos}
	switch action {
	case MouseActionPress:
		ev.Phase = input.TouchStarted
	case MouseActionDrag:
		ev.Phase = input.TouchMoved
	case MouseActionRelease:
		ev.Phase = input.TouchEnded
	default:
		return
	}
	b.touches.Process(ev)
}
