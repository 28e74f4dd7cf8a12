package input

import (
	"sync"

	"cogentcore.org/core/math32"
)

// TouchPhase is the lifecycle step carried by a touch input event
type TouchPhase uint8

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCanceled
)

func (p TouchPhase) String() string {
	switch p {
	case TouchStarted:
		return "started"
	case TouchMoved:
		return "moved"
	case TouchEnded:
		return "ended"
	case TouchCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// TouchInput is one raw touch event from the platform
// Position is in the primary window's logical pixels, origin top-left
type TouchInput struct {
	ID       uint64
	Phase    TouchPhase
	Position math32.Vector2
}

// Touch is the tracked state of one finger
type Touch struct {
	ID               uint64
	StartPosition    math32.Vector2
	PreviousPosition math32.Vector2
	Position         math32.Vector2
}

// Delta returns the movement since the previous event for this touch
func (t Touch) Delta() math32.Vector2 {
	return t.Position.Sub(t.PreviousPosition)
}

// Distance returns the movement since the touch started
func (t Touch) Distance() math32.Vector2 {
	return t.Position.Sub(t.StartPosition)
}

// Touches is the touch history resource
// Pressed touches are kept in press order, the first one is the pointer fallback for cursor queries
type Touches struct {
	mu           sync.RWMutex
	pressed      []Touch
	justPressed  map[uint64]Touch
	justReleased map[uint64]Touch
	justCanceled map[uint64]Touch
}

// NewTouches creates an empty touch history
func NewTouches() *Touches {
	return &Touches{
		pressed:      make([]Touch, 0, 4),
		justPressed:  make(map[uint64]Touch),
		justReleased: make(map[uint64]Touch),
		justCanceled: make(map[uint64]Touch),
	}
}

// Process applies a raw touch event
func (t *Touches) Process(ev TouchInput) {
	switch ev.Phase {
	case TouchStarted:
		t.Press(ev.ID, ev.Position)
	case TouchMoved:
		t.Move(ev.ID, ev.Position)
	case TouchEnded:
		t.Release(ev.ID, ev.Position)
	case TouchCanceled:
		t.Cancel(ev.ID)
	}
}

// Press starts tracking a touch, a repeated press of a live id restarts it in place
func (t *Touches) Press(id uint64, pos math32.Vector2) {
	t.mu.Lock()
	defer t.mu.Unlock()

	touch := Touch{ID: id, StartPosition: pos, PreviousPosition: pos, Position: pos}
	if i := t.indexLocked(id); i >= 0 {
		t.pressed[i] = touch
	} else {
		t.pressed = append(t.pressed, touch)
	}
	t.justPressed[id] = touch
}

// Move updates a pressed touch, unknown ids are ignored
func (t *Touches) Move(id uint64, pos math32.Vector2) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(id)
	if i < 0 {
		return
	}
	t.pressed[i].PreviousPosition = t.pressed[i].Position
	t.pressed[i].Position = pos
}

// Release ends a pressed touch at pos
func (t *Touches) Release(id uint64, pos math32.Vector2) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(id)
	if i < 0 {
		return
	}
	touch := t.pressed[i]
	touch.PreviousPosition = touch.Position
	touch.Position = pos
	t.removeLocked(i)
	t.justReleased[id] = touch
}

// Cancel drops a pressed touch without a release position
func (t *Touches) Cancel(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(id)
	if i < 0 {
		return
	}
	touch := t.pressed[i]
	t.removeLocked(i)
	t.justCanceled[id] = touch
}

// Get returns a pressed touch by id
func (t *Touches) Get(id uint64) (Touch, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i := t.indexLocked(id); i >= 0 {
		return t.pressed[i], true
	}
	return Touch{}, false
}

// Pressed returns a snapshot of pressed touches in press order
func (t *Touches) Pressed() []Touch {
	t.mu.RLock()
	defer t.mu.RUnlock()
	result := make([]Touch, len(t.pressed))
	copy(result, t.pressed)
	return result
}

// FirstPressedPosition returns the position of the oldest pressed touch
func (t *Touches) FirstPressedPosition() (math32.Vector2, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.pressed) == 0 {
		return math32.Vector2{}, false
	}
	return t.pressed[0].Position, true
}

// JustPressed reports whether id was pressed since the last ClearJustChanged
func (t *Touches) JustPressed(id uint64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.justPressed[id]
	return ok
}

// JustReleased reports whether id was released since the last ClearJustChanged
func (t *Touches) JustReleased(id uint64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.justReleased[id]
	return ok
}

// JustCanceled reports whether id was canceled since the last ClearJustChanged
func (t *Touches) JustCanceled(id uint64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.justCanceled[id]
	return ok
}

// AnyJustPressed reports whether any touch started this frame
func (t *Touches) AnyJustPressed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.justPressed) > 0
}

// ClearJustChanged drops the per-frame sets, pressed touches stay
func (t *Touches) ClearJustChanged() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.justPressed)
	clear(t.justReleased)
	clear(t.justCanceled)
}

// Reset forgets every touch
func (t *Touches) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pressed = t.pressed[:0]
	clear(t.justPressed)
	clear(t.justReleased)
	clear(t.justCanceled)
}

func (t *Touches) indexLocked(id uint64) int {
	for i := range t.pressed {
		if t.pressed[i].ID == id {
			return i
		}
	}
	return -1
}

func (t *Touches) removeLocked(i int) {
	copy(t.pressed[i:], t.pressed[i+1:])
	t.pressed = t.pressed[:len(t.pressed)-1]
}
