package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lixenwraith/winparam/cursor"
	"github.com/lixenwraith/winparam/engine"
	"github.com/lixenwraith/winparam/input"
	"github.com/lixenwraith/winparam/scene"
)

// report holds one evaluation of the three cursor queries
type report struct {
	Raw   string
	UI    string
	World string
}

func resolve(r *cursor.Windows) report {
	var rep report
	if pos, ok := r.RawCursorPosition(); ok {
		rep.Raw = pos.String()
	} else {
		rep.Raw = "none"
	}
	if pos, ok := r.UICursorPosition(); ok {
		rep.UI = pos.String()
	} else {
		rep.UI = "none"
	}
	if pos, ok := r.WorldCursorPosition(); ok {
		rep.World = fmt.Sprintf("%v,%v", pos.X, pos.Y)
	} else {
		rep.World = "none"
	}
	return rep
}

func (r report) Lines() []string {
	return []string{
		"raw:   " + r.Raw,
		"ui:    " + r.UI,
		"world: " + r.World,
	}
}

func (r report) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, line := range r.Lines() {
		m, err := fmt.Fprintln(w, line)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// touchSummary describes one touch id for the current frame
// Transitions are read before the touch frame system clears them
func touchSummary(t *input.Touches, id uint64) string {
	switch {
	case t.JustReleased(id):
		return fmt.Sprintf("touch %d: %s", id, input.TouchEnded)
	case t.JustCanceled(id):
		return fmt.Sprintf("touch %d: %s", id, input.TouchCanceled)
	}

	touch, ok := t.Get(id)
	if !ok {
		return fmt.Sprintf("touch %d: none (%d pressed)", id, len(t.Pressed()))
	}
	phase := input.TouchMoved
	if t.JustPressed(id) {
		phase = input.TouchStarted
	}
	delta, drag := touch.Delta(), touch.Distance()
	return fmt.Sprintf("touch %d: %s at %v,%v delta %v,%v drag %v,%v (%d pressed)",
		id, phase, touch.Position.X, touch.Position.Y, delta.X, delta.Y, drag.X, drag.Y, len(t.Pressed()))
}

// evaluate loads path into world, replacing its entities, runs one frame and resolves
func evaluate(world *engine.World, path string, logger *slog.Logger) (report, error) {
	s, err := scene.Load(path)
	if err != nil {
		return report{}, err
	}
	var rep report
	var spawnErr error
	world.RunSafe(func() {
		if _, spawnErr = s.Replace(world, logger); spawnErr != nil {
			return
		}
		world.UpdateLocked(0)
		rep = resolve(cursor.FromWorld(world).WithLogger(logger))
	})
	return rep, spawnErr
}
