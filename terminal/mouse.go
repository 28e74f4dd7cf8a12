package terminal

import "github.com/gdamore/tcell/v2"

// MouseAction classifies a mouse report against the previous button state
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// classifyMouse derives the action from the primary button transition
// Wheel bits are ignored
func classifyMouse(wasDown bool, buttons tcell.ButtonMask) MouseAction {
	down := buttons&tcell.Button1 != 0
	switch {
	case down && !wasDown:
		return MouseActionPress
	case !down && wasDown:
		return MouseActionRelease
	case down:
		return MouseActionDrag
	default:
		return MouseActionMove
	}
}
