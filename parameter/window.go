package parameter

// Window defaults
const (
	// DefaultWindowWidth and DefaultWindowHeight are logical sizes for windows declared without one
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720

	// DefaultScaleFactor is the physical to logical ratio when none is reported
	DefaultScaleFactor = 1.0
)

// Terminal defaults
const (
	// TerminalCellWidth and TerminalCellHeight are the logical pixel size of one terminal cell
	// Mouse cells report the cell center
	TerminalCellWidth  = 8
	TerminalCellHeight = 16
)
