package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityWindow       = 10 // Window bookkeeping before anything reads resolution
	PriorityCameraTarget = 20 // After window, cameras copy target size and scale
	PriorityCursor       = 500
	PriorityTouchFrame   = 900 // After every reader, clears per-frame touch sets
)
