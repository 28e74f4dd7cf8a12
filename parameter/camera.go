package parameter

// Camera projection defaults
const (
	// PerspectiveFOV is the vertical field of view in degrees
	PerspectiveFOV = 45

	// PerspectiveNear and PerspectiveFar bound the perspective frustum
	PerspectiveNear = 0.1
	PerspectiveFar  = 1000

	// OrthographicNear and OrthographicFar bound the orthographic volume
	// Symmetric around the camera so 2D content at z=0 is always visible
	OrthographicNear = -1000
	OrthographicFar  = 1000

	// OrthographicScale is world units per logical pixel
	OrthographicScale = 1
)
