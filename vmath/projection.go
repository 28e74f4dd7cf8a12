package vmath

import (
	"cogentcore.org/core/math32"

	"github.com/lixenwraith/winparam/parameter"
)

// ProjectionKind selects the camera projection model
type ProjectionKind uint8

const (
	ProjectionOrthographic ProjectionKind = iota
	ProjectionPerspective
)

// String returns the name used in scene files
func (k ProjectionKind) String() string {
	switch k {
	case ProjectionPerspective:
		return "perspective"
	default:
		return "orthographic"
	}
}

// Projection describes how view space maps to normalized device coordinates
// Matrices follow the math32 convention: column-major, NDC z in [-1, 1], camera looks down -Z
type Projection struct {
	Kind ProjectionKind

	// FOV is the vertical field of view in degrees (perspective only)
	FOV float32

	Near float32
	Far  float32

	// Scale is world units per logical pixel (orthographic only), 0 means 1
	Scale float32
}

// OrthographicProjection returns the 2D default: one world unit per logical pixel, origin at viewport center
func OrthographicProjection() Projection {
	return Projection{
		Kind:  ProjectionOrthographic,
		Near:  parameter.OrthographicNear,
		Far:   parameter.OrthographicFar,
		Scale: parameter.OrthographicScale,
	}
}

// PerspectiveProjection returns the 3D default projection
func PerspectiveProjection() Projection {
	return Projection{
		Kind: ProjectionPerspective,
		FOV:  parameter.PerspectiveFOV,
		Near: parameter.PerspectiveNear,
		Far:  parameter.PerspectiveFar,
	}
}

// Matrix builds the projection matrix for a logical viewport size
// Returns false when the viewport or the depth range is degenerate
func (p Projection) Matrix(viewport math32.Vector2) (math32.Matrix4, bool) {
	var m math32.Matrix4
	if viewport.X <= 0 || viewport.Y <= 0 || p.Far == p.Near {
		return m, false
	}

	switch p.Kind {
	case ProjectionPerspective:
		if p.FOV <= 0 || p.Near <= 0 {
			return m, false
		}
		m.SetPerspective(p.FOV, viewport.X/viewport.Y, p.Near, p.Far)
	default:
		scale := p.Scale
		if scale == 0 {
			scale = 1
		}
		m.SetOrthographic(viewport.X*scale, viewport.Y*scale, p.Near, p.Far)
	}
	return m, true
}

// ViewportToNDC converts a top-left origin viewport position into normalized device coordinates
// NDC has its origin at the viewport center with +Y up
func ViewportToNDC(pos, size math32.Vector2) math32.Vector2 {
	return math32.Vec2(
		pos.X*2/size.X-1,
		(size.Y-pos.Y)*2/size.Y-1,
	)
}

// ViewportToWorld casts a ray from a viewport position through the camera
// transform is the camera's world matrix, size the logical viewport size
// The ray starts on the near plane and points towards the far plane
// Returns false for degenerate projections or when unprojection produces NaN
func ViewportToWorld(p Projection, transform *math32.Matrix4, size, pos math32.Vector2) (math32.Ray, bool) {
	proj, ok := p.Matrix(size)
	if !ok {
		return math32.Ray{}, false
	}
	invProj, err := proj.Inverse()
	if err != nil {
		return math32.Ray{}, false
	}

	var ndcToWorld math32.Matrix4
	ndcToWorld.MulMatrices(transform, invProj)

	ndc := ViewportToNDC(pos, size)
	near := math32.Vector4{X: ndc.X, Y: ndc.Y, Z: -1, W: 1}.MulMatrix4(&ndcToWorld).PerspDiv()
	far := math32.Vector4{X: ndc.X, Y: ndc.Y, Z: 1, W: 1}.MulMatrix4(&ndcToWorld).PerspDiv()
	if hasNaN(near) || hasNaN(far) {
		return math32.Ray{}, false
	}

	return math32.Ray{Origin: near, Dir: far.Sub(near).Normal()}, true
}

func hasNaN(v math32.Vector3) bool {
	return v.X != v.X || v.Y != v.Y || v.Z != v.Z
}
