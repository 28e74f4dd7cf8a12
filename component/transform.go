package component

import "cogentcore.org/core/math32"

// GlobalTransformComponent is the entity's world matrix, written by the scene owner
type GlobalTransformComponent struct {
	Matrix math32.Matrix4
}

// IdentityTransform places the entity at the world origin
func IdentityTransform() GlobalTransformComponent {
	return GlobalTransformComponent{Matrix: *math32.Identity4()}
}

// NewGlobalTransform composes translation, rotation and scale
func NewGlobalTransform(pos math32.Vector3, rot math32.Quat, scale math32.Vector3) GlobalTransformComponent {
	var t GlobalTransformComponent
	t.Matrix.SetTransform(pos, rot, scale)
	return t
}

// TransformFromTranslation returns an unrotated, unscaled transform at pos
func TransformFromTranslation(pos math32.Vector3) GlobalTransformComponent {
	return NewGlobalTransform(pos, math32.Quat{W: 1}, math32.Vec3(1, 1, 1))
}

// Translation returns the world position of the entity
func (t GlobalTransformComponent) Translation() math32.Vector3 {
	return math32.Vec3(t.Matrix[12], t.Matrix[13], t.Matrix[14])
}
