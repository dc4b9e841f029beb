// Package transform implements the quaternion-based Transform and the
// Camera that derives view/projection matrices from one, lazily caching
// both the way the teacher's Euler-angle camera did.
package transform

import "github.com/trophyraster/raster/pkg/math3d"

// Transform is a translation + rotation + scale, composed local() = T*R*S.
type Transform struct {
	Translation math3d.Vec3
	Rotation    math3d.Quat
	Scale       math3d.Vec3
}

// Identity returns the identity transform: zero translation, identity
// rotation, unit scale.
func Identity() Transform {
	return Transform{
		Translation: math3d.Zero3(),
		Rotation:    math3d.QuatIdentity(),
		Scale:       math3d.V3(1, 1, 1),
	}
}

// FromTranslation returns a Transform with only translation set.
func FromTranslation(t math3d.Vec3) Transform {
	tr := Identity()
	tr.Translation = t
	return tr
}

// FromTranslationRotation returns a Transform with translation and
// rotation set, unit scale.
func FromTranslationRotation(t math3d.Vec3, r math3d.Quat) Transform {
	tr := Identity()
	tr.Translation = t
	tr.Rotation = r.Normalize()
	return tr
}

// Local returns the local transform matrix T*R*S.
func (t Transform) Local() math3d.Mat4 {
	return math3d.Translate(t.Translation).Mul(t.Rotation.Mat4()).Mul(math3d.Scale(t.Scale))
}

// Right returns the transform's local +X axis rotated into world space.
func (t Transform) Right() math3d.Vec3 {
	return t.Rotation.RotateVec3(math3d.Right())
}

// Up returns the transform's local +Y axis rotated into world space.
func (t Transform) Up() math3d.Vec3 {
	return t.Rotation.RotateVec3(math3d.Up())
}

// Forward returns the transform's local -Z axis rotated into world space.
func (t Transform) Forward() math3d.Vec3 {
	return t.Rotation.RotateVec3(math3d.Forward())
}
