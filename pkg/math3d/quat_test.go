package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuatIdentityRotateVec3(t *testing.T) {
	v := V3(1, 2, 3)
	got := QuatIdentity().RotateVec3(v)
	assert.InDelta(t, v.X, got.X, 1e-9)
	assert.InDelta(t, v.Y, got.Y, 1e-9)
	assert.InDelta(t, v.Z, got.Z, 1e-9)
}

func TestQuatFromAxisAngleRotatesRightAngle(t *testing.T) {
	q := QuatFromAxisAngle(Up(), math.Pi/2)
	got := q.RotateVec3(Forward())
	assert.InDelta(t, -1.0, got.X, 1e-6)
	assert.InDelta(t, 0.0, got.Y, 1e-6)
	assert.InDelta(t, 0.0, got.Z, 1e-6)
}

func TestQuatMulComposesRotations(t *testing.T) {
	a := QuatFromAxisAngle(Up(), math.Pi/2)
	b := QuatFromAxisAngle(Up(), math.Pi/2)
	combined := a.Mul(b)
	want := QuatFromAxisAngle(Up(), math.Pi)

	v := V3(0, 0, -1)
	got := combined.RotateVec3(v)
	wantV := want.RotateVec3(v)
	assert.InDelta(t, wantV.X, got.X, 1e-6)
	assert.InDelta(t, wantV.Z, got.Z, 1e-6)
}

func TestQuatMat4MatchesRotateVec3(t *testing.T) {
	q := QuatFromAxisAngle(V3(0.3, 0.7, -0.2).Normalize(), 1.1)
	v := V3(2, -1, 0.5)

	viaQuat := q.RotateVec3(v)
	viaMat := q.Mat4().MulVec3(v)

	assert.InDelta(t, viaQuat.X, viaMat.X, 1e-6)
	assert.InDelta(t, viaQuat.Y, viaMat.Y, 1e-6)
	assert.InDelta(t, viaQuat.Z, viaMat.Z, 1e-6)
}

func TestQuatConjugateUndoesRotation(t *testing.T) {
	q := QuatFromAxisAngle(V3(1, 1, 1).Normalize(), 0.8)
	v := V3(1, 0, 0)
	rotated := q.RotateVec3(v)
	back := q.Conjugate().RotateVec3(rotated)

	assert.InDelta(t, v.X, back.X, 1e-6)
	assert.InDelta(t, v.Y, back.Y, 1e-6)
	assert.InDelta(t, v.Z, back.Z, 1e-6)
}
