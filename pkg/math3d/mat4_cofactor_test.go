package math3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCofactorIdentityIsIdentity(t *testing.T) {
	c := Identity().Cofactor()
	for i := range c {
		assert.InDelta(t, Identity()[i], c[i], 1e-9)
	}
}

func TestCofactorTransformsNormalUnderNonUniformScale(t *testing.T) {
	// A non-uniform scale on a plane's tangent vectors should leave its
	// normal perpendicular to the transformed tangents when transformed
	// by the cofactor matrix (normal-matrix identity).
	m := Scale(V3(2, 1, 0.5))

	tangentA := V3(1, 0, 0)
	tangentB := V3(0, 1, 0)
	normal := tangentA.Cross(tangentB).Normalize()

	transformedA := m.MulVec3Dir(tangentA)
	transformedB := m.MulVec3Dir(tangentB)
	transformedNormal := m.Cofactor().MulVec3Dir(normal)

	assert.InDelta(t, 0.0, transformedNormal.Dot(transformedA), 1e-9)
	assert.InDelta(t, 0.0, transformedNormal.Dot(transformedB), 1e-9)
}

func TestPerspectiveRHMapsNearFarPlanes(t *testing.T) {
	p := PerspectiveRH(1.2, 1.0, 1.0, 100.0)

	near := p.MulVec4(V4(0, 0, -1, 1))
	assert.InDelta(t, 0.0, near.Z/near.W, 1e-6)

	far := p.MulVec4(V4(0, 0, -100, 1))
	assert.InDelta(t, 1.0, far.Z/far.W, 1e-6)
}
