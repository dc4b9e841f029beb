package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trophyraster/raster/pkg/math3d"
	"github.com/trophyraster/raster/pkg/mesh"
)

func vertexAt(x, y, z, w float64) mesh.Vertex {
	return mesh.Vertex{Position: math3d.V4(x, y, z, w)}
}

func TestIsBackfaceDetectsReversedWinding(t *testing.T) {
	front := mesh.NewTriangle(vertexAt(0, 0, 0, 1), vertexAt(1, 0, 0, 1), vertexAt(0, 1, 0, 1))
	back := mesh.NewTriangle(vertexAt(0, 0, 0, 1), vertexAt(0, 1, 0, 1), vertexAt(1, 0, 0, 1))

	assert.False(t, IsBackface(front))
	assert.True(t, IsBackface(back))
}

func TestTrivialRejectOutsideRightPlane(t *testing.T) {
	tri := mesh.NewTriangle(
		vertexAt(2, 0, 0.5, 1),
		vertexAt(3, 0, 0.5, 1),
		vertexAt(2.5, 1, 0.5, 1),
	)
	assert.True(t, TrivialReject(tri))
}

func TestTrivialRejectStraddlingPlaneIsKept(t *testing.T) {
	tri := mesh.NewTriangle(
		vertexAt(-0.5, 0, 0.5, 1),
		vertexAt(0.5, 0, 0.5, 1),
		vertexAt(0, 1, 0.5, 1),
	)
	assert.False(t, TrivialReject(tri))
}

func TestClipNearPlaneAllInFrontIsUnclipped(t *testing.T) {
	tri := mesh.NewTriangle(vertexAt(0, 0, 1, 1), vertexAt(1, 0, 1, 1), vertexAt(0, 1, 1, 1))
	result := ClipNearPlane(tri)
	assert.Equal(t, KindOne, result.Kind)
	assert.Equal(t, tri, result.Triangles[0])
}

func TestClipNearPlaneAllBehindIsNone(t *testing.T) {
	tri := mesh.NewTriangle(vertexAt(0, 0, -1, 1), vertexAt(1, 0, -1, 1), vertexAt(0, 1, -1, 1))
	result := ClipNearPlane(tri)
	assert.Equal(t, KindNone, result.Kind)
}

func TestClipNearPlaneOneBehindProducesTwoTriangles(t *testing.T) {
	// V0 behind, V1/V2 in front.
	tri := mesh.NewTriangle(vertexAt(0, 0, -1, 1), vertexAt(2, 0, 1, 1), vertexAt(0, 2, 1, 1))
	result := ClipNearPlane(tri)
	assert.Equal(t, KindTwo, result.Kind)
	for _, out := range result.Triangles {
		assert.GreaterOrEqual(t, out.V0.Position.Z, 0.0)
		assert.GreaterOrEqual(t, out.V1.Position.Z, 0.0)
		assert.GreaterOrEqual(t, out.V2.Position.Z, 0.0)
	}
}

func TestClipNearPlaneOneBehindVertexOrder(t *testing.T) {
	// V0 behind, V1/V2 in front; a = lerp(v0,v1), b = lerp(v0,v2).
	v0, v1, v2 := vertexAt(0, 0, -1, 1), vertexAt(2, 0, 1, 1), vertexAt(0, 2, 1, 1)
	tri := mesh.NewTriangle(v0, v1, v2)
	result := ClipNearPlane(tri)

	a := v0.Lerp(v1, 0.5)
	b := v0.Lerp(v2, 0.5)

	// First triangle is (a, v1, v2), which keeps the original winding;
	// second is (a, b, v2), whose winding is the reverse of the original.
	assert.Equal(t, a.Position, result.Triangles[0].V0.Position)
	assert.Equal(t, v1.Position, result.Triangles[0].V1.Position)
	assert.Equal(t, v2.Position, result.Triangles[0].V2.Position)

	assert.Equal(t, a.Position, result.Triangles[1].V0.Position)
	assert.Equal(t, b.Position, result.Triangles[1].V1.Position)
	assert.Equal(t, v2.Position, result.Triangles[1].V2.Position)
}

func TestClipNearPlaneTwoBehindProducesOneTriangle(t *testing.T) {
	// V0/V1 behind, V2 in front.
	tri := mesh.NewTriangle(vertexAt(0, 0, -1, 1), vertexAt(2, 0, -1, 1), vertexAt(0, 2, 1, 1))
	result := ClipNearPlane(tri)
	assert.Equal(t, KindOne, result.Kind)
	out := result.Triangles[0]
	assert.GreaterOrEqual(t, out.V0.Position.Z, 0.0)
	assert.GreaterOrEqual(t, out.V1.Position.Z, 0.0)
	assert.GreaterOrEqual(t, out.V2.Position.Z, 0.0)
}
