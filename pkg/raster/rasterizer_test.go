package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trophyraster/raster/pkg/math3d"
	"github.com/trophyraster/raster/pkg/mesh"
)

func litVertex(pos math3d.Vec4, normal math3d.Vec3, col math3d.Vec3, uv math3d.Vec2) mesh.Vertex {
	return mesh.Vertex{Position: pos, Normal: normal, Color: col, UV: uv}
}

// a triangle already in clip space, facing the camera, spanning most of
// a small framebuffer.
func coveringTriangle() mesh.Triangle {
	white := math3d.V3(1, 1, 1)
	n := math3d.V3(0, 0, 1)
	return mesh.NewTriangle(
		litVertex(math3d.V4(-0.8, -0.8, 0.5, 1), n, white, math3d.V2(0, 0)),
		litVertex(math3d.V4(0.8, -0.8, 0.5, 1), n, white, math3d.V2(1, 0)),
		litVertex(math3d.V4(0, 0.8, 0.5, 1), n, white, math3d.V2(0.5, 1)),
	)
}

func TestDrawTriangleFillsCoveredPixelsAndLeavesCornersClear(t *testing.T) {
	r := New(20, 20)
	r.Clear(0)
	r.DrawTriangle(coveringTriangle(), nil, math3d.V3(0, 0, 1))

	center := r.FB.GetPixel(10, 12)
	corner := r.FB.GetPixel(0, 0)

	assert.NotEqual(t, uint32(0), center, "center of triangle should be shaded")
	assert.Equal(t, uint32(0), corner, "corner outside triangle should stay clear")
}

func TestDefaultLightDirMatchesFixedLambertianFormula(t *testing.T) {
	want := math3d.V3(1, 1, 1).Normalize()
	assert.InDelta(t, want.X, DefaultLightDir.X, 1e-9)
	assert.InDelta(t, want.Y, DefaultLightDir.Y, 1e-9)
	assert.InDelta(t, want.Z, DefaultLightDir.Z, 1e-9)
	assert.InDelta(t, 1.0, DefaultLightDir.Len(), 1e-9)
}

func TestDrawTriangleAtFarPlanePassesFreshDepthTest(t *testing.T) {
	r := New(20, 20)
	r.Clear(0)

	tri := coveringTriangle()
	tri.V0.Position.Z, tri.V1.Position.Z, tri.V2.Position.Z = 1.0, 1.0, 1.0
	r.DrawTriangle(tri, nil, math3d.V3(0, 0, 1))

	assert.NotEqual(t, uint32(0), r.FB.GetPixel(10, 12), "triangle exactly on the far plane must not be rejected by a freshly cleared depth buffer")
}

func TestDrawTriangleRespectsDepthTest(t *testing.T) {
	r := New(20, 20)
	r.Clear(0)

	near := coveringTriangle()
	far := coveringTriangle()
	// push the far triangle's depth back
	far.V0.Position.Z, far.V1.Position.Z, far.V2.Position.Z = 0.9, 0.9, 0.9

	r.DrawTriangle(near, nil, math3d.V3(0, 0, 1))
	before := r.FB.GetPixel(10, 12)

	r.DrawTriangle(far, nil, math3d.V3(0, 0, 1))
	after := r.FB.GetPixel(10, 12)

	assert.Equal(t, before, after, "farther triangle must not overwrite a nearer pixel")
}

func TestDrawTriangleCullsBackface(t *testing.T) {
	r := New(20, 20)
	r.Clear(0)

	tri := coveringTriangle()
	reversed := mesh.NewTriangle(tri.V0, tri.V2, tri.V1)
	r.DrawTriangle(reversed, nil, math3d.V3(0, 0, 1))

	assert.Equal(t, uint32(0), r.FB.GetPixel(10, 12), "reversed winding should be culled as a backface")
}

func TestClearResetsFramebufferAndDepth(t *testing.T) {
	r := New(4, 4)
	r.DrawTriangle(coveringTriangle(), nil, math3d.V3(0, 0, 1))
	r.Clear(0xFF112233)

	for _, p := range r.FB.Pixels {
		assert.Equal(t, uint32(0xFF112233), p)
	}
	for _, d := range r.Depth.Values {
		assert.True(t, math.IsInf(float64(d), 1))
	}
}
