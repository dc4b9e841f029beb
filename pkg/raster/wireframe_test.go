package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trophyraster/raster/pkg/math3d"
	"github.com/trophyraster/raster/pkg/mesh"
)

func TestDrawLineTouchesBothEndpoints(t *testing.T) {
	r := New(10, 10)
	r.Clear(0)
	r.DrawLine(1, 1, 8, 1, 0xFFFFFFFF)

	assert.Equal(t, uint32(0xFFFFFFFF), r.FB.GetPixel(1, 1))
	assert.Equal(t, uint32(0xFFFFFFFF), r.FB.GetPixel(8, 1))
	assert.Equal(t, uint32(0), r.FB.GetPixel(1, 5))
}

// triangleMesh adapts a single clip-space triangle to the MeshRenderer
// interface for tests that don't need a full mesh.Mesh.
type triangleMesh struct{ tri mesh.Triangle }

func (m triangleMesh) TriangleCount() int            { return 1 }
func (m triangleMesh) TriangleAt(i int) mesh.Triangle { return m.tri }

func TestDrawMeshWireframeDrawsCoveringTriangleEdges(t *testing.T) {
	r := New(20, 20)
	r.Clear(0)
	r.DrawMeshWireframe(triangleMesh{coveringTriangle()}, math3d.Identity(), 0xFFFF0000)

	any := false
	for _, p := range r.FB.Pixels {
		if p == 0xFFFF0000 {
			any = true
			break
		}
	}
	assert.True(t, any, "wireframe should have drawn at least one line pixel")
}
