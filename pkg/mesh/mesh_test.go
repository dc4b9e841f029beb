package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trophyraster/raster/pkg/math3d"
)

func square() []Vertex {
	return []Vertex{
		NewVertex(math3d.V3(0, 0, 0), math3d.Zero3(), math3d.Zero3(), math3d.V2(0, 0)),
		NewVertex(math3d.V3(1, 0, 0), math3d.Zero3(), math3d.Zero3(), math3d.V2(1, 0)),
		NewVertex(math3d.V3(1, 1, 0), math3d.Zero3(), math3d.Zero3(), math3d.V2(1, 1)),
		NewVertex(math3d.V3(0, 1, 0), math3d.Zero3(), math3d.Zero3(), math3d.V2(0, 1)),
	}
}

func TestAddSectionRebasesIndices(t *testing.T) {
	m := New("squares")
	m.AddSection([][3]int{{0, 1, 2}, {0, 2, 3}}, square())
	m.AddSection([][3]int{{0, 1, 2}, {0, 2, 3}}, square())

	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 4, m.TriangleCount())
	assert.Equal(t, [3]int{4, 5, 6}, m.Triangles[2])
	assert.Equal(t, [3]int{4, 6, 7}, m.Triangles[3])
}

func TestTriangleReorderPermutations(t *testing.T) {
	a := NewVertex(math3d.V3(0, 0, 0), math3d.Zero3(), math3d.Zero3(), math3d.Zero2())
	b := NewVertex(math3d.V3(1, 0, 0), math3d.Zero3(), math3d.Zero3(), math3d.Zero2())
	c := NewVertex(math3d.V3(0, 1, 0), math3d.Zero3(), math3d.Zero3(), math3d.Zero2())
	tri := NewTriangle(a, b, c)

	cases := []struct {
		order    Order
		v0v1v2 [3]Vertex
	}{
		{OrderABC, [3]Vertex{a, b, c}},
		{OrderACB, [3]Vertex{a, c, b}},
		{OrderBAC, [3]Vertex{b, a, c}},
		{OrderBCA, [3]Vertex{b, c, a}},
		{OrderCAB, [3]Vertex{c, a, b}},
		{OrderCBA, [3]Vertex{c, b, a}},
	}
	for _, tc := range cases {
		got := tri.Reorder(tc.order)
		assert.Equal(t, tc.v0v1v2[0], got.V0)
		assert.Equal(t, tc.v0v1v2[1], got.V1)
		assert.Equal(t, tc.v0v1v2[2], got.V2)
	}
}

func TestCalculateNormalsFlat(t *testing.T) {
	m := New("tri")
	m.AddSection([][3]int{{0, 1, 2}}, []Vertex{
		NewVertex(math3d.V3(0, 0, 0), math3d.Zero3(), math3d.Zero3(), math3d.Zero2()),
		NewVertex(math3d.V3(1, 0, 0), math3d.Zero3(), math3d.Zero3(), math3d.Zero2()),
		NewVertex(math3d.V3(0, 1, 0), math3d.Zero3(), math3d.Zero3(), math3d.Zero2()),
	})
	m.CalculateNormals()
	for _, v := range m.Vertices {
		assert.InDelta(t, 0.0, v.Normal.X, 1e-9)
		assert.InDelta(t, 0.0, v.Normal.Y, 1e-9)
		assert.InDelta(t, 1.0, v.Normal.Z, 1e-9)
	}
}

func TestBoundsAndCenter(t *testing.T) {
	m := New("square")
	m.AddSection([][3]int{{0, 1, 2}, {0, 2, 3}}, square())
	min, max := m.Bounds()
	assert.Equal(t, math3d.V3(0, 0, 0), min)
	assert.Equal(t, math3d.V3(1, 1, 0), max)
	assert.Equal(t, math3d.V3(0.5, 0.5, 0), m.Center())
}
