package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trophyraster/raster/pkg/math3d"
)

func TestBarycentricSumsToArea(t *testing.T) {
	v0 := math3d.V2(0, 0)
	v1 := math3d.V2(10, 0)
	v2 := math3d.V2(0, 10)
	p := math3d.V2(2, 2)

	w0, w1, w2, area := Barycentric(v0, v1, v2, p)
	assert.InDelta(t, area, w0+w1+w2, 1e-9)
}

func TestCoversInsideAndOutside(t *testing.T) {
	v0 := math3d.V2(0, 0)
	v1 := math3d.V2(10, 0)
	v2 := math3d.V2(0, 10)

	cases := []struct {
		name   string
		p      math3d.Vec2
		inside bool
	}{
		{"center", math3d.V2(2, 2), true},
		{"vertex", math3d.V2(0, 0), true},
		{"on edge", math3d.V2(5, 0), true},
		{"outside", math3d.V2(20, 20), false},
		{"negative", math3d.V2(-1, -1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w0, w1, w2, area := Barycentric(v0, v1, v2, tc.p)
			assert.Equal(t, tc.inside, Covers(w0, w1, w2, area))
		})
	}
}

func TestTriangleBoundsClampsToFramebuffer(t *testing.T) {
	b := TriangleBounds(math3d.V2(-5, -5), math3d.V2(50, 3), math3d.V2(3, 50), 20, 20)
	assert.Equal(t, 0, b.Left)
	assert.Equal(t, 0, b.Top)
	assert.Equal(t, 19, b.Right)
	assert.Equal(t, 19, b.Bottom)
	assert.False(t, b.Empty())
}
