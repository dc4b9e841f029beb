// Package mesh implements the engine's vertex, triangle, and indexed mesh
// types: homogeneous position plus per-vertex normal, color, and UV
// attributes, component-wise arithmetic for clip-space lerping, and an
// append-with-rebase mesh builder.
package mesh

import "github.com/trophyraster/raster/pkg/math3d"

// Vertex holds one vertex's full attribute set. Position is kept
// homogeneous (W defaults to 1) so the clip stage can carry clip-space W
// through without a second type.
type Vertex struct {
	Position math3d.Vec4
	Normal   math3d.Vec3
	Color    math3d.Vec3
	UV       math3d.Vec2
}

// NewVertex builds a Vertex from a position (W=1), normal, color, and UV.
func NewVertex(position math3d.Vec3, normal math3d.Vec3, color math3d.Vec3, uv math3d.Vec2) Vertex {
	return Vertex{
		Position: math3d.V4FromV3(position, 1),
		Normal:   normal,
		Color:    color,
		UV:       uv,
	}
}

// Add returns the component-wise sum of two vertices.
func (v Vertex) Add(o Vertex) Vertex {
	return Vertex{
		Position: v.Position.Add(o.Position),
		Normal:   v.Normal.Add(o.Normal),
		Color:    v.Color.Add(o.Color),
		UV:       v.UV.Add(o.UV),
	}
}

// Sub returns the component-wise difference of two vertices.
func (v Vertex) Sub(o Vertex) Vertex {
	return Vertex{
		Position: v.Position.Sub(o.Position),
		Normal:   v.Normal.Sub(o.Normal),
		Color:    v.Color.Sub(o.Color),
		UV:       v.UV.Sub(o.UV),
	}
}

// Scale returns v with every attribute multiplied by s.
func (v Vertex) Scale(s float64) Vertex {
	return Vertex{
		Position: v.Position.Scale(s),
		Normal:   v.Normal.Scale(s),
		Color:    v.Color.Scale(s),
		UV:       v.UV.Scale(s),
	}
}

// Lerp linearly interpolates every attribute between v and o by t.
func (v Vertex) Lerp(o Vertex, t float64) Vertex {
	return Vertex{
		Position: v.Position.Lerp(o.Position, t),
		Normal:   v.Normal.Lerp(o.Normal, t),
		Color:    v.Color.Lerp(o.Color, t),
		UV:       v.UV.Lerp(o.UV, t),
	}
}

// TransformedPosition applies mat to v's position as an affine point
// (W forced to 1 before the multiply), returning the new homogeneous
// position. Normal/Color/UV are untouched; see Triangle.Transform for
// normal handling via the cofactor matrix.
func (v Vertex) TransformedPosition(mat math3d.Mat4) math3d.Vec4 {
	p := v.Position.Vec3()
	return mat.MulVec4(math3d.V4FromV3(p, 1))
}
