package mesh

import "github.com/trophyraster/raster/pkg/math3d"

// Triangle is three vertices in winding order V0, V1, V2.
type Triangle struct {
	V0, V1, V2 Vertex
}

// NewTriangle builds a Triangle from three vertices.
func NewTriangle(v0, v1, v2 Vertex) Triangle {
	return Triangle{v0, v1, v2}
}

// Order names one of the six permutations of a triangle's vertices.
type Order int

// The six vertex orderings a triangle can be reordered into.
const (
	OrderABC Order = iota
	OrderACB
	OrderBAC
	OrderBCA
	OrderCAB
	OrderCBA
)

// Reorder returns a copy of t with its vertices permuted according to
// order. Used by the near-plane clip stage to rotate a triangle so the
// vertices behind the plane come first, regardless of which corner they
// started at.
func (t Triangle) Reorder(order Order) Triangle {
	switch order {
	case OrderABC:
		return t
	case OrderACB:
		return NewTriangle(t.V0, t.V2, t.V1)
	case OrderBAC:
		return NewTriangle(t.V1, t.V0, t.V2)
	case OrderBCA:
		return NewTriangle(t.V1, t.V2, t.V0)
	case OrderCAB:
		return NewTriangle(t.V2, t.V0, t.V1)
	case OrderCBA:
		return NewTriangle(t.V2, t.V1, t.V0)
	default:
		return t
	}
}

// Transform returns a copy of t with every vertex position transformed by
// mat (as a homogeneous point) and every normal transformed by mat's
// cofactor matrix (direction only, then renormalized).
func (t Triangle) Transform(mat math3d.Mat4) Triangle {
	cof := mat.Cofactor()
	transformVertex := func(v Vertex) Vertex {
		v.Position = v.TransformedPosition(mat)
		v.Normal = cof.MulVec3Dir(v.Normal).Normalize()
		return v
	}
	return Triangle{
		V0: transformVertex(t.V0),
		V1: transformVertex(t.V1),
		V2: transformVertex(t.V2),
	}
}
