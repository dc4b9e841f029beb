// Package geom implements the geometric predicates the rasterizer's
// per-pixel coverage test and screen-space bounding boxes are built from.
package geom

import "github.com/trophyraster/raster/pkg/math3d"

// EdgeFunction evaluates the edge function for the directed edge v0->v1 at
// point p: twice the signed area of the triangle (v0, v1, p). Positive when
// p is to the left of the edge for a clockwise-wound triangle.
func EdgeFunction(v0, v1, p math3d.Vec2) float64 {
	return (p.X-v0.X)*(v1.Y-v0.Y) - (p.Y-v0.Y)*(v1.X-v0.X)
}

// Barycentric computes the barycentric weights of p with respect to
// triangle (v0, v1, v2) using the edge function, returning (w0, w1, w2)
// and the triangle's signed area (twice its area). A point is inside the
// triangle, inclusive of edges, when all three weights share the sign of
// area (or are zero).
func Barycentric(v0, v1, v2, p math3d.Vec2) (w0, w1, w2, area float64) {
	area = EdgeFunction(v0, v1, v2)
	w0 = EdgeFunction(v1, v2, p)
	w1 = EdgeFunction(v2, v0, p)
	w2 = area - w0 - w1
	return w0, w1, w2, area
}

// Covers reports whether barycentric weights (w0, w1, w2) with the given
// signed triangle area represent a point inside the triangle, including
// its edges.
func Covers(w0, w1, w2, area float64) bool {
	if area == 0 {
		return false
	}
	if area > 0 {
		return w0 >= 0 && w1 >= 0 && w2 >= 0
	}
	return w0 <= 0 && w1 <= 0 && w2 <= 0
}

// EdgeCoeffs returns (A, B, C) such that EdgeFunction(v0, v1, p) equals
// A*p.X + B*p.Y + C for any p, letting the per-pixel loop step the edge
// function incrementally instead of recomputing it from scratch at every
// pixel.
func EdgeCoeffs(v0, v1 math3d.Vec2) (a, b, c float64) {
	a = v1.Y - v0.Y
	b = v0.X - v1.X
	c = -(a*v0.X + b*v0.Y)
	return a, b, c
}

// EvalEdge evaluates an edge function given its coefficients at (x, y).
func EvalEdge(a, b, c, x, y float64) float64 {
	return a*x + b*y + c
}
