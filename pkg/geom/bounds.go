package geom

import (
	"math"

	"github.com/trophyraster/raster/pkg/math3d"
)

// BoundingBox2D is an axis-aligned screen-space rectangle, left/top
// inclusive and right/bottom inclusive, in pixel coordinates.
type BoundingBox2D struct {
	Left, Right, Top, Bottom int
}

// TriangleBounds returns the integer pixel bounding box of a triangle given
// in screen-space coordinates, clamped to [0, width) x [0, height).
func TriangleBounds(p0, p1, p2 math3d.Vec2, width, height int) BoundingBox2D {
	left := math.Floor(math.Min(p0.X, math.Min(p1.X, p2.X)))
	right := math.Ceil(math.Max(p0.X, math.Max(p1.X, p2.X)))
	top := math.Floor(math.Min(p0.Y, math.Min(p1.Y, p2.Y)))
	bottom := math.Ceil(math.Max(p0.Y, math.Max(p1.Y, p2.Y)))

	b := BoundingBox2D{
		Left:   int(left),
		Right:  int(right),
		Top:    int(top),
		Bottom: int(bottom),
	}
	if b.Left < 0 {
		b.Left = 0
	}
	if b.Top < 0 {
		b.Top = 0
	}
	if b.Right > width-1 {
		b.Right = width - 1
	}
	if b.Bottom > height-1 {
		b.Bottom = height - 1
	}
	return b
}

// Empty reports whether the bounding box contains no pixels.
func (b BoundingBox2D) Empty() bool {
	return b.Right < b.Left || b.Bottom < b.Top
}
