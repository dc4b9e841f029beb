// Package clip implements the stage between vertex transform and
// rasterization: backface rejection, six-plane frustum trivial-reject,
// and near-plane clipping that can split a triangle into up to two.
package clip

import (
	"github.com/trophyraster/raster/pkg/math3d"
	"github.com/trophyraster/raster/pkg/mesh"
)

// IsBackface reports whether a clip-space triangle faces away from the
// camera: its face normal, taken directly from clip-space xyz (ignoring
// w), dotted with -Z is non-negative.
func IsBackface(tri mesh.Triangle) bool {
	v0 := tri.V0.Position.Vec3()
	v1 := tri.V1.Position.Vec3()
	v2 := tri.V2.Position.Vec3()
	normal := v1.Sub(v0).Cross(v2.Sub(v0))
	return normal.Dot(math3d.V3(0, 0, -1)) >= 0
}

// TrivialReject reports whether a clip-space triangle lies entirely
// outside one of the view frustum's six planes and so needs no further
// processing. The near plane is tested as z<0 (not z<-w): this engine's
// right-handed projection maps the visible depth range to clip-space
// z in [0, w], so z<0 alone identifies points behind the near plane.
func TrivialReject(tri mesh.Triangle) bool {
	p0, p1, p2 := tri.V0.Position, tri.V1.Position, tri.V2.Position

	if p0.X > p0.W && p1.X > p1.W && p2.X > p2.W {
		return true
	}
	if p0.X < -p0.W && p1.X < -p1.W && p2.X < -p2.W {
		return true
	}
	if p0.Y > p0.W && p1.Y > p1.W && p2.Y > p2.W {
		return true
	}
	if p0.Y < -p0.W && p1.Y < -p1.W && p2.Y < -p2.W {
		return true
	}
	if p0.Z > p0.W && p1.Z > p1.W && p2.Z > p2.W {
		return true
	}
	if p0.Z < 0 && p1.Z < 0 && p2.Z < 0 {
		return true
	}
	return false
}
