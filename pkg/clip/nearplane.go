package clip

import "github.com/trophyraster/raster/pkg/mesh"

// Kind tags the shape of a near-plane clip result.
type Kind int

const (
	// KindNone means the triangle was entirely behind the near plane.
	KindNone Kind = iota
	// KindOne means the triangle needed no clipping, or clipping left
	// exactly one triangle (two vertices were behind the plane).
	KindOne
	// KindTwo means one vertex was behind the plane, producing a quad
	// that is re-triangulated into two triangles.
	KindTwo
)

// Result is the near-plane clip outcome: None carries no triangles, One
// carries Triangles[0], Two carries Triangles[0] and Triangles[1].
type Result struct {
	Kind      Kind
	Triangles [2]mesh.Triangle
}

// ClipNearPlane clips a clip-space triangle against the near plane z=0,
// the one case this engine's clip stage re-triangulates (the redesign
// this rasterizer adopts over clipping only by depth test).
func ClipNearPlane(tri mesh.Triangle) Result {
	behind := [3]bool{
		tri.V0.Position.Z < 0,
		tri.V1.Position.Z < 0,
		tri.V2.Position.Z < 0,
	}
	count := 0
	for _, b := range behind {
		if b {
			count++
		}
	}

	switch count {
	case 0:
		return Result{Kind: KindOne, Triangles: [2]mesh.Triangle{tri}}
	case 3:
		return Result{Kind: KindNone}
	case 1:
		return clipOneBehind(tri, behind)
	default: // 2
		return clipTwoBehind(tri, behind)
	}
}

// clipOneBehind handles exactly one vertex behind the plane, producing a
// quad (two triangles) from the two surviving, now-clipped edges.
func clipOneBehind(tri mesh.Triangle, behind [3]bool) Result {
	reordered := rotateBehindFirst(tri, behind, 1)
	v0, v1, v2 := reordered.V0, reordered.V1, reordered.V2

	t1 := v0.Position.Z / (v0.Position.Z - v1.Position.Z)
	t2 := v0.Position.Z / (v0.Position.Z - v2.Position.Z)
	a := v0.Lerp(v1, t1)
	b := v0.Lerp(v2, t2)

	return Result{
		Kind: KindTwo,
		Triangles: [2]mesh.Triangle{
			mesh.NewTriangle(a, v1, v2),
			mesh.NewTriangle(a, b, v2),
		},
	}
}

// clipTwoBehind handles exactly two vertices behind the plane, shrinking
// the triangle down to the surviving corner.
func clipTwoBehind(tri mesh.Triangle, behind [3]bool) Result {
	reordered := rotateBehindFirst(tri, behind, 2)
	v0, v1, v2 := reordered.V0, reordered.V1, reordered.V2

	t1 := v0.Position.Z / (v0.Position.Z - v2.Position.Z)
	t2 := v1.Position.Z / (v1.Position.Z - v2.Position.Z)
	newV0 := v0.Lerp(v2, t1)
	newV1 := v1.Lerp(v2, t2)

	return Result{
		Kind:      KindOne,
		Triangles: [2]mesh.Triangle{mesh.NewTriangle(newV0, newV1, v2)},
	}
}

// rotateBehindFirst reorders tri so that the wantBehind vertices marked
// true in behind come first (V0 for wantBehind=1; V0,V1 for wantBehind=2),
// preserving winding order.
func rotateBehindFirst(tri mesh.Triangle, behind [3]bool, wantBehind int) mesh.Triangle {
	if wantBehind == 1 {
		switch {
		case behind[0]:
			return tri
		case behind[1]:
			return tri.Reorder(mesh.OrderBCA)
		default:
			return tri.Reorder(mesh.OrderCAB)
		}
	}
	// wantBehind == 2: exactly one vertex is in front; rotate so it lands
	// last (V2).
	switch {
	case !behind[2]:
		return tri
	case !behind[1]:
		return tri.Reorder(mesh.OrderCAB)
	default:
		return tri.Reorder(mesh.OrderBCA)
	}
}
