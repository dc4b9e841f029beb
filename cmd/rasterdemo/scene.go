package main

import (
	"github.com/trophyraster/raster/pkg/math3d"
	"github.com/trophyraster/raster/pkg/mesh"
)

// buildCube returns a unit cube (side length 2*half) centered at the
// origin, UV-mapped per face, used as the scripted scene when no model
// file is given.
func buildCube(half float64) *mesh.Mesh {
	white := math3d.V3(1, 1, 1)
	face := func(a, b, c, d math3d.Vec3) ([3]int, [3]int, []mesh.Vertex) {
		verts := []mesh.Vertex{
			mesh.NewVertex(a, math3d.Zero3(), white, math3d.V2(0, 0)),
			mesh.NewVertex(b, math3d.Zero3(), white, math3d.V2(1, 0)),
			mesh.NewVertex(c, math3d.Zero3(), white, math3d.V2(1, 1)),
			mesh.NewVertex(d, math3d.Zero3(), white, math3d.V2(0, 1)),
		}
		return [3]int{0, 1, 2}, [3]int{0, 2, 3}, verts
	}

	h := half
	m := mesh.New("cube")
	faces := [][4]math3d.Vec3{
		{math3d.V3(-h, -h, h), math3d.V3(h, -h, h), math3d.V3(h, h, h), math3d.V3(-h, h, h)},     // +Z
		{math3d.V3(h, -h, -h), math3d.V3(-h, -h, -h), math3d.V3(-h, h, -h), math3d.V3(h, h, -h)}, // -Z
		{math3d.V3(-h, -h, -h), math3d.V3(-h, -h, h), math3d.V3(-h, h, h), math3d.V3(-h, h, -h)}, // -X
		{math3d.V3(h, -h, h), math3d.V3(h, -h, -h), math3d.V3(h, h, -h), math3d.V3(h, h, h)},     // +X
		{math3d.V3(-h, h, h), math3d.V3(h, h, h), math3d.V3(h, h, -h), math3d.V3(-h, h, -h)},     // +Y
		{math3d.V3(-h, -h, -h), math3d.V3(h, -h, -h), math3d.V3(h, -h, h), math3d.V3(-h, -h, h)}, // -Y
	}

	for _, f := range faces {
		t0, t1, verts := face(f[0], f[1], f[2], f[3])
		m.AddSection([][3]int{t0, t1}, verts)
	}

	m.CalculateNormals()
	m.CalculateBounds()
	return m
}
