package raster

import (
	"github.com/trophyraster/raster/pkg/math3d"
	"github.com/trophyraster/raster/pkg/mesh"
)

// DrawLine draws a line between two framebuffer pixels using Bresenham's
// algorithm.
func (r *Rasterizer) DrawLine(x0, y0, x1, y1 int, argb uint32) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		r.FB.SetPixel(x0, y0, argb)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// worldToScreen projects a clip-space point to screen pixels, reporting
// whether it lies in front of the camera (clip.W > 0); it does not clip
// against the frustum, matching the wireframe renderer's "draw if either
// endpoint projects" tolerance for off-screen lines.
func worldToScreen(clip math3d.Vec4, width, height int) (x, y int, visible bool) {
	if clip.W <= 0 {
		return 0, 0, false
	}
	ndc := clip.PerspectiveDivide()
	sx := (ndc.X + 1) * 0.5 * float64(width)
	sy := (1 - ndc.Y) * 0.5 * float64(height)
	return int(sx), int(sy), true
}

// DrawLine3D projects two world-space points through mvp and draws the
// resulting screen-space line, skipping it only when both ends are behind
// the camera.
func (r *Rasterizer) DrawLine3D(mvp math3d.Mat4, p0, p1 math3d.Vec3, argb uint32) {
	c0 := mvp.MulVec4(math3d.V4FromV3(p0, 1))
	c1 := mvp.MulVec4(math3d.V4FromV3(p1, 1))

	x0, y0, vis0 := worldToScreen(c0, r.Width(), r.Height())
	x1, y1, vis1 := worldToScreen(c1, r.Width(), r.Height())
	if !vis0 && !vis1 {
		return
	}
	r.DrawLine(x0, y0, x1, y1, argb)
}

// DrawMeshWireframe draws every triangle edge of m, transformed by mvp, as
// a line in argb. Useful as an x-ray debug view alongside DrawMesh's
// filled rendering.
func (r *Rasterizer) DrawMeshWireframe(m MeshRenderer, mvp math3d.Mat4, argb uint32) {
	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.TriangleAt(i)
		r.drawTriangleWireframe(mvp, tri, argb)
	}
}

func (r *Rasterizer) drawTriangleWireframe(mvp math3d.Mat4, tri mesh.Triangle, argb uint32) {
	p0, p1, p2 := tri.V0.Position.Vec3(), tri.V1.Position.Vec3(), tri.V2.Position.Vec3()
	r.DrawLine3D(mvp, p0, p1, argb)
	r.DrawLine3D(mvp, p1, p2, argb)
	r.DrawLine3D(mvp, p2, p0, argb)
}
