package raster

import (
	"math"

	"github.com/trophyraster/raster/pkg/clip"
	"github.com/trophyraster/raster/pkg/color"
	"github.com/trophyraster/raster/pkg/geom"
	"github.com/trophyraster/raster/pkg/math3d"
	"github.com/trophyraster/raster/pkg/mesh"
	"github.com/trophyraster/raster/pkg/texture"
)

// MeshRenderer is the narrow interface the rasterizer needs from a mesh,
// kept separate from the concrete mesh.Mesh type so callers can draw any
// indexed geometry (including mocks in tests) without this package
// importing pkg/mesh's full surface or pkg/mesh importing pkg/raster.
type MeshRenderer interface {
	TriangleCount() int
	TriangleAt(i int) mesh.Triangle
}

// ambient is the flat ambient term added to every Lambertian sample so
// unlit surfaces are still dimly visible instead of pure black.
var ambient = math3d.V3(0.2, 0.2, 0.2)

// DefaultLightDir is the fixed light direction normalize((1, 1, 1)): the
// Lambertian term this engine generalizes from a hardcoded constant to a
// caller-supplied lightDir (the teacher's own parameterized lightDir idiom
// in pkg/render/rasterizer_opt.go). DrawTriangle/DrawMesh take lightDir
// explicitly; pass DefaultLightDir to reproduce the fixed-light formula.
var DefaultLightDir = math3d.V3(1, 1, 1).Normalize()

// Rasterizer owns a framebuffer and matching depth buffer and draws
// triangles and meshes into them.
type Rasterizer struct {
	FB    *Framebuffer
	Depth *DepthBuffer

	// DisableBackfaceCulling turns off the clip stage's backface
	// rejection, useful for wireframe/debug views of double-sided data.
	DisableBackfaceCulling bool
}

// New creates a rasterizer with a framebuffer and depth buffer of the
// given dimensions.
func New(width, height int) *Rasterizer {
	return &Rasterizer{
		FB:    NewFramebuffer(width, height),
		Depth: NewDepthBuffer(width, height),
	}
}

// Width returns the framebuffer width in pixels.
func (r *Rasterizer) Width() int { return r.FB.Width }

// Height returns the framebuffer height in pixels.
func (r *Rasterizer) Height() int { return r.FB.Height }

// Clear resets the framebuffer to argb and the depth buffer to +Inf, so
// every triangle — including one sitting exactly on the far plane —
// passes the first depth test against a freshly cleared buffer.
func (r *Rasterizer) Clear(argb uint32) {
	r.FB.Clear(argb)
	r.Depth.Clear(float32(math.Inf(1)))
}

// DrawTriangle runs one clip-space triangle through cull, near-plane
// clip, and the per-pixel rasterization loop. lightDir points from the
// surface toward the light; tex may be nil for untextured (vertex-color)
// triangles.
func (r *Rasterizer) DrawTriangle(clipTri mesh.Triangle, tex *texture.Texture, lightDir math3d.Vec3) {
	if !r.DisableBackfaceCulling && clip.IsBackface(clipTri) {
		return
	}
	if clip.TrivialReject(clipTri) {
		return
	}

	result := clip.ClipNearPlane(clipTri)
	switch result.Kind {
	case clip.KindNone:
		return
	case clip.KindOne:
		r.rasterizeClipped(result.Triangles[0], tex, lightDir)
	case clip.KindTwo:
		r.rasterizeClipped(result.Triangles[0], tex, lightDir)
		r.rasterizeClipped(result.Triangles[1], tex, lightDir)
	}
}

// screenVertex is a triangle vertex after perspective divide and screen
// mapping, carrying everything the per-pixel loop needs alongside 1/w
// for perspective-correct interpolation.
type screenVertex struct {
	screen math3d.Vec2
	ndcZ   float64
	invW   float64
	normal math3d.Vec3 // pre-divided by w
	vcolor math3d.Vec3 // pre-divided by w
	uv     math3d.Vec2 // pre-divided by w
}

// rasterizeClipped rasterizes a triangle already known to be entirely in
// front of the near plane (clip.ClipNearPlane's contract).
func (r *Rasterizer) rasterizeClipped(tri mesh.Triangle, tex *texture.Texture, lightDir math3d.Vec3) {
	var sv [3]screenVertex
	verts := [3]mesh.Vertex{tri.V0, tri.V1, tri.V2}

	for i, v := range verts {
		w := v.Position.W
		invW := 1.0 / w
		ndc := v.Position.Scale(invW)

		sv[i].screen = math3d.V2(
			color.MapToRange(ndc.X, -1, 1, 0, float64(r.Width())),
			color.MapToRange(-ndc.Y, -1, 1, 0, float64(r.Height())),
		)
		sv[i].ndcZ = ndc.Z
		sv[i].invW = invW
		sv[i].normal = v.Normal.Scale(invW)
		sv[i].vcolor = v.Color.Scale(invW)
		sv[i].uv = v.UV.Scale(invW)
	}

	bounds := geom.TriangleBounds(sv[0].screen, sv[1].screen, sv[2].screen, r.Width(), r.Height())
	if bounds.Empty() {
		return
	}

	a0, b0, c0 := geom.EdgeCoeffs(sv[1].screen, sv[2].screen)
	a1, b1, c1 := geom.EdgeCoeffs(sv[2].screen, sv[0].screen)
	a2, b2, c2 := geom.EdgeCoeffs(sv[0].screen, sv[1].screen)

	area := geom.EdgeFunction(sv[0].screen, sv[1].screen, sv[2].screen)
	if area == 0 {
		return
	}
	invArea := 1.0 / area

	lightDir = lightDir.Normalize()

	px := float64(bounds.Left) + 0.5
	py := float64(bounds.Top) + 0.5
	w0Row := geom.EvalEdge(a0, b0, c0, px, py)
	w1Row := geom.EvalEdge(a1, b1, c1, px, py)
	w2Row := geom.EvalEdge(a2, b2, c2, px, py)

	width := r.Width()

	for y := bounds.Top; y <= bounds.Bottom; y++ {
		w0, w1, w2 := w0Row, w1Row, w2Row
		rowOffset := y * width

		for x := bounds.Left; x <= bounds.Right; x++ {
			if geom.Covers(w0, w1, w2, area) {
				bc0, bc1, bc2 := w0*invArea, w1*invArea, w2*invArea
				depth := bc0*sv[0].ndcZ + bc1*sv[1].ndcZ + bc2*sv[2].ndcZ

				idx := rowOffset + x
				if depth < float64(r.Depth.Values[idx]) {
					omega := bc0*sv[0].invW + bc1*sv[1].invW + bc2*sv[2].invW
					if omega != 0 {
						recipOmega := 1.0 / omega

						normal := sv[0].normal.Scale(bc0).Add(sv[1].normal.Scale(bc1)).Add(sv[2].normal.Scale(bc2)).Scale(recipOmega).Normalize()
						vcolor := sv[0].vcolor.Scale(bc0).Add(sv[1].vcolor.Scale(bc1)).Add(sv[2].vcolor.Scale(bc2)).Scale(recipOmega)
						uv := sv[0].uv.Scale(bc0).Add(sv[1].uv.Scale(bc1)).Add(sv[2].uv.Scale(bc2)).Scale(recipOmega)

						surfaceColor := vcolor
						if tex != nil {
							argb := tex.Sample(uv)
							_, tr, tg, tb := color.UnpackARGB8(argb)
							surfaceColor = math3d.V3(float64(tr)/255, float64(tg)/255, float64(tb)/255)
						}

						intensity := math.Max(0, normal.Dot(lightDir))
						shaded := ambient.Add(surfaceColor.Scale(intensity))
						shaded = shaded.Min(math3d.V3(1, 1, 1))

						r.Depth.Values[idx] = float32(depth)
						r.FB.Pixels[idx] = color.PackARGB8(
							255,
							color.Clamp8(shaded.X*255),
							color.Clamp8(shaded.Y*255),
							color.Clamp8(shaded.Z*255),
						)
					}
				}
			}

			w0 += a0
			w1 += a1
			w2 += a2
		}

		w0Row += b0
		w1Row += b1
		w2Row += b2
	}
}

// DrawMesh transforms every triangle of m by mvp (model-view-projection)
// and model (for world-space normals/lighting position), then draws it.
func (r *Rasterizer) DrawMesh(m MeshRenderer, mvp, model math3d.Mat4, tex *texture.Texture, lightDir math3d.Vec3) {
	cofactor := model.Cofactor()
	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.TriangleAt(i)
		clipTri := mesh.Triangle{
			V0: transformForDraw(tri.V0, mvp, cofactor),
			V1: transformForDraw(tri.V1, mvp, cofactor),
			V2: transformForDraw(tri.V2, mvp, cofactor),
		}
		r.DrawTriangle(clipTri, tex, lightDir)
	}
}

func transformForDraw(v mesh.Vertex, mvp math3d.Mat4, normalCofactor math3d.Mat4) mesh.Vertex {
	v.Position = mvp.MulVec4(math3d.V4FromV3(v.Position.Vec3(), 1))
	v.Normal = normalCofactor.MulVec3Dir(v.Normal).Normalize()
	return v
}
