package mesh

import "github.com/trophyraster/raster/pkg/math3d"

// Mesh is an indexed triangle mesh: a flat vertex list plus a list of
// index triples into it.
type Mesh struct {
	Name      string
	Vertices  []Vertex
	Triangles [][3]int

	boundsMin math3d.Vec3
	boundsMax math3d.Vec3
	boundsSet bool
}

// New creates an empty, named mesh.
func New(name string) *Mesh {
	return &Mesh{Name: name}
}

// FromSection builds a mesh from a single section of vertices and
// indices.
func FromSection(name string, triangles [][3]int, vertices []Vertex) *Mesh {
	m := New(name)
	m.AddSection(triangles, vertices)
	return m
}

// AddSection appends vertices and indices as one more section of the
// mesh, rebasing triangles's indices by the vertex count already present
// so a caller can union multiple sub-meshes (e.g. glTF primitives)
// without renumbering them by hand.
func (m *Mesh) AddSection(triangles [][3]int, vertices []Vertex) {
	offset := len(m.Vertices)
	m.Vertices = append(m.Vertices, vertices...)
	for _, tri := range triangles {
		m.Triangles = append(m.Triangles, [3]int{
			tri[0] + offset,
			tri[1] + offset,
			tri[2] + offset,
		})
	}
	m.boundsSet = false
}

// TriangleAt returns the fully-populated Triangle for triangle index i.
func (m *Mesh) TriangleAt(i int) Triangle {
	idx := m.Triangles[i]
	return NewTriangle(m.Vertices[idx[0]], m.Vertices[idx[1]], m.Vertices[idx[2]])
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// CalculateNormals computes a flat per-face normal and assigns it to
// every vertex of that face (vertices shared across faces get
// overwritten by the last face visited, same as flat shading implies).
func (m *Mesh) CalculateNormals() {
	for _, tri := range m.Triangles {
		v0 := m.Vertices[tri[0]].Position.Vec3()
		v1 := m.Vertices[tri[1]].Position.Vec3()
		v2 := m.Vertices[tri[2]].Position.Vec3()
		normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
		m.Vertices[tri[0]].Normal = normal
		m.Vertices[tri[1]].Normal = normal
		m.Vertices[tri[2]].Normal = normal
	}
}

// CalculateSmoothNormals accumulates face normals per vertex and
// normalizes the result, producing smooth (Gouraud-ready) shading
// normals instead of CalculateNormals' flat ones.
func (m *Mesh) CalculateSmoothNormals() {
	accum := make([]math3d.Vec3, len(m.Vertices))
	for _, tri := range m.Triangles {
		v0 := m.Vertices[tri[0]].Position.Vec3()
		v1 := m.Vertices[tri[1]].Position.Vec3()
		v2 := m.Vertices[tri[2]].Position.Vec3()
		normal := v1.Sub(v0).Cross(v2.Sub(v0))
		accum[tri[0]] = accum[tri[0]].Add(normal)
		accum[tri[1]] = accum[tri[1]].Add(normal)
		accum[tri[2]] = accum[tri[2]].Add(normal)
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = accum[i].Normalize()
	}
}

// CalculateBounds computes the mesh's axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}
	min := m.Vertices[0].Position.Vec3()
	max := min
	for _, v := range m.Vertices[1:] {
		p := v.Position.Vec3()
		min = min.Min(p)
		max = max.Max(p)
	}
	m.boundsMin, m.boundsMax = min, max
	m.boundsSet = true
}

// Bounds returns the mesh's bounding box, computing it first if stale.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	if !m.boundsSet {
		m.CalculateBounds()
	}
	return m.boundsMin, m.boundsMax
}

// Center returns the midpoint of the mesh's bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	min, max := m.Bounds()
	return min.Add(max).Scale(0.5)
}
