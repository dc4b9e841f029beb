// Package models loads external 3D asset formats into the engine's core
// mesh and texture types, keeping the asset-format boundary (glTF, image
// codecs) out of pkg/mesh and pkg/texture entirely.
package models

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"
	"unsafe"

	"github.com/qmuntal/gltf"

	"github.com/trophyraster/raster/pkg/math3d"
	"github.com/trophyraster/raster/pkg/mesh"
	"github.com/trophyraster/raster/pkg/texture"
)

// GLTFLoader loads glTF/GLB documents into mesh.Mesh.
type GLTFLoader struct {
	CalculateNormals bool
	SmoothNormals    bool
}

// NewGLTFLoader creates a loader with default options: compute normals
// when the source omits them, preferring smooth (averaged) normals.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		CalculateNormals: true,
		SmoothNormals:    true,
	}
}

// LoadGLB loads a binary glTF (.glb) file with default loader options.
func LoadGLB(path string) (*mesh.Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a glTF or GLB file and returns a mesh.Mesh.
func (l *GLTFLoader) Load(path string) (*mesh.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	m := mesh.New(filepath.Base(path))
	for _, prim := range doc.Meshes {
		if err := l.processMesh(doc, path, prim, m); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", prim.Name, err)
		}
	}

	hasNormals := false
	for _, v := range m.Vertices {
		if v.Normal.Len() > 0.001 {
			hasNormals = true
			break
		}
	}
	if l.CalculateNormals && !hasNormals {
		if l.SmoothNormals {
			m.CalculateSmoothNormals()
		} else {
			m.CalculateNormals()
		}
	}

	m.CalculateBounds()
	return m, nil
}

// processMesh extracts one glTF mesh's triangle primitives into m.
func (l *GLTFLoader) processMesh(doc *gltf.Document, path string, gm *gltf.Mesh, m *mesh.Mesh) error {
	for _, prim := range gm.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := readVec3Accessor(doc, path, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var normals []math3d.Vec3
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = readVec3Accessor(doc, path, normIdx)
			if err != nil {
				return fmt.Errorf("read normals: %w", err)
			}
		}

		var uvs []math3d.Vec2
		if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
			uvs, err = readVec2Accessor(doc, path, uvIdx)
			if err != nil {
				return fmt.Errorf("read uvs: %w", err)
			}
		}

		vertices := make([]mesh.Vertex, len(positions))
		white := math3d.V3(1, 1, 1)
		for i := range positions {
			v := mesh.NewVertex(positions[i], math3d.Zero3(), white, math3d.V2(0, 0))
			if i < len(normals) {
				v.Normal = normals[i]
			}
			if i < len(uvs) {
				// glTF's UV origin is top-left (V grows downward already),
				// which matches this engine's Sample convention directly.
				v.UV = uvs[i]
			}
			vertices[i] = v
		}

		var triangles [][3]int
		if prim.Indices != nil {
			indices, err := readIndices(doc, path, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			triangles = facesFromIndices(indices)
		} else {
			sequential := make([]int, len(positions))
			for i := range sequential {
				sequential[i] = i
			}
			triangles = facesFromIndices(sequential)
		}

		m.AddSection(triangles, vertices)
	}
	return nil
}

// facesFromIndices groups a flat index stream into triangles, reversing
// each triangle's winding: glTF's front faces are CCW, this engine's are
// CW (a consequence of the screen-space Y-flip in pkg/raster).
func facesFromIndices(indices []int) [][3]int {
	var faces [][3]int
	for i := 0; i+2 < len(indices); i += 3 {
		faces = append(faces, [3]int{indices[i], indices[i+2], indices[i+1]})
	}
	return faces
}

// readVec3Accessor reads VEC3 float data from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, path string, accessorIdx int) ([]math3d.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	data, err := readAccessorData(doc, path, accessor)
	if err != nil {
		return nil, err
	}
	floats, ok := data.([][3]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected data type for VEC3")
	}
	result := make([]math3d.Vec3, len(floats))
	for i, f := range floats {
		result[i] = math3d.V3(float64(f[0]), float64(f[1]), float64(f[2]))
	}
	return result, nil
}

// readVec2Accessor reads VEC2 float data from a glTF accessor.
func readVec2Accessor(doc *gltf.Document, path string, accessorIdx int) ([]math3d.Vec2, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec2 {
		return nil, fmt.Errorf("expected VEC2, got %v", accessor.Type)
	}
	data, err := readAccessorData(doc, path, accessor)
	if err != nil {
		return nil, err
	}
	floats, ok := data.([][2]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected data type for VEC2")
	}
	result := make([]math3d.Vec2, len(floats))
	for i, f := range floats {
		result[i] = math3d.V2(float64(f[0]), float64(f[1]))
	}
	return result, nil
}

// readIndices reads a scalar index accessor of any component width.
func readIndices(doc *gltf.Document, path string, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	data, err := readAccessorData(doc, path, accessor)
	if err != nil {
		return nil, err
	}
	switch v := data.(type) {
	case []uint8:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	case []uint16:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	case []uint32:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("unexpected index type: %T", data)
	}
}

// readAccessorData reads the raw typed data backing a glTF accessor,
// resolving the owning buffer's bytes whether it is embedded (GLB) or an
// external file sitting alongside the document.
func readAccessorData(doc *gltf.Document, path string, accessor *gltf.Accessor) (any, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]

	bufData, err := bufferBytes(path, &buffer)
	if err != nil {
		return nil, err
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	count := accessor.Count

	switch accessor.Type {
	case gltf.AccessorVec3:
		if stride == 0 {
			stride = 12
		}
		result := make([][3]float32, count)
		for i := range count {
			offset := start + i*stride
			for j := range 3 {
				result[i][j] = readFloat32(bufData[offset+j*4:])
			}
		}
		return result, nil

	case gltf.AccessorVec2:
		if stride == 0 {
			stride = 8
		}
		result := make([][2]float32, count)
		for i := range count {
			offset := start + i*stride
			for j := range 2 {
				result[i][j] = readFloat32(bufData[offset+j*4:])
			}
		}
		return result, nil

	case gltf.AccessorScalar:
		if stride == 0 {
			switch accessor.ComponentType {
			case gltf.ComponentUbyte:
				stride = 1
			case gltf.ComponentUshort:
				stride = 2
			case gltf.ComponentUint:
				stride = 4
			}
		}
		switch accessor.ComponentType {
		case gltf.ComponentUbyte:
			result := make([]uint8, count)
			for i := range count {
				result[i] = bufData[start+i*stride]
			}
			return result, nil
		case gltf.ComponentUshort:
			result := make([]uint16, count)
			for i := range count {
				offset := start + i*stride
				result[i] = uint16(bufData[offset]) | uint16(bufData[offset+1])<<8
			}
			return result, nil
		case gltf.ComponentUint:
			result := make([]uint32, count)
			for i := range count {
				offset := start + i*stride
				result[i] = uint32(bufData[offset]) |
					uint32(bufData[offset+1])<<8 |
					uint32(bufData[offset+2])<<16 |
					uint32(bufData[offset+3])<<24
			}
			return result, nil
		}
	}

	return nil, fmt.Errorf("unsupported accessor type: %v / %v", accessor.Type, accessor.ComponentType)
}

// bufferBytes resolves a glTF buffer's bytes, reading an external file
// relative to the document's own path when the buffer isn't embedded.
func bufferBytes(docPath string, buffer *gltf.Buffer) ([]byte, error) {
	if buffer.URI == "" {
		if buffer.Data == nil {
			return nil, fmt.Errorf("buffer has no data")
		}
		return buffer.Data, nil
	}
	data, err := os.ReadFile(filepath.Join(filepath.Dir(docPath), buffer.URI))
	if err != nil {
		return nil, fmt.Errorf("read external buffer %q: %w", buffer.URI, err)
	}
	return data, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return *(*float32)(unsafe.Pointer(&bits))
}

// LoadGLTFWithTexture loads a glTF/GLB file and its first usable texture
// (embedded or external, relative to the document), for callers that want
// both a mesh and the image to sample it with in one call.
func LoadGLTFWithTexture(path string) (*mesh.Mesh, *texture.Texture, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open gltf: %w", err)
	}

	m, err := NewGLTFLoader().Load(path)
	if err != nil {
		return nil, nil, err
	}

	for _, img := range doc.Images {
		data, err := imageBytes(path, doc, &img)
		if err != nil || len(data) == 0 {
			continue
		}
		decoded, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			continue
		}
		return m, texture.FromImage(decoded), nil
	}

	return m, nil, nil
}

// imageBytes resolves a glTF image's raw bytes, embedded in a buffer view
// or read from an external file relative to the document.
func imageBytes(docPath string, doc *gltf.Document, img *gltf.Image) ([]byte, error) {
	if img.BufferView != nil {
		bv := doc.BufferViews[*img.BufferView]
		buf := doc.Buffers[bv.Buffer]
		data, err := bufferBytes(docPath, &buf)
		if err != nil {
			return nil, err
		}
		return data[bv.ByteOffset : bv.ByteOffset+bv.ByteLength], nil
	}
	if img.URI != "" {
		return os.ReadFile(filepath.Join(filepath.Dir(docPath), img.URI))
	}
	return nil, fmt.Errorf("image has neither buffer view nor uri")
}
