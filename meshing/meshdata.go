package meshing

import (
	"errors"
	"fmt"
)

// Error classes raised at the triangulation boundary. Invariant violations
// (bad wall grid contents, oversized grids, buffer overflow) are the
// caller's configuration to fix; a broken outline means the tile grid
// upstream violated a topology invariant and regeneration is the only
// remedy.
var (
	ErrInvalidWallGrid   = errors.New("invalid wall grid")
	ErrGridTooLarge      = errors.New("grid exceeds maximum chunk size")
	ErrVertexOverflow    = errors.New("vertex buffer overflow")
	ErrTriangleOverflow  = errors.New("triangle buffer overflow")
	ErrAdjacencyOverflow = errors.New("per-vertex triangle count overflow")
	ErrBrokenOutline     = errors.New("outline trace could not close a loop")
)

// MaxVertices is the hard cap on vertices per mesh; mesh formats commonly
// index vertices with 16 bits.
const MaxVertices = 1 << 16

// Vec3 is a world-space position. The ground plane is XZ; Y is up.
type Vec3 struct {
	X, Y, Z float32
}

// Vec2 is a texture coordinate.
type Vec2 struct {
	U, V float32
}

// VertexIndex indexes the vertex buffer of one mesh. It deliberately
// supports only comparison and increment, not arithmetic, so it can never
// be confused with a triangle-slot offset.
type VertexIndex uint16

// Triangle identifies one triangle of a mesh as the index of its triple of
// slots in the index buffer: triangle t occupies slots 3t, 3t+1, 3t+2.
type Triangle uint16

// MeshData is a plain-buffer intermediate mesh: vertex positions, texture
// coordinates and triangle indices, with no rendering-engine types. Chunks
// build these independently on worker goroutines; only the (excluded)
// host layer ever turns them into engine meshes.
type MeshData struct {
	Vertices []Vec3
	UVs      []Vec2
	Indices  []VertexIndex
}

// VertexCount returns the number of vertices in the mesh.
func (m *MeshData) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// AddVertex appends a vertex and returns its index.
func (m *MeshData) AddVertex(pos Vec3, uv Vec2) (VertexIndex, error) {
	if len(m.Vertices) >= MaxVertices {
		return 0, fmt.Errorf("%w: mesh already holds %d vertices", ErrVertexOverflow, MaxVertices)
	}
	m.Vertices = append(m.Vertices, pos)
	m.UVs = append(m.UVs, uv)
	return VertexIndex(len(m.Vertices) - 1), nil
}

// AddTriangle appends one triangle.
func (m *MeshData) AddTriangle(a, b, c VertexIndex) error {
	if m.TriangleCount() >= MaxVertices {
		return fmt.Errorf("%w: mesh already holds %d triangles", ErrTriangleOverflow, MaxVertices)
	}
	m.Indices = append(m.Indices, a, b, c)
	return nil
}

// TriangleVertices returns the three vertex indices of triangle t.
func (m *MeshData) TriangleVertices(t Triangle) (a, b, c VertexIndex) {
	i := int(t) * 3
	return m.Indices[i], m.Indices[i+1], m.Indices[i+2]
}

// ReverseWinding flips the facing of every triangle in place.
func (m *MeshData) ReverseWinding() {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		m.Indices[i+1], m.Indices[i+2] = m.Indices[i+2], m.Indices[i+1]
	}
}
