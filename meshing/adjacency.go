package meshing

import "fmt"

// maxTrianglesPerVertex bounds how many triangles any one vertex may join.
// Marching-squares topology never produces more than 8; exceeding the cap
// means the mesh did not come out of this triangulator.
const maxTrianglesPerVertex = 8

// TriangleLookup maps each vertex of a mesh to the triangles containing
// it. Storage is one flat fixed-stride table, so lookups are index
// arithmetic and building it allocates exactly twice.
type TriangleLookup struct {
	counts []uint8
	table  []Triangle // stride maxTrianglesPerVertex per vertex
}

// NewTriangleLookup builds the lookup from a mesh's final buffers.
func NewTriangleLookup(mesh *MeshData) (*TriangleLookup, error) {
	l := &TriangleLookup{
		counts: make([]uint8, mesh.VertexCount()),
		table:  make([]Triangle, mesh.VertexCount()*maxTrianglesPerVertex),
	}
	for t := 0; t < mesh.TriangleCount(); t++ {
		a, b, c := mesh.TriangleVertices(Triangle(t))
		for _, v := range [3]VertexIndex{a, b, c} {
			if err := l.add(v, Triangle(t)); err != nil {
				return nil, err
			}
		}
	}
	return l, nil
}

func (l *TriangleLookup) add(v VertexIndex, t Triangle) error {
	n := l.counts[v]
	if n >= maxTrianglesPerVertex {
		return fmt.Errorf("%w: vertex %d joins more than %d triangles", ErrAdjacencyOverflow, v, maxTrianglesPerVertex)
	}
	l.table[int(v)*maxTrianglesPerVertex+int(n)] = t
	l.counts[v] = n + 1
	return nil
}

// Count returns how many triangles contain vertex v.
func (l *TriangleLookup) Count(v VertexIndex) int {
	return int(l.counts[v])
}

// Triangles appends the triangles containing v to buf and returns it.
// Passing a reused buffer keeps outline tracing allocation-free.
func (l *TriangleLookup) Triangles(v VertexIndex, buf []Triangle) []Triangle {
	base := int(v) * maxTrianglesPerVertex
	return append(buf, l.table[base:base+l.Count(v)]...)
}

// SharedTriangles counts the triangles containing both a and b. One shared
// triangle means the edge a-b lies on the mesh boundary; more than one
// means it is interior.
func (l *TriangleLookup) SharedTriangles(a, b VertexIndex) int {
	baseA := int(a) * maxTrianglesPerVertex
	baseB := int(b) * maxTrianglesPerVertex
	shared := 0
	for i := 0; i < l.Count(a); i++ {
		for j := 0; j < l.Count(b); j++ {
			if l.table[baseA+i] == l.table[baseB+j] {
				shared++
			}
		}
	}
	return shared
}
