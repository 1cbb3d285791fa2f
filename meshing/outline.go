package meshing

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"
)

// Outline is a closed boundary polygon of a mesh: an ordered loop of
// vertex indices with the first index repeated at the end.
type Outline []VertexIndex

// Reverse flips the loop's direction in place, which flips the facing of
// walls extruded from it.
func (o Outline) Reverse() {
	for i, j := 0, len(o)-1; i < j; i, j = i+1, j-1 {
		o[i], o[j] = o[j], o[i]
	}
}

// Perimeter returns the loop's total arc length on the ground plane.
func (o Outline) Perimeter(mesh *MeshData) float64 {
	total := 0.0
	for i := 1; i < len(o); i++ {
		a := mesh.Vertices[o[i-1]]
		b := mesh.Vertices[o[i]]
		dx := float64(b.X - a.X)
		dz := float64(b.Z - a.Z)
		total += math.Sqrt(dx*dx + dz*dz)
	}
	return total
}

// outlineTracer walks the boundary edges of one mesh.
type outlineTracer struct {
	mesh    *MeshData
	lookup  *TriangleLookup
	visited mapset.Set[VertexIndex]
	scratch []Triangle
}

// ExtractOutlines traces every closed boundary polygon separating the wall
// surface from open area. Any vertex contained in at most 3 triangles is
// guaranteed to lie on an outline, and every outline contains at least one
// such vertex, so scanning only those as entry points discovers every
// loop without testing the whole mesh.
func ExtractOutlines(mesh *MeshData, lookup *TriangleLookup) ([]Outline, error) {
	tr := &outlineTracer{
		mesh:    mesh,
		lookup:  lookup,
		visited: mapset.New[VertexIndex](),
	}

	var outlines []Outline
	for i := 0; i < mesh.VertexCount(); i++ {
		v := VertexIndex(i)
		if tr.visited.Has(v) {
			continue
		}
		n := lookup.Count(v)
		if n == 0 || n > 3 {
			continue
		}
		next, ok := tr.firstOutlineVertex(v)
		if !ok {
			// Start vertex of a degenerate loop too small to walk;
			// upstream pruning keeps these out of real maps.
			tr.visited.Put(v)
			continue
		}

		outline, err := tr.trace(v, next)
		if err != nil {
			return nil, err
		}
		outlines = append(outlines, outline)
	}
	return outlines, nil
}

// trace follows boundary edges from start via second until no unvisited
// boundary neighbor remains, then closes the loop back to start.
func (tr *outlineTracer) trace(start, second VertexIndex) (Outline, error) {
	outline := Outline{start}
	tr.visited.Put(start)

	v := second
	for {
		outline = append(outline, v)
		tr.visited.Put(v)
		next, ok := tr.nextOutlineVertex(v)
		if !ok {
			break
		}
		v = next
	}

	// The walk ends when every neighbor is visited; the final vertex must
	// still share a boundary edge with the start or the loop never closed,
	// which means the tile grid upstream broke a topology invariant.
	if tr.lookup.SharedTriangles(outline[len(outline)-1], start) != 1 {
		return nil, fmt.Errorf("%w: walk from vertex %d ended at %d", ErrBrokenOutline, start, outline[len(outline)-1])
	}
	return append(outline, start), nil
}

// firstOutlineVertex picks the neighbor that begins the walk: connected by
// a boundary edge and oriented so the wall surface lies to the edge's
// right. The orientation check keeps every traced loop running the same
// way around its wall region, which the wall builder relies on for facing.
func (tr *outlineTracer) firstOutlineVertex(v VertexIndex) (VertexIndex, bool) {
	tr.scratch = tr.lookup.Triangles(v, tr.scratch[:0])
	for _, t := range tr.scratch {
		a, b, c := tr.mesh.TriangleVertices(t)
		for _, candidate := range [3]VertexIndex{a, b, c} {
			if candidate == v || tr.visited.Has(candidate) {
				continue
			}
			if tr.isOutlineEdge(v, candidate) && tr.correctlyOriented(v, candidate, t) {
				return candidate, true
			}
		}
	}
	return 0, false
}

// nextOutlineVertex continues the walk: any unvisited vertex sharing a
// boundary edge with v. Orientation needs no re-checking past the first
// edge; a boundary loop only ever continues one way.
func (tr *outlineTracer) nextOutlineVertex(v VertexIndex) (VertexIndex, bool) {
	tr.scratch = tr.lookup.Triangles(v, tr.scratch[:0])
	for _, t := range tr.scratch {
		a, b, c := tr.mesh.TriangleVertices(t)
		for _, candidate := range [3]VertexIndex{a, b, c} {
			if candidate == v || tr.visited.Has(candidate) {
				continue
			}
			if tr.isOutlineEdge(v, candidate) {
				return candidate, true
			}
		}
	}
	return 0, false
}

// isOutlineEdge reports whether the edge a-b belongs to exactly one
// triangle.
func (tr *outlineTracer) isOutlineEdge(a, b VertexIndex) bool {
	return tr.lookup.SharedTriangles(a, b) == 1
}

// correctlyOriented reports whether walking a->b keeps the wall surface on
// the right: the shared triangle's third vertex must not lie to the left
// of the directed edge, tested by the 2D cross product on the ground
// plane.
func (tr *outlineTracer) correctlyOriented(a, b VertexIndex, t Triangle) bool {
	ta, tb, tc := tr.mesh.TriangleVertices(t)
	third := ta
	if third == a || third == b {
		third = tb
	}
	if third == a || third == b {
		third = tc
	}

	pa := tr.mesh.Vertices[a]
	pb := tr.mesh.Vertices[b]
	pc := tr.mesh.Vertices[third]
	cross := float64(pb.X-pa.X)*float64(pc.Z-pa.Z) - float64(pb.Z-pa.Z)*float64(pc.X-pa.X)
	return cross <= 0
}
