package meshing

import "fmt"

// MaxChunkSize is the largest wall grid the triangulator accepts per axis.
// Marching squares can emit up to 6 vertices per square, and
// 6 * (MaxChunkSize-1)^2 must stay under the 16-bit vertex cap; larger maps
// are split into chunks of at most this size.
const MaxChunkSize = 104

// HeightFunc samples the vertical position of a surface at a world (x, z).
type HeightFunc func(x, z float64) float64

// flatHeight is the zero-allocation default surface.
func flatHeight(height float64) HeightFunc {
	return func(x, z float64) float64 {
		return height
	}
}

// Triangulate converts a wall grid into a surface mesh covering its wall
// area, using marching squares over every 2x2 cell block. The surface's
// vertical position comes from height; nil means a flat surface at the
// grid's own position.
//
// Traversal is row by row, bottom to top, left to right within a row; the
// vertex cache's dedup depends on that order.
func Triangulate(w *WallGrid, height HeightFunc) (*MeshData, error) {
	if w.Width() > MaxChunkSize || w.Height() > MaxChunkSize {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d per axis", ErrGridTooLarge, w.Width(), w.Height(), MaxChunkSize)
	}
	if height == nil {
		height = flatHeight(0)
	}

	mesh := &MeshData{}
	cache := newVertexCache()
	var fan [6]VertexIndex

	for y := 0; y < w.Height()-1; y++ {
		for x := 0; x < w.Width()-1; x++ {
			config := int(w.At(x, y)) |
				int(w.At(x+1, y))<<1 |
				int(w.At(x+1, y+1))<<2 |
				int(w.At(x, y+1))<<3

			points := squareConfigTable[config]
			for i, pt := range points {
				v, err := vertexForPoint(mesh, cache, w, height, x, y, int(pt))
				if err != nil {
					return nil, err
				}
				fan[i] = v
			}
			for i := 2; i < len(points); i++ {
				if err := mesh.AddTriangle(fan[0], fan[i-1], fan[i]); err != nil {
					return nil, err
				}
			}
		}
		cache.finishRow()
	}
	return mesh, nil
}

// vertexForPoint returns the mesh vertex for a canonical point of square
// (x, y), creating it on first sight and answering from the row cache on
// every later one.
func vertexForPoint(mesh *MeshData, cache *vertexCache, w *WallGrid, height HeightFunc, x, y, pt int) (VertexIndex, error) {
	pos := canonicalPosition(x, y, pt)
	if v, ok := cache.lookup(pos); ok {
		return v, nil
	}

	// Grid-space position in tile units; half-cell point offsets.
	off := pointOffsets[pt]
	gx := float64(x) + float64(off[0])/2
	gy := float64(y) + float64(off[1])/2

	origin := w.Position()
	wx := float64(origin.X) + gx*float64(w.Scale())
	wz := float64(origin.Z) + gy*float64(w.Scale())
	wy := float64(origin.Y) + height(wx, wz)

	uv := Vec2{
		U: float32(gx / float64(w.Width()-1)),
		V: float32(gy / float64(w.Height()-1)),
	}
	v, err := mesh.AddVertex(Vec3{X: float32(wx), Y: float32(wy), Z: float32(wz)}, uv)
	if err != nil {
		return 0, err
	}
	cache.insert(pos, v)
	return v, nil
}

