package meshing

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ serializes every chunk's surfaces as one Wavefront OBJ stream:
// an `o` record per chunk surface, `v`/`vt` records for its buffers, and
// `f` triangle records with OBJ's global 1-based indexing. The output
// opens in any standard mesh viewer, which is the point: generated caves
// stay inspectable without the host engine.
func WriteOBJ(w io.Writer, chunks []ChunkMesh) error {
	bw := bufio.NewWriter(w)
	vertexBase := 1

	for ci, chunk := range chunks {
		for _, surface := range chunk.Surfaces() {
			mesh := surface.Mesh
			if _, err := fmt.Fprintf(bw, "o chunk%d_%s\n", ci, surface.Name); err != nil {
				return err
			}
			for _, v := range mesh.Vertices {
				if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
					return err
				}
			}
			for _, uv := range mesh.UVs {
				if _, err := fmt.Fprintf(bw, "vt %g %g\n", uv.U, uv.V); err != nil {
					return err
				}
			}
			for t := 0; t < mesh.TriangleCount(); t++ {
				a, b, c := mesh.TriangleVertices(Triangle(t))
				ia, ib, ic := vertexBase+int(a), vertexBase+int(b), vertexBase+int(c)
				if _, err := fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", ia, ia, ib, ib, ic, ic); err != nil {
					return err
				}
			}
			vertexBase += mesh.VertexCount()
		}
	}
	return bw.Flush()
}
