package meshing

import (
	"errors"
	"math"
	"testing"
)

// mustWallGrid builds a wall grid from a string picture: '#' is wall,
// '.' is open. Row 0 of the picture is the top, so it lands at the highest
// y; this keeps pictures in tests readable.
func mustWallGrid(t *testing.T, scale int, position Vec3, rows []string) *WallGrid {
	t.Helper()
	height := len(rows)
	width := len(rows[0])
	cells := make([]byte, width*height)
	for i, row := range rows {
		y := height - 1 - i
		for x, ch := range row {
			if ch == '#' {
				cells[y*width+x] = 1
			}
		}
	}
	wg, err := NewWallGrid(cells, width, height, scale, position)
	if err != nil {
		t.Fatalf("NewWallGrid: %v", err)
	}
	return wg
}

func mustTriangulate(t *testing.T, wg *WallGrid) *MeshData {
	t.Helper()
	mesh, err := Triangulate(wg, nil)
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	return mesh
}

func TestTriangulateAllOpenIsEmpty(t *testing.T) {
	mesh := mustTriangulate(t, mustWallGrid(t, 1, Vec3{}, []string{
		"....",
		"....",
		"....",
	}))
	if mesh.VertexCount() != 0 || mesh.TriangleCount() != 0 {
		t.Errorf("all-open grid must yield no geometry, got %d vertices %d triangles",
			mesh.VertexCount(), mesh.TriangleCount())
	}
}

func TestTriangulateAllWallDedup(t *testing.T) {
	// A 3x3 all-wall grid has 2x2 squares of configuration 15. Vertices
	// must dedup to the 9 distinct grid corners, not 4 per square.
	mesh := mustTriangulate(t, mustWallGrid(t, 1, Vec3{}, []string{
		"###",
		"###",
		"###",
	}))
	if mesh.VertexCount() != 9 {
		t.Errorf("vertex count = %d, want 9 distinct corners", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 8 {
		t.Errorf("triangle count = %d, want 2 per square over 4 squares", mesh.TriangleCount())
	}
}

func TestTriangulateNoCoincidentVertices(t *testing.T) {
	mesh := mustTriangulate(t, mustWallGrid(t, 1, Vec3{}, []string{
		"##..#",
		"#.###",
		"###.#",
		"..###",
	}))
	seen := map[Vec3]VertexIndex{}
	for i, v := range mesh.Vertices {
		if prev, ok := seen[v]; ok {
			t.Errorf("vertices %d and %d share position %v", prev, i, v)
		}
		seen[v] = VertexIndex(i)
	}
}

func TestTriangulateWorldProjection(t *testing.T) {
	wg := mustWallGrid(t, 3, Vec3{X: 10, Z: -6}, []string{
		"##",
		"##",
	})
	mesh := mustTriangulate(t, wg)
	if mesh.VertexCount() != 4 {
		t.Fatalf("vertex count = %d, want 4", mesh.VertexCount())
	}

	want := map[Vec3]bool{
		{10, 0, -6}: true,
		{13, 0, -6}: true,
		{10, 0, -3}: true,
		{13, 0, -3}: true,
	}
	for _, v := range mesh.Vertices {
		if !want[v] {
			t.Errorf("unexpected vertex position %v", v)
		}
	}
}

func TestTriangulateHeightFunc(t *testing.T) {
	wg := mustWallGrid(t, 1, Vec3{}, []string{
		"##",
		"##",
	})
	mesh, err := Triangulate(wg, func(x, z float64) float64 {
		return 2*x + z
	})
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	for _, v := range mesh.Vertices {
		want := 2*v.X + v.Z
		if math.Abs(float64(v.Y-want)) > 1e-5 {
			t.Errorf("vertex at (%g, %g) has height %g, want %g", v.X, v.Z, v.Y, want)
		}
	}
}

func TestTriangulateDeterministic(t *testing.T) {
	rows := []string{
		"#..##",
		"##.##",
		".####",
		"#..#.",
	}
	a := mustTriangulate(t, mustWallGrid(t, 1, Vec3{}, rows))
	b := mustTriangulate(t, mustWallGrid(t, 1, Vec3{}, rows))

	if a.VertexCount() != b.VertexCount() || len(a.Indices) != len(b.Indices) {
		t.Fatal("runs over the same grid differ in size")
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] || a.UVs[i] != b.UVs[i] {
			t.Fatalf("vertex %d differs between runs", i)
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			t.Fatalf("index %d differs between runs", i)
		}
	}
}

func TestTriangulateSingleWallCorner(t *testing.T) {
	// One wall cell in an open 2x2 grid is a single configuration with one
	// corner set: one triangle of corner plus two midpoints.
	mesh := mustTriangulate(t, mustWallGrid(t, 1, Vec3{}, []string{
		".#",
		"..",
	}))
	if mesh.VertexCount() != 3 || mesh.TriangleCount() != 1 {
		t.Errorf("got %d vertices %d triangles, want 3 and 1",
			mesh.VertexCount(), mesh.TriangleCount())
	}
}

func TestTriangulateRejectsOversizedGrid(t *testing.T) {
	cells := make([]byte, (MaxChunkSize+1)*2)
	wg, err := NewWallGrid(cells, MaxChunkSize+1, 2, 1, Vec3{})
	if err != nil {
		t.Fatalf("NewWallGrid: %v", err)
	}
	if _, err := Triangulate(wg, nil); !errors.Is(err, ErrGridTooLarge) {
		t.Errorf("expected ErrGridTooLarge, got %v", err)
	}
}

func TestTriangulateUVRange(t *testing.T) {
	mesh := mustTriangulate(t, mustWallGrid(t, 2, Vec3{X: 4, Z: 4}, []string{
		"####",
		"####",
		"####",
	}))
	for i, uv := range mesh.UVs {
		if uv.U < 0 || uv.U > 1 || uv.V < 0 || uv.V > 1 {
			t.Errorf("uv %d = (%g, %g) outside [0, 1]", i, uv.U, uv.V)
		}
	}
}
