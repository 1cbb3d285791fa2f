package meshing

import (
	"math"
	"testing"
)

func TestBuildWallsQuadPerEdge(t *testing.T) {
	mesh := mustTriangulate(t, mustWallGrid(t, 1, Vec3{}, []string{
		"###",
		"###",
		"###",
	}))
	outlines := extract(t, mesh)

	walls, err := BuildWalls(mesh, outlines, flatHeight(0), flatHeight(5), 1)
	if err != nil {
		t.Fatalf("BuildWalls: %v", err)
	}

	edges := 0
	for _, o := range outlines {
		edges += len(o) - 1
	}
	if walls.VertexCount() != 4*edges {
		t.Errorf("wall vertex count = %d, want 4 per edge over %d edges", walls.VertexCount(), edges)
	}
	if walls.TriangleCount() != 2*edges {
		t.Errorf("wall triangle count = %d, want 2 per edge", walls.TriangleCount())
	}

	for _, v := range walls.Vertices {
		if v.Y != 0 && v.Y != 5 {
			t.Errorf("wall vertex at height %g, want 0 or 5", v.Y)
		}
	}
}

func TestBuildWallsSeamFreeU(t *testing.T) {
	mesh := mustTriangulate(t, mustWallGrid(t, 1, Vec3{}, []string{
		"###",
		"###",
		"###",
	}))
	outlines := extract(t, mesh)
	if len(outlines) != 1 {
		t.Fatalf("expected 1 outline, got %d", len(outlines))
	}

	walls, err := BuildWalls(mesh, outlines, flatHeight(0), flatHeight(3), 1)
	if err != nil {
		t.Fatalf("BuildWalls: %v", err)
	}

	// The loop's final U must land exactly on a whole texture tile so the
	// texture meets itself where the loop closes. Perimeter 8, tile size
	// 1: the last edge's far U is 8.
	maxU := float32(0)
	for _, uv := range walls.UVs {
		if uv.U > maxU {
			maxU = uv.U
		}
	}
	if math.Abs(float64(maxU)-math.Round(float64(maxU))) > 1e-4 {
		t.Errorf("final U = %g, want a whole number of texture tiles", maxU)
	}
	if maxU < 1 {
		t.Errorf("final U = %g, want at least one tile", maxU)
	}
}

func TestBuildWallsSeamFreeUNonIntegerPerimeter(t *testing.T) {
	// The diamond around a lone wall cell has perimeter 2*sqrt(2); the
	// per-outline factor must still stretch it to a whole tile count.
	mesh := mustTriangulate(t, mustWallGrid(t, 1, Vec3{}, []string{
		"...",
		".#.",
		"...",
	}))
	outlines := extract(t, mesh)

	walls, err := BuildWalls(mesh, outlines, flatHeight(0), flatHeight(1), 1)
	if err != nil {
		t.Fatalf("BuildWalls: %v", err)
	}
	maxU := float32(0)
	for _, uv := range walls.UVs {
		if uv.U > maxU {
			maxU = uv.U
		}
	}
	if math.Abs(float64(maxU)-math.Round(float64(maxU))) > 1e-4 {
		t.Errorf("final U = %g, want a whole number of texture tiles", maxU)
	}
}

func TestBuildWallsHeightFuncs(t *testing.T) {
	mesh := mustTriangulate(t, mustWallGrid(t, 1, Vec3{}, []string{
		"##",
		"##",
	}))
	outlines := extract(t, mesh)

	floor := func(x, z float64) float64 { return 0.1 * x }
	ceiling := func(x, z float64) float64 { return 4 + 0.1*z }
	walls, err := BuildWalls(mesh, outlines, floor, ceiling, 1)
	if err != nil {
		t.Fatalf("BuildWalls: %v", err)
	}
	for i, v := range walls.Vertices {
		x, z := float64(v.X), float64(v.Z)
		top := math.Abs(float64(v.Y)-ceiling(x, z)) < 1e-5
		bottom := math.Abs(float64(v.Y)-floor(x, z)) < 1e-5
		if !top && !bottom {
			t.Errorf("vertex %d height %g matches neither surface at (%g, %g)", i, v.Y, x, z)
		}
	}
}

func TestBuildWallsSkipsDegenerateOutline(t *testing.T) {
	mesh := &MeshData{}
	v, err := mesh.AddVertex(Vec3{1, 0, 1}, Vec2{})
	if err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	// A loop whose points coincide has near-zero perimeter.
	degenerate := Outline{v, v, v}

	walls, err := BuildWalls(mesh, []Outline{degenerate}, flatHeight(0), flatHeight(1), 1)
	if err != nil {
		t.Fatalf("BuildWalls: %v", err)
	}
	if walls.VertexCount() != 0 {
		t.Errorf("degenerate outline must emit no geometry, got %d vertices", walls.VertexCount())
	}
}

func TestBuildWallsNoOutlines(t *testing.T) {
	walls, err := BuildWalls(&MeshData{}, nil, nil, nil, 0)
	if err != nil {
		t.Fatalf("BuildWalls: %v", err)
	}
	if walls.VertexCount() != 0 || walls.TriangleCount() != 0 {
		t.Error("no outlines must produce an empty wall mesh")
	}
}
