package meshing

import (
	"bufio"
	"strconv"
	"strings"
	"testing"
)

func TestWriteOBJ(t *testing.T) {
	m := caveMap(t, 12, 10)
	chunks, err := BuildCave(m, CaveOptions{WallHeight: 2})
	if err != nil {
		t.Fatalf("BuildCave: %v", err)
	}

	var sb strings.Builder
	if err := WriteOBJ(&sb, chunks); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}
	out := sb.String()

	for _, name := range []string{"o chunk0_ceiling", "o chunk0_walls", "o chunk0_floor"} {
		if !strings.Contains(out, name) {
			t.Errorf("output is missing %q", name)
		}
	}

	totalVerts := 0
	for _, c := range chunks {
		for _, s := range c.Surfaces() {
			totalVerts += s.Mesh.VertexCount()
		}
	}

	vLines, fLines := 0, 0
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			vLines++
			if len(fields) != 4 {
				t.Fatalf("malformed vertex record %q", scanner.Text())
			}
		case "f":
			fLines++
			if len(fields) != 4 {
				t.Fatalf("malformed face record %q", scanner.Text())
			}
			for _, f := range fields[1:] {
				idx, _, ok := strings.Cut(f, "/")
				n, err := strconv.Atoi(idx)
				if !ok || err != nil {
					t.Fatalf("malformed face index %q", f)
				}
				if n < 1 || n > totalVerts {
					t.Fatalf("face index %d outside 1..%d", n, totalVerts)
				}
			}
		}
	}
	if vLines != totalVerts {
		t.Errorf("wrote %d vertex records, want %d", vLines, totalVerts)
	}
	if fLines == 0 {
		t.Error("no face records written")
	}
}

func TestWriteOBJEmpty(t *testing.T) {
	var sb strings.Builder
	if err := WriteOBJ(&sb, nil); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}
	if sb.Len() != 0 {
		t.Errorf("no chunks must write no output, got %q", sb.String())
	}
}
