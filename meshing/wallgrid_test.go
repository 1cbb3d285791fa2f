package meshing

import (
	"errors"
	"testing"

	"ebiten-caves/grid"
)

func TestNewWallGridValidation(t *testing.T) {
	tests := []struct {
		name  string
		cells []byte
		w, h  int
		scale int
	}{
		{"cell out of range", []byte{0, 1, 2, 0}, 2, 2, 1},
		{"length mismatch", []byte{0, 1, 0}, 2, 2, 1},
		{"zero width", nil, 0, 2, 1},
		{"zero scale", []byte{0, 1, 1, 0}, 2, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWallGrid(tt.cells, tt.w, tt.h, tt.scale, Vec3{})
			if !errors.Is(err, ErrInvalidWallGrid) {
				t.Errorf("expected ErrInvalidWallGrid, got %v", err)
			}
		})
	}
}

func TestNewWallGridCopiesCells(t *testing.T) {
	cells := []byte{0, 1, 1, 0}
	wg, err := NewWallGrid(cells, 2, 2, 1, Vec3{})
	if err != nil {
		t.Fatalf("NewWallGrid: %v", err)
	}
	cells[0] = 1
	if wg.At(0, 0) != 0 {
		t.Error("wall grid must own a copy of its cells")
	}
}

func TestWallGridFromMap(t *testing.T) {
	m := grid.NewMap(6, 4, 2)
	m.PositionX = 10
	m.PositionY = -4
	m.Set(1, 1, grid.TileWall)
	m.Set(2, 1, grid.TileWall)

	wg, err := WallGridFromMap(m, 1, 1, 3, 2)
	if err != nil {
		t.Fatalf("WallGridFromMap: %v", err)
	}
	if wg.Width() != 3 || wg.Height() != 2 || wg.Scale() != 2 {
		t.Errorf("grid is %dx%d scale %d, want 3x2 scale 2", wg.Width(), wg.Height(), wg.Scale())
	}
	if wg.At(0, 0) != 1 || wg.At(1, 0) != 1 || wg.At(2, 0) != 0 {
		t.Error("cells do not match the map sub-region")
	}
	pos := wg.Position()
	if pos.X != 12 || pos.Z != -2 {
		t.Errorf("position = (%g, %g), want (12, -2)", pos.X, pos.Z)
	}
}

func TestWallGridFromMapPastEdgeReadsWall(t *testing.T) {
	m := grid.NewMap(5, 5, 1)
	wg, err := WallGridFromMap(m, 3, 3, 4, 4)
	if err != nil {
		t.Fatalf("WallGridFromMap: %v", err)
	}
	if wg.At(3, 3) != 1 {
		t.Error("cells past the map edge must read wall")
	}
}

func TestWallGridInverted(t *testing.T) {
	wg, err := NewWallGrid([]byte{0, 1, 1, 0}, 2, 2, 1, Vec3{X: 5})
	if err != nil {
		t.Fatalf("NewWallGrid: %v", err)
	}
	inv := wg.Inverted()
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if inv.At(x, y) == wg.At(x, y) {
				t.Errorf("cell (%d, %d) was not flipped", x, y)
			}
		}
	}
	if inv.Position() != wg.Position() || inv.Scale() != wg.Scale() {
		t.Error("inversion must keep placement")
	}
	if wg.At(0, 0) != 0 {
		t.Error("inversion must not mutate the original")
	}
}
