package grid

import "testing"

func TestMapAtOutOfBoundsReadsWall(t *testing.T) {
	m := NewMap(4, 4, 1)
	probes := []Coord{C(-1, 0), C(0, -1), C(4, 0), C(0, 4), C(100, 100)}
	for _, p := range probes {
		if m.At(int(p.X), int(p.Y)) != TileWall {
			t.Errorf("At(%d, %d) out of bounds should read Wall", p.X, p.Y)
		}
	}
}

func TestMapSetOutOfBoundsIgnored(t *testing.T) {
	m := NewMap(4, 4, 1)
	m.Set(-1, 2, TileWall)
	m.Set(4, 2, TileWall)
	if m.Count(TileWall) != 0 {
		t.Error("out-of-bounds Set must not change any cell")
	}
}

func TestMapCloneIsDeep(t *testing.T) {
	m := NewMap(3, 3, 2)
	m.PositionX = 1.5
	m.PositionY = -3
	m.Set(1, 1, TileWall)

	c := m.Clone()
	if c.Width != 3 || c.Height != 3 || c.SquareSize != 2 {
		t.Errorf("clone dimensions differ: %dx%d square %d", c.Width, c.Height, c.SquareSize)
	}
	if c.PositionX != 1.5 || c.PositionY != -3 {
		t.Errorf("clone position differs: (%f, %f)", c.PositionX, c.PositionY)
	}
	if c.At(1, 1) != TileWall {
		t.Error("clone lost cell value")
	}

	c.Set(1, 1, TileFloor)
	if m.At(1, 1) != TileWall {
		t.Error("mutating the clone must not affect the original")
	}
}

func TestMapOnBoundary(t *testing.T) {
	m := NewMap(5, 4, 1)
	if !m.OnBoundary(0, 2) || !m.OnBoundary(4, 0) || !m.OnBoundary(2, 3) {
		t.Error("edge tiles must report OnBoundary")
	}
	if m.OnBoundary(2, 2) || m.OnBoundary(1, 1) {
		t.Error("interior tiles must not report OnBoundary")
	}
}
