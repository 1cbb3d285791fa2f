package meshing

import (
	"fmt"

	"ebiten-caves/grid"
)

// WallGrid is the immutable hand-off artifact from generation to
// triangulation: a byte grid of 0 (open) and 1 (wall) cells plus the
// world-space placement of cell (0, 0) and the world size of one cell.
type WallGrid struct {
	width, height int
	scale         int
	position      Vec3
	cells         []byte // row-major, y*width+x
}

// NewWallGrid builds a wall grid from a row-major cell slice. Cells other
// than 0 and 1 are rejected; the slice is copied, so later mutation of the
// argument cannot reach the grid.
func NewWallGrid(cells []byte, width, height, scale int, position Vec3) (*WallGrid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidWallGrid, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d grid", ErrInvalidWallGrid, len(cells), width, height)
	}
	if scale < 1 {
		return nil, fmt.Errorf("%w: scale %d must be at least 1", ErrInvalidWallGrid, scale)
	}
	for i, c := range cells {
		if c > 1 {
			return nil, fmt.Errorf("%w: cell %d holds %d, want 0 or 1", ErrInvalidWallGrid, i, c)
		}
	}
	owned := make([]byte, len(cells))
	copy(owned, cells)
	return &WallGrid{
		width:    width,
		height:   height,
		scale:    scale,
		position: position,
		cells:    owned,
	}, nil
}

// WallGridFromMap snapshots the sub-region of a tile map starting at tile
// (x0, y0) with the given dimensions. The grid inherits the map's square
// size and derives its world position from the map's offset. Tiles are read
// through the map's accessor, so a sub-region reaching past the map edge
// reads wall there.
func WallGridFromMap(m *grid.Map, x0, y0, width, height int) (*WallGrid, error) {
	cells := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[y*width+x] = byte(m.At(x0+x, y0+y))
		}
	}
	position := Vec3{
		X: float32(m.PositionX) + float32(x0*m.SquareSize),
		Z: float32(m.PositionY) + float32(y0*m.SquareSize),
	}
	return NewWallGrid(cells, width, height, m.SquareSize, position)
}

// Width returns the horizontal cell count.
func (w *WallGrid) Width() int { return w.width }

// Height returns the vertical cell count.
func (w *WallGrid) Height() int { return w.height }

// Scale returns the world size of one cell.
func (w *WallGrid) Scale() int { return w.scale }

// Position returns the world position of cell (0, 0).
func (w *WallGrid) Position() Vec3 { return w.position }

// At returns the cell value at (x, y): 0 open, 1 wall.
func (w *WallGrid) At(x, y int) byte {
	return w.cells[y*w.width+x]
}

// Inverted returns a new grid with every cell flipped, used to triangulate
// the open area instead of the wall area.
func (w *WallGrid) Inverted() *WallGrid {
	cells := make([]byte, len(w.cells))
	for i, c := range w.cells {
		cells[i] = 1 - c
	}
	return &WallGrid{
		width:    w.width,
		height:   w.height,
		scale:    w.scale,
		position: w.position,
		cells:    cells,
	}
}
