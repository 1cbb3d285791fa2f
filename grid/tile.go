package grid

// Tile is one cell of the map grid.
type Tile byte

// Tile types. The numeric values line up with the 0/1 byte cells the
// meshing layer consumes.
const (
	TileFloor Tile = 0
	TileWall  Tile = 1
)

// Map is a rectangular Tile grid with a world-space placement. Dimensions
// are fixed at construction; only cell values change afterwards.
type Map struct {
	Width      int
	Height     int
	SquareSize int     // world units per tile
	PositionX  float64 // world-space offset of tile (0,0)
	PositionY  float64

	tiles []Tile // row-major, y*Width+x
}

// NewMap creates a map of the given dimensions with every tile set to Floor.
func NewMap(width, height, squareSize int) *Map {
	return &Map{
		Width:      width,
		Height:     height,
		SquareSize: squareSize,
		tiles:      make([]Tile, width*height),
	}
}

// At returns the tile at (x, y). Out-of-bounds coordinates read as Wall,
// so callers can probe past the edge without their own bounds checks.
func (m *Map) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.tiles[y*m.Width+x]
}

// Set assigns the tile at (x, y). Out-of-bounds writes are ignored.
func (m *Map) Set(x, y int, t Tile) {
	if !m.InBounds(x, y) {
		return
	}
	m.tiles[y*m.Width+x] = t
}

// InBounds reports whether (x, y) lies inside the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsWall reports whether the tile at (x, y) is solid.
func (m *Map) IsWall(x, y int) bool {
	return m.At(x, y) == TileWall
}

// OnBoundary reports whether (x, y) lies on the outermost ring of tiles.
func (m *Map) OnBoundary(x, y int) bool {
	return x == 0 || x == m.Width-1 || y == 0 || y == m.Height-1
}

// Fill sets every tile to t.
func (m *Map) Fill(t Tile) {
	for i := range m.tiles {
		m.tiles[i] = t
	}
}

// Clone returns a deep copy of the map, including its world placement.
func (m *Map) Clone() *Map {
	c := &Map{
		Width:      m.Width,
		Height:     m.Height,
		SquareSize: m.SquareSize,
		PositionX:  m.PositionX,
		PositionY:  m.PositionY,
		tiles:      make([]Tile, len(m.tiles)),
	}
	copy(c.tiles, m.tiles)
	return c
}

// CopyFrom overwrites this map's cells with another map's cells. Both maps
// must have identical dimensions.
func (m *Map) CopyFrom(src *Map) {
	copy(m.tiles, src.tiles)
}

// Count returns the number of tiles of the given type.
func (m *Map) Count(t Tile) int {
	n := 0
	for _, v := range m.tiles {
		if v == t {
			n++
		}
	}
	return n
}
