package generation

import (
	"fmt"
	"math/rand"

	"ebiten-caves/grid"
)

// smoothThreshold is the cellular automaton rule boundary: with more than
// this many wall neighbors a tile becomes wall, with fewer it becomes floor.
const smoothThreshold = 4

// MapBuilder runs the cave generation pipeline over a double-buffered pair
// of grids. Passes that must read a consistent snapshot (smoothing,
// expansion) write into the inactive buffer and swap, so no tile is ever
// computed from partially-updated state.
type MapBuilder struct {
	bufs   [2]*grid.Map
	active int
	rng    *rand.Rand
}

// NewMapBuilder creates a builder for a width x height grid. Dimensions are
// validated up front so a bad configuration fails before any generation work.
func NewMapBuilder(width, height, squareSize int) (*MapBuilder, error) {
	if width < 5 || height < 5 {
		return nil, fmt.Errorf("%w: map dimensions %dx%d are below the 5x5 minimum", ErrInvalidConfig, width, height)
	}
	if squareSize < 1 {
		return nil, fmt.Errorf("%w: square size %d must be at least 1", ErrInvalidConfig, squareSize)
	}
	return &MapBuilder{
		bufs: [2]*grid.Map{
			grid.NewMap(width, height, squareSize),
			grid.NewMap(width, height, squareSize),
		},
	}, nil
}

// Map returns the active buffer. The caller should Clone the result if it
// outlives further pipeline steps.
func (b *MapBuilder) Map() *grid.Map {
	return b.bufs[b.active]
}

// spare returns the inactive buffer, resized if a border pass grew the grid.
func (b *MapBuilder) spare() *grid.Map {
	m := b.Map()
	s := b.bufs[1-b.active]
	if s.Width != m.Width || s.Height != m.Height {
		s = grid.NewMap(m.Width, m.Height, m.SquareSize)
		b.bufs[1-b.active] = s
	}
	return s
}

func (b *MapBuilder) swap() {
	b.active = 1 - b.active
}

// InitializeRandomFill seeds the builder's random source and fills the grid:
// the outermost ring is always Wall, each interior tile becomes Wall with
// probability density. The same seed always produces the same grid.
func (b *MapBuilder) InitializeRandomFill(density float64, seed int64) {
	b.rng = rand.New(rand.NewSource(seed))
	m := b.Map()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			switch {
			case m.OnBoundary(x, y):
				m.Set(x, y, grid.TileWall)
			case b.rng.Float64() < density:
				m.Set(x, y, grid.TileWall)
			default:
				m.Set(x, y, grid.TileFloor)
			}
		}
	}
}

// Smooth runs the cellular automaton for the given number of iterations.
// Each iteration reads the previous state from the active buffer and writes
// into the spare, then swaps, so the update is synchronous.
func (b *MapBuilder) Smooth(iterations int) {
	for i := 0; i < iterations; i++ {
		src := b.Map()
		dst := b.spare()
		for y := 0; y < src.Height; y++ {
			for x := 0; x < src.Width; x++ {
				if src.OnBoundary(x, y) {
					dst.Set(x, y, src.At(x, y))
					continue
				}
				walls := countSurroundingWalls(src, x, y)
				switch {
				case walls > smoothThreshold:
					dst.Set(x, y, grid.TileWall)
				case walls < smoothThreshold:
					dst.Set(x, y, grid.TileFloor)
				default:
					dst.Set(x, y, src.At(x, y))
				}
			}
		}
		b.swap()
	}
}

// countSurroundingWalls counts wall tiles among the 8 neighbors of (x, y),
// not including the tile itself. Off-grid neighbors count as wall.
func countSurroundingWalls(m *grid.Map, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if m.IsWall(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}

// RemoveSmallFloorRegions fills every floor region smaller than threshold
// with wall. No-op for threshold <= 0.
func (b *MapBuilder) RemoveSmallFloorRegions(threshold int) {
	if threshold <= 0 {
		return
	}
	m := b.Map()
	for _, region := range grid.Regions(m, grid.TileFloor) {
		if region.Size() < threshold {
			fillRegion(m, region, grid.TileWall)
		}
	}
}

// RemoveSmallWallRegions clears every wall region smaller than threshold to
// floor, except wall regions touching the outer boundary: the boundary is
// load-bearing and never removable regardless of its size. No-op for
// threshold <= 0.
func (b *MapBuilder) RemoveSmallWallRegions(threshold int) {
	if threshold <= 0 {
		return
	}
	m := b.Map()

	// Pre-visit every wall component attached to the outer ring so the
	// region scan below never considers them.
	visited := make([]bool, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.OnBoundary(x, y) || visited[y*m.Width+x] || !m.IsWall(x, y) {
				continue
			}
			grid.RegionAt(m, x, y, visited)
		}
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if visited[y*m.Width+x] || !m.IsWall(x, y) {
				continue
			}
			region := grid.RegionAt(m, x, y, visited)
			if region.Size() < threshold {
				fillRegion(m, region, grid.TileFloor)
			}
		}
	}
}

func fillRegion(m *grid.Map, region grid.Region, t grid.Tile) {
	for _, c := range region.Tiles {
		m.Set(int(c.X), int(c.Y), t)
	}
}

// ExpandRegions dilates the floor area outward by radius tiles using a
// Euclidean disk stencil. Growth is measured from the floor set as it stood
// on entry: tiles opened by the pass never seed further growth, so a single
// call grows by exactly radius. The outermost ring is never opened. No-op
// for radius <= 0.
func (b *MapBuilder) ExpandRegions(radius int) {
	if radius <= 0 {
		return
	}
	src := b.Map()
	dst := b.spare()
	dst.CopyFrom(src)

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			if src.At(x, y) != grid.TileFloor {
				continue
			}
			carveDisk(dst, grid.C(x, y), radius)
		}
	}
	b.swap()
}

// carveDisk opens every tile within Euclidean distance radius of center,
// skipping the outermost ring.
func carveDisk(m *grid.Map, center grid.Coord, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			x, y := int(center.X)+dx, int(center.Y)+dy
			if !m.InBounds(x, y) || m.OnBoundary(x, y) {
				continue
			}
			m.Set(x, y, grid.TileFloor)
		}
	}
}

// ApplyBorder grows the grid by borderSize wall tiles on every side, with
// the old grid copied centered inside the new one. No-op for
// borderSize <= 0.
func (b *MapBuilder) ApplyBorder(borderSize int) {
	if borderSize <= 0 {
		return
	}
	old := b.Map()
	bordered := grid.NewMap(old.Width+2*borderSize, old.Height+2*borderSize, old.SquareSize)
	bordered.PositionX = old.PositionX - float64(borderSize*old.SquareSize)
	bordered.PositionY = old.PositionY - float64(borderSize*old.SquareSize)
	bordered.Fill(grid.TileWall)
	for y := 0; y < old.Height; y++ {
		for x := 0; x < old.Width; x++ {
			bordered.Set(x+borderSize, y+borderSize, old.At(x, y))
		}
	}
	b.bufs[b.active] = bordered
}
