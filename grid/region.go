package grid

// Region is a maximal connected set of same-type tiles under 4-directional
// adjacency, in BFS discovery order.
type Region struct {
	Kind  Tile
	Tiles []Coord
}

// Size returns the number of tiles in the region.
func (r Region) Size() int {
	return len(r.Tiles)
}

// Regions extracts every connected component of the given tile type.
func Regions(m *Map, kind Tile) []Region {
	visited := make([]bool, m.Width*m.Height)
	var regions []Region

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if visited[y*m.Width+x] || m.At(x, y) != kind {
				continue
			}
			regions = append(regions, regionFrom(m, C(x, y), visited))
		}
	}
	return regions
}

// RegionAt returns the connected component containing (x, y). The visited
// slice must hold Width*Height flags; tiles already marked visited are
// never re-entered, so one slice can be shared across a whole scan.
func RegionAt(m *Map, x, y int, visited []bool) Region {
	return regionFrom(m, C(x, y), visited)
}

// regionFrom flood-fills outward from start, marking visited flags as it
// goes. BFS with an explicit queue; the grids here are far too large for
// recursive fill.
func regionFrom(m *Map, start Coord, visited []bool) Region {
	kind := m.At(int(start.X), int(start.Y))
	region := Region{Kind: kind}

	queue := []Coord{start}
	visited[int(start.Y)*m.Width+int(start.X)] = true

	for head := 0; head < len(queue); head++ {
		tile := queue[head]
		region.Tiles = append(region.Tiles, tile)

		for _, n := range tile.Neighbors4() {
			nx, ny := int(n.X), int(n.Y)
			if !m.InBounds(nx, ny) || visited[ny*m.Width+nx] {
				continue
			}
			if m.At(nx, ny) != kind {
				continue
			}
			visited[ny*m.Width+nx] = true
			queue = append(queue, n)
		}
	}
	return region
}

// EdgeTiles returns the subset of the region's tiles that touch a tile of
// the opposite type (4-directional). Out-of-bounds counts as Wall, so a
// floor region against the map edge still yields edge tiles there.
func (r Region) EdgeTiles(m *Map) []Coord {
	var edges []Coord
	for _, tile := range r.Tiles {
		for _, n := range tile.Neighbors4() {
			if m.At(int(n.X), int(n.Y)) != r.Kind {
				edges = append(edges, tile)
				break
			}
		}
	}
	return edges
}
