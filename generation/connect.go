package generation

import (
	"math"
	"sort"

	"ebiten-caves/grid"
)

// Room is a connected floor region together with the subset of its tiles
// bordering wall, which is all the connectivity search ever needs to look at.
type Room struct {
	Tiles []grid.Coord
	Edge  []grid.Coord
}

// roomsFrom extracts one Room per connected floor component.
func roomsFrom(m *grid.Map) []Room {
	regions := grid.Regions(m, grid.TileFloor)
	rooms := make([]Room, 0, len(regions))
	for _, r := range regions {
		rooms = append(rooms, Room{
			Tiles: r.Tiles,
			Edge:  r.EdgeTiles(m),
		})
	}
	return rooms
}

// roomConnection is a candidate tunnel between two rooms: the closest tile
// pair found so far and its distance. Dist stays +Inf until a pair is seen.
type roomConnection struct {
	roomA, roomB int
	tileA, tileB grid.Coord
	dist         float64
}

// update records a candidate tile pair if it beats the best seen so far.
func (c *roomConnection) update(a, b grid.Coord, dist float64) {
	if dist < c.dist {
		c.tileA, c.tileB = a, b
		c.dist = dist
	}
}

// bestConnection estimates the shortest edge-tile pair between two rooms.
// The scan is deliberately approximate: after measuring distance d between
// a pair, the inner index jumps ahead by d instead of 1, and the outer
// index jumps by the best distance found for that outer tile. A large
// measured distance rules out a wide neighborhood of candidates, so the
// search is near-linear while the true shortest connection, being only a
// few tiles long, is still found or very nearly found. Do not replace this
// with an exact pairwise search; its output feeds the tunnel layout.
func bestConnection(indexA, indexB int, a, b Room) roomConnection {
	conn := roomConnection{roomA: indexA, roomB: indexB, dist: math.Inf(1)}
	for i := 0; i < len(a.Edge); {
		tileA := a.Edge[i]
		best := math.Inf(1)
		for j := 0; j < len(b.Edge); {
			tileB := b.Edge[j]
			d := tileA.Distance(tileB)
			conn.update(tileA, tileB, d)
			if d < best {
				best = d
			}
			j += max(1, int(d))
		}
		i += max(1, int(best))
	}
	return conn
}

// spanningConnections selects the minimal set of candidate connections that
// joins every room into one component: Kruskal's algorithm over room
// indices, shortest candidates first.
func spanningConnections(candidates []roomConnection, roomCount int) []roomConnection {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	uf := newUnionFind(roomCount)
	var selected []roomConnection
	for _, c := range candidates {
		if uf.union(c.roomA, c.roomB) {
			selected = append(selected, c)
		}
	}
	return selected
}

// unionFind is a disjoint-set forest over dense int indices.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]] // path halving
		i = uf.parent[i]
	}
	return i
}

// union merges the sets containing a and b, reporting whether they were
// previously disjoint.
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	uf.parent[ra] = rb
	return true
}

// ConnectFloors guarantees every floor tile is reachable from every other:
// it finds one candidate connection per pair of disjoint floor regions,
// keeps a minimum spanning subset, and carves a tunnel of the given radius
// along each kept connection. A single-room map needs no tunnels and is
// left untouched. No-op for tunnelRadius <= 0.
func (b *MapBuilder) ConnectFloors(tunnelRadius int) {
	if tunnelRadius <= 0 {
		return
	}
	m := b.Map()
	rooms := roomsFrom(m)
	if len(rooms) < 2 {
		return
	}

	var candidates []roomConnection
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			candidates = append(candidates, bestConnection(i, j, rooms[i], rooms[j]))
		}
	}

	for _, conn := range spanningConnections(candidates, len(rooms)) {
		carveTunnel(m, conn.tileA, conn.tileB, tunnelRadius)
	}
}

// carveTunnel opens a corridor between two tiles: a disk of the given
// radius cleared around every point of the rasterized line between them.
func carveTunnel(m *grid.Map, from, to grid.Coord, radius int) {
	for c := range from.LineTo(to) {
		carveDisk(m, c, radius)
	}
}
