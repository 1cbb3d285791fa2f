package meshing

// Canonical positions on a unit square, numbered clockwise from the
// top-left corner. Even numbers are corners, odd numbers edge midpoints.
const (
	ptTopLeft = iota
	ptTopMid
	ptTopRight
	ptRightMid
	ptBottomRight
	ptBottomMid
	ptBottomLeft
	ptLeftMid
)

// pointOffsets maps each canonical point to its position within the unit
// square, in half-cell units so every value stays integral: (0,0) is the
// bottom-left corner, (2,2) the top-right.
var pointOffsets = [8][2]int{
	ptTopLeft:     {0, 2},
	ptTopMid:      {1, 2},
	ptTopRight:    {2, 2},
	ptRightMid:    {2, 1},
	ptBottomRight: {2, 0},
	ptBottomMid:   {1, 0},
	ptBottomLeft:  {0, 0},
	ptLeftMid:     {0, 1},
}

// squareConfigTable maps each of the 16 marching-squares configurations to
// the polygon covering the wall area of the square, as an ordered point
// list triangulated as a fan from its first entry. The configuration bits
// are bottom-left + 2*bottom-right + 4*top-right + 8*top-left. A pure data
// table: indexing it is the whole dispatch.
//
// Polygons with more than four points lead with an edge midpoint, so no
// configuration places a grid corner in more than two of its triangles.
// Corners are shared by up to four squares; this bound keeps every vertex
// within the per-vertex adjacency cap.
var squareConfigTable = [16][]uint8{
	0:  {},
	1:  {ptBottomMid, ptBottomLeft, ptLeftMid},
	2:  {ptRightMid, ptBottomRight, ptBottomMid},
	3:  {ptRightMid, ptBottomRight, ptBottomLeft, ptLeftMid},
	4:  {ptTopMid, ptTopRight, ptRightMid},
	5:  {ptTopMid, ptTopRight, ptRightMid, ptBottomMid, ptBottomLeft, ptLeftMid},
	6:  {ptTopMid, ptTopRight, ptBottomRight, ptBottomMid},
	7:  {ptTopMid, ptTopRight, ptBottomRight, ptBottomLeft, ptLeftMid},
	8:  {ptTopLeft, ptTopMid, ptLeftMid},
	9:  {ptTopLeft, ptTopMid, ptBottomMid, ptBottomLeft},
	10: {ptTopMid, ptRightMid, ptBottomRight, ptBottomMid, ptLeftMid, ptTopLeft},
	11: {ptTopMid, ptRightMid, ptBottomRight, ptBottomLeft, ptTopLeft},
	12: {ptTopLeft, ptTopRight, ptRightMid, ptLeftMid},
	13: {ptRightMid, ptBottomMid, ptBottomLeft, ptTopLeft, ptTopRight},
	14: {ptLeftMid, ptTopLeft, ptTopRight, ptBottomRight, ptBottomMid},
	15: {ptTopLeft, ptTopRight, ptBottomRight, ptBottomLeft},
}

// localPosition is a packed point-on-the-grid identity: a cell coordinate
// pair plus one of the 8 canonical square points in a single uint32, giving
// O(1) equality and a 4-byte footprint. Bits 0-3 hold the point, bits 4-17
// the cell x, bits 18-31 the cell y.
type localPosition uint32

func packLocalPosition(cellX, cellY, point int) localPosition {
	return localPosition(point&0xf) |
		localPosition(cellX&0x3fff)<<4 |
		localPosition(cellY&0x3fff)<<18
}

// canonicalPosition maps a square's point to the one encoding every square
// sharing that physical point agrees on. Points on a square's top or right
// belong to the neighbor above or to the right, so the canonical owner of
// any point only ever uses its bottom-left corner, bottom midpoint or left
// midpoint.
func canonicalPosition(cellX, cellY, point int) localPosition {
	switch point {
	case ptTopLeft:
		return packLocalPosition(cellX, cellY+1, ptBottomLeft)
	case ptTopMid:
		return packLocalPosition(cellX, cellY+1, ptBottomMid)
	case ptTopRight:
		return packLocalPosition(cellX+1, cellY+1, ptBottomLeft)
	case ptRightMid:
		return packLocalPosition(cellX+1, cellY, ptLeftMid)
	case ptBottomRight:
		return packLocalPosition(cellX+1, cellY, ptBottomLeft)
	default: // ptBottomMid, ptBottomLeft, ptLeftMid own themselves
		return packLocalPosition(cellX, cellY, point)
	}
}

// vertexCache deduplicates vertices at shared square edges. A point on a
// square's left edge can only recur in the square directly to its left, a
// point on the bottom edge only in the square directly below, so two rows
// of canonical positions are all that ever needs retaining: the canonical
// row the current square row writes at its own height, and the one at the
// height above. Memory stays proportional to grid width, not area.
//
// Correctness depends on row-by-row, left-to-right traversal with a
// finishRow call after each square row.
type vertexCache struct {
	below   map[localPosition]VertexIndex // canonical row = current square row
	current map[localPosition]VertexIndex // canonical row = square row + 1
	rowY    int
}

func newVertexCache() *vertexCache {
	return &vertexCache{
		below:   make(map[localPosition]VertexIndex),
		current: make(map[localPosition]VertexIndex),
	}
}

// rowFor picks the map holding the given canonical position. pos must sit
// on the cache's current or next canonical row.
func (c *vertexCache) rowFor(pos localPosition) map[localPosition]VertexIndex {
	if int(pos>>18) == c.rowY {
		return c.below
	}
	return c.current
}

func (c *vertexCache) lookup(pos localPosition) (VertexIndex, bool) {
	v, ok := c.rowFor(pos)[pos]
	return v, ok
}

func (c *vertexCache) insert(pos localPosition, v VertexIndex) {
	c.rowFor(pos)[pos] = v
}

// finishRow promotes the row being built to finalized and starts a fresh
// one. Must run once after every completed square row.
func (c *vertexCache) finishRow() {
	c.below, c.current = c.current, c.below
	clear(c.current)
	c.rowY++
}
