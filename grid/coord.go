package grid

import (
	"iter"
	"math"
)

// Coord is a compact 2D tile coordinate. It is comparable, so it can key
// maps directly; the int16 components keep it at 4 bytes.
type Coord struct {
	X, Y int16
}

// C is a shorthand constructor for a Coord.
func C(x, y int) Coord {
	return Coord{X: int16(x), Y: int16(y)}
}

// Neighbors4 returns the four orthogonally adjacent coordinates.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{
		{c.X, c.Y - 1},
		{c.X - 1, c.Y},
		{c.X + 1, c.Y},
		{c.X, c.Y + 1},
	}
}

// Neighbors8 returns the eight surrounding coordinates.
func (c Coord) Neighbors8() [8]Coord {
	return [8]Coord{
		{c.X - 1, c.Y - 1},
		{c.X, c.Y - 1},
		{c.X + 1, c.Y - 1},
		{c.X - 1, c.Y},
		{c.X + 1, c.Y},
		{c.X - 1, c.Y + 1},
		{c.X, c.Y + 1},
		{c.X + 1, c.Y + 1},
	}
}

// SquaredDistance returns the squared Euclidean distance to other.
func (c Coord) SquaredDistance(other Coord) int {
	dx := int(c.X) - int(other.X)
	dy := int(c.Y) - int(other.Y)
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance to other.
func (c Coord) Distance(other Coord) float64 {
	return math.Sqrt(float64(c.SquaredDistance(other)))
}

// ChebyshevDistance returns the chessboard distance to other.
func (c Coord) ChebyshevDistance(other Coord) int {
	dx := int(c.X) - int(other.X)
	if dx < 0 {
		dx = -dx
	}
	dy := int(c.Y) - int(other.Y)
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}

// LineTo lazily enumerates the tiles on the rasterized straight line from c
// to other, both endpoints included. Used for carving tunnels between rooms.
func (c Coord) LineTo(other Coord) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		x, y := int(c.X), int(c.Y)
		dx := int(other.X) - x
		dy := int(other.Y) - y

		inverted := false
		step := sign(dx)
		gradientStep := sign(dy)

		longest := abs(dx)
		shortest := abs(dy)
		if longest < shortest {
			inverted = true
			longest, shortest = shortest, longest
			step, gradientStep = sign(dy), sign(dx)
		}

		accumulated := longest / 2
		for i := 0; i <= longest; i++ {
			if !yield(C(x, y)) {
				return
			}
			if inverted {
				y += step
			} else {
				x += step
			}
			accumulated += shortest
			if accumulated >= longest {
				accumulated -= longest
				if inverted {
					x += gradientStep
				} else {
					y += gradientStep
				}
			}
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
