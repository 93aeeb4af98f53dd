// Package core provides fundamental types for the snake simulation and the
// platform around it. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Cell is a position on the grid in signed cell coordinates.
// The arena is centered on the origin with +y pointing up.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by dx, dy.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// Opposite returns the reverse of d. Total over all four directions.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Delta returns the unit cell offset for one move in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Bounds describes the arena extent in cell coordinates.
// A cell is inside when MinX <= x < MaxX and MinY <= y < MaxY.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// NewBounds builds origin-centered bounds for a width*height arena,
// covering [-w/2, w/2) x [-h/2, h/2).
func NewBounds(width, height int) Bounds {
	return Bounds{
		MinX: -width / 2,
		MaxX: width / 2,
		MinY: -height / 2,
		MaxY: height / 2,
	}
}

// Contains reports whether c lies inside the bounds.
func (b Bounds) Contains(c Cell) bool {
	return c.X >= b.MinX && c.X < b.MaxX && c.Y >= b.MinY && c.Y < b.MaxY
}

// Width returns the horizontal extent in cells.
func (b Bounds) Width() int {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent in cells.
func (b Bounds) Height() int {
	return b.MaxY - b.MinY
}

// Area returns the total number of cells inside the bounds.
func (b Bounds) Area() int {
	return b.Width() * b.Height()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
