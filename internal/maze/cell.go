// Package maze provides perfect-maze generation, tile expansion and route search.
package maze

import "strings"

// Direction identifies one side of a cell.
type Direction int

const (
	Left Direction = iota
	Up
	Down
	Right
)

// directions is the candidate enumeration order used by generation and search.
var directions = [...]Direction{Left, Up, Down, Right}

// Delta returns the unit offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the direction facing back across the same wall.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Up:
		return Down
	case Down:
		return Up
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	case Right:
		return "right"
	}
	return "unknown"
}

// Point is a column/row coordinate, used both in cell space and tile space.
type Point struct {
	X, Y int
}

// Step returns the neighbouring point in the given direction.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Cell holds the open state of its four walls.
type Cell struct {
	Left  bool // Left is true when the left wall is open.
	Up    bool // Up is true when the upper wall is open.
	Down  bool // Down is true when the lower wall is open.
	Right bool // Right is true when the right wall is open.
}

// IsOpen reports whether the wall on side d is open.
func (c Cell) IsOpen(d Direction) bool {
	switch d {
	case Left:
		return c.Left
	case Up:
		return c.Up
	case Down:
		return c.Down
	case Right:
		return c.Right
	}
	return false
}

// Open clears the wall on side d.
func (c *Cell) Open(d Direction) {
	switch d {
	case Left:
		c.Left = true
	case Up:
		c.Up = true
	case Down:
		c.Down = true
	case Right:
		c.Right = true
	}
}

// Walls returns the wall flags ordered left, up, down, right.
func (c Cell) Walls() [4]bool {
	return [4]bool{c.Left, c.Up, c.Down, c.Right}
}

// Signature encodes the wall flags as a string of 0s and 1s, e.g. "1001".
// Renderers use it as a sprite frame key.
func (c Cell) Signature() string {
	var b strings.Builder
	for _, open := range c.Walls() {
		if open {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
