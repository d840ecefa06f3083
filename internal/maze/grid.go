package maze

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Grid is a row-major rectangle of cells. Cells[y][x] addresses column x of row y.
type Grid struct {
	Width  int
	Height int
	Cells  [][]Cell
}

// NewGrid creates a grid with every wall closed.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrConfiguration, width, height)
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}, nil
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cell returns the cell at p. p must be in bounds.
func (g *Grid) Cell(p Point) Cell {
	return g.Cells[p.Y][p.X]
}

// carve opens the wall between p and its neighbour in direction d on both sides.
func (g *Grid) carve(p Point, d Direction) Point {
	next := p.Step(d)
	g.Cells[p.Y][p.X].Open(d)
	g.Cells[next.Y][next.X].Open(d.Opposite())
	return next
}

// connected reports whether p can pass to its in-bounds neighbour in direction d.
func (g *Grid) connected(p Point, d Direction) bool {
	next := p.Step(d)
	if !g.InBounds(next) {
		return false
	}
	return g.Cell(p).IsOpen(d) && g.Cell(next).IsOpen(d.Opposite())
}

// OpenPassages counts the open wall pairs between neighbouring cells.
// Boundary openings are not counted.
func (g *Grid) OpenPassages() int {
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			if g.connected(p, Right) {
				count++
			}
			if g.connected(p, Down) {
				count++
			}
		}
	}
	return count
}

// Reachable returns the number of cells reachable from start through open interior walls.
func (g *Grid) Reachable(start Point) int {
	if !g.InBounds(start) {
		return 0
	}

	visited := mapset.New[Point]()
	visited.Put(start)
	stack := []Point{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range directions {
			if !g.connected(p, d) {
				continue
			}
			next := p.Step(d)
			if !visited.Has(next) {
				visited.Put(next)
				stack = append(stack, next)
			}
		}
	}

	return visited.Size()
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.Height)
	for y := range cells {
		cells[y] = make([]Cell, g.Width)
		copy(cells[y], g.Cells[y])
	}
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for x := 0; x < g.Width; x++ {
		if g.Cells[0][x].Up {
			b.WriteString("   +")
		} else {
			b.WriteString("---+")
		}
	}
	b.WriteString("\n")

	for y := 0; y < g.Height; y++ {
		if g.Cells[y][0].Left {
			b.WriteString(" ")
		} else {
			b.WriteString("|")
		}
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x].Right {
				b.WriteString("    ")
			} else {
				b.WriteString("   |")
			}
		}
		b.WriteString("\n")

		b.WriteString("+")
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x].Down {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
