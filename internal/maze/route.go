package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Route is an ordered list of tile coordinates from start to goal.
type Route []Point

// Len returns the number of tiles on the route.
func (r Route) Len() int {
	return len(r)
}

// Contains reports whether p is on the route.
func (r Route) Contains(p Point) bool {
	for _, q := range r {
		if q == p {
			return true
		}
	}
	return false
}

// frame is one node of the search stack: a position and the directions not yet tried from it.
type frame struct {
	pos     Point
	pending []Direction
}

// FindRoute searches the tile grid for a path between two cells, given in cell
// coordinates. The search is an iterative depth-first backtrack: the stack
// holds the current path, so on success it is the route.
func FindRoute(tiles *Tiles, startX, startY, goalX, goalY int) (Route, error) {
	// A nil grid has no cells, the same as an empty one.
	if tiles == nil {
		return nil, fmt.Errorf("find route: %w: nil tile grid", ErrOutOfBounds)
	}

	width, height := tiles.CellWidth(), tiles.CellHeight()
	for _, c := range []Point{{X: startX, Y: startY}, {X: goalX, Y: goalY}} {
		if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height {
			return nil, fmt.Errorf("%w: cell (%d,%d) outside %dx%d", ErrOutOfBounds, c.X, c.Y, width, height)
		}
	}

	start := CellToTile(Point{X: startX, Y: startY})
	goal := CellToTile(Point{X: goalX, Y: goalY})

	visited := mapset.New[Point]()
	// pending lists the passable, unvisited neighbours of p.
	pending := func(p Point) []Direction {
		var open []Direction
		for _, d := range directions {
			next := p.Step(d)
			if tiles.At(next).IsPassable() && !visited.Has(next) {
				open = append(open, d)
			}
		}
		return open
	}

	visited.Put(start)
	stack := []*frame{{pos: start, pending: pending(start)}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.pos == goal {
			route := make(Route, len(stack))
			for i, f := range stack {
				route[i] = f.pos
			}
			return route, nil
		}

		if len(top.pending) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.pending[0]
		top.pending = top.pending[1:]
		next := top.pos.Step(d)
		// Another branch may have reached it since the frame was built.
		if visited.Has(next) {
			continue
		}
		visited.Put(next)
		stack = append(stack, &frame{pos: next, pending: pending(next)})
	}

	return nil, fmt.Errorf("%w: (%d,%d) to (%d,%d)", ErrRouteNotFound, startX, startY, goalX, goalY)
}
