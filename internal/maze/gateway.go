package maze

import "fmt"

// ApplyGateways opens one exterior wall for each gateway, in order. The side is
// chosen by the first matching boundary: left column, top row, right column,
// bottom row. A corner therefore opens on its left or top side only.
//
// Every gateway is validated before the grid is touched.
func ApplyGateways(grid *Grid, gateways []Point) error {
	sides := make([]Direction, len(gateways))
	for i, gw := range gateways {
		side, ok := boundarySide(grid, gw)
		if !ok {
			return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrInvalidGateway, gw.X, gw.Y, grid.Width, grid.Height)
		}
		sides[i] = side
	}

	for i, gw := range gateways {
		grid.Cells[gw.Y][gw.X].Open(sides[i])
	}
	return nil
}

// boundarySide returns the exterior side a gateway at p opens.
func boundarySide(grid *Grid, p Point) (Direction, bool) {
	if !grid.InBounds(p) {
		return 0, false
	}

	switch {
	case p.X == 0:
		return Left, true
	case p.Y == 0:
		return Up, true
	case p.X == grid.Width-1:
		return Right, true
	case p.Y == grid.Height-1:
		return Down, true
	}
	return 0, false
}
