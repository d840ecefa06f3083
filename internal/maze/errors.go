package maze

import "errors"

var (
	// ErrConfiguration is returned for non-positive maze dimensions.
	ErrConfiguration = errors.New("invalid maze dimensions")
	// ErrInvalidGateway is returned when a gateway does not lie on the grid boundary.
	ErrInvalidGateway = errors.New("gateway is not on the maze boundary")
	// ErrOutOfBounds is returned when a route endpoint lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrRouteNotFound is returned when the search exhausts every branch.
	ErrRouteNotFound = errors.New("route not found")
)
