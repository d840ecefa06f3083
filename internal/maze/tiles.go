package maze

import "strings"

// Tile is a single passability value of an expanded tile grid.
type Tile uint8

const (
	// TileBlocked represents an impassable tile.
	TileBlocked Tile = 0
	// TilePassable represents a walkable tile.
	TilePassable Tile = 1
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TilePassable
}

// Rune returns the tile's debug character.
func (t Tile) Rune() rune {
	if t.IsPassable() {
		return '.'
	}
	return '#'
}

// Tiles is the (2w+1) x (2h+1) passability view of a cell grid.
// Cell (x, y) is centred on tile (2x+1, 2y+1).
type Tiles struct {
	Width  int
	Height int
	Rows   [][]Tile
}

// ToTiles expands a cell grid into its tile grid. The grid is not modified.
func ToTiles(grid *Grid) *Tiles {
	width, height := 2*grid.Width+1, 2*grid.Height+1
	rows := make([][]Tile, height)
	for y := range rows {
		rows[y] = make([]Tile, width)
	}

	for cy, row := range grid.Cells {
		for cx, cell := range row {
			center := CellToTile(Point{X: cx, Y: cy})
			rows[center.Y][center.X] = TilePassable
			for _, d := range directions {
				if cell.IsOpen(d) {
					edge := center.Step(d)
					rows[edge.Y][edge.X] = TilePassable
				}
			}
		}
	}

	return &Tiles{Width: width, Height: height, Rows: rows}
}

// CellToTile maps a cell coordinate to the tile at the centre of its block.
func CellToTile(p Point) Point {
	return Point{X: 2*p.X + 1, Y: 2*p.Y + 1}
}

// CellWidth returns the number of cell columns the tile grid was built from.
func (t *Tiles) CellWidth() int {
	return (t.Width - 1) / 2
}

// CellHeight returns the number of cell rows the tile grid was built from.
func (t *Tiles) CellHeight() int {
	return (t.Height - 1) / 2
}

// InBounds reports whether p addresses a tile.
func (t *Tiles) InBounds(p Point) bool {
	return p.X >= 0 && p.X < t.Width && p.Y >= 0 && p.Y < t.Height
}

// At returns the tile at p, or TileBlocked outside the grid.
func (t *Tiles) At(p Point) Tile {
	if !t.InBounds(p) {
		return TileBlocked
	}
	return t.Rows[p.Y][p.X]
}

// IsPassable returns true if the tile at (x, y) can be walked on.
func (t *Tiles) IsPassable(x, y int) bool {
	return t.At(Point{X: x, Y: y}).IsPassable()
}

// String renders the tiles as '#' and '.' characters.
func (t *Tiles) String() string {
	return t.Render(nil)
}

// Render is String with the route tiles drawn as '*'.
func (t *Tiles) Render(route Route) string {
	var marked map[Point]struct{}
	if len(route) > 0 {
		marked = make(map[Point]struct{}, len(route))
		for _, p := range route {
			marked[p] = struct{}{}
		}
	}

	var b strings.Builder
	b.Grow((t.Width + 1) * t.Height)
	for y, row := range t.Rows {
		for x, tile := range row {
			if _, ok := marked[Point{X: x, Y: y}]; ok {
				b.WriteRune('*')
				continue
			}
			b.WriteRune(tile.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
