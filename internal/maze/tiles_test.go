package maze

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestToTilesFirstChoice(t *testing.T) {
	grid, _ := Generate(2, 2, firstChoice{})

	want := "#####\n" +
		"#.#.#\n" +
		"#.#.#\n" +
		"#...#\n" +
		"#####\n"
	if got := ToTiles(grid).String(); got != want {
		t.Errorf("tiles:\n%s\nwant:\n%s", got, want)
	}
}

func TestToTilesLayout(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {1, 6}, {6, 1}, {8, 5}}

	for _, size := range sizes {
		grid, _ := Generate(size.w, size.h, rand.New(rand.NewSource(99)))
		if err := ApplyGateways(grid, []Point{{0, 0}, {size.w - 1, size.h - 1}}); err != nil {
			t.Fatal(err)
		}
		before := grid.Clone()

		tiles := ToTiles(grid)

		if tiles.Width != 2*size.w+1 || tiles.Height != 2*size.h+1 {
			t.Fatalf("%dx%d: tiles are %dx%d", size.w, size.h, tiles.Width, tiles.Height)
		}
		if tiles.CellWidth() != size.w || tiles.CellHeight() != size.h {
			t.Errorf("%dx%d: cell size %dx%d", size.w, size.h, tiles.CellWidth(), tiles.CellHeight())
		}

		for y := 0; y < size.h; y++ {
			for x := 0; x < size.w; x++ {
				c := CellToTile(Point{x, y})
				if !tiles.IsPassable(c.X, c.Y) {
					t.Errorf("centre of cell (%d,%d) is blocked", x, y)
				}
				for _, dx := range []int{-1, 1} {
					for _, dy := range []int{-1, 1} {
						if tiles.IsPassable(c.X+dx, c.Y+dy) {
							t.Errorf("corner (%d,%d) of cell (%d,%d) is passable", c.X+dx, c.Y+dy, x, y)
						}
					}
				}
				cell := grid.Cell(Point{x, y})
				for _, d := range directions {
					edge := c.Step(d)
					if tiles.At(edge).IsPassable() != cell.IsOpen(d) {
						t.Errorf("edge %s of cell (%d,%d) does not mirror its wall", d, x, y)
					}
				}
			}
		}

		if !reflect.DeepEqual(before.Cells, grid.Cells) {
			t.Errorf("%dx%d: ToTiles modified its input", size.w, size.h)
		}
	}
}

func TestTilesAtOutOfRange(t *testing.T) {
	grid, _ := NewGrid(1, 1)
	tiles := ToTiles(grid)

	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 1}, {1, 3}} {
		if tiles.At(p) != TileBlocked {
			t.Errorf("At(%v) = %v, want blocked", p, tiles.At(p))
		}
	}
}
