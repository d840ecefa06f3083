package maze

import "fmt"

// Generate carves a perfect maze into a fresh width x height grid using
// randomized depth-first backtracking. The walk keeps its own stack, so grid
// size is not limited by call depth.
func Generate(width, height int, rng Source) (*Grid, error) {
	if rng == nil {
		return nil, fmt.Errorf("generate: nil random source")
	}

	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}

	start := Point{X: rng.Intn(width), Y: rng.Intn(height)}
	visited[start.Y][start.X] = true
	stack := []Point{start}

	candidates := make([]Direction, 0, len(directions))
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range directions {
			next := current.Step(d)
			if grid.InBounds(next) && !visited[next.Y][next.X] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			// Dead end, backtrack
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		next := grid.carve(current, d)
		visited[next.Y][next.X] = true
		stack = append(stack, next)
	}

	return grid, nil
}
