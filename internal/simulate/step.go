// Package simulate forward-steps a fully-known grid under a parsed rule
// table, independent of the constraint-propagation search in
// internal/search. It exists to verify a solved pattern actually exhibits
// the period the search claimed, and to let a pattern be explored
// interactively outside of a search run.
package simulate

import "github.com/telepair/lifesearch/internal/rule"

// Step advances grid by one generation under table. Cells outside the grid
// are treated as permanently Dead, matching the edge convention the search
// engine applies to its own finite world. grid[y][x] must hold only
// rule.Dead or rule.Alive; the returned grid has the same dimensions.
func Step(table *rule.Table, grid [][]rule.CellState) [][]rule.CellState {
	height := len(grid)
	next := make([][]rule.CellState, height)
	for y := 0; y < height; y++ {
		width := len(grid[y])
		next[y] = make([]rule.CellState, width)
		for x := 0; x < width; x++ {
			next[y][x] = nextCellState(table, grid, x, y)
		}
	}
	return next
}

func nextCellState(table *rule.Table, grid [][]rule.CellState, x, y int) rule.CellState {
	dead, alive := 0, 0
	for _, off := range table.Offsets {
		if stateAt(grid, x+off.X, y+off.Y) == rule.Alive {
			alive++
		} else {
			dead++
		}
	}
	return table.NextState(dead, alive, stateAt(grid, x, y))
}

func stateAt(grid [][]rule.CellState, x, y int) rule.CellState {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return rule.Dead
	}
	return grid[y][x]
}

// Period reports the smallest t in [1, maxPeriod] such that stepping grid t
// times under table (with displacement dx, dy applied each generation,
// matching a moving/glider pattern) reproduces grid exactly, or 0 if no such
// t exists within maxPeriod steps.
func Period(table *rule.Table, grid [][]rule.CellState, dx, dy, maxPeriod int) int {
	current := grid
	for t := 1; t <= maxPeriod; t++ {
		current = Step(table, current)
		if equalShifted(grid, current, dx*t, dy*t) {
			return t
		}
	}
	return 0
}

func equalShifted(want, got [][]rule.CellState, dx, dy int) bool {
	for y := range want {
		for x := range want[y] {
			if want[y][x] != stateAt(got, x+dx, y+dy) {
				return false
			}
		}
	}
	return true
}
