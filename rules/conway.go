package rules

/*
ApplyConwayRules computes the baseline outcome for one cell before any
mutation override is considered:

  - a live cell with 2 or 3 live neighbors survives
  - a dead cell with exactly 3 live neighbors is born
  - every other cell is dead in the next generation

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
