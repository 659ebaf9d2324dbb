package rules

// Neighbor counts that drive the standard B3/S23 rule.
const (
	SurviveNeighbors = 2
	BirthNeighbors   = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == SurviveNeighbors) || neighbors == BirthNeighbors
}
