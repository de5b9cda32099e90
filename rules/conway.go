package rules

const (
	// SurviveNeighbors keeps a live cell alive alongside BirthNeighbors
	SurviveNeighbors = 2
	// BirthNeighbors brings a dead cell to life
	BirthNeighbors = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

A cell is alive in the next generation when it has exactly 3 living neighbors,
or when it is alive already and has exactly 2.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return neighbors == BirthNeighbors || (alive && neighbors == SurviveNeighbors)
}
