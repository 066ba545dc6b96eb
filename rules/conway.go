package rules

const (
	// BirthNeighbors is the exact neighbour count that brings a dead cell to life
	BirthNeighbors = 3
	// SurviveNeighbors is the extra neighbour count, besides BirthNeighbors, that keeps a live cell alive
	SurviveNeighbors = 2
)

/*
ApplyConwayRules reports whether a cell is alive in the next generation.

A live cell survives with 2 or 3 living neighbours, a dead cell is born with exactly 3,
every other cell is dead: neighbors == 3 || (alive && neighbors == 2)
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return neighbors == BirthNeighbors || (alive && neighbors == SurviveNeighbors)
}
