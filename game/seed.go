package game

import (
	"math/rand/v2"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

// patternOrigin anchors named patterns near the middle of the board
func patternOrigin(g *model.Grid) model.Cell {
	return model.Cell{X: g.Width() / 2, Y: g.Height() / 2}
}

// seedGrid fills an empty grid according to config.Pattern.
// A pattern that does not fit is left partially placed and its OutOfBounds error returned.
func seedGrid(g *model.Grid, config utils.Config, rng *rand.Rand) error {
	if config.Pattern == utils.PatternRandom {
		g.Randomize(rng, config.RandomDensity)
		return nil
	}
	return g.SeedPattern(config.Pattern, patternOrigin(g))
}
