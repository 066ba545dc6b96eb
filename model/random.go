package model

import "math/rand/v2"

// NewRand returns a deterministic PCG-backed source for the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Randomize clears the grid and brings each cell to life with probability density
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	g.Clear()
	for y := uint(0); y < g.height; y++ {
		for x := uint(0); x < g.width; x++ {
			if rng.Float64() < density {
				g.alive[Cell{X: x, Y: y}] = struct{}{}
			}
		}
	}
}

// InjectRandomLife adds some random cells to break stagnation
func (g *Grid) InjectRandomLife(rng *rand.Rand, count int) {
	if g.width == 0 || g.height == 0 {
		return
	}
	for range count {
		c := Cell{X: rng.UintN(g.width), Y: rng.UintN(g.height)}
		g.alive[c] = struct{}{}
	}
}
