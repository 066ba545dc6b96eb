package model

import (
	"slices"

	"github.com/pkg/errors"
)

// gliderCells is the south-east travelling glider, relative to its top-left corner
var gliderCells = []Cell{
	{X: 1, Y: 0},
	{X: 2, Y: 1},
	{X: 0, Y: 2},
	{X: 1, Y: 2},
	{X: 2, Y: 2},
}

// addRelative adds each offset from origin in order and stops at the first failure.
// Cells added before the failure stay alive.
func (g *Grid) addRelative(origin Cell, offsets []Cell) error {
	for _, off := range offsets {
		c, ok := origin.Offset(off.X, off.Y)
		if !ok {
			return &OutOfBoundsError{Cell: origin, Width: g.width, Height: g.height}
		}
		if err := g.AddLivingCell(c); err != nil {
			return err
		}
	}
	return nil
}

// AddVerticalLine adds a column of length cells going down from origin
func (g *Grid) AddVerticalLine(origin Cell, length uint) error {
	for i := uint(0); i < length; i++ {
		if err := g.addRelative(origin, []Cell{{X: 0, Y: i}}); err != nil {
			return errors.Wrapf(err, "[AddVerticalLine] failed to add cell %d of %d from %v", i, length, origin)
		}
	}
	return nil
}

// AddHorizontalLine adds a row of length cells going right from origin
func (g *Grid) AddHorizontalLine(origin Cell, length uint) error {
	for i := uint(0); i < length; i++ {
		if err := g.addRelative(origin, []Cell{{X: i, Y: 0}}); err != nil {
			return errors.Wrapf(err, "[AddHorizontalLine] failed to add cell %d of %d from %v", i, length, origin)
		}
	}
	return nil
}

// AddBlock fills a width x height rectangle anchored at its top-left corner, row by row
func (g *Grid) AddBlock(origin Cell, width, height uint) error {
	for y := uint(0); y < height; y++ {
		for x := uint(0); x < width; x++ {
			if err := g.addRelative(origin, []Cell{{X: x, Y: y}}); err != nil {
				return errors.Wrapf(err, "[AddBlock] failed to add %dx%d block at %v", width, height, origin)
			}
		}
	}
	return nil
}

// AddGlider adds a glider whose 3x3 bounding box starts at origin
func (g *Grid) AddGlider(origin Cell) error {
	if err := g.addRelative(origin, gliderCells); err != nil {
		return errors.Wrapf(err, "[AddGlider] failed to add glider at %v", origin)
	}
	return nil
}

// SeedDefault adds the default start: a horizontal blinker on row 1.
// Grids narrower or shorter than 3 cells are left empty.
func (g *Grid) SeedDefault() error {
	if g.width <= 2 || g.height <= 2 {
		return nil
	}
	return g.AddHorizontalLine(Cell{X: 0, Y: 1}, 3)
}

// Seeder places a named pattern relative to origin
type Seeder func(g *Grid, origin Cell) error

var patterns = map[string]Seeder{
	"default": func(g *Grid, _ Cell) error { return g.SeedDefault() },
	"blinker": func(g *Grid, origin Cell) error { return g.AddHorizontalLine(origin, 3) },
	"block":   func(g *Grid, origin Cell) error { return g.AddBlock(origin, 2, 2) },
	"glider":  func(g *Grid, origin Cell) error { return g.AddGlider(origin) },
	"line":    func(g *Grid, origin Cell) error { return g.AddVerticalLine(origin, 10) },
}

// PatternNames lists the names SeedPattern accepts, sorted
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SeedPattern places the named pattern at origin
func (g *Grid) SeedPattern(name string, origin Cell) error {
	seed, ok := patterns[name]
	if !ok {
		return errors.Wrapf(ErrUnknownPattern, "[SeedPattern] %q, expected one of %v", name, PatternNames())
	}
	return seed(g, origin)
}
