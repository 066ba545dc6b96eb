package model

import "fmt"

// Cell identifies a single grid position. It is a plain value type and is used
// directly as a map key, so equality is by (X, Y).
type Cell struct {
	X uint
	Y uint
}

// Offset returns the cell shifted by (dx, dy) and whether the shift fit in a uint
func (c Cell) Offset(dx, dy uint) (Cell, bool) {
	x, y := c.X+dx, c.Y+dy
	if x < c.X || y < c.Y {
		return Cell{}, false
	}
	return Cell{X: x, Y: y}, true
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
