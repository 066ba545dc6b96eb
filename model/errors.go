package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfBounds is matched by every error a mutation returns for a cell outside the grid
	ErrOutOfBounds = errors.New("cell out of bounds")

	// ErrUnknownPattern is returned by SeedPattern for names missing from the registry
	ErrUnknownPattern = errors.New("unknown pattern")
)

// OutOfBoundsError reports the rejected cell along with the grid dimensions it was checked against
type OutOfBoundsError struct {
	Cell   Cell
	Width  uint
	Height uint
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell %v out of bounds for %dx%d grid", e.Cell, e.Width, e.Height)
}

// Is lets errors.Is(err, ErrOutOfBounds) match without unwrapping to the sentinel
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
