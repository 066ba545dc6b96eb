package model

import (
	"bufio"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// Cursor home followed by erase display
	ansiClear = "\033[H\033[2J"
)

// CellReader is the read-only view a renderer needs of a grid
type CellReader interface {
	Width() uint
	Height() uint
	IsAlive(c Cell) bool
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid to the terminal, one text row per grid row
func (r *TerminalRenderer) Display(g CellReader) error {
	w := bufio.NewWriter(r.Out)
	for y := uint(0); y < g.Height(); y++ {
		for x := uint(0); x < g.Width(); x++ {
			if g.IsAlive(Cell{X: x, Y: y}) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, ansiClear)
	return err
}
