package model

import (
	"cmp"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math/bits"
	"slices"

	"github.com/sheikhrachel/gol-engine/rules"
)

// Grid is a fixed-size, non-wrapping Game of Life board holding a sparse set of living cells
//
// A Grid is not safe for concurrent use: one goroutine owns it and serializes every
// query, mutation and Transition.
type Grid struct {
	width      uint
	height     uint
	alive      cellSet
	generation uint64

	// Optional recycling of retired live sets
	pool *SetPool
}

// New creates an empty grid with the given dimensions
//
// A zero dimension is allowed; such a grid can never hold a living cell.
func New(width, height uint) *Grid {
	return &Grid{
		width:  width,
		height: height,
		alive:  make(cellSet),
	}
}

// Width returns the width of the grid
func (g *Grid) Width() uint {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() uint {
	return g.height
}

// Generation returns the number of transitions applied so far
func (g *Grid) Generation() uint64 {
	return g.generation
}

// UsePool attaches a pool the grid draws fresh live sets from on every transition
func (g *Grid) UsePool(pool *SetPool) {
	g.pool = pool
}

// IsAlive reports whether the cell is alive. Cells outside the grid are dead.
func (g *Grid) IsAlive(c Cell) bool {
	_, ok := g.alive[c]
	return ok
}

func (g *Grid) inBounds(c Cell) bool {
	return c.X < g.width && c.Y < g.height
}

// AddLivingCell marks the cell alive; adding an already living cell is a no-op
func (g *Grid) AddLivingCell(c Cell) error {
	if !g.inBounds(c) {
		return &OutOfBoundsError{Cell: c, Width: g.width, Height: g.height}
	}
	g.alive[c] = struct{}{}
	return nil
}

// ToggleCell kills a living cell or brings a dead one to life through AddLivingCell
func (g *Grid) ToggleCell(c Cell) error {
	if g.IsAlive(c) {
		delete(g.alive, c)
		return nil
	}
	return g.AddLivingCell(c)
}

// Clear kills every cell. The generation counter is kept.
func (g *Grid) Clear() {
	clear(g.alive)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() int {
	return len(g.alive)
}

// LivingCells returns a snapshot of the living cells ordered by row, then column
func (g *Grid) LivingCells() []Cell {
	cells := make([]Cell, 0, len(g.alive))
	for c := range g.alive {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, func(a, b Cell) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	return cells
}

/*
neighborhoodRange returns the half-open window [start, end) of the positions
{component-1, component, component+1} that lie inside [0, limit).

The lower edge clamps to component itself when component is 0, and the upper
edge clamps to limit when component+2 would overflow a uint.
*/
func neighborhoodRange(component, limit uint) (start, end uint) {
	start = component
	if component > 0 {
		start = component - 1
	}

	end = limit
	if next, carry := bits.Add(component, 2, 0); carry == 0 && next < limit {
		end = next
	}
	return start, end
}

// countLivingNeighbors counts living cells in the clipped 3x3 window around c, excluding c itself
func (g *Grid) countLivingNeighbors(c Cell) int {
	var (
		count      = 0
		minX, maxX = neighborhoodRange(c.X, g.width)
		minY, maxY = neighborhoodRange(c.Y, g.height)
	)

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			if x == c.X && y == c.Y {
				continue // Skip the cell itself
			}
			if g.IsAlive(Cell{X: x, Y: y}) {
				count++
			}
		}
	}

	return count
}

// Transition advances the grid by exactly one generation
//
// Every cell of the grid is evaluated against the current live set and the survivors
// are collected into a fresh set, which replaces the current one once the scan is done.
func (g *Grid) Transition() {
	next := g.pool.get()

	// An empty board stays empty, no need to scan it
	if len(g.alive) > 0 {
		for y := uint(0); y < g.height; y++ {
			for x := uint(0); x < g.width; x++ {
				c := Cell{X: x, Y: y}
				if rules.ApplyConwayRules(g.countLivingNeighbors(c), g.IsAlive(c)) {
					next[c] = struct{}{}
				}
			}
		}
	}

	retired := g.alive
	g.alive = next
	g.pool.put(retired)
	g.generation++
}

// Fingerprint returns an MD5 digest of the dimensions and the ordered live cells
func (g *Grid) Fingerprint() string {
	var (
		h   = md5.New()
		buf [16]byte
	)

	binary.LittleEndian.PutUint64(buf[:8], uint64(g.width))
	binary.LittleEndian.PutUint64(buf[8:], uint64(g.height))
	h.Write(buf[:])

	for _, c := range g.LivingCells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
