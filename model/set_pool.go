package model

import "sync"

type cellSet map[Cell]struct{}

// SetPool recycles retired live sets between transitions
//
// A single pool may be shared by grids driven from different goroutines.
type SetPool struct {
	pool sync.Pool
}

func NewSetPool() *SetPool {
	return &SetPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(cellSet)
			},
		},
	}
}

// get returns an empty set, allocating one when the pool is nil
func (p *SetPool) get() cellSet {
	if p == nil {
		return make(cellSet)
	}
	return p.pool.Get().(cellSet)
}

// put clears the set and returns it to the pool; a nil pool drops it
func (p *SetPool) put(s cellSet) {
	if p == nil {
		return
	}

	// Clear the set before returning to pool
	clear(s)
	p.pool.Put(s)
}
