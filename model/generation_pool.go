package model

import "sync"

// GenerationToPool returns a generation to the pool for reuse.
func GenerationToPool(g Generation, pool *GenerationPool) {
	if pool == nil {
		return
	}

	pool.Put(g)
}

// GenerationPool recycles generation maps between ticks so the driver loop
// does not allocate a fresh map every frame.
type GenerationPool struct {
	pool sync.Pool
}

func NewGenerationPool() *GenerationPool {
	return &GenerationPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(Generation)
			},
		},
	}
}

// Get retrieves an empty generation from the pool.
func (p *GenerationPool) Get() Generation {
	return p.pool.Get().(Generation)
}

// Put returns a generation to the pool, clearing its state
func (p *GenerationPool) Put(g Generation) {
	if g == nil {
		return
	}
	// Clear the map before returning to pool
	clear(g)
	p.pool.Put(g)
}
