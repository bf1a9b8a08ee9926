package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationPoolClearsOnPut(t *testing.T) {
	pool := NewGenerationPool()

	g := pool.Get()
	g[Position{Row: 1, Col: 1}] = DefaultProperties()
	pool.Put(g)

	reused := pool.Get()
	assert.Equal(t, 0, reused.Population(), "pooled generations come back empty")
}

func TestGenerationPoolNilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		GenerationToPool(nil, nil)
		GenerationToPool(NewGeneration(), nil)
		NewGenerationPool().Put(nil)
	})
}
