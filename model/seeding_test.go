package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerationDensity(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	v := Viewport{Height: 50, Width: 50}

	g := RandomGeneration(rnd, v, 0.15)
	assert.Greater(t, g.Population(), 250, "density 0.15 over 2500 cells")
	assert.Less(t, g.Population(), 500)
	for _, p := range g.LivePositions() {
		assert.True(t, v.Contains(p))
		props, ok := g.PropertiesOf(p)
		require.True(t, ok)
		assert.Contains(t, Palette(), props.Color)
	}

	assert.Equal(t, 0, RandomGeneration(rnd, v, 0.0).Population())
	assert.Equal(t, 2500, RandomGeneration(rnd, v, 1.0).Population())
}

func TestInjectRandomLife(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	v := Viewport{Height: 10, Width: 10}
	base, err := LoadPattern("blinker", 0, 0)
	require.NoError(t, err)

	out := InjectRandomLife(base, rnd, v, 4)
	assert.GreaterOrEqual(t, out.Population(), base.Population())
	assert.LessOrEqual(t, out.Population(), base.Population()+4)
	assert.Equal(t, 3, base.Population(), "input generation is untouched")

	for _, p := range out.LivePositions() {
		if !base.IsAlive(p) {
			assert.True(t, v.Contains(p), "injected cell %v stays inside the viewport", p)
		}
	}
}
