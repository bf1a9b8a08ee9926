package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 10, 3, 1, 100*time.Millisecond)
	assert.Equal(t, 1, s.TotalGenerations)
	assert.Equal(t, 3, s.TotalBirths)
	assert.Equal(t, 1, s.TotalDeaths)
	assert.Equal(t, 10, s.PeakPopulation)
	assert.InDelta(t, 10.0, s.AveragePopulation, 0.001)
	assert.InDelta(t, 10.0, s.GenerationsPerSecond, 0.001)

	s.Update(2, 20, 12, 2, 100*time.Millisecond)
	assert.Equal(t, 20, s.PeakPopulation)
	assert.Equal(t, 15, s.TotalBirths)
	assert.InDelta(t, 11.0, s.AveragePopulation, 0.001, "population uses a 0.9/0.1 moving average")

	s.Update(3, 5, 0, 15, 100*time.Millisecond)
	assert.Equal(t, 20, s.PeakPopulation, "peak never decreases")
}
