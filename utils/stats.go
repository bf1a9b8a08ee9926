package utils

import "time"

// Stats for run monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	TotalBirths          int
	TotalDeaths          int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update folds one completed generation into the running stats.
// completedGenerations is the 1-based count of transitions computed so far.
func (s *Stats) Update(completedGenerations, population, births, deaths int, duration time.Duration) {
	s.TotalGenerations = completedGenerations
	s.TotalBirths += births
	s.TotalDeaths += deaths
	if population > s.PeakPopulation {
		s.PeakPopulation = population
	}
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the elapsed wall time of the simulation.
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
