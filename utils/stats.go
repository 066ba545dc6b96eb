package utils

import (
	"maps"
	"slices"
	"time"
)

// populationSmoothing is the weight given to the newest sample in the running population average
const populationSmoothing = 0.1

// Stats tracks throughput, population and restarts over a run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time

	restarts map[string]int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now(), restarts: make(map[string]int)}
}

// Update records one rendered generation that took duration to produce
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1 / duration.Seconds()
	}
	s.PeakPopulation = max(s.PeakPopulation, population)

	sample := float64(population)
	if s.AveragePopulation == 0 {
		s.AveragePopulation = sample
		return
	}
	s.AveragePopulation += (sample - s.AveragePopulation) * populationSmoothing
}

// RecordRestart counts a board restart for the given reason
func (s *Stats) RecordRestart(reason string) {
	if s.restarts == nil {
		s.restarts = make(map[string]int)
	}
	s.restarts[reason]++
}

// Restarts returns the number of restarts for reason, or the total when reason is empty
func (s *Stats) Restarts(reason string) int {
	if reason != "" {
		return s.restarts[reason]
	}
	total := 0
	for _, n := range s.restarts {
		total += n
	}
	return total
}

// RestartReasons lists every recorded restart reason in sorted order
func (s *Stats) RestartReasons() []string {
	return slices.Sorted(maps.Keys(s.restarts))
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
