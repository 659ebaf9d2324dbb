package utils

import (
	"fmt"
	"time"
)

// Stats summarises a simulation run
type Stats struct {
	TotalGenerations   int
	StartTime          time.Time
	Elapsed            time.Duration
	PeakPopulation     int
	FinalPopulation    int
	AveragePopulation  float64
	LargestBoundingBox int

	// set by RecordPeriod when the history repeats
	CycleStart  int
	CyclePeriod int

	recent []hashedGeneration // last few generation hashes for cycle detection
}

// HashWindow is how many recent generations RecordHash remembers,
// which bounds the longest period it can detect
const HashWindow = 5

type hashedGeneration struct {
	generation int
	hash       string
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update folds one generation into the totals. generation is its index, 0 for the seed.
func (s *Stats) Update(generation int, population int, boundingBoxSize int) {
	s.TotalGenerations = generation
	s.FinalPopulation = population
	s.PeakPopulation = max(s.PeakPopulation, population)
	s.LargestBoundingBox = max(s.LargestBoundingBox, boundingBoxSize)

	// running mean over generations 0..generation
	n := float64(generation + 1)
	s.AveragePopulation += (float64(population) - s.AveragePopulation) / n
}

// RecordPeriod notes that generation start recurs every period generations
func (s *Stats) RecordPeriod(start, period int) {
	s.CycleStart = start
	s.CyclePeriod = period
}

// RecordHash remembers the hash of a generation and records a period the
// first time it matches one of the previous HashWindow generations
func (s *Stats) RecordHash(generation int, hash string) {
	if s.CyclePeriod == 0 {
		for _, h := range s.recent {
			if h.hash == hash {
				s.RecordPeriod(h.generation, generation-h.generation)
				break
			}
		}
	}

	s.recent = append(s.recent, hashedGeneration{generation: generation, hash: hash})
	if len(s.recent) > HashWindow {
		s.recent = s.recent[1:]
	}
}

// Finish stamps the elapsed wall time
func (s *Stats) Finish() {
	s.Elapsed = time.Since(s.StartTime)
}

// Summary formats the stats as a single line
func (s *Stats) Summary() string {
	line := fmt.Sprintf("generations: %d | final: %d | peak: %d | avg pop: %.1f | largest box: %d cells | runtime: %s",
		s.TotalGenerations, s.FinalPopulation, s.PeakPopulation, s.AveragePopulation,
		s.LargestBoundingBox, s.Elapsed.Round(time.Microsecond))
	if s.CyclePeriod > 0 {
		line += fmt.Sprintf(" | cycle: period %d from gen %d", s.CyclePeriod, s.CycleStart)
	}
	return line
}
