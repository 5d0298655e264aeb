package vmath

import (
	"sync"

	"github.com/lixenwraith/grid-overlay/core"
)

// OffsetPatternCoverage translates a relative offset pattern to origin
// Output order follows pattern order; filtered positions are skipped
func OffsetPatternCoverage(origin core.Point, pattern []core.Point, filter Filter) []core.Point {
	out := make([]core.Point, 0, len(pattern))
	for _, off := range pattern {
		p := origin.Add(off)
		if filter == nil || filter(p) {
			out = append(out, p)
		}
	}
	return out
}

// SquarePattern returns offsets of the (2r+1) square, optionally without its center
func SquarePattern(radius int, skipCenter bool) []core.Point {
	if radius < 0 {
		return nil
	}
	out := make([]core.Point, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if skipCenter && dx == 0 && dy == 0 {
				continue
			}
			out = append(out, core.Point{X: dx, Y: dy})
		}
	}
	return out
}

// PlusPattern returns the four orthogonal arms of length radius, center excluded
func PlusPattern(radius int) []core.Point {
	out := make([]core.Point, 0, 4*max(radius, 0))
	for i := 1; i <= radius; i++ {
		out = append(out,
			core.Point{X: 0, Y: -i},
			core.Point{X: i, Y: 0},
			core.Point{X: 0, Y: i},
			core.Point{X: -i, Y: 0},
		)
	}
	return out
}

// PatternSet holds relative coverage patterns keyed by effect class
// Several patterns under one key are unioned; registrations may come from other goroutines
type PatternSet struct {
	mu       sync.RWMutex
	patterns map[string][][]core.Point
}

// NewPatternSet creates an empty PatternSet
func NewPatternSet() *PatternSet {
	return &PatternSet{patterns: make(map[string][][]core.Point)}
}

// Register adds a pattern under key; the slice is copied
func (s *PatternSet) Register(key string, pattern []core.Point) {
	cp := make([]core.Point, len(pattern))
	copy(cp, pattern)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.patterns[key] = append(s.patterns[key], cp)
}

// Has reports whether any pattern is registered for key
func (s *PatternSet) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patterns[key]) > 0
}

// Keys returns all registered effect classes
func (s *PatternSet) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.patterns))
	for k := range s.patterns {
		keys = append(keys, k)
	}
	return keys
}

// MaxReach returns the largest Chebyshev distance of any offset under key
func (s *PatternSet) MaxReach(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reach := 0
	for _, pattern := range s.patterns[key] {
		for _, off := range pattern {
			reach = max(reach, abs(off.X), abs(off.Y))
		}
	}
	return reach
}

// Coverage returns the union of every pattern under key translated to origin, row-major
func (s *PatternSet) Coverage(origin core.Point, key string, filter Filter) []core.Point {
	s.mu.RLock()
	patterns := s.patterns[key]
	s.mu.RUnlock()

	union := make(core.PointSet)
	for _, pattern := range patterns {
		union.AddAll(OffsetPatternCoverage(origin, pattern, filter))
	}
	return union.Sorted()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
