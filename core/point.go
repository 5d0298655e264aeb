package core

import (
	"cmp"
	"slices"
)

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Add returns p translated by o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the offset from o to p
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// ComparePoints orders points row-major (Y, then X)
func ComparePoints(a, b Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// PointSet is an unordered set of grid positions
type PointSet map[Point]struct{}

// NewPointSet creates a set from the given points
func NewPointSet(points ...Point) PointSet {
	s := make(PointSet, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p
func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

// AddAll inserts every point
func (s PointSet) AddAll(points []Point) {
	for _, p := range points {
		s[p] = struct{}{}
	}
}

// Has reports membership
func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

// Remove deletes every point of o from s
func (s PointSet) Remove(o PointSet) {
	for p := range o {
		delete(s, p)
	}
}

// Sorted returns the members in row-major order
// A fresh slice is returned on every call
func (s PointSet) Sorted() []Point {
	out := make([]Point, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, ComparePoints)
	return out
}
