package vmath

import "github.com/lixenwraith/grid-overlay/core"

// TieredAreaOfEffect splits an explosion footprint into three disjoint bands
// dig is the inner circle of radius r/2, blast the rest of the radius-r circle,
// shockwave the remainder of the (2r+1) bounding square
// The r/2 ratio mirrors the host's dig radius and must not be rounded differently
func TieredAreaOfEffect(origin core.Point, radius int, filter Filter) (dig, blast, shockwave []core.Point) {
	return (*CircleCache)(nil).TieredAreaOfEffect(origin, radius, filter)
}

// TieredAreaOfEffect is the package TieredAreaOfEffect with masks served from c
func (c *CircleCache) TieredAreaOfEffect(origin core.Point, radius int, filter Filter) (dig, blast, shockwave []core.Point) {
	if radius < 0 {
		return nil, nil, nil
	}

	digSet := core.NewPointSet(c.CircularArea(origin, radius/2, nil)...)
	blastSet := core.NewPointSet(c.CircularArea(origin, radius, nil)...)
	blastSet.Remove(digSet)

	shockSet := core.NewPointSet(core.SquareAround(origin, radius).Points()...)
	shockSet.Remove(blastSet)
	shockSet.Remove(digSet)

	return filterSorted(digSet, filter), filterSorted(blastSet, filter), filterSorted(shockSet, filter)
}

func filterSorted(s core.PointSet, filter Filter) []core.Point {
	out := make([]core.Point, 0, len(s))
	for _, p := range s.Sorted() {
		if filter == nil || filter(p) {
			out = append(out, p)
		}
	}
	return out
}
