package vmath

import (
	"github.com/dgraph-io/ristretto/v2"

	"github.com/lixenwraith/grid-overlay/core"
)

// Filter restricts geometry output, nil keeps every position
type Filter func(core.Point) bool

// CircleCache memoizes relative circle offsets per radius
// Masks are immutable once stored; callers translate them into fresh slices
// A nil cache is valid and computes every mask
type CircleCache struct {
	masks *ristretto.Cache[int, []core.Point]
}

// NewCircleCache creates a mask cache; Close releases its background workers
func NewCircleCache() (*CircleCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[int, []core.Point]{
		NumCounters: 1024,
		MaxCost:     1 << 20, // cost is mask length in points
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &CircleCache{masks: cache}, nil
}

// Close stops the cache; later lookups compute uncached
func (c *CircleCache) Close() {
	if c == nil || c.masks == nil {
		return
	}
	c.masks.Close()
}

// CircleOutline returns the midpoint-circle outline grid of side 2r+1
// Indexed [row][col], center at [r][r]; nil for negative radius
func CircleOutline(radius int) [][]bool {
	if radius < 0 {
		return nil
	}
	size := 2*radius + 1
	grid := make([][]bool, size)
	for i := range grid {
		grid[i] = make([]bool, size)
	}

	set := func(dx, dy int) {
		grid[radius+dy][radius+dx] = true
	}

	set(0, radius)
	set(0, -radius)
	set(radius, 0)
	set(-radius, 0)

	f := 1 - radius
	ddFx := 1
	ddFy := -2 * radius
	x, y := 0, radius
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		set(x, y)
		set(-x, y)
		set(x, -y)
		set(-x, -y)
		set(y, x)
		set(-y, x)
		set(y, -x)
		set(-y, -x)
	}
	return grid
}

// circleMask scans the outline grid row by row and returns offsets relative to the center
// Border cells copy the outline bit into the inside flag; interior outline cells toggle it,
// and the cell closing a run still counts. Matches the host's explosion voxelization
func (c *CircleCache) circleMask(radius int) []core.Point {
	cached := c != nil && c.masks != nil
	if cached {
		if mask, ok := c.masks.Get(radius); ok {
			return mask
		}
	}

	grid := CircleOutline(radius)
	last := 2 * radius
	mask := make([]core.Point, 0, len(grid)*len(grid))

	for row := 0; row <= last; row++ {
		inside := false
		for col := 0; col <= last; col++ {
			include := false
			if row == 0 || col == 0 || row == last || col == last {
				inside = grid[row][col]
			} else if grid[row][col] {
				inside = !inside
				if !inside {
					include = true
				}
			}
			if inside || include {
				mask = append(mask, core.Point{X: col - radius, Y: row - radius})
			}
		}
	}

	if cached {
		c.masks.Set(radius, mask, int64(len(mask)))
	}
	return mask
}

// CircularArea returns every position within the discretized circle around origin
// Radius 0 yields the origin only, negative radius yields nothing
func CircularArea(origin core.Point, radius int, filter Filter) []core.Point {
	return (*CircleCache)(nil).CircularArea(origin, radius, filter)
}

// CircularArea is the package CircularArea with masks served from c
func (c *CircleCache) CircularArea(origin core.Point, radius int, filter Filter) []core.Point {
	if radius < 0 {
		return nil
	}
	return OffsetPatternCoverage(origin, c.circleMask(radius), filter)
}
