package world

import (
	"slices"

	"github.com/lixenwraith/grid-overlay/core"
)

// Map is an in-memory Location with a per-tile property grid and a spatial object index
// Not safe for concurrent mutation; the host mutates between ticks
type Map struct {
	name    string
	width   int
	height  int
	props   [][]Property
	spatial map[core.Point]Object // Spatial index: position -> object
	nextID  uint64
}

// NewMap creates an empty map with the given dimensions
func NewMap(name string, width, height int) *Map {
	props := make([][]Property, height)
	for y := range props {
		props[y] = make([]Property, width)
	}
	return &Map{
		name:    name,
		width:   width,
		height:  height,
		props:   props,
		spatial: make(map[core.Point]Object),
	}
}

// Name returns the location name
func (m *Map) Name() string {
	return m.name
}

// Bounds returns the full map area
func (m *Map) Bounds() core.Area {
	return core.Area{Width: m.width, Height: m.height}
}

func (m *Map) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// SetProperty adds prop bits to the tile
func (m *Map) SetProperty(p core.Point, prop Property) bool {
	if !m.inBounds(p) {
		return false
	}
	m.props[p.Y][p.X] |= prop
	return true
}

// ClearProperty removes prop bits from the tile
func (m *Map) ClearProperty(p core.Point, prop Property) bool {
	if !m.inBounds(p) {
		return false
	}
	m.props[p.Y][p.X] &^= prop
	return true
}

// FillProperty sets prop on every in-bounds tile of area
func (m *Map) FillProperty(area core.Area, prop Property) {
	for _, p := range area.Intersect(m.Bounds()).Points() {
		m.props[p.Y][p.X] |= prop
	}
}

// HasProperty reports whether every bit of prop is set on the tile
func (m *Map) HasProperty(p core.Point, prop Property) bool {
	if !m.inBounds(p) {
		return false
	}
	return m.props[p.Y][p.X]&prop == prop
}

// Place puts an object of kind on the tile, replacing any previous occupant
// Returns the new object ID, 0 if out of bounds
func (m *Map) Place(kind string, p core.Point) uint64 {
	if !m.inBounds(p) {
		return 0
	}
	m.nextID++
	m.spatial[p] = Object{ID: m.nextID, Kind: kind, Tile: p}
	return m.nextID
}

// Remove clears the object on the tile
func (m *Map) Remove(p core.Point) bool {
	if _, ok := m.spatial[p]; !ok {
		return false
	}
	delete(m.spatial, p)
	return true
}

// ObjectAt returns the object on the tile, if any
func (m *Map) ObjectAt(p core.Point) (Object, bool) {
	obj, ok := m.spatial[p]
	return obj, ok
}

// ObjectsIn returns objects inside area ordered by ID
func (m *Map) ObjectsIn(area core.Area) []Object {
	var out []Object
	// Small areas probe the index per tile; large ones scan the index
	if area.Width*area.Height <= len(m.spatial) {
		for _, p := range area.Points() {
			if obj, ok := m.spatial[p]; ok {
				out = append(out, obj)
			}
		}
	} else {
		for p, obj := range m.spatial {
			if area.Contains(p) {
				out = append(out, obj)
			}
		}
	}
	slices.SortFunc(out, func(a, b Object) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}
