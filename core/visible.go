package core

// VisibleRegion is the per-frame view snapshot supplied by the renderer
// Area bounds the view; Tiles holds exact membership when the view is not a full rectangle
type VisibleRegion struct {
	Area  Area
	Tiles PointSet
}

// NewVisibleRegion builds a rectangular view where every tile in area is visible
func NewVisibleRegion(area Area) VisibleRegion {
	return VisibleRegion{Area: area, Tiles: NewPointSet(area.Points()...)}
}

// Contains reports whether p is visible
// Falls back to the rectangle when no exact tile set was supplied
func (v VisibleRegion) Contains(p Point) bool {
	if v.Tiles == nil {
		return v.Area.Contains(p)
	}
	return v.Tiles.Has(p)
}

// SortedTiles returns the visible tiles in row-major order
func (v VisibleRegion) SortedTiles() []Point {
	if v.Tiles == nil {
		return v.Area.Points()
	}
	return v.Tiles.Sorted()
}
