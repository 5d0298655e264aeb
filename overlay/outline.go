package overlay

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-overlay/core"
)

// Edge is a bitmask of tile sides
type Edge uint8

const (
	EdgeTop Edge = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// EdgeNone marks a tile with no outer edge
const EdgeNone Edge = 0

// BorderTile is one tile carrying outer border edges
type BorderTile struct {
	Pos   core.Point
	Edges Edge
	Color tcell.Color
}

var edgeNeighbors = [4]struct {
	edge  Edge
	delta core.Point
}{
	{EdgeTop, core.Point{Y: -1}},
	{EdgeRight, core.Point{X: 1}},
	{EdgeBottom, core.Point{Y: 1}},
	{EdgeLeft, core.Point{X: -1}},
}

// Outline computes outer border edges for groups that carry a border color
// With combine, groups sharing a border color are outlined as one shape
func Outline(groups []TileGroup, combine bool) []BorderTile {
	type shape struct {
		color tcell.Color
		set   core.PointSet
	}

	var shapes []*shape
	byColor := make(map[tcell.Color]*shape)

	for _, g := range groups {
		if g.OuterBorderColor == tcell.ColorDefault || len(g.Tiles) == 0 {
			continue
		}
		s := byColor[g.OuterBorderColor]
		if s == nil || !combine {
			s = &shape{color: g.OuterBorderColor, set: core.NewPointSet()}
			shapes = append(shapes, s)
			byColor[g.OuterBorderColor] = s
		}
		for _, t := range g.Tiles {
			s.set.Add(t.Pos)
		}
	}

	var out []BorderTile
	for _, s := range shapes {
		for _, p := range s.set.Sorted() {
			var edges Edge
			for _, n := range edgeNeighbors {
				if !s.set.Has(p.Add(n.delta)) {
					edges |= n.edge
				}
			}
			if edges != EdgeNone {
				out = append(out, BorderTile{Pos: p, Edges: edges, Color: s.color})
			}
		}
	}
	return out
}
