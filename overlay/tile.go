package overlay

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-overlay/core"
)

// LegendEntry identifies a semantic class of tile
// Created once by a layer and shared by pointer across every group referencing it
type LegendEntry struct {
	Key   string
	Name  string
	Color tcell.Color
}

// NewLegendEntry creates a legend entry
func NewLegendEntry(key, name string, color tcell.Color) *LegendEntry {
	return &LegendEntry{Key: key, Name: name, Color: color}
}

// Tile is one colored grid position in a group
type Tile struct {
	Pos   core.Point
	Type  *LegendEntry
	Color tcell.Color // per-tile override, tcell.ColorDefault for none
}

// DrawColor returns the override if set, else the legend color
func (t Tile) DrawColor() tcell.Color {
	if t.Color != tcell.ColorDefault {
		return t.Color
	}
	if t.Type == nil {
		return tcell.ColorDefault
	}
	return t.Type.Color
}

// TileGroup is a layer's output unit for one recompute
// Groups are rebuilt every recompute; consumers must not keep them across ticks
type TileGroup struct {
	Tiles            []Tile
	OuterBorderColor tcell.Color // tcell.ColorDefault for no border
	Exportable       bool
}

// NewTileGroup builds a group tagging every point with entry
func NewTileGroup(points []core.Point, entry *LegendEntry, border tcell.Color, exportable bool) TileGroup {
	tiles := make([]Tile, len(points))
	for i, p := range points {
		tiles[i] = Tile{Pos: p, Type: entry, Color: tcell.ColorDefault}
	}
	return TileGroup{Tiles: tiles, OuterBorderColor: border, Exportable: exportable}
}

// NewPreviewGroup builds a non-exportable group with a per-tile preview color
func NewPreviewGroup(points []core.Point, entry *LegendEntry, tint, border tcell.Color) TileGroup {
	g := NewTileGroup(points, entry, border, false)
	for i := range g.Tiles {
		g.Tiles[i].Color = tint
	}
	return g
}

// Positions returns the group's positions in tile order
func (g TileGroup) Positions() []core.Point {
	out := make([]core.Point, len(g.Tiles))
	for i, t := range g.Tiles {
		out[i] = t.Pos
	}
	return out
}

// CountTiles sums tiles across groups
func CountTiles(groups []TileGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Tiles)
	}
	return n
}
