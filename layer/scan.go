package layer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-overlay/core"
	"github.com/lixenwraith/grid-overlay/overlay"
	"github.com/lixenwraith/grid-overlay/parameter"
	"github.com/lixenwraith/grid-overlay/scheme"
	"github.com/lixenwraith/grid-overlay/world"
)

// scanArea is the visible rectangle grown so off-screen sources still reach into view
func scanArea(frame overlay.Frame, reach int) core.Area {
	return frame.Visible.Area.Expand(max(reach, parameter.SearchPadding))
}

// relevantTiles returns visible tiles carrying prop, row-major
func relevantTiles(frame overlay.Frame, prop world.Property) []core.Point {
	var out []core.Point
	for _, p := range frame.Visible.SortedTiles() {
		if frame.Location.HasProperty(p, prop) {
			out = append(out, p)
		}
	}
	return out
}

// partition splits relevant into covered and uncovered, preserving order
func partition(relevant []core.Point, covered core.PointSet) (in, out []core.Point) {
	for _, p := range relevant {
		if covered.Has(p) {
			in = append(in, p)
		} else {
			out = append(out, p)
		}
	}
	return in, out
}

// appendGroup adds an exportable borderless group, skipping empty ones
func appendGroup(groups []overlay.TileGroup, points []core.Point, entry *overlay.LegendEntry) []overlay.TileGroup {
	if len(points) == 0 {
		return groups
	}
	return append(groups, overlay.NewTileGroup(points, entry, tcell.ColorDefault, true))
}

// appendPreview adds a highlighted non-exportable group for a placement preview
func appendPreview(groups []overlay.TileGroup, points []core.Point, entry *overlay.LegendEntry, highlight tcell.Color) []overlay.TileGroup {
	if len(points) == 0 {
		return groups
	}
	tint := scheme.Tint(entry.Color, highlight, parameter.PreviewTint)
	return append(groups, overlay.NewPreviewGroup(points, entry, tint, highlight))
}
