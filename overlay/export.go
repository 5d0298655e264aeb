package overlay

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/lixenwraith/grid-overlay/core"
	"github.com/lixenwraith/grid-overlay/scheme"
)

// Report is the exported snapshot of one layer's exportable groups
type Report struct {
	Layer      string           `json:"layer"`
	Name       string           `json:"name"`
	Location   string           `json:"location"`
	Categories []ReportCategory `json:"categories"`
}

// ReportCategory lists the tiles of one legend entry
type ReportCategory struct {
	Key   string   `json:"key"`
	Name  string   `json:"name"`
	Color string   `json:"color"`
	Tiles [][2]int `json:"tiles"`
}

// BuildReport collects exportable groups by legend entry in first-seen order
// Tiles are deduplicated and sorted row-major
func BuildReport(layer Layer, location string, groups []TileGroup) Report {
	r := Report{
		Layer:      layer.ID(),
		Name:       layer.Name(),
		Location:   location,
		Categories: []ReportCategory{},
	}

	var order []*LegendEntry
	sets := make(map[*LegendEntry]core.PointSet)
	for _, g := range groups {
		if !g.Exportable {
			continue
		}
		for _, t := range g.Tiles {
			if t.Type == nil {
				continue
			}
			set, ok := sets[t.Type]
			if !ok {
				set = core.NewPointSet()
				sets[t.Type] = set
				order = append(order, t.Type)
			}
			set.Add(t.Pos)
		}
	}

	for _, e := range order {
		pts := sets[e].Sorted()
		tiles := make([][2]int, len(pts))
		for i, p := range pts {
			tiles[i] = [2]int{p.X, p.Y}
		}
		r.Categories = append(r.Categories, ReportCategory{
			Key:   e.Key,
			Name:  e.Name,
			Color: scheme.FormatColor(e.Color),
			Tiles: tiles,
		})
	}
	return r
}

// Export writes the JSON report for layer to w
func Export(w io.Writer, layer Layer, location string, groups []TileGroup) error {
	if layer == nil {
		return fmt.Errorf("export: no layer selected")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(BuildReport(layer, location, groups)); err != nil {
		return fmt.Errorf("export %s: %w", layer.ID(), err)
	}
	return nil
}
