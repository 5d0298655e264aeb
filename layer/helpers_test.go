package layer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/shopspring/decimal"

	"github.com/lixenwraith/grid-overlay/config"
	"github.com/lixenwraith/grid-overlay/core"
	"github.com/lixenwraith/grid-overlay/overlay"
	"github.com/lixenwraith/grid-overlay/world"
)

func testConfig() config.LayerConfig {
	return config.LayerConfig{
		Enabled:            true,
		UpdatesPerSecond:   decimal.NewFromInt(2),
		UpdateOnViewChange: true,
	}
}

func frameOver(m *world.Map, view core.Area) overlay.Frame {
	return overlay.Frame{Location: m, Visible: core.NewVisibleRegion(view)}
}

// groupsByKey collects positions per legend key, split by exportability
func groupsByKey(groups []overlay.TileGroup) (exported, preview map[string][]core.Point) {
	exported = make(map[string][]core.Point)
	preview = make(map[string][]core.Point)
	for _, g := range groups {
		dst := exported
		if !g.Exportable {
			dst = preview
		}
		for _, t := range g.Tiles {
			dst[t.Type.Key] = append(dst[t.Type.Key], t.Pos)
		}
	}
	return exported, preview
}

func borders(groups []overlay.TileGroup) []tcell.Color {
	var out []tcell.Color
	for _, g := range groups {
		out = append(out, g.OuterBorderColor)
	}
	return out
}
