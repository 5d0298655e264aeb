package layer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-overlay/config"
	"github.com/lixenwraith/grid-overlay/core"
	"github.com/lixenwraith/grid-overlay/overlay"
	"github.com/lixenwraith/grid-overlay/scheme"
	"github.com/lixenwraith/grid-overlay/vmath"
	"github.com/lixenwraith/grid-overlay/world"
)

// Bombs shows the tiered effect of placed explosives
// Where bombs overlap, dig wins over blast and blast over shockwave
type Bombs struct {
	Base
	dig       *overlay.LegendEntry
	blast     *overlay.LegendEntry
	shockwave *overlay.LegendEntry
	highlight tcell.Color
	reach     int
	circles   *vmath.CircleCache
}

// NewBombs creates the bomb range layer; circles may be nil
func NewBombs(cfg config.LayerConfig, colors *scheme.Scheme, circles *vmath.CircleCache) (*Bombs, error) {
	base, err := NewBase(IDBombs, "Bomb range", cfg)
	if err != nil {
		return nil, err
	}
	b := &Bombs{
		Base:      base,
		dig:       overlay.NewLegendEntry("dig", "Dig", colors.Resolve(IDBombs, "dig", tcell.NewRGBColor(160, 32, 240))),
		blast:     overlay.NewLegendEntry("blast", "Blast", colors.Resolve(IDBombs, "blast", colors.No())),
		shockwave: overlay.NewLegendEntry("shockwave", "Shockwave", colors.Resolve(IDBombs, "shockwave", tcell.NewRGBColor(255, 165, 0))),
		highlight: colors.Highlight(),
		circles:   circles,
	}
	b.SetLegend(b.dig, b.blast, b.shockwave)
	for _, r := range world.BombRadius {
		b.reach = max(b.reach, r)
	}
	return b, nil
}

// Compute partitions visible tiles into dig, blast and shockwave
func (b *Bombs) Compute(frame overlay.Frame) []overlay.TileGroup {
	if frame.Location == nil {
		return nil
	}
	filter := frame.Visible.Contains

	dig, blast, shock := core.NewPointSet(), core.NewPointSet(), core.NewPointSet()
	for _, obj := range frame.Location.ObjectsIn(scanArea(frame, b.reach)) {
		r, ok := world.BombRadius[obj.Kind]
		if !ok {
			continue
		}
		d, bl, s := b.circles.TieredAreaOfEffect(obj.Tile, r, filter)
		dig.AddAll(d)
		blast.AddAll(bl)
		shock.AddAll(s)
	}
	blast.Remove(dig)
	shock.Remove(dig)
	shock.Remove(blast)

	var groups []overlay.TileGroup
	groups = appendGroup(groups, dig.Sorted(), b.dig)
	groups = appendGroup(groups, blast.Sorted(), b.blast)
	groups = appendGroup(groups, shock.Sorted(), b.shockwave)

	if r, ok := world.BombRadius[frame.Player.HeldItem]; ok {
		d, bl, s := b.circles.TieredAreaOfEffect(frame.Cursor, r, filter)
		groups = appendPreview(groups, d, b.dig, b.highlight)
		groups = appendPreview(groups, bl, b.blast, b.highlight)
		groups = appendPreview(groups, s, b.shockwave, b.highlight)
	}
	return groups
}

// AppliesToItem reports whether kind is an explosive
func (b *Bombs) AppliesToItem(kind string) bool {
	_, ok := world.BombRadius[kind]
	return ok
}

func (b *Bombs) AppliesToConstruction(string) bool { return false }
