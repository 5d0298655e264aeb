package layer

import (
	"github.com/lixenwraith/grid-overlay/config"
	"github.com/lixenwraith/grid-overlay/overlay"
)

// Auto delegates to whichever sub-layer applies to the player's current selection
// An open construction menu replaces the held item as the selection input
type Auto struct {
	Base
	subs      []SubLayer
	selected  SubLayer
	recheck   int
	countdown int
}

// NewAuto creates the auto layer over subs, reselecting every recheck ticks
func NewAuto(cfg config.LayerConfig, recheck int, subs []SubLayer) (*Auto, error) {
	base, err := NewBase(IDAuto, "Auto", cfg)
	if err != nil {
		return nil, err
	}
	recheck = max(recheck, 1)
	return &Auto{
		Base:      base,
		subs:      subs,
		recheck:   recheck,
		countdown: recheck,
	}, nil
}

// Selected returns the active sub-layer, nil when nothing applies
func (a *Auto) Selected() SubLayer {
	return a.selected
}

// SubLayers returns the candidates in selection order
func (a *Auto) SubLayers() []SubLayer {
	return a.subs
}

func (a *Auto) Name() string {
	if a.selected == nil {
		return a.Base.Name()
	}
	return a.Base.Name() + ": " + a.selected.Name()
}

func (a *Auto) Legend() []*overlay.LegendEntry {
	if a.selected == nil {
		return nil
	}
	return a.selected.Legend()
}

func (a *Auto) AlwaysShowGrid() bool {
	return a.selected != nil && a.selected.AlwaysShowGrid()
}

// UpdateMetadata reselects once per countdown and reports a change of sub-layer
func (a *Auto) UpdateMetadata(frame overlay.Frame) bool {
	a.countdown--
	if a.countdown > 0 {
		return false
	}
	a.countdown = a.recheck

	next := a.choose(frame)
	changed := next != a.selected
	a.selected = next
	return changed
}

// choose never consults the held item while a construction menu is open
func (a *Auto) choose(frame overlay.Frame) SubLayer {
	if frame.Player.Constructing() {
		for _, s := range a.subs {
			if s.AppliesToConstruction(frame.Player.Construction) {
				return s
			}
		}
		return nil
	}
	if frame.Player.Holding() {
		for _, s := range a.subs {
			if s.AppliesToItem(frame.Player.HeldItem) {
				return s
			}
		}
	}
	return nil
}

// Compute delegates to the selected sub-layer
func (a *Auto) Compute(frame overlay.Frame) []overlay.TileGroup {
	if a.selected == nil {
		return nil
	}
	return a.selected.Compute(frame)
}
