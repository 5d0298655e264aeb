// Package layer implements the overlay's layer variants: coverage layers that
// partition tiles around effect sources, the auto-composing layer that follows
// the player's selection, and layers described by external registrants.
package layer

import (
	"fmt"

	"github.com/lixenwraith/grid-overlay/config"
	"github.com/lixenwraith/grid-overlay/input"
	"github.com/lixenwraith/grid-overlay/overlay"
)

// Built-in layer ids
const (
	IDAuto       = "auto"
	IDBombs      = "bombs"
	IDSprinklers = "sprinklers"
	IDScarecrows = "scarecrows"
	IDJunimoHuts = "junimo_huts"
)

// Base holds the capability values shared by every layer variant
type Base struct {
	id         string
	name       string
	tickRate   int
	viewChange bool
	legend     []*overlay.LegendEntry
	shortcut   input.Binding
	alwaysGrid bool
}

// NewBase reads rate, view-change flag and shortcut from cfg
func NewBase(id, name string, cfg config.LayerConfig) (Base, error) {
	shortcut, err := input.ParseBinding(cfg.Shortcut)
	if err != nil {
		return Base{}, fmt.Errorf("layer %s shortcut: %w", id, err)
	}
	return Base{
		id:         id,
		name:       name,
		tickRate:   cfg.TickRate(),
		viewChange: cfg.UpdateOnViewChange,
		shortcut:   shortcut,
	}, nil
}

func (b *Base) ID() string                     { return b.id }
func (b *Base) Name() string                   { return b.name }
func (b *Base) UpdateTickRate() int            { return b.tickRate }
func (b *Base) UpdateOnViewChange() bool       { return b.viewChange }
func (b *Base) Legend() []*overlay.LegendEntry { return b.legend }
func (b *Base) Shortcut() input.Binding        { return b.shortcut }
func (b *Base) AlwaysShowGrid() bool           { return b.alwaysGrid }

// SetLegend replaces the legend entries
func (b *Base) SetLegend(entries ...*overlay.LegendEntry) {
	b.legend = entries
}

// SetAlwaysShowGrid forces the grid on while the layer is displayed
func (b *Base) SetAlwaysShowGrid(on bool) {
	b.alwaysGrid = on
}

// SubLayer is a layer the auto layer can select from the player's context
type SubLayer interface {
	overlay.Layer
	AppliesToItem(kind string) bool
	AppliesToConstruction(kind string) bool
}
