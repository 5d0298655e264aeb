package overlay

import (
	"github.com/lixenwraith/grid-overlay/core"
	"github.com/lixenwraith/grid-overlay/input"
	"github.com/lixenwraith/grid-overlay/world"
)

// Frame is the per-tick snapshot the host supplies; layers must treat it as read-only
type Frame struct {
	Location world.Location
	Visible  core.VisibleRegion
	Cursor   core.Point
	Player   world.PlayerState
}

// LocationName returns the frame's location name, empty without a location
func (f Frame) LocationName() string {
	if f.Location == nil {
		return ""
	}
	return f.Location.Name()
}

// Layer is the unit of overlay logic
// ID is stable for the instance lifetime; every other property may change between recomputes
type Layer interface {
	ID() string
	Name() string
	UpdateTickRate() int
	UpdateOnViewChange() bool
	Legend() []*LegendEntry
	Shortcut() input.Binding
	AlwaysShowGrid() bool
	Compute(frame Frame) []TileGroup
}

// MetadataUpdater is implemented by layers whose name and legend depend on live context
// UpdateMetadata runs every tick and reports whether the displayed identity changed
type MetadataUpdater interface {
	UpdateMetadata(frame Frame) bool
}
