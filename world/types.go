package world

import "github.com/lixenwraith/grid-overlay/core"

// Property is a bitmask of terrain traits a coverage layer may consider relevant
type Property uint8

const (
	PropertyTilled Property = 1 << iota
	PropertyCrop
	PropertyWater
	PropertyBuildable
)

// Object is a placed instance of an item kind occupying one tile
type Object struct {
	ID   uint64
	Kind string
	Tile core.Point
}

// Location is the read-only world view a layer computes against
type Location interface {
	// Name identifies the location; a change is treated as a view change
	Name() string
	// Bounds returns the playable tile area
	Bounds() core.Area
	// ObjectsIn returns placed objects whose tile lies within area, ordered by ID
	ObjectsIn(area core.Area) []Object
	// HasProperty reports whether the tile carries every bit of prop
	HasProperty(p core.Point, prop Property) bool
}

// PlayerState is the controlling actor's per-tick selection snapshot
type PlayerState struct {
	HeldItem     string // item kind in hand, empty if none
	Construction string // building kind of the open placement menu, empty if closed
}

// Holding reports whether the player holds an item
func (s PlayerState) Holding() bool {
	return s.HeldItem != ""
}

// Constructing reports whether a placement menu is open
func (s PlayerState) Constructing() bool {
	return s.Construction != ""
}
