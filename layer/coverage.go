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

// Coverage partitions relevant visible tiles into covered and uncovered
// by the union of every nearby source's effect
type Coverage struct {
	Base
	rule      coverageRule
	in        *overlay.LegendEntry
	out       *overlay.LegendEntry
	highlight tcell.Color
}

// coverageRule binds a coverage layer to its sources
type coverageRule struct {
	relevant world.Property
	// reach is the largest distance a source affects
	reach func() int
	// cover returns the tiles a placed object affects, false if it is not a source
	cover func(obj world.Object, filter vmath.Filter) ([]core.Point, bool)
	// preview returns placement coverage at the cursor for the player's selection
	preview func(frame overlay.Frame, filter vmath.Filter) ([]core.Point, bool)
	// item and construction report auto layer applicability
	item         func(kind string) bool
	construction func(kind string) bool
}

type category struct {
	key, name string
	alias     string
}

func newCoverage(id, name string, cfg config.LayerConfig, colors *scheme.Scheme, in, out category, rule coverageRule) (*Coverage, error) {
	base, err := NewBase(id, name, cfg)
	if err != nil {
		return nil, err
	}
	c := &Coverage{
		Base:      base,
		rule:      rule,
		in:        legendFor(id, in, colors),
		out:       legendFor(id, out, colors),
		highlight: colors.Highlight(),
	}
	c.SetLegend(c.in, c.out)
	return c, nil
}

func legendFor(layerID string, c category, colors *scheme.Scheme) *overlay.LegendEntry {
	def, _ := colors.Alias(c.alias)
	return overlay.NewLegendEntry(c.key, c.name, colors.Resolve(layerID, c.key, def))
}

// Compute emits the covered and uncovered groups plus any placement preview
func (c *Coverage) Compute(frame overlay.Frame) []overlay.TileGroup {
	if frame.Location == nil {
		return nil
	}
	filter := frame.Visible.Contains

	covered := core.NewPointSet()
	for _, obj := range frame.Location.ObjectsIn(scanArea(frame, c.rule.reach())) {
		if pts, ok := c.rule.cover(obj, filter); ok {
			covered.AddAll(pts)
		}
	}
	in, out := partition(relevantTiles(frame, c.rule.relevant), covered)

	var groups []overlay.TileGroup
	groups = appendGroup(groups, in, c.in)
	groups = appendGroup(groups, out, c.out)

	if pts, ok := c.rule.preview(frame, filter); ok {
		groups = appendPreview(groups, pts, c.in, c.highlight)
	}
	return groups
}

func (c *Coverage) AppliesToItem(kind string) bool         { return c.rule.item(kind) }
func (c *Coverage) AppliesToConstruction(kind string) bool { return c.rule.construction(kind) }

func never(string) bool { return false }

// DefaultSprinklerPatterns registers the built-in sprinkler shapes
func DefaultSprinklerPatterns(ps *vmath.PatternSet) {
	ps.Register(world.ItemSprinkler, vmath.PlusPattern(1))
	ps.Register(world.ItemQualitySprinkler, vmath.SquarePattern(1, true))
	ps.Register(world.ItemIridiumSprinkler, vmath.SquarePattern(2, true))
}

// NewSprinklers creates the watering layer over tilled tiles
// Patterns registered later under an existing key extend that sprinkler's reach
func NewSprinklers(cfg config.LayerConfig, colors *scheme.Scheme, patterns *vmath.PatternSet) (*Coverage, error) {
	reach := func() int {
		r := 0
		for _, k := range patterns.Keys() {
			r = max(r, patterns.MaxReach(k))
		}
		return r
	}
	return newCoverage(IDSprinklers, "Sprinkler coverage", cfg, colors,
		category{key: "covered", name: "Watered", alias: scheme.AliasYes},
		category{key: "dry", name: "Dry", alias: scheme.AliasNo},
		coverageRule{
			relevant: world.PropertyTilled,
			reach:    reach,
			cover: func(obj world.Object, filter vmath.Filter) ([]core.Point, bool) {
				if !patterns.Has(obj.Kind) {
					return nil, false
				}
				return patterns.Coverage(obj.Tile, obj.Kind, filter), true
			},
			preview: func(frame overlay.Frame, filter vmath.Filter) ([]core.Point, bool) {
				if !patterns.Has(frame.Player.HeldItem) {
					return nil, false
				}
				return patterns.Coverage(frame.Cursor, frame.Player.HeldItem, filter), true
			},
			item:         patterns.Has,
			construction: never,
		})
}

// NewScarecrows creates the crow protection layer over crop tiles; circles may be nil
func NewScarecrows(cfg config.LayerConfig, colors *scheme.Scheme, circles *vmath.CircleCache) (*Coverage, error) {
	reach := 0
	for _, r := range world.ScarecrowRadius {
		reach = max(reach, r)
	}
	return newCoverage(IDScarecrows, "Scarecrow coverage", cfg, colors,
		category{key: "protected", name: "Protected", alias: scheme.AliasYes},
		category{key: "exposed", name: "Exposed", alias: scheme.AliasNo},
		coverageRule{
			relevant: world.PropertyCrop,
			reach:    func() int { return reach },
			cover: func(obj world.Object, filter vmath.Filter) ([]core.Point, bool) {
				r, ok := world.ScarecrowRadius[obj.Kind]
				if !ok {
					return nil, false
				}
				return circles.CircularArea(obj.Tile, r, filter), true
			},
			preview: func(frame overlay.Frame, filter vmath.Filter) ([]core.Point, bool) {
				r, ok := world.ScarecrowRadius[frame.Player.HeldItem]
				if !ok {
					return nil, false
				}
				return circles.CircularArea(frame.Cursor, r, filter), true
			},
			item: func(kind string) bool {
				_, ok := world.ScarecrowRadius[kind]
				return ok
			},
			construction: never,
		})
}

// NewJunimoHuts creates the hut harvest layer over crop tiles
func NewJunimoHuts(cfg config.LayerConfig, colors *scheme.Scheme) (*Coverage, error) {
	pattern := vmath.SquarePattern(world.JunimoHutRadius, false)
	return newCoverage(IDJunimoHuts, "Junimo hut coverage", cfg, colors,
		category{key: "harvested", name: "Harvested", alias: scheme.AliasYes},
		category{key: "out_of_range", name: "Out of range", alias: scheme.AliasNo},
		coverageRule{
			relevant: world.PropertyCrop,
			reach:    func() int { return world.JunimoHutRadius },
			cover: func(obj world.Object, filter vmath.Filter) ([]core.Point, bool) {
				if obj.Kind != world.BuildingJunimoHut {
					return nil, false
				}
				return vmath.OffsetPatternCoverage(obj.Tile, pattern, filter), true
			},
			preview: func(frame overlay.Frame, filter vmath.Filter) ([]core.Point, bool) {
				if frame.Player.Construction != world.BuildingJunimoHut {
					return nil, false
				}
				return vmath.OffsetPatternCoverage(frame.Cursor, pattern, filter), true
			},
			item: never,
			construction: func(kind string) bool {
				return kind == world.BuildingJunimoHut
			},
		})
}
