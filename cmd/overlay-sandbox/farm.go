package main

import (
	"github.com/lixenwraith/grid-overlay/core"
	"github.com/lixenwraith/grid-overlay/engine"
	"github.com/lixenwraith/grid-overlay/layer"
	"github.com/lixenwraith/grid-overlay/registry"
	"github.com/lixenwraith/grid-overlay/vmath"
	"github.com/lixenwraith/grid-overlay/world"
)

// itemNozzle is a sprinkler kind contributed through pattern registration
const itemNozzle = "pressure_nozzle"

// buildFarm lays out a demo farm with a field, a pond and a few placed items
func buildFarm() *world.Map {
	m := world.NewMap("Farm", 80, 50)

	field := core.Area{X: 8, Y: 6, Width: 36, Height: 24}
	m.FillProperty(field, world.PropertyTilled)
	for _, p := range field.Points() {
		if (p.X+p.Y)%3 != 0 {
			m.SetProperty(p, world.PropertyCrop)
		}
	}

	m.FillProperty(core.Area{X: 52, Y: 10, Width: 10, Height: 6}, world.PropertyWater)
	m.FillProperty(core.Area{X: 55, Y: 16, Width: 4, Height: 3}, world.PropertyWater)
	m.FillProperty(core.Area{X: 48, Y: 24, Width: 24, Height: 18}, world.PropertyBuildable)

	m.Place(world.ItemSprinkler, core.Point{X: 12, Y: 10})
	m.Place(world.ItemQualitySprinkler, core.Point{X: 20, Y: 10})
	m.Place(world.ItemIridiumSprinkler, core.Point{X: 30, Y: 12})
	m.Place(world.ItemScarecrow, core.Point{X: 16, Y: 20})
	m.Place(world.BuildingJunimoHut, core.Point{X: 38, Y: 24})
	m.Place(world.ItemCherryBomb, core.Point{X: 60, Y: 35})
	return m
}

// registerExtensions wires the layers and patterns a third party would contribute
func registerExtensions(ctl *engine.Controller) error {
	ctl.Registry().RegisterPattern(itemNozzle, vmath.PlusPattern(3))

	return ctl.RegisterExternal(registry.ExternalLayer{
		ID:       "sandbox.water",
		Name:     func() string { return "Water" },
		Shortcut: "F9",
		Describe: func(add layer.AddCategoryFunc) {
			add("water", "Water", "#1e90ff", "")
			add("shore", "Shore", "#87cefa", "highlight")
		},
		Classify: classifyWater,
	})
}

// classifyWater marks water tiles and the land tiles bordering them
func classifyWater(loc world.Location, _ core.Area, tiles []core.Point, _ core.Point) map[string][]core.Point {
	out := make(map[string][]core.Point)
	for _, p := range tiles {
		if loc.HasProperty(p, world.PropertyWater) {
			out["water"] = append(out["water"], p)
			continue
		}
		for _, n := range vmath.SquarePattern(1, true) {
			if loc.HasProperty(p.Add(n), world.PropertyWater) {
				out["shore"] = append(out["shore"], p)
				break
			}
		}
	}
	return out
}
