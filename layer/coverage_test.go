package layer

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/grid-overlay/core"
	"github.com/lixenwraith/grid-overlay/scheme"
	"github.com/lixenwraith/grid-overlay/vmath"
	"github.com/lixenwraith/grid-overlay/world"
)

func newSprinklers(t *testing.T) (*Coverage, *vmath.PatternSet) {
	t.Helper()
	ps := vmath.NewPatternSet()
	DefaultSprinklerPatterns(ps)
	l, err := NewSprinklers(testConfig(), scheme.Empty(), ps)
	require.NoError(t, err)
	return l, ps
}

func TestSprinklersPartition(t *testing.T) {
	l, _ := newSprinklers(t)

	m := world.NewMap("farm", 20, 20)
	field := core.Area{X: 2, Y: 2, Width: 8, Height: 8}
	m.FillProperty(field, world.PropertyTilled)
	m.Place(world.ItemSprinkler, core.Point{X: 5, Y: 5})
	m.Place(world.ItemQualitySprinkler, core.Point{X: 12, Y: 12})

	exported, _ := groupsByKey(l.Compute(frameOver(m, core.Area{Width: 20, Height: 20})))
	covered := core.NewPointSet(exported["covered"]...)
	dry := core.NewPointSet(exported["dry"]...)

	assert.Len(t, covered, 4, "basic sprinkler waters its four neighbours")
	assert.True(t, covered.Has(core.Point{X: 5, Y: 4}))

	// covered and dry partition exactly the relevant tiles
	assert.Equal(t, len(field.Points()), len(covered)+len(dry))
	for p := range covered {
		assert.False(t, dry.Has(p))
		assert.True(t, field.Contains(p))
	}
	for p := range dry {
		assert.True(t, field.Contains(p))
	}
}

func TestSprinklersRegisteredPattern(t *testing.T) {
	l, ps := newSprinklers(t)

	m := world.NewMap("farm", 20, 20)
	m.FillProperty(core.Area{Width: 20, Height: 20}, world.PropertyTilled)
	m.Place(world.ItemSprinkler, core.Point{X: 10, Y: 10})
	view := core.Area{Width: 20, Height: 20}

	exported, _ := groupsByKey(l.Compute(frameOver(m, view)))
	assert.Len(t, exported["covered"], 4)

	ps.Register(world.ItemSprinkler, vmath.SquarePattern(1, true))
	exported, _ = groupsByKey(l.Compute(frameOver(m, view)))
	assert.Len(t, exported["covered"], 8, "union of plus and ring")

	ps.Register("enricher", vmath.PlusPattern(1))
	assert.True(t, l.AppliesToItem("enricher"))
}

func TestSprinklersPreview(t *testing.T) {
	l, _ := newSprinklers(t)
	colors := scheme.Empty()

	m := world.NewMap("farm", 20, 20)
	f := frameOver(m, core.Area{Width: 20, Height: 20})
	f.Cursor = core.Point{X: 3, Y: 3}
	f.Player.HeldItem = world.ItemIridiumSprinkler

	groups := l.Compute(f)
	_, preview := groupsByKey(groups)
	assert.Len(t, preview["covered"], 24)
	assert.Equal(t, []tcell.Color{colors.Highlight()}, borders(groups))
}

func TestScarecrows(t *testing.T) {
	l, err := NewScarecrows(testConfig(), scheme.Empty(), nil)
	require.NoError(t, err)

	m := world.NewMap("farm", 40, 40)
	m.SetProperty(core.Point{X: 10, Y: 10}, world.PropertyCrop)
	m.SetProperty(core.Point{X: 30, Y: 30}, world.PropertyCrop)
	m.Place(world.ItemScarecrow, core.Point{X: 12, Y: 12})

	exported, _ := groupsByKey(l.Compute(frameOver(m, core.Area{Width: 40, Height: 40})))
	assert.Equal(t, []core.Point{{X: 10, Y: 10}}, exported["protected"])
	assert.Equal(t, []core.Point{{X: 30, Y: 30}}, exported["exposed"])

	assert.True(t, l.AppliesToItem(world.ItemDeluxeScarecrow))
	assert.False(t, l.AppliesToConstruction(world.BuildingJunimoHut))
}

func TestJunimoHuts(t *testing.T) {
	l, err := NewJunimoHuts(testConfig(), scheme.Empty())
	require.NoError(t, err)

	m := world.NewMap("farm", 40, 40)
	m.SetProperty(core.Point{X: 2, Y: 2}, world.PropertyCrop)
	m.SetProperty(core.Point{X: 20, Y: 2}, world.PropertyCrop)
	m.Place(world.BuildingJunimoHut, core.Point{X: 8, Y: 8})

	f := frameOver(m, core.Area{Width: 40, Height: 40})
	exported, preview := groupsByKey(l.Compute(f))
	assert.Equal(t, []core.Point{{X: 2, Y: 2}}, exported["harvested"])
	assert.Equal(t, []core.Point{{X: 20, Y: 2}}, exported["out_of_range"])
	assert.Empty(t, preview)

	f.Player.Construction = world.BuildingJunimoHut
	f.Cursor = core.Point{X: 20, Y: 20}
	_, preview = groupsByKey(l.Compute(f))
	assert.Len(t, preview["harvested"], 17*17)

	assert.True(t, l.AppliesToConstruction(world.BuildingJunimoHut))
	assert.False(t, l.AppliesToItem(world.BuildingJunimoHut))
}

func TestCoverageSchemeColors(t *testing.T) {
	colors := scheme.New("test",
		map[string]tcell.Color{scheme.AliasNo: tcell.ColorPurple},
		map[string]map[string]tcell.Color{IDScarecrows: {"protected": tcell.ColorTeal}},
	)
	l, err := NewScarecrows(testConfig(), colors, nil)
	require.NoError(t, err)

	legend := l.Legend()
	require.Len(t, legend, 2)
	assert.Equal(t, tcell.ColorTeal, legend[0].Color)
	assert.Equal(t, tcell.ColorPurple, legend[1].Color)
}
