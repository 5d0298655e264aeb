package layer

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/grid-overlay/core"
	"github.com/lixenwraith/grid-overlay/overlay"
	"github.com/lixenwraith/grid-overlay/scheme"
	"github.com/lixenwraith/grid-overlay/world"
)

func TestBombsSingleCherryBomb(t *testing.T) {
	b, err := NewBombs(testConfig(), scheme.Empty(), nil)
	require.NoError(t, err)

	m := world.NewMap("farm", 21, 21)
	m.Place(world.ItemCherryBomb, core.Point{X: 10, Y: 10})

	exported, preview := groupsByKey(b.Compute(frameOver(m, core.Area{Width: 21, Height: 21})))
	assert.Len(t, exported["dig"], 5)
	assert.Len(t, exported["blast"], 32)
	assert.Len(t, exported["shockwave"], 12)
	assert.Empty(t, preview)
}

func TestBombsOverlapPrecedence(t *testing.T) {
	b, err := NewBombs(testConfig(), scheme.Empty(), nil)
	require.NoError(t, err)

	m := world.NewMap("farm", 20, 20)
	m.Place(world.ItemCherryBomb, core.Point{X: 5, Y: 5})
	m.Place(world.ItemCherryBomb, core.Point{X: 8, Y: 5})

	exported, _ := groupsByKey(b.Compute(frameOver(m, core.Area{Width: 20, Height: 20})))
	dig := core.NewPointSet(exported["dig"]...)
	blast := core.NewPointSet(exported["blast"]...)
	shock := core.NewPointSet(exported["shockwave"]...)

	// (8,5) is blast for the first bomb and dig for the second
	assert.True(t, dig.Has(core.Point{X: 8, Y: 5}))
	assert.False(t, blast.Has(core.Point{X: 8, Y: 5}))

	for p := range dig {
		assert.False(t, blast.Has(p), "dig and blast overlap at %v", p)
		assert.False(t, shock.Has(p), "dig and shockwave overlap at %v", p)
	}
	for p := range blast {
		assert.False(t, shock.Has(p), "blast and shockwave overlap at %v", p)
	}
}

func TestBombsClipToView(t *testing.T) {
	b, err := NewBombs(testConfig(), scheme.Empty(), nil)
	require.NoError(t, err)

	m := world.NewMap("farm", 40, 40)
	// Source sits off screen but its effect reaches into view
	m.Place(world.ItemMegaBomb, core.Point{X: 25, Y: 5})
	view := core.Area{Width: 20, Height: 20}

	groups := b.Compute(frameOver(m, view))
	require.NotEmpty(t, groups)
	for _, g := range groups {
		for _, tile := range g.Tiles {
			assert.True(t, view.Contains(tile.Pos), "tile %v outside view", tile.Pos)
		}
	}
}

func TestBombsPreview(t *testing.T) {
	colors := scheme.Empty()
	b, err := NewBombs(testConfig(), colors, nil)
	require.NoError(t, err)

	m := world.NewMap("farm", 21, 21)
	f := frameOver(m, core.Area{Width: 21, Height: 21})
	f.Cursor = core.Point{X: 10, Y: 10}
	f.Player.HeldItem = world.ItemCherryBomb

	groups := b.Compute(f)
	exported, preview := groupsByKey(groups)
	assert.Empty(t, exported)
	assert.Len(t, preview["dig"], 5)
	assert.Len(t, preview["blast"], 32)
	assert.Len(t, preview["shockwave"], 12)

	for _, g := range groups {
		assert.False(t, g.Exportable)
		assert.Equal(t, colors.Highlight(), g.OuterBorderColor)
		assert.NotEqual(t, tcell.ColorDefault, g.Tiles[0].Color, "preview tiles carry a tint override")
	}
}

func TestBombsApplicability(t *testing.T) {
	b, err := NewBombs(testConfig(), scheme.Empty(), nil)
	require.NoError(t, err)

	assert.True(t, b.AppliesToItem(world.ItemMegaBomb))
	assert.False(t, b.AppliesToItem(world.ItemSprinkler))
	assert.False(t, b.AppliesToConstruction(world.BuildingJunimoHut))
	assert.Len(t, b.Legend(), 3)
	assert.Equal(t, IDBombs, b.ID())
}

func TestBombsWithoutLocation(t *testing.T) {
	b, err := NewBombs(testConfig(), scheme.Empty(), nil)
	require.NoError(t, err)
	assert.Nil(t, b.Compute(overlay.Frame{Visible: core.NewVisibleRegion(core.Area{Width: 4, Height: 4})}))
}
