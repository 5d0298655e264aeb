package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/grid-overlay/core"
	"github.com/lixenwraith/grid-overlay/overlay"
	"github.com/lixenwraith/grid-overlay/scheme"
	"github.com/lixenwraith/grid-overlay/vmath"
	"github.com/lixenwraith/grid-overlay/world"
)

func newAuto(t *testing.T, recheck int) (*Auto, *Bombs, *Coverage, *Coverage) {
	t.Helper()
	colors := scheme.Empty()
	bombs, err := NewBombs(testConfig(), colors, nil)
	require.NoError(t, err)
	ps := vmath.NewPatternSet()
	DefaultSprinklerPatterns(ps)
	sprinklers, err := NewSprinklers(testConfig(), colors, ps)
	require.NoError(t, err)
	huts, err := NewJunimoHuts(testConfig(), colors)
	require.NoError(t, err)

	a, err := NewAuto(testConfig(), recheck, []SubLayer{bombs, sprinklers, huts})
	require.NoError(t, err)
	return a, bombs, sprinklers, huts
}

func TestAutoCountdown(t *testing.T) {
	a, bombs, _, _ := newAuto(t, 30)
	f := overlay.Frame{Player: world.PlayerState{HeldItem: world.ItemBomb}}

	for i := 1; i < 30; i++ {
		require.False(t, a.UpdateMetadata(f), "call %d", i)
		require.Nil(t, a.Selected())
	}
	assert.True(t, a.UpdateMetadata(f), "reselects on the 30th call")
	assert.Same(t, bombs, a.Selected())

	// Same selection after the next countdown is not a change
	for i := 1; i < 30; i++ {
		a.UpdateMetadata(f)
	}
	assert.False(t, a.UpdateMetadata(f))
}

func TestAutoSelection(t *testing.T) {
	a, bombs, sprinklers, huts := newAuto(t, 1)

	tests := []struct {
		name   string
		player world.PlayerState
		want   SubLayer
	}{
		{"bomb in hand", world.PlayerState{HeldItem: world.ItemCherryBomb}, bombs},
		{"sprinkler in hand", world.PlayerState{HeldItem: world.ItemQualitySprinkler}, sprinklers},
		{"construction wins", world.PlayerState{HeldItem: world.ItemBomb, Construction: world.BuildingJunimoHut}, huts},
		{"unrelated construction ignores held item", world.PlayerState{HeldItem: world.ItemBomb, Construction: "barn"}, nil},
		{"nothing applies", world.PlayerState{HeldItem: "parsnip"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a.UpdateMetadata(overlay.Frame{Player: tt.player})
			if tt.want == nil {
				assert.Nil(t, a.Selected())
				return
			}
			assert.Same(t, tt.want, a.Selected())
		})
	}
}

func TestAutoTracksSelection(t *testing.T) {
	a, bombs, _, _ := newAuto(t, 1)

	assert.Equal(t, "Auto", a.Name())
	assert.Nil(t, a.Legend())
	assert.Nil(t, a.Compute(overlay.Frame{}))

	m := world.NewMap("farm", 21, 21)
	m.Place(world.ItemCherryBomb, core.Point{X: 10, Y: 10})
	f := frameOver(m, core.Area{Width: 21, Height: 21})
	f.Player.HeldItem = world.ItemBomb

	assert.True(t, a.UpdateMetadata(f))
	assert.Equal(t, "Auto: "+bombs.Name(), a.Name())
	assert.Equal(t, bombs.Legend(), a.Legend())

	exported, _ := groupsByKey(a.Compute(f))
	assert.Len(t, exported["dig"], 5)

	f.Player.HeldItem = ""
	assert.True(t, a.UpdateMetadata(f))
	assert.Equal(t, "Auto", a.Name())
}
