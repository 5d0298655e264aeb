package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/grid-overlay/core"
)

func TestMapProperties(t *testing.T) {
	m := NewMap("farm", 10, 10)

	require.True(t, m.SetProperty(core.Point{X: 2, Y: 2}, PropertyTilled|PropertyCrop))
	assert.True(t, m.HasProperty(core.Point{X: 2, Y: 2}, PropertyTilled))
	assert.True(t, m.HasProperty(core.Point{X: 2, Y: 2}, PropertyTilled|PropertyCrop))

	m.ClearProperty(core.Point{X: 2, Y: 2}, PropertyCrop)
	assert.False(t, m.HasProperty(core.Point{X: 2, Y: 2}, PropertyCrop))
	assert.True(t, m.HasProperty(core.Point{X: 2, Y: 2}, PropertyTilled))

	assert.False(t, m.SetProperty(core.Point{X: -1, Y: 0}, PropertyTilled))
	assert.False(t, m.HasProperty(core.Point{X: 10, Y: 0}, PropertyTilled))
}

func TestMapFillPropertyClipsToBounds(t *testing.T) {
	m := NewMap("farm", 4, 4)
	m.FillProperty(core.Area{X: 2, Y: 2, Width: 5, Height: 5}, PropertyTilled)

	count := 0
	for _, p := range m.Bounds().Points() {
		if m.HasProperty(p, PropertyTilled) {
			count++
		}
	}
	assert.Equal(t, 4, count)
}

func TestMapObjectsIn(t *testing.T) {
	m := NewMap("farm", 20, 20)
	first := m.Place(ItemBomb, core.Point{X: 5, Y: 5})
	second := m.Place(ItemSprinkler, core.Point{X: 1, Y: 1})
	m.Place(ItemScarecrow, core.Point{X: 15, Y: 15})
	assert.Zero(t, m.Place(ItemBomb, core.Point{X: 25, Y: 0}))

	objs := m.ObjectsIn(core.Area{X: 0, Y: 0, Width: 10, Height: 10})
	require.Len(t, objs, 2)
	assert.Equal(t, first, objs[0].ID)
	assert.Equal(t, second, objs[1].ID)

	// Large area scans the index instead of probing tiles
	assert.Len(t, m.ObjectsIn(core.Area{X: -100, Y: -100, Width: 300, Height: 300}), 3)

	require.True(t, m.Remove(core.Point{X: 5, Y: 5}))
	assert.False(t, m.Remove(core.Point{X: 5, Y: 5}))
	_, ok := m.ObjectAt(core.Point{X: 5, Y: 5})
	assert.False(t, ok)
}
