package layer

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/grid-overlay/core"
	"github.com/lixenwraith/grid-overlay/overlay"
	"github.com/lixenwraith/grid-overlay/scheme"
	"github.com/lixenwraith/grid-overlay/world"
)

func newObserved() (*zap.Logger, *observer.ObservedLogs) {
	c, logs := observer.New(zap.DebugLevel)
	return zap.New(c), logs
}

func TestExternalDescribeOnce(t *testing.T) {
	calls := 0
	spec := ExternalSpec{
		ID: "mod.water",
		Describe: func(add AddCategoryFunc) {
			calls++
			add("wet", "Wet", "yes", "")
			add("deep", "Deep", "#0000ff", "highlight")
		},
		Classify: func(world.Location, core.Area, []core.Point, core.Point) map[string][]core.Point {
			return nil
		},
	}
	colors := scheme.Empty()
	l, err := NewExternal(spec, testConfig(), colors, nil)
	require.NoError(t, err)
	assert.Zero(t, calls, "describe runs lazily")

	legend := l.Legend()
	l.Legend()
	l.Compute(frameOver(world.NewMap("farm", 4, 4), core.Area{Width: 4, Height: 4}))
	assert.Equal(t, 1, calls)

	require.Len(t, legend, 2)
	assert.Equal(t, colors.Yes(), legend[0].Color)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), legend[1].Color)
	assert.Equal(t, "mod.water", l.Name(), "id stands in for a missing name")
}

func TestExternalCompute(t *testing.T) {
	log, logs := newObserved()
	spec := ExternalSpec{
		ID:   "mod.paths",
		Name: func() string { return "Paths" },
		Describe: func(add AddCategoryFunc) {
			add("path", "Path", "#ffffff", "#ff0000")
		},
		Classify: func(_ world.Location, _ core.Area, tiles []core.Point, _ core.Point) map[string][]core.Point {
			return map[string][]core.Point{
				"path":    {tiles[0], {X: 99, Y: 99}},
				"unknown": {tiles[1]},
			}
		},
	}
	l, err := NewExternal(spec, testConfig(), scheme.Empty(), log)
	require.NoError(t, err)

	groups := l.Compute(frameOver(world.NewMap("farm", 8, 8), core.Area{Width: 8, Height: 8}))
	require.Len(t, groups, 1)
	assert.Equal(t, []core.Point{{X: 0, Y: 0}}, groups[0].Positions(), "out of view tile dropped")
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), groups[0].OuterBorderColor)
	assert.True(t, groups[0].Exportable)
	assert.Equal(t, "Paths", l.Name())

	assert.Equal(t, 1, logs.FilterMessage("unknown category dropped").Len())
}

func TestExternalPanicsRecovered(t *testing.T) {
	log, logs := newObserved()
	spec := ExternalSpec{
		ID: "mod.flaky",
		Name: func() string {
			panic("name")
		},
		Describe: func(add AddCategoryFunc) {
			add("ok", "Ok", "yes", "")
			panic("describe")
		},
		Classify: func(world.Location, core.Area, []core.Point, core.Point) map[string][]core.Point {
			panic("classify")
		},
	}
	l, err := NewExternal(spec, testConfig(), scheme.Empty(), log)
	require.NoError(t, err)

	var groups []overlay.TileGroup
	assert.NotPanics(t, func() {
		groups = l.Compute(frameOver(world.NewMap("farm", 4, 4), core.Area{Width: 4, Height: 4}))
	})
	assert.Empty(t, groups)
	assert.Len(t, l.Legend(), 1, "categories added before the panic are kept")
	assert.Equal(t, "mod.flaky", l.Name())

	assert.Equal(t, 1, logs.FilterMessage("describe callback panicked").Len())
	assert.Equal(t, 1, logs.FilterMessage("classify callback panicked").Len())
	assert.Equal(t, 1, logs.FilterMessage("name callback panicked").Len())
}

func TestExternalValidation(t *testing.T) {
	_, err := NewExternal(ExternalSpec{}, testConfig(), scheme.Empty(), nil)
	assert.Error(t, err)

	_, err = NewExternal(ExternalSpec{ID: "x"}, testConfig(), scheme.Empty(), nil)
	assert.Error(t, err)
}

func TestExternalIgnoresLateCategories(t *testing.T) {
	log, logs := newObserved()
	var kept AddCategoryFunc
	l, err := NewExternal(ExternalSpec{
		ID: "mod.late",
		Describe: func(add AddCategoryFunc) {
			kept = add
			add("early", "Early", "yes", "")
		},
		Classify: func(world.Location, core.Area, []core.Point, core.Point) map[string][]core.Point {
			return map[string][]core.Point{
				"early": {{X: 0, Y: 0}},
				"late":  {{X: 1, Y: 0}},
			}
		},
	}, testConfig(), scheme.Empty(), log)
	require.NoError(t, err)

	require.Len(t, l.Legend(), 1)
	require.NotNil(t, kept)
	kept("late", "Late", "no", "")

	require.Len(t, l.Legend(), 1)
	assert.Equal(t, "early", l.Legend()[0].Key)
	assert.Equal(t, 1, logs.FilterMessage("category added after describe ignored").Len())

	groups := l.Compute(overlay.Frame{
		Location: world.NewMap("pond", 4, 4),
		Visible:  core.NewVisibleRegion(core.Area{Width: 4, Height: 4}),
	})
	require.Len(t, groups, 1)
	assert.Equal(t, "early", groups[0].Tiles[0].Type.Key)
	assert.Equal(t, 1, logs.FilterMessage("unknown category dropped").Len(), "late id is unknown to classify")
}
