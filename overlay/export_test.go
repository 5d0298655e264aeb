package overlay

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/grid-overlay/core"
)

func TestExportSkipsPreviewGroups(t *testing.T) {
	l := newStub("bombs", 1, false)
	covered := NewLegendEntry("covered", "Covered", tcell.NewRGBColor(0, 255, 0))
	dry := NewLegendEntry("dry", "Dry", tcell.NewRGBColor(255, 0, 0))

	groups := []TileGroup{
		NewTileGroup([]core.Point{{X: 2, Y: 1}, {X: 1, Y: 1}}, covered, tcell.ColorDefault, true),
		NewTileGroup([]core.Point{{X: 5, Y: 5}}, dry, tcell.ColorDefault, true),
		NewTileGroup([]core.Point{{X: 1, Y: 1}, {X: 0, Y: 0}}, covered, tcell.ColorDefault, true),
		NewPreviewGroup([]core.Point{{X: 9, Y: 9}}, covered, tcell.ColorWhite, tcell.ColorYellow),
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, l, "farm", groups))

	var r Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
	assert.Equal(t, "bombs", r.Layer)
	assert.Equal(t, "farm", r.Location)
	require.Len(t, r.Categories, 2)

	assert.Equal(t, "covered", r.Categories[0].Key)
	assert.Equal(t, "#00ff00", r.Categories[0].Color)
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}, {2, 1}}, r.Categories[0].Tiles)
	assert.Equal(t, "dry", r.Categories[1].Key)
	assert.Equal(t, [][2]int{{5, 5}}, r.Categories[1].Tiles)
}

func TestExportWithoutLayer(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Export(&buf, nil, "farm", nil))
}
