package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-overlay/core"
	"github.com/lixenwraith/grid-overlay/overlay"
	"github.com/lixenwraith/grid-overlay/world"
)

// Screen layout
const (
	cellWidth  = 2 // terminal columns per tile
	statusRows = 3
)

var (
	groundBg = tcell.NewRGBColor(34, 60, 30)
	tilledBg = tcell.NewRGBColor(92, 64, 40)
	waterBg  = tcell.NewRGBColor(30, 60, 140)
	cropFg   = tcell.NewRGBColor(120, 220, 90)
	objectFg = tcell.ColorWhite
	gridFg   = tcell.NewRGBColor(70, 90, 70)
	barBg    = tcell.NewRGBColor(20, 20, 20)
)

var objectGlyph = map[string]rune{
	world.ItemCherryBomb:       'c',
	world.ItemBomb:             'b',
	world.ItemMegaBomb:         'B',
	world.ItemSprinkler:        's',
	world.ItemQualitySprinkler: 'q',
	world.ItemIridiumSprinkler: 'i',
	world.ItemScarecrow:        'S',
	world.ItemDeluxeScarecrow:  'D',
	world.BuildingJunimoHut:    'H',
	itemNozzle:                 'n',
}

func (sb *sandbox) draw(frame overlay.Frame) {
	s := sb.screen
	s.Clear()

	view := frame.Visible.Area
	for _, p := range view.Points() {
		sb.drawTile(p, view)
	}

	if sess := sb.ctl.Session(); sess != nil {
		for _, g := range sess.TileGroups() {
			for _, t := range g.Tiles {
				sb.tint(t.Pos, view, t.DrawColor())
			}
		}
		for _, b := range sb.ctl.Borders() {
			sb.border(b, view)
		}
	}

	sb.drawCursor(view)
	sb.drawStatus()
	s.Show()
}

func (sb *sandbox) screenPos(p core.Point, view core.Area) (int, int, bool) {
	if !view.Contains(p) {
		return 0, 0, false
	}
	return (p.X - view.X) * cellWidth, p.Y - view.Y, true
}

func (sb *sandbox) drawTile(p core.Point, view core.Area) {
	x, y, ok := sb.screenPos(p, view)
	if !ok {
		return
	}

	bg := groundBg
	switch {
	case sb.farm.HasProperty(p, world.PropertyWater):
		bg = waterBg
	case sb.farm.HasProperty(p, world.PropertyTilled):
		bg = tilledBg
	}
	style := tcell.StyleDefault.Background(bg)

	glyph := ' '
	if sb.farm.HasProperty(p, world.PropertyCrop) {
		glyph = '"'
		style = style.Foreground(cropFg)
	} else if sb.ctl.ShowGrid() {
		glyph = '·'
		style = style.Foreground(gridFg)
	}
	if obj, ok := sb.farm.ObjectAt(p); ok {
		glyph = objectGlyph[obj.Kind]
		if glyph == 0 {
			glyph = '?'
		}
		style = style.Foreground(objectFg).Bold(true)
	}

	sb.screen.SetContent(x, y, glyph, nil, style)
	sb.screen.SetContent(x+1, y, ' ', nil, style)
}

// tint replaces the background of both tile columns, keeping glyphs
func (sb *sandbox) tint(p core.Point, view core.Area, c tcell.Color) {
	x, y, ok := sb.screenPos(p, view)
	if !ok || c == tcell.ColorDefault {
		return
	}
	for dx := 0; dx < cellWidth; dx++ {
		r, comb, style, _ := sb.screen.GetContent(x+dx, y)
		sb.screen.SetContent(x+dx, y, r, comb, style.Background(c))
	}
}

// border draws side glyphs for left and right edges, top and bottom share the columns
func (sb *sandbox) border(b overlay.BorderTile, view core.Area) {
	x, y, ok := sb.screenPos(b.Pos, view)
	if !ok {
		return
	}
	left, right := edgeGlyph(b.Edges, overlay.EdgeLeft, '▏'), edgeGlyph(b.Edges, overlay.EdgeRight, '▕')
	for dx, g := range [2]rune{left, right} {
		if g == 0 {
			continue
		}
		_, _, style, _ := sb.screen.GetContent(x+dx, y)
		sb.screen.SetContent(x+dx, y, g, nil, style.Foreground(b.Color))
	}
}

func edgeGlyph(edges, side overlay.Edge, sideGlyph rune) rune {
	switch {
	case edges&side != 0:
		return sideGlyph
	case edges&overlay.EdgeTop != 0:
		return '▔'
	case edges&overlay.EdgeBottom != 0:
		return '▁'
	}
	return 0
}

func (sb *sandbox) drawCursor(view core.Area) {
	x, y, ok := sb.screenPos(sb.cursor, view)
	if !ok {
		return
	}
	for dx := 0; dx < cellWidth; dx++ {
		r, comb, style, _ := sb.screen.GetContent(x+dx, y)
		sb.screen.SetContent(x+dx, y, r, comb, style.Reverse(true))
	}
}

func (sb *sandbox) drawStatus() {
	w, h := sb.screen.Size()
	top := h - statusRows
	base := tcell.StyleDefault.Background(barBg).Foreground(tcell.ColorWhite)
	for y := top; y < h; y++ {
		for x := 0; x < w; x++ {
			sb.screen.SetContent(x, y, ' ', nil, base)
		}
	}

	held := sb.player.HeldItem
	if sb.player.Constructing() {
		held = "placing " + sb.player.Construction
	}
	if held == "" {
		held = "-"
	}

	x := sb.text(0, top, base.Bold(true), "Overlay: ")
	sess := sb.ctl.Session()
	if sess == nil || sess.Current() == nil {
		x = sb.text(x, top, base, "off (F2)")
	} else {
		cur := sess.Current()
		x = sb.text(x, top, base, cur.Name()+"  ")
		for _, e := range cur.Legend() {
			x = sb.text(x, top, base.Background(e.Color), "  ")
			x = sb.text(x, top, base, " "+e.Name+"  ")
		}
	}
	sb.text(x+2, top, base.Foreground(tcell.ColorGray), "held: "+held)

	var stats []string
	for _, kv := range sb.stats.Snapshot() {
		stats = append(stats, kv[0]+"="+kv[1])
	}
	sb.text(0, top+1, base.Foreground(tcell.ColorGray), strings.Join(stats, " "))

	help := fmt.Sprintf("arrows cursor  wasd pan  0-9 hold  h hut  space place  x remove  r reload  t title  q quit  %s",
		sb.notice)
	sb.text(0, top+2, base.Foreground(tcell.ColorDarkGray), help)
}

func (sb *sandbox) text(x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		sb.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
