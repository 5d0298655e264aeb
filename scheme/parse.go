package scheme

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a color literal
// Accepts #rgb and #rrggbb hex, tcell color names, and "R, G, B" or "R G B" byte triples
func ParseColor(s string) (tcell.Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return tcell.ColorDefault, false
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return tcell.ColorDefault, false
		}
		r, g, b := c.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
	}

	if c, ok := parseTriple(s); ok {
		return c, true
	}

	if c := tcell.GetColor(strings.ToLower(s)); c != tcell.ColorDefault {
		return c, true
	}
	return tcell.ColorDefault, false
}

func parseTriple(s string) (tcell.Color, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 3 {
		return tcell.ColorDefault, false
	}
	var ch [3]int32
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 || v > 255 {
			return tcell.ColorDefault, false
		}
		ch[i] = int32(v)
	}
	return tcell.NewRGBColor(ch[0], ch[1], ch[2]), true
}

// FormatColor renders c as #rrggbb, empty for the default color
func FormatColor(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return ""
	}
	r, g, b := c.RGB()
	if r < 0 {
		return ""
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}

// Tint blends c toward toward by t in Lab space, used for preview shading
func Tint(c, toward tcell.Color, t float64) tcell.Color {
	cr, cg, cb := c.RGB()
	tr, tg, tb := toward.RGB()
	if cr < 0 || tr < 0 {
		return c
	}
	from := colorful.Color{R: float64(cr) / 255, G: float64(cg) / 255, B: float64(cb) / 255}
	to := colorful.Color{R: float64(tr) / 255, G: float64(tg) / 255, B: float64(tb) / 255}
	r, g, b := from.BlendLab(to, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
