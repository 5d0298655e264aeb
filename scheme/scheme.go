// Package scheme resolves overlay colors through a fallback chain:
// per-layer override, semantic alias, color literal, caller default.
package scheme

import (
	"github.com/gdamore/tcell/v2"
)

// Scheme names with special meaning
const (
	DefaultName = "Default"
	EmptyName   = ""
)

// Semantic aliases shared by every layer of a scheme
const (
	AliasYes       = "yes"
	AliasNo        = "no"
	AliasHighlight = "highlight"
)

// Built-in alias colors used when a scheme does not define its own
var builtinAliases = map[string]tcell.Color{
	AliasYes:       tcell.NewRGBColor(0, 200, 0),
	AliasNo:        tcell.NewRGBColor(200, 0, 0),
	AliasHighlight: tcell.NewRGBColor(255, 255, 0),
}

// Scheme maps (layer id, color key) to concrete colors
// Immutable after construction; safe to share between layers
type Scheme struct {
	name    string
	aliases map[string]tcell.Color
	layers  map[string]map[string]tcell.Color
}

// New creates a scheme from already-parsed tables; nil maps are allowed
func New(name string, aliases map[string]tcell.Color, layers map[string]map[string]tcell.Color) *Scheme {
	s := &Scheme{
		name:    name,
		aliases: make(map[string]tcell.Color, len(aliases)),
		layers:  make(map[string]map[string]tcell.Color, len(layers)),
	}
	for k, c := range aliases {
		s.aliases[k] = c
	}
	for id, keys := range layers {
		cp := make(map[string]tcell.Color, len(keys))
		for k, c := range keys {
			cp[k] = c
		}
		s.layers[id] = cp
	}
	return s
}

// Empty returns the in-memory scheme with no overrides
func Empty() *Scheme {
	return New(EmptyName, nil, nil)
}

// Name returns the scheme name, empty for the in-memory fallback
func (s *Scheme) Name() string {
	return s.name
}

// Resolve returns the color for key on layerID
func (s *Scheme) Resolve(layerID, key string, def tcell.Color) tcell.Color {
	if keys, ok := s.layers[layerID]; ok {
		if c, ok := keys[key]; ok {
			return c
		}
	}
	if c, ok := s.Alias(key); ok {
		return c
	}
	if c, ok := ParseColor(key); ok {
		return c
	}
	return def
}

// Alias returns the scheme-wide color for a semantic alias
func (s *Scheme) Alias(key string) (tcell.Color, bool) {
	if c, ok := s.aliases[key]; ok {
		return c, true
	}
	c, ok := builtinAliases[key]
	return c, ok
}

// Yes is the scheme's positive color
func (s *Scheme) Yes() tcell.Color {
	c, _ := s.Alias(AliasYes)
	return c
}

// No is the scheme's negative color
func (s *Scheme) No() tcell.Color {
	c, _ := s.Alias(AliasNo)
	return c
}

// Highlight is the scheme's emphasis color
func (s *Scheme) Highlight() tcell.Color {
	c, _ := s.Alias(AliasHighlight)
	return c
}
