// Package registry builds the ordered set of overlay layers from the built-in
// catalog and from layers registered by external callers.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/grid-overlay/config"
	"github.com/lixenwraith/grid-overlay/layer"
	"github.com/lixenwraith/grid-overlay/overlay"
	"github.com/lixenwraith/grid-overlay/scheme"
	"github.com/lixenwraith/grid-overlay/vmath"
)

// ErrDuplicateLayer is returned when a layer id is registered twice
var ErrDuplicateLayer = errors.New("duplicate layer id")

// BuildContext carries everything a factory may need
type BuildContext struct {
	Config   config.LayerConfig
	Global   *config.Config
	Colors   *scheme.Scheme
	Patterns *vmath.PatternSet
	Circles  *vmath.CircleCache
	Logger   *zap.Logger

	// SubLayers builds every other catalog layer usable by the auto layer
	SubLayers func() []layer.SubLayer
}

// Factory creates a layer instance
type Factory func(ctx BuildContext) (overlay.Layer, error)

// Definition is one built-in catalog entry
type Definition struct {
	ID              string
	DefaultShortcut string
	Build           Factory
}

// Catalog is the ordered set of built-in layer definitions
type Catalog struct {
	mu   sync.RWMutex
	defs []Definition
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Register appends a definition; ids must be unique
func (c *Catalog) Register(def Definition) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.defs {
		if d.ID == def.ID {
			return fmt.Errorf("catalog %s: %w", def.ID, ErrDuplicateLayer)
		}
	}
	c.defs = append(c.defs, def)
	return nil
}

// Get retrieves a definition by id
func (c *Catalog) Get(id string) (Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, d := range c.defs {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// IDs returns definition ids in registration order
func (c *Catalog) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, len(c.defs))
	for i, d := range c.defs {
		ids[i] = d.ID
	}
	return ids
}

// Definitions returns a copy of the definitions in registration order
func (c *Catalog) Definitions() []Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

// DefaultCatalog returns the built-in layers in display order
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	for _, def := range []Definition{
		{ID: layer.IDAuto, Build: buildAuto},
		{ID: layer.IDBombs, DefaultShortcut: "F5", Build: buildBombs},
		{ID: layer.IDSprinklers, DefaultShortcut: "F6", Build: buildSprinklers},
		{ID: layer.IDScarecrows, DefaultShortcut: "F7", Build: buildScarecrows},
		{ID: layer.IDJunimoHuts, DefaultShortcut: "F8", Build: buildJunimoHuts},
	} {
		if err := c.Register(def); err != nil {
			panic(err)
		}
	}
	return c
}

func buildAuto(ctx BuildContext) (overlay.Layer, error) {
	a, err := layer.NewAuto(ctx.Config, ctx.Global.AutoTickRate(), ctx.SubLayers())
	if err != nil {
		return nil, err
	}
	return a, nil
}

func buildBombs(ctx BuildContext) (overlay.Layer, error) {
	b, err := layer.NewBombs(ctx.Config, ctx.Colors, ctx.Circles)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func buildSprinklers(ctx BuildContext) (overlay.Layer, error) {
	s, err := layer.NewSprinklers(ctx.Config, ctx.Colors, ctx.Patterns)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func buildScarecrows(ctx BuildContext) (overlay.Layer, error) {
	s, err := layer.NewScarecrows(ctx.Config, ctx.Colors, ctx.Circles)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func buildJunimoHuts(ctx BuildContext) (overlay.Layer, error) {
	j, err := layer.NewJunimoHuts(ctx.Config, ctx.Colors)
	if err != nil {
		return nil, err
	}
	return j, nil
}
