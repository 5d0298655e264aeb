package layer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/grid-overlay/config"
	"github.com/lixenwraith/grid-overlay/core"
	"github.com/lixenwraith/grid-overlay/overlay"
	"github.com/lixenwraith/grid-overlay/scheme"
	"github.com/lixenwraith/grid-overlay/world"
)

// AddCategoryFunc declares one legend category; color and border are scheme keys or
// literals, an empty border means none
type AddCategoryFunc func(id, name, color, border string)

// DescribeFunc declares a registrant's categories; invoked once per layer instance
type DescribeFunc func(add AddCategoryFunc)

// ClassifyFunc maps category ids to tiles for the current view
type ClassifyFunc func(loc world.Location, area core.Area, tiles []core.Point, cursor core.Point) map[string][]core.Point

// ExternalSpec is everything an external registrant supplies for one layer
type ExternalSpec struct {
	ID       string
	Name     func() string
	Describe DescribeFunc
	Classify ClassifyFunc
}

type externalCategory struct {
	entry  *overlay.LegendEntry
	border tcell.Color
}

// External adapts registrant callbacks to the layer capability set
// Registrant panics are recovered at the callback boundary
type External struct {
	Base
	spec   ExternalSpec
	colors *scheme.Scheme
	log    *zap.Logger

	described  bool
	describing bool
	categories []externalCategory
	byID       map[string]int
}

// NewExternal creates a layer over spec; log should be rate limited
func NewExternal(spec ExternalSpec, cfg config.LayerConfig, colors *scheme.Scheme, log *zap.Logger) (*External, error) {
	if spec.ID == "" {
		return nil, fmt.Errorf("external layer: empty id")
	}
	if spec.Describe == nil || spec.Classify == nil {
		return nil, fmt.Errorf("external layer %s: describe and classify are required", spec.ID)
	}
	base, err := NewBase(spec.ID, spec.ID, cfg)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &External{
		Base:   base,
		spec:   spec,
		colors: colors,
		log:    log.With(zap.String("layer", spec.ID)),
		byID:   make(map[string]int),
	}, nil
}

func (e *External) Name() string {
	if e.spec.Name == nil {
		return e.Base.Name()
	}
	name := e.Base.Name()
	func() {
		defer func() {
			if r := recover(); r != nil {
				e.log.Warn("name callback panicked", zap.Any("panic", r))
			}
		}()
		if n := e.spec.Name(); n != "" {
			name = n
		}
	}()
	return name
}

func (e *External) Legend() []*overlay.LegendEntry {
	e.describe()
	return e.Base.Legend()
}

func (e *External) describe() {
	if e.described {
		return
	}
	e.described = true
	e.describing = true

	defer func() {
		e.describing = false
		if r := recover(); r != nil {
			e.log.Warn("describe callback panicked", zap.Any("panic", r), zap.Int("categories", len(e.categories)))
		}
		entries := make([]*overlay.LegendEntry, len(e.categories))
		for i, c := range e.categories {
			entries[i] = c.entry
		}
		e.SetLegend(entries...)
	}()

	e.spec.Describe(e.addCategory)
}

// addCategory only accepts categories while describe is running
func (e *External) addCategory(id, name, color, border string) {
	if !e.describing {
		e.log.Warn("category added after describe ignored", zap.String("category", id))
		return
	}
	if _, dup := e.byID[id]; dup {
		e.log.Warn("duplicate category ignored", zap.String("category", id))
		return
	}
	c := externalCategory{
		entry:  overlay.NewLegendEntry(id, name, e.colors.Resolve(e.ID(), color, e.colors.Highlight())),
		border: tcell.ColorDefault,
	}
	if border != "" {
		c.border = e.colors.Resolve(e.ID(), border, tcell.ColorDefault)
	}
	e.byID[id] = len(e.categories)
	e.categories = append(e.categories, c)
}

func (e *External) classify(frame overlay.Frame, tiles []core.Point) (result map[string][]core.Point) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("classify callback panicked", zap.Any("panic", r))
			result = nil
		}
	}()
	return e.spec.Classify(frame.Location, frame.Visible.Area, tiles, frame.Cursor)
}

// Compute groups the registrant's classification by declared category
// Tiles outside the view and unknown category ids are dropped
func (e *External) Compute(frame overlay.Frame) []overlay.TileGroup {
	e.describe()

	result := e.classify(frame, frame.Visible.SortedTiles())
	if len(result) == 0 {
		return nil
	}

	buckets := make([]core.PointSet, len(e.categories))
	for id, pts := range result {
		idx, ok := e.byID[id]
		if !ok {
			e.log.Warn("unknown category dropped", zap.String("category", id), zap.Int("tiles", len(pts)))
			continue
		}
		if buckets[idx] == nil {
			buckets[idx] = core.NewPointSet()
		}
		for _, p := range pts {
			if frame.Visible.Contains(p) {
				buckets[idx].Add(p)
			}
		}
	}

	var groups []overlay.TileGroup
	for i, set := range buckets {
		if len(set) == 0 {
			continue
		}
		c := e.categories[i]
		groups = append(groups, overlay.NewTileGroup(set.Sorted(), c.entry, c.border, true))
	}
	return groups
}
