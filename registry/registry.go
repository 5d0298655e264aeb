package registry

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lixenwraith/grid-overlay/config"
	"github.com/lixenwraith/grid-overlay/core"
	"github.com/lixenwraith/grid-overlay/input"
	"github.com/lixenwraith/grid-overlay/layer"
	"github.com/lixenwraith/grid-overlay/logger"
	"github.com/lixenwraith/grid-overlay/overlay"
	"github.com/lixenwraith/grid-overlay/parameter"
	"github.com/lixenwraith/grid-overlay/scheme"
	"github.com/lixenwraith/grid-overlay/status"
	"github.com/lixenwraith/grid-overlay/vmath"
)

// ExternalLayer is the registration record for a layer supplied by another component
// Optional fields apply only while the configuration has no entry for ID
type ExternalLayer struct {
	ID                 string
	Name               func() string
	Describe           layer.DescribeFunc
	Classify           layer.ClassifyFunc
	UpdatesPerSecond   *decimal.Decimal
	UpdateOnViewChange *bool
	Shortcut           string
}

// Options carries the registry's collaborators; nil fields get defaults
type Options struct {
	Logger   *zap.Logger
	Metrics  *status.Registry
	Catalog  *Catalog
	Patterns *vmath.PatternSet
}

// Registry owns layer instances and rebuilds them lazily after a reset
// Layer instances are identical across calls until the next reset
type Registry struct {
	mu        sync.Mutex
	cfg       *config.Config
	colors    *scheme.Scheme
	catalog   *Catalog
	patterns  *vmath.PatternSet
	circles   *vmath.CircleCache
	externals []ExternalLayer

	layers []overlay.Layer
	built  bool

	log         *zap.Logger
	externalLog *zap.Logger

	statBuilds *atomic.Int64
	statLayers *atomic.Int64
}

// New creates a registry over cfg and colors
func New(cfg *config.Config, colors *scheme.Scheme, opts Options) *Registry {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	patterns := opts.Patterns
	if patterns == nil {
		patterns = vmath.NewPatternSet()
		layer.DefaultSprinklerPatterns(patterns)
	}
	if colors == nil {
		colors = scheme.Empty()
	}
	circles, err := vmath.NewCircleCache()
	if err != nil {
		log.Warn("circle cache unavailable, masks computed per call", zap.Error(err))
	}

	return &Registry{
		cfg:      cfg,
		colors:   colors,
		catalog:  catalog,
		patterns: patterns,
		circles:  circles,
		log:      log,
		externalLog: logger.Sampled(log, parameter.ExternalWarnInterval,
			parameter.ExternalWarnFirst, parameter.ExternalWarnThereafter),
		statBuilds: metrics.Ints.Get(status.KeyRegistryBuilds),
		statLayers: metrics.Ints.Get(status.KeyRegistryLayers),
	}
}

// Layers returns the enabled layers in display order, building them if needed
// Built-in catalog layers come first, then external layers in registration order
func (r *Registry) Layers() []overlay.Layer {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.built {
		r.build()
	}
	return r.layers
}

// At returns the layer at index i of Layers
func (r *Registry) At(i int) (overlay.Layer, bool) {
	layers := r.Layers()
	if i < 0 || i >= len(layers) {
		return nil, false
	}
	return layers[i], true
}

// IndexOf returns the position of id in Layers, -1 if absent
func (r *Registry) IndexOf(id string) int {
	for i, l := range r.Layers() {
		if l.ID() == id {
			return i
		}
	}
	return -1
}

// TryGetByShortcut returns the first layer whose shortcut was pressed
func (r *Registry) TryGetByShortcut(src input.Source) (overlay.Layer, bool) {
	for _, l := range r.Layers() {
		if sc := l.Shortcut(); sc.Bound() && src.Pressed(sc) {
			return l, true
		}
	}
	return nil, false
}

// Reset drops every layer instance; the next access rebuilds
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
}

func (r *Registry) reset() {
	r.layers = nil
	r.built = false
}

// Close releases the circle mask cache; layers keep working uncached
func (r *Registry) Close() {
	r.circles.Close()
}

// SetScheme replaces the color scheme and resets
func (r *Registry) SetScheme(colors *scheme.Scheme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if colors == nil {
		colors = scheme.Empty()
	}
	r.colors = colors
	r.reset()
}

// SetConfig replaces the configuration and resets
func (r *Registry) SetConfig(cfg *config.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cfg
	r.reset()
}

// Scheme returns the active color scheme
func (r *Registry) Scheme() *scheme.Scheme {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.colors
}

// RegisterExternal adds a layer supplied by another component
// The layer appears on the next access to Layers
func (r *Registry) RegisterExternal(ext ExternalLayer) error {
	if ext.ID == "" {
		return fmt.Errorf("register external layer: empty id")
	}
	if ext.Describe == nil || ext.Classify == nil {
		return fmt.Errorf("register external layer %s: describe and classify are required", ext.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.catalog.Get(ext.ID); ok {
		return fmt.Errorf("register external layer %s: %w", ext.ID, ErrDuplicateLayer)
	}
	for _, e := range r.externals {
		if e.ID == ext.ID {
			return fmt.Errorf("register external layer %s: %w", ext.ID, ErrDuplicateLayer)
		}
	}
	r.externals = append(r.externals, ext)
	r.reset()
	r.log.Debug("external layer registered", zap.String("layer", ext.ID))
	return nil
}

// RegisterPattern adds a relative coverage pattern for a sprinkler-like item
// Patterns are read live by the sprinkler layer, so no reset is needed
func (r *Registry) RegisterPattern(key string, pattern []core.Point) {
	r.patterns.Register(key, pattern)
}

// build runs under mu
func (r *Registry) build() {
	var errs error
	var layers []overlay.Layer

	for _, def := range r.catalog.Definitions() {
		lc := r.builtinConfig(def)
		if !lc.Enabled {
			continue
		}
		l, err := def.Build(r.context(def.ID, lc, &errs))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("build %s: %w", def.ID, err))
			continue
		}
		layers = append(layers, l)
	}

	for _, ext := range r.externals {
		lc := r.externalConfig(ext)
		if !lc.Enabled {
			continue
		}
		l, err := layer.NewExternal(layer.ExternalSpec{
			ID:       ext.ID,
			Name:     ext.Name,
			Describe: ext.Describe,
			Classify: ext.Classify,
		}, lc, r.colors, r.externalLog)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("build %s: %w", ext.ID, err))
			continue
		}
		layers = append(layers, l)
	}

	if errs != nil {
		r.log.Warn("layers skipped", zap.Errors("errors", multierr.Errors(errs)))
	}

	r.layers = layers
	r.built = true
	r.statBuilds.Add(1)
	r.statLayers.Store(int64(len(layers)))
	r.log.Debug("layers built", zap.Int("count", len(layers)), zap.String("scheme", r.colors.Name()))
}

func (r *Registry) context(id string, lc config.LayerConfig, errs *error) BuildContext {
	return BuildContext{
		Config:   lc,
		Global:   r.cfg,
		Colors:   r.colors,
		Patterns: r.patterns,
		Circles:  r.circles,
		Logger:   r.log.With(zap.String("layer", id)),
		SubLayers: func() []layer.SubLayer {
			return r.subLayers(id, errs)
		},
	}
}

// subLayers builds fresh instances of every other catalog layer that can be auto selected
// Disabled layers are included; visibility in the cycle does not affect auto selection
// Failures of disabled layers are appended to errs, enabled ones are reported by build itself
func (r *Registry) subLayers(except string, errs *error) []layer.SubLayer {
	var out []layer.SubLayer
	for _, def := range r.catalog.Definitions() {
		if def.ID == except {
			continue
		}
		lc := r.builtinConfig(def)
		l, err := def.Build(BuildContext{
			Config:   lc,
			Global:   r.cfg,
			Colors:   r.colors,
			Patterns: r.patterns,
			Circles:  r.circles,
			Logger:   r.log.With(zap.String("layer", def.ID)),
			SubLayers: func() []layer.SubLayer {
				return nil
			},
		})
		if err != nil {
			if !lc.Enabled {
				*errs = multierr.Append(*errs, fmt.Errorf("build %s for auto: %w", def.ID, err))
			}
			continue
		}
		if s, ok := l.(layer.SubLayer); ok {
			out = append(out, s)
		}
	}
	return out
}

func (r *Registry) builtinConfig(def Definition) config.LayerConfig {
	if lc, err := r.cfg.Layer(def.ID); err == nil {
		return lc
	}
	lc := r.cfg.LayerOrDefault(def.ID)
	lc.Shortcut = def.DefaultShortcut
	return lc
}

func (r *Registry) externalConfig(ext ExternalLayer) config.LayerConfig {
	if lc, err := r.cfg.Layer(ext.ID); err == nil {
		return lc
	}
	lc := r.cfg.LayerOrDefault(ext.ID)
	if ext.UpdatesPerSecond != nil {
		lc.UpdatesPerSecond = *ext.UpdatesPerSecond
	}
	if ext.UpdateOnViewChange != nil {
		lc.UpdateOnViewChange = *ext.UpdateOnViewChange
	}
	lc.Shortcut = ext.Shortcut
	return lc
}
