// Package engine is the host-facing facade of the overlay: it owns the active
// scheme, the layer registry and the current session, and maps controls onto them.
package engine

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lixenwraith/grid-overlay/config"
	"github.com/lixenwraith/grid-overlay/input"
	"github.com/lixenwraith/grid-overlay/overlay"
	"github.com/lixenwraith/grid-overlay/registry"
	"github.com/lixenwraith/grid-overlay/scheme"
	"github.com/lixenwraith/grid-overlay/status"
	"github.com/lixenwraith/grid-overlay/vmath"
)

// ErrInactive is returned by operations that need an active overlay
var ErrInactive = errors.New("overlay inactive")

// Options carries the controller's collaborators; nil fields get defaults
type Options struct {
	Logger   *zap.Logger
	Metrics  *status.Registry
	Catalog  *registry.Catalog
	Patterns *vmath.PatternSet

	// Persist stores the configuration after the controller changes it
	Persist func(*config.Config) error
	// ExportSink opens the destination for an export triggered by the export control
	ExportSink func(layerID string) (io.WriteCloser, error)
}

type controls struct {
	toggle   input.Binding
	next     input.Binding
	previous input.Binding
	export   input.Binding
}

// Controller drives one overlay from the host's tick
// Not safe for concurrent use; call from the tick goroutine
type Controller struct {
	cfg      *config.Config
	schemes  map[string]*scheme.Scheme
	selector *scheme.Selector
	registry *registry.Registry
	session  *overlay.Session
	controls controls

	lastLayerID  string
	lastLocation string

	log     *zap.Logger
	metrics *status.Registry
	persist func(*config.Config) error
	sink    func(string) (io.WriteCloser, error)
}

// NewController creates an inactive controller
func NewController(cfg *config.Config, schemes map[string]*scheme.Scheme, opts Options) (*Controller, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = status.NewRegistry()
	}

	c := &Controller{
		cfg:      cfg,
		schemes:  schemes,
		selector: scheme.NewSelector(log),
		log:      log,
		metrics:  metrics,
		persist:  opts.Persist,
		sink:     opts.ExportSink,
	}
	if err := c.bindControls(cfg.Controls); err != nil {
		return nil, err
	}

	c.registry = registry.New(cfg, c.selectScheme(), registry.Options{
		Logger:   log.Named("registry"),
		Metrics:  metrics,
		Catalog:  opts.Catalog,
		Patterns: opts.Patterns,
	})
	return c, nil
}

func (c *Controller) bindControls(ctl config.Controls) error {
	var errs error
	parse := func(name, s string) input.Binding {
		b, err := input.ParseBinding(s)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("control %s: %w", name, err))
		}
		return b
	}
	next := controls{
		toggle:   parse("toggle", ctl.Toggle),
		next:     parse("next", ctl.Next),
		previous: parse("previous", ctl.Previous),
		export:   parse("export", ctl.Export),
	}
	if errs != nil {
		return errs
	}
	c.controls = next
	return nil
}

func (c *Controller) selectScheme() *scheme.Scheme {
	return c.selector.Select(c.schemes, c.cfg.ColorScheme, func(name string) {
		c.cfg.ColorScheme = name
		if c.persist == nil {
			return
		}
		if err := c.persist(c.cfg); err != nil {
			c.log.Warn("persist config failed", zap.Error(err))
		}
	})
}

// Registry exposes the layer registry
// Registering through it directly leaves an open session on the old instances
// until the next activation; use RegisterExternal to refresh the session too
func (c *Controller) Registry() *registry.Registry {
	return c.registry
}

// Config returns the active configuration
func (c *Controller) Config() *config.Config {
	return c.cfg
}

// Active reports whether an overlay session is open
func (c *Controller) Active() bool {
	return c.session != nil
}

// Session returns the open session, nil when inactive
func (c *Controller) Session() *overlay.Session {
	return c.session
}

// Activate opens a session on the last used layer
// The first Update after activation recomputes immediately
func (c *Controller) Activate() {
	if c.session != nil {
		return
	}
	c.session = overlay.NewSession(c.registry.Layers(), c.lastLayerID, overlay.SessionOptions{
		Logger:  c.log.Named("session"),
		Metrics: c.metrics,
	})
}

// Deactivate closes the session, remembering its layer for the next activation
func (c *Controller) Deactivate() {
	if c.session == nil {
		return
	}
	if id := c.session.LastLayerID(); id != "" {
		c.lastLayerID = id
	}
	c.session.Close()
	c.session = nil
}

// RegisterExternal adds a layer from another component
// An open session is reopened on its current layer so the new layer is immediately cyclable
func (c *Controller) RegisterExternal(ext registry.ExternalLayer) error {
	if err := c.registry.RegisterExternal(ext); err != nil {
		return err
	}
	if c.Active() {
		c.Deactivate()
		c.Activate()
	}
	return nil
}

// Close ends the session and releases the registry's caches
func (c *Controller) Close() {
	c.Deactivate()
	c.registry.Close()
}

// ReturnToTitle ends the session and drops every layer instance
func (c *Controller) ReturnToTitle() {
	c.Deactivate()
	c.registry.Reset()
}

// ReloadConfig applies a new configuration, reopening the session if one was open
func (c *Controller) ReloadConfig(cfg *config.Config) error {
	if err := c.bindControls(cfg.Controls); err != nil {
		return fmt.Errorf("reload config: %w", err)
	}

	wasActive := c.Active()
	c.Deactivate()

	c.cfg = cfg
	c.registry.SetConfig(cfg)
	c.registry.SetScheme(c.selectScheme())

	if wasActive {
		c.Activate()
	}
	c.log.Debug("config reloaded", zap.String("scheme", c.registry.Scheme().Name()))
	return nil
}

// Tick applies this tick's controls and advances the session
func (c *Controller) Tick(frame overlay.Frame, in input.Source) {
	c.lastLocation = frame.LocationName()

	if in.Pressed(c.controls.toggle) {
		if c.Active() {
			c.Deactivate()
		} else {
			c.Activate()
		}
	}

	if l, ok := c.registry.TryGetByShortcut(in); ok {
		switch {
		case !c.Active():
			c.lastLayerID = l.ID()
			c.Activate()
		case c.session.LastLayerID() == l.ID():
			c.Deactivate()
		default:
			c.session.Select(l.ID(), frame)
		}
	}

	if !c.Active() {
		return
	}

	if in.Pressed(c.controls.next) {
		c.session.CycleNext(frame)
	}
	if in.Pressed(c.controls.previous) {
		c.session.CyclePrevious(frame)
	}

	c.session.Update(frame)

	if in.Pressed(c.controls.export) {
		if err := c.exportToSink(); err != nil {
			c.log.Warn("export failed", zap.Error(err))
		}
	}
}

// ShowGrid reports whether the renderer should draw grid lines
func (c *Controller) ShowGrid() bool {
	if c.cfg.ShowGrid {
		return true
	}
	if c.session == nil {
		return false
	}
	cur := c.session.Current()
	return cur != nil && cur.AlwaysShowGrid()
}

// Borders returns outer border edges of the current groups
func (c *Controller) Borders() []overlay.BorderTile {
	if c.session == nil {
		return nil
	}
	return overlay.Outline(c.session.TileGroups(), c.cfg.CombineOverlappingBorders)
}

// Export writes the current layer's exportable groups as JSON
func (c *Controller) Export(w io.Writer) error {
	if c.session == nil {
		return ErrInactive
	}
	return overlay.Export(w, c.session.Current(), c.lastLocation, c.session.TileGroups())
}

func (c *Controller) exportToSink() (err error) {
	if c.sink == nil {
		return errors.New("no export destination")
	}
	cur := c.session.Current()
	if cur == nil {
		return ErrInactive
	}
	w, err := c.sink(cur.ID())
	if err != nil {
		return fmt.Errorf("open export: %w", err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export: %w", cerr)
		}
	}()
	return c.Export(w)
}
