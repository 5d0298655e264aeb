// Package config holds the overlay's configuration surface and its YAML codec.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/grid-overlay/parameter"
)

// ErrUnknownLayer is returned when a layer id has no configuration entry
var ErrUnknownLayer = errors.New("unknown layer")

// LayerConfig is the per-layer configuration surface
type LayerConfig struct {
	Enabled            bool            `yaml:"enabled"`
	UpdatesPerSecond   decimal.Decimal `yaml:"updates_per_second"`
	UpdateOnViewChange bool            `yaml:"update_on_view_change"`
	Shortcut           string          `yaml:"shortcut,omitempty"`
}

// TickRate converts UpdatesPerSecond into ticks between recomputes
// Non-positive rates fall back to the default rate
func (c LayerConfig) TickRate() int {
	return TicksFor(c.UpdatesPerSecond, parameter.DefaultUpdatesPerSecond)
}

// Controls binds the overlay's global actions
type Controls struct {
	Toggle   string `yaml:"toggle"`
	Next     string `yaml:"next"`
	Previous string `yaml:"previous"`
	Export   string `yaml:"export"`
}

// Config is the complete configuration surface
type Config struct {
	ColorScheme               string                 `yaml:"color_scheme"`
	ShowGrid                  bool                   `yaml:"show_grid"`
	CombineOverlappingBorders bool                   `yaml:"combine_overlapping_borders"`
	AutoUpdatesPerSecond      decimal.Decimal        `yaml:"auto_updates_per_second"`
	Controls                  Controls               `yaml:"controls"`
	Layers                    map[string]LayerConfig `yaml:"layers"`
}

// TicksFor converts an updates-per-second rate into a tick countdown, rounded, minimum 1
func TicksFor(ups decimal.Decimal, fallback int64) int {
	if !ups.IsPositive() {
		ups = decimal.NewFromInt(fallback)
	}
	ticks := decimal.NewFromInt(parameter.TicksPerSecond).Div(ups).Round(0).IntPart()
	if ticks < parameter.MinTickRate {
		return parameter.MinTickRate
	}
	return int(ticks)
}

// AutoTickRate is the reselection countdown of the auto layer
func (c *Config) AutoTickRate() int {
	return TicksFor(c.AutoUpdatesPerSecond, parameter.DefaultAutoUpdatesPerSecond)
}

// Layer returns the configuration for id
func (c *Config) Layer(id string) (LayerConfig, error) {
	lc, ok := c.Layers[id]
	if !ok {
		return LayerConfig{}, fmt.Errorf("%w: %s", ErrUnknownLayer, id)
	}
	return lc, nil
}

// LayerOrDefault returns the configuration for id, or an enabled entry at default rates
// Externally registered layers rarely have a config entry on first run
func (c *Config) LayerOrDefault(id string) LayerConfig {
	if lc, ok := c.Layers[id]; ok {
		return lc
	}
	return LayerConfig{
		Enabled:            true,
		UpdatesPerSecond:   decimal.NewFromInt(parameter.DefaultUpdatesPerSecond),
		UpdateOnViewChange: true,
	}
}

// Clone returns a deep copy
func (c *Config) Clone() *Config {
	cp := *c
	cp.Layers = make(map[string]LayerConfig, len(c.Layers))
	for k, v := range c.Layers {
		cp.Layers[k] = v
	}
	return &cp
}

// Parse decodes YAML over a copy of base so omitted keys keep their defaults
func Parse(data []byte, base *Config) (*Config, error) {
	cfg := base.Clone()

	var raw struct {
		ColorScheme               *string                   `yaml:"color_scheme"`
		ShowGrid                  *bool                     `yaml:"show_grid"`
		CombineOverlappingBorders *bool                     `yaml:"combine_overlapping_borders"`
		AutoUpdatesPerSecond      *decimal.Decimal          `yaml:"auto_updates_per_second"`
		Controls                  *Controls                 `yaml:"controls"`
		Layers                    map[string]layerOverrides `yaml:"layers"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}

	if raw.ColorScheme != nil {
		cfg.ColorScheme = *raw.ColorScheme
	}
	if raw.ShowGrid != nil {
		cfg.ShowGrid = *raw.ShowGrid
	}
	if raw.CombineOverlappingBorders != nil {
		cfg.CombineOverlappingBorders = *raw.CombineOverlappingBorders
	}
	if raw.AutoUpdatesPerSecond != nil {
		cfg.AutoUpdatesPerSecond = *raw.AutoUpdatesPerSecond
	}
	if raw.Controls != nil {
		mergeControls(&cfg.Controls, *raw.Controls)
	}
	for id, o := range raw.Layers {
		lc := cfg.LayerOrDefault(id)
		o.apply(&lc)
		cfg.Layers[id] = lc
	}
	return cfg, nil
}

type layerOverrides struct {
	Enabled            *bool            `yaml:"enabled"`
	UpdatesPerSecond   *decimal.Decimal `yaml:"updates_per_second"`
	UpdateOnViewChange *bool            `yaml:"update_on_view_change"`
	Shortcut           *string          `yaml:"shortcut"`
}

func (o layerOverrides) apply(lc *LayerConfig) {
	if o.Enabled != nil {
		lc.Enabled = *o.Enabled
	}
	if o.UpdatesPerSecond != nil {
		lc.UpdatesPerSecond = *o.UpdatesPerSecond
	}
	if o.UpdateOnViewChange != nil {
		lc.UpdateOnViewChange = *o.UpdateOnViewChange
	}
	if o.Shortcut != nil {
		lc.Shortcut = *o.Shortcut
	}
}

func mergeControls(dst *Controls, src Controls) {
	if src.Toggle != "" {
		dst.Toggle = src.Toggle
	}
	if src.Next != "" {
		dst.Next = src.Next
	}
	if src.Previous != "" {
		dst.Previous = src.Previous
	}
	if src.Export != "" {
		dst.Export = src.Export
	}
}

// Marshal encodes the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// LoadFile reads path over base; a missing file yields base unchanged
func LoadFile(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return base.Clone(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config read: %w", err)
	}
	return Parse(data, base)
}

// SaveFile writes the configuration to path
func (c *Config) SaveFile(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("config encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config write: %w", err)
	}
	return nil
}
