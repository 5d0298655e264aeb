package config

import (
	"fmt"

	"github.com/lixenwraith/grid-overlay/asset"
)

// Default returns the built-in configuration
// Panics if the embedded defaults are malformed, which is a build defect
func Default() *Config {
	cfg, err := Parse([]byte(asset.DefaultOverlayConfig), &Config{Layers: map[string]LayerConfig{}})
	if err != nil {
		panic(fmt.Sprintf("embedded overlay config: %v", err))
	}
	return cfg
}
