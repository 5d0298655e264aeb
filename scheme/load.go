package scheme

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/grid-overlay/asset"
	"github.com/lixenwraith/grid-overlay/logger"
)

// file is the YAML shape of one scheme
type file struct {
	Aliases map[string]string            `yaml:"aliases,omitempty"`
	Layers  map[string]map[string]string `yaml:"layers,omitempty"`
}

// Parse decodes one scheme document
// Unparseable colors are an error so broken scheme files surface at load time
func Parse(name string, data []byte) (*Scheme, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scheme %s: %w", name, err)
	}

	aliases := make(map[string]tcell.Color, len(f.Aliases))
	for k, v := range f.Aliases {
		c, ok := ParseColor(v)
		if !ok {
			return nil, fmt.Errorf("scheme %s: alias %q: invalid color %q", name, k, v)
		}
		aliases[k] = c
	}

	layers := make(map[string]map[string]tcell.Color, len(f.Layers))
	for id, keys := range f.Layers {
		m := make(map[string]tcell.Color, len(keys))
		for k, v := range keys {
			c, ok := ParseColor(v)
			if !ok {
				// Layer values may also reference an alias of this scheme
				if ac, aok := aliases[v]; aok {
					c, ok = ac, true
				} else if bc, bok := builtinAliases[v]; bok {
					c, ok = bc, true
				}
			}
			if !ok {
				return nil, fmt.Errorf("scheme %s: layer %s key %q: invalid color %q", name, id, k, v)
			}
			m[k] = c
		}
		layers[id] = m
	}

	return New(name, aliases, layers), nil
}

// Load reads every *.yaml file in dir of fsys; the file base name is the scheme name
func Load(fsys fs.FS, dir string) (map[string]*Scheme, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read schemes: %w", err)
	}

	out := make(map[string]*Scheme, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read scheme %s: %w", e.Name(), err)
		}
		name := strings.TrimSuffix(e.Name(), ".yaml")
		s, err := Parse(name, data)
		if err != nil {
			return nil, err
		}
		out[name] = s
	}
	return out, nil
}

// Selector picks the active scheme and remembers which missing names were already reported
type Selector struct {
	log  *zap.Logger
	once logger.Once
}

// NewSelector creates a Selector logging through l
func NewSelector(l *zap.Logger) *Selector {
	if l == nil {
		l = zap.NewNop()
	}
	return &Selector{log: l}
}

// Select returns requested, else "Default", else the empty scheme
// A missing requested scheme is reported once and persist receives the fallback name,
// so the next session asks for the fallback directly
func (s *Selector) Select(schemes map[string]*Scheme, requested string, persist func(name string)) *Scheme {
	if sc, ok := schemes[requested]; ok {
		return sc
	}

	fallback := Empty()
	if sc, ok := schemes[DefaultName]; ok {
		fallback = sc
	}

	s.once.Warn(s.log, "scheme:"+requested, "color scheme not found, using fallback",
		zap.String("requested", requested),
		zap.String("fallback", fallback.Name()),
	)

	if persist != nil && requested != DefaultName {
		persist(DefaultName)
	}
	return fallback
}

// Builtin parses the schemes shipped with the binary
func Builtin() (map[string]*Scheme, error) {
	out := make(map[string]*Scheme, len(asset.ColorSchemes))
	for name, data := range asset.ColorSchemes {
		s, err := Parse(name, []byte(data))
		if err != nil {
			return nil, err
		}
		out[name] = s
	}
	return out, nil
}
