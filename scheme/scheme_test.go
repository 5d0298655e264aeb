package scheme

import (
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var (
	red   = tcell.NewRGBColor(255, 0, 0)
	green = tcell.NewRGBColor(0, 255, 0)
	blue  = tcell.NewRGBColor(0, 0, 255)
	gray  = tcell.NewRGBColor(128, 128, 128)
)

func testScheme() *Scheme {
	return New("Test",
		map[string]tcell.Color{AliasYes: green, AliasNo: red},
		map[string]map[string]tcell.Color{
			"sprinklers": {"covered": blue},
		},
	)
}

func TestResolveOrder(t *testing.T) {
	s := testScheme()

	tests := []struct {
		name  string
		layer string
		key   string
		def   tcell.Color
		want  tcell.Color
	}{
		{"Layer override", "sprinklers", "covered", gray, blue},
		{"Override scoped to layer", "bombs", "covered", gray, gray},
		{"Alias without override", "sprinklers", AliasYes, gray, green},
		{"Alias on unknown layer", "anything", AliasNo, gray, red},
		{"Builtin alias fallback", "anything", AliasHighlight, gray, builtinAliases[AliasHighlight]},
		{"Hex literal", "external", "#0000ff", gray, blue},
		{"Short hex literal", "external", "#f00", gray, red},
		{"Triple literal", "external", "0, 255, 0", gray, green},
		{"Unknown key uses default", "sprinklers", "dry", gray, gray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Resolve(tt.layer, tt.key, tt.def))
		})
	}
}

func TestEmptySchemeUsesLiteralsAndDefaults(t *testing.T) {
	s := Empty()
	assert.Equal(t, EmptyName, s.Name())
	assert.Equal(t, gray, s.Resolve("sprinklers", "covered", gray))
	assert.Equal(t, blue, s.Resolve("sprinklers", "#0000ff", gray))
	assert.Equal(t, builtinAliases[AliasYes], s.Yes())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want tcell.Color
		ok   bool
	}{
		{"#ff0000", red, true},
		{" #00FF00 ", green, true},
		{"0 0 255", blue, true},
		{"red", tcell.GetColor("red"), true},
		{"#zzzzzz", tcell.ColorDefault, false},
		{"300, 0, 0", tcell.ColorDefault, false},
		{"1, 2", tcell.ColorDefault, false},
		{"not-a-color", tcell.ColorDefault, false},
		{"", tcell.ColorDefault, false},
	}

	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFormatColorRoundTrip(t *testing.T) {
	assert.Equal(t, "#ff0000", FormatColor(red))
	assert.Equal(t, "", FormatColor(tcell.ColorDefault))
}

func TestTintMovesTowardTarget(t *testing.T) {
	assert.Equal(t, red, Tint(red, blue, 0))
	assert.Equal(t, blue, Tint(red, blue, 1))
	assert.Equal(t, red, Tint(red, tcell.ColorDefault, 0.5))
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"colors/Default.yaml": {Data: []byte(`
aliases:
  yes: "#00ff00"
  no: "#ff0000"
layers:
  sprinklers:
    covered: "#0000ff"
    dry: no
`)},
		"colors/readme.txt": {Data: []byte("ignored")},
	}

	schemes, err := Load(fsys, "colors")
	require.NoError(t, err)
	require.Contains(t, schemes, "Default")
	require.Len(t, schemes, 1)

	s := schemes["Default"]
	assert.Equal(t, blue, s.Resolve("sprinklers", "covered", gray))
	assert.Equal(t, red, s.Resolve("sprinklers", "dry", gray))
}

func TestParseRejectsInvalidColor(t *testing.T) {
	_, err := Parse("Broken", []byte("layers:\n  bombs:\n    dig: \"#nothex\"\n"))
	assert.Error(t, err)
}

func TestSelectFallbackChain(t *testing.T) {
	def := New(DefaultName, nil, nil)
	dark := New("Dark", nil, nil)

	t.Run("Requested present", func(t *testing.T) {
		sel := NewSelector(nil)
		persisted := ""
		got := sel.Select(map[string]*Scheme{"Dark": dark, DefaultName: def}, "Dark", func(n string) { persisted = n })
		assert.Same(t, dark, got)
		assert.Empty(t, persisted)
	})

	t.Run("Falls back to Default and persists", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		sel := NewSelector(zap.New(core))
		persisted := ""

		got := sel.Select(map[string]*Scheme{DefaultName: def}, "Missing", func(n string) { persisted = n })
		assert.Same(t, def, got)
		assert.Equal(t, DefaultName, persisted)

		sel.Select(map[string]*Scheme{DefaultName: def}, "Missing", nil)
		assert.Equal(t, 1, logs.Len(), "warning must not repeat")
	})

	t.Run("Falls back to empty scheme", func(t *testing.T) {
		sel := NewSelector(nil)
		got := sel.Select(nil, "Missing", nil)
		assert.Equal(t, EmptyName, got.Name())
	})
}

func TestBuiltin(t *testing.T) {
	schemes, err := Builtin()
	require.NoError(t, err)
	require.Contains(t, schemes, DefaultName)
	assert.Equal(t, DefaultName, schemes[DefaultName].Name())
	assert.NotEqual(t, tcell.ColorDefault, schemes[DefaultName].Resolve("bombs", "dig", tcell.ColorDefault))
}
