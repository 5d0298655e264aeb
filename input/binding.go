// Package input parses shortcut bindings and tracks keys pressed during a tick.
package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Binding is a single key shortcut; the zero value is unbound
type Binding struct {
	Key  tcell.Key     // tcell.KeyRune for printable keys
	Rune rune          // set when Key is tcell.KeyRune
	Mod  tcell.ModMask // only ModAlt is significant, and only for rune keys
}

// keyByName is the lowercase reverse of tcell.KeyNames
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// Rune aliases for keys awkward to write in config files
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"plus":      '+',
}

// ParseBinding parses names like "F2", "Ctrl+B", "Alt+x", "[" or "space"
// An empty string yields the unbound zero value
func ParseBinding(s string) (Binding, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Binding{}, nil
	}

	var mod tcell.ModMask
	lower := strings.ToLower(s)
	if rest, ok := strings.CutPrefix(lower, "alt+"); ok && rest != "" {
		mod = tcell.ModAlt
		s = s[len("alt+"):]
		lower = rest
	}

	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return Binding{Key: tcell.KeyRune, Rune: r, Mod: mod}, nil
	}
	if r, ok := runeAliases[lower]; ok {
		return Binding{Key: tcell.KeyRune, Rune: r, Mod: mod}, nil
	}

	// tcell names control keys "Ctrl-B"; accept "Ctrl+B" too
	if k, ok := keyByName[strings.ReplaceAll(lower, "+", "-")]; ok && mod == 0 {
		return Binding{Key: k}, nil
	}
	return Binding{}, fmt.Errorf("unknown key %q", s)
}

// MustParseBinding is ParseBinding for literals known to be valid
func MustParseBinding(s string) Binding {
	b, err := ParseBinding(s)
	if err != nil {
		panic(err)
	}
	return b
}

// FromEvent normalizes a tcell key event into a Binding
func FromEvent(ev *tcell.EventKey) Binding {
	if ev.Key() == tcell.KeyRune {
		return Binding{Key: tcell.KeyRune, Rune: ev.Rune(), Mod: ev.Modifiers() & tcell.ModAlt}
	}
	return Binding{Key: ev.Key()}
}

// Bound reports whether the binding maps to any key
func (b Binding) Bound() bool {
	return b.Key != 0 || b.Rune != 0
}

// String renders the binding in ParseBinding syntax
func (b Binding) String() string {
	if !b.Bound() {
		return ""
	}
	prefix := ""
	if b.Mod&tcell.ModAlt != 0 {
		prefix = "Alt+"
	}
	if b.Key == tcell.KeyRune {
		if b.Rune == ' ' {
			return prefix + "Space"
		}
		return prefix + string(b.Rune)
	}
	if name, ok := tcell.KeyNames[b.Key]; ok {
		return prefix + name
	}
	return fmt.Sprintf("%sKey(%d)", prefix, b.Key)
}
