package input

import "github.com/gdamore/tcell/v2"

// Source answers whether a binding was pressed during the current tick
type Source interface {
	Pressed(b Binding) bool
}

// State collects key presses between ticks
// Terminals report presses only, so a key is "down" for the tick it arrived in
type State struct {
	pressed map[Binding]struct{}
}

// NewState creates an empty State
func NewState() *State {
	return &State{pressed: make(map[Binding]struct{})}
}

// Press records a key event
func (s *State) Press(ev *tcell.EventKey) {
	s.pressed[FromEvent(ev)] = struct{}{}
}

// PressBinding records a press without a terminal event
func (s *State) PressBinding(b Binding) {
	if b.Bound() {
		s.pressed[b] = struct{}{}
	}
}

// Pressed reports whether b was pressed this tick; unbound bindings never match
func (s *State) Pressed(b Binding) bool {
	if !b.Bound() {
		return false
	}
	_, ok := s.pressed[b]
	return ok
}

// Clear forgets all presses, called once the tick consumed them
func (s *State) Clear() {
	clear(s.pressed)
}
