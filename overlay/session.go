package overlay

import (
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/grid-overlay/core"
	"github.com/lixenwraith/grid-overlay/status"
)

// SessionOptions carries the session's collaborators; zero value is usable
type SessionOptions struct {
	Logger  *zap.Logger
	Metrics *status.Registry
}

// Session is the active overlay: current layer, debounce countdown and last output
// Driven synchronously from the host tick; does not own its layers
type Session struct {
	id     uuid.UUID
	layers []Layer
	index  int

	countdown int
	groups    []TileGroup

	viewKnown bool
	lastArea  core.Area
	lastLoc   string

	log *zap.Logger

	// Cached metric pointers
	statTicks      *atomic.Int64
	statRecomputes *atomic.Int64
	statGroups     *atomic.Int64
	statTiles      *atomic.Int64
	statLayer      *status.Label
}

// NewSession activates an overlay over layers
// Starts on lastLayerID when it is still present, else on the first layer
func NewSession(layers []Layer, lastLayerID string, opts SessionOptions) *Session {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = status.NewRegistry()
	}

	s := &Session{
		id:             uuid.New(),
		layers:         layers,
		statTicks:      metrics.Ints.Get(status.KeyTicks),
		statRecomputes: metrics.Ints.Get(status.KeyRecomputes),
		statGroups:     metrics.Ints.Get(status.KeyGroups),
		statTiles:      metrics.Ints.Get(status.KeyTiles),
		statLayer:      metrics.Strings.Get(status.KeyLayer),
	}
	s.log = log.With(zap.String("session", s.id.String()))
	metrics.Strings.Get(status.KeySession).Store(s.id.String())

	for i, l := range layers {
		if l.ID() == lastLayerID {
			s.index = i
			break
		}
	}

	if cur := s.Current(); cur != nil {
		s.statLayer.Store(cur.Name())
		s.log.Debug("overlay activated", zap.String("layer", cur.ID()), zap.Int("layers", len(layers)))
	}
	return s
}

// ID returns the session identifier used in logs
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Current returns the selected layer, nil when no layer is enabled
func (s *Session) Current() Layer {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[s.index]
}

// Layers returns the session's layers in cycle order
func (s *Session) Layers() []Layer {
	return s.layers
}

// LastLayerID returns the current layer id for restoring the next session
func (s *Session) LastLayerID() string {
	if cur := s.Current(); cur != nil {
		return cur.ID()
	}
	return ""
}

// TileGroups returns the last computed groups
// The slice is replaced, never mutated, so a reader may hold it for one frame
func (s *Session) TileGroups() []TileGroup {
	return s.groups
}

// Update advances the session by one tick
func (s *Session) Update(frame Frame) {
	s.statTicks.Add(1)
	if len(s.layers) == 0 {
		return
	}

	changed := false
	for i, l := range s.layers {
		if u, ok := l.(MetadataUpdater); ok {
			if u.UpdateMetadata(frame) && i == s.index {
				changed = true
			}
		}
	}

	current := s.layers[s.index]
	s.countdown--
	viewChanged := current.UpdateOnViewChange() && s.viewChanged(frame)

	if changed || s.countdown <= 0 || viewChanged {
		s.recompute(frame)
	}
}

// CycleNext selects the following layer and recomputes immediately
func (s *Session) CycleNext(frame Frame) {
	s.step(1, frame)
}

// CyclePrevious selects the preceding layer and recomputes immediately
func (s *Session) CyclePrevious(frame Frame) {
	s.step(-1, frame)
}

func (s *Session) step(delta int, frame Frame) {
	n := len(s.layers)
	if n == 0 {
		return
	}
	s.index = ((s.index+delta)%n + n) % n
	s.recompute(frame)
}

// Select switches to the layer with id and recomputes immediately
// Returns false if no such layer is in the session
func (s *Session) Select(id string, frame Frame) bool {
	for i, l := range s.layers {
		if l.ID() == id {
			s.index = i
			s.recompute(frame)
			return true
		}
	}
	return false
}

// Close deactivates the session and drops every held reference
func (s *Session) Close() {
	s.log.Debug("overlay deactivated")
	s.layers = nil
	s.groups = nil
	s.index = 0
	s.viewKnown = false
}

func (s *Session) viewChanged(frame Frame) bool {
	return !s.viewKnown || frame.Visible.Area != s.lastArea || frame.LocationName() != s.lastLoc
}

func (s *Session) recompute(frame Frame) {
	current := s.layers[s.index]

	groups := current.Compute(frame)
	s.groups = groups
	s.countdown = current.UpdateTickRate()

	s.viewKnown = true
	s.lastArea = frame.Visible.Area
	s.lastLoc = frame.LocationName()

	s.statRecomputes.Add(1)
	s.statGroups.Store(int64(len(groups)))
	s.statTiles.Store(int64(CountTiles(groups)))
	s.statLayer.Store(current.Name())
}
