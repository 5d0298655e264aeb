package status

import (
	"strconv"
	"sync/atomic"
)

// Overlay metric keys
const (
	KeyTicks          = "overlay.ticks"
	KeyRecomputes     = "overlay.recomputes"
	KeyGroups         = "overlay.groups"
	KeyTiles          = "overlay.tiles"
	KeyLayer          = "overlay.layer"
	KeySession        = "overlay.session"
	KeyRegistryBuilds = "registry.builds"
	KeyRegistryLayers = "registry.layers"
)

// Registry is the central metrics facade
// Writers cache pointers at construction; per-tick updates touch atomics only
type Registry struct {
	Ints    *Family[atomic.Int64]
	Strings *Family[Label]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    newFamily[atomic.Int64](),
		Strings: newFamily[Label](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Len() + r.Strings.Len()
}

// Snapshot renders every metric as key/value text in sorted key order
func (r *Registry) Snapshot() [][2]string {
	out := make([][2]string, 0, r.TotalCount())
	for _, key := range r.Ints.Keys() {
		out = append(out, [2]string{key, strconv.FormatInt(r.Ints.Get(key).Load(), 10)})
	}
	for _, key := range r.Strings.Keys() {
		out = append(out, [2]string{key, r.Strings.Get(key).Load()})
	}
	return out
}
