package status

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"unicode/utf8"
)

// MaxLabelRunes caps the length of a stored label
const MaxLabelRunes = 48

// Family holds one kind of metric keyed by name
// Writers look a metric up once and keep the pointer
type Family[T any] struct {
	mu      sync.Mutex
	metrics map[string]*T
}

func newFamily[T any]() *Family[T] {
	return &Family[T]{metrics: make(map[string]*T)}
}

// Get returns the metric for key, allocating it on first use
func (f *Family[T]) Get(key string) *T {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.metrics[key]
	if !ok {
		m = new(T)
		f.metrics[key] = m
	}
	return m
}

// Keys returns the registered names in sorted order
func (f *Family[T]) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Sorted(maps.Keys(f.metrics))
}

func (f *Family[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.metrics)
}

// Label is a text metric such as the current layer name; the zero value reads as ""
type Label struct {
	v atomic.Pointer[string]
}

// Store keeps at most MaxLabelRunes runes of text
func (l *Label) Store(text string) {
	if utf8.RuneCountInString(text) > MaxLabelRunes {
		n := 0
		for i := range text {
			if n == MaxLabelRunes {
				text = text[:i]
				break
			}
			n++
		}
	}
	l.v.Store(&text)
}

func (l *Label) Load() string {
	if p := l.v.Load(); p != nil {
		return *p
	}
	return ""
}
