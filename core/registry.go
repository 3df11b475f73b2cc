package core

import (
	"reflect"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry holds shared values keyed by their type. One value per type,
// a later Insert replaces the earlier one.
type Registry struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

func NewRegistry() *Registry {
	return &Registry{values: make(map[reflect.Type]any)}
}

// Insert stores v, replacing any value of the same type.
func Insert[T any](r *Registry, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[reflect.TypeFor[T]()] = v
}

// Get returns the stored value of type T.
func Get[T any](r *Registry) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// MustGet is Get for callers that ordered their reads after setup.
func MustGet[T any](r *Registry) T {
	v, ok := Get[T](r)
	if !ok {
		panic("registry: no value of type " + reflect.TypeFor[T]().String())
	}
	return v
}

// Types lists the registered type names, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.values))
	for _, t := range maps.Keys(r.values) {
		names = append(names, t.String())
	}
	slices.Sort(names)
	return names
}
