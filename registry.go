package xvec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"
)

// Factory constructs a fresh allocator instance.
type Factory[T any] func() Allocator[T]

// Registry maps strategy names to allocator factories so callers can select
// storage by string, typically from a flag or a config file. Registration
// and lookup are safe from any goroutine.
type Registry[T any] struct {
	factories *xsync.Map[string, Factory[T]]
}

// NewRegistry creates a registry pre-registered with the built-in
// strategies: "heap", "arena" (default chunk size, no limit) and "pool"
// (default class size).
func NewRegistry[T any]() *Registry[T] {
	r := &Registry[T]{factories: xsync.NewMap[string, Factory[T]]()}
	r.Register("heap", func() Allocator[T] { return HeapAllocator[T]{} })
	r.Register("arena", func() Allocator[T] { return NewArena[T](0) })
	r.Register("pool", func() Allocator[T] { return NewPool[T](0) })
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry[T]) Register(name string, factory Factory[T]) {
	r.factories.Store(name, factory)
}

// New constructs a fresh allocator by strategy name. Unknown names report
// the registered alternatives.
func (r *Registry[T]) New(name string) (Allocator[T], error) {
	factory, ok := r.factories.Load(name)
	if !ok {
		return nil, fmt.Errorf("xvec: unknown allocator %q (registered: %s)",
			name, strings.Join(r.Names(), ", "))
	}
	return factory(), nil
}

// Names returns the registered strategy names, sorted.
func (r *Registry[T]) Names() []string {
	var names []string
	r.factories.Range(func(name string, _ Factory[T]) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}
