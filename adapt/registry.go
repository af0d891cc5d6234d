package adapt

import (
	"sync"

	"github.com/docmap-format/go-docmap/debug"
	"github.com/docmap-format/go-docmap/ir"
	"github.com/docmap-format/go-docmap/model"
)

// Registry caches one Adapter per model type for reuse across many
// conversions. Population is lazy and idempotent: concurrent first
// lookups may build an adapter redundantly, but all callers converge
// on a single cached instance.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]*Adapter
	resolver model.Resolver
}

// NewRegistry creates a registry. resolver may be nil; it is only
// needed for DecodeAny.
func NewRegistry(resolver model.Resolver) *Registry {
	return &Registry{
		adapters: map[string]*Adapter{},
		resolver: resolver,
	}
}

// AdapterFor returns the cached adapter for t, building it on first
// use.
func (r *Registry) AdapterFor(t model.Type) (*Adapter, error) {
	name := t.Name()
	r.mu.RLock()
	a := r.adapters[name]
	r.mu.RUnlock()
	if a != nil {
		return a, nil
	}

	// built outside the lock; a concurrent duplicate is discarded
	a, err := New(t)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev := r.adapters[name]; prev != nil {
		return prev, nil
	}
	if debug.Registry() {
		debug.Logf("registry: caching adapter for %s\n", name)
	}
	r.adapters[name] = a
	return a, nil
}

// DecodeAny resolves doc to a concrete model type through the
// registry's resolver and decodes it. A resolver that matches no type
// yields a *NoTargetTypeError; conversion itself is untouched.
func (r *Registry) DecodeAny(doc *ir.Node) (any, error) {
	if r.resolver == nil {
		return nil, &NoTargetTypeError{Message: "no resolver configured"}
	}
	t := r.resolver.TypeFor(doc)
	if t == nil {
		return nil, &NoTargetTypeError{Message: "resolver matched no model type"}
	}
	a, err := r.AdapterFor(t)
	if err != nil {
		return nil, err
	}
	return a.Decode(doc)
}

// defaultRegistry backs the package-level entry points.
var defaultRegistry = NewRegistry(nil)

// Decode converts a document into an instance of t using the default
// registry's cached adapter.
func Decode(t model.Type, doc *ir.Node) (any, error) {
	a, err := defaultRegistry.AdapterFor(t)
	if err != nil {
		return nil, err
	}
	return a.Decode(doc)
}

// Encode converts a model instance of t into a document using the
// default registry's cached adapter.
func Encode(t model.Type, v any) (*ir.Node, error) {
	a, err := defaultRegistry.AdapterFor(t)
	if err != nil {
		return nil, err
	}
	return a.Encode(v)
}
