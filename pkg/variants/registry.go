package variants

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/stencil/pkg/domain"
)

// Constructor builds a fresh variant value.
type Constructor func() domain.Variant

// Registry manages the available variants.
// Lookups are case-insensitive.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Constructor
	names   map[string]string // lower-cased key -> canonical name
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Constructor),
		names:   make(map[string]string),
	}
}

// Default returns a registry holding ConcreteClass1 (alias "A") and ConcreteClass2 (alias "B").
func Default() *Registry {
	r := NewRegistry()
	r.Register("ConcreteClass1", func() domain.Variant { return ConcreteClass1{} }, "A")
	r.Register("ConcreteClass2", func() domain.Variant { return ConcreteClass2{} }, "B")
	return r
}

// Register adds a variant under name and any aliases.
// If a variant with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Constructor, aliases ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range append([]string{name}, aliases...) {
		k := strings.ToLower(key)
		r.entries[k] = fn
		r.names[k] = name
	}
}

// New looks up a variant by name or alias and constructs it.
func (r *Registry) New(name string) (domain.Variant, error) {
	r.mu.RLock()
	fn, ok := r.entries[strings.ToLower(strings.TrimSpace(name))]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownVariant, name)
	}
	return fn(), nil
}

// Resolve constructs every named variant, in order.
func (r *Registry) Resolve(names ...string) ([]domain.Variant, error) {
	out := make([]domain.Variant, 0, len(names))
	for _, n := range names {
		v, err := r.New(n)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Names returns the canonical names of registered variants, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, n := range r.names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
