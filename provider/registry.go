package provider

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/watset/clustering"
)

// Factory validates params and returns a Builder for one algorithm.
// logger receives diagnostics emitted while resolving params.
type Factory func(params Params, logger *zap.Logger) (clustering.Builder, error)

// Registry maps algorithm names to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds f under name (case-insensitive).
func (r *Registry) Register(name string, f Factory) error {
	key := normalize(name)
	if key == "" {
		return ErrNoAlgorithm
	}
	if f == nil {
		return fmt.Errorf("%w: nil factory for %q", clustering.ErrBadOption, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.factories[key]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateAlgorithm, name)
	}
	r.factories[key] = f

	return nil
}

// MustRegister is like Register but panics on error. It is meant for
// package initialization.
func (r *Registry) MustRegister(name string, f Factory) {
	if err := r.Register(name, f); err != nil {
		panic(err)
	}
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[normalize(name)]

	return f, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DefaultRegistry holds every algorithm shipped with this module.
var DefaultRegistry = NewRegistry()

// Names returns the algorithm names known to DefaultRegistry.
func Names() []string { return DefaultRegistry.Names() }
