// Package gateways provides the payment backend plugin system.
// Backends are modular plugins selected by name from a closed registry;
// backend types are never constructed from unsanitized input.
package gateways

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"checkout/core/payment"
	"checkout/internal/errors"
)

// Registry manages payment backend registration. Resolution is
// case-insensitive on the backend name.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]payment.Backend
}

// NewRegistry creates a new backend registry
func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]payment.Backend),
	}
}

// Register adds a backend to the registry
func (r *Registry) Register(backend payment.Backend) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(backend.Name())
	if _, exists := r.backends[key]; exists {
		return fmt.Errorf("backend already registered: %s", key)
	}

	r.backends[key] = backend
	return nil
}

// Resolve returns the backend for a requested name. Unknown names fail
// with a NOT_SUPPORTED error; this is a client-correctable condition,
// never fatal.
func (r *Registry) Resolve(name string) (payment.Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	backend, ok := r.backends[strings.ToLower(name)]
	if !ok {
		return nil, errors.UnsupportedBackend(name)
	}
	return backend, nil
}

// Names returns all registered backend names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global default registry
var defaultRegistry = NewRegistry()

// Register adds a backend to the default registry
func Register(backend payment.Backend) error {
	return defaultRegistry.Register(backend)
}

// Default returns the default registry
func Default() *Registry {
	return defaultRegistry
}
