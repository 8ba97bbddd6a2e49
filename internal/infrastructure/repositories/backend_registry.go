package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/crlfrevert/internal/domain/repositories"
)

// BackendFactory is a constructor function that creates a version-control backend.
type BackendFactory func() domainRepos.Backend

// BackendRegistry manages all registered version-control backend implementations.
type BackendRegistry struct {
	backends map[string]BackendFactory
}

// NewBackendRegistry creates an empty backend registry.
func NewBackendRegistry() *BackendRegistry {
	return &BackendRegistry{
		backends: make(map[string]BackendFactory),
	}
}

// Register adds a backend factory under the given name (e.g. "gogit").
func (r *BackendRegistry) Register(name string, factory BackendFactory) {
	r.backends[name] = factory
}

// Get returns a fresh backend instance for the given name.
func (r *BackendRegistry) Get(name string) (domainRepos.Backend, error) {
	factory, ok := r.backends[name]
	if !ok {
		return domainRepos.Backend{}, fmt.Errorf("unknown backend type: %q (available: %v)", name, r.Names())
	}
	backend := factory()
	if backend.Name == "" {
		backend.Name = name
	}
	return backend, nil
}

// Names returns the sorted list of registered backend names.
func (r *BackendRegistry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
