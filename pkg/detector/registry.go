package detector

import (
	"fmt"
	"sync"
)

var defaultRegistry = &Registry{}

// Registry holds detector definitions in registration order.
type Registry struct {
	mu          sync.RWMutex
	definitions []*Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns the registry built-in detectors register with.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds def to the default registry and panics on a duplicate
// name, so misconfigured detector packages fail at startup.
func Register(def *Definition) {
	if err := defaultRegistry.Register(def); err != nil {
		panic(err)
	}
}

// Register adds a definition. Names must be unique.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return fmt.Errorf("%w: nil definition", ErrMissingIdentity)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.definitions {
		if d.Name == def.Name {
			return fmt.Errorf("%w: %s", ErrDuplicateDetector, def.Name)
		}
	}
	r.definitions = append(r.definitions, def)
	return nil
}

// All returns a copy of the registered definitions.
func (r *Registry) All() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*Definition, len(r.definitions))
	copy(result, r.definitions)
	return result
}

// Find returns the definition with the given name, or nil.
func (r *Registry) Find(name string) *Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.definitions {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// FindByFramework returns every definition reporting frameworkID.
func (r *Registry) FindByFramework(frameworkID string) []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*Definition
	for _, d := range r.definitions {
		if d.FrameworkID == frameworkID {
			result = append(result, d)
		}
	}
	return result
}

// Clear removes every definition.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.definitions = nil
}
