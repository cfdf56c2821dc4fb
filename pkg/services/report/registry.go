package report

import (
	"fmt"
	"sort"
	"sync"
)

const (
	WeightingIdentity = "identity"
	WeightingScaled   = "scaled"
)

// WeigherFactory creates a Weigher
type WeigherFactory func() Weigher

// WeigherRegistry manages the weighting strategies selectable by name
type WeigherRegistry interface {
	// Register adds a new weighting strategy
	Register(name string, factory WeigherFactory) error
	// Create instantiates the strategy registered under name
	Create(name string) (Weigher, error)
	// List returns the registered strategy names, sorted
	List() []string
}

type weigherRegistry struct {
	mu        sync.RWMutex
	factories map[string]WeigherFactory
}

// NewWeigherRegistry creates a registry pre-filled with factories
func NewWeigherRegistry(factories map[string]WeigherFactory) WeigherRegistry {
	r := &weigherRegistry{
		factories: make(map[string]WeigherFactory, len(factories)),
	}
	for name, factory := range factories {
		r.factories[name] = factory
	}
	return r
}

// DefaultWeigherRegistry returns a registry with the built-in strategies
func DefaultWeigherRegistry() WeigherRegistry {
	return NewWeigherRegistry(map[string]WeigherFactory{
		WeightingIdentity: NewIdentityWeigher,
		WeightingScaled:   NewScaledWeigher,
	})
}

func (r *weigherRegistry) Register(name string, factory WeigherFactory) error {
	if name == "" {
		return fmt.Errorf("weighting name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("weighting %q is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

func (r *weigherRegistry) Create(name string) (Weigher, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: weighting %q is not registered", ErrConfiguration, name)
	}

	return factory(), nil
}

func (r *weigherRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
