package waterfilter

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Constructor creates a filter of one kind.
type Constructor func(id string, usage int) (Filter, error)

// Registry maps kind names to Constructor functions. Names are matched
// case-insensitively.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Constructor
}

// NewRegistry creates an empty kind registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds: make(map[string]Constructor),
	}
}

// Register adds a constructor under the given kind name.
// Existing entries for the same name are overwritten.
func (r *Registry) Register(name string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.kinds[strings.ToLower(name)] = ctor
}

// Constructor returns the constructor for the given kind, or an error if not
// found.
func (r *Registry) Constructor(name string) (Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.kinds[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown filter kind %q (available: %s)", name, r.availableLocked())
	}

	return c, nil
}

// New creates a filter of the named kind.
func (r *Registry) New(name, id string, usage int) (Filter, error) {
	c, err := r.Constructor(name)
	if err != nil {
		return nil, err
	}

	return c(id, usage)
}

// Kinds returns the sorted list of registered kind names.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.kindsLocked()
}

// AvailableKinds returns a comma-separated string of registered kind names.
func (r *Registry) AvailableKinds() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.availableLocked()
}

func (r *Registry) kindsLocked() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (r *Registry) availableLocked() string {
	names := r.kindsLocked()
	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, ", ")
}

// DefaultRegistry returns a registry pre-populated with the built-in kinds:
// carbon, chemical.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(KindCarbon, func(id string, usage int) (Filter, error) {
		f, err := NewCarbonFilter(id, usage)
		if err != nil {
			return nil, err
		}

		return f, nil
	})

	r.Register(KindChemical, func(id string, usage int) (Filter, error) {
		f, err := NewChemicalFilter(id, usage)
		if err != nil {
			return nil, err
		}

		return f, nil
	})

	return r
}
