package easing

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var ErrInvalidFormula = errors.New("easing: formula needs a name and a function")

// Registry maps formula names to formulas. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	formulas map[string]Formula
}

// NewRegistry returns a registry holding linear, the Penner set and spring.
func NewRegistry() *Registry {
	return &Registry{formulas: builtins()}
}

// Register adds or replaces a named formula.
func (r *Registry) Register(name string, f Formula) error {
	if name == "" || f == nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormula, name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formulas[name] = f
	return nil
}

func (r *Registry) Lookup(name string) (Formula, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formulas[name]
	return f, ok
}

// Resolve returns the named formula, or Linear when the name is unknown.
func (r *Registry) Resolve(name string) Formula {
	if f, ok := r.Lookup(name); ok {
		return f
	}
	return Linear
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.formulas))
	for name := range r.formulas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
