// Package host implements the runtime side of the bridge: the functions injected
// into guest scripts before the namespace preload runs.
package host

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

var (
	// ErrAlreadyBound is returned by Bind when the name is taken.
	ErrAlreadyBound = errors.New("function is already bound")
	// ErrNotFound is returned by Invoke for names that were never bound.
	ErrNotFound = errors.New("function not found")
)

// Handler is a Go function callable from scripts by name.
type Handler func(args ...any) (any, error)

// Registry holds the functions reachable through invoke.
// Handlers run on their own goroutine, so they must be safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Handler)}
}

// Bind registers fn under name.
func (r *Registry) Bind(name string, fn Handler) error {
	if name == "" {
		return errors.New("function name is empty")
	}
	if fn == nil {
		return fmt.Errorf("function %s has a nil handler", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyBound, name)
	}

	r.funcs[name] = fn
	return nil
}

// Unbind removes name. It reports whether the name was bound.
func (r *Registry) Unbind(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.funcs[name]
	delete(r.funcs, name)
	return ok
}

// Invoke calls the handler bound to name. A panicking handler fails the call.
func (r *Registry) Invoke(name string, args ...any) (any, error) {
	r.mu.RLock()
	fn, ok := r.funcs[name]
	r.mu.RUnlock()

	if !ok {
		return nil, r.notFound(name)
	}

	result, err := guard(name, func() (any, error) {
		return fn(args...)
	})
	if err != nil {
		return nil, fmt.Errorf("error invoking function %s: %w", name, err)
	}
	return result, nil
}

// Names returns the bound names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.funcs)
	sort.Strings(names)
	return names
}

func (r *Registry) notFound(name string) error {
	names := r.Names()
	if len(names) == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	closest := lo.MinBy(names, func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return fmt.Errorf("%w: %s, did you mean %s?", ErrNotFound, name, closest)
}
