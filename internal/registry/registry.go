// Package registry is a small, name-keyed store of lazily-built values
// with circular-reference detection. It backs forward declarations in
// recursive grammars (see pkg/combinator's Grammar/Ref).
package registry

import (
	"fmt"
	"sync"
)

// Registry maps names to builder functions invoked at most once, the
// first time the name is resolved.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	build     func() (interface{}, error)
	value     interface{}
	built     bool
	resolving bool
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register associates name with build, replacing any prior registration.
func (r *Registry) Register(name string, build func() (interface{}, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = &entry{build: build}
}

// Resolve returns the value registered under name, building and memoizing
// it on first use. It reports an error if name was never registered, or
// if resolving it re-enters itself before its builder returns — a
// circular reference at *registration* time, not at parse time (a rule
// that refers to itself or to another rule while running is fine; one
// whose builder function never terminates because it calls Resolve on
// itself before returning is a programmer error).
func (r *Registry) Resolve(name string) (interface{}, error) {
	r.mu.Lock()
	e, ok := r.entries[name]
	if !ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("registry: %q is not registered", name)
	}
	if e.built {
		v := e.value
		r.mu.Unlock()
		return v, nil
	}
	if e.resolving {
		r.mu.Unlock()
		return nil, fmt.Errorf("registry: %q is still being defined (circular reference at registration time)", name)
	}
	e.resolving = true
	r.mu.Unlock()

	v, err := e.build()

	r.mu.Lock()
	e.resolving = false
	if err == nil {
		e.value = v
		e.built = true
	}
	r.mu.Unlock()
	return v, err
}

// MustResolve is Resolve but panics on error.
func (r *Registry) MustResolve(name string) interface{} {
	v, err := r.Resolve(name)
	if err != nil {
		panic(err)
	}
	return v
}

// IsRegistered reports whether name has a builder registered.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[name]
	return ok
}
