// Package domain contains the check engine, the check registry and the lint
// workflow.
package domain

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	m "github.com/mouse-blink/solint/internal/model"
)

// ErrUnknownCheck is returned when a check name is not registered.
var ErrUnknownCheck = errors.New("unknown check")

// Descriptor describes a registered check.
type Descriptor struct {
	Name    m.CheckName
	Enabled bool
	Factory Factory
}

// New returns a fresh instance of the check.
func (d Descriptor) New() Check {
	if d.Factory == nil {
		return nil
	}

	return d.Factory()
}

// Fixable reports whether the check implements Fixer.
func (d Descriptor) Fixable() bool {
	_, ok := d.New().(Fixer)

	return ok
}

// Description returns the check description, if it has one.
func (d Descriptor) Description() string {
	if desc, ok := d.New().(Describer); ok {
		return desc.Description()
	}

	return ""
}

// Registry holds the registered checks in registration order.
type Registry struct {
	mu      sync.RWMutex
	order   []m.CheckName
	entries map[m.CheckName]*Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[m.CheckName]*Descriptor)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry filled by check packages at init time.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a check to the default registry.
func Register(name m.CheckName, factory Factory) {
	defaultRegistry.Register(name, factory)
}

// Register stores factory under name, enabled. Registering an existing name
// replaces its factory and keeps its position.
func (r *Registry) Register(name m.CheckName, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[name]; !ok {
		r.order = append(r.order, name)
	}

	r.entries[name] = &Descriptor{Name: name, Enabled: true, Factory: factory}
}

// Enable turns a registered check on.
func (r *Registry) Enable(name m.CheckName) error {
	return r.setEnabled(name, true)
}

// Disable turns a registered check off.
func (r *Registry) Disable(name m.CheckName) error {
	return r.setEnabled(name, false)
}

func (r *Registry) setEnabled(name m.CheckName, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.entries[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCheck, name)
	}

	d.Enabled = enabled

	return nil
}

// Only enables exactly the named checks and disables the rest.
func (r *Registry) Only(names ...m.CheckName) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keep := make(map[m.CheckName]struct{}, len(names))

	for _, name := range names {
		if _, ok := r.entries[name]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCheck, name)
		}

		keep[name] = struct{}{}
	}

	for name, d := range r.entries {
		_, d.Enabled = keep[name]
	}

	return nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name m.CheckName) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.entries[name]
	if !ok {
		return Descriptor{}, false
	}

	return *d, true
}

// Checks returns every registered check in registration order.
func (r *Registry) Checks() []Descriptor {
	return r.list(false)
}

// Enabled returns the enabled checks in registration order.
func (r *Registry) Enabled() []Descriptor {
	return r.list(true)
}

func (r *Registry) list(enabledOnly bool) []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.order))

	for _, name := range r.order {
		d := r.entries[name]
		if enabledOnly && !d.Enabled {
			continue
		}

		out = append(out, *d)
	}

	return out
}

// Names returns the registered names sorted alphabetically.
func (r *Registry) Names() []m.CheckName {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := append([]m.CheckName(nil), r.order...)
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}

// Clone returns an independent copy, so callers can toggle checks without
// touching the shared registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := NewRegistry()
	c.order = append(c.order, r.order...)

	for name, d := range r.entries {
		cp := *d
		c.entries[name] = &cp
	}

	return c
}
