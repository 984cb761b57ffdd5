// Package registry implements the host integration convention: a consuming
// application constructs one Settings instance per package and registers it
// under a stable name so other code can look it up by reference. The registry
// is explicit, caller-constructed state; the library creates no process-wide
// instance of its own.
package registry

import (
	"fmt"
	"sort"
	"sync"

	settings "github.com/goliatone/go-settings"
)

// Registry maps stable names to long-lived Settings instances. It is shared
// across goroutines by design and guards itself with a lock; the instances it
// hands out keep their own single-threaded contract.
type Registry struct {
	mu        sync.RWMutex
	instances map[string]*settings.Settings
}

// New constructs an empty registry.
func New() *Registry {
	return &Registry{instances: map[string]*settings.Settings{}}
}

// Register stores instance under name. Registering the same name twice is an
// error; instances live for the process lifetime and are never replaced.
func (r *Registry) Register(name string, instance *settings.Settings) error {
	if name == "" {
		return fmt.Errorf("registry: name is required")
	}
	if instance == nil {
		return fmt.Errorf("registry: instance is required for %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.instances == nil {
		r.instances = map[string]*settings.Settings{}
	}
	if _, exists := r.instances[name]; exists {
		return fmt.Errorf("registry: %q already registered", name)
	}
	r.instances[name] = instance
	return nil
}

// Lookup returns the instance registered under name.
func (r *Registry) Lookup(name string) (*settings.Settings, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	instance, ok := r.instances[name]
	return instance, ok
}

// MustLookup is Lookup for wiring paths where a missing registration is a
// programming error.
func (r *Registry) MustLookup(name string) *settings.Settings {
	instance, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("registry: %q not registered", name))
	}
	return instance
}

// Names returns the registered names sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.instances))
	for name := range r.instances {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
