package backend

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gpushell/render"
)

// Factory creates a platform.
type Factory func() render.Platform

// registry holds registered platforms.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for Default (first registered wins).
	backendPriority = []string{BackendNative, BackendConstrained}
)

// Register registers a platform factory under name. Build-tagged files
// call it from init(). An existing registration is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a platform from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered platform names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a platform with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Get returns the platform registered under name, or nil.
func Get(name string) render.Platform {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the highest-priority registered platform, falling back
// to any registered one. Returns nil if nothing is registered.
func Default() render.Platform {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := factories[name]; ok {
			if p := factory(); p != nil {
				return p
			}
		}
	}
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if p := factories[name](); p != nil {
			return p
		}
	}
	return nil
}

// Select returns the platform named name, or Default when name is empty.
func Select(name string) (render.Platform, error) {
	var p render.Platform
	if name == "" {
		p = Default()
	} else {
		p = Get(name)
	}
	if p == nil {
		if name == "" {
			return nil, ErrBackendNotAvailable
		}
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrBackendNotAvailable, name, Available())
	}
	return p, nil
}
