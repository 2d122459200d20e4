package solver

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Solver{}
)

// Register makes a backend constructor available under name. Adapters call
// it from init(), so importing an adapter package is what enables it. The
// name is matched case-insensitively; registering the same name twice
// panics, as with database/sql drivers.
func Register(name string, ctor func() Solver) {
	registryMu.Lock()
	defer registryMu.Unlock()
	key := strings.ToLower(name)
	if _, dup := registry[key]; dup {
		panic("solver: Register called twice for backend " + name)
	}
	registry[key] = ctor
}

// New resolves a configured backend name to a fresh adapter instance. Unknown
// names are a configuration error, resolved once at startup, never per
// request.
func New(name string) (Solver, error) {
	registryMu.RLock()
	ctor, ok := registry[strings.ToLower(name)]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown solver backend %q (available: %s)",
			name, strings.Join(Available(), ", "))
	}
	return ctor(), nil
}

// Available lists the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
