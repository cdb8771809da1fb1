package displaylist

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// DispatcherFactory creates a new Dispatcher instance.
// Factories are registered via RegisterDispatcher and called by
// NewDispatcher.
type DispatcherFactory func() Dispatcher

// ErrUnknownDispatcher is returned by NewDispatcher for names that were
// never registered.
var ErrUnknownDispatcher = errors.New("unknown dispatcher")

var (
	registryMu  sync.RWMutex
	dispatchers = make(map[string]DispatcherFactory)
)

// RegisterDispatcher makes a playback backend available by name. It is
// typically called from init() in the backend package, following the
// database/sql driver pattern:
//
//	func init() {
//	    displaylist.RegisterDispatcher("svg", func() displaylist.Dispatcher {
//	        return NewSVGDispatcher()
//	    })
//	}
//
// RegisterDispatcher panics if factory is nil or the name is already
// taken.
func RegisterDispatcher(name string, factory DispatcherFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("displaylist: RegisterDispatcher factory is nil")
	}
	if _, dup := dispatchers[name]; dup {
		panic("displaylist: RegisterDispatcher called twice for " + name)
	}
	dispatchers[name] = factory
}

// UnregisterDispatcher removes a dispatcher from the registry. Unknown
// names are ignored.
func UnregisterDispatcher(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(dispatchers, name)
}

// NewDispatcher creates a dispatcher by name. The error wraps
// ErrUnknownDispatcher when the name is not registered.
func NewDispatcher(name string) (Dispatcher, error) {
	registryMu.RLock()
	factory, ok := dispatchers[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("displaylist: %w %q (forgotten import?)", ErrUnknownDispatcher, name)
	}
	return factory(), nil
}

// MustDispatcher is like NewDispatcher but panics on error.
func MustDispatcher(name string) Dispatcher {
	d, err := NewDispatcher(name)
	if err != nil {
		panic(err)
	}
	return d
}

// Dispatchers returns the registered names in alphabetical order.
func Dispatchers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(dispatchers))
	for name := range dispatchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsDispatcherRegistered reports whether name is registered.
func IsDispatcherRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := dispatchers[name]
	return ok
}
