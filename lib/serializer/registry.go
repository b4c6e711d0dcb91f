package serializer

import (
	"fmt"
	"sort"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/techishthoughts/serbench/lib/bench"
)

// Registry is an explicit store of adapter factories keyed by backend name.
// It is caller-owned rather than a package global so sweeps stay
// reproducible and parallel-safe; backends are selected by name, never by
// runtime probing.
type Registry struct {
	factories *xsync.MapOf[string, func() bench.Adapter]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: xsync.NewMapOf[string, func() bench.Adapter]()}
}

// DefaultRegistry returns a registry with every built-in backend.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("json", NewJSONAdapter)
	r.Register("gob", NewGOBAdapter)
	r.Register("binary", NewBinaryAdapter)
	r.Register("msgpack", NewMsgPackAdapter)
	r.Register("cbor", NewCBORAdapter)
	return r
}

// Register adds a factory under a backend name, replacing any previous one.
func (r *Registry) Register(name string, factory func() bench.Adapter) {
	r.factories.Store(name, factory)
}

// Get builds a fresh adapter for the named backend.
func (r *Registry) Get(name string) (bench.Adapter, error) {
	factory, ok := r.factories.Load(name)
	if !ok {
		return nil, fmt.Errorf("serializer: unknown backend %q (available: %v)", name, r.Names())
	}
	return factory(), nil
}

// Names lists all registered backend names in sorted order.
func (r *Registry) Names() []string {
	var names []string
	r.factories.Range(func(name string, _ func() bench.Adapter) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}
