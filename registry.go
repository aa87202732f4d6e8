package chroma

import (
	"fmt"
	"sync"
)

// Registry is the lookup table of space descriptors. It is mutable
// during setup and read-only afterwards; registration is serialized
// internally, and once it is complete any number of goroutines may use
// the registry concurrently.
//
// Most callers use the package-level functions, which operate on a
// shared default registry preloaded with the built-in spaces. Tests and
// embedders that need a custom space set construct their own with
// NewRegistry.
type Registry struct {
	mu     sync.RWMutex
	spaces map[string]*Space
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{spaces: make(map[string]*Space)}
}

// Register adds a space descriptor. Registering an identifier twice or a
// descriptor without conversion functions is an error.
func (r *Registry) Register(s *Space) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("chroma: cannot register a space without an identifier")
	}
	if len(s.Channels) == 0 || s.ToXYZ == nil || s.FromXYZ == nil {
		return fmt.Errorf("chroma: space %q is missing channels or reference conversions", s.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.spaces[s.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSpace, s.ID)
	}
	r.spaces[s.ID] = s
	Logger().Debug("registered color space", "space", s.ID, "channels", len(s.Channels))
	return nil
}

// Space returns the descriptor for the given identifier.
func (r *Registry) Space(id string) (*Space, error) {
	r.mu.RLock()
	s, ok := r.spaces[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpace, id)
	}
	return s, nil
}

// IDs returns the identifiers of all registered spaces.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.spaces))
	for id := range r.spaces {
		ids = append(ids, id)
	}
	return ids
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the shared registry with all built-in spaces
// registered. It is built on first use and read-only afterwards.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, s := range builtinSpaces() {
			if err := defaultRegistry.Register(s); err != nil {
				panic(err)
			}
		}
	})
	return defaultRegistry
}
