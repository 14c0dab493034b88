package core

import (
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// capabilityCacheTTL bounds how long a GetByCapability result set is
// memoized. Registration is append-only within an episode and invalidates
// the whole cache, so the TTL only protects against unbounded growth
// across very long-lived registries, not correctness.
const capabilityCacheTTL = 5 * time.Minute

// CapabilityRegistry is the in-memory store of ComponentMetadata, keyed by
// name. Registration is append-only within a synthesis episode: a name may
// only be registered once.
type CapabilityRegistry struct {
	mu         sync.RWMutex
	components map[string]*ComponentMetadata
	// order preserves registration order so list_all/get_by_capability are
	// deterministic within one process lifetime, as required by spec §4.1.
	order []string

	cache *gocache.Cache
}

// NewCapabilityRegistry creates an empty registry.
func NewCapabilityRegistry() *CapabilityRegistry {
	return &CapabilityRegistry{
		components: make(map[string]*ComponentMetadata),
		cache:      gocache.New(capabilityCacheTTL, 2*capabilityCacheTTL),
	}
}

// Register adds a component to the registry. It fails with
// ErrAlreadyRegistered if the name collides with an existing entry.
func (r *CapabilityRegistry) Register(meta *ComponentMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.components[meta.Name]; exists {
		return NewError("registry.Register", KindConfig,
			fmt.Errorf("%w: %q", ErrAlreadyRegistered, meta.Name))
	}

	r.components[meta.Name] = meta
	r.order = append(r.order, meta.Name)

	// Registration invalidates every cached capability lookup: a newly
	// registered component might match a previously-cached query.
	r.cache.Flush()

	return nil
}

// Get returns the metadata registered under name, or ErrNotFound.
func (r *CapabilityRegistry) Get(name string) (*ComponentMetadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, ok := r.components[name]
	if !ok {
		return nil, NewError("registry.Get", KindNotFound,
			fmt.Errorf("%w: %q", ErrNotFound, name))
	}
	return meta, nil
}

// ListAll returns a snapshot of every registered component, in
// registration order.
func (r *CapabilityRegistry) ListAll() []*ComponentMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*ComponentMetadata, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.components[name])
	}
	return out
}

// GetByCapability returns every component supporting the given capability,
// optionally restricted to an exact privacy level match. An empty result
// is legal and not an error.
func (r *CapabilityRegistry) GetByCapability(capability string, privacy *PrivacyLevel) []*ComponentMetadata {
	cacheKey := capability
	if privacy != nil {
		cacheKey = capability + "|" + string(*privacy)
	}

	if cached, ok := r.cache.Get(cacheKey); ok {
		return cached.([]*ComponentMetadata)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*ComponentMetadata
	for _, name := range r.order {
		candidate := r.components[name]
		if !candidate.Supports(capability) {
			continue
		}
		if privacy != nil && candidate.PrivacyLevel != *privacy {
			continue
		}
		out = append(out, candidate)
	}

	r.cache.Set(cacheKey, out, gocache.DefaultExpiration)
	return out
}
