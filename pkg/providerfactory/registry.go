package providerfactory

import (
	"fmt"
	"log/slog"
	"sort"

	"mercator-hq/callisto/pkg/providers"
)

// Registry maps provider identifiers to adapters.
//
// It is built once at startup and never mutated, so lookups need no locking.
// Every supported provider is always present, configured or not; a lookup
// miss therefore means the caller asked for an unknown provider.
type Registry struct {
	adapters map[string]providers.Adapter
}

// NewRegistry builds a registry holding an adapter for every supported
// provider. configs supplies per-provider settings keyed by identifier; a
// supported provider without an entry gets an unconfigured adapter. Entries
// for unsupported providers are rejected.
func NewRegistry(configs map[string]providers.ProviderConfig) (*Registry, error) {
	for name := range configs {
		if !IsSupported(name) {
			return nil, fmt.Errorf("unsupported provider: %q (supported: openai, anthropic)", name)
		}
	}

	r := &Registry{adapters: make(map[string]providers.Adapter, len(SupportedProviders))}
	for _, name := range SupportedProviders {
		adapter, err := NewAdapter(name, configs[name])
		if err != nil {
			return nil, fmt.Errorf("failed to create provider %q: %w", name, err)
		}
		r.adapters[name] = adapter

		slog.Info("provider registered",
			"name", name,
			"configured", adapter.Configured(),
		)
	}

	return r, nil
}

// Lookup returns the adapter for name.
func (r *Registry) Lookup(name string) (providers.Adapter, bool) {
	adapter, ok := r.adapters[name]
	return adapter, ok
}

// Names returns the registered provider identifiers in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Status reports, per provider, whether a credential is configured.
func (r *Registry) Status() map[string]bool {
	status := make(map[string]bool, len(r.adapters))
	for name, adapter := range r.adapters {
		status[name] = adapter.Configured()
	}
	return status
}
