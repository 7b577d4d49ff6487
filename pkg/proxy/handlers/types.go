package handlers

import (
	"context"

	"mercator-hq/callisto/pkg/providers"
)

// Dispatcher sends a canonical chat request to its provider.
type Dispatcher interface {
	Dispatch(ctx context.Context, req *providers.ChatRequest) (*providers.ChatResponse, error)
}

// ProviderStatus reports, per provider, whether a credential is configured.
type ProviderStatus interface {
	Status() map[string]bool
}
