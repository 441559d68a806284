package provider

import "context"

// Provider is the base interface all providers must implement.
type Provider interface {
	// Name returns the provider's unique name.
	Name() string
	// IsAvailable reports whether the provider can take requests. It must
	// not contact the remote service.
	IsAvailable(ctx context.Context) bool
}
