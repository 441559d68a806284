package testutil

import "context"

// TestComponent is a test double with a start/stop lifecycle.
type TestComponent interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error

	// Reset restores the component to its initial state between cases.
	Reset(ctx context.Context) error
}
