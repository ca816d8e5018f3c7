package ports

import (
	"context"

	"gowrangle/domain/frame"
)

// RemoteSource executes a fetch specification against a named remote
// source and returns the tabular result with a default 0..n-1 index.
type RemoteSource interface {
	Fetch(ctx context.Context, source, query string) (*frame.Frame, error)
}
