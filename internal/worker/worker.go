package worker

import (
	"context"
)

// Worker is a long-running stream consumer managed by WorkerManager.
type Worker interface {
	// Start blocks until ctx is done, Stop is called or the worker fails
	Start(ctx context.Context) error

	Stop() error

	Name() string
}
