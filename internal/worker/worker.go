package worker

import (
	"context"
)

// Worker is a long-running background job.
type Worker interface {
	// Start runs the worker until the context is cancelled or Stop is called.
	Start(ctx context.Context) error

	// Stop signals the worker to finish its current batch and exit.
	Stop() error

	// Name identifies the worker in logs.
	Name() string
}
