package scheduler

import (
	"context"
)

// Scheduler defines the interface for scheduler implementations.
// Schedulers are long-running background loops that trigger periodic work.
type Scheduler interface {
	// Start begins the scheduler's main loop.
	// This is a blocking call that runs until the context is canceled or Stop is called.
	Start(ctx context.Context) error

	// Stop gracefully stops the scheduler, waiting for an in-progress run to complete
	Stop(ctx context.Context) error

	// Name returns the scheduler's name for logging and identification
	Name() string
}
