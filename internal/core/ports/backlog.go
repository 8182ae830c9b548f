package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
)

// BacklogSummary holds the current size of each backlog lane.
type BacklogSummary struct {
	Regular  int
	Priority int
}

// Backlog defines the contract for the dual-lane order backlog.
// An order id is present in at most one lane at any time, and in neither
// lane once processed or cancelled.
type Backlog interface {
	// Enqueue admits an order id to the given lane.
	// The priority lane has stack discipline (last pushed, first drained),
	// the regular lane queue discipline (first appended, first drained).
	Enqueue(ctx context.Context, id kernel.OrderID, lane services.Lane) error

	// Next removes and returns the next order id to process: the top of the
	// priority lane when it holds entries, otherwise the head of the regular
	// lane. Returns errs.ErrObjectNotFound (wrapped) when both lanes are empty.
	Next(ctx context.Context) (kernel.OrderID, error)

	// Remove takes an order id out of whichever lane holds it.
	// Removing an absent id is a no-op.
	Remove(ctx context.Context, id kernel.OrderID) error

	// Summary returns the current lane sizes without mutating the lanes.
	Summary(ctx context.Context) (BacklogSummary, error)
}
