package memstore

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrAlreadyEnqueued is returned when an order id is admitted to the backlog
// twice. An order id lives in at most one lane at any time.
var ErrAlreadyEnqueued = fmt.Errorf("order is already enqueued")

// Backlog implements ports.Backlog over the in-memory store.
//
// The priority lane is a stack (push and pop at the end of the slice), the
// regular lane a queue (append at the end, dequeue from the front). The
// id-to-lane index makes membership checks O(1); removal on cancellation
// splices the lane slice, which is O(n) in the lane length. Lanes hold only
// unprocessed orders and stay short.
type Backlog struct {
	store *Store
}

// Enqueue admits an order id to the given lane.
func (b *Backlog) Enqueue(_ context.Context, id kernel.OrderID, lane services.Lane) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if held, ok := b.store.laneIndex[id]; ok {
		return fmt.Errorf("%w: order %s is in the %s lane", ErrAlreadyEnqueued, id, held)
	}

	switch lane {
	case services.LanePriority:
		b.store.priorityLane = append(b.store.priorityLane, id)
	case services.LaneRegular:
		b.store.regularLane = append(b.store.regularLane, id)
	default:
		return errs.NewValueIsInvalidErrorWithCause("lane",
			fmt.Errorf("%d is not a backlog lane", lane))
	}

	b.store.laneIndex[id] = lane
	return nil
}

// Next removes and returns the next order id to process.
// The priority lane has strict precedence: the regular lane is never
// consulted while the priority lane holds entries.
func (b *Backlog) Next(_ context.Context) (kernel.OrderID, error) {
	if n := len(b.store.priorityLane); n > 0 {
		id := b.store.priorityLane[n-1]
		b.store.priorityLane = b.store.priorityLane[:n-1]
		delete(b.store.laneIndex, id)
		return id, nil
	}

	if len(b.store.regularLane) > 0 {
		id := b.store.regularLane[0]
		b.store.regularLane = b.store.regularLane[1:]
		delete(b.store.laneIndex, id)
		return id, nil
	}

	return 0, errs.NewObjectNotFoundError("orderId", "next in backlog")
}

// Remove takes an order id out of whichever lane holds it.
// Removing an id that is in neither lane is a no-op.
func (b *Backlog) Remove(_ context.Context, id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	lane, ok := b.store.laneIndex[id]
	if !ok {
		return nil
	}

	switch lane {
	case services.LanePriority:
		b.store.priorityLane = spliceOut(b.store.priorityLane, id)
	case services.LaneRegular:
		b.store.regularLane = spliceOut(b.store.regularLane, id)
	}

	delete(b.store.laneIndex, id)
	return nil
}

// Summary returns the current lane sizes.
func (b *Backlog) Summary(_ context.Context) (ports.BacklogSummary, error) {
	return ports.BacklogSummary{
		Regular:  len(b.store.regularLane),
		Priority: len(b.store.priorityLane),
	}, nil
}

func spliceOut(lane []kernel.OrderID, id kernel.OrderID) []kernel.OrderID {
	for i, held := range lane {
		if held == id {
			return append(lane[:i], lane[i+1:]...)
		}
	}
	return lane
}
