package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the order ledger.
// The ledger is the single source of truth for an order's current status;
// orders are never deleted.
type OrderRepository interface {
	// Add stores a new order under a freshly issued identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	// Returns errs.ErrObjectNotFound (wrapped) when no record exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// NextID issues the next order identifier, starting at 1.
	NextID(ctx context.Context) (kernel.OrderID, error)
}
