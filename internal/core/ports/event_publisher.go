package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderStatusChanged describes one order status transition for downstream
// consumers (notifications, analytics). It mirrors a history entry.
type OrderStatusChanged struct {
	OrderID    kernel.OrderID
	Status     order.Status
	OccurredAt time.Time
}

// EventPublisher defines the contract for emitting order status events to an
// external broker. Implementations may be disabled; publishing is best effort
// and never affects the outcome of the operation that produced the event.
type EventPublisher interface {
	// PublishStatusChanged emits one status-transition event.
	PublishStatusChanged(ctx context.Context, event OrderStatusChanged) error

	// Close releases broker resources.
	Close() error
}
