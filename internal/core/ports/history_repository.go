package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// HistoryRepository defines the contract for the append-only status history log.
// Entries are never mutated or deleted after being appended.
type HistoryRepository interface {
	// Append records one status transition. Appending never fails under
	// normal operation; an error indicates an invalid entry.
	Append(ctx context.Context, entry order.HistoryEntry) error

	// ListByOrder returns the entries recorded for an order, in append
	// (chronological) order. Querying never mutates the log; an order
	// with no entries yields an empty slice.
	ListByOrder(ctx context.Context, id kernel.OrderID) ([]order.HistoryEntry, error)
}
