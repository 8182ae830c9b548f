package memstore

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// HistoryRepository implements ports.HistoryRepository over the in-memory store.
// The log is a single append-only slice shared by all orders; per-order queries
// filter it in append order, so the chronological order of entries is the
// append order.
type HistoryRepository struct {
	store *Store
}

// Append records one status transition.
func (r *HistoryRepository) Append(_ context.Context, entry order.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	r.store.history = append(r.store.history, entry)
	return nil
}

// ListByOrder returns the entries recorded for an order, oldest first.
func (r *HistoryRepository) ListByOrder(_ context.Context, id kernel.OrderID) ([]order.HistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	entries := make([]order.HistoryEntry, 0)
	for _, entry := range r.store.history {
		if entry.OrderID() == id {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
