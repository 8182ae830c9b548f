package memstore

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over the in-memory store.
// The ledger only grows: orders are added and updated, never removed, so the
// full lifecycle of every order stays reconstructible from the history log.
type OrderRepository struct {
	store *Store
}

// Add stores a new order in the ledger.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	clone := *aggregate
	r.store.orders[aggregate.ID()] = &clone
	return nil
}

// Update persists a status change to an existing order.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, ok := r.store.orders[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	clone := *aggregate
	r.store.orders[aggregate.ID()] = &clone
	return nil
}

// Get retrieves a copy of an order by identifier.
func (r *OrderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	o, ok := r.store.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}

	clone := *o
	return &clone, nil
}

// NextID issues the next order identifier.
func (r *OrderRepository) NextID(_ context.Context) (kernel.OrderID, error) {
	return kernel.OrderID(r.store.orderSeq.Next()), nil
}
