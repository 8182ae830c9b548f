package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// GetOrderHistoryQueryHandler reads the append-only history log for one order.
type GetOrderHistoryQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetOrderHistoryQueryHandler creates a handler for order history lookups.
func NewGetOrderHistoryQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{uowFactory: uowFactory}
}

// Handle returns the order's transitions in the order they were recorded.
// The order must exist; its history always holds at least the pending entry.
// Returns ErrOrderNotFound when the order has no ledger record.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, query.OrderID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	entries, err := uow.HistoryRepository().ListByOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	history := make([]GetOrderHistoryQueryResponse, 0, len(entries))
	for _, entry := range entries {
		history = append(history, GetOrderHistoryQueryResponse{
			OrderID:   entry.OrderID(),
			Status:    entry.Status().String(),
			Timestamp: entry.Timestamp(),
		})
	}

	return history, nil
}
