package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderNotFound is returned when the requested order has no ledger record.
var ErrOrderNotFound = errors.New("order not found")

// GetOrderQueryHandler reads one order from the ledger.
type GetOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

// Handle returns the order as a response model.
// Returns ErrOrderNotFound when no record exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetOrderQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return GetOrderQueryResponse{}, ErrOrderNotFound
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
		})
	}

	return GetOrderQueryResponse{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Items:      items,
		Status:     o.Status().String(),
		CreatedAt:  o.CreatedAt(),
	}, nil
}
