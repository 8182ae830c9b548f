package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrCustomerNotFound is returned when the requested customer has no record.
var ErrCustomerNotFound = errors.New("customer not found")

// GetCustomerQueryHandler reads one customer from the catalog.
type GetCustomerQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetCustomerQueryHandler creates a handler for single-customer lookups.
func NewGetCustomerQueryHandler(uowFactory ports.UnitOfWorkFactory) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{uowFactory: uowFactory}
}

// Handle returns the customer as a response model.
// Returns ErrCustomerNotFound when no record exists.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuery,
) (GetCustomerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetCustomerQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CustomerRepository().Get(ctx, query.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return GetCustomerQueryResponse{}, ErrCustomerNotFound
	}
	if err != nil {
		return GetCustomerQueryResponse{}, err
	}

	return GetCustomerQueryResponse{
		ID:            c.ID(),
		Name:          c.Name(),
		LoyaltyPoints: c.LoyaltyPoints(),
		IsPriority:    c.IsPriority(),
	}, nil
}
