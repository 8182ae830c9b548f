package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
)

// RegisterCustomerCommandHandler handles the business logic for customer
// registration: issuing the next customer identifier and storing the record.
//
// Example:
//
//	handler := NewRegisterCustomerCommandHandler(uowFactory)
//	cmd, _ := NewRegisterCustomerCommand("Alice")
//	customerID, err := handler.Handle(ctx, cmd)
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the issued identifier.
func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) (kernel.CustomerID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	id, err := customerRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	c, err := customer.NewCustomer(id, cmd.Name())
	if err != nil {
		return 0, err
	}

	if err = customerRepo.Add(ctx, c); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
