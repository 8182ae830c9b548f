package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// RegisterProductCommandHandler handles the business logic for product
// registration: issuing the next product identifier and storing the record.
type RegisterProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewRegisterProductCommandHandler creates a handler for product registration.
func NewRegisterProductCommandHandler(uowFactory ProductUoWFactory) RegisterProductCommandHandler {
	return RegisterProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the issued identifier.
func (h RegisterProductCommandHandler) Handle(ctx context.Context, cmd RegisterProductCommand) (kernel.ProductID, error) {
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

	productRepo := uow.ProductRepository()
	id, err := productRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	p, err := product.NewProduct(id, cmd.Name(), cmd.Price(), cmd.Stock())
	if err != nil {
		return 0, err
	}

	if err = productRepo.Add(ctx, p); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
