package commands

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/errs"
)

// ErrProductNotFound is returned when a referenced product id has no catalog record.
var ErrProductNotFound = errors.New("product not found")

// RestockProductCommandHandler handles stock replenishment for a product.
type RestockProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewRestockProductCommandHandler creates a handler for restock operations.
func NewRestockProductCommandHandler(uowFactory ProductUoWFactory) RestockProductCommandHandler {
	return RestockProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the restock delta to the product's stock level.
// Returns ErrProductNotFound when the product does not exist.
func (h RestockProductCommandHandler) Handle(ctx context.Context, cmd RestockProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	p, err := productRepo.Get(ctx, cmd.ProductID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}

	if err = p.AdjustStock(cmd.Quantity()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
