package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order cancellation: the status
// transition, full stock restoration, backlog removal, and the cancelled
// history entry, all inside one unit of work.
type CancelOrderCommandHandler struct {
	uowFactory     UoWFactory
	inventoryGuard services.InventoryGuard
	eventPublisher ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	eventPublisher ports.EventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:     uowFactory,
		inventoryGuard: services.NewInventoryGuard(),
		eventPublisher: eventPublisher,
	}
}

// Handle cancels the order and restores the reserved stock in full.
// Loyalty points accrued at placement are kept.
//
// Returns:
//   - ErrOrderNotFound when the order does not exist
//   - order.ErrInvalidTransition when the order is already completed or
//     cancelled; in that case nothing changes
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	items := o.Items()
	products, err := productRepo.GetMany(ctx, productIDs(items))
	if err != nil {
		return err
	}

	if err = h.inventoryGuard.Release(products, items); err != nil {
		return err
	}
	for _, p := range products {
		if err = productRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = uow.Backlog().Remove(ctx, o.ID()); err != nil {
		return err
	}

	now := time.Now()
	entry, err := order.NewHistoryEntry(o.ID(), o.Status(), now)
	if err != nil {
		return err
	}
	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort: the publisher reports its own failures.
	_ = h.eventPublisher.PublishStatusChanged(ctx, ports.OrderStatusChanged{
		OrderID:    o.ID(),
		Status:     o.Status(),
		OccurredAt: now,
	})

	return nil
}
