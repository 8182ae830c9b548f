package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrCustomerNotFound is returned when a referenced customer id has no record.
var ErrCustomerNotFound = errors.New("customer not found")

// CreateOrderCommandHandler handles order placement: stock reservation,
// ledger admission, backlog routing, loyalty accrual, and the pending
// history entry, all inside one unit of work.
type CreateOrderCommandHandler struct {
	uowFactory     UoWFactory
	inventoryGuard services.InventoryGuard
	backlogRouter  services.BacklogRouter
	eventPublisher ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	eventPublisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		inventoryGuard: services.NewInventoryGuard(),
		backlogRouter:  services.NewBacklogRouter(),
		eventPublisher: eventPublisher,
	}
}

// Handle places an order and returns the issued order identifier.
//
// Returns:
//   - ErrCustomerNotFound when the customer does not exist
//   - ErrProductNotFound when any requested product does not exist
//   - product.ErrInsufficientStock when stock cannot cover the request;
//     in that case nothing was reserved and no order was recorded
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderID, error) {
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
	productRepo := uow.ProductRepository()
	orderRepo := uow.OrderRepository()

	c, err := customerRepo.Get(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return 0, ErrCustomerNotFound
	}
	if err != nil {
		return 0, err
	}

	items := cmd.Items()
	products, err := productRepo.GetMany(ctx, productIDs(items))
	if errors.Is(err, errs.ErrObjectNotFound) {
		return 0, ErrProductNotFound
	}
	if err != nil {
		return 0, err
	}

	// All-or-nothing: on any reservation failure no stock has changed and
	// the unit of work is rolled back without writes.
	if err = h.inventoryGuard.Reserve(products, items); err != nil {
		return 0, err
	}

	total, err := h.inventoryGuard.OrderTotal(products, items)
	if err != nil {
		return 0, err
	}

	orderID, err := orderRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	o, err := order.NewOrder(orderID, c.ID(), items, now)
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return 0, err
	}

	lane, err := h.backlogRouter.Route(c)
	if err != nil {
		return 0, err
	}

	if err = uow.Backlog().Enqueue(ctx, orderID, lane); err != nil {
		return 0, err
	}

	entry, err := order.NewHistoryEntry(orderID, o.Status(), now)
	if err != nil {
		return 0, err
	}
	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return 0, err
	}

	for _, p := range products {
		if err = productRepo.Update(ctx, p); err != nil {
			return 0, err
		}
	}

	if err = c.AddLoyaltyPoints(total.Floor().IntPart()); err != nil {
		return 0, err
	}
	if err = customerRepo.Update(ctx, c); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	// Best effort: the publisher reports its own failures.
	_ = h.eventPublisher.PublishStatusChanged(ctx, ports.OrderStatusChanged{
		OrderID:    orderID,
		Status:     o.Status(),
		OccurredAt: now,
	})

	return orderID, nil
}

func productIDs(items []order.Item) []kernel.ProductID {
	ids := make([]kernel.ProductID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID())
	}
	return ids
}
