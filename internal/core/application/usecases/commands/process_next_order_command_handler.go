package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrBacklogEmpty is returned when both backlog lanes hold no pending orders.
var ErrBacklogEmpty = errors.New("backlog is empty")

// ErrOrderNotFound is returned when a referenced order id has no ledger record.
var ErrOrderNotFound = errors.New("order not found")

// ProcessNextOrderCommandHandler drains one order from the backlog and runs
// it through processing to completion.
type ProcessNextOrderCommandHandler struct {
	uowFactory     UoWFactory
	eventPublisher ports.EventPublisher
}

// NewProcessNextOrderCommandHandler creates a handler for backlog draining.
func NewProcessNextOrderCommandHandler(
	uowFactory UoWFactory,
	eventPublisher ports.EventPublisher,
) ProcessNextOrderCommandHandler {
	return ProcessNextOrderCommandHandler{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// Handle takes the next order id from the backlog (priority lane first),
// moves the order through processing to completed, and records one history
// entry per transition. Returns the completed order.
//
// Returns ErrBacklogEmpty when both lanes are empty.
func (h ProcessNextOrderCommandHandler) Handle(ctx context.Context, cmd ProcessNextOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderID, err := uow.Backlog().Next(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrBacklogEmpty
	}
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	historyRepo := uow.HistoryRepository()
	events := make([]ports.OrderStatusChanged, 0, 2)

	transitions := []func() error{o.Process, o.Complete}
	for _, transition := range transitions {
		if err = transition(); err != nil {
			return nil, err
		}

		now := time.Now()
		entry, err := order.NewHistoryEntry(orderID, o.Status(), now)
		if err != nil {
			return nil, err
		}
		if err = historyRepo.Append(ctx, entry); err != nil {
			return nil, err
		}

		events = append(events, ports.OrderStatusChanged{
			OrderID:    orderID,
			Status:     o.Status(),
			OccurredAt: now,
		})
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, event := range events {
		// Best effort: the publisher reports its own failures.
		_ = h.eventPublisher.PublishStatusChanged(ctx, event)
	}

	return o, nil
}
