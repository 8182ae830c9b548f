package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves the recorded status transitions of one order,
// in chronological order.
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for an order's status history.
func NewGetOrderHistoryQuery(orderID kernel.OrderID) (GetOrderHistoryQuery, error) {
	q := GetOrderHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose history is requested.
func (q GetOrderHistoryQuery) OrderID() kernel.OrderID {
	return q.orderID
}

func (q *GetOrderHistoryQuery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderHistoryQueryResponse represents one recorded status transition.
type GetOrderHistoryQueryResponse struct {
	OrderID   kernel.OrderID
	Status    string
	Timestamp time.Time
}
