// Package queries contains read operations for the query side of the CQRS
// architecture. Query handlers never modify state: they read under a
// unit-of-work critical section and return response models shaped for
// presentation rather than domain aggregates.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order by identifier.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.OrderID) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// OrderItemResponse represents one order line in query responses.
type OrderItemResponse struct {
	ProductID kernel.ProductID
	Quantity  int64
}

// GetOrderQueryResponse represents one order for presentation.
type GetOrderQueryResponse struct {
	ID         kernel.OrderID
	CustomerID kernel.CustomerID
	Items      []OrderItemResponse
	Status     string
	CreatedAt  time.Time
}
