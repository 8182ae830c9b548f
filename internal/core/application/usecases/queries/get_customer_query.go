package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery retrieves one customer by identifier.
type GetCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.CustomerID

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query for a single customer.
func NewGetCustomerQuery(customerID kernel.CustomerID) (GetCustomerQuery, error) {
	q := GetCustomerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCustomerID(customerID); err != nil {
		return GetCustomerQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the requested customer identifier.
func (q GetCustomerQuery) CustomerID() kernel.CustomerID {
	return q.customerID
}

func (q *GetCustomerQuery) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

// GetCustomerQueryResponse represents one customer for presentation,
// including the loyalty standing that decides backlog routing.
type GetCustomerQueryResponse struct {
	ID            kernel.CustomerID
	Name          string
	LoyaltyPoints int64
	IsPriority    bool
}
