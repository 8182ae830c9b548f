package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place an order for a customer.
// The item lines are validated value objects; duplicate product lines are
// allowed and are summed during stock reservation.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.CustomerID
	items      []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// Requires a valid customer id and at least one item line.
func NewCreateOrderCommand(customerID kernel.CustomerID, items []order.Item) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

// Items returns a copy of the requested item lines.
func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}
