package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRestockProductCommandIsNotConstructed = errors.New(
		"RestockProductCommand must be created via NewRestockProductCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// RestockProductCommand represents a request to add stock to an existing
// product. Restock deltas are always positive; stock consumption happens only
// through order creation.
type RestockProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.ProductID
	quantity  int64

	guard guard.ConstructorGuard
}

// NewRestockProductCommand creates a command to restock a product.
// Validates that the product id is valid and the quantity is positive.
func NewRestockProductCommand(productID kernel.ProductID, quantity int64) (RestockProductCommand, error) {
	cmd := RestockProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return RestockProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockProductCommand) Validate() error {
	return c.guard.Validate(ErrRestockProductCommandIsNotConstructed)
}

// ProductID returns the product to restock.
func (c RestockProductCommand) ProductID() kernel.ProductID {
	return c.productID
}

// Quantity returns the number of units to add.
func (c RestockProductCommand) Quantity() int64 {
	return c.quantity
}

func (c *RestockProductCommand) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *RestockProductCommand) setQuantity(quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrQuantityIsInvalid, quantity)
	}

	c.quantity = quantity
	return nil
}
