package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable order line: a product reference and a positive quantity.
// Items are embedded in an Order in insertion order; the order of lines is
// irrelevant for processing but preserved for display.
type Item struct {
	productID kernel.ProductID
	quantity  int64

	guard guard.ConstructorGuard
}

// NewItem creates an order line for quantity units of a product.
// The product id must be valid and the quantity strictly positive.
func NewItem(productID kernel.ProductID, quantity int64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.ProductID {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int64 {
	return i.quantity
}

func (i *Item) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
