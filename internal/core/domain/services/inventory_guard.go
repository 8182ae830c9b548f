package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// InventoryGuard is a domain service that applies order-level stock
// reservations with all-or-nothing semantics.
//
// Key responsibilities:
//   - Checking every order line against current stock before any decrement
//   - Committing the full decrement only when every line is available
//   - Restoring stock unconditionally on cancellation
//
// Business rules:
//   - Every referenced product must exist in the supplied set
//   - Lines for the same product are summed before the availability check,
//     so a reservation can never partially commit
//   - Released quantities always restore in full
//
// Example usage:
//
//	guard := services.NewInventoryGuard()
//	err := guard.Reserve(products, items)
//	if errors.Is(err, product.ErrInsufficientStock) {
//	    // reject the order; no stock was decremented
//	}
type InventoryGuard struct{}

// NewInventoryGuard creates a new InventoryGuard instance.
func NewInventoryGuard() InventoryGuard {
	return InventoryGuard{}
}

// Reserve checks and decrements stock for every order line as one atomic step.
// The availability of all lines is verified before any product is touched; on
// any failure no stock has been decremented.
//
// Returns:
//   - errs.ErrObjectNotFound when a line references a product absent from products
//   - product.ErrInsufficientStock when the summed quantity of any product
//     exceeds its available stock
func (g InventoryGuard) Reserve(products map[kernel.ProductID]*product.Product, items []order.Item) error {
	required, err := g.requiredQuantities(products, items)
	if err != nil {
		return err
	}

	for productID, quantity := range required {
		if !products[productID].HasStock(quantity) {
			return product.ErrInsufficientStock
		}
	}

	for productID, quantity := range required {
		// Cannot fail: availability was checked above and nothing else
		// mutates the products while the store lock is held.
		if err := products[productID].AdjustStock(-quantity); err != nil {
			return err
		}
	}

	return nil
}

// Release restores the stock previously reserved for the given lines.
// Restores are unconditional; Release fails only when a line references a
// product absent from products, which cannot happen for an order that passed
// Reserve against the same catalog.
func (g InventoryGuard) Release(products map[kernel.ProductID]*product.Product, items []order.Item) error {
	required, err := g.requiredQuantities(products, items)
	if err != nil {
		return err
	}

	for productID, quantity := range required {
		if err := products[productID].AdjustStock(quantity); err != nil {
			return err
		}
	}

	return nil
}

// OrderTotal computes the order value as the sum of unit price times quantity
// over all lines, priced against the supplied products.
func (g InventoryGuard) OrderTotal(products map[kernel.ProductID]*product.Product, items []order.Item) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		p, ok := products[item.ProductID()]
		if !ok {
			return decimal.Zero, errs.NewObjectNotFoundError("productId", item.ProductID().String())
		}
		total = total.Add(p.Price().Mul(decimal.NewFromInt(item.Quantity())))
	}
	return total, nil
}

func (g InventoryGuard) requiredQuantities(products map[kernel.ProductID]*product.Product, items []order.Item) (map[kernel.ProductID]int64, error) {
	required := make(map[kernel.ProductID]int64, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, ok := products[item.ProductID()]; !ok {
			return nil, errs.NewObjectNotFoundError("productId", item.ProductID().String())
		}
		required[item.ProductID()] += item.Quantity()
	}
	return required, nil
}
