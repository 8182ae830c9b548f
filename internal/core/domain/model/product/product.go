// Package product provides the Product entity of the catalog.
// A product carries a price and a stock level; the stock level is mutated only
// through AdjustStock, which guards the stock-never-negative invariant.
package product

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrInsufficientStock is returned when a stock adjustment would drive the
	// stock level below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product represents a sellable item in the catalog.
//
// Product follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Price is a non-negative decimal amount, fixed at registration
//   - Stock is never negative; every adjustment is guarded
//   - Can only be created through NewProduct
type Product struct {
	id    kernel.ProductID
	name  string
	price decimal.Decimal
	stock int64

	isConstructed bool
}

// NewProduct creates a new Product with an initial stock level.
//
// Parameters:
//   - id: Unique identifier issued by the catalog (must be valid)
//   - name: Product display name (must be non-empty)
//   - price: Unit price (must be non-negative)
//   - stock: Initial stock level (must be non-negative)
//
// Returns the created product, or a validation error if any parameter is invalid.
func NewProduct(id kernel.ProductID, name string, price decimal.Decimal, stock int64) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.ProductID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Stock returns the current stock level.
func (p *Product) Stock() int64 {
	return p.stock
}

// HasStock reports whether at least quantity units are available.
func (p *Product) HasStock(quantity int64) bool {
	return p.stock >= quantity
}

// AdjustStock applies a signed delta to the stock level.
// A positive delta restocks, a negative delta consumes. The adjustment is
// rejected with ErrInsufficientStock when it would drive stock below zero,
// on the restock path as well as on the consume path.
func (p *Product) AdjustStock(delta int64) error {
	if p.stock+delta < 0 {
		return fmt.Errorf("%w: product %s has %d, adjustment is %d",
			ErrInsufficientStock, p.id, p.stock, delta)
	}

	p.stock += delta
	return nil
}

func (p *Product) setID(id kernel.ProductID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int64) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
