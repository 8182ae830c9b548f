package commands

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrRegisterProductCommandIsNotConstructed = errors.New(
		"RegisterProductCommand must be created via NewRegisterProductCommand constructor",
	)
	ErrPriceIsInvalid = errors.New("price must not be negative")
	ErrStockIsInvalid = errors.New("initial stock must not be negative")
)

// RegisterProductCommand represents a request to register a new product in
// the catalog with a price and an initial stock level.
//
// Example:
//
//	price := decimal.RequireFromString("999.99")
//	cmd, err := NewRegisterProductCommand("Laptop", price, 5)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewRegisterProductCommandHandler(uowFactory)
//	productID, err := handler.Handle(ctx, cmd)
type RegisterProductCommand struct { //nolint:recvcheck //using for validation
	name  string
	price decimal.Decimal
	stock int64

	guard guard.ConstructorGuard
}

// NewRegisterProductCommand creates a command to register a product.
// Validates that the name is non-empty and that price and initial stock
// are non-negative.
func NewRegisterProductCommand(name string, price decimal.Decimal, stock int64) (RegisterProductCommand, error) {
	cmd := RegisterProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStock(stock),
	); err != nil {
		return RegisterProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterProductCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProductCommandIsNotConstructed)
}

// Name returns the product display name.
func (c RegisterProductCommand) Name() string {
	return c.name
}

// Price returns the unit price.
func (c RegisterProductCommand) Price() decimal.Decimal {
	return c.price
}

// Stock returns the initial stock level.
func (c RegisterProductCommand) Stock() int64 {
	return c.stock
}

func (c *RegisterProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterProductCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: %s", ErrPriceIsInvalid, price)
	}

	c.price = price
	return nil
}

func (c *RegisterProductCommand) setStock(stock int64) error {
	if stock < 0 {
		return fmt.Errorf("%w: %d", ErrStockIsInvalid, stock)
	}

	c.stock = stock
	return nil
}
