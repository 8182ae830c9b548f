// Package customer provides the Customer entity of the catalog.
// Customers accumulate loyalty points through completed order creation;
// the loyalty balance determines backlog lane admission.
package customer

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not created
	// through the NewCustomer factory method.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrLoyaltyPointsDecrease is returned when an award would reduce the loyalty
	// balance. Loyalty points only ever increase.
	ErrLoyaltyPointsDecrease = errors.New("loyalty points can only increase")
)

// PriorityThreshold is the loyalty balance at which a customer's orders are
// admitted to the priority lane of the backlog.
const PriorityThreshold = 100

// Customer represents a registered customer in the catalog.
//
// Customer follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name
//   - Loyalty points are never negative and only ever increase
//   - Can only be created through NewCustomer
type Customer struct {
	id            kernel.CustomerID
	name          string
	loyaltyPoints int64

	isConstructed bool
}

// NewCustomer creates a new Customer with a zero loyalty balance.
//
// Parameters:
//   - id: Unique identifier issued by the catalog (must be valid)
//   - name: Customer display name (must be non-empty)
//
// Returns the created customer, or a validation error if any parameter is invalid.
func NewCustomer(id kernel.CustomerID, name string) (*Customer, error) {
	c := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer instance was properly constructed through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.CustomerID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// LoyaltyPoints returns the current loyalty balance.
func (c *Customer) LoyaltyPoints() int64 {
	return c.loyaltyPoints
}

// IsPriority reports whether the customer's orders are admitted to the
// priority lane (loyalty balance at or above PriorityThreshold).
func (c *Customer) IsPriority() bool {
	return c.loyaltyPoints >= PriorityThreshold
}

// AddLoyaltyPoints increases the loyalty balance by the given award.
// The award must be non-negative; the balance never decreases.
func (c *Customer) AddLoyaltyPoints(points int64) error {
	if points < 0 {
		return ErrLoyaltyPointsDecrease
	}

	c.loyaltyPoints += points
	return nil
}

func (c *Customer) setID(id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

// RestoreCustomer rebuilds a customer from stored state with a pre-existing
// loyalty balance. Registration always starts at zero; this exists for storage
// adapters and tests that seed an established customer.
func RestoreCustomer(id kernel.CustomerID, name string, loyaltyPoints int64) (*Customer, error) {
	c, err := NewCustomer(id, name)
	if err != nil {
		return nil, err
	}

	if loyaltyPoints < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("loyaltyPoints",
			fmt.Errorf("%d is negative", loyaltyPoints))
	}
	c.loyaltyPoints = loyaltyPoints
	return c, nil
}
