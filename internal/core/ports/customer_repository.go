// Package ports defines repository and gateway interfaces for the fulfillment
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer records.
type CustomerRepository interface {
	// Add stores a new customer under a freshly issued identifier.
	// Identifiers are assigned by NextID and never reused.
	Add(ctx context.Context, c *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, c *customer.Customer) error

	// Get retrieves a customer by identifier.
	// Returns errs.ErrObjectNotFound (wrapped) when no record exists.
	Get(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error)

	// NextID issues the next customer identifier, starting at 1.
	NextID(ctx context.Context) (kernel.CustomerID, error)
}
