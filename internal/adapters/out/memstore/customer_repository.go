package memstore

import (
	"context"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// CustomerRepository implements ports.CustomerRepository over the in-memory store.
// Stored entities are copied on the way in and out: callers mutate their own
// copy and make changes visible with Update.
type CustomerRepository struct {
	store *Store
}

// Add stores a new customer record.
func (r *CustomerRepository) Add(_ context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	clone := *c
	r.store.customers[c.ID()] = &clone
	return nil
}

// Update overwrites an existing customer record.
func (r *CustomerRepository) Update(_ context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if _, ok := r.store.customers[c.ID()]; !ok {
		return errs.NewObjectNotFoundError("customerId", c.ID().String())
	}

	clone := *c
	r.store.customers[c.ID()] = &clone
	return nil
}

// Get retrieves a copy of a customer record by identifier.
func (r *CustomerRepository) Get(_ context.Context, id kernel.CustomerID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	c, ok := r.store.customers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customerId", id.String())
	}

	clone := *c
	return &clone, nil
}

// NextID issues the next customer identifier.
func (r *CustomerRepository) NextID(_ context.Context) (kernel.CustomerID, error) {
	return kernel.CustomerID(r.store.customerSeq.Next()), nil
}
