package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Identifiers in the catalog and ledger are small monotonic integers assigned
// per entity type, starting at 1 and never reused. Each identifier kind gets
// its own type so a CustomerID cannot be passed where an OrderID is expected.
//
// The zero value of every identifier type is invalid; identifiers are issued
// by a Sequence or parsed from external input and validated before use.

// CustomerID identifies a customer record in the catalog.
type CustomerID int64

// ProductID identifies a product record in the catalog.
type ProductID int64

// OrderID identifies an order in the ledger.
type OrderID int64

// Validate checks that the identifier holds an issued value (>= 1).
func (id CustomerID) Validate() error {
	return validateID("customerId", int64(id))
}

// String returns the decimal representation of the identifier.
func (id CustomerID) String() string {
	return fmt.Sprintf("%d", int64(id))
}

// Validate checks that the identifier holds an issued value (>= 1).
func (id ProductID) Validate() error {
	return validateID("productId", int64(id))
}

// String returns the decimal representation of the identifier.
func (id ProductID) String() string {
	return fmt.Sprintf("%d", int64(id))
}

// Validate checks that the identifier holds an issued value (>= 1).
func (id OrderID) Validate() error {
	return validateID("orderId", int64(id))
}

// String returns the decimal representation of the identifier.
func (id OrderID) String() string {
	return fmt.Sprintf("%d", int64(id))
}

func validateID(paramName string, v int64) error {
	if v < 1 {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%d is not a positive identifier", v))
	}
	return nil
}

// Sequence issues monotonically increasing identifiers starting at 1.
// Each entity type owns its own Sequence; issued values are never reused,
// including after cancellations.
//
// Sequence is not safe for concurrent use on its own; the store serializes
// access to it under its unit-of-work lock.
type Sequence struct {
	last int64
}

// Next issues the next identifier in the sequence.
func (s *Sequence) Next() int64 {
	s.last++
	return s.last
}

// Current returns the most recently issued identifier, or 0 when nothing
// has been issued yet.
func (s *Sequence) Current() int64 {
	return s.last
}
