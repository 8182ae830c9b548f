package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a customer order in the ledger. It is the aggregate root
// that manages the order lifecycle from creation through processing to a
// terminal status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Must carry at least one item; items are immutable after creation
//   - Status transitions follow the lifecycle state machine (see Status)
//   - Orders are never deleted; terminal orders stay in the ledger
//   - Can only be created through NewOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.OrderID

	// customerID references the ordering customer
	customerID kernel.CustomerID

	// items are the order lines, in insertion order
	items []Item

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is when the order was accepted
	createdAt time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order in Pending status.
//
// Parameters:
//   - id: Unique identifier issued by the ledger (must be valid)
//   - customerID: The ordering customer (must be valid)
//   - items: Order lines (at least one, each constructed via NewItem)
//   - createdAt: Acceptance timestamp
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(id kernel.OrderID, customerID kernel.CustomerID, items []Item, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.CustomerID {
	return o.customerID
}

// Items returns the order lines in insertion order.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the acceptance timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Process moves the order from Pending to Processing.
// Returns ErrInvalidTransition from any other status.
func (o *Order) Process() error {
	newStatus, err := o.status.Process()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete moves the order from Processing to Completed, a terminal status.
// Returns ErrInvalidTransition from any other status.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order from Pending or Processing to Cancelled, a terminal
// status. Returns ErrInvalidTransition when the order is already terminal.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
