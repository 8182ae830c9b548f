package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry instance was
// not created through the NewHistoryEntry factory method.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry constructor")

// HistoryEntry is an immutable snapshot of an order's status at transition
// time. Entries are appended to the history log once and never mutated or
// deleted; the per-order sequence of entries, ordered by occurrence, is a
// valid walk of the lifecycle state machine starting at Pending.
type HistoryEntry struct {
	orderID   kernel.OrderID
	status    Status
	timestamp time.Time

	guard guard.ConstructorGuard
}

// NewHistoryEntry creates a history entry recording that an order reached a
// status at the given time.
func NewHistoryEntry(orderID kernel.OrderID, status Status, timestamp time.Time) (HistoryEntry, error) {
	entry := HistoryEntry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setOrderID(orderID),
		entry.setStatus(status),
	); err != nil {
		return HistoryEntry{}, err
	}

	entry.timestamp = timestamp
	return entry, nil
}

// Validate ensures the entry was created through the constructor.
func (e HistoryEntry) Validate() error {
	return e.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

// OrderID returns the identifier of the order the entry belongs to.
func (e HistoryEntry) OrderID() kernel.OrderID {
	return e.orderID
}

// Status returns the status snapshot recorded by the entry.
func (e HistoryEntry) Status() Status {
	return e.status
}

// Timestamp returns when the transition occurred.
func (e HistoryEntry) Timestamp() time.Time {
	return e.timestamp
}

func (e *HistoryEntry) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

func (e *HistoryEntry) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}
