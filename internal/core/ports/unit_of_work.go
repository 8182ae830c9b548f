package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the store.
// Begin acquires the store-wide critical section; every coordinator operation
// runs under exactly one of these sections, so sub-steps of different
// operations never interleave. Client code must explicitly manage the
// lifecycle: Begin, then Commit or Rollback.
type UnitOfWork interface {
	// Begin enters the store's critical section.
	Begin(ctx context.Context) error

	// Commit finalizes the operation and leaves the critical section.
	// Returns an error if no operation is active.
	Commit(ctx context.Context) error

	// Rollback abandons the operation and leaves the critical section.
	// Safe to defer after a Commit; rolling back a committed or inactive
	// unit of work is a no-op.
	Rollback(ctx context.Context) error

	// CustomerRepository returns the customer repository bound to this unit of work.
	CustomerRepository() CustomerRepository

	// ProductRepository returns the product repository bound to this unit of work.
	ProductRepository() ProductRepository

	// OrderRepository returns the order ledger repository bound to this unit of work.
	OrderRepository() OrderRepository

	// HistoryRepository returns the history log bound to this unit of work.
	HistoryRepository() HistoryRepository

	// Backlog returns the dual-lane backlog bound to this unit of work.
	Backlog() Backlog
}
