package memstore

import (
	"context"
	"errors"

	"fulfillment/internal/core/ports"
)

// ErrNoActiveUnitOfWork is returned when Commit is called outside an active
// unit of work.
var ErrNoActiveUnitOfWork = errors.New("no active unit of work")

// UnitOfWorkFactory creates UnitOfWork instances bound to one store.
// Each business operation gets a fresh unit of work instance.
//
// Example:
//
//	store := memstore.NewStore()
//	factory := memstore.NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//	// repository operations...
//	return uow.Commit(ctx)
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for unit of work instances over store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork ready for one business operation.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements the transaction boundary over the in-memory store.
// Begin acquires the store-wide lock; Commit and Rollback release it. Since
// repositories return copies and write back only on Update, a handler that
// returns before its Update calls leaves the store untouched, so Rollback
// does not need an undo log.
type UnitOfWork struct {
	store  *Store
	active bool
}

// Begin enters the store's critical section.
// Multiple calls to Begin on the same instance are safe; only the first locks.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()
	uow.active = true
	return nil
}

// Commit finalizes the operation and leaves the critical section.
// Returns ErrNoActiveUnitOfWork when Begin was not called.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveUnitOfWork
	}

	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// Rollback abandons the operation and leaves the critical section.
// Rolling back an inactive (never begun or already committed) unit of work is
// a no-op, so handlers can unconditionally defer it.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}

	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// CustomerRepository returns the customer repository bound to this unit of work.
func (uow *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &CustomerRepository{store: uow.store}
}

// ProductRepository returns the product repository bound to this unit of work.
func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return &ProductRepository{store: uow.store}
}

// OrderRepository returns the order ledger repository bound to this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: uow.store}
}

// HistoryRepository returns the history log bound to this unit of work.
func (uow *UnitOfWork) HistoryRepository() ports.HistoryRepository {
	return &HistoryRepository{store: uow.store}
}

// Backlog returns the dual-lane backlog bound to this unit of work.
func (uow *UnitOfWork) Backlog() ports.Backlog {
	return &Backlog{store: uow.store}
}
