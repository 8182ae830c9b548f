// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, a unit-of-work critical
// section, and validate-before-mutate ordering so no partial state is observable.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide the transaction boundary for command handlers.
// These abstractions ensure consistency across aggregate boundaries.
type (
	// TxManager handles the unit-of-work lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CustomerRepoFactory provides access to the customer repository within a unit of work.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// ProductRepoFactory provides access to the product repository within a unit of work.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order ledger within a unit of work.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// HistoryRepoFactory provides access to the history log within a unit of work.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// BacklogFactory provides access to the dual-lane backlog within a unit of work.
	BacklogFactory interface {
		Backlog() ports.Backlog
	}

	// CustomerUoW manages operations that touch only customer records.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// ProductUoW manages operations that touch only product records.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// UoW manages operations that span the catalog, the ledger, the backlog,
	// and the history log. Used by the fulfillment commands, whose sub-steps
	// must appear atomic to callers.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() {
	//       _ = uow.Rollback(ctx)
	//   }()
	//   // ... validate, then mutate
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		CustomerRepoFactory
		ProductRepoFactory
		OrderRepoFactory
		HistoryRepoFactory
		BacklogFactory
	}

	// UoWFactory creates new unit of work instances for fulfillment operations.
	UoWFactory interface {
		Create() UoW
	}
)
