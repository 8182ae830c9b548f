// Package memstore provides the in-memory implementation of the fulfillment
// store: catalog records, the order ledger, the append-only history log, and
// the dual-lane backlog, together with a Unit of Work that serializes
// coordinator operations.
//
// The engine has no persistence layer; all state lives in one Store instance.
// Multiple independent Store instances can coexist, so tests construct their
// own isolated stores.
//
// Concurrency model: sub-steps of a coordinator operation are not
// independently safe (a reservation check must not interleave with another
// order's commit on the same product), so the Unit of Work takes one
// store-wide lock per operation. Begin enters the critical section,
// Commit/Rollback leave it. Repositories hand out copies of stored entities;
// mutations become visible only through Update, which keeps a failed
// operation from leaving partial state behind.
package memstore

import (
	"sync"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/services"
)

// Store holds all fulfillment state: customer and product records, the order
// ledger, the history log, and the two backlog lanes. Create one per engine
// instance via NewStore and access it through its UnitOfWorkFactory.
type Store struct {
	mu sync.Mutex

	customers   map[kernel.CustomerID]*customer.Customer
	customerSeq kernel.Sequence

	products   map[kernel.ProductID]*product.Product
	productSeq kernel.Sequence

	orders   map[kernel.OrderID]*order.Order
	orderSeq kernel.Sequence

	history []order.HistoryEntry

	// priorityLane is a stack: the top (most recently pushed) element sits
	// at the end of the slice. regularLane is a queue: the head (first
	// appended) element sits at index 0. laneIndex tracks which lane holds
	// an order id, keeping the one-lane-at-a-time invariant checkable in O(1).
	priorityLane []kernel.OrderID
	regularLane  []kernel.OrderID
	laneIndex    map[kernel.OrderID]services.Lane
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		customers: make(map[kernel.CustomerID]*customer.Customer),
		products:  make(map[kernel.ProductID]*product.Product),
		orders:    make(map[kernel.OrderID]*order.Order),
		laneIndex: make(map[kernel.OrderID]services.Lane),
	}
}
