// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fulfillment system. It implements
// business logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - InventoryGuard: All-or-nothing stock reservation and release across the
//     products of an order
//   - BacklogRouter: Lane-admission policy mapping customer loyalty tier to a
//     backlog lane
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
