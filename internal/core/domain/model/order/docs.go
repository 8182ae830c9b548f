// Package order provides domain entities and business logic for order
// management in the fulfillment system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Item: An immutable order line referencing a product and a positive quantity
//   - HistoryEntry: An immutable status snapshot for the append-only history log
//
// Key business rules:
//   - Orders must have a valid identifier, customer reference, and at least one item
//   - Order status follows a defined workflow: pending -> processing -> completed
//   - Orders can be cancelled while pending or processing; terminal orders cannot
//   - Orders are never deleted from the ledger
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
