// Package kernel provides core domain primitives and utilities for the fulfillment system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - CustomerID, ProductID, OrderID: Typed identifier value objects with validation
//   - Sequence: A monotonic identifier issuer assigning ids per entity type, starting at 1
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. Identifier values are immutable;
// a Sequence is mutated only under the store's unit-of-work lock.
//
// The package follows Domain-Driven Design best practices, providing rich domain
// behavior and encapsulation of implementation details.
package kernel
