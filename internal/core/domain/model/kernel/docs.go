// Package kernel provides core domain primitives for the document-service marketplace.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation, comparison,
//     and deterministic derivation (used for idempotent order materialization)
//   - City: A value object naming the city an order is fulfilled in
//   - ServiceCategory: A value object for the administrative body type an order
//     is routed through (municipal office, sub-prefecture, judicial)
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
