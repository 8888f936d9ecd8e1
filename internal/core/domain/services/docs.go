// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch system. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DelegateDispatcher: A domain service for picking and assigning delegates to orders
//   - EarningsCalculator: A domain service computing the delegate payout for an order
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
