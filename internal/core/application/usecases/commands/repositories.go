// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"docdispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InvoiceRepoFactory provides access to invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// DelegateRepoFactory provides access to delegate repository within a transaction.
	DelegateRepoFactory interface {
		DelegateRepository() ports.DelegateRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// InvoiceUoW manages transactions for invoice-only operations.
	// Used when commands only modify invoice aggregates.
	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
	}

	// InvoiceUoWFactory creates new invoice unit of work instances.
	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}

	// DelegateUoW manages transactions for delegate-only operations.
	// Used when commands only modify delegate aggregates.
	DelegateUoW interface {
		TxManager
		DelegateRepoFactory
	}

	// DelegateUoWFactory creates new delegate unit of work instances.
	DelegateUoWFactory interface {
		Create() DelegateUoW
	}

	// DispatchUoW manages transactions across order and delegate aggregates.
	// Used by the dispatch engine and by completion bookkeeping, which touch
	// both in one transaction.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		DelegateRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// PaymentUoW manages transactions across invoice, order, and delegate
	// aggregates. Used by the payment-to-order conversion, which materializes
	// the order, dispatches it, and stamps the invoice in one flow.
	PaymentUoW interface {
		TxManager
		InvoiceRepoFactory
		OrderRepoFactory
		DelegateRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
