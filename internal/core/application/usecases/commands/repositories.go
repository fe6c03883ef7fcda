// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pharmacy/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the narrowest interface covering the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MedicineRepoFactory provides access to the medicine repository within a transaction.
	MedicineRepoFactory interface {
		MedicineRepository() ports.MedicineRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// MedicineUoW manages transactions for medicine-only operations,
	// including the catalog reads cart mutations make.
	MedicineUoW interface {
		TxManager
		MedicineRepoFactory
	}

	// MedicineUoWFactory creates new medicine unit of work instances.
	MedicineUoWFactory interface {
		Create() MedicineUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages transactions spanning stock and orders. Checkout
	// and cancellation use it: stock reservation or release and the order
	// write must commit or roll back together.
	CheckoutUoW interface {
		TxManager
		MedicineRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// FulfillmentUoW manages transactions spanning orders and accounts.
	// Fulfiller assignment uses it to verify the assignee's role and write
	// the order in one transaction.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		AccountRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
