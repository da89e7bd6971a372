// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence and transactional event staging.
package commands

import (
	"context"

	"efood/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// OutboxRepoFactory provides access to the outbox repository within a
	// transaction, so staged events commit atomically with state changes.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// RestaurantRepoFactory provides access to the restaurant reference
	// repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Every order transition stages events, so the outbox rides along.
	// Placement additionally resolves the restaurant reference.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		OutboxRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// MarketplaceUoW manages transactions that touch both the order and the
	// driver aggregate: acceptance, ignoring and delivery completion.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   driverRepo := uow.DriverRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	MarketplaceUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		OutboxRepoFactory
	}

	// MarketplaceUoWFactory creates new marketplace unit of work instances.
	MarketplaceUoWFactory interface {
		Create() MarketplaceUoW
	}
)
