// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// LocationLogRepoFactory provides access to the location trail within a transaction.
	LocationLogRepoFactory interface {
		LocationLogRepository() ports.LocationLogRepository
	}

	// EventRepoFactory provides access to the event log within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// UoW manages transactions across orders, couriers, the location trail
	// and the event log.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... mutate, append events
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
		LocationLogRepoFactory
		EventRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

// noopNotifier is used when a handler is built without an AppendNotifier.
type noopNotifier struct{}

func (noopNotifier) Notify() {}

func notifierOrNoop(n ports.AppendNotifier) ports.AppendNotifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}
