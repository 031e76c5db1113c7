// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orderlifecycle/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
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

	// AuditRepoFactory provides access to the audit log within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// LifecycleContextRepoFactory provides access to lifecycle contexts within a transaction.
	LifecycleContextRepoFactory interface {
		LifecycleContextRepository() ports.LifecycleContextRepository
	}

	// DeliveryMappingRepoFactory provides access to delivery mappings within a transaction.
	DeliveryMappingRepoFactory interface {
		DeliveryMappingRepository() ports.DeliveryMappingRepository
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

	// LifecycleUoW spans everything one accepted transition writes:
	// the order row, its audit entry and its lifecycle context.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   // ... advance o
	//   err = uow.OrderRepository().Update(ctx, o)
	//   err = uow.AuditRepository().Append(ctx, entry)
	//   err = uow.LifecycleContextRepository().Save(ctx, lc)
	//
	//   err = uow.Commit(ctx)
	LifecycleUoW interface {
		TxManager
		OrderRepoFactory
		AuditRepoFactory
		LifecycleContextRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// AssignmentUoW manages transactions that attach delivery agents to orders.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryMappingRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// UoW manages transactions across every aggregate.
	UoW interface {
		TxManager
		OrderRepoFactory
		AuditRepoFactory
		LifecycleContextRepoFactory
		DeliveryMappingRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
