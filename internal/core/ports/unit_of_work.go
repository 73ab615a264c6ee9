package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Between Begin and Commit or Rollback the caller has exclusive access to the
// store; changes become visible to others only on Commit.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit publishes the changes made since Begin.
	// Returns error if no active transaction.
	Commit(ctx context.Context) error

	// Rollback discards the changes made since Begin.
	// Returns error if no active transaction.
	Rollback(ctx context.Context) error

	// DishRepository returns the dish collection bound to the current transaction.
	DishRepository() DishRepository

	// OrderRepository returns the order collection bound to the current transaction.
	OrderRepository() OrderRepository
}
