// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read committed records only and never take the write lock.
package queries

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
)

// DishReader reads committed dishes.
type DishReader interface {
	Dishes(ctx context.Context) ([]dish.Dish, error)
	Dish(ctx context.Context, id string) (dish.Dish, error)
}

// OrderReader reads committed orders.
type OrderReader interface {
	Orders(ctx context.Context) ([]order.Order, error)
	Order(ctx context.Context, id string) (order.Order, error)
}
