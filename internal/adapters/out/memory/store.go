// Package memory provides the process-memory Entity Store for dishes and orders.
//
// A Store owns both collections. Writers go through a UnitOfWork, which holds
// the store's write lock from Begin until Commit or Rollback and works on a
// private copy of the collections; Commit publishes the copy, Rollback drops
// it. Readers take the read lock and receive copies. Nothing is persisted:
// restarting the process loses all records.
//
// Usage:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.DishRepository().Append(ctx, d); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"sync"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"
)

// Store holds the committed dish and order collections.
type Store struct {
	mu     sync.RWMutex
	dishes []dish.Dish
	orders []order.Order
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		dishes: make([]dish.Dish, 0),
		orders: make([]order.Order, 0),
	}
}

// Dishes returns every dish in insertion order.
func (s *Store) Dishes(_ context.Context) ([]dish.Dish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.dishes, cloneDish), nil
}

// Dish returns the dish with the given id.
func (s *Store) Dish(_ context.Context, id string) (dish.Dish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.dishes {
		if d.ID == id {
			return d, nil
		}
	}
	return dish.Dish{}, errs.NewObjectNotFoundError(dish.Kind, id)
}

// Orders returns every order in insertion order.
func (s *Store) Orders(_ context.Context) ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.orders, order.Order.Clone), nil
}

// Order returns the order with the given id.
func (s *Store) Order(_ context.Context, id string) (order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return order.Order{}, errs.NewObjectNotFoundError(order.Kind, id)
}

func cloneDish(d dish.Dish) dish.Dish {
	return d
}
