package memory

import (
	"context"
	"errors"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// ErrTransactionIsNotActive is returned when the unit of work is used outside
// Begin and Commit/Rollback.
var ErrTransactionIsNotActive = errors.New("unit of work has no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances bound to one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new, inactive UnitOfWork.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork gives one request exclusive access to the store.
// It is not safe for use by multiple goroutines.
type UnitOfWork struct {
	store  *Store
	active bool
	dirty  bool
	dishes *collection[dish.Dish]
	orders *collection[order.Order]
}

// Begin locks the store and takes a working copy of both collections.
// Calling Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()
	uow.active = true
	uow.dirty = false
	uow.dishes = newCollection(dish.Kind, uow.store.dishes, cloneDish, uow)
	uow.orders = newCollection(order.Kind, uow.store.orders, order.Order.Clone, uow)
	return nil
}

// Commit publishes the working copy and unlocks the store.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrTransactionIsNotActive
	}

	if uow.dirty {
		uow.store.dishes = uow.dishes.items
		uow.store.orders = uow.orders.items
	}
	uow.release()
	return nil
}

// Rollback drops the working copy and unlocks the store.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrTransactionIsNotActive
	}

	uow.release()
	return nil
}

// DishRepository returns the dish collection of the current transaction.
// Its methods fail with ErrTransactionIsNotActive outside a transaction.
func (uow *UnitOfWork) DishRepository() ports.DishRepository {
	if uow.dishes == nil {
		return newCollection[dish.Dish](dish.Kind, nil, cloneDish, uow)
	}
	return uow.dishes
}

// OrderRepository returns the order collection of the current transaction.
// Its methods fail with ErrTransactionIsNotActive outside a transaction.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	if uow.orders == nil {
		return newCollection[order.Order](order.Kind, nil, order.Order.Clone, uow)
	}
	return uow.orders
}

func (uow *UnitOfWork) ensureActive() error {
	if !uow.active {
		return ErrTransactionIsNotActive
	}
	return nil
}

func (uow *UnitOfWork) markDirty() {
	uow.dirty = true
}

func (uow *UnitOfWork) release() {
	uow.active = false
	uow.dirty = false
	uow.dishes = nil
	uow.orders = nil
	uow.store.mu.Unlock()
}
