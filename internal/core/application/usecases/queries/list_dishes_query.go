package queries

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var ErrListDishesQueryIsNotConstructed = errors.New(
	"ListDishesQuery must be created via NewListDishesQuery constructor",
)

// ListDishesQuery retrieves every dish in insertion order.
//
// Example:
//
//	handler := NewListDishesQueryHandler(store)
//	dishes, err := handler.Handle(ctx, NewListDishesQuery())
type ListDishesQuery struct {
	guard guard.ConstructorGuard
}

// NewListDishesQuery creates a query for the full dish list.
func NewListDishesQuery() ListDishesQuery {
	return ListDishesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDishesQuery) Validate() error {
	return q.guard.Validate(ErrListDishesQueryIsNotConstructed)
}
