package queries

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
)

// ListDishesQueryHandler lists dishes from the store.
type ListDishesQueryHandler struct {
	reader DishReader
}

// NewListDishesQueryHandler creates a handler reading from reader.
func NewListDishesQueryHandler(reader DishReader) ListDishesQueryHandler {
	return ListDishesQueryHandler{reader: reader}
}

// Handle returns every dish; an empty store yields an empty, non-nil slice.
func (h ListDishesQueryHandler) Handle(ctx context.Context, query ListDishesQuery) ([]dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dishes, err := h.reader.Dishes(ctx)
	if err != nil {
		return nil, err
	}
	if dishes == nil {
		dishes = make([]dish.Dish, 0)
	}
	return dishes, nil
}
