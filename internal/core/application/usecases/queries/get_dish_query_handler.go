package queries

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
)

// GetDishQueryHandler reads a single dish.
type GetDishQueryHandler struct {
	reader DishReader
}

// NewGetDishQueryHandler creates a handler reading from reader.
func NewGetDishQueryHandler(reader DishReader) GetDishQueryHandler {
	return GetDishQueryHandler{reader: reader}
}

// Handle returns the dish, or an errs.ObjectNotFoundError when it does not exist.
func (h GetDishQueryHandler) Handle(ctx context.Context, query GetDishQuery) (dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return dish.Dish{}, err
	}
	return h.reader.Dish(ctx, query.DishID())
}
